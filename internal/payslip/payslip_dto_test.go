package payslip

import (
	"testing"

	"go-salon/internal/attendance"

	"github.com/stretchr/testify/assert"
)

func TestMapToStatementResponse_DoesNotMutateStatement(t *testing.T) {
	st := Statement{
		Advances: 10.006,
		AdvanceDetails: []attendance.AdvanceDetail{
			{Date: "2026-03-05", Amount: 10.006},
		},
	}

	resp := mapToStatementResponse(st, "Mona Adel")

	assert.Equal(t, 10.01, resp.AdvanceDetails[0].Amount)
	assert.Equal(t, 10.006, st.AdvanceDetails[0].Amount)
}

func TestMapToStatementResponse_NilDetailsRenderEmpty(t *testing.T) {
	resp := mapToStatementResponse(Statement{}, "Mona Adel")

	assert.NotNil(t, resp.AdvanceDetails)
	assert.Len(t, resp.AdvanceDetails, 0)
}
