package payslip_test

import (
	"testing"
	"time"

	"go-salon/internal/attendance"
	"go-salon/internal/employee"
	"go-salon/internal/payslip"

	"github.com/stretchr/testify/assert"
)

func TestComputeDeductions_TotalIdentity(t *testing.T) {
	emp := employee.Employee{
		LatePenaltyPerMinute: 0.5,
		AbsencePenaltyPerDay: 100,
		CustomDeductions:     75,
	}
	summary := attendance.MonthlySummary{
		TotalLateMinutes: 40,
		AbsentDays:       2,
	}
	records := []attendance.Attendance{
		{WorkDate: time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), Advance: 120},
		{WorkDate: time.Date(2026, 3, 19, 0, 0, 0, 0, time.UTC), Advance: 80},
	}

	d := payslip.ComputeDeductions(emp, summary, records)

	assert.Equal(t, 20.0, d.LateDeduction)
	assert.Equal(t, 200.0, d.AbsentDeduction)
	assert.Equal(t, 75.0, d.CustomDeduction)
	assert.Equal(t, 200.0, d.Advances)
	assert.Len(t, d.AdvanceDetails, 2)
	assert.Equal(t, d.LateDeduction+d.AbsentDeduction+d.CustomDeduction+d.Advances, d.TotalDeductions)
}

func TestComputeDeductions_CustomIsFlat(t *testing.T) {
	emp := employee.Employee{CustomDeductions: 50}

	// The flat charge applies even with an empty month.
	d := payslip.ComputeDeductions(emp, attendance.MonthlySummary{}, nil)

	assert.Equal(t, 50.0, d.CustomDeduction)
	assert.Equal(t, 50.0, d.TotalDeductions)
}
