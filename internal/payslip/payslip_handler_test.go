package payslip_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-salon/internal/payslip"
	paysliperrors "go-salon/internal/payslip/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func mustDecodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakePayslipService struct {
	getStatementFn     func(ctx context.Context, salonID, employeeID string, month, year int) (payslip.StatementResponse, error)
	requestDocumentFn  func(ctx context.Context, salonID, actorID, employeeID string, month, year int) error
	generateDocumentFn func(ctx context.Context, salonID, employeeID string, month, year int) (payslip.DocumentResponse, error)
	getDocumentFn      func(ctx context.Context, salonID, employeeID string, month, year int) (payslip.DocumentResponse, error)
}

func (f *fakePayslipService) GetStatement(ctx context.Context, salonID, employeeID string, month, year int) (payslip.StatementResponse, error) {
	return f.getStatementFn(ctx, salonID, employeeID, month, year)
}

func (f *fakePayslipService) RequestDocument(ctx context.Context, salonID, actorID, employeeID string, month, year int) error {
	return f.requestDocumentFn(ctx, salonID, actorID, employeeID, month, year)
}

func (f *fakePayslipService) GenerateDocument(ctx context.Context, salonID, employeeID string, month, year int) (payslip.DocumentResponse, error) {
	return f.generateDocumentFn(ctx, salonID, employeeID, month, year)
}

func (f *fakePayslipService) GetDocument(ctx context.Context, salonID, employeeID string, month, year int) (payslip.DocumentResponse, error) {
	return f.getDocumentFn(ctx, salonID, employeeID, month, year)
}

func TestPayslipHandler_GetStatement(t *testing.T) {
	gin.SetMode(gin.TestMode)
	salonID := uuid.New().String()
	employeeID := uuid.New().String()

	svc := &fakePayslipService{
		getStatementFn: func(ctx context.Context, sid, eid string, month, year int) (payslip.StatementResponse, error) {
			assert.Equal(t, salonID, sid)
			assert.Equal(t, employeeID, eid)
			assert.Equal(t, 3, month)
			assert.Equal(t, 2026, year)
			return payslip.StatementResponse{EmployeeID: eid, Month: month, Year: year, NetSalary: 2000}, nil
		},
	}

	h := payslip.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodGet, "/payslips/"+employeeID+"/statement?month=3&year=2026", nil)
	c.Params = gin.Params{{Key: "employeeId", Value: employeeID}}
	c.Set("salon_id", salonID)

	h.GetStatement(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)
}

func TestPayslipHandler_GetStatement_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &fakePayslipService{
		getStatementFn: func(ctx context.Context, sid, eid string, month, year int) (payslip.StatementResponse, error) {
			return payslip.StatementResponse{}, paysliperrors.ErrEmployeeNotFound
		},
	}

	h := payslip.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodGet, "/payslips/x/statement?month=3&year=2026", nil)
	c.Params = gin.Params{{Key: "employeeId", Value: uuid.New().String()}}
	c.Set("salon_id", uuid.New().String())

	h.GetStatement(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
	if assert.NotNil(t, env.Error) {
		assert.Equal(t, "NOT_FOUND", env.Error.Code)
	}
}

func TestPayslipHandler_RequestDocument(t *testing.T) {
	gin.SetMode(gin.TestMode)
	salonID := uuid.New().String()
	actorID := uuid.New().String()
	employeeID := uuid.New().String()

	requested := false
	svc := &fakePayslipService{
		requestDocumentFn: func(ctx context.Context, sid, aid, eid string, month, year int) error {
			requested = true
			assert.Equal(t, actorID, aid)
			return nil
		},
	}

	h := payslip.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodPost, "/payslips/"+employeeID+"/request", strings.NewReader(`{"month":3,"year":2026}`))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "employeeId", Value: employeeID}}
	c.Set("salon_id", salonID)
	c.Set("user_id_validated", actorID)

	h.RequestDocument(c)

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.True(t, requested)
}
