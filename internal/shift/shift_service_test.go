package shift_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"go-salon/internal/events"
	"go-salon/internal/expense"
	"go-salon/internal/messaging/kafka"
	"go-salon/internal/sale"
	"go-salon/internal/shift"
	shifterrors "go-salon/internal/shift/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeShiftRepository struct {
	withTxFn            func(tx *sql.Tx) shift.Repository
	createFn            func(ctx context.Context, sh *shift.Shift) error
	findByIDAndSalonFn  func(ctx context.Context, salonID, id string) (*shift.Shift, error)
	findOpenByCashierFn func(ctx context.Context, salonID, cashierID string) (*shift.Shift, error)
	findAllBySalonFn    func(ctx context.Context, salonID string) ([]shift.Shift, error)
	closeFn             func(ctx context.Context, salonID, id string, snap shift.CloseSnapshot) (int64, error)
}

func (f *fakeShiftRepository) WithTx(tx *sql.Tx) shift.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeShiftRepository) Create(ctx context.Context, sh *shift.Shift) error {
	if f.createFn != nil {
		return f.createFn(ctx, sh)
	}
	return nil
}

func (f *fakeShiftRepository) FindByIDAndSalon(ctx context.Context, salonID, id string) (*shift.Shift, error) {
	if f.findByIDAndSalonFn != nil {
		return f.findByIDAndSalonFn(ctx, salonID, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeShiftRepository) FindOpenByCashier(ctx context.Context, salonID, cashierID string) (*shift.Shift, error) {
	if f.findOpenByCashierFn != nil {
		return f.findOpenByCashierFn(ctx, salonID, cashierID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeShiftRepository) FindAllBySalon(ctx context.Context, salonID string) ([]shift.Shift, error) {
	if f.findAllBySalonFn != nil {
		return f.findAllBySalonFn(ctx, salonID)
	}
	return nil, nil
}

func (f *fakeShiftRepository) Close(ctx context.Context, salonID, id string, snap shift.CloseSnapshot) (int64, error) {
	if f.closeFn != nil {
		return f.closeFn(ctx, salonID, id, snap)
	}
	return 1, nil
}

type fakeShiftSaleSource struct {
	findFn func(ctx context.Context, salonID, shiftID string) ([]sale.Sale, error)
}

func (f *fakeShiftSaleSource) FindByShift(ctx context.Context, salonID, shiftID string) ([]sale.Sale, error) {
	if f.findFn != nil {
		return f.findFn(ctx, salonID, shiftID)
	}
	return nil, nil
}

type fakeExpenseSource struct {
	findFn func(ctx context.Context, salonID string, since time.Time) ([]expense.Expense, error)
}

func (f *fakeExpenseSource) FindSince(ctx context.Context, salonID string, since time.Time) ([]expense.Expense, error) {
	if f.findFn != nil {
		return f.findFn(ctx, salonID, since)
	}
	return nil, nil
}

type fakeOutboxRepository struct {
	withTxFn func(tx *sql.Tx) kafka.OutboxRepository
	createFn func(ctx context.Context, event kafka.OutboxEvent) error
}

func (f *fakeOutboxRepository) WithTx(tx *sql.Tx) kafka.OutboxRepository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeOutboxRepository) Create(ctx context.Context, event kafka.OutboxEvent) error {
	if f.createFn != nil {
		return f.createFn(ctx, event)
	}
	return nil
}

func (f *fakeOutboxRepository) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepository) MarkSent(ctx context.Context, id string) error {
	return nil
}

func (f *fakeOutboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}

type shiftServiceDeps struct {
	db       *sql.DB
	sqlMock  sqlmock.Sqlmock
	service  shift.Service
	repo     *fakeShiftRepository
	sales    *fakeShiftSaleSource
	expenses *fakeExpenseSource
	outbox   *fakeOutboxRepository
}

func setupShiftServiceTest(t *testing.T) *shiftServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	deps := &shiftServiceDeps{
		db:       db,
		sqlMock:  sqlMock,
		repo:     &fakeShiftRepository{},
		sales:    &fakeShiftSaleSource{},
		expenses: &fakeExpenseSource{},
		outbox:   &fakeOutboxRepository{},
	}
	deps.service = shift.NewService(db, deps.repo, deps.sales, deps.expenses, deps.outbox)

	return deps
}

func storedOpenShift(id, salonID, cashierID uuid.UUID) *shift.Shift {
	return &shift.Shift{
		ID:             id,
		SalonID:        salonID,
		CashierID:      cashierID,
		OpeningBalance: 500,
		Status:         shift.StatusOpen,
		OpenedAt:       openedAt,
	}
}

func TestShiftService_Open(t *testing.T) {
	ctx := context.Background()
	salonID := uuid.New().String()
	cashierID := uuid.New().String()

	deps := setupShiftServiceTest(t)
	defer deps.db.Close()

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectCommit()

	resp, err := deps.service.Open(ctx, salonID, cashierID, shift.OpenShiftRequest{OpeningBalance: 500})

	assert.NoError(t, err)
	assert.Equal(t, shift.StatusOpen, resp.Status)
	assert.Equal(t, 500.0, resp.OpeningBalance)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestShiftService_Open_SecondOpenShiftRejected(t *testing.T) {
	ctx := context.Background()
	salonID := uuid.New()
	cashierID := uuid.New()

	deps := setupShiftServiceTest(t)
	defer deps.db.Close()

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectRollback()

	deps.repo.findOpenByCashierFn = func(ctx context.Context, sid, cid string) (*shift.Shift, error) {
		return storedOpenShift(uuid.New(), salonID, cashierID), nil
	}

	_, err := deps.service.Open(ctx, salonID.String(), cashierID.String(), shift.OpenShiftRequest{})

	assert.ErrorIs(t, err, shifterrors.ErrShiftAlreadyOpen)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestShiftService_Close_RequiresActualCash(t *testing.T) {
	ctx := context.Background()

	deps := setupShiftServiceTest(t)
	defer deps.db.Close()

	_, err := deps.service.Close(ctx, uuid.New().String(), uuid.New().String(), shift.CloseShiftRequest{})

	assert.ErrorIs(t, err, shifterrors.ErrActualCashRequired)
}

func TestShiftService_Close_RequiresReasonWhenUnbalanced(t *testing.T) {
	ctx := context.Background()
	salonID := uuid.New()
	cashierID := uuid.New()
	shiftID := uuid.New()

	deps := setupShiftServiceTest(t)
	defer deps.db.Close()

	deps.repo.findByIDAndSalonFn = func(ctx context.Context, sid, id string) (*shift.Shift, error) {
		return storedOpenShift(shiftID, salonID, cashierID), nil
	}
	deps.sales.findFn = func(ctx context.Context, sid, id string) ([]sale.Sale, error) {
		return []sale.Sale{{PaymentMethod: sale.PaymentMethodCash, Amount: 1200}}, nil
	}
	deps.expenses.findFn = func(ctx context.Context, sid string, since time.Time) ([]expense.Expense, error) {
		return []expense.Expense{{Method: expense.MethodCash, Amount: 200, SpentAt: openedAt.Add(time.Hour)}}, nil
	}

	actual := 1480.0
	_, err := deps.service.Close(ctx, salonID.String(), shiftID.String(), shift.CloseShiftRequest{
		ActualCash: &actual,
	})

	assert.ErrorIs(t, err, shifterrors.ErrDifferenceReasonRequired)

	empty := "   "
	_, err = deps.service.Close(ctx, salonID.String(), shiftID.String(), shift.CloseShiftRequest{
		ActualCash: &actual,
		Reason:     &empty,
	})

	assert.ErrorIs(t, err, shifterrors.ErrDifferenceReasonRequired)
}

func TestShiftService_Close_ShortageWithReason(t *testing.T) {
	ctx := context.Background()
	salonID := uuid.New()
	cashierID := uuid.New()
	shiftID := uuid.New()

	deps := setupShiftServiceTest(t)
	defer deps.db.Close()

	deps.repo.findByIDAndSalonFn = func(ctx context.Context, sid, id string) (*shift.Shift, error) {
		return storedOpenShift(shiftID, salonID, cashierID), nil
	}
	deps.sales.findFn = func(ctx context.Context, sid, id string) ([]sale.Sale, error) {
		return []sale.Sale{{PaymentMethod: sale.PaymentMethodCash, Amount: 1200}}, nil
	}
	deps.expenses.findFn = func(ctx context.Context, sid string, since time.Time) ([]expense.Expense, error) {
		return []expense.Expense{{Method: expense.MethodCash, Amount: 200, SpentAt: openedAt.Add(time.Hour)}}, nil
	}

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectCommit()

	var snapshot shift.CloseSnapshot
	deps.repo.closeFn = func(ctx context.Context, sid, id string, snap shift.CloseSnapshot) (int64, error) {
		snapshot = snap
		return 1, nil
	}

	var event kafka.OutboxEvent
	deps.outbox.createFn = func(ctx context.Context, e kafka.OutboxEvent) error {
		event = e
		return nil
	}

	actual := 1480.0
	reason := "till count error"
	resp, err := deps.service.Close(ctx, salonID.String(), shiftID.String(), shift.CloseShiftRequest{
		ActualCash: &actual,
		Reason:     &reason,
	})

	assert.NoError(t, err)
	assert.Equal(t, 1500.0, resp.ExpectedCash)
	if assert.NotNil(t, resp.Difference) {
		assert.Equal(t, -20.0, *resp.Difference)
	}
	if assert.NotNil(t, resp.Classification) {
		assert.Equal(t, shift.ClassificationShortage, *resp.Classification)
	}
	assert.Equal(t, 1480.0, snapshot.FinalCash)
	assert.Equal(t, resp.NetSales, snapshot.TotalSales)
	assert.Equal(t, events.ShiftClosedTopic, event.Topic)
	assert.Equal(t, salonID.String(), event.SalonID)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestShiftService_Close_AlreadyClosed(t *testing.T) {
	ctx := context.Background()
	salonID := uuid.New()
	shiftID := uuid.New()

	deps := setupShiftServiceTest(t)
	defer deps.db.Close()

	deps.repo.findByIDAndSalonFn = func(ctx context.Context, sid, id string) (*shift.Shift, error) {
		sh := storedOpenShift(shiftID, salonID, uuid.New())
		sh.Status = shift.StatusClosed
		return sh, nil
	}

	actual := 500.0
	_, err := deps.service.Close(ctx, salonID.String(), shiftID.String(), shift.CloseShiftRequest{
		ActualCash: &actual,
	})

	assert.ErrorIs(t, err, shifterrors.ErrShiftAlreadyClosed)
}

func TestShiftService_PreviewClose_NoActualCash(t *testing.T) {
	ctx := context.Background()
	salonID := uuid.New()
	shiftID := uuid.New()

	deps := setupShiftServiceTest(t)
	defer deps.db.Close()

	deps.repo.findByIDAndSalonFn = func(ctx context.Context, sid, id string) (*shift.Shift, error) {
		return storedOpenShift(shiftID, salonID, uuid.New()), nil
	}
	deps.sales.findFn = func(ctx context.Context, sid, id string) ([]sale.Sale, error) {
		return []sale.Sale{{PaymentMethod: sale.PaymentMethodCash, Amount: 300}}, nil
	}

	resp, err := deps.service.PreviewClose(ctx, salonID.String(), shiftID.String(), nil)

	assert.NoError(t, err)
	assert.Equal(t, 800.0, resp.ExpectedCash)
	assert.Nil(t, resp.Difference)
	assert.Nil(t, resp.Classification)
}
