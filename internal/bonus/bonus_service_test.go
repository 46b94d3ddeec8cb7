package bonus_test

import (
	"context"
	"database/sql"
	"testing"

	"go-salon/internal/bonus"
	bonuserrors "go-salon/internal/bonus/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeBonusRepository struct {
	withTxFn func(tx *sql.Tx) bonus.Repository
	createFn func(ctx context.Context, b *bonus.Bonus) error
	findFn   func(ctx context.Context, salonID, employeeID string, month, year int) ([]bonus.Bonus, error)
	deleteFn func(ctx context.Context, salonID, id string) error
}

func (f *fakeBonusRepository) WithTx(tx *sql.Tx) bonus.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeBonusRepository) Create(ctx context.Context, b *bonus.Bonus) error {
	if f.createFn != nil {
		return f.createFn(ctx, b)
	}
	return nil
}

func (f *fakeBonusRepository) FindByEmployeeAndMonth(ctx context.Context, salonID, employeeID string, month, year int) ([]bonus.Bonus, error) {
	if f.findFn != nil {
		return f.findFn(ctx, salonID, employeeID, month, year)
	}
	return nil, nil
}

func (f *fakeBonusRepository) Delete(ctx context.Context, salonID, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, salonID, id)
	}
	return nil
}

type bonusServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service bonus.Service
	repo    *fakeBonusRepository
}

func setupBonusServiceTest(t *testing.T) *bonusServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeBonusRepository{}
	svc := bonus.NewService(db, repo)

	return &bonusServiceDeps{db: db, sqlMock: sqlMock, service: svc, repo: repo}
}

func TestBonusService_Create(t *testing.T) {
	ctx := context.Background()
	salonID := uuid.New().String()
	actorID := uuid.New().String()

	deps := setupBonusServiceTest(t)
	defer deps.db.Close()

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectCommit()

	resp, err := deps.service.Create(ctx, salonID, actorID, bonus.CreateBonusRequest{
		EmployeeID: uuid.New().String(),
		Month:      3,
		Year:       2026,
		Amount:     150,
		Reason:     "  exceptional client retention  ",
	})

	assert.NoError(t, err)
	assert.Equal(t, 150.0, resp.Amount)
	assert.Equal(t, "exceptional client retention", resp.Reason)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestBonusService_Create_BlockedBeforeWrite(t *testing.T) {
	ctx := context.Background()
	salonID := uuid.New().String()
	actorID := uuid.New().String()

	deps := setupBonusServiceTest(t)
	defer deps.db.Close()

	writes := 0
	deps.repo.createFn = func(ctx context.Context, b *bonus.Bonus) error {
		writes++
		return nil
	}

	_, err := deps.service.Create(ctx, salonID, actorID, bonus.CreateBonusRequest{
		EmployeeID: uuid.New().String(),
		Month:      3,
		Year:       2026,
		Reason:     "no amount",
	})
	assert.ErrorIs(t, err, bonuserrors.ErrMissingAmount)

	_, err = deps.service.Create(ctx, salonID, actorID, bonus.CreateBonusRequest{
		EmployeeID: uuid.New().String(),
		Month:      3,
		Year:       2026,
		Amount:     100,
		Reason:     "   ",
	})
	assert.ErrorIs(t, err, bonuserrors.ErrMissingReason)

	assert.Equal(t, 0, writes)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestBonusService_GetMonthlyTotal(t *testing.T) {
	ctx := context.Background()

	deps := setupBonusServiceTest(t)
	defer deps.db.Close()

	deps.repo.findFn = func(ctx context.Context, salonID, employeeID string, month, year int) ([]bonus.Bonus, error) {
		return []bonus.Bonus{{Amount: 100}, {Amount: 50.5}}, nil
	}

	total, err := deps.service.GetMonthlyTotal(ctx, uuid.New().String(), uuid.New().String(), 3, 2026)

	assert.NoError(t, err)
	assert.Equal(t, 150.5, total)
}
