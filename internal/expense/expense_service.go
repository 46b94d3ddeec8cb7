package expense

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"go-salon/internal/shared/apperror"

	"github.com/google/uuid"
)

var errInvalidSpentAt = apperror.New(
	apperror.CodeInvalidInput,
	"invalid spent_at, expected RFC3339",
	http.StatusBadRequest,
)

//go:generate mockgen -source=expense_service.go -destination=mock/expense_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, salonID string, req CreateExpenseRequest) (ExpenseResponse, error)
	GetSince(ctx context.Context, salonID string, since time.Time) ([]ExpenseResponse, error)
	Delete(ctx context.Context, salonID, id string) error
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) Create(
	ctx context.Context,
	salonID string,
	req CreateExpenseRequest,
) (ExpenseResponse, error) {
	salonUUID, err := uuid.Parse(salonID)
	if err != nil {
		return ExpenseResponse{}, apperror.ErrInvalidInput
	}

	spentAt, err := time.Parse(time.RFC3339, req.SpentAt)
	if err != nil {
		return ExpenseResponse{}, errInvalidSpentAt
	}

	row := &Expense{
		ID:          uuid.New(),
		SalonID:     salonUUID,
		SpentAt:     spentAt,
		Amount:      req.Amount,
		Method:      req.Method,
		Description: req.Description,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ExpenseResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, row); err != nil {
		return ExpenseResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return ExpenseResponse{}, err
	}

	return mapToResponse(*row), nil
}

func (s *service) GetSince(ctx context.Context, salonID string, since time.Time) ([]ExpenseResponse, error) {
	expenses, err := s.repo.FindSince(ctx, salonID, since)
	if err != nil {
		return nil, err
	}

	res := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		res[i] = mapToResponse(e)
	}
	return res, nil
}

func (s *service) Delete(ctx context.Context, salonID, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Delete(ctx, salonID, id); err != nil {
		return err
	}

	return tx.Commit()
}

func mapToResponse(row Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          row.ID.String(),
		SalonID:     row.SalonID.String(),
		SpentAt:     row.SpentAt.Format(time.RFC3339),
		Amount:      row.Amount,
		Method:      row.Method,
		Description: row.Description,
	}
}
