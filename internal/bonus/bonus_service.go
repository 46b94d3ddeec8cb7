package bonus

import (
	"context"
	"database/sql"
	"strings"
	"time"

	bonuserrors "go-salon/internal/bonus/errors"

	"github.com/google/uuid"
)

//go:generate mockgen -source=bonus_service.go -destination=mock/bonus_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, salonID, actorID string, req CreateBonusRequest) (BonusResponse, error)
	GetByEmployeeAndMonth(ctx context.Context, salonID, employeeID string, month, year int) ([]BonusResponse, error)
	GetMonthlyTotal(ctx context.Context, salonID, employeeID string, month, year int) (float64, error)
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
	salonID, actorID string,
	req CreateBonusRequest,
) (BonusResponse, error) {
	// Blocking validation: a grant without amount or reason is aborted
	// before any state is written.
	if req.Amount <= 0 {
		return BonusResponse{}, bonuserrors.ErrMissingAmount
	}
	if strings.TrimSpace(req.Reason) == "" {
		return BonusResponse{}, bonuserrors.ErrMissingReason
	}

	salonUUID, err := uuid.Parse(salonID)
	if err != nil {
		return BonusResponse{}, bonuserrors.ErrInvalidEmployeeID
	}
	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return BonusResponse{}, bonuserrors.ErrInvalidEmployeeID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return BonusResponse{}, bonuserrors.ErrInvalidEmployeeID
	}

	row := &Bonus{
		ID:         uuid.New(),
		SalonID:    salonUUID,
		EmployeeID: employeeUUID,
		Month:      req.Month,
		Year:       req.Year,
		Amount:     req.Amount,
		Reason:     strings.TrimSpace(req.Reason),
		AddedBy:    actorUUID,
		GrantedAt:  time.Now().UTC(),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return BonusResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, row); err != nil {
		return BonusResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return BonusResponse{}, err
	}

	return mapToResponse(*row), nil
}

func (s *service) GetByEmployeeAndMonth(
	ctx context.Context,
	salonID, employeeID string,
	month, year int,
) ([]BonusResponse, error) {
	bonuses, err := s.repo.FindByEmployeeAndMonth(ctx, salonID, employeeID, month, year)
	if err != nil {
		return nil, err
	}

	res := make([]BonusResponse, len(bonuses))
	for i, b := range bonuses {
		res[i] = mapToResponse(b)
	}
	return res, nil
}

func (s *service) GetMonthlyTotal(
	ctx context.Context,
	salonID, employeeID string,
	month, year int,
) (float64, error) {
	bonuses, err := s.repo.FindByEmployeeAndMonth(ctx, salonID, employeeID, month, year)
	if err != nil {
		return 0, err
	}
	return MonthlyTotal(bonuses), nil
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

func mapToResponse(b Bonus) BonusResponse {
	return BonusResponse{
		ID:         b.ID.String(),
		SalonID:    b.SalonID.String(),
		EmployeeID: b.EmployeeID.String(),
		Month:      b.Month,
		Year:       b.Year,
		Amount:     b.Amount,
		Reason:     b.Reason,
		AddedBy:    b.AddedBy.String(),
		GrantedAt:  b.GrantedAt.Format(time.RFC3339),
	}
}
