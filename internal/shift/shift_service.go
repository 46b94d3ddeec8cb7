package shift

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"go-salon/internal/events"
	"go-salon/internal/expense"
	"go-salon/internal/messaging/kafka"
	"go-salon/internal/sale"
	"go-salon/internal/shared/contextutil"
	shifterrors "go-salon/internal/shift/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type SaleSource interface {
	FindByShift(ctx context.Context, salonID, shiftID string) ([]sale.Sale, error)
}

type ExpenseSource interface {
	FindSince(ctx context.Context, salonID string, since time.Time) ([]expense.Expense, error)
}

//go:generate mockgen -source=shift_service.go -destination=mock/shift_service_mock.go -package=mock
type Service interface {
	Open(ctx context.Context, salonID, cashierID string, req OpenShiftRequest) (ShiftResponse, error)
	GetAll(ctx context.Context, salonID string) ([]ShiftResponse, error)
	GetOpen(ctx context.Context, salonID, cashierID string) (ShiftResponse, error)
	PreviewClose(ctx context.Context, salonID, id string, actualCash *float64) (CloseSummaryResponse, error)
	Close(ctx context.Context, salonID, id string, req CloseShiftRequest) (CloseSummaryResponse, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	sales    SaleSource
	expenses ExpenseSource
	outbox   kafka.OutboxRepository
	logger   *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	sales SaleSource,
	expenses ExpenseSource,
	outboxRepo kafka.OutboxRepository,
) Service {
	return &service{
		db:       db,
		repo:     repo,
		sales:    sales,
		expenses: expenses,
		outbox:   outboxRepo,
		logger:   zap.L().Named("shift.service"),
	}
}

func (s *service) Open(
	ctx context.Context,
	salonID, cashierID string,
	req OpenShiftRequest,
) (ShiftResponse, error) {
	salonUUID, err := uuid.Parse(salonID)
	if err != nil {
		return ShiftResponse{}, shifterrors.ErrInvalidCashierID
	}
	cashierUUID, err := uuid.Parse(cashierID)
	if err != nil {
		return ShiftResponse{}, shifterrors.ErrInvalidCashierID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ShiftResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	// One open shift per cashier, checked inside the transaction so two
	// sessions cannot both open one.
	_, err = qtx.FindOpenByCashier(ctx, salonID, cashierID)
	if err == nil {
		return ShiftResponse{}, shifterrors.ErrShiftAlreadyOpen
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return ShiftResponse{}, err
	}

	sh := &Shift{
		ID:             uuid.New(),
		SalonID:        salonUUID,
		CashierID:      cashierUUID,
		OpeningBalance: req.OpeningBalance,
		Status:         StatusOpen,
		OpenedAt:       time.Now().UTC(),
	}

	if err := qtx.Create(ctx, sh); err != nil {
		return ShiftResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return ShiftResponse{}, err
	}

	return mapToResponse(*sh), nil
}

func (s *service) GetAll(ctx context.Context, salonID string) ([]ShiftResponse, error) {
	shifts, err := s.repo.FindAllBySalon(ctx, salonID)
	if err != nil {
		return nil, err
	}

	res := make([]ShiftResponse, len(shifts))
	for i, sh := range shifts {
		res[i] = mapToResponse(sh)
	}
	return res, nil
}

func (s *service) GetOpen(ctx context.Context, salonID, cashierID string) (ShiftResponse, error) {
	sh, err := s.repo.FindOpenByCashier(ctx, salonID, cashierID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ShiftResponse{}, shifterrors.ErrShiftNotFound
		}
		return ShiftResponse{}, err
	}

	return mapToResponse(*sh), nil
}

func (s *service) PreviewClose(
	ctx context.Context,
	salonID, id string,
	actualCash *float64,
) (CloseSummaryResponse, error) {
	sh, summary, err := s.summarize(ctx, salonID, id, actualCash)
	if err != nil {
		return CloseSummaryResponse{}, err
	}

	return mapToSummaryResponse(sh.ID.String(), summary), nil
}

func (s *service) Close(
	ctx context.Context,
	salonID, id string,
	req CloseShiftRequest,
) (CloseSummaryResponse, error) {
	if req.ActualCash == nil {
		return CloseSummaryResponse{}, shifterrors.ErrActualCashRequired
	}

	sh, summary, err := s.summarize(ctx, salonID, id, req.ActualCash)
	if err != nil {
		return CloseSummaryResponse{}, err
	}

	if summary.Difference != 0 && !hasReason(req.Reason) {
		return CloseSummaryResponse{}, shifterrors.ErrDifferenceReasonRequired
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return CloseSummaryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	snap := CloseSnapshot{
		FinalCash:        *req.ActualCash,
		TotalSales:       summary.NetSales,
		TotalExpenses:    summary.CashExpenses,
		CashSales:        summary.CashSales,
		CardSales:        summary.CardSales,
		InstapaySales:    summary.InstapaySales,
		Difference:       summary.Difference,
		DifferenceReason: req.Reason,
		ClosedAt:         time.Now().UTC(),
	}

	rows, err := qtx.Close(ctx, salonID, id, snap)
	if err != nil {
		return CloseSummaryResponse{}, err
	}
	if rows == 0 {
		return CloseSummaryResponse{}, shifterrors.ErrShiftAlreadyClosed
	}

	if s.outbox != nil {
		event := events.ShiftClosedEvent{
			EventType:    "shift.closed",
			ShiftID:      sh.ID.String(),
			SalonID:      salonID,
			CashierID:    sh.CashierID.String(),
			NetSales:     summary.NetSales,
			ExpectedCash: summary.ExpectedCash,
			FinalCash:    *req.ActualCash,
			Difference:   summary.Difference,
			OccurredAt:   snap.ClosedAt,
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return CloseSummaryResponse{}, err
		}
		outboxEvent := kafka.OutboxEvent{
			ID:            uuid.New().String(),
			RequestID:     contextutil.GetRequestID(ctx),
			SalonID:       salonID,
			AggregateType: "shift",
			AggregateID:   sh.ID.String(),
			EventType:     event.EventType,
			Topic:         events.ShiftClosedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}
		if err := s.outbox.WithTx(tx).Create(ctx, outboxEvent); err != nil {
			return CloseSummaryResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return CloseSummaryResponse{}, err
	}

	return mapToSummaryResponse(sh.ID.String(), summary), nil
}

func (s *service) summarize(
	ctx context.Context,
	salonID, id string,
	actualCash *float64,
) (*Shift, CloseSummary, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, CloseSummary{}, shifterrors.ErrInvalidShiftID
	}

	sh, err := s.repo.FindByIDAndSalon(ctx, salonID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, CloseSummary{}, shifterrors.ErrShiftNotFound
		}
		return nil, CloseSummary{}, err
	}

	if sh.Status != StatusOpen {
		return nil, CloseSummary{}, shifterrors.ErrShiftAlreadyClosed
	}

	sales, err := s.sales.FindByShift(ctx, salonID, id)
	if err != nil {
		return nil, CloseSummary{}, err
	}

	expenses, err := s.expenses.FindSince(ctx, salonID, sh.OpenedAt)
	if err != nil {
		return nil, CloseSummary{}, err
	}

	return sh, Summarize(*sh, sales, expenses, actualCash), nil
}

func hasReason(reason *string) bool {
	return reason != nil && strings.TrimSpace(*reason) != ""
}
