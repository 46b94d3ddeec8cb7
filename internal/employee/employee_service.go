package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	employeeerrors "go-salon/internal/employee/errors"
	"go-salon/internal/events"
	"go-salon/internal/messaging/kafka"
	"go-salon/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, salonID string, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, salonID string) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, salonID, id string) (EmployeeResponse, error)
	Update(ctx context.Context, salonID, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, salonID, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository) Service {
	return NewServiceWithOutbox(db, repo, nil)
}

func NewServiceWithOutbox(db *sql.DB, repo Repository, outboxRepo kafka.OutboxRepository) Service {
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		logger: zap.L().Named("employee.service"),
	}
}

func (s *service) Create(
	ctx context.Context,
	salonID string,
	req CreateEmployeeRequest,
) (EmployeeResponse, error) {
	salonUUID, err := uuid.Parse(salonID)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidSalonID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	emp := &Employee{
		ID:                   uuid.New(),
		SalonID:              salonUUID,
		FullName:             req.FullName,
		Phone:                req.Phone,
		SalaryType:           req.SalaryType,
		BaseSalary:           req.BaseSalary,
		WorkDays:             req.WorkDays,
		ShiftHours:           req.ShiftHours,
		HourlyRate:           req.HourlyRate,
		CommissionRate:       req.CommissionRate,
		LatePenaltyPerMinute: req.LatePenaltyPerMinute,
		AbsencePenaltyPerDay: req.AbsencePenaltyPerDay,
		CustomDeductions:     req.CustomDeductions,
	}

	if err := qtx.Create(ctx, emp); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.EmployeeCreatedEvent{
			EventType:  "employee.created",
			EmployeeID: emp.ID.String(),
			SalonID:    salonID,
			OccurredAt: time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return EmployeeResponse{}, err
		}
		outboxEvent := kafka.OutboxEvent{
			ID:            uuid.New().String(),
			RequestID:     contextutil.GetRequestID(ctx),
			SalonID:       salonID,
			AggregateType: "employee",
			AggregateID:   emp.ID.String(),
			EventType:     event.EventType,
			Topic:         events.EmployeeCreatedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}
		if err := s.outbox.WithTx(tx).Create(ctx, outboxEvent); err != nil {
			return EmployeeResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return EmployeeResponse{}, err
	}

	return mapToResponse(*emp), nil
}

func (s *service) GetAll(ctx context.Context, salonID string) ([]EmployeeResponse, error) {
	employees, err := s.repo.FindAllBySalon(ctx, salonID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(employees), nil
}

func (s *service) GetByID(ctx context.Context, salonID, id string) (EmployeeResponse, error) {
	emp, err := s.repo.FindByIDAndSalon(ctx, salonID, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*emp), nil
}

func (s *service) Update(
	ctx context.Context,
	salonID, id string,
	req UpdateEmployeeRequest,
) (EmployeeResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	emp, err := qtx.FindByIDAndSalon(ctx, salonID, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	emp.FullName = req.FullName
	emp.Phone = req.Phone
	emp.SalaryType = req.SalaryType
	emp.BaseSalary = req.BaseSalary
	emp.WorkDays = req.WorkDays
	emp.ShiftHours = req.ShiftHours
	emp.HourlyRate = req.HourlyRate
	emp.CommissionRate = req.CommissionRate
	emp.LatePenaltyPerMinute = req.LatePenaltyPerMinute
	emp.AbsencePenaltyPerDay = req.AbsencePenaltyPerDay
	emp.CustomDeductions = req.CustomDeductions

	if err := qtx.Update(ctx, emp); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return EmployeeResponse{}, err
	}

	return mapToResponse(*emp), nil
}

// Delete removes the employee row only. Attendance, sales and bonuses keep
// their employee_id references; nothing cascades.
func (s *service) Delete(ctx context.Context, salonID, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.Delete(ctx, salonID, id); err != nil {
		return mapRepositoryError(err)
	}

	return tx.Commit()
}

func mapToResponse(emp Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:                   emp.ID.String(),
		SalonID:              emp.SalonID.String(),
		FullName:             emp.FullName,
		Phone:                emp.Phone,
		SalaryType:           emp.SalaryType,
		BaseSalary:           emp.BaseSalary,
		WorkDays:             emp.WorkDays,
		ShiftHours:           emp.ShiftHours,
		HourlyRate:           emp.HourlyRate,
		CommissionRate:       emp.CommissionRate,
		LatePenaltyPerMinute: emp.LatePenaltyPerMinute,
		AbsencePenaltyPerDay: emp.AbsencePenaltyPerDay,
		CustomDeductions:     emp.CustomDeductions,
	}
}

func mapToListResponse(employees []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(employees))
	for i, emp := range employees {
		res[i] = mapToResponse(emp)
	}
	return res
}
