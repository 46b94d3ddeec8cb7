package attendance

import (
	"context"
	"database/sql"
	"errors"
	"time"

	attendanceerrors "go-salon/internal/attendance/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, salonID string, req CreateAttendanceRequest) (AttendanceResponse, error)
	GetByEmployeeAndMonth(ctx context.Context, salonID, employeeID string, month, year int) ([]AttendanceResponse, error)
	GetMonthlySummary(ctx context.Context, salonID, employeeID string, month, year int, shiftHours float64) (MonthlySummary, error)
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
	req CreateAttendanceRequest,
) (AttendanceResponse, error) {
	salonUUID, err := uuid.Parse(salonID)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}
	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}
	workDate, err := time.Parse("2006-01-02", req.WorkDate)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidDateFormat
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	existing, err := qtx.FindByEmployeeAndDate(ctx, salonID, req.EmployeeID, workDate)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return AttendanceResponse{}, err
	}
	if err == nil && existing != nil {
		return AttendanceResponse{}, attendanceerrors.ErrDuplicateAttendance
	}

	rec := &Attendance{
		ID:          uuid.New(),
		SalonID:     salonUUID,
		EmployeeID:  employeeUUID,
		WorkDate:    workDate,
		Status:      req.Status,
		WorkHours:   req.WorkHours,
		LateMinutes: req.LateMinutes,
		Advance:     req.Advance,
		Notes:       req.Notes,
	}

	if err := qtx.Create(ctx, rec); err != nil {
		return AttendanceResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}
	return mapToResponse(*rec), nil
}

func (s *service) GetByEmployeeAndMonth(
	ctx context.Context,
	salonID, employeeID string,
	month, year int,
) ([]AttendanceResponse, error) {
	if month < 1 || month > 12 {
		return nil, attendanceerrors.ErrInvalidMonth
	}

	records, err := s.repo.FindByEmployeeAndMonth(ctx, salonID, employeeID, month, year)
	if err != nil {
		return nil, err
	}

	res := make([]AttendanceResponse, len(records))
	for i, rec := range records {
		res[i] = mapToResponse(rec)
	}
	return res, nil
}

func (s *service) GetMonthlySummary(
	ctx context.Context,
	salonID, employeeID string,
	month, year int,
	shiftHours float64,
) (MonthlySummary, error) {
	if month < 1 || month > 12 {
		return MonthlySummary{}, attendanceerrors.ErrInvalidMonth
	}

	records, err := s.repo.FindByEmployeeAndMonth(ctx, salonID, employeeID, month, year)
	if err != nil {
		return MonthlySummary{}, err
	}

	return Summarize(records, shiftHours), nil
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

func mapToResponse(rec Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:          rec.ID.String(),
		SalonID:     rec.SalonID.String(),
		EmployeeID:  rec.EmployeeID.String(),
		WorkDate:    rec.WorkDate.Format("2006-01-02"),
		Status:      rec.Status,
		WorkHours:   rec.WorkHours,
		LateMinutes: rec.LateMinutes,
		Advance:     rec.Advance,
		Notes:       rec.Notes,
	}
}
