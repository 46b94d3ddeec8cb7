package attendance

import (
	"context"
	"database/sql"
	"time"

	"go-salon/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, rec *Attendance) error
	FindByEmployeeAndDate(ctx context.Context, salonID, employeeID string, date time.Time) (*Attendance, error)
	FindByEmployeeAndMonth(ctx context.Context, salonID, employeeID string, month, year int) ([]Attendance, error)
	FindAllBySalon(ctx context.Context, salonID string) ([]Attendance, error)
	Update(ctx context.Context, rec *Attendance) error
	Delete(ctx context.Context, salonID, id string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) Create(ctx context.Context, rec *Attendance) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *repository) FindByEmployeeAndDate(
	ctx context.Context,
	salonID, employeeID string,
	date time.Time,
) (*Attendance, error) {
	var rec Attendance
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(salonID)).
		Where("employee_id = ?", employeeID).
		Where("work_date = ?", date.Format("2006-01-02")).
		First(&rec).Error
	return &rec, err
}

func (r *repository) FindByEmployeeAndMonth(
	ctx context.Context,
	salonID, employeeID string,
	month, year int,
) ([]Attendance, error) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	var records []Attendance
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(salonID)).
		Where("employee_id = ?", employeeID).
		Where("work_date >= ? AND work_date < ?", start, end).
		Order("work_date ASC").
		Find(&records).Error
	return records, err
}

func (r *repository) FindAllBySalon(ctx context.Context, salonID string) ([]Attendance, error) {
	var records []Attendance
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(salonID)).
		Order("work_date DESC").
		Find(&records).Error
	return records, err
}

func (r *repository) Update(ctx context.Context, rec *Attendance) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *repository) Delete(ctx context.Context, salonID, id string) error {
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(salonID)).
		Delete(&Attendance{}, "id = ?", id).Error
}
