package sale

import (
	"context"
	"database/sql"
	"time"

	"go-salon/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=sale_repo.go -destination=mock/sale_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, s *Sale) error
	FindBySpecialistAndMonth(ctx context.Context, salonID, specialistID string, month, year int) ([]Sale, error)
	FindSince(ctx context.Context, salonID string, since time.Time) ([]Sale, error)
	FindByShift(ctx context.Context, salonID, shiftID string) ([]Sale, error)
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

func (r *repository) Create(ctx context.Context, s *Sale) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) FindBySpecialistAndMonth(
	ctx context.Context,
	salonID, specialistID string,
	month, year int,
) ([]Sale, error) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	var sales []Sale
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(salonID)).
		Where("specialist_id = ?", specialistID).
		Where("sale_date >= ? AND sale_date < ?", start, end).
		Order("sale_date ASC").
		Find(&sales).Error
	return sales, err
}

func (r *repository) FindSince(ctx context.Context, salonID string, since time.Time) ([]Sale, error) {
	var sales []Sale
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(salonID)).
		Where("sale_date >= ?", since).
		Order("sale_date ASC").
		Find(&sales).Error
	return sales, err
}

func (r *repository) FindByShift(ctx context.Context, salonID, shiftID string) ([]Sale, error) {
	var sales []Sale
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(salonID)).
		Where("shift_id = ?", shiftID).
		Order("sale_date ASC").
		Find(&sales).Error
	return sales, err
}

func (r *repository) Delete(ctx context.Context, salonID, id string) error {
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(salonID)).
		Delete(&Sale{}, "id = ?", id).Error
}
