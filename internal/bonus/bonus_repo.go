package bonus

import (
	"context"
	"database/sql"

	"go-salon/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=bonus_repo.go -destination=mock/bonus_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, b *Bonus) error
	FindByEmployeeAndMonth(ctx context.Context, salonID, employeeID string, month, year int) ([]Bonus, error)
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

func (r *repository) Create(ctx context.Context, b *Bonus) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *repository) FindByEmployeeAndMonth(
	ctx context.Context,
	salonID, employeeID string,
	month, year int,
) ([]Bonus, error) {
	var bonuses []Bonus
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(salonID)).
		Where("employee_id = ?", employeeID).
		Where("month = ? AND year = ?", month, year).
		Order("granted_at ASC").
		Find(&bonuses).Error
	return bonuses, err
}

func (r *repository) Delete(ctx context.Context, salonID, id string) error {
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(salonID)).
		Delete(&Bonus{}, "id = ?", id).Error
}
