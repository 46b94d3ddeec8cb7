package expense

import (
	"context"
	"database/sql"
	"time"

	"go-salon/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=expense_repo.go -destination=mock/expense_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *Expense) error
	FindSince(ctx context.Context, salonID string, since time.Time) ([]Expense, error)
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

func (r *repository) Create(ctx context.Context, e *Expense) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) FindSince(ctx context.Context, salonID string, since time.Time) ([]Expense, error) {
	var expenses []Expense
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(salonID)).
		Where("spent_at >= ?", since).
		Order("spent_at ASC").
		Find(&expenses).Error
	return expenses, err
}

func (r *repository) Delete(ctx context.Context, salonID, id string) error {
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(salonID)).
		Delete(&Expense{}, "id = ?", id).Error
}
