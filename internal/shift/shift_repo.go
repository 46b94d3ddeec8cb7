package shift

import (
	"context"
	"database/sql"

	"go-salon/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=shift_repo.go -destination=mock/shift_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, sh *Shift) error
	FindByIDAndSalon(ctx context.Context, salonID, id string) (*Shift, error)
	FindOpenByCashier(ctx context.Context, salonID, cashierID string) (*Shift, error)
	FindAllBySalon(ctx context.Context, salonID string) ([]Shift, error)
	Close(ctx context.Context, salonID, id string, snap CloseSnapshot) (int64, error)
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

func (r *repository) Create(ctx context.Context, sh *Shift) error {
	return r.db.WithContext(ctx).Create(sh).Error
}

func (r *repository) FindByIDAndSalon(ctx context.Context, salonID, id string) (*Shift, error) {
	var sh Shift
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(salonID)).
		Where("id = ?", id).
		First(&sh).Error
	return &sh, err
}

func (r *repository) FindOpenByCashier(ctx context.Context, salonID, cashierID string) (*Shift, error) {
	var sh Shift
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(salonID)).
		Where("cashier_id = ?", cashierID).
		Where("status = ?", StatusOpen).
		First(&sh).Error
	return &sh, err
}

func (r *repository) FindAllBySalon(ctx context.Context, salonID string) ([]Shift, error) {
	var shifts []Shift
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(salonID)).
		Order("opened_at DESC").
		Find(&shifts).Error
	return shifts, err
}

// Close persists the closing snapshot. The status guard in the WHERE clause
// makes the transition one-way even under concurrent close attempts; zero
// rows affected means the shift was not open.
func (r *repository) Close(ctx context.Context, salonID, id string, snap CloseSnapshot) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&Shift{}).
		Scopes(tenant.Scope(salonID)).
		Where("id = ?", id).
		Where("status = ?", StatusOpen).
		Updates(map[string]interface{}{
			"status":            StatusClosed,
			"final_cash":        snap.FinalCash,
			"total_sales":       snap.TotalSales,
			"total_expenses":    snap.TotalExpenses,
			"cash_sales":        snap.CashSales,
			"card_sales":        snap.CardSales,
			"instapay_sales":    snap.InstapaySales,
			"difference":        snap.Difference,
			"difference_reason": snap.DifferenceReason,
			"closed_at":         snap.ClosedAt,
		})
	return result.RowsAffected, result.Error
}
