package employee

import (
	"context"
	"database/sql"

	"go-salon/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, emp *Employee) error
	FindAllBySalon(ctx context.Context, salonID string) ([]Employee, error)
	FindByIDAndSalon(ctx context.Context, salonID, id string) (*Employee, error)
	Update(ctx context.Context, emp *Employee) error
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

func (r *repository) Create(ctx context.Context, emp *Employee) error {
	return r.db.WithContext(ctx).Create(emp).Error
}

func (r *repository) FindAllBySalon(ctx context.Context, salonID string) ([]Employee, error) {
	var employees []Employee
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(salonID)).
		Order("full_name ASC").
		Find(&employees).Error
	return employees, err
}

func (r *repository) FindByIDAndSalon(ctx context.Context, salonID, id string) (*Employee, error) {
	var emp Employee
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(salonID)).
		First(&emp, "id = ?", id).Error
	return &emp, err
}

func (r *repository) Update(ctx context.Context, emp *Employee) error {
	return r.db.WithContext(ctx).Save(emp).Error
}

func (r *repository) Delete(ctx context.Context, salonID, id string) error {
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(salonID)).
		Delete(&Employee{}, "id = ?", id).Error
}
