package rbac

import "gorm.io/gorm"

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	GetUserRoles(salonID string) ([]UserRoleRow, error)
	GetRolePermissions(salonID string) ([]RolePermissionRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetUserRoles(salonID string) ([]UserRoleRow, error) {
	var rows []UserRoleRow
	err := r.db.
		Table("user_roles").
		Where("salon_id = ?", salonID).
		Find(&rows).Error
	return rows, err
}

func (r *repository) GetRolePermissions(salonID string) ([]RolePermissionRow, error) {
	var rows []RolePermissionRow
	err := r.db.
		Table("role_permissions").
		Where("salon_id = ?", salonID).
		Find(&rows).Error
	return rows, err
}
