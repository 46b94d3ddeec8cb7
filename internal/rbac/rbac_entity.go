package rbac

type EnforceRequest struct {
	UserID   string
	SalonID  string
	Resource string
	Action   string
}

type UserRoleRow struct {
	UserID  string `gorm:"column:user_id;type:uuid"`
	RoleID  string `gorm:"column:role_id;type:uuid"`
	SalonID string `gorm:"column:salon_id;type:uuid"`
}

type RolePermissionRow struct {
	RoleID   string `gorm:"column:role_id;type:uuid"`
	SalonID  string `gorm:"column:salon_id;type:uuid"`
	Resource string `gorm:"column:resource"`
	Action   string `gorm:"column:action"`
}
