package tenant

import "gorm.io/gorm"

// Scope restricts a query to one salon. Every tenant-owned table carries a
// salon_id column.
func Scope(salonID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("salon_id = ?", salonID)
	}
}
