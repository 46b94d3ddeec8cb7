package bonus

import (
	"time"

	"github.com/google/uuid"
)

// Bonus is a manually granted ledger entry, distinct from the commission
// and overtime incentives the payslip engine computes itself. The ledger is
// append-only: entries are created and deleted, never edited.
type Bonus struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SalonID    uuid.UUID `gorm:"type:uuid;not null;index"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index"`
	Month      int       `gorm:"not null"`
	Year       int       `gorm:"not null"`
	Amount     float64   `gorm:"not null"`
	Reason     string    `gorm:"not null"`
	AddedBy    uuid.UUID `gorm:"column:added_by;type:uuid;not null"`
	GrantedAt  time.Time `gorm:"column:granted_at;not null"`
	CreatedAt  time.Time
}

func (Bonus) TableName() string {
	return "bonuses"
}

// MonthlyTotal sums a bonus set. Bonuses are always additive.
func MonthlyTotal(bonuses []Bonus) float64 {
	var total float64
	for _, b := range bonuses {
		total += b.Amount
	}
	return total
}
