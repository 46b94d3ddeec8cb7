package expense

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MethodCash = "CASH"
	MethodCard = "CARD"
)

type Expense struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SalonID     uuid.UUID `gorm:"type:uuid;not null;index"`
	SpentAt     time.Time `gorm:"column:spent_at;type:timestamptz;not null;index"`
	Amount      float64   `gorm:"column:amount;not null"`
	Method      string    `gorm:"column:method;type:varchar(10);not null;default:'CASH'"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (Expense) TableName() string {
	return "expenses"
}

// CashTotalSince sums cash-method expenses dated at or after the cutoff.
// Only cash expenses reduce the drawer.
func CashTotalSince(expenses []Expense, since time.Time) float64 {
	var total float64
	for _, e := range expenses {
		if e.Method != MethodCash {
			continue
		}
		if e.SpentAt.Before(since) {
			continue
		}
		total += e.Amount
	}
	return total
}
