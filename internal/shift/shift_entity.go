package shift

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusOpen   = "OPEN"
	StatusClosed = "CLOSED"
)

// Shift is one cashier's drawer session. The Total* and *Sales pointers are
// authoritative figures a back-office sync may stamp onto the row; when nil,
// closing derives them from the raw sale and expense records instead.
type Shift struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SalonID   uuid.UUID `gorm:"type:uuid;not null;index"`
	CashierID uuid.UUID `gorm:"type:uuid;not null;index"`

	OpeningBalance float64 `gorm:"column:opening_balance;not null;default:0"`
	Status         string  `gorm:"type:varchar(10);not null;default:'OPEN';index"`

	TotalSales    *float64 `gorm:"column:total_sales"`
	TotalExpenses *float64 `gorm:"column:total_expenses"`
	CashSales     *float64 `gorm:"column:cash_sales"`
	CardSales     *float64 `gorm:"column:card_sales"`
	InstapaySales *float64 `gorm:"column:instapay_sales"`

	FinalCash        *float64 `gorm:"column:final_cash"`
	Difference       *float64 `gorm:"column:difference"`
	DifferenceReason *string  `gorm:"column:difference_reason;type:text"`

	OpenedAt  time.Time  `gorm:"column:opened_at;type:timestamptz;not null"`
	ClosedAt  *time.Time `gorm:"column:closed_at;type:timestamptz"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Shift) TableName() string {
	return "shifts"
}
