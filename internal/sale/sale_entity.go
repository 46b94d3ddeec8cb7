package sale

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PaymentMethodCash     = "CASH"
	PaymentMethodCard     = "CARD"
	PaymentMethodInstapay = "INSTAPAY"
)

type Sale struct {
	ID      uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SalonID uuid.UUID  `gorm:"type:uuid;not null;index"`
	ShiftID *uuid.UUID `gorm:"type:uuid;index"`

	// Commission attribution is by stable employee id. The name is a
	// display snapshot only and is never matched against.
	SpecialistID   *uuid.UUID `gorm:"type:uuid;index"`
	SpecialistName string     `gorm:"column:specialist_name"`

	SaleDate time.Time `gorm:"column:sale_date;type:timestamptz;not null;index"`
	// Subtotal and Discount are optional; Amount is what the customer paid.
	Subtotal      *float64 `gorm:"column:subtotal"`
	Discount      *float64 `gorm:"column:discount"`
	Amount        float64  `gorm:"column:amount;not null"`
	PaymentMethod string   `gorm:"column:payment_method;type:varchar(10);not null;default:'CASH'"`
	Description   *string  `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Sale) TableName() string {
	return "sales"
}
