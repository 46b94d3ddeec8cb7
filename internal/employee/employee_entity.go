package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	SalaryTypeMonthly = "MONTHLY"
	SalaryTypeDaily   = "DAILY"
	SalaryTypeHourly  = "HOURLY"
)

type Employee struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SalonID  uuid.UUID `gorm:"type:uuid;not null;index"`
	FullName string    `gorm:"column:full_name;not null"`
	Phone    *string   `gorm:"column:phone;type:varchar(30)"`

	// Salary model
	SalaryType string  `gorm:"column:salary_type;type:varchar(10);not null;default:'MONTHLY'"`
	BaseSalary float64 `gorm:"column:base_salary;not null;default:0"`
	// WorkDays is the days-per-month denominator for the daily model and the
	// derived hourly rate.
	WorkDays   int     `gorm:"column:work_days;not null;default:26"`
	ShiftHours float64 `gorm:"column:shift_hours;not null;default:8"`
	HourlyRate float64 `gorm:"column:hourly_rate;not null;default:0"`

	// CommissionRate is a percentage of attributed sales; 0 disables.
	CommissionRate       float64 `gorm:"column:commission_rate;not null;default:0"`
	LatePenaltyPerMinute float64 `gorm:"column:late_penalty_per_minute;not null;default:0"`
	AbsencePenaltyPerDay float64 `gorm:"column:absence_penalty_per_day;not null;default:0"`
	// CustomDeductions is a flat monthly charge, never pro-rated.
	CustomDeductions float64 `gorm:"column:custom_deductions;not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Employee) TableName() string {
	return "employees"
}
