package attendance

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPresent = "PRESENT"
	StatusLate    = "LATE"
	StatusAbsent  = "ABSENT"
	StatusLeave   = "LEAVE"
)

type Attendance struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SalonID    uuid.UUID `gorm:"type:uuid;not null;index"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index"`
	WorkDate   time.Time `gorm:"column:work_date;type:date;not null;index"`
	Status     string    `gorm:"type:varchar(10);not null;default:'PRESENT'"`
	// WorkHours arrives from the terminal as free text; the aggregator
	// parses it leniently and treats junk as zero.
	WorkHours   string  `gorm:"column:work_hours;type:varchar(16)"`
	LateMinutes int     `gorm:"column:late_minutes;not null;default:0"`
	// Advance is cash drawn against this month's salary on that day.
	Advance   float64 `gorm:"column:advance;not null;default:0"`
	Notes     *string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Attendance) TableName() string {
	return "attendances"
}
