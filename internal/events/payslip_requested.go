package events

import "time"

const PayslipRequestedTopic = "salon.payroll.payslip.requested.v1"

type PayslipRequestedEvent struct {
	EventType   string    `json:"event_type"`
	SalonID     string    `json:"salon_id"`
	EmployeeID  string    `json:"employee_id"`
	Month       int       `json:"month"`
	Year        int       `json:"year"`
	RequestedBy string    `json:"requested_by"`
	OccurredAt  time.Time `json:"occurred_at"`
}
