package events

import "time"

const EmployeeCreatedTopic = "salon.employee.lifecycle.v1"

type EmployeeCreatedEvent struct {
	EventType  string    `json:"event_type"`
	EmployeeID string    `json:"employee_id"`
	SalonID    string    `json:"salon_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
