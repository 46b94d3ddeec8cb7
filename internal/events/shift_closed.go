package events

import "time"

const ShiftClosedTopic = "salon.shift.closed.v1"

type ShiftClosedEvent struct {
	EventType    string    `json:"event_type"`
	ShiftID      string    `json:"shift_id"`
	SalonID      string    `json:"salon_id"`
	CashierID    string    `json:"cashier_id"`
	NetSales     float64   `json:"net_sales"`
	ExpectedCash float64   `json:"expected_cash"`
	FinalCash    float64   `json:"final_cash"`
	Difference   float64   `json:"difference"`
	OccurredAt   time.Time `json:"occurred_at"`
}
