package expense

type CreateExpenseRequest struct {
	SpentAt     string  `json:"spent_at" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Method      string  `json:"method" binding:"required,oneof=CASH CARD"`
	Description string  `json:"description"`
}

type ExpenseResponse struct {
	ID          string  `json:"id"`
	SalonID     string  `json:"salon_id"`
	SpentAt     string  `json:"spent_at"`
	Amount      float64 `json:"amount"`
	Method      string  `json:"method"`
	Description string  `json:"description,omitempty"`
}
