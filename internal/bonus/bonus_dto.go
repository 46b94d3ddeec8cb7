package bonus

type CreateBonusRequest struct {
	EmployeeID string  `json:"employee_id" binding:"required,uuid"`
	Month      int     `json:"month" binding:"required,gte=1,lte=12"`
	Year       int     `json:"year" binding:"required,gte=2000"`
	Amount     float64 `json:"amount" binding:"required,gt=0"`
	Reason     string  `json:"reason" binding:"required"`
}

type BonusResponse struct {
	ID         string  `json:"id"`
	SalonID    string  `json:"salon_id"`
	EmployeeID string  `json:"employee_id"`
	Month      int     `json:"month"`
	Year       int     `json:"year"`
	Amount     float64 `json:"amount"`
	Reason     string  `json:"reason"`
	AddedBy    string  `json:"added_by"`
	GrantedAt  string  `json:"granted_at"`
}
