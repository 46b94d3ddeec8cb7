package sale

type CreateSaleRequest struct {
	ShiftID       *string  `json:"shift_id" binding:"omitempty,uuid"`
	SpecialistID  *string  `json:"specialist_id" binding:"omitempty,uuid"`
	SaleDate      string   `json:"sale_date" binding:"required"`
	Subtotal      *float64 `json:"subtotal" binding:"omitempty,gte=0"`
	Discount      *float64 `json:"discount" binding:"omitempty,gte=0"`
	Amount        float64  `json:"amount" binding:"required,gte=0"`
	PaymentMethod string   `json:"payment_method" binding:"required,oneof=CASH CARD INSTAPAY"`
	Description   *string  `json:"description"`
}

type SaleResponse struct {
	ID             string   `json:"id"`
	SalonID        string   `json:"salon_id"`
	ShiftID        *string  `json:"shift_id,omitempty"`
	SpecialistID   *string  `json:"specialist_id,omitempty"`
	SpecialistName string   `json:"specialist_name,omitempty"`
	SaleDate       string   `json:"sale_date"`
	Subtotal       *float64 `json:"subtotal,omitempty"`
	Discount       *float64 `json:"discount,omitempty"`
	Amount         float64  `json:"amount"`
	PaymentMethod  string   `json:"payment_method"`
	Description    *string  `json:"description,omitempty"`
}
