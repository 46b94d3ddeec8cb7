package employee

type CreateEmployeeRequest struct {
	FullName             string  `json:"full_name" binding:"required"`
	Phone                *string `json:"phone"`
	SalaryType           string  `json:"salary_type" binding:"required,oneof=MONTHLY DAILY HOURLY"`
	BaseSalary           float64 `json:"base_salary" binding:"gte=0"`
	WorkDays             int     `json:"work_days" binding:"gte=0"`
	ShiftHours           float64 `json:"shift_hours" binding:"gte=0"`
	HourlyRate           float64 `json:"hourly_rate" binding:"gte=0"`
	CommissionRate       float64 `json:"commission_rate" binding:"gte=0,lte=100"`
	LatePenaltyPerMinute float64 `json:"late_penalty_per_minute" binding:"gte=0"`
	AbsencePenaltyPerDay float64 `json:"absence_penalty_per_day" binding:"gte=0"`
	CustomDeductions     float64 `json:"custom_deductions" binding:"gte=0"`
}

type UpdateEmployeeRequest struct {
	FullName             string  `json:"full_name" binding:"required"`
	Phone                *string `json:"phone"`
	SalaryType           string  `json:"salary_type" binding:"required,oneof=MONTHLY DAILY HOURLY"`
	BaseSalary           float64 `json:"base_salary" binding:"gte=0"`
	WorkDays             int     `json:"work_days" binding:"gte=0"`
	ShiftHours           float64 `json:"shift_hours" binding:"gte=0"`
	HourlyRate           float64 `json:"hourly_rate" binding:"gte=0"`
	CommissionRate       float64 `json:"commission_rate" binding:"gte=0,lte=100"`
	LatePenaltyPerMinute float64 `json:"late_penalty_per_minute" binding:"gte=0"`
	AbsencePenaltyPerDay float64 `json:"absence_penalty_per_day" binding:"gte=0"`
	CustomDeductions     float64 `json:"custom_deductions" binding:"gte=0"`
}

type EmployeeResponse struct {
	ID                   string  `json:"id"`
	SalonID              string  `json:"salon_id"`
	FullName             string  `json:"full_name"`
	Phone                *string `json:"phone,omitempty"`
	SalaryType           string  `json:"salary_type"`
	BaseSalary           float64 `json:"base_salary"`
	WorkDays             int     `json:"work_days"`
	ShiftHours           float64 `json:"shift_hours"`
	HourlyRate           float64 `json:"hourly_rate"`
	CommissionRate       float64 `json:"commission_rate"`
	LatePenaltyPerMinute float64 `json:"late_penalty_per_minute"`
	AbsencePenaltyPerDay float64 `json:"absence_penalty_per_day"`
	CustomDeductions     float64 `json:"custom_deductions"`
}
