package attendance

type CreateAttendanceRequest struct {
	EmployeeID  string  `json:"employee_id" binding:"required,uuid"`
	WorkDate    string  `json:"work_date" binding:"required"`
	Status      string  `json:"status" binding:"required,oneof=PRESENT LATE ABSENT LEAVE"`
	WorkHours   string  `json:"work_hours"`
	LateMinutes int     `json:"late_minutes" binding:"gte=0"`
	Advance     float64 `json:"advance" binding:"gte=0"`
	Notes       *string `json:"notes"`
}

type AttendanceResponse struct {
	ID          string  `json:"id"`
	SalonID     string  `json:"salon_id"`
	EmployeeID  string  `json:"employee_id"`
	WorkDate    string  `json:"work_date"`
	Status      string  `json:"status"`
	WorkHours   string  `json:"work_hours,omitempty"`
	LateMinutes int     `json:"late_minutes"`
	Advance     float64 `json:"advance"`
	Notes       *string `json:"notes,omitempty"`
}

type MonthlySummaryResponse struct {
	EmployeeID       string  `json:"employee_id"`
	Month            int     `json:"month"`
	Year             int     `json:"year"`
	PresentDays      int     `json:"present_days"`
	LateDays         int     `json:"late_days"`
	AbsentDays       int     `json:"absent_days"`
	LeaveDays        int     `json:"leave_days"`
	TotalWorkHours   float64 `json:"total_work_hours"`
	OvertimeHours    float64 `json:"overtime_hours"`
	TotalLateMinutes int     `json:"total_late_minutes"`
}
