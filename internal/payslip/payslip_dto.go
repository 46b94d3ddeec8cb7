package payslip

import (
	"math"
	"time"

	"go-salon/internal/attendance"
)

// StatementResponse is the rendered statement. Money leaves the engine with
// full precision and is rounded to two decimals only here.
type StatementResponse struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Month        int    `json:"month"`
	Year         int    `json:"year"`

	BaseSalary       float64 `json:"base_salary"`
	SalaryNote       string  `json:"salary_note"`
	Commission       float64 `json:"commission"`
	TotalSalesAmount float64 `json:"total_sales_amount"`
	OvertimeHours    float64 `json:"overtime_hours"`
	OvertimePay      float64 `json:"overtime_pay"`
	TotalEarnings    float64 `json:"total_earnings"`

	LateDeduction   float64                    `json:"late_deduction"`
	AbsentDeduction float64                    `json:"absent_deduction"`
	CustomDeduction float64                    `json:"custom_deduction"`
	Advances        float64                    `json:"advances"`
	AdvanceDetails  []attendance.AdvanceDetail `json:"advance_details"`
	TotalDeductions float64                    `json:"total_deductions"`

	NetSalary float64 `json:"net_salary"`

	BonusTotal               float64 `json:"bonus_total"`
	TotalEarningsWithBonuses float64 `json:"total_earnings_with_bonuses"`
	NetSalaryWithBonuses     float64 `json:"net_salary_with_bonuses"`

	PresentDays      int     `json:"present_days"`
	LateDays         int     `json:"late_days"`
	AbsentDays       int     `json:"absent_days"`
	LeaveDays        int     `json:"leave_days"`
	TotalWorkHours   float64 `json:"total_work_hours"`
	TotalLateMinutes int     `json:"total_late_minutes"`
}

type DocumentResponse struct {
	EmployeeID  string `json:"employee_id"`
	Month       int    `json:"month"`
	Year        int    `json:"year"`
	FileURL     string `json:"file_url"`
	GeneratedAt string `json:"generated_at"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func mapToStatementResponse(st Statement, employeeName string) StatementResponse {
	// Copied before rounding so the caller's statement keeps full precision.
	details := make([]attendance.AdvanceDetail, len(st.AdvanceDetails))
	copy(details, st.AdvanceDetails)
	for i := range details {
		details[i].Amount = round2(details[i].Amount)
	}

	return StatementResponse{
		EmployeeID:   st.EmployeeID,
		EmployeeName: employeeName,
		Month:        st.Month,
		Year:         st.Year,

		BaseSalary:       round2(st.BaseSalary),
		SalaryNote:       st.SalaryNote,
		Commission:       round2(st.Commission),
		TotalSalesAmount: round2(st.TotalSalesAmount),
		OvertimeHours:    st.OvertimeHours,
		OvertimePay:      round2(st.OvertimePay),
		TotalEarnings:    round2(st.TotalEarnings),

		LateDeduction:   round2(st.LateDeduction),
		AbsentDeduction: round2(st.AbsentDeduction),
		CustomDeduction: round2(st.CustomDeduction),
		Advances:        round2(st.Advances),
		AdvanceDetails:  details,
		TotalDeductions: round2(st.TotalDeductions),

		NetSalary: round2(st.NetSalary),

		BonusTotal:               round2(st.BonusTotal),
		TotalEarningsWithBonuses: round2(st.TotalEarningsWithBonuses),
		NetSalaryWithBonuses:     round2(st.NetSalaryWithBonuses),

		PresentDays:      st.PresentDays,
		LateDays:         st.LateDays,
		AbsentDays:       st.AbsentDays,
		LeaveDays:        st.LeaveDays,
		TotalWorkHours:   st.TotalWorkHours,
		TotalLateMinutes: st.TotalLateMinutes,
	}
}

func mapToDocumentResponse(doc PayslipDocument) DocumentResponse {
	return DocumentResponse{
		EmployeeID:  doc.EmployeeID.String(),
		Month:       doc.Month,
		Year:        doc.Year,
		FileURL:     doc.FileURL,
		GeneratedAt: doc.GeneratedAt.Format(time.RFC3339),
	}
}
