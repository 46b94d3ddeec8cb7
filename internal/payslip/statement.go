package payslip

import (
	"go-salon/internal/attendance"
	"go-salon/internal/shared/overlay"
)

// Statement is the full earnings-and-deductions result for one employee and
// month. It is derived fresh on every query and never persisted as-is.
type Statement struct {
	EmployeeID string
	Month      int
	Year       int

	BaseSalary       float64
	SalaryNote       string
	Commission       float64
	TotalSalesAmount float64
	OvertimeHours    float64
	OvertimePay      float64
	TotalEarnings    float64

	LateDeduction   float64
	AbsentDeduction float64
	CustomDeduction float64
	Advances        float64
	AdvanceDetails  []attendance.AdvanceDetail
	TotalDeductions float64

	NetSalary float64

	PresentDays      int
	LateDays         int
	AbsentDays       int
	LeaveDays        int
	TotalWorkHours   float64
	TotalLateMinutes int

	// Filled by the service after reconciliation; manual bonuses are always
	// added on top, whatever the origin of the base figures.
	BonusTotal               float64
	TotalEarningsWithBonuses float64
	NetSalaryWithBonuses     float64
}

// RemoteStatement mirrors Statement with optional fields, as returned by the
// central payroll endpoint. A partially populated payload is valid and fills
// only the fields it provides. There is no net salary field on purpose: net
// is always recomputed from the merged totals, never taken off the wire.
type RemoteStatement struct {
	BaseSalary       *float64 `json:"base_salary"`
	SalaryNote       *string  `json:"salary_note"`
	Commission       *float64 `json:"commission"`
	TotalSalesAmount *float64 `json:"total_sales_amount"`
	OvertimeHours    *float64 `json:"overtime_hours"`
	OvertimePay      *float64 `json:"overtime_pay"`
	TotalEarnings    *float64 `json:"total_earnings"`

	LateDeduction   *float64 `json:"late_deduction"`
	AbsentDeduction *float64 `json:"absent_deduction"`
	CustomDeduction *float64 `json:"custom_deduction"`
	Advances        *float64 `json:"advances"`
	TotalDeductions *float64 `json:"total_deductions"`

	PresentDays      *int     `json:"present_days"`
	LateDays         *int     `json:"late_days"`
	AbsentDays       *int     `json:"absent_days"`
	LeaveDays        *int     `json:"leave_days"`
	TotalWorkHours   *float64 `json:"total_work_hours"`
	TotalLateMinutes *int     `json:"total_late_minutes"`
}

// Reconcile overlays an optional authoritative remote statement over the
// locally computed one, field by field. NetSalary is then recomputed from
// whichever totals survived, so the identity net = earnings - deductions
// holds regardless of each field's origin.
func Reconcile(local Statement, remote *RemoteStatement) Statement {
	if remote == nil {
		local.NetSalary = local.TotalEarnings - local.TotalDeductions
		return local
	}

	merged := local
	merged.BaseSalary = overlay.Value(remote.BaseSalary, local.BaseSalary)
	merged.SalaryNote = overlay.Value(remote.SalaryNote, local.SalaryNote)
	merged.Commission = overlay.Value(remote.Commission, local.Commission)
	merged.TotalSalesAmount = overlay.Value(remote.TotalSalesAmount, local.TotalSalesAmount)
	merged.OvertimeHours = overlay.Value(remote.OvertimeHours, local.OvertimeHours)
	merged.OvertimePay = overlay.Value(remote.OvertimePay, local.OvertimePay)
	merged.TotalEarnings = overlay.Value(remote.TotalEarnings, local.TotalEarnings)

	merged.LateDeduction = overlay.Value(remote.LateDeduction, local.LateDeduction)
	merged.AbsentDeduction = overlay.Value(remote.AbsentDeduction, local.AbsentDeduction)
	merged.CustomDeduction = overlay.Value(remote.CustomDeduction, local.CustomDeduction)
	merged.Advances = overlay.Value(remote.Advances, local.Advances)
	merged.TotalDeductions = overlay.Value(remote.TotalDeductions, local.TotalDeductions)

	merged.PresentDays = overlay.Value(remote.PresentDays, local.PresentDays)
	merged.LateDays = overlay.Value(remote.LateDays, local.LateDays)
	merged.AbsentDays = overlay.Value(remote.AbsentDays, local.AbsentDays)
	merged.LeaveDays = overlay.Value(remote.LeaveDays, local.LeaveDays)
	merged.TotalWorkHours = overlay.Value(remote.TotalWorkHours, local.TotalWorkHours)
	merged.TotalLateMinutes = overlay.Value(remote.TotalLateMinutes, local.TotalLateMinutes)

	merged.NetSalary = merged.TotalEarnings - merged.TotalDeductions

	return merged
}

// ApplyBonuses adds the manual bonus ledger total on top of a reconciled
// statement. This always happens after reconciliation and is never subject
// to the remote overlay.
func ApplyBonuses(st Statement, bonusTotal float64) Statement {
	st.BonusTotal = bonusTotal
	st.TotalEarningsWithBonuses = st.TotalEarnings + bonusTotal
	st.NetSalaryWithBonuses = st.TotalEarningsWithBonuses - st.TotalDeductions
	return st
}
