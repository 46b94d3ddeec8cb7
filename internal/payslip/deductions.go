package payslip

import (
	"go-salon/internal/attendance"
	"go-salon/internal/employee"
)

// Deductions is the charge side of a statement. Each component stays
// independently reportable; a zero component means "not applicable", never
// an error.
type Deductions struct {
	LateDeduction   float64
	AbsentDeduction float64
	CustomDeduction float64
	Advances        float64
	AdvanceDetails  []attendance.AdvanceDetail
	TotalDeductions float64
}

// ComputeDeductions derives the month's deductions from the employee's
// penalty rates and the raw attendance records. The custom deduction is a
// flat monthly charge and is never pro-rated.
func ComputeDeductions(emp employee.Employee, summary attendance.MonthlySummary, records []attendance.Attendance) Deductions {
	var d Deductions

	d.LateDeduction = float64(summary.TotalLateMinutes) * emp.LatePenaltyPerMinute
	d.AbsentDeduction = float64(summary.AbsentDays) * emp.AbsencePenaltyPerDay
	d.CustomDeduction = emp.CustomDeductions
	d.AdvanceDetails, d.Advances = attendance.Advances(records)

	d.TotalDeductions = d.LateDeduction + d.AbsentDeduction + d.CustomDeduction + d.Advances

	return d
}
