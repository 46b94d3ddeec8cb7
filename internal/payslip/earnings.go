package payslip

import (
	"fmt"

	"go-salon/internal/attendance"
	"go-salon/internal/employee"
)

// Overtime is always paid at time and a half, whatever the salary model.
const overtimeMultiplier = 1.5

// Earnings is the system-computed income side of a statement. Commission and
// overtime here are incentives derived from the salary model, not the manual
// bonus ledger.
type Earnings struct {
	BaseSalary    float64
	SalaryNote    string
	Commission    float64
	OvertimePay   float64
	TotalEarnings float64
}

// ComputeEarnings derives base salary, commission and overtime pay from the
// employee's salary model and the month's aggregates. Pure: same inputs,
// same output.
func ComputeEarnings(emp employee.Employee, summary attendance.MonthlySummary, salesTotal float64) Earnings {
	var e Earnings

	switch emp.SalaryType {
	case employee.SalaryTypeDaily:
		perDay := 0.0
		if emp.WorkDays > 0 {
			perDay = emp.BaseSalary / float64(emp.WorkDays)
		}
		e.BaseSalary = perDay * float64(summary.PresentDays)
		e.SalaryNote = fmt.Sprintf("%.2f/day x %d days", perDay, summary.PresentDays)
	case employee.SalaryTypeHourly:
		e.BaseSalary = emp.HourlyRate * summary.TotalWorkHours
		e.SalaryNote = fmt.Sprintf("%.2f/hour x %.1f hours", emp.HourlyRate, summary.TotalWorkHours)
	default:
		e.BaseSalary = emp.BaseSalary
		e.SalaryNote = "fixed monthly salary"
	}

	e.OvertimePay = summary.OvertimeHours * EffectiveHourlyRate(emp) * overtimeMultiplier

	if emp.CommissionRate > 0 {
		e.Commission = salesTotal * emp.CommissionRate / 100
	}

	e.TotalEarnings = e.BaseSalary + e.Commission + e.OvertimePay

	return e
}

// EffectiveHourlyRate is the rate overtime is valued at: the configured
// hourly rate for hourly employees, otherwise derived from the monthly base
// over the configured working schedule.
func EffectiveHourlyRate(emp employee.Employee) float64 {
	if emp.SalaryType == employee.SalaryTypeHourly {
		return emp.HourlyRate
	}
	denom := float64(emp.WorkDays) * emp.ShiftHours
	if denom <= 0 {
		return 0
	}
	return emp.BaseSalary / denom
}
