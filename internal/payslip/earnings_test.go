package payslip_test

import (
	"testing"

	"go-salon/internal/attendance"
	"go-salon/internal/employee"
	"go-salon/internal/payslip"

	"github.com/stretchr/testify/assert"
)

func TestComputeEarnings_DailyModel(t *testing.T) {
	emp := employee.Employee{
		SalaryType: employee.SalaryTypeDaily,
		BaseSalary: 2600,
		WorkDays:   26,
		ShiftHours: 8,
	}
	summary := attendance.MonthlySummary{PresentDays: 20}

	earnings := payslip.ComputeEarnings(emp, summary, 0)

	assert.Equal(t, 2000.0, earnings.BaseSalary)
	assert.Equal(t, "100.00/day x 20 days", earnings.SalaryNote)
}

func TestComputeEarnings_HourlyModel(t *testing.T) {
	emp := employee.Employee{
		SalaryType: employee.SalaryTypeHourly,
		HourlyRate: 25,
		WorkDays:   26,
		ShiftHours: 8,
	}
	summary := attendance.MonthlySummary{TotalWorkHours: 160}

	earnings := payslip.ComputeEarnings(emp, summary, 0)

	assert.Equal(t, 4000.0, earnings.BaseSalary)
}

func TestComputeEarnings_MonthlyModel(t *testing.T) {
	emp := employee.Employee{
		SalaryType: employee.SalaryTypeMonthly,
		BaseSalary: 3000,
		WorkDays:   26,
		ShiftHours: 8,
	}

	earnings := payslip.ComputeEarnings(emp, attendance.MonthlySummary{PresentDays: 5}, 0)

	assert.Equal(t, 3000.0, earnings.BaseSalary)
	assert.Equal(t, "fixed monthly salary", earnings.SalaryNote)
}

func TestComputeEarnings_OvertimeAtDerivedRate(t *testing.T) {
	emp := employee.Employee{
		SalaryType: employee.SalaryTypeMonthly,
		BaseSalary: 2600,
		WorkDays:   26,
		ShiftHours: 8,
	}
	// Derived hourly rate is 2600/(26*8) = 12.5.
	summary := attendance.MonthlySummary{OvertimeHours: 2}

	earnings := payslip.ComputeEarnings(emp, summary, 0)

	assert.Equal(t, 12.5, payslip.EffectiveHourlyRate(emp))
	assert.Equal(t, 2*12.5*1.5, earnings.OvertimePay)
}

func TestComputeEarnings_HourlyRateUsedDirectlyForOvertime(t *testing.T) {
	emp := employee.Employee{
		SalaryType: employee.SalaryTypeHourly,
		HourlyRate: 30,
		WorkDays:   26,
		ShiftHours: 8,
	}

	assert.Equal(t, 30.0, payslip.EffectiveHourlyRate(emp))
}

func TestComputeEarnings_Commission(t *testing.T) {
	emp := employee.Employee{
		SalaryType:     employee.SalaryTypeMonthly,
		BaseSalary:     2000,
		WorkDays:       26,
		ShiftHours:     8,
		CommissionRate: 10,
	}

	earnings := payslip.ComputeEarnings(emp, attendance.MonthlySummary{}, 5000)

	assert.Equal(t, 500.0, earnings.Commission)
}

func TestComputeEarnings_ZeroCommissionRate(t *testing.T) {
	emp := employee.Employee{
		SalaryType: employee.SalaryTypeMonthly,
		BaseSalary: 2000,
		WorkDays:   26,
		ShiftHours: 8,
	}

	earnings := payslip.ComputeEarnings(emp, attendance.MonthlySummary{}, 1000000)

	assert.Equal(t, 0.0, earnings.Commission)
}

func TestComputeEarnings_TotalIdentity(t *testing.T) {
	summary := attendance.MonthlySummary{
		PresentDays:    22,
		TotalWorkHours: 180,
		OvertimeHours:  4,
	}

	for _, salaryType := range []string{
		employee.SalaryTypeMonthly,
		employee.SalaryTypeDaily,
		employee.SalaryTypeHourly,
	} {
		emp := employee.Employee{
			SalaryType:     salaryType,
			BaseSalary:     2600,
			WorkDays:       26,
			ShiftHours:     8,
			HourlyRate:     15,
			CommissionRate: 5,
		}

		earnings := payslip.ComputeEarnings(emp, summary, 3000)

		assert.Equal(t, earnings.BaseSalary+earnings.Commission+earnings.OvertimePay, earnings.TotalEarnings, salaryType)
	}
}
