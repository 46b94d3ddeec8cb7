package shift_test

import (
	"testing"
	"time"

	"go-salon/internal/expense"
	"go-salon/internal/sale"
	"go-salon/internal/shift"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 {
	return &v
}

var openedAt = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func openShift(opening float64) shift.Shift {
	return shift.Shift{
		OpeningBalance: opening,
		Status:         shift.StatusOpen,
		OpenedAt:       openedAt,
	}
}

func TestSummarize_DrawerShortage(t *testing.T) {
	sh := openShift(500)
	sales := []sale.Sale{
		{PaymentMethod: sale.PaymentMethodCash, Amount: 1200},
	}
	expenses := []expense.Expense{
		{Method: expense.MethodCash, Amount: 200, SpentAt: openedAt.Add(time.Hour)},
	}

	summary := shift.Summarize(sh, sales, expenses, floatPtr(1480))

	assert.Equal(t, 1500.0, summary.ExpectedCash)
	assert.Equal(t, -20.0, summary.Difference)
	assert.Equal(t, shift.ClassificationShortage, summary.Classification)
}

func TestSummarize_ExpensesBeforeOpenIgnored(t *testing.T) {
	sh := openShift(500)
	expenses := []expense.Expense{
		{Method: expense.MethodCash, Amount: 999, SpentAt: openedAt.Add(-time.Hour)},
		{Method: expense.MethodCard, Amount: 400, SpentAt: openedAt.Add(time.Hour)},
		{Method: expense.MethodCash, Amount: 100, SpentAt: openedAt.Add(time.Hour)},
	}

	summary := shift.Summarize(sh, nil, expenses, nil)

	assert.Equal(t, 100.0, summary.CashExpenses)
	assert.Equal(t, 400.0, summary.ExpectedCash)
}

func TestSummarize_AuthoritativeTotalsWin(t *testing.T) {
	sh := openShift(500)
	sh.TotalSales = floatPtr(2000)
	sh.CashSales = floatPtr(1500)
	sh.TotalExpenses = floatPtr(300)

	// Raw records disagree with the stamped totals and must lose.
	sales := []sale.Sale{
		{PaymentMethod: sale.PaymentMethodCash, Amount: 100},
		{PaymentMethod: sale.PaymentMethodCard, Amount: 50},
	}

	summary := shift.Summarize(sh, sales, nil, nil)

	assert.Equal(t, 2000.0, summary.TotalSales)
	assert.Equal(t, 1500.0, summary.CashSales)
	assert.Equal(t, 50.0, summary.CardSales)
	assert.Equal(t, 300.0, summary.CashExpenses)
	assert.Equal(t, 500.0+1500-300, summary.ExpectedCash)
}

func TestSummarize_DiscountsAndNetSales(t *testing.T) {
	sh := openShift(0)
	sales := []sale.Sale{
		{PaymentMethod: sale.PaymentMethodCard, Subtotal: floatPtr(100), Discount: floatPtr(20), Amount: 80},
		{PaymentMethod: sale.PaymentMethodCash, Amount: 50},
	}

	summary := shift.Summarize(sh, sales, nil, nil)

	assert.Equal(t, 20.0, summary.Discounts)
	assert.Equal(t, 130.0, summary.TotalSales)
	assert.Equal(t, 110.0, summary.NetSales)
}

func TestClassify_SignMapping(t *testing.T) {
	assert.Equal(t, shift.ClassificationOverage, shift.Classify(0.01))
	assert.Equal(t, shift.ClassificationShortage, shift.Classify(-0.01))
	assert.Equal(t, shift.ClassificationBalanced, shift.Classify(0))
}
