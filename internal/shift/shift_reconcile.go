package shift

import (
	"time"

	"go-salon/internal/expense"
	"go-salon/internal/sale"
	"go-salon/internal/shared/overlay"
)

const (
	ClassificationOverage  = "OVERAGE"
	ClassificationBalanced = "BALANCED"
	ClassificationShortage = "SHORTAGE"
)

// CloseSummary is the drawer reconciliation for one shift: the expected
// balance against the raw or authoritative figures, and the variance once
// the physical count is entered.
type CloseSummary struct {
	OpeningBalance float64
	CashSales      float64
	CardSales      float64
	InstapaySales  float64
	TotalSales     float64
	Discounts      float64
	NetSales       float64
	CashExpenses   float64
	ExpectedCash   float64

	ActualCash     *float64
	Difference     float64
	Classification string
}

// Summarize reconciles a shift against its raw sale and expense records.
// Figures stamped on the shift row win over the derived sums, field by
// field; only cash-method expenses dated at or after open reduce the
// drawer.
func Summarize(sh Shift, sales []sale.Sale, expenses []expense.Expense, actualCash *float64) CloseSummary {
	derived := sale.TotalsByMethod(sales)

	summary := CloseSummary{
		OpeningBalance: sh.OpeningBalance,
		CashSales:      overlay.Value(sh.CashSales, derived.Cash),
		CardSales:      overlay.Value(sh.CardSales, derived.Card),
		InstapaySales:  overlay.Value(sh.InstapaySales, derived.Instapay),
		Discounts:      sale.DiscountTotal(sales),
	}

	summary.TotalSales = overlay.Value(sh.TotalSales, summary.CashSales+summary.CardSales+summary.InstapaySales)
	summary.NetSales = summary.TotalSales - summary.Discounts
	summary.CashExpenses = overlay.Value(sh.TotalExpenses, expense.CashTotalSince(expenses, sh.OpenedAt))
	summary.ExpectedCash = sh.OpeningBalance + summary.CashSales - summary.CashExpenses

	if actualCash != nil {
		summary.ActualCash = actualCash
		summary.Difference = *actualCash - summary.ExpectedCash
		summary.Classification = Classify(summary.Difference)
	}

	return summary
}

// Classify maps the sign of the drawer variance to its label.
func Classify(difference float64) string {
	switch {
	case difference > 0:
		return ClassificationOverage
	case difference < 0:
		return ClassificationShortage
	default:
		return ClassificationBalanced
	}
}

// CloseSnapshot carries the fields persisted on the one-way open to closed
// transition.
type CloseSnapshot struct {
	FinalCash        float64
	TotalSales       float64
	TotalExpenses    float64
	CashSales        float64
	CardSales        float64
	InstapaySales    float64
	Difference       float64
	DifferenceReason *string
	ClosedAt         time.Time
}
