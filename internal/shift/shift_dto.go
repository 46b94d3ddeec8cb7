package shift

import (
	"math"
	"time"
)

type OpenShiftRequest struct {
	OpeningBalance float64 `json:"opening_balance" binding:"gte=0"`
}

type CloseShiftRequest struct {
	ActualCash *float64 `json:"actual_cash"`
	Reason     *string  `json:"reason"`
}

type ShiftResponse struct {
	ID             string  `json:"id"`
	SalonID        string  `json:"salon_id"`
	CashierID      string  `json:"cashier_id"`
	OpeningBalance float64 `json:"opening_balance"`
	Status         string  `json:"status"`
	OpenedAt       string  `json:"opened_at"`
	ClosedAt       *string `json:"closed_at"`

	TotalSales       *float64 `json:"total_sales"`
	TotalExpenses    *float64 `json:"total_expenses"`
	CashSales        *float64 `json:"cash_sales"`
	CardSales        *float64 `json:"card_sales"`
	InstapaySales    *float64 `json:"instapay_sales"`
	FinalCash        *float64 `json:"final_cash"`
	Difference       *float64 `json:"difference"`
	DifferenceReason *string  `json:"difference_reason"`
}

// CloseSummaryResponse is the reconciliation preview shown before (and the
// receipt returned after) closing. Money is rounded to two decimals only
// here.
type CloseSummaryResponse struct {
	ShiftID        string  `json:"shift_id"`
	OpeningBalance float64 `json:"opening_balance"`
	CashSales      float64 `json:"cash_sales"`
	CardSales      float64 `json:"card_sales"`
	InstapaySales  float64 `json:"instapay_sales"`
	TotalSales     float64 `json:"total_sales"`
	Discounts      float64 `json:"discounts"`
	NetSales       float64 `json:"net_sales"`
	CashExpenses   float64 `json:"cash_expenses"`
	ExpectedCash   float64 `json:"expected_cash"`

	ActualCash     *float64 `json:"actual_cash"`
	Difference     *float64 `json:"difference"`
	Classification *string  `json:"classification"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round2Ptr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	rounded := round2(*v)
	return &rounded
}

func mapToResponse(sh Shift) ShiftResponse {
	resp := ShiftResponse{
		ID:             sh.ID.String(),
		SalonID:        sh.SalonID.String(),
		CashierID:      sh.CashierID.String(),
		OpeningBalance: round2(sh.OpeningBalance),
		Status:         sh.Status,
		OpenedAt:       sh.OpenedAt.Format(time.RFC3339),

		TotalSales:       round2Ptr(sh.TotalSales),
		TotalExpenses:    round2Ptr(sh.TotalExpenses),
		CashSales:        round2Ptr(sh.CashSales),
		CardSales:        round2Ptr(sh.CardSales),
		InstapaySales:    round2Ptr(sh.InstapaySales),
		FinalCash:        round2Ptr(sh.FinalCash),
		Difference:       round2Ptr(sh.Difference),
		DifferenceReason: sh.DifferenceReason,
	}

	if sh.ClosedAt != nil {
		v := sh.ClosedAt.Format(time.RFC3339)
		resp.ClosedAt = &v
	}

	return resp
}

func mapToSummaryResponse(shiftID string, summary CloseSummary) CloseSummaryResponse {
	resp := CloseSummaryResponse{
		ShiftID:        shiftID,
		OpeningBalance: round2(summary.OpeningBalance),
		CashSales:      round2(summary.CashSales),
		CardSales:      round2(summary.CardSales),
		InstapaySales:  round2(summary.InstapaySales),
		TotalSales:     round2(summary.TotalSales),
		Discounts:      round2(summary.Discounts),
		NetSales:       round2(summary.NetSales),
		CashExpenses:   round2(summary.CashExpenses),
		ExpectedCash:   round2(summary.ExpectedCash),
	}

	if summary.ActualCash != nil {
		resp.ActualCash = round2Ptr(summary.ActualCash)
		diff := round2(summary.Difference)
		resp.Difference = &diff
		classification := summary.Classification
		resp.Classification = &classification
	}

	return resp
}
