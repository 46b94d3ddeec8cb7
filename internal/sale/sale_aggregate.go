package sale

// AttributedTotal sums the sale amounts attributed to one employee. The
// caller passes records already filtered to the month; commission-disabled
// employees are expected to skip the call entirely, but a zero result is
// equally correct.
func AttributedTotal(sales []Sale, employeeID string) float64 {
	var total float64
	for _, s := range sales {
		if s.SpecialistID == nil || s.SpecialistID.String() != employeeID {
			continue
		}
		total += s.Amount
	}
	return total
}

// DiscountTotal sums (subtotal - amount) over sales that carry both a
// discount and a subtotal. Sales without either contribute nothing.
func DiscountTotal(sales []Sale) float64 {
	var total float64
	for _, s := range sales {
		if s.Discount == nil || s.Subtotal == nil {
			continue
		}
		total += *s.Subtotal - s.Amount
	}
	return total
}

// TotalsByMethod splits sale amounts by payment method.
type MethodTotals struct {
	Cash     float64
	Card     float64
	Instapay float64
}

func (t MethodTotals) Sum() float64 {
	return t.Cash + t.Card + t.Instapay
}

func TotalsByMethod(sales []Sale) MethodTotals {
	var totals MethodTotals
	for _, s := range sales {
		switch s.PaymentMethod {
		case PaymentMethodCash:
			totals.Cash += s.Amount
		case PaymentMethodCard:
			totals.Card += s.Amount
		case PaymentMethodInstapay:
			totals.Instapay += s.Amount
		}
	}
	return totals
}
