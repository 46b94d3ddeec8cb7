package sale_test

import (
	"testing"

	"go-salon/internal/sale"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func ptr(v float64) *float64 {
	return &v
}

func TestAttributedTotal_MatchesByID(t *testing.T) {
	employeeID := uuid.New()
	other := uuid.New()

	sales := []sale.Sale{
		{SpecialistID: &employeeID, SpecialistName: "Old Name", Amount: 1000},
		{SpecialistID: &employeeID, SpecialistName: "New Name", Amount: 4000},
		{SpecialistID: &other, Amount: 999},
		{SpecialistID: nil, Amount: 500},
	}

	// A renamed specialist keeps full attribution; the name is display only.
	total := sale.AttributedTotal(sales, employeeID.String())

	assert.Equal(t, 5000.0, total)
}

func TestDiscountTotal_NeedsBothFields(t *testing.T) {
	sales := []sale.Sale{
		{Subtotal: ptr(100), Discount: ptr(20), Amount: 80},
		{Subtotal: ptr(50), Amount: 50},
		{Discount: ptr(10), Amount: 40},
		{Amount: 30},
	}

	assert.Equal(t, 20.0, sale.DiscountTotal(sales))
}

func TestTotalsByMethod(t *testing.T) {
	sales := []sale.Sale{
		{PaymentMethod: sale.PaymentMethodCash, Amount: 700},
		{PaymentMethod: sale.PaymentMethodCash, Amount: 500},
		{PaymentMethod: sale.PaymentMethodCard, Amount: 300},
		{PaymentMethod: sale.PaymentMethodInstapay, Amount: 150},
	}

	totals := sale.TotalsByMethod(sales)

	assert.Equal(t, 1200.0, totals.Cash)
	assert.Equal(t, 300.0, totals.Card)
	assert.Equal(t, 150.0, totals.Instapay)
	assert.Equal(t, 1650.0, totals.Sum())
}
