package pricing_test

import (
	"testing"

	"voyage/internal/domains/booking/pricing"
	"voyage/shared/failure"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name     string
		price    string
		nights   int
		rooms    int
		taxRate  string
		subtotal string
		taxes    string
		total    string
	}{
		{
			name:  "five nights at 150 with 15 percent",
			price: "150.00", nights: 5, rooms: 1, taxRate: "0.15",
			subtotal: "750.00", taxes: "112.50", total: "862.50",
		},
		{
			name:  "multiple rooms",
			price: "99.99", nights: 2, rooms: 3, taxRate: "0.15",
			subtotal: "599.94", taxes: "89.99", total: "689.93",
		},
		{
			name:  "half cent rounds up",
			price: "0.10", nights: 1, rooms: 1, taxRate: "0.05",
			subtotal: "0.10", taxes: "0.01", total: "0.11",
		},
		{
			name:  "zero tax",
			price: "80.00", nights: 3, rooms: 1, taxRate: "0",
			subtotal: "240.00", taxes: "0", total: "240.00",
		},
		{
			name:  "free room",
			price: "0", nights: 1, rooms: 2, taxRate: "0.15",
			subtotal: "0", taxes: "0", total: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := pricing.Calculate(decimal.RequireFromString(tt.price), tt.nights, tt.rooms, decimal.RequireFromString(tt.taxRate))
			require.NoError(t, err)

			assert.True(t, decimal.RequireFromString(tt.subtotal).Equal(quote.Subtotal), "subtotal %s", quote.Subtotal)
			assert.True(t, decimal.RequireFromString(tt.taxes).Equal(quote.Taxes), "taxes %s", quote.Taxes)
			assert.True(t, decimal.RequireFromString(tt.total).Equal(quote.Total), "total %s", quote.Total)
			assert.Equal(t, tt.nights, quote.Nights)
			assert.Equal(t, tt.rooms, quote.Rooms)
		})
	}
}

func TestCalculate_StringForm(t *testing.T) {
	quote, err := pricing.Calculate(decimal.RequireFromString("150.00"), 5, 1, decimal.RequireFromString("0.15"))
	require.NoError(t, err)

	assert.Equal(t, "750.00", quote.Subtotal.StringFixed(2))
	assert.Equal(t, "112.50", quote.Taxes.StringFixed(2))
	assert.Equal(t, "862.50", quote.Total.StringFixed(2))
}

func TestCalculate_Invalid(t *testing.T) {
	price := decimal.RequireFromString("100")
	rate := decimal.RequireFromString("0.15")

	tests := []struct {
		name   string
		price  decimal.Decimal
		nights int
		rooms  int
		rate   decimal.Decimal
	}{
		{name: "zero nights", price: price, nights: 0, rooms: 1, rate: rate},
		{name: "zero rooms", price: price, nights: 1, rooms: 0, rate: rate},
		{name: "negative price", price: price.Neg(), nights: 1, rooms: 1, rate: rate},
		{name: "negative tax", price: price, nights: 1, rooms: 1, rate: rate.Neg()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := pricing.Calculate(tt.price, tt.nights, tt.rooms, tt.rate)

			assert.ErrorIs(t, err, failure.ErrValidation)
		})
	}
}
