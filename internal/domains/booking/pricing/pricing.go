// Package pricing derives the frozen price of a stay.
//
// All arithmetic is fixed-point. Taxes are rounded half-up to cents; the
// subtotal is exact because prices carry at most two decimals.
package pricing

import (
	"voyage/shared/constant"
	"voyage/shared/failure"

	"github.com/shopspring/decimal"
)

type Quote struct {
	PricePerNight decimal.Decimal
	Nights        int
	Rooms         int
	Subtotal      decimal.Decimal
	Taxes         decimal.Decimal
	Total         decimal.Decimal
}

// Calculate returns subtotal = price * nights * rooms, taxes = subtotal * taxRate
// rounded to two places, and their sum.
func Calculate(pricePerNight decimal.Decimal, nights, rooms int, taxRate decimal.Decimal) (Quote, error) {
	switch {
	case nights < 1:
		return Quote{}, failure.BadRequestFromString("a stay must last at least one night") //nolint:wrapcheck
	case rooms < 1:
		return Quote{}, failure.BadRequestFromString("num_rooms must be at least 1") //nolint:wrapcheck
	case pricePerNight.IsNegative():
		return Quote{}, failure.BadRequestFromString("price_per_night cannot be negative") //nolint:wrapcheck
	case taxRate.IsNegative():
		return Quote{}, failure.BadRequestFromString("tax rate cannot be negative") //nolint:wrapcheck
	}

	subtotal := pricePerNight.Mul(decimal.NewFromInt(int64(nights))).Mul(decimal.NewFromInt(int64(rooms)))
	taxes := subtotal.Mul(taxRate).Round(constant.MoneyDecimals)

	return Quote{
		PricePerNight: pricePerNight,
		Nights:        nights,
		Rooms:         rooms,
		Subtotal:      subtotal,
		Taxes:         taxes,
		Total:         subtotal.Add(taxes),
	}, nil
}
