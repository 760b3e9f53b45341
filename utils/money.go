package utils

import "github.com/shopspring/decimal"

// ToCents converts a decimal currency amount from the wire into integer
// minor units: round(amount * 100). Half-up rounding, so 0.005 → 1.
func ToCents(amount float64) int64 {
	return decimal.NewFromFloat(amount).
		Mul(decimal.NewFromInt(100)).
		Round(0).
		IntPart()
}

// FromCents renders minor units back into decimal currency units.
func FromCents(cents int64) float64 {
	f, _ := decimal.NewFromInt(cents).
		Div(decimal.NewFromInt(100)).
		Float64()
	return f
}
