package pricing

import "github.com/shopspring/decimal"

// RoundWhole rounds a price to the nearest whole dollar. Decimal arithmetic
// keeps half-dollar boundaries exact where float math would drift.
func RoundWhole(v float64) float64 {
	return decimal.NewFromFloat(v).Round(0).InexactFloat64()
}

// RoundCents rounds a price to cents.
func RoundCents(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
