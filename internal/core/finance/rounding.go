package finance

import "github.com/shopspring/decimal"

// Round rounds amount to places digits, halves away from zero (1.005 -> 1.01, -1.005 -> -1.01).
// It is the only rounding rule in the application; the cascade itself never rounds.
func Round(amount decimal.Decimal, places int) decimal.Decimal {
	if places < 0 {
		places = 0
	}
	return amount.Round(int32(places))
}

// FormatPlain renders amount rounded to places as a fixed-point string without grouping
// or symbol, e.g. "1306.80". Used for machine-readable transport.
func FormatPlain(amount decimal.Decimal, places int) string {
	return Round(amount, places).StringFixed(int32(clampPlaces(places)))
}

func clampPlaces(places int) int {
	if places < 0 {
		return 0
	}
	return places
}
