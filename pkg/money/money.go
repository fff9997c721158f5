// Package money centralizes the currency parsing and rounding rules shared
// by the pricing engine. Every derived amount in the engine passes through
// Round2 at the point of assignment so cent-level output stays reproducible.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Places is the fixed currency precision used across all payload fields.
const Places int32 = 2

// Round2 rounds half-up to two decimal places.
func Round2(value decimal.Decimal) decimal.Decimal {
	return value.Round(Places)
}

// ParseAmount converts a user-entered amount into a non-negative decimal.
// Blank, non-numeric, or negative input coerces to zero.
func ParseAmount(raw string) decimal.Decimal {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return decimal.Zero
	}
	parsed, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero
	}
	if parsed.IsNegative() {
		return decimal.Zero
	}
	return parsed
}

// ParseRoundedAmount parses like ParseAmount and rounds to two places.
func ParseRoundedAmount(raw string) decimal.Decimal {
	return Round2(ParseAmount(raw))
}

// ParseQty converts a user-entered quantity into a non-negative integer,
// truncating any fractional part. Blank or non-numeric input becomes 0.
func ParseQty(raw string) int64 {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0
	}
	parsed, err := decimal.NewFromString(trimmed)
	if err != nil {
		return 0
	}
	if parsed.IsNegative() {
		return 0
	}
	return parsed.IntPart()
}

// HasCentPrecision reports whether the value carries at most two decimal
// places.
func HasCentPrecision(value decimal.Decimal) bool {
	return value.Equal(value.Round(Places))
}
