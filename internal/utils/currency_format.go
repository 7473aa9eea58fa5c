package utils

import (
	"github.com/shopspring/decimal"
)

// estimatePrecision is the number of decimals shown for an EPS estimate.
const estimatePrecision = 2

// FormatEstimate renders an EPS estimate rounded to cents, followed by its currency when known.
// Example: 1.2345 with "USD" returns "1.23 USD". A nil estimate returns "".
func FormatEstimate(estimate *decimal.Decimal, currency string) string {
	if estimate == nil {
		return ""
	}
	s := estimate.StringFixed(estimatePrecision)
	if currency != "" {
		s += " " + currency
	}
	return s
}
