// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format used in requests and responses.
const DateLayout = "2006-01-02"

// FormatMoney renders an amount with two decimal places.
func FormatMoney(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// FormatPercentage renders a percentage rounded to two decimal places.
func FormatPercentage(p decimal.Decimal) float64 {
	return p.Round(2).InexactFloat64()
}

func formatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}
