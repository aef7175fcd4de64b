// Package currency formats monetary amounts for reports.
package currency

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatUSD formats amount as dollars with thousands separators and two
// decimal places, e.g. 1234.5 -> "$1,234.50".
func FormatUSD(amount float64) string {
	return "$" + FormatAmount(amount)
}

// FormatAmount formats amount with thousands separators and two decimal places.
func FormatAmount(amount float64) string {
	return message.NewPrinter(language.English).Sprintf("%.2f", amount)
}

// FormatPercent formats a percentage with two decimal places and no grouping.
func FormatPercent(pct float64) string {
	return strconv.FormatFloat(pct, 'f', 2, 64)
}
