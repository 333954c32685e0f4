// Package format renders money, dates and durations the way the sales app displays them.
package format

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dealerhub/sales-api/pkg/pricing"
)

const (
	yearSuffix  = "năm"
	monthSuffix = "tháng"
)

// Vietnamese groups thousands with "." and has no fractional subunit in VND
var printer = message.NewPrinter(language.Vietnamese)

// FormatMoney formats a whole VND amount, e.g. 900000 becomes "900.000"
func FormatMoney(amount int64) string {
	return printer.Sprintf("%d", amount)
}

// FormatCurrency formats amount rounded to whole VND without a currency symbol.
// NaN and infinities format as an empty string.
func FormatCurrency(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || math.Abs(amount) >= math.MaxInt64 {
		return ""
	}
	return FormatMoney(int64(math.Round(amount)))
}

// FormatCurrencyPtr is FormatCurrency for optional amounts; nil formats as ""
func FormatCurrencyPtr(amount *float64) string {
	if amount == nil {
		return ""
	}
	return FormatCurrency(*amount)
}

// FormatYears appends the year unit to a numeric value: "3" becomes "3 năm".
// Non-numeric input is returned unchanged.
func FormatYears(v string) string {
	return withUnit(v, yearSuffix)
}

// FormatMonths appends the month unit to a numeric value: "6" becomes "6 tháng".
// Non-numeric input is returned unchanged.
func FormatMonths(v string) string {
	return withUnit(v, monthSuffix)
}

// FormatDiscount renders a discount value: percentages as "10%", anything else as currency
func FormatDiscount(value float64, kind pricing.DiscountKind) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return ""
	}
	if kind == pricing.DiscountPercentage {
		return strconv.FormatFloat(value, 'f', -1, 64) + "%"
	}
	return FormatCurrency(value)
}

func withUnit(v, unit string) string {
	trimmed := strings.TrimSpace(v)
	// ParseFloat also accepts "NaN" and "Inf", which are not amounts
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return v
	}
	return trimmed + " " + unit
}
