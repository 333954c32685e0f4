package format

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dealerhub/sales-api/pkg/pricing"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{name: "grouped", in: 900000, want: "900.000"},
		{name: "millions", in: 1250000000, want: "1.250.000.000"},
		{name: "small", in: 500, want: "500"},
		{name: "zero", in: 0, want: "0"},
		{name: "rounds to whole VND", in: 999.6, want: "1.000"},
		{name: "negative", in: -100000, want: "-100.000"},
		{name: "NaN", in: math.NaN(), want: ""},
		{name: "infinity", in: math.Inf(1), want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCurrency(tt.in))
		})
	}
}

func TestFormatCurrencyPtr(t *testing.T) {
	v := 1500000.0
	assert.Equal(t, "1.500.000", FormatCurrencyPtr(&v))
	assert.Equal(t, "", FormatCurrencyPtr(nil))
}

func TestEndToEndDiscount(t *testing.T) {
	pct := 10.0
	discount := pricing.ComputeDiscountAmount(1000000, &pct, pricing.DiscountPercentage)
	assert.Equal(t, pricing.Money(100000), discount)

	total := pricing.ComputeTotal(1000000, discount)
	assert.Equal(t, pricing.Money(900000), total)
	assert.Equal(t, "900.000", FormatMoney(int64(total)))
}

func TestFormatYearsAndMonths(t *testing.T) {
	assert.Equal(t, "3 năm", FormatYears("3"))
	assert.Equal(t, "1.5 năm", FormatYears(" 1.5 "))
	assert.Equal(t, "không rõ", FormatYears("không rõ"))
	assert.Equal(t, "", FormatYears(""))
	assert.Equal(t, "6 tháng", FormatMonths("6"))
	assert.Equal(t, "abc", FormatMonths("abc"))
	assert.Equal(t, "NaN", FormatYears("NaN"))
	assert.Equal(t, "Inf", FormatMonths("Inf"))
	assert.Equal(t, "-Infinity", FormatYears("-Infinity"))
}

func TestFormatDiscount(t *testing.T) {
	assert.Equal(t, "10%", FormatDiscount(10, pricing.DiscountPercentage))
	assert.Equal(t, "2.5%", FormatDiscount(2.5, pricing.DiscountPercentage))
	assert.Equal(t, "5.000.000", FormatDiscount(5000000, pricing.DiscountFixed))
	assert.Equal(t, "5.000.000", FormatDiscount(5000000, pricing.DiscountNone))
	assert.Equal(t, "", FormatDiscount(math.NaN(), pricing.DiscountPercentage))
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		pattern string
		want    string
	}{
		{name: "date only", value: "2024-03-15", want: "15/03/2024"},
		{name: "utc timestamp shifts to local day", value: "2024-03-14T17:30:00.000Z", want: "15/03/2024"},
		{name: "offset timestamp", value: "2024-03-15T08:05:09+07:00", pattern: "HH:mm:ss DD/MM/YY", want: "08:05:09 15/03/24"},
		{name: "short tokens", value: "2024-03-05", pattern: "D/M/YYYY", want: "5/3/2024"},
		{name: "month label", value: "2024-11-30", pattern: "MM/YYYY", want: "11/2024"},
		{name: "literal text", value: "2024-01-02", pattern: "Ngày DD", want: "Ngày 02"},
		{name: "empty", value: "", want: ""},
		{name: "invalid", value: "not a date", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDate(tt.value, tt.pattern))
		})
	}
}

func TestFormatTime_Zero(t *testing.T) {
	assert.Equal(t, "", FormatTime(time.Time{}, ""))
}

func TestParseDisplayDateToISO(t *testing.T) {
	assert.Equal(t, "2024-03-15", ParseDisplayDateToISO("15/03/2024"))
	assert.Equal(t, "2024-03-05", ParseDisplayDateToISO("5/3/2024"))
	assert.Equal(t, "", ParseDisplayDateToISO("31/02/2024"))
	assert.Equal(t, "", ParseDisplayDateToISO("2024-03-15"))
	assert.Equal(t, "", ParseDisplayDateToISO(""))
}

func TestDisplayDateRoundTrip(t *testing.T) {
	for _, display := range []string{"01/01/2000", "29/02/2024", "31/12/2025", "15/06/1990"} {
		assert.Equal(t, display, FormatDate(ParseDisplayDateToISO(display), ""))
	}
}
