package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(v float64) *float64 { return &v }

func TestComputeDiscountAmount(t *testing.T) {
	tests := []struct {
		name  string
		base  Money
		value *float64
		kind  DiscountKind
		want  Money
	}{
		{name: "ten percent", base: 1000000, value: ptr(10), kind: DiscountPercentage, want: 100000},
		{name: "percentage rounds half up", base: 15, value: ptr(10), kind: DiscountPercentage, want: 2},
		{name: "fractional percentage", base: 1000000, value: ptr(2.5), kind: DiscountPercentage, want: 25000},
		{name: "percentage over hundred clamps", base: 500, value: ptr(150), kind: DiscountPercentage, want: 500},
		{name: "negative percentage floors", base: 500, value: ptr(-5), kind: DiscountPercentage, want: 0},
		{name: "fixed below base", base: 1000000, value: ptr(200000), kind: DiscountFixed, want: 200000},
		{name: "fixed above base", base: 1000000, value: ptr(3000000), kind: DiscountFixed, want: 1000000},
		{name: "negative fixed", base: 1000000, value: ptr(-1), kind: DiscountFixed, want: 0},
		{name: "no kind", base: 1000000, value: ptr(10), kind: DiscountNone, want: 0},
		{name: "unknown kind", base: 1000000, value: ptr(10), kind: DiscountKind("voucher"), want: 0},
		{name: "nil value", base: 1000000, value: nil, kind: DiscountPercentage, want: 0},
		{name: "NaN value", base: 1000000, value: ptr(math.NaN()), kind: DiscountFixed, want: 0},
		{name: "infinite value", base: 1000000, value: ptr(math.Inf(1)), kind: DiscountPercentage, want: 0},
		{name: "zero base", base: 0, value: ptr(10), kind: DiscountPercentage, want: 0},
		{name: "negative base", base: -100, value: ptr(10), kind: DiscountFixed, want: 0},
		{name: "fixed beyond int64", base: 1000, value: ptr(1e19), kind: DiscountFixed, want: 1000},
		{name: "huge fixed", base: 1000, value: ptr(1e25), kind: DiscountFixed, want: 1000},
		{name: "huge negative fixed", base: 1000, value: ptr(-1e25), kind: DiscountFixed, want: 0},
		{name: "huge percentage", base: 1000, value: ptr(1e25), kind: DiscountPercentage, want: 1000},
		{name: "half of max", base: MaxMoney, value: ptr(50), kind: DiscountPercentage, want: MaxMoney/2 + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeDiscountAmount(tt.base, tt.value, tt.kind))
		})
	}
}

func TestComputeDiscountAmount_Bounds(t *testing.T) {
	bases := []Money{0, 1, 99, 1000, 123456789}
	for _, base := range bases {
		for v := 0.0; v <= 100; v += 7.5 {
			got := ComputeDiscountAmount(base, ptr(v), DiscountPercentage)
			assert.GreaterOrEqual(t, got, Money(0))
			assert.LessOrEqual(t, got, base)
			assert.GreaterOrEqual(t, ComputeTotal(base, got), Money(0))
		}
		for _, v := range []float64{0, 1, 1000, 1e12} {
			got := ComputeDiscountAmount(base, ptr(v), DiscountFixed)
			assert.Equal(t, min(Money(v), base), got)
		}
	}
}

func TestComputeTotal(t *testing.T) {
	assert.Equal(t, Money(900000), ComputeTotal(1000000, 100000))
	assert.Equal(t, Money(0), ComputeTotal(100, 500))
	assert.Equal(t, Money(100), ComputeTotal(100, 0))
}

func TestComputeLineTotal(t *testing.T) {
	tests := []struct {
		name string
		item LineItem
		want LineTotal
	}{
		{
			name: "quantity multiplies price before discount",
			item: LineItem{Price: 200000, Quantity: 3, DiscountValue: ptr(10), DiscountKind: DiscountPercentage},
			want: LineTotal{BasePrice: 600000, DiscountAmount: 60000, Total: 540000},
		},
		{
			name: "zero quantity counts as one",
			item: LineItem{Price: 200000},
			want: LineTotal{BasePrice: 200000, Total: 200000},
		},
		{
			name: "product saturates",
			item: LineItem{Price: 3074457345618258603, Quantity: 3},
			want: LineTotal{BasePrice: MaxMoney, Total: MaxMoney},
		},
		{
			name: "saturated base keeps discount in range",
			item: LineItem{Price: MaxMoney, Quantity: 2, DiscountValue: ptr(1e19), DiscountKind: DiscountFixed},
			want: LineTotal{BasePrice: MaxMoney, DiscountAmount: MaxMoney, Total: 0},
		},
		{
			name: "negative quantity",
			item: LineItem{Price: 200000, Quantity: -1},
			want: LineTotal{},
		},
		{
			name: "negative price",
			item: LineItem{Price: -5, Quantity: 1},
			want: LineTotal{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeLineTotal(tt.item))
		})
	}
}

func TestComputeAggregateTotals(t *testing.T) {
	items := []LineItem{
		{Name: "Phim cách nhiệt", Price: 5000000, Quantity: 1, Formality: FormalitySell},
		{Name: "Thảm lót sàn", Price: 1500000, Quantity: 2, DiscountValue: ptr(500000), DiscountKind: DiscountFixed, Formality: FormalitySell},
		{Name: "Bảo hiểm thân vỏ", Price: 12000000, Quantity: 1, DiscountValue: ptr(50), DiscountKind: DiscountPercentage, Formality: FormalityGift},
		{Name: "Camera lùi", Price: 3000000, Quantity: 1},
		{Name: "Nước hoa", Price: 300000, Quantity: 1, Formality: Formality("other")},
	}

	got := ComputeAggregateTotals(items)
	assert.Equal(t, AggregateTotals{Sell: 7500000, Gift: 6000000}, got)
}

func TestComputeAggregateTotals_Saturates(t *testing.T) {
	items := []LineItem{
		{Name: "A", Price: 3074457345618258603, Quantity: 3, Formality: FormalitySell},
		{Name: "B", Price: MaxMoney/2 + 1, Quantity: 1, Formality: FormalitySell},
		{Name: "C", Price: MaxMoney/2 + 1, Quantity: 1, Formality: FormalityGift},
		{Name: "D", Price: MaxMoney/2 + 1, Quantity: 1, Formality: FormalityGift},
	}

	got := ComputeAggregateTotals(items)
	assert.Equal(t, AggregateTotals{Sell: MaxMoney, Gift: MaxMoney}, got)
}

func TestAdd(t *testing.T) {
	assert.Equal(t, Money(30), Add(10, 20))
	assert.Equal(t, MaxMoney, Add(MaxMoney, 1))
	assert.Equal(t, MaxMoney, Add(MaxMoney-5, 5))
	assert.Equal(t, MaxMoney, Add(MaxMoney/2+1, MaxMoney/2+1))
}

func TestComputeAggregateTotals_Empty(t *testing.T) {
	assert.Equal(t, AggregateTotals{}, ComputeAggregateTotals(nil))
}

func TestKindsAndFormalitiesValid(t *testing.T) {
	assert.True(t, DiscountPercentage.IsValid())
	assert.True(t, DiscountFixed.IsValid())
	assert.False(t, DiscountNone.IsValid())
	assert.True(t, FormalitySell.IsValid())
	assert.True(t, FormalityGift.IsValid())
	assert.False(t, Formality("x").IsValid())
}
