// Package pricing derives discount amounts and totals for quotation line items.
//
// All amounts are whole VND. Functions never fail: malformed input degrades to
// a zero discount or a zero contribution instead of an error.
package pricing

import (
	"math"
	"math/bits"

	"github.com/shopspring/decimal"
)

// Money is an amount in VND
type Money int64

// MaxMoney is where products and sums of amounts saturate
const MaxMoney = Money(math.MaxInt64)

// DiscountKind tells how a discount value is applied to a base price
type DiscountKind string

const (
	DiscountNone       DiscountKind = ""
	DiscountPercentage DiscountKind = "percentage"
	DiscountFixed      DiscountKind = "fixed"
)

// Formality tells which aggregate bucket a line item belongs to
type Formality string

const (
	FormalityNone Formality = ""
	FormalitySell Formality = "sell"
	FormalityGift Formality = "gift"
)

var hundred = decimal.NewFromInt(100)

// LineItem is a sellable or giftable entry of a quotation
type LineItem struct {
	Name          string
	Price         Money
	Quantity      int
	DiscountValue *float64
	DiscountKind  DiscountKind
	Formality     Formality
}

// LineTotal holds the derived amounts for a single base price
type LineTotal struct {
	BasePrice      Money `json:"base_price"`
	DiscountAmount Money `json:"discount_amount"`
	Total          Money `json:"total"`
}

// AggregateTotals holds the summed totals of sold and gifted items
type AggregateTotals struct {
	Sell Money `json:"sell"`
	Gift Money `json:"gift"`
}

// ComputeDiscountAmount returns the discount for basePrice.
// The result is always within [0, basePrice].
func ComputeDiscountAmount(basePrice Money, value *float64, kind DiscountKind) Money {
	if value == nil || math.IsNaN(*value) || math.IsInf(*value, 0) || basePrice <= 0 {
		return 0
	}

	base := decimal.NewFromInt(int64(basePrice))
	var d decimal.Decimal
	switch kind {
	case DiscountPercentage:
		// round half away from zero to whole VND
		d = base.Mul(decimal.NewFromFloat(*value)).Div(hundred).Round(0)
	case DiscountFixed:
		d = decimal.NewFromFloat(*value).Round(0)
	default:
		return 0
	}

	// clamp before IntPart, which wraps outside the int64 range
	if d.Sign() <= 0 {
		return 0
	}
	if d.GreaterThanOrEqual(base) {
		return basePrice
	}
	return Money(d.IntPart())
}

// ComputeTotal returns basePrice minus discountAmount, never below zero
func ComputeTotal(basePrice, discountAmount Money) Money {
	if total := basePrice - discountAmount; total > 0 {
		return total
	}
	return 0
}

// ComputeLineTotal derives the base price (price × quantity), discount and total of an item.
// A zero quantity counts as one unit; negative price or quantity yields an empty total.
func ComputeLineTotal(item LineItem) LineTotal {
	if item.Price < 0 || item.Quantity < 0 {
		return LineTotal{}
	}

	quantity := item.Quantity
	if quantity == 0 {
		quantity = 1
	}

	base := multiply(item.Price, quantity)
	discount := ComputeDiscountAmount(base, item.DiscountValue, item.DiscountKind)
	return LineTotal{
		BasePrice:      base,
		DiscountAmount: discount,
		Total:          ComputeTotal(base, discount),
	}
}

// ComputeAggregateTotals sums item totals into the sell and gift buckets.
// Items without a recognized formality are left out of both.
func ComputeAggregateTotals(items []LineItem) AggregateTotals {
	var totals AggregateTotals
	for _, item := range items {
		switch item.Formality {
		case FormalitySell:
			totals.Sell = Add(totals.Sell, ComputeLineTotal(item).Total)
		case FormalityGift:
			totals.Gift = Add(totals.Gift, ComputeLineTotal(item).Total)
		}
	}
	return totals
}

// IsValid reports whether k is a known discount kind
func (k DiscountKind) IsValid() bool {
	return k == DiscountPercentage || k == DiscountFixed
}

// IsValid reports whether f is a known formality
func (f Formality) IsValid() bool {
	return f == FormalitySell || f == FormalityGift
}

// Add sums two non-negative amounts, saturating at MaxMoney
func Add(a, b Money) Money {
	if a > MaxMoney-b {
		return MaxMoney
	}
	return a + b
}

// multiply returns price × quantity for non-negative operands, saturating at MaxMoney
func multiply(price Money, quantity int) Money {
	hi, lo := bits.Mul64(uint64(price), uint64(quantity))
	if hi != 0 || lo > uint64(MaxMoney) {
		return MaxMoney
	}
	return Money(lo)
}
