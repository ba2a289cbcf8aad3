package pricing

import (
	"checkout-engine/internal/domain/money"

	"github.com/shopspring/decimal"
)

type DiscountKind string

const (
	DiscountPercentage    DiscountKind = "percentage"
	DiscountFixedAmount   DiscountKind = "fixed_amount"
	DiscountPriceOverride DiscountKind = "price_override"
)

func (k DiscountKind) IsValid() bool {
	switch k {
	case DiscountPercentage, DiscountFixedAmount, DiscountPriceOverride:
		return true
	default:
		return false
	}
}

var hundred = decimal.NewFromInt(100)

// Discount computes a per-unit reduction. Percent is used by percentage
// discounts, Amount by fixed_amount (amount off) and price_override (target price).
type Discount struct {
	kind        DiscountKind
	percent     decimal.Decimal
	amount      money.Money
	maxDiscount *money.Money
}

func NewPercentageDiscount(percent decimal.Decimal, maxDiscount *money.Money) (Discount, error) {
	if percent.IsNegative() || percent.GreaterThan(hundred) {
		return Discount{}, ErrInvalidRule
	}
	return Discount{kind: DiscountPercentage, percent: percent, maxDiscount: maxDiscount}, nil
}

func NewFixedAmountDiscount(amountOff int64, maxDiscount *money.Money) (Discount, error) {
	m, err := money.New(amountOff)
	if err != nil {
		return Discount{}, ErrInvalidRule
	}
	return Discount{kind: DiscountFixedAmount, amount: m, maxDiscount: maxDiscount}, nil
}

func NewPriceOverride(price int64) (Discount, error) {
	m, err := money.New(price)
	if err != nil {
		return Discount{}, ErrInvalidRule
	}
	return Discount{kind: DiscountPriceOverride, amount: m}, nil
}

// Reduction returns how much this discount takes off running. basis is the
// amount percentages are computed against: running, or the book price for
// rules that apply to base. The result never exceeds running.
func (d Discount) Reduction(running, basis money.Money) money.Money {
	var off money.Money
	switch d.kind {
	case DiscountPercentage:
		off = basis.Percent(d.percent)
	case DiscountFixedAmount:
		off = d.amount
	case DiscountPriceOverride:
		// an override never raises the price
		off = running.Sub(d.amount)
	}
	if d.maxDiscount != nil {
		off = off.Min(*d.maxDiscount)
	}
	return off.Min(running)
}

func (d Discount) Kind() DiscountKind       { return d.kind }
func (d Discount) Percent() decimal.Decimal { return d.percent }
func (d Discount) Amount() money.Money      { return d.amount }

func (d Discount) MaxDiscount() *money.Money {
	if d.maxDiscount == nil {
		return nil
	}
	m := *d.maxDiscount
	return &m
}
