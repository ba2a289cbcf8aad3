package money

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

var (
	ErrNegativeAmount = errors.New("money cannot be negative")
	ErrAmountOverflow = errors.New("money amount overflows")
)

var hundred = decimal.NewFromInt(100)

// Money is a non-negative amount in minor units (cents) of an implied currency.
type Money struct {
	minor int64
}

func New(minor int64) (Money, error) {
	if minor < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{minor: minor}, nil
}

// FromMinor trusts its input; use it only for values read back from storage.
func FromMinor(minor int64) Money {
	return Money{minor: minor}
}

func Zero() Money {
	return Money{}
}

func (m Money) Minor() int64 {
	return m.minor
}

func (m Money) IsZero() bool {
	return m.minor == 0
}

// Sub floors at zero.
func (m Money) Sub(other Money) Money {
	if other.minor >= m.minor {
		return Money{}
	}
	return Money{minor: m.minor - other.minor}
}

// Mul fails rather than wrap when the product exceeds int64.
func (m Money) Mul(qty int) (Money, error) {
	if qty < 0 {
		return Money{}, ErrNegativeAmount
	}
	if qty > 0 && m.minor > math.MaxInt64/int64(qty) {
		return Money{}, ErrAmountOverflow
	}
	return Money{minor: m.minor * int64(qty)}, nil
}

func (m Money) Min(other Money) Money {
	if other.minor < m.minor {
		return other
	}
	return m
}

// Percent returns pct percent of m, rounded half-up to the minor unit.
func (m Money) Percent(pct decimal.Decimal) Money {
	v := decimal.NewFromInt(m.minor).Mul(pct).Div(hundred).Round(0)
	if v.IsNegative() {
		return Money{}
	}
	return Money{minor: v.IntPart()}
}

func (m Money) String() string {
	return decimal.New(m.minor, -2).StringFixed(2)
}
