package reservation

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyCurrency   = errors.New("currency is required")
	ErrNegativePrice   = errors.New("price cannot be negative")
	ErrEmptyOrderRef   = errors.New("order reference is required")
	ErrOrderRefTooLong = errors.New("order reference is too long (max 128 characters)")
)

const MaxOrderReferenceLength = 128

type AppliedRule struct {
	RuleID   uuid.UUID `json:"rule_id"`
	Kind     string    `json:"kind"`
	Priority int       `json:"priority"`
	Amount   int64     `json:"amount"`
}

// Pricing is the quote frozen onto a reservation at hold time.
type Pricing struct {
	UnitAmount      int64         `json:"unit_amount"`
	Currency        string        `json:"currency"`
	PriceBookID     uuid.UUID     `json:"price_book_id"`
	AppliedRules    []AppliedRule `json:"applied_rules"`
	SnapshotVersion int64         `json:"snapshot_version"`
	PricedAt        time.Time     `json:"priced_at"`
}

func (p Pricing) Validate() error {
	if p.UnitAmount < 0 {
		return ErrNegativePrice
	}
	if strings.TrimSpace(p.Currency) == "" {
		return ErrEmptyCurrency
	}
	return nil
}

func (p Pricing) RuleIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(p.AppliedRules))
	for _, r := range p.AppliedRules {
		ids = append(ids, r.RuleID)
	}
	return ids
}

func (p Pricing) clone() Pricing {
	p.AppliedRules = slices.Clone(p.AppliedRules)
	return p
}

type OrderReference string

func NewOrderReference(ref string) (OrderReference, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", ErrEmptyOrderRef
	}
	if len(ref) > MaxOrderReferenceLength {
		return "", ErrOrderRefTooLong
	}
	return OrderReference(ref), nil
}

func (o OrderReference) String() string {
	return string(o)
}
