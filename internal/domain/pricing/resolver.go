package pricing

import (
	"errors"
	"slices"
	"time"

	"checkout-engine/internal/domain/catalog"

	"github.com/google/uuid"
)

var (
	ErrNoPriceBook     = errors.New("no active price book for variant")
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

type AppliedRule struct {
	RuleID    uuid.UUID `json:"rule_id"`
	Kind      Kind      `json:"kind"`
	Name      string    `json:"name"`
	Priority  int       `json:"priority"`
	Stackable bool      `json:"stackable"`
	// per-unit reduction in minor units
	Amount     int64 `json:"amount"`
	PriceAfter int64 `json:"price_after"`
}

type Quote struct {
	VariantID       uuid.UUID     `json:"variant_id"`
	At              time.Time     `json:"at"`
	Quantity        int           `json:"quantity"`
	Currency        string        `json:"currency"`
	PriceBookID     uuid.UUID     `json:"price_book_id"`
	BaseUnitAmount  int64         `json:"base_unit_amount"`
	UnitAmount      int64         `json:"unit_amount"`
	ExtendedAmount  int64         `json:"extended_amount"`
	AppliedRules    []AppliedRule `json:"applied_rules"`
	SnapshotVersion int64         `json:"snapshot_version"`
}

func (q Quote) RuleIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(q.AppliedRules))
	for _, r := range q.AppliedRules {
		ids = append(ids, r.RuleID)
	}
	return ids
}

// PriceAsOf resolves the unit price of v at the instant at. For a given
// snapshot, variant, instant and quantity the result is always identical.
// Inactive variants are not sellable and never get a quote.
func PriceAsOf(s Snapshot, v *catalog.Variant, at time.Time, quantity int) (Quote, error) {
	if quantity <= 0 {
		return Quote{}, ErrInvalidQuantity
	}
	if !v.Active() {
		return Quote{}, catalog.ErrVariantInactive
	}
	set := s.ActiveRulesAt(v, at, quantity)
	if set.PriceBook == nil {
		return Quote{}, ErrNoPriceBook
	}
	base, _ := set.PriceBook.UnitPrice(v, quantity)

	running := base
	applied := make([]AppliedRule, 0, len(set.Discounts))
	for _, d := range selectDiscounts(set.Discounts) {
		basis := running
		if d.AppliesToBase() {
			basis = base
		}
		off := d.Discount().Reduction(running, basis)
		running = running.Sub(off)
		applied = append(applied, AppliedRule{
			RuleID:     d.ID(),
			Kind:       d.Kind(),
			Name:       d.Name(),
			Priority:   d.Priority(),
			Stackable:  d.Stackable(),
			Amount:     off.Minor(),
			PriceAfter: running.Minor(),
		})
	}
	extended, err := running.Mul(quantity)
	if err != nil {
		return Quote{}, err
	}

	return Quote{
		VariantID:       v.ID(),
		At:              at.UTC(),
		Quantity:        quantity,
		Currency:        set.PriceBook.Currency(),
		PriceBookID:     set.PriceBook.ID(),
		BaseUnitAmount:  base.Minor(),
		UnitAmount:      running.Minor(),
		ExtendedAmount:  extended.Minor(),
		AppliedRules:    applied,
		SnapshotVersion: s.Version,
	}, nil
}

// selectDiscounts keeps every stackable discount plus the single best
// non-stackable one, returned in application order.
func selectDiscounts(active []Discounter) []Discounter {
	var (
		stackable []Discounter
		winner    Discounter
	)
	for _, d := range active {
		if d.Stackable() {
			stackable = append(stackable, d)
			continue
		}
		if winner == nil || Precedence(d, winner) < 0 {
			winner = d
		}
	}
	out := stackable
	if winner != nil {
		out = append(out, winner)
	}
	slices.SortFunc(out, func(a, b Discounter) int { return ApplicationOrder(a, b) })
	return out
}
