package pricing

import (
	"slices"
	"time"

	"checkout-engine/internal/domain/catalog"
)

// Snapshot is a consistent view of the rule store at Version.
type Snapshot struct {
	Version int64
	Rules   []Rule
	// No rule window opens or closes inside [StableFrom, StableUntil), so
	// every instant in it resolves against the same rules. A zero
	// StableFrom or nil StableUntil is unbounded.
	StableFrom  time.Time
	StableUntil *time.Time
}

// Covers reports whether at falls inside the stable interval.
func (s Snapshot) Covers(at time.Time) bool {
	if !s.StableFrom.IsZero() && at.Before(s.StableFrom) {
		return false
	}
	return s.StableUntil == nil || at.Before(*s.StableUntil)
}

// StableInterval returns the widest interval around at in which no window
// among windows opens or closes.
func StableInterval(windows []Window, at time.Time) (time.Time, *time.Time) {
	var (
		from  time.Time
		until *time.Time
	)
	consider := func(b time.Time) {
		if !b.After(at) {
			if b.After(from) {
				from = b
			}
			return
		}
		if until == nil || b.Before(*until) {
			t := b
			until = &t
		}
	}
	for _, w := range windows {
		consider(w.From())
		if u := w.Until(); u != nil {
			consider(*u)
		}
	}
	return from, until
}

// ActiveSet holds the rules that apply to one variant at one instant.
// Discounts are in application order.
type ActiveSet struct {
	PriceBook *PriceBook
	Discounts []Discounter
}

func (a ActiveSet) Rules() []Rule {
	out := make([]Rule, 0, len(a.Discounts)+1)
	if a.PriceBook != nil {
		out = append(out, a.PriceBook)
	}
	for _, d := range a.Discounts {
		out = append(out, d)
	}
	return out
}

// ActiveRulesAt has no side effects; the result depends only on the
// snapshot and its arguments.
func (s Snapshot) ActiveRulesAt(v *catalog.Variant, at time.Time, quantity int) ActiveSet {
	var (
		books     []*PriceBook
		discounts []Discounter
	)
	for _, r := range s.Rules {
		if !r.Window().Contains(at) {
			continue
		}
		switch rule := r.(type) {
		case *PriceBook:
			if _, ok := rule.UnitPrice(v, quantity); ok {
				books = append(books, rule)
			}
		case Discounter:
			if rule.Eligible(v, quantity) {
				discounts = append(discounts, rule)
			}
		}
	}

	var set ActiveSet
	if len(books) > 0 {
		slices.SortFunc(books, func(a, b *PriceBook) int { return Precedence(a, b) })
		set.PriceBook = books[0]
	}
	slices.SortFunc(discounts, func(a, b Discounter) int { return ApplicationOrder(a, b) })
	set.Discounts = discounts
	return set
}
