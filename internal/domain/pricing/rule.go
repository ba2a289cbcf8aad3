package pricing

import (
	"cmp"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"checkout-engine/internal/domain/catalog"
	"checkout-engine/internal/domain/money"

	"github.com/google/uuid"
)

var (
	ErrInvalidRule  = errors.New("invalid price rule")
	ErrRuleClosed   = errors.New("price rule window has already closed")
	ErrRuleNotFound = errors.New("price rule not found")
	ErrKindChanged  = fmt.Errorf("price rule kind cannot change: %w", ErrInvalidRule)
)

var (
	currencyRegex  = regexp.MustCompile(`^[A-Z]{3}$`)
	promoCodeRegex = regexp.MustCompile(`^[A-Z0-9]{3,20}$`)
)

type Kind string

const (
	KindPriceBook Kind = "price_book"
	KindCampaign  Kind = "campaign"
	KindPromotion Kind = "promotion"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindPriceBook, KindCampaign, KindPromotion:
		return true
	default:
		return false
	}
}

// Rule is the closed set {*PriceBook, *Campaign, *Promotion}.
type Rule interface {
	ID() uuid.UUID
	Kind() Kind
	Name() string
	Window() Window
	Priority() int
}

// Discounter is implemented by Campaign and Promotion.
type Discounter interface {
	Rule
	Discount() Discount
	Selector() Selector
	Stackable() bool
	AppliesToBase() bool
	Eligible(v *catalog.Variant, quantity int) bool
}

type header struct {
	id       uuid.UUID
	name     string
	window   Window
	priority int
}

func newHeader(id uuid.UUID, name string, window Window, priority int) (header, error) {
	name = strings.TrimSpace(name)
	if id == uuid.Nil || name == "" {
		return header{}, ErrInvalidRule
	}
	if window.From().IsZero() {
		return header{}, ErrInvalidWindow
	}
	return header{id: id, name: name, window: window, priority: priority}, nil
}

func (h header) ID() uuid.UUID  { return h.id }
func (h header) Name() string   { return h.name }
func (h header) Window() Window { return h.window }
func (h header) Priority() int  { return h.priority }

// PriceEntry prices one variant, or every variant of a product, for a
// quantity band. Exactly one of variantID and productID is set.
type PriceEntry struct {
	variantID   uuid.UUID
	productID   uuid.UUID
	minQuantity int
	maxQuantity *int
	amount      money.Money
}

type PriceEntryParams struct {
	VariantID uuid.UUID
	ProductID uuid.UUID
	// zero means 1
	MinQuantity int
	MaxQuantity *int
	// minor units
	Amount int64
}

func newPriceEntry(p PriceEntryParams) (PriceEntry, error) {
	if (p.VariantID == uuid.Nil) == (p.ProductID == uuid.Nil) {
		return PriceEntry{}, ErrInvalidRule
	}
	minQty := p.MinQuantity
	if minQty == 0 {
		minQty = 1
	}
	if minQty < 1 {
		return PriceEntry{}, ErrInvalidRule
	}
	if p.MaxQuantity != nil && *p.MaxQuantity < minQty {
		return PriceEntry{}, ErrInvalidRule
	}
	amount, err := money.New(p.Amount)
	if err != nil {
		return PriceEntry{}, ErrInvalidRule
	}
	var maxQty *int
	if p.MaxQuantity != nil {
		v := *p.MaxQuantity
		maxQty = &v
	}
	return PriceEntry{
		variantID:   p.VariantID,
		productID:   p.ProductID,
		minQuantity: minQty,
		maxQuantity: maxQty,
		amount:      amount,
	}, nil
}

func (e PriceEntry) VariantID() uuid.UUID { return e.variantID }
func (e PriceEntry) ProductID() uuid.UUID { return e.productID }
func (e PriceEntry) MinQuantity() int     { return e.minQuantity }
func (e PriceEntry) MaxQuantity() *int    { return e.maxQuantity }
func (e PriceEntry) Amount() money.Money  { return e.amount }

func (e PriceEntry) matches(v *catalog.Variant, quantity int) bool {
	if e.variantID != uuid.Nil {
		if e.variantID != v.ID() {
			return false
		}
	} else if e.productID != v.ProductID() {
		return false
	}
	if quantity < e.minQuantity {
		return false
	}
	return e.maxQuantity == nil || quantity <= *e.maxQuantity
}

// moreSpecific orders variant entries before product entries, then the
// higher quantity tier first.
func (e PriceEntry) moreSpecific(other PriceEntry) bool {
	ev, ov := e.variantID != uuid.Nil, other.variantID != uuid.Nil
	if ev != ov {
		return ev
	}
	return e.minQuantity > other.minQuantity
}

type entryKey struct {
	target      uuid.UUID
	variant     bool
	minQuantity int
}

func (e PriceEntry) key() entryKey {
	if e.variantID != uuid.Nil {
		return entryKey{target: e.variantID, variant: true, minQuantity: e.minQuantity}
	}
	return entryKey{target: e.productID, minQuantity: e.minQuantity}
}

type PriceBook struct {
	header
	currency string
	entries  []PriceEntry
}

type PriceBookParams struct {
	ID       uuid.UUID
	Name     string
	Currency string
	Window   Window
	Priority int
	// minor units per variant, any quantity
	Prices  map[uuid.UUID]int64
	Entries []PriceEntryParams
}

// NewPriceBook rejects two entries for the same target and minimum
// quantity, so entry selection never depends on input order.
func NewPriceBook(p PriceBookParams) (*PriceBook, error) {
	h, err := newHeader(p.ID, p.Name, p.Window, p.Priority)
	if err != nil {
		return nil, err
	}
	currency := strings.ToUpper(strings.TrimSpace(p.Currency))
	if !currencyRegex.MatchString(currency) {
		return nil, ErrInvalidRule
	}

	params := make([]PriceEntryParams, 0, len(p.Prices)+len(p.Entries))
	for variantID, amount := range p.Prices {
		params = append(params, PriceEntryParams{VariantID: variantID, MinQuantity: 1, Amount: amount})
	}
	params = append(params, p.Entries...)

	entries := make([]PriceEntry, 0, len(params))
	seen := make(map[entryKey]struct{}, len(params))
	for _, ep := range params {
		e, err := newPriceEntry(ep)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[e.key()]; dup {
			return nil, ErrInvalidRule
		}
		seen[e.key()] = struct{}{}
		entries = append(entries, e)
	}
	slices.SortFunc(entries, compareEntries)
	return &PriceBook{header: h, currency: currency, entries: entries}, nil
}

func compareEntries(a, b PriceEntry) int {
	ak, bk := a.key(), b.key()
	if ak.variant != bk.variant {
		if ak.variant {
			return -1
		}
		return 1
	}
	if c := strings.Compare(ak.target.String(), bk.target.String()); c != 0 {
		return c
	}
	return cmp.Compare(ak.minQuantity, bk.minQuantity)
}

func (b *PriceBook) Kind() Kind       { return KindPriceBook }
func (b *PriceBook) Currency() string { return b.currency }

// UnitPrice picks the most specific entry covering v at quantity: a variant
// entry beats a product entry, and within each the highest matching tier wins.
func (b *PriceBook) UnitPrice(v *catalog.Variant, quantity int) (money.Money, bool) {
	var (
		best  PriceEntry
		found bool
	)
	for _, e := range b.entries {
		if !e.matches(v, quantity) {
			continue
		}
		if !found || e.moreSpecific(best) {
			best, found = e, true
		}
	}
	return best.amount, found
}

func (b *PriceBook) Entries() []PriceEntry {
	return slices.Clone(b.entries)
}

type DiscountRuleParams struct {
	ID            uuid.UUID
	Name          string
	Window        Window
	Priority      int
	Discount      Discount
	Selector      Selector
	Stackable     bool
	AppliesToBase bool
	MinQuantity   *int
	MaxQuantity   *int
}

type discountRule struct {
	header
	discount      Discount
	selector      Selector
	stackable     bool
	appliesToBase bool
	minQuantity   *int
	maxQuantity   *int
}

func newDiscountRule(p DiscountRuleParams) (discountRule, error) {
	h, err := newHeader(p.ID, p.Name, p.Window, p.Priority)
	if err != nil {
		return discountRule{}, err
	}
	if !p.Discount.Kind().IsValid() {
		return discountRule{}, ErrInvalidRule
	}
	if p.MinQuantity != nil && *p.MinQuantity < 1 {
		return discountRule{}, ErrInvalidRule
	}
	if p.MaxQuantity != nil && *p.MaxQuantity < 1 {
		return discountRule{}, ErrInvalidRule
	}
	if p.MinQuantity != nil && p.MaxQuantity != nil && *p.MinQuantity > *p.MaxQuantity {
		return discountRule{}, ErrInvalidRule
	}
	return discountRule{
		header:        h,
		discount:      p.Discount,
		selector:      p.Selector,
		stackable:     p.Stackable,
		appliesToBase: p.AppliesToBase,
		minQuantity:   p.MinQuantity,
		maxQuantity:   p.MaxQuantity,
	}, nil
}

func (d discountRule) Discount() Discount  { return d.discount }
func (d discountRule) Selector() Selector  { return d.selector }
func (d discountRule) Stackable() bool     { return d.stackable }
func (d discountRule) AppliesToBase() bool { return d.appliesToBase }
func (d discountRule) MinQuantity() *int   { return d.minQuantity }
func (d discountRule) MaxQuantity() *int   { return d.maxQuantity }

// Eligible checks quantity gates and targeting. It does not look at the window.
func (d discountRule) Eligible(v *catalog.Variant, quantity int) bool {
	if d.minQuantity != nil && quantity < *d.minQuantity {
		return false
	}
	if d.maxQuantity != nil && quantity > *d.maxQuantity {
		return false
	}
	return d.selector.Matches(v, quantity)
}

type Campaign struct {
	discountRule
}

func NewCampaign(p DiscountRuleParams) (*Campaign, error) {
	d, err := newDiscountRule(p)
	if err != nil {
		return nil, err
	}
	return &Campaign{discountRule: d}, nil
}

func (c *Campaign) Kind() Kind { return KindCampaign }

type Promotion struct {
	discountRule
	code string
}

// NewPromotion accepts an optional display code; an empty selector matches all variants.
func NewPromotion(p DiscountRuleParams, code string) (*Promotion, error) {
	d, err := newDiscountRule(p)
	if err != nil {
		return nil, err
	}
	code = strings.ToUpper(strings.TrimSpace(code))
	if code != "" && !promoCodeRegex.MatchString(code) {
		return nil, ErrInvalidRule
	}
	return &Promotion{discountRule: d, code: code}, nil
}

func (p *Promotion) Kind() Kind   { return KindPromotion }
func (p *Promotion) Code() string { return p.code }
