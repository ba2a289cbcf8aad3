package pricing

import (
	"time"

	"checkout-engine/internal/domain/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Document is the storage and audit form of a Rule.
type Document struct {
	ID         uuid.UUID  `json:"id"`
	Kind       Kind       `json:"kind"`
	Name       string     `json:"name"`
	ValidFrom  time.Time  `json:"valid_from"`
	ValidUntil *time.Time `json:"valid_until,omitempty"`
	Priority   int        `json:"priority"`

	Currency string               `json:"currency,omitempty"`
	Prices   map[uuid.UUID]int64  `json:"prices,omitempty"`
	Entries  []PriceEntryDocument `json:"entries,omitempty"`

	Discount      *DiscountDocument `json:"discount,omitempty"`
	Selector      *SelectorDocument `json:"selector,omitempty"`
	Stackable     bool              `json:"stackable,omitempty"`
	AppliesToBase bool              `json:"applies_to_base,omitempty"`
	MinQuantity   *int              `json:"min_quantity,omitempty"`
	MaxQuantity   *int              `json:"max_quantity,omitempty"`
	Code          string            `json:"code,omitempty"`
}

// PriceEntryDocument is a tiered or product-level entry. Flat variant
// prices are stored in Document.Prices instead.
type PriceEntryDocument struct {
	VariantID   *uuid.UUID `json:"variant_id,omitempty"`
	ProductID   *uuid.UUID `json:"product_id,omitempty"`
	MinQuantity int        `json:"min_quantity,omitempty"`
	MaxQuantity *int       `json:"max_quantity,omitempty"`
	Amount      int64      `json:"amount"`
}

func (d PriceEntryDocument) params() PriceEntryParams {
	p := PriceEntryParams{MinQuantity: d.MinQuantity, MaxQuantity: d.MaxQuantity, Amount: d.Amount}
	if d.VariantID != nil {
		p.VariantID = *d.VariantID
	}
	if d.ProductID != nil {
		p.ProductID = *d.ProductID
	}
	return p
}

type DiscountDocument struct {
	Kind        DiscountKind     `json:"kind"`
	Percent     *decimal.Decimal `json:"percent,omitempty"`
	Amount      *int64           `json:"amount,omitempty"`
	MaxDiscount *int64           `json:"max_discount,omitempty"`
}

type SelectorDocument struct {
	VariantIDs        []uuid.UUID       `json:"variant_ids,omitempty"`
	ProductIDs        []uuid.UUID       `json:"product_ids,omitempty"`
	ExcludeVariantIDs []uuid.UUID       `json:"exclude_variant_ids,omitempty"`
	Attributes        map[string]string `json:"attributes,omitempty"`
	Expression        string            `json:"expression,omitempty"`
}

func ToDocument(r Rule) Document {
	doc := Document{
		ID:         r.ID(),
		Kind:       r.Kind(),
		Name:       r.Name(),
		ValidFrom:  r.Window().From(),
		ValidUntil: r.Window().Until(),
		Priority:   r.Priority(),
	}
	switch rule := r.(type) {
	case *PriceBook:
		doc.Currency = rule.Currency()
		fillPriceEntries(&doc, rule.entries)
	case *Campaign:
		fillDiscountRule(&doc, rule.discountRule)
	case *Promotion:
		fillDiscountRule(&doc, rule.discountRule)
		doc.Code = rule.Code()
	}
	return doc
}

func fillPriceEntries(doc *Document, entries []PriceEntry) {
	for _, e := range entries {
		if e.variantID != uuid.Nil && e.minQuantity == 1 && e.maxQuantity == nil {
			if doc.Prices == nil {
				doc.Prices = make(map[uuid.UUID]int64)
			}
			doc.Prices[e.variantID] = e.amount.Minor()
			continue
		}
		ed := PriceEntryDocument{MinQuantity: e.minQuantity, MaxQuantity: e.maxQuantity, Amount: e.amount.Minor()}
		if e.variantID != uuid.Nil {
			id := e.variantID
			ed.VariantID = &id
		} else {
			id := e.productID
			ed.ProductID = &id
		}
		doc.Entries = append(doc.Entries, ed)
	}
}

func fillDiscountRule(doc *Document, d discountRule) {
	dd := &DiscountDocument{Kind: d.discount.Kind()}
	switch d.discount.Kind() {
	case DiscountPercentage:
		p := d.discount.Percent()
		dd.Percent = &p
	case DiscountFixedAmount, DiscountPriceOverride:
		a := d.discount.Amount().Minor()
		dd.Amount = &a
	}
	if m := d.discount.MaxDiscount(); m != nil {
		v := m.Minor()
		dd.MaxDiscount = &v
	}
	doc.Discount = dd
	if !d.selector.IsEmpty() {
		doc.Selector = &SelectorDocument{
			VariantIDs:        d.selector.VariantIDs(),
			ProductIDs:        d.selector.ProductIDs(),
			ExcludeVariantIDs: d.selector.ExcludeVariantIDs(),
			Attributes:        d.selector.Attributes(),
			Expression:        d.selector.Expression(),
		}
	}
	doc.Stackable = d.stackable
	doc.AppliesToBase = d.appliesToBase
	doc.MinQuantity = d.minQuantity
	doc.MaxQuantity = d.maxQuantity
}

// ToRule validates the document and builds the rule it describes.
func (d Document) ToRule() (Rule, error) {
	window, err := NewWindow(d.ValidFrom, d.ValidUntil)
	if err != nil {
		return nil, err
	}
	switch d.Kind {
	case KindPriceBook:
		entries := make([]PriceEntryParams, 0, len(d.Entries))
		for _, e := range d.Entries {
			entries = append(entries, e.params())
		}
		return NewPriceBook(PriceBookParams{
			ID:       d.ID,
			Name:     d.Name,
			Currency: d.Currency,
			Window:   window,
			Priority: d.Priority,
			Prices:   d.Prices,
			Entries:  entries,
		})
	case KindCampaign, KindPromotion:
		params, err := d.discountParams(window)
		if err != nil {
			return nil, err
		}
		if d.Kind == KindCampaign {
			return NewCampaign(params)
		}
		return NewPromotion(params, d.Code)
	default:
		return nil, ErrInvalidRule
	}
}

func (d Document) discountParams(window Window) (DiscountRuleParams, error) {
	if d.Discount == nil {
		return DiscountRuleParams{}, ErrInvalidRule
	}
	var maxDiscount *money.Money
	if d.Discount.MaxDiscount != nil {
		m, err := money.New(*d.Discount.MaxDiscount)
		if err != nil {
			return DiscountRuleParams{}, ErrInvalidRule
		}
		maxDiscount = &m
	}

	var (
		discount Discount
		err      error
	)
	switch d.Discount.Kind {
	case DiscountPercentage:
		if d.Discount.Percent == nil {
			return DiscountRuleParams{}, ErrInvalidRule
		}
		discount, err = NewPercentageDiscount(*d.Discount.Percent, maxDiscount)
	case DiscountFixedAmount:
		if d.Discount.Amount == nil {
			return DiscountRuleParams{}, ErrInvalidRule
		}
		discount, err = NewFixedAmountDiscount(*d.Discount.Amount, maxDiscount)
	case DiscountPriceOverride:
		if d.Discount.Amount == nil {
			return DiscountRuleParams{}, ErrInvalidRule
		}
		discount, err = NewPriceOverride(*d.Discount.Amount)
	default:
		return DiscountRuleParams{}, ErrInvalidRule
	}
	if err != nil {
		return DiscountRuleParams{}, err
	}

	var selector Selector
	if d.Selector != nil {
		selector, err = NewSelector(SelectorParams(*d.Selector))
		if err != nil {
			return DiscountRuleParams{}, err
		}
	}

	return DiscountRuleParams{
		ID:            d.ID,
		Name:          d.Name,
		Window:        window,
		Priority:      d.Priority,
		Discount:      discount,
		Selector:      selector,
		Stackable:     d.Stackable,
		AppliesToBase: d.AppliesToBase,
		MinQuantity:   d.MinQuantity,
		MaxQuantity:   d.MaxQuantity,
	}, nil
}
