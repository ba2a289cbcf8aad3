package request

import (
	"fmt"
	"time"

	"checkout-engine/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RuleWindow struct {
	Name       string     `json:"name" binding:"required,max=200"`
	ValidFrom  time.Time  `json:"valid_from" binding:"required"`
	ValidUntil *time.Time `json:"valid_until,omitempty"`
	Priority   int        `json:"priority"`
}

type UpsertPriceBookRequest struct {
	RuleWindow
	Currency string `json:"currency" binding:"required,len=3"`
	// variant id -> unit price in minor units
	Prices  map[string]int64 `json:"prices"`
	Entries []PriceEntrySpec `json:"entries,omitempty" binding:"omitempty,dive"`
}

// PriceEntrySpec is a quantity tier for one variant or for every variant
// of a product.
type PriceEntrySpec struct {
	VariantID   *uuid.UUID `json:"variant_id,omitempty"`
	ProductID   *uuid.UUID `json:"product_id,omitempty"`
	MinQuantity int        `json:"min_quantity" binding:"omitempty,gt=0"`
	MaxQuantity *int       `json:"max_quantity,omitempty" binding:"omitempty,gt=0"`
	Amount      int64      `json:"amount" binding:"gte=0"`
}

type DiscountSpec struct {
	Kind        string  `json:"kind" binding:"required,oneof=percentage fixed_amount price_override"`
	Percent     *string `json:"percent,omitempty"`
	Amount      *int64  `json:"amount,omitempty"`
	MaxDiscount *int64  `json:"max_discount,omitempty"`
}

type SelectorSpec struct {
	VariantIDs        []uuid.UUID       `json:"variant_ids,omitempty"`
	ProductIDs        []uuid.UUID       `json:"product_ids,omitempty"`
	ExcludeVariantIDs []uuid.UUID       `json:"exclude_variant_ids,omitempty"`
	Attributes        map[string]string `json:"attributes,omitempty"`
	Expression        string            `json:"expression,omitempty"`
}

// UpsertDiscountRequest is shared by campaigns and promotions; Code only
// applies to promotions.
type UpsertDiscountRequest struct {
	RuleWindow
	Discount      DiscountSpec  `json:"discount" binding:"required"`
	Selector      *SelectorSpec `json:"selector,omitempty"`
	Stackable     bool          `json:"stackable"`
	AppliesToBase bool          `json:"applies_to_base"`
	MinQuantity   *int          `json:"min_quantity,omitempty"`
	MaxQuantity   *int          `json:"max_quantity,omitempty"`
	Code          string        `json:"code,omitempty"`
}

func (w RuleWindow) header(id uuid.UUID, kind pricing.Kind) pricing.Document {
	return pricing.Document{
		ID:         id,
		Kind:       kind,
		Name:       w.Name,
		ValidFrom:  w.ValidFrom,
		ValidUntil: w.ValidUntil,
		Priority:   w.Priority,
	}
}

func (r UpsertPriceBookRequest) ToDocument(id uuid.UUID) (pricing.Document, error) {
	doc := r.header(id, pricing.KindPriceBook)
	doc.Currency = r.Currency
	doc.Prices = make(map[uuid.UUID]int64, len(r.Prices))
	for raw, amount := range r.Prices {
		variantID, err := uuid.Parse(raw)
		if err != nil {
			return pricing.Document{}, fmt.Errorf("invalid variant id %q: %w", raw, pricing.ErrInvalidRule)
		}
		doc.Prices[variantID] = amount
	}
	for _, e := range r.Entries {
		doc.Entries = append(doc.Entries, pricing.PriceEntryDocument{
			VariantID:   e.VariantID,
			ProductID:   e.ProductID,
			MinQuantity: e.MinQuantity,
			MaxQuantity: e.MaxQuantity,
			Amount:      e.Amount,
		})
	}
	return doc, nil
}

func (r UpsertDiscountRequest) ToDocument(id uuid.UUID, kind pricing.Kind) (pricing.Document, error) {
	doc := r.header(id, kind)
	dd := &pricing.DiscountDocument{
		Kind:        pricing.DiscountKind(r.Discount.Kind),
		Amount:      r.Discount.Amount,
		MaxDiscount: r.Discount.MaxDiscount,
	}
	if r.Discount.Percent != nil {
		p, err := decimal.NewFromString(*r.Discount.Percent)
		if err != nil {
			return pricing.Document{}, fmt.Errorf("invalid percent %q: %w", *r.Discount.Percent, pricing.ErrInvalidRule)
		}
		dd.Percent = &p
	}
	doc.Discount = dd
	if r.Selector != nil {
		doc.Selector = &pricing.SelectorDocument{
			VariantIDs:        r.Selector.VariantIDs,
			ProductIDs:        r.Selector.ProductIDs,
			ExcludeVariantIDs: r.Selector.ExcludeVariantIDs,
			Attributes:        r.Selector.Attributes,
			Expression:        r.Selector.Expression,
		}
	}
	doc.Stackable = r.Stackable
	doc.AppliesToBase = r.AppliesToBase
	doc.MinQuantity = r.MinQuantity
	doc.MaxQuantity = r.MaxQuantity
	if kind == pricing.KindPromotion {
		doc.Code = r.Code
	}
	return doc, nil
}
