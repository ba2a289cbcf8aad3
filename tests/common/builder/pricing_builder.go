//go:build unit || e2e

package builder

import (
	"time"

	"checkout-engine/internal/domain/pricing"
	reqdto "checkout-engine/internal/handler/dto/request"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var Epoch = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

type PriceBookBuilder struct {
	ID         uuid.UUID
	Name       string
	Currency   string
	ValidFrom  time.Time
	ValidUntil *time.Time
	Priority   int
	Prices     map[uuid.UUID]int64
	Entries    []pricing.PriceEntryDocument
}

func NewPriceBookBuilder(variantID uuid.UUID, unitAmount int64) *PriceBookBuilder {
	return &PriceBookBuilder{
		ID:        uuid.New(),
		Name:      "Standard USD",
		Currency:  "USD",
		ValidFrom: Epoch,
		Priority:  0,
		Prices:    map[uuid.UUID]int64{variantID: unitAmount},
	}
}

func (b *PriceBookBuilder) With(mutate func(*PriceBookBuilder)) *PriceBookBuilder {
	mutate(b)
	return b
}

func (b *PriceBookBuilder) Document() pricing.Document {
	return pricing.Document{
		ID:         b.ID,
		Kind:       pricing.KindPriceBook,
		Name:       b.Name,
		ValidFrom:  b.ValidFrom,
		ValidUntil: b.ValidUntil,
		Priority:   b.Priority,
		Currency:   b.Currency,
		Prices:     b.Prices,
		Entries:    b.Entries,
	}
}

func (b *PriceBookBuilder) BuildDomain() *pricing.PriceBook {
	r, err := b.Document().ToRule()
	if err != nil {
		panic(err)
	}
	return r.(*pricing.PriceBook)
}

func (b *PriceBookBuilder) BuildRequestDTO() reqdto.UpsertPriceBookRequest {
	prices := make(map[string]int64, len(b.Prices))
	for id, amount := range b.Prices {
		prices[id.String()] = amount
	}
	entries := make([]reqdto.PriceEntrySpec, 0, len(b.Entries))
	for _, e := range b.Entries {
		entries = append(entries, reqdto.PriceEntrySpec{
			VariantID:   e.VariantID,
			ProductID:   e.ProductID,
			MinQuantity: e.MinQuantity,
			MaxQuantity: e.MaxQuantity,
			Amount:      e.Amount,
		})
	}
	return reqdto.UpsertPriceBookRequest{
		RuleWindow: reqdto.RuleWindow{
			Name:       b.Name,
			ValidFrom:  b.ValidFrom,
			ValidUntil: b.ValidUntil,
			Priority:   b.Priority,
		},
		Currency: b.Currency,
		Prices:   prices,
		Entries:  entries,
	}
}

// DiscountBuilder builds campaigns and promotions; the default is a
// stackable 10% off campaign that matches every variant.
type DiscountBuilder struct {
	ID            uuid.UUID
	Kind          pricing.Kind
	Name          string
	ValidFrom     time.Time
	ValidUntil    *time.Time
	Priority      int
	Discount      pricing.DiscountDocument
	Selector      *pricing.SelectorDocument
	Stackable     bool
	AppliesToBase bool
	MinQuantity   *int
	MaxQuantity   *int
	Code          string
}

func NewCampaignBuilder() *DiscountBuilder {
	pct := decimal.NewFromInt(10)
	return &DiscountBuilder{
		ID:        uuid.New(),
		Kind:      pricing.KindCampaign,
		Name:      "10% off",
		ValidFrom: Epoch,
		Priority:  1,
		Discount:  pricing.DiscountDocument{Kind: pricing.DiscountPercentage, Percent: &pct},
		Stackable: true,
	}
}

func NewPromotionBuilder() *DiscountBuilder {
	amount := int64(500)
	return &DiscountBuilder{
		ID:        uuid.New(),
		Kind:      pricing.KindPromotion,
		Name:      "$5 off",
		ValidFrom: Epoch,
		Priority:  1,
		Discount:  pricing.DiscountDocument{Kind: pricing.DiscountFixedAmount, Amount: &amount},
		Stackable: false,
	}
}

func (b *DiscountBuilder) With(mutate func(*DiscountBuilder)) *DiscountBuilder {
	mutate(b)
	return b
}

func (b *DiscountBuilder) Percent(p int64) *DiscountBuilder {
	pct := decimal.NewFromInt(p)
	b.Discount = pricing.DiscountDocument{Kind: pricing.DiscountPercentage, Percent: &pct}
	return b
}

func (b *DiscountBuilder) AmountOff(minor int64) *DiscountBuilder {
	b.Discount = pricing.DiscountDocument{Kind: pricing.DiscountFixedAmount, Amount: &minor}
	return b
}

func (b *DiscountBuilder) Override(minor int64) *DiscountBuilder {
	b.Discount = pricing.DiscountDocument{Kind: pricing.DiscountPriceOverride, Amount: &minor}
	return b
}

func (b *DiscountBuilder) Between(from, until time.Time) *DiscountBuilder {
	b.ValidFrom = from
	b.ValidUntil = &until
	return b
}

func (b *DiscountBuilder) Document() pricing.Document {
	return pricing.Document{
		ID:            b.ID,
		Kind:          b.Kind,
		Name:          b.Name,
		ValidFrom:     b.ValidFrom,
		ValidUntil:    b.ValidUntil,
		Priority:      b.Priority,
		Discount:      &b.Discount,
		Selector:      b.Selector,
		Stackable:     b.Stackable,
		AppliesToBase: b.AppliesToBase,
		MinQuantity:   b.MinQuantity,
		MaxQuantity:   b.MaxQuantity,
		Code:          b.Code,
	}
}

func (b *DiscountBuilder) BuildDomain() pricing.Discounter {
	r, err := b.Document().ToRule()
	if err != nil {
		panic(err)
	}
	return r.(pricing.Discounter)
}

func (b *DiscountBuilder) BuildRequestDTO() reqdto.UpsertDiscountRequest {
	req := reqdto.UpsertDiscountRequest{
		RuleWindow: reqdto.RuleWindow{
			Name:       b.Name,
			ValidFrom:  b.ValidFrom,
			ValidUntil: b.ValidUntil,
			Priority:   b.Priority,
		},
		Discount: reqdto.DiscountSpec{
			Kind:        string(b.Discount.Kind),
			Amount:      b.Discount.Amount,
			MaxDiscount: b.Discount.MaxDiscount,
		},
		Stackable:     b.Stackable,
		AppliesToBase: b.AppliesToBase,
		MinQuantity:   b.MinQuantity,
		MaxQuantity:   b.MaxQuantity,
		Code:          b.Code,
	}
	if b.Discount.Percent != nil {
		s := b.Discount.Percent.String()
		req.Discount.Percent = &s
	}
	if b.Selector != nil {
		req.Selector = &reqdto.SelectorSpec{
			VariantIDs:        b.Selector.VariantIDs,
			ProductIDs:        b.Selector.ProductIDs,
			ExcludeVariantIDs: b.Selector.ExcludeVariantIDs,
			Attributes:        b.Selector.Attributes,
			Expression:        b.Selector.Expression,
		}
	}
	return req
}
