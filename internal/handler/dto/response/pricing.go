package response

import (
	"time"

	"checkout-engine/internal/domain/pricing"
	"checkout-engine/internal/usecase/commands"
	"checkout-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type AppliedRuleResponse struct {
	RuleID     uuid.UUID `json:"rule_id"`
	Kind       string    `json:"kind"`
	Name       string    `json:"name"`
	Priority   int       `json:"priority"`
	Stackable  bool      `json:"stackable"`
	Amount     int64     `json:"amount"`
	PriceAfter int64     `json:"price_after"`
}

type QuoteResponse struct {
	VariantID       uuid.UUID             `json:"variant_id"`
	At              time.Time             `json:"at"`
	Quantity        int                   `json:"quantity"`
	Currency        string                `json:"currency"`
	PriceBookID     uuid.UUID             `json:"price_book_id"`
	BaseUnitAmount  int64                 `json:"base_unit_amount"`
	UnitAmount      int64                 `json:"unit_amount"`
	ExtendedAmount  int64                 `json:"extended_amount"`
	AppliedRules    []AppliedRuleResponse `json:"applied_rules"`
	SnapshotVersion int64                 `json:"snapshot_version"`
}

type RuleResponse struct {
	Rule    pricing.Document `json:"rule"`
	Created bool             `json:"created"`
	Version int64            `json:"store_version"`
}

func FromQuote(q *pricing.Quote) *QuoteResponse {
	rules := make([]AppliedRuleResponse, 0, len(q.AppliedRules))
	for _, r := range q.AppliedRules {
		rules = append(rules, AppliedRuleResponse{
			RuleID:     r.RuleID,
			Kind:       string(r.Kind),
			Name:       r.Name,
			Priority:   r.Priority,
			Stackable:  r.Stackable,
			Amount:     r.Amount,
			PriceAfter: r.PriceAfter,
		})
	}
	return &QuoteResponse{
		VariantID:       q.VariantID,
		At:              q.At,
		Quantity:        q.Quantity,
		Currency:        q.Currency,
		PriceBookID:     q.PriceBookID,
		BaseUnitAmount:  q.BaseUnitAmount,
		UnitAmount:      q.UnitAmount,
		ExtendedAmount:  q.ExtendedAmount,
		AppliedRules:    rules,
		SnapshotVersion: q.SnapshotVersion,
	}
}

func FromUpsertRuleResult(r *commands.UpsertRuleResult) *RuleResponse {
	return &RuleResponse{
		Rule:    pricing.ToDocument(r.Rule),
		Created: r.Created,
		Version: r.Version,
	}
}

// ActiveRulesResponse is the query view as is.
type ActiveRulesResponse = queries.ActiveRulesView
