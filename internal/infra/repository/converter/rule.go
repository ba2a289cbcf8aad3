package converter

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"checkout-engine/internal/domain/pricing"
	sqlc "checkout-engine/internal/infra/sqlc/generated"
	"checkout-engine/internal/pkg/pgconv"
)

// RuleFromBody rebuilds a rule from its stored document.
func RuleFromBody(kind string, body []byte) (pricing.Rule, error) {
	var doc pricing.Document
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("decode price rule: %w", err)
	}
	if string(doc.Kind) != kind {
		return nil, fmt.Errorf("price rule kind mismatch: column %q, body %q", kind, doc.Kind)
	}
	rule, err := doc.ToRule()
	if err != nil {
		return nil, fmt.Errorf("rebuild price rule %s: %w", doc.ID, err)
	}
	return rule, nil
}

func RuleToUpsertParams(rule pricing.Rule, version int64, now time.Time) (sqlc.UpsertPriceRuleParams, error) {
	body, err := json.Marshal(pricing.ToDocument(rule))
	if err != nil {
		return sqlc.UpsertPriceRuleParams{}, fmt.Errorf("encode price rule: %w", err)
	}
	if rule.Priority() > math.MaxInt32 || rule.Priority() < math.MinInt32 {
		return sqlc.UpsertPriceRuleParams{}, fmt.Errorf("priority out of int32 range: %d", rule.Priority())
	}
	return sqlc.UpsertPriceRuleParams{
		ID:         rule.ID(),
		Kind:       string(rule.Kind()),
		Name:       rule.Name(),
		ValidFrom:  pgconv.TimeToPgtype(rule.Window().From()),
		ValidUntil: pgconv.TimePtrToPgtype(rule.Window().Until()),
		Priority:   int32(rule.Priority()),
		Body:       body,
		Version:    version,
		UpdatedAt:  pgconv.TimeToPgtype(now),
	}, nil
}
