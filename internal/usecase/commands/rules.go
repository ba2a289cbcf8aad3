package commands

import (
	"context"
	"fmt"
	"log/slog"

	"checkout-engine/internal/domain/audit"
	"checkout-engine/internal/domain/pricing"
	"checkout-engine/internal/infra"
	"checkout-engine/internal/pkg/clock"
	"checkout-engine/internal/usecase/shared"
)

type UpsertRuleResult struct {
	Rule    pricing.Rule
	Created bool
	// rule-store version after the write
	Version int64
}

type RuleCommands interface {
	UpsertRule(ctx context.Context, doc pricing.Document) (*UpsertRuleResult, error)
}

type ruleCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewRuleCommands(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) RuleCommands {
	return &ruleCommandsImpl{uow: uow, clock: clk, logger: logger}
}

// UpsertRule validates and stores a rule. Rules whose window has closed are
// frozen so historical quotes stay reproducible.
func (uc *ruleCommandsImpl) UpsertRule(ctx context.Context, doc pricing.Document) (*UpsertRuleResult, error) {
	rule, err := doc.ToRule()
	if err != nil {
		return nil, shared.Classify(err)
	}
	now := uc.clock.Now().UTC()
	if rule.Window().ClosedBefore(now) {
		return nil, shared.Classify(pricing.ErrRuleClosed)
	}

	result := &UpsertRuleResult{Rule: rule}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var before any
		existing, derr := tx.Rules().Lock(ctx, rule.ID())
		switch {
		case derr == nil:
			if existing.Kind() != rule.Kind() {
				return pricing.ErrKindChanged
			}
			if existing.Window().ClosedBefore(now) {
				return pricing.ErrRuleClosed
			}
			before = pricing.ToDocument(existing)
		case infra.IsKind(derr, infra.KindNotFound):
			result.Created = true
		default:
			return derr
		}

		version, derr := tx.Rules().Upsert(ctx, rule, now)
		if derr != nil {
			return derr
		}
		result.Version = version
		return newAuditBatch(ctx, now).
			add(audit.EntityPriceRule, rule.ID().String(), before, pricing.ToDocument(rule), audit.ReasonRuleUpserted,
				fmt.Sprintf("%s v%d", rule.Kind(), version)).
			flush(tx)
	})
	if err != nil {
		return nil, shared.Classify(err)
	}

	uc.logger.InfoContext(ctx, "price rule upserted",
		slog.String("rule_id", rule.ID().String()),
		slog.String("kind", string(rule.Kind())),
		slog.Bool("created", result.Created),
		slog.Int64("version", result.Version))
	return result, nil
}
