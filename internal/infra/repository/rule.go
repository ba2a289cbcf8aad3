package repository

import (
	"context"
	"time"

	"checkout-engine/internal/domain/pricing"
	"checkout-engine/internal/infra"
	"checkout-engine/internal/infra/repository/converter"
	sqlc "checkout-engine/internal/infra/sqlc/generated"
	"checkout-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RuleWriteQueries interface {
	GetPriceRuleForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetPriceRuleForUpdateRow, error)
	BumpRuleStoreVersion(ctx context.Context, db sqlc.DBTX, updatedAt pgtype.Timestamptz) (int64, error)
	UpsertPriceRule(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertPriceRuleParams) error
}

type RuleRepository struct {
	queries RuleWriteQueries
	db      sqlc.DBTX
}

func NewRuleRepository(queries RuleWriteQueries, db sqlc.DBTX) *RuleRepository {
	return &RuleRepository{
		queries: queries,
		db:      db,
	}
}

func (r *RuleRepository) Lock(ctx context.Context, id uuid.UUID) (pricing.Rule, error) {
	row, err := r.queries.GetPriceRuleForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("price rule not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock price rule", err)
	}
	rule, err := converter.RuleFromBody(row.Kind, row.Body)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode price rule", err, infra.KindDBFailure)
	}
	return rule, nil
}

// Upsert bumps the store version first; the version row lock serializes
// concurrent rule writers.
func (r *RuleRepository) Upsert(ctx context.Context, rule pricing.Rule, now time.Time) (int64, error) {
	version, err := r.queries.BumpRuleStoreVersion(ctx, r.db, pgconv.TimeToPgtype(now))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to bump rule store version", err)
	}
	params, err := converter.RuleToUpsertParams(rule, version, now)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to encode price rule", err, infra.KindConstraintViolated)
	}
	if err := r.queries.UpsertPriceRule(ctx, r.db, params); err != nil {
		return 0, infra.WrapRepoErr("failed to upsert price rule", err)
	}
	return version, nil
}
