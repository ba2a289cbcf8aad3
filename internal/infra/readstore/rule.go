package readstore

import (
	"context"
	"time"

	"checkout-engine/internal/domain/pricing"
	"checkout-engine/internal/infra"
	"checkout-engine/internal/infra/repository/converter"
	sqlc "checkout-engine/internal/infra/sqlc/generated"
	"checkout-engine/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type RuleReadQueries interface {
	GetRuleStoreVersion(ctx context.Context, db sqlc.DBTX) (int64, error)
	ListActivePriceRules(ctx context.Context, db sqlc.DBTX, at pgtype.Timestamptz) ([]sqlc.ListActivePriceRulesRow, error)
}

type RuleSnapshotReadStore struct {
	queries RuleReadQueries
	db      sqlc.DBTX
}

func NewRuleSnapshotReadStore(queries RuleReadQueries, db sqlc.DBTX) *RuleSnapshotReadStore {
	return &RuleSnapshotReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RuleSnapshotReadStore) CurrentVersion(ctx context.Context) (int64, error) {
	v, err := r.queries.GetRuleStoreVersion(ctx, r.db)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to get rule store version", err)
	}
	return v, nil
}

// LoadActiveSnapshot issues one statement; the version and the rule rows
// share its snapshot.
func (r *RuleSnapshotReadStore) LoadActiveSnapshot(ctx context.Context, at time.Time) (pricing.Snapshot, error) {
	rows, err := r.queries.ListActivePriceRules(ctx, r.db, pgconv.TimeToPgtype(at))
	if err != nil {
		return pricing.Snapshot{}, infra.WrapRepoErr("failed to list active price rules", err)
	}

	var snap pricing.Snapshot
	for _, row := range rows {
		snap.Version = row.StoreVersion
		if row.StableFrom.Valid {
			snap.StableFrom = pgconv.TimeFromPgtype(row.StableFrom)
		}
		if row.StableUntil.Valid {
			until := pgconv.TimeFromPgtype(row.StableUntil)
			snap.StableUntil = &until
		}
		// the left join yields one null row when nothing is active
		if !row.ID.Valid {
			continue
		}
		rule, err := converter.RuleFromBody(row.Kind.String, row.Body)
		if err != nil {
			return pricing.Snapshot{}, infra.WrapRepoErr("failed to decode price rule", err, infra.KindDBFailure)
		}
		snap.Rules = append(snap.Rules, rule)
	}
	return snap, nil
}
