package readstore

import (
	"context"

	"checkout-engine/internal/domain/audit"
	"checkout-engine/internal/infra"
	"checkout-engine/internal/infra/repository/converter"
	sqlc "checkout-engine/internal/infra/sqlc/generated"
)

type AuditReadQueries interface {
	ListAuditEntries(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAuditEntriesParams) ([]sqlc.AuditEntry, error)
}

type AuditReadStore struct {
	queries AuditReadQueries
	db      sqlc.DBTX
}

func NewAuditReadStore(queries AuditReadQueries, db sqlc.DBTX) *AuditReadStore {
	return &AuditReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *AuditReadStore) List(ctx context.Context, filter audit.Filter) ([]audit.Entry, error) {
	limit, err := converter.Int32(filter.Limit)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid audit page size", err, infra.KindConstraintViolated)
	}
	rows, err := r.queries.ListAuditEntries(ctx, r.db, sqlc.ListAuditEntriesParams{
		AfterSeq:   filter.AfterSeq,
		EntityType: string(filter.EntityType),
		EntityID:   filter.EntityID,
		RowLimit:   limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list audit entries", err)
	}
	out := make([]audit.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, converter.AuditFromRow(row))
	}
	return out, nil
}
