package repository

import (
	"context"

	"checkout-engine/internal/domain/audit"
	"checkout-engine/internal/infra"
	"checkout-engine/internal/infra/repository/converter"
	sqlc "checkout-engine/internal/infra/sqlc/generated"
)

// auditAppendLockKey serializes audit writers until commit so seq order is
// commit order and `seq > cursor` paging never skips a late commit.
const auditAppendLockKey int64 = 0x61756469745f6c6b

type AuditWriteQueries interface {
	LockAuditAppends(ctx context.Context, db sqlc.DBTX, lockKey int64) error
	InsertAuditEntry(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertAuditEntryParams) (int64, error)
}

type AuditRepository struct {
	queries AuditWriteQueries
	db      sqlc.DBTX
}

func NewAuditRepository(queries AuditWriteQueries, db sqlc.DBTX) *AuditRepository {
	return &AuditRepository{
		queries: queries,
		db:      db,
	}
}

func (r *AuditRepository) Append(ctx context.Context, entries ...audit.Entry) error {
	if len(entries) == 0 {
		return nil
	}
	if err := r.queries.LockAuditAppends(ctx, r.db, auditAppendLockKey); err != nil {
		return infra.WrapRepoErr("failed to lock audit appends", err)
	}
	for _, e := range entries {
		if _, err := r.queries.InsertAuditEntry(ctx, r.db, converter.AuditToInsertParams(e)); err != nil {
			return infra.WrapRepoErr("failed to append audit entry", err)
		}
	}
	return nil
}
