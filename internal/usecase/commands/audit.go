package commands

import (
	"context"
	"time"

	"checkout-engine/internal/domain/audit"
	"checkout-engine/internal/usecase/shared"
)

// auditBatch collects entries for one transaction and stops at the first error.
type auditBatch struct {
	ctx     context.Context
	at      time.Time
	entries []audit.Entry
	err     error
}

func newAuditBatch(ctx context.Context, at time.Time) *auditBatch {
	return &auditBatch{ctx: ctx, at: at}
}

func (b *auditBatch) add(entityType audit.EntityType, entityID string, before, after any, reason audit.Reason, note string) *auditBatch {
	if b.err != nil {
		return b
	}
	e, err := audit.NewEntry(b.ctx, b.at, entityType, entityID, before, after, reason)
	if err != nil {
		b.err = err
		return b
	}
	b.entries = append(b.entries, e.WithNote(note))
	return b
}

func (b *auditBatch) flush(tx shared.Tx) error {
	if b.err != nil {
		return b.err
	}
	if len(b.entries) == 0 {
		return nil
	}
	return tx.Audit().Append(b.ctx, b.entries...)
}
