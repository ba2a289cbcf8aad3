package queries

import (
	"context"

	"checkout-engine/internal/domain/audit"
	"checkout-engine/internal/usecase/shared"
)

type AuditReadStore interface {
	// List returns entries matching filter in ascending seq order, at most
	// filter.Limit of them.
	List(ctx context.Context, filter audit.Filter) ([]audit.Entry, error)
}

type AuditQuery struct {
	EntityType audit.EntityType
	EntityID   string
	Cursor     *Cursor
	Limit      int
}

type AuditQueries interface {
	List(ctx context.Context, q AuditQuery) (*AuditPage, error)
}

type auditQueriesImpl struct {
	store AuditReadStore
}

func NewAuditQueries(store AuditReadStore) AuditQueries {
	return &auditQueriesImpl{store: store}
}

func (q *auditQueriesImpl) List(ctx context.Context, in AuditQuery) (*AuditPage, error) {
	limit := ValidateLimit(in.Limit)
	filter := audit.Filter{
		EntityType: in.EntityType,
		EntityID:   in.EntityID,
		Limit:      limit + 1,
	}
	if in.Cursor != nil && in.Cursor.After != "" {
		seq, err := DecodeSeqCursor(in.Cursor.After)
		if err != nil {
			return nil, ErrInvalidCursor
		}
		filter.AfterSeq = seq
	}

	rows, err := q.store.List(ctx, filter)
	if err != nil {
		return nil, shared.Classify(err)
	}

	page := &AuditPage{Entries: rows}
	if len(rows) > limit {
		page.Entries = rows[:limit]
		page.Next = &Cursor{After: EncodeSeqCursor(rows[limit-1].Seq)}
	}
	if page.Entries == nil {
		page.Entries = []audit.Entry{}
	}
	return page, nil
}
