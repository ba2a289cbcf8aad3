// Written by hand in sqlc v1.29.0 output shape. Keep in step with
// ../queries and regenerate with `sqlc generate` once sqlc.yaml is wired
// into CI.
// source: audit.sql

package sqlc

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const lockAuditAppends = `-- name: LockAuditAppends :exec
SELECT pg_advisory_xact_lock($1::bigint)
`

func (q *Queries) LockAuditAppends(ctx context.Context, db DBTX, lockKey int64) error {
	_, err := db.Exec(ctx, lockAuditAppends, lockKey)
	return err
}

const insertAuditEntry = `-- name: InsertAuditEntry :one
INSERT INTO audit_entries (occurred_at, actor, entity_type, entity_id, before, after, reason, note)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING seq
`

type InsertAuditEntryParams struct {
	OccurredAt pgtype.Timestamptz `json:"occurred_at"`
	Actor      string             `json:"actor"`
	EntityType string             `json:"entity_type"`
	EntityID   string             `json:"entity_id"`
	Before     []byte             `json:"before"`
	After      []byte             `json:"after"`
	Reason     string             `json:"reason"`
	Note       pgtype.Text        `json:"note"`
}

func (q *Queries) InsertAuditEntry(ctx context.Context, db DBTX, arg InsertAuditEntryParams) (int64, error) {
	row := db.QueryRow(ctx, insertAuditEntry,
		arg.OccurredAt,
		arg.Actor,
		arg.EntityType,
		arg.EntityID,
		arg.Before,
		arg.After,
		arg.Reason,
		arg.Note,
	)
	var seq int64
	err := row.Scan(&seq)
	return seq, err
}

const listAuditEntries = `-- name: ListAuditEntries :many
SELECT seq, occurred_at, actor, entity_type, entity_id, before, after, reason, note
FROM audit_entries
WHERE seq > $1
  AND ($2::text = '' OR entity_type = $2::text)
  AND ($3::text = '' OR entity_id = $3::text)
ORDER BY seq
LIMIT $4
`

type ListAuditEntriesParams struct {
	AfterSeq   int64  `json:"after_seq"`
	EntityType string `json:"entity_type"`
	EntityID   string `json:"entity_id"`
	RowLimit   int32  `json:"row_limit"`
}

func (q *Queries) ListAuditEntries(ctx context.Context, db DBTX, arg ListAuditEntriesParams) ([]AuditEntry, error) {
	rows, err := db.Query(ctx, listAuditEntries,
		arg.AfterSeq,
		arg.EntityType,
		arg.EntityID,
		arg.RowLimit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []AuditEntry
	for rows.Next() {
		var i AuditEntry
		if err := rows.Scan(
			&i.Seq,
			&i.OccurredAt,
			&i.Actor,
			&i.EntityType,
			&i.EntityID,
			&i.Before,
			&i.After,
			&i.Reason,
			&i.Note,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
