package converter

import (
	"checkout-engine/internal/domain/audit"
	sqlc "checkout-engine/internal/infra/sqlc/generated"
	"checkout-engine/internal/pkg/pgconv"
)

func AuditToInsertParams(e audit.Entry) sqlc.InsertAuditEntryParams {
	return sqlc.InsertAuditEntryParams{
		OccurredAt: pgconv.TimeToPgtype(e.OccurredAt),
		Actor:      e.Actor,
		EntityType: string(e.EntityType),
		EntityID:   e.EntityID,
		Before:     []byte(e.Before),
		After:      []byte(e.After),
		Reason:     string(e.Reason),
		Note:       pgconv.OptionalText(e.Note),
	}
}

func AuditFromRow(row sqlc.AuditEntry) audit.Entry {
	e := audit.Entry{
		Seq:        row.Seq,
		OccurredAt: pgconv.TimeFromPgtype(row.OccurredAt),
		Actor:      row.Actor,
		EntityType: audit.EntityType(row.EntityType),
		EntityID:   row.EntityID,
		Before:     row.Before,
		After:      row.After,
		Reason:     audit.Reason(row.Reason),
	}
	if row.Note.Valid {
		e.Note = row.Note.String
	}
	return e
}
