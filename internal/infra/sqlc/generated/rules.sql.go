// Written by hand in sqlc v1.29.0 output shape. Keep in step with
// ../queries and regenerate with `sqlc generate` once sqlc.yaml is wired
// into CI.
// source: rules.sql

package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const bumpRuleStoreVersion = `-- name: BumpRuleStoreVersion :one
UPDATE rule_store_version
SET version = version + 1, updated_at = $1
WHERE id = 1
RETURNING version
`

func (q *Queries) BumpRuleStoreVersion(ctx context.Context, db DBTX, updatedAt pgtype.Timestamptz) (int64, error) {
	row := db.QueryRow(ctx, bumpRuleStoreVersion, updatedAt)
	var version int64
	err := row.Scan(&version)
	return version, err
}

const getPriceRuleForUpdate = `-- name: GetPriceRuleForUpdate :one
SELECT id, kind, body
FROM price_rules
WHERE id = $1
FOR UPDATE
`

type GetPriceRuleForUpdateRow struct {
	ID   uuid.UUID `json:"id"`
	Kind string    `json:"kind"`
	Body []byte    `json:"body"`
}

func (q *Queries) GetPriceRuleForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (GetPriceRuleForUpdateRow, error) {
	row := db.QueryRow(ctx, getPriceRuleForUpdate, id)
	var i GetPriceRuleForUpdateRow
	err := row.Scan(&i.ID, &i.Kind, &i.Body)
	return i, err
}

const getRuleStoreVersion = `-- name: GetRuleStoreVersion :one
SELECT version FROM rule_store_version WHERE id = 1
`

func (q *Queries) GetRuleStoreVersion(ctx context.Context, db DBTX) (int64, error) {
	row := db.QueryRow(ctx, getRuleStoreVersion)
	var version int64
	err := row.Scan(&version)
	return version, err
}

const listActivePriceRules = `-- name: ListActivePriceRules :many
WITH bounds AS (
    SELECT valid_from AS b FROM price_rules
    UNION ALL
    SELECT valid_until FROM price_rules WHERE valid_until IS NOT NULL
)
SELECT v.version AS store_version,
       (SELECT max(b) FROM bounds WHERE b <= $1::timestamptz)::timestamptz AS stable_from,
       (SELECT min(b) FROM bounds WHERE b > $1::timestamptz)::timestamptz AS stable_until,
       r.id, r.kind, r.body
FROM rule_store_version v
LEFT JOIN price_rules r
  ON r.valid_from <= $1::timestamptz
 AND (r.valid_until IS NULL OR r.valid_until > $1::timestamptz)
WHERE v.id = 1
ORDER BY r.id
`

type ListActivePriceRulesRow struct {
	StoreVersion int64              `json:"store_version"`
	StableFrom   pgtype.Timestamptz `json:"stable_from"`
	StableUntil  pgtype.Timestamptz `json:"stable_until"`
	ID           pgtype.UUID        `json:"id"`
	Kind         pgtype.Text        `json:"kind"`
	Body         []byte             `json:"body"`
}

// One statement so the version, the rule set and the stable interval come
// from the same snapshot.
func (q *Queries) ListActivePriceRules(ctx context.Context, db DBTX, at pgtype.Timestamptz) ([]ListActivePriceRulesRow, error) {
	rows, err := db.Query(ctx, listActivePriceRules, at)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListActivePriceRulesRow
	for rows.Next() {
		var i ListActivePriceRulesRow
		if err := rows.Scan(
			&i.StoreVersion,
			&i.StableFrom,
			&i.StableUntil,
			&i.ID,
			&i.Kind,
			&i.Body,
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

const upsertPriceRule = `-- name: UpsertPriceRule :exec
INSERT INTO price_rules (id, kind, name, valid_from, valid_until, priority, body, version, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (id) DO UPDATE
SET name = EXCLUDED.name,
    valid_from = EXCLUDED.valid_from,
    valid_until = EXCLUDED.valid_until,
    priority = EXCLUDED.priority,
    body = EXCLUDED.body,
    version = EXCLUDED.version,
    updated_at = EXCLUDED.updated_at
`

type UpsertPriceRuleParams struct {
	ID         uuid.UUID          `json:"id"`
	Kind       string             `json:"kind"`
	Name       string             `json:"name"`
	ValidFrom  pgtype.Timestamptz `json:"valid_from"`
	ValidUntil pgtype.Timestamptz `json:"valid_until"`
	Priority   int32              `json:"priority"`
	Body       []byte             `json:"body"`
	Version    int64              `json:"version"`
	UpdatedAt  pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpsertPriceRule(ctx context.Context, db DBTX, arg UpsertPriceRuleParams) error {
	_, err := db.Exec(ctx, upsertPriceRule,
		arg.ID,
		arg.Kind,
		arg.Name,
		arg.ValidFrom,
		arg.ValidUntil,
		arg.Priority,
		arg.Body,
		arg.Version,
		arg.UpdatedAt,
	)
	return err
}
