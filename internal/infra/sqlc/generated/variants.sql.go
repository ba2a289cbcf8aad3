// Written by hand in sqlc v1.29.0 output shape. Keep in step with
// ../queries and regenerate with `sqlc generate` once sqlc.yaml is wired
// into CI.
// source: variants.sql

package sqlc

import (
	"context"

	"github.com/google/uuid"
)

const getVariant = `-- name: GetVariant :one
SELECT id, product_id, sku, attributes, active, created_at
FROM variants
WHERE id = $1
`

func (q *Queries) GetVariant(ctx context.Context, db DBTX, id uuid.UUID) (Variant, error) {
	row := db.QueryRow(ctx, getVariant, id)
	var i Variant
	err := row.Scan(
		&i.ID,
		&i.ProductID,
		&i.Sku,
		&i.Attributes,
		&i.Active,
		&i.CreatedAt,
	)
	return i, err
}

const upsertVariant = `-- name: UpsertVariant :exec
INSERT INTO variants (id, product_id, sku, attributes, active)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (id) DO UPDATE
SET product_id = EXCLUDED.product_id,
    sku = EXCLUDED.sku,
    attributes = EXCLUDED.attributes,
    active = EXCLUDED.active
`

type UpsertVariantParams struct {
	ID         uuid.UUID `json:"id"`
	ProductID  uuid.UUID `json:"product_id"`
	Sku        string    `json:"sku"`
	Attributes []byte    `json:"attributes"`
	Active     bool      `json:"active"`
}

func (q *Queries) UpsertVariant(ctx context.Context, db DBTX, arg UpsertVariantParams) error {
	_, err := db.Exec(ctx, upsertVariant,
		arg.ID,
		arg.ProductID,
		arg.Sku,
		arg.Attributes,
		arg.Active,
	)
	return err
}
