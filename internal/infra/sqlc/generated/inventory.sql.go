// Written by hand in sqlc v1.29.0 output shape. Keep in step with
// ../queries and regenerate with `sqlc generate` once sqlc.yaml is wired
// into CI.
// source: inventory.sql

package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const getInventoryRecord = `-- name: GetInventoryRecord :one
SELECT variant_id, location_id, on_hand, reserved, version, updated_at
FROM inventory_records
WHERE variant_id = $1 AND location_id = $2
`

type GetInventoryRecordParams struct {
	VariantID  uuid.UUID `json:"variant_id"`
	LocationID uuid.UUID `json:"location_id"`
}

func (q *Queries) GetInventoryRecord(ctx context.Context, db DBTX, arg GetInventoryRecordParams) (InventoryRecord, error) {
	row := db.QueryRow(ctx, getInventoryRecord, arg.VariantID, arg.LocationID)
	var i InventoryRecord
	err := row.Scan(
		&i.VariantID,
		&i.LocationID,
		&i.OnHand,
		&i.Reserved,
		&i.Version,
		&i.UpdatedAt,
	)
	return i, err
}

const getInventoryRecordForUpdate = `-- name: GetInventoryRecordForUpdate :one
SELECT variant_id, location_id, on_hand, reserved, version, updated_at
FROM inventory_records
WHERE variant_id = $1 AND location_id = $2
FOR UPDATE
`

type GetInventoryRecordForUpdateParams struct {
	VariantID  uuid.UUID `json:"variant_id"`
	LocationID uuid.UUID `json:"location_id"`
}

func (q *Queries) GetInventoryRecordForUpdate(ctx context.Context, db DBTX, arg GetInventoryRecordForUpdateParams) (InventoryRecord, error) {
	row := db.QueryRow(ctx, getInventoryRecordForUpdate, arg.VariantID, arg.LocationID)
	var i InventoryRecord
	err := row.Scan(
		&i.VariantID,
		&i.LocationID,
		&i.OnHand,
		&i.Reserved,
		&i.Version,
		&i.UpdatedAt,
	)
	return i, err
}

const insertInventoryRecordIfMissing = `-- name: InsertInventoryRecordIfMissing :exec
INSERT INTO inventory_records (variant_id, location_id, on_hand, reserved, version, updated_at)
VALUES ($1, $2, 0, 0, 0, $3)
ON CONFLICT (variant_id, location_id) DO NOTHING
`

type InsertInventoryRecordIfMissingParams struct {
	VariantID  uuid.UUID          `json:"variant_id"`
	LocationID uuid.UUID          `json:"location_id"`
	UpdatedAt  pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) InsertInventoryRecordIfMissing(ctx context.Context, db DBTX, arg InsertInventoryRecordIfMissingParams) error {
	_, err := db.Exec(ctx, insertInventoryRecordIfMissing, arg.VariantID, arg.LocationID, arg.UpdatedAt)
	return err
}

const listInventoryRecordsByVariant = `-- name: ListInventoryRecordsByVariant :many
SELECT variant_id, location_id, on_hand, reserved, version, updated_at
FROM inventory_records
WHERE variant_id = $1
ORDER BY location_id
`

func (q *Queries) ListInventoryRecordsByVariant(ctx context.Context, db DBTX, variantID uuid.UUID) ([]InventoryRecord, error) {
	rows, err := db.Query(ctx, listInventoryRecordsByVariant, variantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []InventoryRecord
	for rows.Next() {
		var i InventoryRecord
		if err := rows.Scan(
			&i.VariantID,
			&i.LocationID,
			&i.OnHand,
			&i.Reserved,
			&i.Version,
			&i.UpdatedAt,
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

const updateInventoryRecord = `-- name: UpdateInventoryRecord :execrows
UPDATE inventory_records
SET on_hand = $1,
    reserved = $2,
    version = version + 1,
    updated_at = $3
WHERE variant_id = $4
  AND location_id = $5
  AND version = $6
  AND $2 <= $1
`

type UpdateInventoryRecordParams struct {
	OnHand          int32              `json:"on_hand"`
	Reserved        int32              `json:"reserved"`
	UpdatedAt       pgtype.Timestamptz `json:"updated_at"`
	VariantID       uuid.UUID          `json:"variant_id"`
	LocationID      uuid.UUID          `json:"location_id"`
	ExpectedVersion int64              `json:"expected_version"`
}

func (q *Queries) UpdateInventoryRecord(ctx context.Context, db DBTX, arg UpdateInventoryRecordParams) (int64, error) {
	result, err := db.Exec(ctx, updateInventoryRecord,
		arg.OnHand,
		arg.Reserved,
		arg.UpdatedAt,
		arg.VariantID,
		arg.LocationID,
		arg.ExpectedVersion,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
