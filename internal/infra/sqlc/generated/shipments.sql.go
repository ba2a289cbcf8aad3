// Written by hand in sqlc v1.29.0 output shape. Keep in step with
// ../queries and regenerate with `sqlc generate` once sqlc.yaml is wired
// into CI.
// source: shipments.sql

package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createInboundShipment = `-- name: CreateInboundShipment :exec
INSERT INTO inbound_shipments (
    id, variant_id, location_id, reference, expected_qty, received_qty, status, created_at, updated_at
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9
)
`

type CreateInboundShipmentParams struct {
	ID          uuid.UUID          `json:"id"`
	VariantID   uuid.UUID          `json:"variant_id"`
	LocationID  uuid.UUID          `json:"location_id"`
	Reference   string             `json:"reference"`
	ExpectedQty int32              `json:"expected_qty"`
	ReceivedQty int32              `json:"received_qty"`
	Status      string             `json:"status"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
	UpdatedAt   pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) CreateInboundShipment(ctx context.Context, db DBTX, arg CreateInboundShipmentParams) error {
	_, err := db.Exec(ctx, createInboundShipment,
		arg.ID,
		arg.VariantID,
		arg.LocationID,
		arg.Reference,
		arg.ExpectedQty,
		arg.ReceivedQty,
		arg.Status,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const getInboundShipment = `-- name: GetInboundShipment :one
SELECT id, variant_id, location_id, reference, expected_qty, received_qty, status, created_at, updated_at
FROM inbound_shipments
WHERE id = $1
`

func (q *Queries) GetInboundShipment(ctx context.Context, db DBTX, id uuid.UUID) (InboundShipment, error) {
	row := db.QueryRow(ctx, getInboundShipment, id)
	var i InboundShipment
	err := row.Scan(
		&i.ID,
		&i.VariantID,
		&i.LocationID,
		&i.Reference,
		&i.ExpectedQty,
		&i.ReceivedQty,
		&i.Status,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getInboundShipmentForUpdate = `-- name: GetInboundShipmentForUpdate :one
SELECT id, variant_id, location_id, reference, expected_qty, received_qty, status, created_at, updated_at
FROM inbound_shipments
WHERE id = $1
FOR UPDATE
`

func (q *Queries) GetInboundShipmentForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (InboundShipment, error) {
	row := db.QueryRow(ctx, getInboundShipmentForUpdate, id)
	var i InboundShipment
	err := row.Scan(
		&i.ID,
		&i.VariantID,
		&i.LocationID,
		&i.Reference,
		&i.ExpectedQty,
		&i.ReceivedQty,
		&i.Status,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const updateInboundShipment = `-- name: UpdateInboundShipment :execrows
UPDATE inbound_shipments
SET received_qty = $2,
    status = $3,
    updated_at = $4
WHERE id = $1
`

type UpdateInboundShipmentParams struct {
	ID          uuid.UUID          `json:"id"`
	ReceivedQty int32              `json:"received_qty"`
	Status      string             `json:"status"`
	UpdatedAt   pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpdateInboundShipment(ctx context.Context, db DBTX, arg UpdateInboundShipmentParams) (int64, error) {
	result, err := db.Exec(ctx, updateInboundShipment,
		arg.ID,
		arg.ReceivedQty,
		arg.Status,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
