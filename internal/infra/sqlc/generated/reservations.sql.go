// Written by hand in sqlc v1.29.0 output shape. Keep in step with
// ../queries and regenerate with `sqlc generate` once sqlc.yaml is wired
// into CI.
// source: reservations.sql

package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createReservation = `-- name: CreateReservation :exec
INSERT INTO reservations (
    id, variant_id, location_id, quantity, status, pricing, order_reference, created_at, expires_at, updated_at
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9, $10
)
`

type CreateReservationParams struct {
	ID             uuid.UUID          `json:"id"`
	VariantID      uuid.UUID          `json:"variant_id"`
	LocationID     uuid.UUID          `json:"location_id"`
	Quantity       int32              `json:"quantity"`
	Status         string             `json:"status"`
	Pricing        []byte             `json:"pricing"`
	OrderReference pgtype.Text        `json:"order_reference"`
	CreatedAt      pgtype.Timestamptz `json:"created_at"`
	ExpiresAt      pgtype.Timestamptz `json:"expires_at"`
	UpdatedAt      pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) CreateReservation(ctx context.Context, db DBTX, arg CreateReservationParams) error {
	_, err := db.Exec(ctx, createReservation,
		arg.ID,
		arg.VariantID,
		arg.LocationID,
		arg.Quantity,
		arg.Status,
		arg.Pricing,
		arg.OrderReference,
		arg.CreatedAt,
		arg.ExpiresAt,
		arg.UpdatedAt,
	)
	return err
}

const getReservation = `-- name: GetReservation :one
SELECT id, variant_id, location_id, quantity, status, pricing, order_reference, created_at, expires_at, updated_at
FROM reservations
WHERE id = $1
`

func (q *Queries) GetReservation(ctx context.Context, db DBTX, id uuid.UUID) (Reservation, error) {
	row := db.QueryRow(ctx, getReservation, id)
	var i Reservation
	err := row.Scan(
		&i.ID,
		&i.VariantID,
		&i.LocationID,
		&i.Quantity,
		&i.Status,
		&i.Pricing,
		&i.OrderReference,
		&i.CreatedAt,
		&i.ExpiresAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getReservationForUpdate = `-- name: GetReservationForUpdate :one
SELECT id, variant_id, location_id, quantity, status, pricing, order_reference, created_at, expires_at, updated_at
FROM reservations
WHERE id = $1
FOR UPDATE
`

func (q *Queries) GetReservationForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Reservation, error) {
	row := db.QueryRow(ctx, getReservationForUpdate, id)
	var i Reservation
	err := row.Scan(
		&i.ID,
		&i.VariantID,
		&i.LocationID,
		&i.Quantity,
		&i.Status,
		&i.Pricing,
		&i.OrderReference,
		&i.CreatedAt,
		&i.ExpiresAt,
		&i.UpdatedAt,
	)
	return i, err
}

const lockDueReservations = `-- name: LockDueReservations :many
SELECT id, variant_id, location_id, quantity, status, pricing, order_reference, created_at, expires_at, updated_at
FROM reservations
WHERE status = 'held' AND expires_at <= $1
ORDER BY expires_at, id
LIMIT $2
FOR UPDATE SKIP LOCKED
`

type LockDueReservationsParams struct {
	Now   pgtype.Timestamptz `json:"now"`
	Batch int32              `json:"batch"`
}

func (q *Queries) LockDueReservations(ctx context.Context, db DBTX, arg LockDueReservationsParams) ([]Reservation, error) {
	rows, err := db.Query(ctx, lockDueReservations, arg.Now, arg.Batch)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Reservation
	for rows.Next() {
		var i Reservation
		if err := rows.Scan(
			&i.ID,
			&i.VariantID,
			&i.LocationID,
			&i.Quantity,
			&i.Status,
			&i.Pricing,
			&i.OrderReference,
			&i.CreatedAt,
			&i.ExpiresAt,
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

const updateReservation = `-- name: UpdateReservation :execrows
UPDATE reservations
SET status = $2,
    pricing = $3,
    order_reference = $4,
    updated_at = $5
WHERE id = $1
`

type UpdateReservationParams struct {
	ID             uuid.UUID          `json:"id"`
	Status         string             `json:"status"`
	Pricing        []byte             `json:"pricing"`
	OrderReference pgtype.Text        `json:"order_reference"`
	UpdatedAt      pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpdateReservation(ctx context.Context, db DBTX, arg UpdateReservationParams) (int64, error) {
	result, err := db.Exec(ctx, updateReservation,
		arg.ID,
		arg.Status,
		arg.Pricing,
		arg.OrderReference,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
