package repository

import (
	"context"
	"time"

	"checkout-engine/internal/domain/reservation"
	"checkout-engine/internal/infra"
	"checkout-engine/internal/infra/repository/converter"
	sqlc "checkout-engine/internal/infra/sqlc/generated"
	"checkout-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) error
	GetReservationForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservation, error)
	UpdateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationParams) (int64, error)
	LockDueReservations(ctx context.Context, db sqlc.DBTX, arg sqlc.LockDueReservationsParams) ([]sqlc.Reservation, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	params, err := converter.ReservationToCreateParams(res)
	if err != nil {
		return infra.WrapRepoErr("failed to encode reservation", err, infra.KindConstraintViolated)
	}
	if err := r.queries.CreateReservation(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) Lock(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock reservation", err)
	}
	res, err := converter.ReservationFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode reservation", err, infra.KindDBFailure)
	}
	return res, nil
}

func (r *ReservationRepository) Update(ctx context.Context, res *reservation.Reservation) error {
	params, err := converter.ReservationToUpdateParams(res)
	if err != nil {
		return infra.WrapRepoErr("failed to encode reservation", err, infra.KindConstraintViolated)
	}
	n, err := r.queries.UpdateReservation(ctx, r.db, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) LockDue(ctx context.Context, now time.Time, limit int) ([]*reservation.Reservation, error) {
	batch, err := converter.Int32(limit)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid sweep batch size", err, infra.KindConstraintViolated)
	}
	rows, err := r.queries.LockDueReservations(ctx, r.db, sqlc.LockDueReservationsParams{
		Now:   pgconv.TimeToPgtype(now),
		Batch: batch,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock due reservations", err)
	}
	out := make([]*reservation.Reservation, 0, len(rows))
	for _, row := range rows {
		res, err := converter.ReservationFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode reservation", err, infra.KindDBFailure)
		}
		out = append(out, res)
	}
	return out, nil
}
