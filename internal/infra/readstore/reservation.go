package readstore

import (
	"context"

	"checkout-engine/internal/infra"
	"checkout-engine/internal/infra/repository/converter"
	sqlc "checkout-engine/internal/infra/sqlc/generated"
	"checkout-engine/internal/pkg/pgconv"
	"checkout-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationViewQueries interface {
	GetReservation(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservation, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservation(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get reservation view by id", err)
	}
	res, err := converter.ReservationFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode reservation", err, infra.KindDBFailure)
	}
	return &queries.ReservationView{
		Snapshot:  res.Snapshot(),
		CreatedAt: res.CreatedAt(),
		UpdatedAt: res.UpdatedAt(),
	}, nil
}
