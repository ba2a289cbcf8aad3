package queries

import (
	"context"

	"checkout-engine/internal/domain/reservation"
	"checkout-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
}

func NewReservationQueries(store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, shared.Classify(shared.NotFoundAs(err, reservation.ErrReservationNotFound))
	}
	return v, nil
}
