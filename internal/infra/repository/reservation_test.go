//go:build unit

package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"checkout-engine/internal/domain/inventory"
	"checkout-engine/internal/domain/reservation"
	"checkout-engine/internal/infra"
	sqlc "checkout-engine/internal/infra/sqlc/generated"
	"checkout-engine/internal/pkg/pgconv"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReservationRepository_LockDecodesFrozenPricing(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	id := uuid.New()
	key := inventory.Key{VariantID: uuid.New(), LocationID: uuid.New()}
	pricing := reservation.Pricing{
		UnitAmount:  9000,
		Currency:    "USD",
		PriceBookID: uuid.New(),
		AppliedRules: []reservation.AppliedRule{
			{RuleID: uuid.New(), Kind: "campaign", Priority: 1, Amount: 1000},
		},
		SnapshotVersion: 4,
		PricedAt:        now,
	}
	body, err := json.Marshal(pricing)
	require.NoError(t, err)

	q := new(MockReservationWriteQueries)
	q.On("GetReservationForUpdate", mock.Anything, mock.Anything, id).Return(sqlc.Reservation{
		ID:             id,
		VariantID:      key.VariantID,
		LocationID:     key.LocationID,
		Quantity:       2,
		Status:         string(reservation.StatusCommitted),
		Pricing:        body,
		OrderReference: pgconv.StringToPgtype("ORD-1"),
		CreatedAt:      pgconv.TimeToPgtype(now),
		ExpiresAt:      pgconv.TimeToPgtype(now.Add(15 * time.Minute)),
		UpdatedAt:      pgconv.TimeToPgtype(now),
	}, nil)

	res, err := NewReservationRepository(q, nil).Lock(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, reservation.StatusCommitted, res.Status())
	assert.Equal(t, key, res.Key())
	require.NotNil(t, res.OrderReference())
	assert.Equal(t, "ORD-1", res.OrderReference().String())
	if diff := cmp.Diff(&pricing, res.Pricing()); diff != "" {
		t.Errorf("pricing mismatch (-want +got):\n%s", diff)
	}
}

func TestReservationRepository_LockErrors(t *testing.T) {
	id := uuid.New()

	t.Run("not found", func(t *testing.T) {
		q := new(MockReservationWriteQueries)
		q.On("GetReservationForUpdate", mock.Anything, mock.Anything, id).Return(sqlc.Reservation{}, pgx.ErrNoRows)

		_, err := NewReservationRepository(q, nil).Lock(context.Background(), id)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("unknown status", func(t *testing.T) {
		q := new(MockReservationWriteQueries)
		q.On("GetReservationForUpdate", mock.Anything, mock.Anything, id).Return(sqlc.Reservation{ID: id, Status: "lost"}, nil)

		_, err := NewReservationRepository(q, nil).Lock(context.Background(), id)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestReservationRepository_CreateWritesNullPricingForUnpricedHold(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	key := inventory.Key{VariantID: uuid.New(), LocationID: uuid.New()}
	res, err := reservation.NewReservation(key, 3, now, 15*time.Minute)
	require.NoError(t, err)

	q := new(MockReservationWriteQueries)
	q.On("CreateReservation", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.CreateReservationParams) bool {
		return p.ID == res.ID() &&
			p.Quantity == 3 &&
			p.Status == "held" &&
			p.Pricing == nil &&
			!p.OrderReference.Valid &&
			pgconv.TimeFromPgtype(p.ExpiresAt).Equal(now.Add(15*time.Minute))
	})).Return(nil)

	require.NoError(t, NewReservationRepository(q, nil).Create(context.Background(), res))
	q.AssertExpectations(t)
}

func TestReservationRepository_LockDue(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	rows := []sqlc.Reservation{
		{ID: uuid.New(), VariantID: uuid.New(), LocationID: uuid.New(), Quantity: 1, Status: "held"},
		{ID: uuid.New(), VariantID: uuid.New(), LocationID: uuid.New(), Quantity: 2, Status: "held"},
	}

	q := new(MockReservationWriteQueries)
	q.On("LockDueReservations", mock.Anything, mock.Anything, sqlc.LockDueReservationsParams{
		Now:   pgconv.TimeToPgtype(now),
		Batch: 50,
	}).Return(rows, nil)

	got, err := NewReservationRepository(q, nil).LockDue(context.Background(), now, 50)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, rows[0].ID, got[0].ID())
	assert.Equal(t, 2, got[1].Quantity())
}

func TestReservationRepository_UpdateMissingRow(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	res, err := reservation.NewReservation(inventory.Key{VariantID: uuid.New(), LocationID: uuid.New()}, 1, now, time.Minute)
	require.NoError(t, err)

	q := new(MockReservationWriteQueries)
	q.On("UpdateReservation", mock.Anything, mock.Anything, mock.Anything).Return(int64(0), nil)

	err = NewReservationRepository(q, nil).Update(context.Background(), res)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}
