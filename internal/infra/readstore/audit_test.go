//go:build unit

package readstore_test

import (
	"context"
	"math"
	"testing"
	"time"

	"checkout-engine/internal/domain/audit"
	"checkout-engine/internal/infra"
	"checkout-engine/internal/infra/readstore"
	sqlc "checkout-engine/internal/infra/sqlc/generated"
	readstoremock "checkout-engine/tests/mock/readstore"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuditReadStore_List(t *testing.T) {
	ctx := context.Background()
	occurred := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("success: filter is passed through and rows are converted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockAuditReadQueries(ctrl)
		store := readstore.NewAuditReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().ListAuditEntries(ctx, gomock.Any(), sqlc.ListAuditEntriesParams{
			AfterSeq:   10,
			EntityType: string(audit.EntityReservation),
			EntityID:   "r-1",
			RowLimit:   51,
		}).Return([]sqlc.AuditEntry{
			{
				Seq:        11,
				OccurredAt: pgtype.Timestamptz{Time: occurred, Valid: true},
				Actor:      "ops",
				EntityType: string(audit.EntityReservation),
				EntityID:   "r-1",
				After:      []byte(`{"status":"held"}`),
				Reason:     string(audit.ReasonReservationHeld),
				Note:       pgtype.Text{String: "checkout", Valid: true},
			},
		}, nil)

		entries, err := store.List(ctx, audit.Filter{
			EntityType: audit.EntityReservation,
			EntityID:   "r-1",
			AfterSeq:   10,
			Limit:      51,
		})
		require.NoError(t, err)

		want := []audit.Entry{{
			Seq:        11,
			OccurredAt: occurred,
			Actor:      "ops",
			EntityType: audit.EntityReservation,
			EntityID:   "r-1",
			After:      []byte(`{"status":"held"}`),
			Reason:     audit.ReasonReservationHeld,
			Note:       "checkout",
		}}
		if diff := cmp.Diff(want, entries); diff != "" {
			t.Errorf("entries mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("error: page size beyond column range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockAuditReadQueries(ctrl)
		store := readstore.NewAuditReadStore(mockQueries, &mockDBTX{})

		_, err := store.List(ctx, audit.Filter{Limit: math.MaxInt32 + 1})
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindConstraintViolated))
	})

	t.Run("error: database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockAuditReadQueries(ctrl)
		store := readstore.NewAuditReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().ListAuditEntries(ctx, gomock.Any(), gomock.Any()).Return(nil, errDBConnectionLost)

		entries, err := store.List(ctx, audit.Filter{Limit: 10})
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.Nil(t, entries)
	})
}
