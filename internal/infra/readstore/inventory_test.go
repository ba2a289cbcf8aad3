//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"checkout-engine/internal/domain/inventory"
	"checkout-engine/internal/infra"
	"checkout-engine/internal/infra/readstore"
	sqlc "checkout-engine/internal/infra/sqlc/generated"
	readstoremock "checkout-engine/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func recordRow(variantID uuid.UUID, onHand, reserved int32) sqlc.InventoryRecord {
	return sqlc.InventoryRecord{
		VariantID:  variantID,
		LocationID: uuid.New(),
		OnHand:     onHand,
		Reserved:   reserved,
		Version:    3,
		UpdatedAt:  pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}
}

func TestInventoryReadStore_FindRecord(t *testing.T) {
	ctx := context.Background()
	key := inventory.Key{VariantID: uuid.New(), LocationID: uuid.New()}

	testCases := []struct {
		name       string
		setupMock  func(*readstoremock.MockInventoryReadQueries)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: record found",
			setupMock: func(mock *readstoremock.MockInventoryReadQueries) {
				row := recordRow(key.VariantID, 10, 4)
				row.LocationID = key.LocationID
				mock.EXPECT().GetInventoryRecord(ctx, gomock.Any(), sqlc.GetInventoryRecordParams{
					VariantID:  key.VariantID,
					LocationID: key.LocationID,
				}).Return(row, nil)
			},
		},
		{
			name: "error: record not found",
			setupMock: func(mock *readstoremock.MockInventoryReadQueries) {
				mock.EXPECT().GetInventoryRecord(ctx, gomock.Any(), gomock.Any()).Return(sqlc.InventoryRecord{}, pgx.ErrNoRows)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "error: database error",
			setupMock: func(mock *readstoremock.MockInventoryReadQueries) {
				mock.EXPECT().GetInventoryRecord(ctx, gomock.Any(), gomock.Any()).Return(sqlc.InventoryRecord{}, errDBConnectionLost)
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockInventoryReadQueries(ctrl)
			store := readstore.NewInventoryReadStore(mockQueries, &mockDBTX{})
			tc.setupMock(mockQueries)

			result, err := store.FindRecord(ctx, key)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, err, err)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, 10, result.OnHand)
			assert.Equal(t, 4, result.Reserved)
			assert.Equal(t, 6, result.Available)
			assert.Equal(t, int64(3), result.Version)
		})
	}
}

func TestInventoryReadStore_ListByVariant(t *testing.T) {
	ctx := context.Background()
	variantID := uuid.New()

	t.Run("success: every location is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockInventoryReadQueries(ctrl)
		store := readstore.NewInventoryReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().ListInventoryRecordsByVariant(ctx, gomock.Any(), variantID).Return([]sqlc.InventoryRecord{
			recordRow(variantID, 5, 0),
			recordRow(variantID, 8, 8),
		}, nil)

		views, err := store.ListByVariant(ctx, variantID)
		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, 5, views[0].Available)
		assert.Equal(t, 0, views[1].Available)
	})

	t.Run("success: no rows yields an empty slice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockInventoryReadQueries(ctrl)
		store := readstore.NewInventoryReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().ListInventoryRecordsByVariant(ctx, gomock.Any(), variantID).Return(nil, nil)

		views, err := store.ListByVariant(ctx, variantID)
		require.NoError(t, err)
		assert.NotNil(t, views)
		assert.Empty(t, views)
	})

	t.Run("error: database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockInventoryReadQueries(ctrl)
		store := readstore.NewInventoryReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().ListInventoryRecordsByVariant(ctx, gomock.Any(), variantID).Return(nil, errDBConnectionLost)

		views, err := store.ListByVariant(ctx, variantID)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.Nil(t, views)
	})
}

func TestInventoryReadStore_FindShipment(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}

	testCases := []struct {
		name       string
		row        sqlc.InboundShipment
		queryErr   error
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: shipment found",
			row: sqlc.InboundShipment{
				ID: id, VariantID: uuid.New(), LocationID: uuid.New(),
				Reference: "PO-1", ExpectedQty: 10, ReceivedQty: 4,
				Status: string(inventory.ShipmentPartiallyReceived), CreatedAt: now, UpdatedAt: now,
			},
		},
		{
			name:       "error: unknown status is a decode failure",
			row:        sqlc.InboundShipment{ID: id, Status: "lost"},
			expectKind: infra.KindDBFailure,
		},
		{
			name:       "error: shipment not found",
			queryErr:   pgx.ErrNoRows,
			expectKind: infra.KindNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockInventoryReadQueries(ctrl)
			store := readstore.NewInventoryReadStore(mockQueries, &mockDBTX{})
			mockQueries.EXPECT().GetInboundShipment(ctx, gomock.Any(), id).Return(tc.row, tc.queryErr)

			view, err := store.FindShipment(ctx, id)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, err, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, id, view.ID)
			assert.Equal(t, 4, view.ReceivedQty)
			assert.Equal(t, inventory.ShipmentPartiallyReceived, view.Status)
		})
	}
}
