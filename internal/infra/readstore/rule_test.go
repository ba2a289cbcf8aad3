//go:build unit

package readstore_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"checkout-engine/internal/domain/pricing"
	"checkout-engine/internal/infra"
	"checkout-engine/internal/infra/readstore"
	sqlc "checkout-engine/internal/infra/sqlc/generated"
	"checkout-engine/tests/common/builder"
	readstoremock "checkout-engine/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func ruleRow(t *testing.T, version int64, doc pricing.Document) sqlc.ListActivePriceRulesRow {
	t.Helper()
	body, err := json.Marshal(doc)
	require.NoError(t, err)
	return sqlc.ListActivePriceRulesRow{
		StoreVersion: version,
		ID:           pgtype.UUID{Bytes: doc.ID, Valid: true},
		Kind:         pgtype.Text{String: string(doc.Kind), Valid: true},
		Body:         body,
	}
}

func TestRuleSnapshotReadStore_LoadActiveSnapshot(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	variantID := uuid.New()

	book := builder.NewPriceBookBuilder(variantID, 1999).Document()
	campaign := builder.NewCampaignBuilder().Document()

	testCases := []struct {
		name            string
		rows            func(t *testing.T) []sqlc.ListActivePriceRulesRow
		queryErr        error
		expectedVersion int64
		expectedRules   int
		expectKind      infra.RepositoryErrorKind
	}{
		{
			name: "success: version and rules come from the same rows",
			rows: func(t *testing.T) []sqlc.ListActivePriceRulesRow {
				return []sqlc.ListActivePriceRulesRow{ruleRow(t, 7, book), ruleRow(t, 7, campaign)}
			},
			expectedVersion: 7,
			expectedRules:   2,
		},
		{
			name: "success: nothing active still carries the version",
			rows: func(t *testing.T) []sqlc.ListActivePriceRulesRow {
				return []sqlc.ListActivePriceRulesRow{{StoreVersion: 3}}
			},
			expectedVersion: 3,
			expectedRules:   0,
		},
		{
			name: "error: kind column disagrees with body",
			rows: func(t *testing.T) []sqlc.ListActivePriceRulesRow {
				row := ruleRow(t, 1, book)
				row.Kind = pgtype.Text{String: string(pricing.KindCampaign), Valid: true}
				return []sqlc.ListActivePriceRulesRow{row}
			},
			expectKind: infra.KindDBFailure,
		},
		{
			name: "error: database error",
			rows: func(t *testing.T) []sqlc.ListActivePriceRulesRow {
				return nil
			},
			queryErr:   errDBConnectionLost,
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockRuleReadQueries(ctrl)
			store := readstore.NewRuleSnapshotReadStore(mockQueries, &mockDBTX{})

			mockQueries.EXPECT().
				ListActivePriceRules(ctx, gomock.Any(), pgtype.Timestamptz{Time: at, Valid: true}).
				Return(tc.rows(t), tc.queryErr)

			snap, err := store.LoadActiveSnapshot(ctx, at)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, err, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedVersion, snap.Version)
			assert.Len(t, snap.Rules, tc.expectedRules)
		})
	}
}

func TestRuleSnapshotReadStore_StableInterval(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	from := at.Add(-time.Hour)
	until := at.Add(3 * time.Hour)

	t.Run("bounded on both sides", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockRuleReadQueries(ctrl)
		store := readstore.NewRuleSnapshotReadStore(mockQueries, &mockDBTX{})

		row := ruleRow(t, 4, builder.NewCampaignBuilder().Document())
		row.StableFrom = pgtype.Timestamptz{Time: from, Valid: true}
		row.StableUntil = pgtype.Timestamptz{Time: until, Valid: true}
		mockQueries.EXPECT().ListActivePriceRules(ctx, gomock.Any(), gomock.Any()).Return([]sqlc.ListActivePriceRulesRow{row}, nil)

		snap, err := store.LoadActiveSnapshot(ctx, at)
		require.NoError(t, err)
		assert.Equal(t, from, snap.StableFrom)
		require.NotNil(t, snap.StableUntil)
		assert.Equal(t, until, *snap.StableUntil)
		assert.True(t, snap.Covers(at))
		assert.False(t, snap.Covers(until))
	})

	t.Run("null bounds are open", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockRuleReadQueries(ctrl)
		store := readstore.NewRuleSnapshotReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().ListActivePriceRules(ctx, gomock.Any(), gomock.Any()).
			Return([]sqlc.ListActivePriceRulesRow{{StoreVersion: 1}}, nil)

		snap, err := store.LoadActiveSnapshot(ctx, at)
		require.NoError(t, err)
		assert.True(t, snap.StableFrom.IsZero())
		assert.Nil(t, snap.StableUntil)
		assert.True(t, snap.Covers(at.AddDate(-10, 0, 0)))
	})
}

func TestRuleSnapshotReadStore_CurrentVersion(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockRuleReadQueries(ctrl)
		store := readstore.NewRuleSnapshotReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().GetRuleStoreVersion(ctx, gomock.Any()).Return(int64(42), nil)

		v, err := store.CurrentVersion(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(42), v)
	})

	t.Run("error: database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockRuleReadQueries(ctrl)
		store := readstore.NewRuleSnapshotReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().GetRuleStoreVersion(ctx, gomock.Any()).Return(int64(0), errDBConnectionLost)

		_, err := store.CurrentVersion(ctx)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
