//go:build unit

package queries_test

import (
	"context"
	"testing"

	"checkout-engine/internal/domain/audit"
	"checkout-engine/internal/pkg/errs"
	"checkout-engine/internal/usecase/queries"
	queriesmock "checkout-engine/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func entries(from, to int64) []audit.Entry {
	out := make([]audit.Entry, 0, to-from+1)
	for seq := from; seq <= to; seq++ {
		out = append(out, audit.Entry{Seq: seq, EntityType: audit.EntityReservation, EntityID: "r-1", Reason: audit.ReasonReservationHeld})
	}
	return out
}

func TestAuditList_PagesBySequence(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockAuditReadStore(ctrl)
	q := queries.NewAuditQueries(store)

	// one row beyond the limit signals another page
	store.EXPECT().List(gomock.Any(), audit.Filter{EntityType: audit.EntityReservation, Limit: 3}).Return(entries(1, 3), nil)
	page, err := q.List(ctx, queries.AuditQuery{EntityType: audit.EntityReservation, Limit: 2})
	require.NoError(t, err)
	require.Len(t, page.Entries, 2)
	require.NotNil(t, page.Next)

	seq, err := queries.DecodeSeqCursor(page.Next.After)
	require.NoError(t, err)
	assert.Equal(t, int64(2), seq)

	store.EXPECT().List(gomock.Any(), audit.Filter{EntityType: audit.EntityReservation, AfterSeq: 2, Limit: 3}).Return(entries(3, 3), nil)
	page, err = q.List(ctx, queries.AuditQuery{EntityType: audit.EntityReservation, Limit: 2, Cursor: page.Next})
	require.NoError(t, err)
	require.Len(t, page.Entries, 1)
	assert.Equal(t, int64(3), page.Entries[0].Seq)
	assert.Nil(t, page.Next)
}

func TestAuditList_DefaultsAndBounds(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockAuditReadStore(ctrl)
	q := queries.NewAuditQueries(store)

	store.EXPECT().List(gomock.Any(), audit.Filter{Limit: queries.DefaultListLimit + 1}).Return(nil, nil)
	page, err := q.List(ctx, queries.AuditQuery{})
	require.NoError(t, err)
	assert.NotNil(t, page.Entries)
	assert.Empty(t, page.Entries)

	store.EXPECT().List(gomock.Any(), audit.Filter{Limit: queries.MaxListLimit + 1}).Return(nil, nil)
	_, err = q.List(ctx, queries.AuditQuery{Limit: 50_000})
	require.NoError(t, err)
}

func TestAuditList_RejectsBadCursor(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := queries.NewAuditQueries(queriesmock.NewMockAuditReadStore(ctrl))

	_, err := q.List(context.Background(), queries.AuditQuery{Cursor: &queries.Cursor{After: "bogus"}})
	require.ErrorIs(t, err, queries.ErrInvalidCursor)
	assert.Equal(t, errs.ErrValidation, errs.Category(err))
}

func TestSeqCursor_RoundTripAndBareNumbers(t *testing.T) {
	seq, err := queries.DecodeSeqCursor(queries.EncodeSeqCursor(42))
	require.NoError(t, err)
	assert.Equal(t, int64(42), seq)

	seq, err = queries.DecodeSeqCursor("17")
	require.NoError(t, err)
	assert.Equal(t, int64(17), seq)

	_, err = queries.DecodeSeqCursor("-1")
	require.Error(t, err)
}
