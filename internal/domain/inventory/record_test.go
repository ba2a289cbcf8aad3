//go:build unit

package inventory_test

import (
	"testing"
	"time"

	"checkout-engine/internal/domain/inventory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newKey() inventory.Key {
	return inventory.Key{VariantID: uuid.New(), LocationID: uuid.New()}
}

func TestRecord(t *testing.T) {
	t.Run("hold reduces availability", func(t *testing.T) {
		r := inventory.ReconstructRecord(newKey(), 10, 0, 1, now)

		require.NoError(t, r.Hold(4, now))
		assert.Equal(t, 4, r.Reserved())
		assert.Equal(t, 6, r.Available())
		assert.Equal(t, 10, r.OnHand())
	})

	t.Run("hold beyond availability fails without change", func(t *testing.T) {
		r := inventory.ReconstructRecord(newKey(), 5, 3, 1, now)

		err := r.Hold(3, now)
		assert.ErrorIs(t, err, inventory.ErrInsufficientStock)
		assert.Equal(t, 3, r.Reserved())
	})

	t.Run("non-positive quantities are rejected", func(t *testing.T) {
		r := inventory.ReconstructRecord(newKey(), 5, 1, 1, now)

		assert.ErrorIs(t, r.Hold(0, now), inventory.ErrInvalidQuantity)
		assert.ErrorIs(t, r.Unhold(-1, now), inventory.ErrInvalidQuantity)
		assert.ErrorIs(t, r.Consume(0, now), inventory.ErrInvalidQuantity)
		assert.ErrorIs(t, r.Receive(0, now), inventory.ErrInvalidQuantity)
		assert.ErrorIs(t, r.Adjust(0, now), inventory.ErrInvalidQuantity)
	})

	t.Run("consume drops on hand and reserved", func(t *testing.T) {
		r := inventory.ReconstructRecord(newKey(), 10, 4, 1, now)

		require.NoError(t, r.Consume(4, now))
		assert.Equal(t, 6, r.OnHand())
		assert.Equal(t, 0, r.Reserved())
	})

	t.Run("unhold never underflows", func(t *testing.T) {
		r := inventory.ReconstructRecord(newKey(), 10, 2, 1, now)

		assert.ErrorIs(t, r.Unhold(3, now), inventory.ErrCounterUnderflow)
		assert.ErrorIs(t, r.Consume(3, now), inventory.ErrCounterUnderflow)
		require.NoError(t, r.Unhold(2, now))
		assert.Equal(t, 10, r.Available())
	})

	t.Run("adjust cannot go below reserved", func(t *testing.T) {
		r := inventory.ReconstructRecord(newKey(), 10, 6, 1, now)

		assert.ErrorIs(t, r.Adjust(-5, now), inventory.ErrBelowReserved)
		require.NoError(t, r.Adjust(-4, now))
		assert.Equal(t, 6, r.OnHand())
		require.NoError(t, r.Adjust(3, now))
		assert.Equal(t, 9, r.OnHand())
	})
}

func TestKey_Compare(t *testing.T) {
	a := inventory.Key{VariantID: uuid.MustParse("00000000-0000-0000-0000-000000000001"), LocationID: uuid.MustParse("00000000-0000-0000-0000-000000000002")}
	b := inventory.Key{VariantID: uuid.MustParse("00000000-0000-0000-0000-000000000001"), LocationID: uuid.MustParse("00000000-0000-0000-0000-000000000003")}
	c := inventory.Key{VariantID: uuid.MustParse("00000000-0000-0000-0000-000000000002"), LocationID: uuid.MustParse("00000000-0000-0000-0000-000000000001")}

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, c.Compare(b))
	assert.Equal(t, 0, a.Compare(a))
}

func TestShipment(t *testing.T) {
	t.Run("partial then full receipt", func(t *testing.T) {
		s, err := inventory.NewShipment(newKey(), " PO-1 ", 10, now)
		require.NoError(t, err)
		assert.Equal(t, "PO-1", s.Reference())
		assert.Equal(t, inventory.ShipmentPending, s.Status())

		require.NoError(t, s.Receive(4, now))
		assert.Equal(t, inventory.ShipmentPartiallyReceived, s.Status())
		assert.Equal(t, 4, s.ReceivedQty())

		require.NoError(t, s.Receive(6, now))
		assert.Equal(t, inventory.ShipmentReceived, s.Status())
	})

	t.Run("over receipt leaves shipment untouched", func(t *testing.T) {
		s, err := inventory.NewShipment(newKey(), "", 5, now)
		require.NoError(t, err)
		require.NoError(t, s.Receive(3, now))

		assert.ErrorIs(t, s.Receive(3, now), inventory.ErrOverReceipt)
		assert.Equal(t, 3, s.ReceivedQty())
		assert.Equal(t, inventory.ShipmentPartiallyReceived, s.Status())
	})

	t.Run("fully received shipment reports over receipt", func(t *testing.T) {
		s, err := inventory.NewShipment(newKey(), "", 2, now)
		require.NoError(t, err)
		require.NoError(t, s.Receive(2, now))

		assert.ErrorIs(t, s.Receive(1, now), inventory.ErrOverReceipt)
	})

	t.Run("cancelled shipment rejects receipts", func(t *testing.T) {
		s, err := inventory.NewShipment(newKey(), "", 2, now)
		require.NoError(t, err)
		require.NoError(t, s.Cancel(now))

		assert.ErrorIs(t, s.Receive(1, now), inventory.ErrInvalidTransition)
		assert.ErrorIs(t, s.Cancel(now), inventory.ErrInvalidTransition)
	})

	t.Run("expected quantity must be positive", func(t *testing.T) {
		_, err := inventory.NewShipment(newKey(), "", 0, now)
		assert.ErrorIs(t, err, inventory.ErrInvalidQuantity)
	})
}
