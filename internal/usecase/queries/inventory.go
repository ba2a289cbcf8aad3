package queries

import (
	"context"

	"checkout-engine/internal/domain/inventory"
	"checkout-engine/internal/infra"
	"checkout-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type InventoryReadStore interface {
	FindRecord(ctx context.Context, key inventory.Key) (*RecordView, error)
	// ListByVariant returns every location's record ordered by location id.
	ListByVariant(ctx context.Context, variantID uuid.UUID) ([]RecordView, error)
	FindShipment(ctx context.Context, id uuid.UUID) (*ShipmentView, error)
}

type InventoryQueries interface {
	Snapshot(ctx context.Context, key inventory.Key) (*RecordView, error)
	Availability(ctx context.Context, variantID uuid.UUID) (*AvailabilityView, error)
	Shipment(ctx context.Context, id uuid.UUID) (*ShipmentView, error)
}

type inventoryQueriesImpl struct {
	store InventoryReadStore
}

func NewInventoryQueries(store InventoryReadStore) InventoryQueries {
	return &inventoryQueriesImpl{store: store}
}

// Snapshot reports a zero record for a key that was never stocked.
func (q *inventoryQueriesImpl) Snapshot(ctx context.Context, key inventory.Key) (*RecordView, error) {
	v, err := q.store.FindRecord(ctx, key)
	if err == nil {
		return v, nil
	}
	if infra.IsKind(err, infra.KindNotFound) {
		return &RecordView{RecordSnapshot: inventory.RecordSnapshot{
			VariantID:  key.VariantID,
			LocationID: key.LocationID,
		}}, nil
	}
	return nil, shared.Classify(err)
}

func (q *inventoryQueriesImpl) Availability(ctx context.Context, variantID uuid.UUID) (*AvailabilityView, error) {
	rows, err := q.store.ListByVariant(ctx, variantID)
	if err != nil {
		return nil, shared.Classify(err)
	}
	view := &AvailabilityView{VariantID: variantID, Locations: rows}
	if view.Locations == nil {
		view.Locations = []RecordView{}
	}
	for _, r := range rows {
		view.OnHand += r.OnHand
		view.Reserved += r.Reserved
		view.Available += r.Available
	}
	return view, nil
}

func (q *inventoryQueriesImpl) Shipment(ctx context.Context, id uuid.UUID) (*ShipmentView, error) {
	v, err := q.store.FindShipment(ctx, id)
	if err != nil {
		return nil, shared.Classify(shared.NotFoundAs(err, inventory.ErrShipmentNotFound))
	}
	return v, nil
}
