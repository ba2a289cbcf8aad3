package readstore

import (
	"context"

	"checkout-engine/internal/domain/inventory"
	"checkout-engine/internal/infra"
	"checkout-engine/internal/infra/repository/converter"
	sqlc "checkout-engine/internal/infra/sqlc/generated"
	"checkout-engine/internal/pkg/pgconv"
	"checkout-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type InventoryReadQueries interface {
	GetInventoryRecord(ctx context.Context, db sqlc.DBTX, arg sqlc.GetInventoryRecordParams) (sqlc.InventoryRecord, error)
	ListInventoryRecordsByVariant(ctx context.Context, db sqlc.DBTX, variantID uuid.UUID) ([]sqlc.InventoryRecord, error)
	GetInboundShipment(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.InboundShipment, error)
}

type InventoryReadStore struct {
	queries InventoryReadQueries
	db      sqlc.DBTX
}

func NewInventoryReadStore(queries InventoryReadQueries, db sqlc.DBTX) *InventoryReadStore {
	return &InventoryReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *InventoryReadStore) FindRecord(ctx context.Context, key inventory.Key) (*queries.RecordView, error) {
	row, err := r.queries.GetInventoryRecord(ctx, r.db, sqlc.GetInventoryRecordParams{
		VariantID:  key.VariantID,
		LocationID: key.LocationID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("inventory record not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get inventory record", err)
	}
	v := recordView(row)
	return &v, nil
}

func (r *InventoryReadStore) ListByVariant(ctx context.Context, variantID uuid.UUID) ([]queries.RecordView, error) {
	rows, err := r.queries.ListInventoryRecordsByVariant(ctx, r.db, variantID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list inventory records", err)
	}
	out := make([]queries.RecordView, 0, len(rows))
	for _, row := range rows {
		out = append(out, recordView(row))
	}
	return out, nil
}

func (r *InventoryReadStore) FindShipment(ctx context.Context, id uuid.UUID) (*queries.ShipmentView, error) {
	row, err := r.queries.GetInboundShipment(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("inbound shipment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get inbound shipment", err)
	}
	s, err := converter.ShipmentFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode inbound shipment", err, infra.KindDBFailure)
	}
	return &queries.ShipmentView{
		ShipmentSnapshot: s.Snapshot(),
		CreatedAt:        s.CreatedAt(),
		UpdatedAt:        s.UpdatedAt(),
	}, nil
}

func recordView(row sqlc.InventoryRecord) queries.RecordView {
	rec := converter.RecordFromRow(row)
	return queries.RecordView{
		RecordSnapshot: rec.Snapshot(),
		Version:        rec.Version(),
		UpdatedAt:      rec.UpdatedAt(),
	}
}
