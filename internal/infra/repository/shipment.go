package repository

import (
	"context"

	"checkout-engine/internal/domain/inventory"
	"checkout-engine/internal/infra"
	"checkout-engine/internal/infra/repository/converter"
	sqlc "checkout-engine/internal/infra/sqlc/generated"
	"checkout-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ShipmentWriteQueries interface {
	CreateInboundShipment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateInboundShipmentParams) error
	GetInboundShipmentForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.InboundShipment, error)
	UpdateInboundShipment(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateInboundShipmentParams) (int64, error)
}

type ShipmentRepository struct {
	queries ShipmentWriteQueries
	db      sqlc.DBTX
}

func NewShipmentRepository(queries ShipmentWriteQueries, db sqlc.DBTX) *ShipmentRepository {
	return &ShipmentRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ShipmentRepository) Create(ctx context.Context, s *inventory.Shipment) error {
	params, err := converter.ShipmentToCreateParams(s)
	if err != nil {
		return infra.WrapRepoErr("failed to encode inbound shipment", err, infra.KindConstraintViolated)
	}
	if err := r.queries.CreateInboundShipment(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to create inbound shipment", err)
	}
	return nil
}

func (r *ShipmentRepository) Lock(ctx context.Context, id uuid.UUID) (*inventory.Shipment, error) {
	row, err := r.queries.GetInboundShipmentForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("inbound shipment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock inbound shipment", err)
	}
	s, err := converter.ShipmentFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode inbound shipment", err, infra.KindDBFailure)
	}
	return s, nil
}

func (r *ShipmentRepository) Update(ctx context.Context, s *inventory.Shipment) error {
	params, err := converter.ShipmentToUpdateParams(s)
	if err != nil {
		return infra.WrapRepoErr("failed to encode inbound shipment", err, infra.KindConstraintViolated)
	}
	n, err := r.queries.UpdateInboundShipment(ctx, r.db, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update inbound shipment", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("inbound shipment not found", nil, infra.KindNotFound)
	}
	return nil
}
