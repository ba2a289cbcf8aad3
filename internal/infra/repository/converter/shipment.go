package converter

import (
	"fmt"

	"checkout-engine/internal/domain/inventory"
	sqlc "checkout-engine/internal/infra/sqlc/generated"
	"checkout-engine/internal/pkg/pgconv"
)

func ShipmentFromRow(row sqlc.InboundShipment) (*inventory.Shipment, error) {
	status := inventory.ShipmentStatus(row.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("unknown shipment status %q", row.Status)
	}
	return inventory.ReconstructShipment(
		row.ID,
		inventory.Key{VariantID: row.VariantID, LocationID: row.LocationID},
		row.Reference,
		int(row.ExpectedQty),
		int(row.ReceivedQty),
		status,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func ShipmentToCreateParams(s *inventory.Shipment) (sqlc.CreateInboundShipmentParams, error) {
	expected, err := Int32(s.ExpectedQty())
	if err != nil {
		return sqlc.CreateInboundShipmentParams{}, err
	}
	received, err := Int32(s.ReceivedQty())
	if err != nil {
		return sqlc.CreateInboundShipmentParams{}, err
	}
	return sqlc.CreateInboundShipmentParams{
		ID:          s.ID(),
		VariantID:   s.Key().VariantID,
		LocationID:  s.Key().LocationID,
		Reference:   s.Reference(),
		ExpectedQty: expected,
		ReceivedQty: received,
		Status:      s.Status().String(),
		CreatedAt:   pgconv.TimeToPgtype(s.CreatedAt()),
		UpdatedAt:   pgconv.TimeToPgtype(s.UpdatedAt()),
	}, nil
}

func ShipmentToUpdateParams(s *inventory.Shipment) (sqlc.UpdateInboundShipmentParams, error) {
	received, err := Int32(s.ReceivedQty())
	if err != nil {
		return sqlc.UpdateInboundShipmentParams{}, err
	}
	return sqlc.UpdateInboundShipmentParams{
		ID:          s.ID(),
		ReceivedQty: received,
		Status:      s.Status().String(),
		UpdatedAt:   pgconv.TimeToPgtype(s.UpdatedAt()),
	}, nil
}
