package converter

import (
	"encoding/json"
	"fmt"

	"checkout-engine/internal/domain/inventory"
	"checkout-engine/internal/domain/reservation"
	sqlc "checkout-engine/internal/infra/sqlc/generated"
	"checkout-engine/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func ReservationFromRow(row sqlc.Reservation) (*reservation.Reservation, error) {
	status := reservation.Status(row.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("unknown reservation status %q", row.Status)
	}

	var pricing *reservation.Pricing
	if len(row.Pricing) > 0 {
		var p reservation.Pricing
		if err := json.Unmarshal(row.Pricing, &p); err != nil {
			return nil, fmt.Errorf("decode reservation pricing: %w", err)
		}
		pricing = &p
	}

	var ref *reservation.OrderReference
	if row.OrderReference.Valid {
		r := reservation.OrderReference(row.OrderReference.String)
		ref = &r
	}

	return reservation.ReconstructReservation(
		row.ID,
		inventory.Key{VariantID: row.VariantID, LocationID: row.LocationID},
		int(row.Quantity),
		status,
		pricing,
		ref,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.ExpiresAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func ReservationToCreateParams(res *reservation.Reservation) (sqlc.CreateReservationParams, error) {
	qty, err := Int32(res.Quantity())
	if err != nil {
		return sqlc.CreateReservationParams{}, err
	}
	pricing, err := encodePricing(res)
	if err != nil {
		return sqlc.CreateReservationParams{}, err
	}
	return sqlc.CreateReservationParams{
		ID:             res.ID(),
		VariantID:      res.Key().VariantID,
		LocationID:     res.Key().LocationID,
		Quantity:       qty,
		Status:         res.Status().String(),
		Pricing:        pricing,
		OrderReference: orderReferenceToPgtype(res.OrderReference()),
		CreatedAt:      pgconv.TimeToPgtype(res.CreatedAt()),
		ExpiresAt:      pgconv.TimeToPgtype(res.ExpiresAt()),
		UpdatedAt:      pgconv.TimeToPgtype(res.UpdatedAt()),
	}, nil
}

func ReservationToUpdateParams(res *reservation.Reservation) (sqlc.UpdateReservationParams, error) {
	pricing, err := encodePricing(res)
	if err != nil {
		return sqlc.UpdateReservationParams{}, err
	}
	return sqlc.UpdateReservationParams{
		ID:             res.ID(),
		Status:         res.Status().String(),
		Pricing:        pricing,
		OrderReference: orderReferenceToPgtype(res.OrderReference()),
		UpdatedAt:      pgconv.TimeToPgtype(res.UpdatedAt()),
	}, nil
}

func encodePricing(res *reservation.Reservation) ([]byte, error) {
	p := res.Pricing()
	if p == nil {
		return nil, nil
	}
	b, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encode reservation pricing: %w", err)
	}
	return b, nil
}

func orderReferenceToPgtype(ref *reservation.OrderReference) pgtype.Text {
	if ref == nil {
		return pgtype.Text{Valid: false}
	}
	return pgconv.StringToPgtype(ref.String())
}
