package response

import (
	"time"

	"checkout-engine/internal/domain/reservation"
	"checkout-engine/internal/usecase/commands"
	"checkout-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID             uuid.UUID            `json:"id"`
	VariantID      uuid.UUID            `json:"variant_id"`
	LocationID     uuid.UUID            `json:"location_id"`
	Quantity       int                  `json:"quantity"`
	Status         string               `json:"status"`
	ExpiresAt      time.Time            `json:"expires_at"`
	Pricing        *reservation.Pricing `json:"pricing,omitempty"`
	OrderReference *string              `json:"order_reference,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

type PricedReservationResponse struct {
	Reservation *ReservationResponse `json:"reservation"`
	Quote       *QuoteResponse       `json:"quote"`
}

type ExpireResponse struct {
	Expired int `json:"expired"`
}

func fromSnapshot(s reservation.Snapshot, createdAt, updatedAt time.Time) *ReservationResponse {
	resp := &ReservationResponse{
		ID:         s.ID,
		VariantID:  s.VariantID,
		LocationID: s.LocationID,
		Quantity:   s.Quantity,
		Status:     s.Status.String(),
		ExpiresAt:  s.ExpiresAt,
		Pricing:    s.Pricing,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}
	if s.OrderReference != nil {
		ref := s.OrderReference.String()
		resp.OrderReference = &ref
	}
	return resp
}

func FromReservation(r *reservation.Reservation) *ReservationResponse {
	return fromSnapshot(r.Snapshot(), r.CreatedAt(), r.UpdatedAt())
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return fromSnapshot(v.Snapshot, v.CreatedAt, v.UpdatedAt)
}

func FromPricedReservation(p *commands.PricedReservation) *PricedReservationResponse {
	q := p.Quote
	return &PricedReservationResponse{
		Reservation: FromReservation(p.Reservation),
		Quote:       FromQuote(&q),
	}
}
