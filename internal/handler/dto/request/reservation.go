package request

import (
	"time"

	"github.com/google/uuid"
)

// Reservation requests carry no instant: holds, commits, releases and sweeps
// run on the server clock.
type CheckoutLineRequest struct {
	VariantID  uuid.UUID `json:"variant_id" binding:"required"`
	LocationID uuid.UUID `json:"location_id" binding:"required"`
	Quantity   int       `json:"quantity" binding:"required,gt=0"`
}

type CommitReservationRequest struct {
	OrderReference string `json:"order_reference" binding:"required,max=128"`
}

// AtOrZero unwraps an optional inbound/adjustment instant; zero lets the
// usecase use its clock.
func AtOrZero(at *time.Time) time.Time {
	if at == nil {
		return time.Time{}
	}
	return *at
}
