//go:build unit || e2e

package builder

import (
	"time"

	"checkout-engine/internal/domain/inventory"
	"checkout-engine/internal/domain/pricing"
	"checkout-engine/internal/domain/reservation"
	reqdto "checkout-engine/internal/handler/dto/request"
	"checkout-engine/internal/usecase/commands"
	"checkout-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	VariantID  uuid.UUID
	LocationID uuid.UUID
	Quantity   int
	Now        time.Time
	HoldTTL    time.Duration
	UnitAmount int64
	Currency   string
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		VariantID:  uuid.New(),
		LocationID: uuid.New(),
		Quantity:   2,
		Now:        Epoch,
		HoldTTL:    15 * time.Minute,
		UnitAmount: 9000,
		Currency:   "USD",
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) Key() inventory.Key {
	return inventory.Key{VariantID: b.VariantID, LocationID: b.LocationID}
}

func (b *ReservationBuilder) BuildDomain() *reservation.Reservation {
	r, err := reservation.NewReservation(b.Key(), b.Quantity, b.Now, b.HoldTTL)
	if err != nil {
		panic(err)
	}
	return r
}

// BuildPricedDomain returns a held reservation with its quote frozen.
func (b *ReservationBuilder) BuildPricedDomain() *reservation.Reservation {
	r := b.BuildDomain()
	if err := r.FreezePrice(reservation.Pricing{
		UnitAmount:      b.UnitAmount,
		Currency:        b.Currency,
		PriceBookID:     uuid.New(),
		AppliedRules:    []reservation.AppliedRule{},
		SnapshotVersion: 1,
		PricedAt:        b.Now,
	}, b.Now); err != nil {
		panic(err)
	}
	return r
}

func (b *ReservationBuilder) BuildQuote() pricing.Quote {
	return pricing.Quote{
		VariantID:       b.VariantID,
		At:              b.Now,
		Quantity:        b.Quantity,
		Currency:        b.Currency,
		PriceBookID:     uuid.New(),
		BaseUnitAmount:  b.UnitAmount,
		UnitAmount:      b.UnitAmount,
		ExtendedAmount:  b.UnitAmount * int64(b.Quantity),
		AppliedRules:    []pricing.AppliedRule{},
		SnapshotVersion: 1,
	}
}

func (b *ReservationBuilder) BuildPriced() *commands.PricedReservation {
	return &commands.PricedReservation{
		Reservation: b.BuildPricedDomain(),
		Quote:       b.BuildQuote(),
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	r := b.BuildPricedDomain()
	return &queries.ReservationView{
		Snapshot:  r.Snapshot(),
		CreatedAt: r.CreatedAt(),
		UpdatedAt: r.UpdatedAt(),
	}
}

func (b *ReservationBuilder) BuildCheckoutRequestDTO() reqdto.CheckoutLineRequest {
	return reqdto.CheckoutLineRequest{
		VariantID:  b.VariantID,
		LocationID: b.LocationID,
		Quantity:   b.Quantity,
	}
}
