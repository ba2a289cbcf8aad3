package reservation

import (
	"errors"
	"fmt"
	"time"

	"checkout-engine/internal/domain/inventory"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound = errors.New("reservation not found")
	ErrInvalidHoldTTL      = errors.New("hold ttl must be positive")
	ErrAlreadyPriced       = errors.New("reservation price is already frozen")
	ErrHoldExpired         = fmt.Errorf("reservation hold has expired: %w", inventory.ErrInvalidTransition)
	ErrNotDue              = errors.New("reservation is not due for expiry")
)

type Reservation struct {
	id             uuid.UUID
	key            inventory.Key
	quantity       int
	status         Status
	pricing        *Pricing
	orderReference *OrderReference
	createdAt      time.Time
	expiresAt      time.Time
	updatedAt      time.Time
}

func NewReservation(key inventory.Key, quantity int, now time.Time, holdTTL time.Duration) (*Reservation, error) {
	if quantity <= 0 {
		return nil, inventory.ErrInvalidQuantity
	}
	if holdTTL <= 0 {
		return nil, ErrInvalidHoldTTL
	}
	return &Reservation{
		id:        uuid.New(),
		key:       key,
		quantity:  quantity,
		status:    StatusHeld,
		createdAt: now,
		expiresAt: now.Add(holdTTL),
		updatedAt: now,
	}, nil
}

func ReconstructReservation(
	id uuid.UUID,
	key inventory.Key,
	quantity int,
	status Status,
	pricing *Pricing,
	orderReference *OrderReference,
	createdAt, expiresAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:             id,
		key:            key,
		quantity:       quantity,
		status:         status,
		pricing:        pricing,
		orderReference: orderReference,
		createdAt:      createdAt,
		expiresAt:      expiresAt,
		updatedAt:      updatedAt,
	}
}

// IsDue reports whether the hold has lapsed at now.
func (r *Reservation) IsDue(now time.Time) bool {
	return r.status == StatusHeld && !now.Before(r.expiresAt)
}

// Commit finalizes a live hold. A hold whose expiry has passed cannot be
// committed even if the sweep has not reached it yet.
func (r *Reservation) Commit(ref OrderReference, now time.Time) error {
	if r.status != StatusHeld {
		return inventory.ErrInvalidTransition
	}
	if !now.Before(r.expiresAt) {
		return ErrHoldExpired
	}
	r.status = StatusCommitted
	r.orderReference = &ref
	r.updatedAt = now
	return nil
}

func (r *Reservation) Release(now time.Time) (ReleaseEffect, error) {
	switch r.status {
	case StatusHeld:
		r.status = StatusReleased
		r.updatedAt = now
		return ReleaseReturnsStock, nil
	case StatusExpired:
		r.status = StatusReleased
		r.updatedAt = now
		return ReleaseBookkeeping, nil
	case StatusReleased:
		return ReleaseNoop, nil
	default:
		return ReleaseNoop, inventory.ErrInvalidTransition
	}
}

func (r *Reservation) Expire(now time.Time) error {
	if r.status != StatusHeld {
		return inventory.ErrInvalidTransition
	}
	if now.Before(r.expiresAt) {
		return ErrNotDue
	}
	r.status = StatusExpired
	r.updatedAt = now
	return nil
}

// FreezePrice sets the price exactly once, while the hold is live.
func (r *Reservation) FreezePrice(p Pricing, now time.Time) error {
	if r.pricing != nil {
		return ErrAlreadyPriced
	}
	if r.status != StatusHeld {
		return inventory.ErrInvalidTransition
	}
	if err := p.Validate(); err != nil {
		return err
	}
	frozen := p.clone()
	r.pricing = &frozen
	r.updatedAt = now
	return nil
}

func (r *Reservation) IsPriced() bool {
	return r.pricing != nil
}

type Snapshot struct {
	ID             uuid.UUID       `json:"id"`
	VariantID      uuid.UUID       `json:"variant_id"`
	LocationID     uuid.UUID       `json:"location_id"`
	Quantity       int             `json:"quantity"`
	Status         Status          `json:"status"`
	ExpiresAt      time.Time       `json:"expires_at"`
	Pricing        *Pricing        `json:"pricing,omitempty"`
	OrderReference *OrderReference `json:"order_reference,omitempty"`
}

func (r *Reservation) Snapshot() Snapshot {
	return Snapshot{
		ID:             r.id,
		VariantID:      r.key.VariantID,
		LocationID:     r.key.LocationID,
		Quantity:       r.quantity,
		Status:         r.status,
		ExpiresAt:      r.expiresAt,
		Pricing:        r.Pricing(),
		OrderReference: r.orderReference,
	}
}

func (r *Reservation) Clone() *Reservation {
	c := *r
	c.pricing = r.Pricing()
	if r.orderReference != nil {
		ref := *r.orderReference
		c.orderReference = &ref
	}
	return &c
}

func (r *Reservation) ID() uuid.UUID                   { return r.id }
func (r *Reservation) Key() inventory.Key              { return r.key }
func (r *Reservation) Quantity() int                   { return r.quantity }
func (r *Reservation) Status() Status                  { return r.status }
func (r *Reservation) OrderReference() *OrderReference { return r.orderReference }
func (r *Reservation) CreatedAt() time.Time            { return r.createdAt }
func (r *Reservation) ExpiresAt() time.Time            { return r.expiresAt }
func (r *Reservation) UpdatedAt() time.Time            { return r.updatedAt }

func (r *Reservation) Pricing() *Pricing {
	if r.pricing == nil {
		return nil
	}
	p := r.pricing.clone()
	return &p
}
