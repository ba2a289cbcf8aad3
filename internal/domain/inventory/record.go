package inventory

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrOverReceipt       = errors.New("received quantity exceeds expected quantity")
	ErrInvalidTransition = errors.New("invalid state transition")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrBelowReserved     = errors.New("on hand cannot drop below reserved")
	ErrRecordNotFound    = errors.New("inventory record not found")
	ErrShipmentNotFound  = errors.New("inbound shipment not found")
	ErrCounterUnderflow  = errors.New("reserved counter would go negative")
)

type Key struct {
	VariantID  uuid.UUID
	LocationID uuid.UUID
}

func (k Key) String() string {
	return fmt.Sprintf("%s:%s", k.VariantID, k.LocationID)
}

// Compare orders keys so multi-row lockers acquire rows in one global order.
func (k Key) Compare(o Key) int {
	if c := compareUUID(k.VariantID, o.VariantID); c != 0 {
		return c
	}
	return compareUUID(k.LocationID, o.LocationID)
}

func compareUUID(a, b uuid.UUID) int {
	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Record tracks stock for one variant at one location.
// Invariant: 0 <= reserved <= onHand.
type Record struct {
	key       Key
	onHand    int
	reserved  int
	version   int64
	updatedAt time.Time
}

func NewRecord(key Key, now time.Time) *Record {
	return &Record{key: key, updatedAt: now}
}

func ReconstructRecord(key Key, onHand, reserved int, version int64, updatedAt time.Time) *Record {
	return &Record{
		key:       key,
		onHand:    onHand,
		reserved:  reserved,
		version:   version,
		updatedAt: updatedAt,
	}
}

func (r *Record) Available() int {
	return r.onHand - r.reserved
}

func (r *Record) Hold(qty int, now time.Time) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	if qty > r.Available() {
		return ErrInsufficientStock
	}
	r.reserved += qty
	r.updatedAt = now
	return nil
}

// Unhold returns held stock to the pool.
func (r *Record) Unhold(qty int, now time.Time) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	if qty > r.reserved {
		return ErrCounterUnderflow
	}
	r.reserved -= qty
	r.updatedAt = now
	return nil
}

// Consume turns a hold into a sale: both counters drop.
func (r *Record) Consume(qty int, now time.Time) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	if qty > r.reserved {
		return ErrCounterUnderflow
	}
	r.reserved -= qty
	r.onHand -= qty
	r.updatedAt = now
	return nil
}

func (r *Record) Receive(qty int, now time.Time) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	r.onHand += qty
	r.updatedAt = now
	return nil
}

// Adjust applies a manual correction to on hand.
func (r *Record) Adjust(delta int, now time.Time) error {
	if delta == 0 {
		return ErrInvalidQuantity
	}
	if r.onHand+delta < r.reserved {
		return ErrBelowReserved
	}
	r.onHand += delta
	r.updatedAt = now
	return nil
}

type RecordSnapshot struct {
	VariantID  uuid.UUID `json:"variant_id"`
	LocationID uuid.UUID `json:"location_id"`
	OnHand     int       `json:"on_hand"`
	Reserved   int       `json:"reserved"`
	Available  int       `json:"available"`
}

func (r *Record) Snapshot() RecordSnapshot {
	return RecordSnapshot{
		VariantID:  r.key.VariantID,
		LocationID: r.key.LocationID,
		OnHand:     r.onHand,
		Reserved:   r.reserved,
		Available:  r.Available(),
	}
}

func (r *Record) Clone() *Record {
	c := *r
	return &c
}

func (r *Record) Key() Key             { return r.key }
func (r *Record) OnHand() int          { return r.onHand }
func (r *Record) Reserved() int        { return r.reserved }
func (r *Record) Version() int64       { return r.version }
func (r *Record) UpdatedAt() time.Time { return r.updatedAt }
