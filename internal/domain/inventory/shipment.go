package inventory

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type ShipmentStatus string

const (
	ShipmentPending           ShipmentStatus = "pending"
	ShipmentPartiallyReceived ShipmentStatus = "partially_received"
	ShipmentReceived          ShipmentStatus = "received"
	ShipmentCancelled         ShipmentStatus = "cancelled"
)

func (s ShipmentStatus) String() string {
	return string(s)
}

func (s ShipmentStatus) IsValid() bool {
	switch s {
	case ShipmentPending, ShipmentPartiallyReceived, ShipmentReceived, ShipmentCancelled:
		return true
	default:
		return false
	}
}

type Shipment struct {
	id          uuid.UUID
	key         Key
	reference   string
	expectedQty int
	receivedQty int
	status      ShipmentStatus
	createdAt   time.Time
	updatedAt   time.Time
}

func NewShipment(key Key, reference string, expectedQty int, now time.Time) (*Shipment, error) {
	if expectedQty <= 0 {
		return nil, ErrInvalidQuantity
	}
	return &Shipment{
		id:          uuid.New(),
		key:         key,
		reference:   strings.TrimSpace(reference),
		expectedQty: expectedQty,
		status:      ShipmentPending,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructShipment(
	id uuid.UUID,
	key Key,
	reference string,
	expectedQty, receivedQty int,
	status ShipmentStatus,
	createdAt, updatedAt time.Time,
) *Shipment {
	return &Shipment{
		id:          id,
		key:         key,
		reference:   reference,
		expectedQty: expectedQty,
		receivedQty: receivedQty,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Receive records a (partial) delivery. A receipt that would push the
// cumulative quantity past expected is rejected without any change.
func (s *Shipment) Receive(qty int, now time.Time) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	switch s.status {
	case ShipmentCancelled:
		return ErrInvalidTransition
	case ShipmentReceived:
		return ErrOverReceipt
	}
	if s.receivedQty+qty > s.expectedQty {
		return ErrOverReceipt
	}
	s.receivedQty += qty
	if s.receivedQty == s.expectedQty {
		s.status = ShipmentReceived
	} else {
		s.status = ShipmentPartiallyReceived
	}
	s.updatedAt = now
	return nil
}

func (s *Shipment) Cancel(now time.Time) error {
	switch s.status {
	case ShipmentPending, ShipmentPartiallyReceived:
		s.status = ShipmentCancelled
		s.updatedAt = now
		return nil
	default:
		return ErrInvalidTransition
	}
}

type ShipmentSnapshot struct {
	ID          uuid.UUID      `json:"id"`
	VariantID   uuid.UUID      `json:"variant_id"`
	LocationID  uuid.UUID      `json:"location_id"`
	Reference   string         `json:"reference,omitempty"`
	ExpectedQty int            `json:"expected_qty"`
	ReceivedQty int            `json:"received_qty"`
	Status      ShipmentStatus `json:"status"`
}

func (s *Shipment) Snapshot() ShipmentSnapshot {
	return ShipmentSnapshot{
		ID:          s.id,
		VariantID:   s.key.VariantID,
		LocationID:  s.key.LocationID,
		Reference:   s.reference,
		ExpectedQty: s.expectedQty,
		ReceivedQty: s.receivedQty,
		Status:      s.status,
	}
}

func (s *Shipment) Clone() *Shipment {
	c := *s
	return &c
}

func (s *Shipment) ID() uuid.UUID          { return s.id }
func (s *Shipment) Key() Key               { return s.key }
func (s *Shipment) Reference() string      { return s.reference }
func (s *Shipment) ExpectedQty() int       { return s.expectedQty }
func (s *Shipment) ReceivedQty() int       { return s.receivedQty }
func (s *Shipment) Status() ShipmentStatus { return s.status }
func (s *Shipment) CreatedAt() time.Time   { return s.createdAt }
func (s *Shipment) UpdatedAt() time.Time   { return s.updatedAt }
