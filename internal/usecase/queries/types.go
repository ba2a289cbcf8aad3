package queries

import (
	"time"

	"checkout-engine/internal/domain/audit"
	"checkout-engine/internal/domain/inventory"
	"checkout-engine/internal/domain/pricing"
	"checkout-engine/internal/domain/reservation"

	"github.com/google/uuid"
)

// Read models returned by the query side.

type RecordView struct {
	inventory.RecordSnapshot
	Version   int64     `json:"version"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AvailabilityView struct {
	VariantID uuid.UUID    `json:"variant_id"`
	Locations []RecordView `json:"locations"`
	OnHand    int          `json:"on_hand"`
	Reserved  int          `json:"reserved"`
	Available int          `json:"available"`
}

type ShipmentView struct {
	inventory.ShipmentSnapshot
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ReservationView struct {
	reservation.Snapshot
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ActiveRulesView struct {
	VariantID       uuid.UUID          `json:"variant_id"`
	At              time.Time          `json:"at"`
	SnapshotVersion int64              `json:"snapshot_version"`
	PriceBook       *pricing.Document  `json:"price_book,omitempty"`
	Discounts       []pricing.Document `json:"discounts"`
}

type AuditPage struct {
	Entries []audit.Entry `json:"entries"`
	Next    *Cursor       `json:"next,omitempty"`
}
