package shared

import (
	"context"
	"time"

	"checkout-engine/internal/domain/audit"
	"checkout-engine/internal/domain/inventory"
	"checkout-engine/internal/domain/pricing"
	"checkout-engine/internal/domain/reservation"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within runs fn in one transaction; serialization failures and lost
	// version checks are retried with backoff before surfacing.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes repositories bound to one transaction. Audit appends made
// through it commit or roll back together with the state they describe.
type Tx interface {
	Inventory() InventoryRepository
	Reservations() ReservationRepository
	Shipments() ShipmentRepository
	Rules() RuleRepository
	Audit() AuditRepository
}

type InventoryRepository interface {
	// Lock takes the row lock for key.
	Lock(ctx context.Context, key inventory.Key) (*inventory.Record, error)
	LockOrCreate(ctx context.Context, key inventory.Key, now time.Time) (*inventory.Record, error)
	// Update writes rec only if its stored version still equals rec.Version().
	Update(ctx context.Context, rec *inventory.Record) error
}

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) error
	Lock(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	Update(ctx context.Context, res *reservation.Reservation) error
	// LockDue claims up to limit held reservations with expires_at <= now,
	// skipping rows another transaction already holds.
	LockDue(ctx context.Context, now time.Time, limit int) ([]*reservation.Reservation, error)
}

type ShipmentRepository interface {
	Create(ctx context.Context, s *inventory.Shipment) error
	Lock(ctx context.Context, id uuid.UUID) (*inventory.Shipment, error)
	Update(ctx context.Context, s *inventory.Shipment) error
}

type RuleRepository interface {
	Lock(ctx context.Context, id uuid.UUID) (pricing.Rule, error)
	// Upsert stores rule and returns the new rule-store version.
	Upsert(ctx context.Context, rule pricing.Rule, now time.Time) (int64, error)
}

type AuditRepository interface {
	Append(ctx context.Context, entries ...audit.Entry) error
}
