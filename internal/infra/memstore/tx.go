package memstore

import (
	"cmp"
	"context"
	"slices"
	"time"

	"checkout-engine/internal/domain/audit"
	"checkout-engine/internal/domain/inventory"
	"checkout-engine/internal/domain/pricing"
	"checkout-engine/internal/domain/reservation"
	"checkout-engine/internal/infra"
	"checkout-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type memTx struct {
	st *state
}

func (t *memTx) Inventory() shared.InventoryRepository      { return inventoryRepo{t.st} }
func (t *memTx) Reservations() shared.ReservationRepository { return reservationRepo{t.st} }
func (t *memTx) Shipments() shared.ShipmentRepository       { return shipmentRepo{t.st} }
func (t *memTx) Rules() shared.RuleRepository               { return ruleRepo{t.st} }
func (t *memTx) Audit() shared.AuditRepository              { return auditRepo{t.st} }

type inventoryRepo struct{ st *state }

func (r inventoryRepo) Lock(_ context.Context, key inventory.Key) (*inventory.Record, error) {
	rec, ok := r.st.records[key]
	if !ok {
		return nil, infra.WrapRepoErr("inventory record not found", nil, infra.KindNotFound)
	}
	return rec.Clone(), nil
}

func (r inventoryRepo) LockOrCreate(ctx context.Context, key inventory.Key, now time.Time) (*inventory.Record, error) {
	if _, ok := r.st.records[key]; !ok {
		r.st.records[key] = inventory.NewRecord(key, now)
	}
	return r.Lock(ctx, key)
}

func (r inventoryRepo) Update(_ context.Context, rec *inventory.Record) error {
	stored, ok := r.st.records[rec.Key()]
	if !ok {
		return infra.WrapRepoErr("inventory record not found", nil, infra.KindNotFound)
	}
	if stored.Version() != rec.Version() {
		return infra.WrapRepoErr("inventory record version changed", infra.ErrVersionConflict, infra.KindConflict)
	}
	if rec.Reserved() < 0 || rec.OnHand() < 0 || rec.Reserved() > rec.OnHand() {
		return infra.WrapRepoErr("inventory record violates stock bounds", nil, infra.KindConstraintViolated)
	}
	r.st.records[rec.Key()] = inventory.ReconstructRecord(
		rec.Key(), rec.OnHand(), rec.Reserved(), rec.Version()+1, rec.UpdatedAt(),
	)
	return nil
}

type reservationRepo struct{ st *state }

func (r reservationRepo) Create(_ context.Context, res *reservation.Reservation) error {
	if _, ok := r.st.reservations[res.ID()]; ok {
		return infra.WrapRepoErr("reservation already exists", nil, infra.KindDuplicateKey)
	}
	if _, ok := r.st.records[res.Key()]; !ok {
		return infra.WrapRepoErr("reservation references a missing inventory record", nil, infra.KindForeignKeyViolated)
	}
	r.st.reservations[res.ID()] = res.Clone()
	return nil
}

func (r reservationRepo) Lock(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	res, ok := r.st.reservations[id]
	if !ok {
		return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return res.Clone(), nil
}

func (r reservationRepo) Update(_ context.Context, res *reservation.Reservation) error {
	if _, ok := r.st.reservations[res.ID()]; !ok {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	r.st.reservations[res.ID()] = res.Clone()
	return nil
}

func (r reservationRepo) LockDue(_ context.Context, now time.Time, limit int) ([]*reservation.Reservation, error) {
	var due []*reservation.Reservation
	for _, res := range r.st.reservations {
		if res.IsDue(now) {
			due = append(due, res)
		}
	}
	slices.SortFunc(due, func(a, b *reservation.Reservation) int {
		if c := a.ExpiresAt().Compare(b.ExpiresAt()); c != 0 {
			return c
		}
		return cmp.Compare(a.ID().String(), b.ID().String())
	})
	if limit >= 0 && len(due) > limit {
		due = due[:limit]
	}
	out := make([]*reservation.Reservation, 0, len(due))
	for _, res := range due {
		out = append(out, res.Clone())
	}
	return out, nil
}

type shipmentRepo struct{ st *state }

func (r shipmentRepo) Create(_ context.Context, s *inventory.Shipment) error {
	if _, ok := r.st.shipments[s.ID()]; ok {
		return infra.WrapRepoErr("inbound shipment already exists", nil, infra.KindDuplicateKey)
	}
	r.st.shipments[s.ID()] = s.Clone()
	return nil
}

func (r shipmentRepo) Lock(_ context.Context, id uuid.UUID) (*inventory.Shipment, error) {
	s, ok := r.st.shipments[id]
	if !ok {
		return nil, infra.WrapRepoErr("inbound shipment not found", nil, infra.KindNotFound)
	}
	return s.Clone(), nil
}

func (r shipmentRepo) Update(_ context.Context, s *inventory.Shipment) error {
	if _, ok := r.st.shipments[s.ID()]; !ok {
		return infra.WrapRepoErr("inbound shipment not found", nil, infra.KindNotFound)
	}
	r.st.shipments[s.ID()] = s.Clone()
	return nil
}

type ruleRepo struct{ st *state }

func (r ruleRepo) Lock(_ context.Context, id uuid.UUID) (pricing.Rule, error) {
	doc, ok := r.st.rules[id]
	if !ok {
		return nil, infra.WrapRepoErr("price rule not found", nil, infra.KindNotFound)
	}
	rule, err := doc.ToRule()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode price rule", err, infra.KindDBFailure)
	}
	return rule, nil
}

func (r ruleRepo) Upsert(_ context.Context, rule pricing.Rule, _ time.Time) (int64, error) {
	r.st.ruleVersion++
	r.st.rules[rule.ID()] = pricing.ToDocument(rule)
	return r.st.ruleVersion, nil
}

type auditRepo struct{ st *state }

func (r auditRepo) Append(_ context.Context, entries ...audit.Entry) error {
	for _, e := range entries {
		e.Seq = int64(len(r.st.audit)) + 1
		r.st.audit = append(r.st.audit, e)
	}
	return nil
}
