package memstore

import (
	"context"
	"slices"
	"time"

	"checkout-engine/internal/domain/audit"
	"checkout-engine/internal/domain/catalog"
	"checkout-engine/internal/domain/inventory"
	"checkout-engine/internal/domain/pricing"
	"checkout-engine/internal/infra"
	"checkout-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

// The read methods below satisfy the queries read-store ports. Each call
// sees one committed state.

func (s *Store) FindVariant(_ context.Context, id uuid.UUID) (*catalog.Variant, error) {
	v, ok := s.read().variants[id]
	if !ok {
		return nil, infra.WrapRepoErr("variant not found", nil, infra.KindNotFound)
	}
	return v, nil
}

func (s *Store) CurrentVersion(_ context.Context) (int64, error) {
	return s.read().ruleVersion, nil
}

func (s *Store) LoadActiveSnapshot(_ context.Context, at time.Time) (pricing.Snapshot, error) {
	st := s.read()
	snap := pricing.Snapshot{Version: st.ruleVersion}
	ids := make([]uuid.UUID, 0, len(st.rules))
	for id := range st.rules {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b uuid.UUID) int { return slices.Compare(a[:], b[:]) })
	windows := make([]pricing.Window, 0, len(ids))
	for _, id := range ids {
		rule, err := st.rules[id].ToRule()
		if err != nil {
			return pricing.Snapshot{}, infra.WrapRepoErr("failed to decode price rule", err, infra.KindDBFailure)
		}
		windows = append(windows, rule.Window())
		if rule.Window().Contains(at) {
			snap.Rules = append(snap.Rules, rule)
		}
	}
	snap.StableFrom, snap.StableUntil = pricing.StableInterval(windows, at)
	return snap, nil
}

func (s *Store) FindRecord(_ context.Context, key inventory.Key) (*queries.RecordView, error) {
	rec, ok := s.read().records[key]
	if !ok {
		return nil, infra.WrapRepoErr("inventory record not found", nil, infra.KindNotFound)
	}
	v := recordView(rec)
	return &v, nil
}

func (s *Store) ListByVariant(_ context.Context, variantID uuid.UUID) ([]queries.RecordView, error) {
	st := s.read()
	var recs []*inventory.Record
	for key, rec := range st.records {
		if key.VariantID == variantID {
			recs = append(recs, rec)
		}
	}
	slices.SortFunc(recs, func(a, b *inventory.Record) int { return a.Key().Compare(b.Key()) })
	out := make([]queries.RecordView, 0, len(recs))
	for _, rec := range recs {
		out = append(out, recordView(rec))
	}
	return out, nil
}

func (s *Store) FindShipment(_ context.Context, id uuid.UUID) (*queries.ShipmentView, error) {
	sh, ok := s.read().shipments[id]
	if !ok {
		return nil, infra.WrapRepoErr("inbound shipment not found", nil, infra.KindNotFound)
	}
	return &queries.ShipmentView{
		ShipmentSnapshot: sh.Snapshot(),
		CreatedAt:        sh.CreatedAt(),
		UpdatedAt:        sh.UpdatedAt(),
	}, nil
}

func (s *Store) FindByID(_ context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	res, ok := s.read().reservations[id]
	if !ok {
		return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return &queries.ReservationView{
		Snapshot:  res.Snapshot(),
		CreatedAt: res.CreatedAt(),
		UpdatedAt: res.UpdatedAt(),
	}, nil
}

func (s *Store) List(_ context.Context, filter audit.Filter) ([]audit.Entry, error) {
	st := s.read()
	out := make([]audit.Entry, 0, max(0, min(filter.Limit, len(st.audit))))
	for _, e := range st.audit {
		if len(out) >= filter.Limit {
			break
		}
		if filter.Matches(e) {
			out = append(out, e)
		}
	}
	return out, nil
}

func recordView(rec *inventory.Record) queries.RecordView {
	return queries.RecordView{
		RecordSnapshot: rec.Snapshot(),
		Version:        rec.Version(),
		UpdatedAt:      rec.UpdatedAt(),
	}
}
