// Package memstore is the in-process storage backend. Every transaction runs
// against a private copy of the state under one lock; commit swaps the copy
// in, rollback drops it.
package memstore

import (
	"context"
	"maps"
	"sync"

	"checkout-engine/internal/domain/audit"
	"checkout-engine/internal/domain/catalog"
	"checkout-engine/internal/domain/inventory"
	"checkout-engine/internal/domain/pricing"
	"checkout-engine/internal/domain/reservation"
	"checkout-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

// Stored values are never mutated in place: reads hand out clones and
// writes replace the map entry.
type state struct {
	variants     map[uuid.UUID]*catalog.Variant
	records      map[inventory.Key]*inventory.Record
	reservations map[uuid.UUID]*reservation.Reservation
	shipments    map[uuid.UUID]*inventory.Shipment
	rules        map[uuid.UUID]pricing.Document
	ruleVersion  int64
	audit        []audit.Entry
}

func newState() *state {
	return &state{
		variants:     map[uuid.UUID]*catalog.Variant{},
		records:      map[inventory.Key]*inventory.Record{},
		reservations: map[uuid.UUID]*reservation.Reservation{},
		shipments:    map[uuid.UUID]*inventory.Shipment{},
		rules:        map[uuid.UUID]pricing.Document{},
	}
}

func (s *state) fork() *state {
	return &state{
		variants:     maps.Clone(s.variants),
		records:      maps.Clone(s.records),
		reservations: maps.Clone(s.reservations),
		shipments:    maps.Clone(s.shipments),
		rules:        maps.Clone(s.rules),
		ruleVersion:  s.ruleVersion,
		// append-only; the tx appends past len and commit keeps the longer slice
		audit: s.audit[:len(s.audit):len(s.audit)],
	}
}

type Store struct {
	mu    sync.RWMutex
	state *state
}

func New() *Store {
	return &Store{state: newState()}
}

// Within serializes transactions. Nothing can interleave, so there is
// nothing to retry.
func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.state.fork()
	if err := fn(ctx, &memTx{st: work}); err != nil {
		return err
	}
	s.state = work
	return nil
}

// SeedVariant stores a catalog variant; the catalog is owned elsewhere and
// only read here.
func (s *Store) SeedVariant(v *catalog.Variant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	work := s.state.fork()
	work.variants[v.ID()] = v
	s.state = work
}

func (s *Store) read() *state {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}
