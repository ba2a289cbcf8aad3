package commands

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"checkout-engine/internal/domain/audit"
	"checkout-engine/internal/domain/inventory"
	"checkout-engine/internal/domain/reservation"
	"checkout-engine/internal/infra"
	"checkout-engine/internal/pkg/clock"
	"checkout-engine/internal/pkg/config"
	"checkout-engine/internal/pkg/metrics"
	"checkout-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReserveInput struct {
	Key      inventory.Key
	Quantity int
	// zero means the clock's now
	At time.Time
}

type CommitInput struct {
	ReservationID  uuid.UUID
	OrderReference string
	At             time.Time
}

type ReleaseInput struct {
	ReservationID uuid.UUID
	// defaults to reservation_released
	Reason audit.Reason
	At     time.Time
}

type RegisterInboundInput struct {
	Key         inventory.Key
	Reference   string
	ExpectedQty int
	At          time.Time
}

type ReceiveInboundInput struct {
	ShipmentID uuid.UUID
	Quantity   int
	At         time.Time
}

type AdjustStockInput struct {
	Key   inventory.Key
	Delta int
	Note  string
	At    time.Time
}

type LedgerCommands interface {
	Reserve(ctx context.Context, in ReserveInput) (*reservation.Reservation, error)
	Commit(ctx context.Context, in CommitInput) (*reservation.Reservation, error)
	Release(ctx context.Context, in ReleaseInput) (*reservation.Reservation, error)
	ExpireDueReservations(ctx context.Context, now time.Time) (int, error)
	RegisterInbound(ctx context.Context, in RegisterInboundInput) (*inventory.Shipment, error)
	ReceiveInbound(ctx context.Context, in ReceiveInboundInput) (*inventory.Shipment, error)
	CancelInbound(ctx context.Context, shipmentID uuid.UUID, at time.Time) (*inventory.Shipment, error)
	AdjustStock(ctx context.Context, in AdjustStockInput) (*inventory.Record, error)
}

type ledgerCommandsImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	cfg     config.ReservationConfig
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func NewLedgerCommands(
	uow shared.UnitOfWork,
	clk clock.Clock,
	cfg config.Config,
	m *metrics.Metrics,
	logger *slog.Logger,
) LedgerCommands {
	return &ledgerCommandsImpl{
		uow:     uow,
		clock:   clk,
		cfg:     cfg.Reservation,
		metrics: m,
		logger:  logger,
	}
}

func (uc *ledgerCommandsImpl) now(at time.Time) time.Time {
	if at.IsZero() {
		return uc.clock.Now().UTC()
	}
	return at.UTC()
}

func (uc *ledgerCommandsImpl) Reserve(ctx context.Context, in ReserveInput) (res *reservation.Reservation, err error) {
	defer func() { uc.metrics.ReservationOp("reserve", err) }()

	now := uc.now(in.At)
	held, err := reservation.NewReservation(in.Key, in.Quantity, now, uc.cfg.HoldTTL)
	if err != nil {
		return nil, shared.Classify(err)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rec, derr := tx.Inventory().Lock(ctx, in.Key)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				// no record means nothing on hand
				return inventory.ErrInsufficientStock
			}
			return derr
		}
		before := rec.Snapshot()
		if derr = rec.Hold(in.Quantity, now); derr != nil {
			return derr
		}
		if derr = tx.Inventory().Update(ctx, rec); derr != nil {
			return derr
		}
		attempt := held.Clone()
		if derr = tx.Reservations().Create(ctx, attempt); derr != nil {
			return derr
		}
		res = attempt
		return newAuditBatch(ctx, now).
			add(audit.EntityInventoryRecord, in.Key.String(), before, rec.Snapshot(), audit.ReasonReservationHeld, attempt.ID().String()).
			add(audit.EntityReservation, attempt.ID().String(), nil, attempt.Snapshot(), audit.ReasonReservationHeld, "").
			flush(tx)
	})
	if err != nil {
		return nil, shared.Classify(err)
	}

	uc.logger.InfoContext(ctx, "reservation held",
		slog.String("reservation_id", res.ID().String()),
		slog.String("key", in.Key.String()),
		slog.Int("quantity", in.Quantity),
		slog.Time("expires_at", res.ExpiresAt()))
	return res, nil
}

func (uc *ledgerCommandsImpl) Commit(ctx context.Context, in CommitInput) (res *reservation.Reservation, err error) {
	defer func() { uc.metrics.ReservationOp("commit", err) }()

	ref, err := reservation.NewOrderReference(in.OrderReference)
	if err != nil {
		return nil, shared.Classify(err)
	}
	now := uc.now(in.At)

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, derr := tx.Reservations().Lock(ctx, in.ReservationID)
		if derr != nil {
			return shared.NotFoundAs(derr, reservation.ErrReservationNotFound)
		}
		before := r.Snapshot()
		if derr = r.Commit(ref, now); derr != nil {
			return derr
		}
		rec, derr := tx.Inventory().Lock(ctx, r.Key())
		if derr != nil {
			return shared.NotFoundAs(derr, inventory.ErrRecordNotFound)
		}
		recBefore := rec.Snapshot()
		if derr = rec.Consume(r.Quantity(), now); derr != nil {
			return derr
		}
		if derr = tx.Inventory().Update(ctx, rec); derr != nil {
			return derr
		}
		if derr = tx.Reservations().Update(ctx, r); derr != nil {
			return derr
		}
		res = r
		return newAuditBatch(ctx, now).
			add(audit.EntityReservation, r.ID().String(), before, r.Snapshot(), audit.ReasonReservationCommitted, ref.String()).
			add(audit.EntityInventoryRecord, r.Key().String(), recBefore, rec.Snapshot(), audit.ReasonReservationCommitted, r.ID().String()).
			flush(tx)
	})
	if err != nil {
		return nil, shared.Classify(err)
	}

	uc.logger.InfoContext(ctx, "reservation committed",
		slog.String("reservation_id", res.ID().String()),
		slog.String("order_reference", ref.String()))
	return res, nil
}

// Release is idempotent: releasing a released reservation returns it unchanged.
func (uc *ledgerCommandsImpl) Release(ctx context.Context, in ReleaseInput) (res *reservation.Reservation, err error) {
	defer func() { uc.metrics.ReservationOp("release", err) }()

	reason := in.Reason
	if reason == "" {
		reason = audit.ReasonReservationReleased
	}
	now := uc.now(in.At)

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, derr := tx.Reservations().Lock(ctx, in.ReservationID)
		if derr != nil {
			return shared.NotFoundAs(derr, reservation.ErrReservationNotFound)
		}
		before := r.Snapshot()
		effect, derr := r.Release(now)
		if derr != nil {
			return derr
		}
		res = r
		if effect == reservation.ReleaseNoop {
			return nil
		}

		batch := newAuditBatch(ctx, now)
		if effect == reservation.ReleaseReturnsStock {
			rec, derr := tx.Inventory().Lock(ctx, r.Key())
			if derr != nil {
				return shared.NotFoundAs(derr, inventory.ErrRecordNotFound)
			}
			recBefore := rec.Snapshot()
			if derr = rec.Unhold(r.Quantity(), now); derr != nil {
				return derr
			}
			if derr = tx.Inventory().Update(ctx, rec); derr != nil {
				return derr
			}
			batch.add(audit.EntityInventoryRecord, r.Key().String(), recBefore, rec.Snapshot(), reason, r.ID().String())
		}
		if derr = tx.Reservations().Update(ctx, r); derr != nil {
			return derr
		}
		return batch.
			add(audit.EntityReservation, r.ID().String(), before, r.Snapshot(), reason, "").
			flush(tx)
	})
	if err != nil {
		return nil, shared.Classify(err)
	}

	uc.logger.InfoContext(ctx, "reservation released",
		slog.String("reservation_id", res.ID().String()),
		slog.String("reason", string(reason)))
	return res, nil
}

// ExpireDueReservations moves lapsed holds to expired in batches, one
// transaction per batch. Concurrent sweeps skip each other's rows.
func (uc *ledgerCommandsImpl) ExpireDueReservations(ctx context.Context, now time.Time) (int, error) {
	now = uc.now(now)
	batchSize := uc.cfg.SweepBatch
	if batchSize <= 0 {
		batchSize = 500
	}

	total := 0
	for {
		if err := ctx.Err(); err != nil {
			return total, err
		}

		claimed := 0
		err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			due, derr := tx.Reservations().LockDue(ctx, now, batchSize)
			if derr != nil {
				return derr
			}
			claimed = len(due)
			// inventory rows are locked in key order across sweepers
			slices.SortFunc(due, func(a, b *reservation.Reservation) int {
				if c := a.Key().Compare(b.Key()); c != 0 {
					return c
				}
				return a.CreatedAt().Compare(b.CreatedAt())
			})

			batch := newAuditBatch(ctx, now)
			for _, r := range due {
				before := r.Snapshot()
				if derr = r.Expire(now); derr != nil {
					return derr
				}
				rec, derr := tx.Inventory().Lock(ctx, r.Key())
				if derr != nil {
					return shared.NotFoundAs(derr, inventory.ErrRecordNotFound)
				}
				recBefore := rec.Snapshot()
				if derr = rec.Unhold(r.Quantity(), now); derr != nil {
					return derr
				}
				if derr = tx.Inventory().Update(ctx, rec); derr != nil {
					return derr
				}
				if derr = tx.Reservations().Update(ctx, r); derr != nil {
					return derr
				}
				batch.
					add(audit.EntityReservation, r.ID().String(), before, r.Snapshot(), audit.ReasonReservationExpired, "").
					add(audit.EntityInventoryRecord, r.Key().String(), recBefore, rec.Snapshot(), audit.ReasonReservationExpired, r.ID().String())
			}
			return batch.flush(tx)
		})
		if err != nil {
			uc.metrics.ReservationOp("expire", err)
			return total, shared.Classify(err)
		}

		total += claimed
		if claimed < batchSize {
			break
		}
	}

	uc.metrics.ReservationOp("expire", nil)
	uc.metrics.Expired(total)
	if total > 0 {
		uc.logger.InfoContext(ctx, "expired due reservations", slog.Int("count", total), slog.Time("as_of", now))
	}
	return total, nil
}

func (uc *ledgerCommandsImpl) RegisterInbound(ctx context.Context, in RegisterInboundInput) (*inventory.Shipment, error) {
	now := uc.now(in.At)
	s, err := inventory.NewShipment(in.Key, in.Reference, in.ExpectedQty, now)
	if err != nil {
		return nil, shared.Classify(err)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.Shipments().Create(ctx, s); derr != nil {
			return derr
		}
		return newAuditBatch(ctx, now).
			add(audit.EntityShipment, s.ID().String(), nil, s.Snapshot(), audit.ReasonInboundRegistered, s.Reference()).
			flush(tx)
	})
	if err != nil {
		return nil, shared.Classify(err)
	}
	return s, nil
}

// ReceiveInbound adds a delivery to on hand. A receipt beyond the expected
// quantity fails and changes nothing.
func (uc *ledgerCommandsImpl) ReceiveInbound(ctx context.Context, in ReceiveInboundInput) (*inventory.Shipment, error) {
	now := uc.now(in.At)

	var received *inventory.Shipment
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, derr := tx.Shipments().Lock(ctx, in.ShipmentID)
		if derr != nil {
			return shared.NotFoundAs(derr, inventory.ErrShipmentNotFound)
		}
		before := s.Snapshot()
		if derr = s.Receive(in.Quantity, now); derr != nil {
			return derr
		}
		rec, derr := tx.Inventory().LockOrCreate(ctx, s.Key(), now)
		if derr != nil {
			return derr
		}
		recBefore := rec.Snapshot()
		if derr = rec.Receive(in.Quantity, now); derr != nil {
			return derr
		}
		if derr = tx.Inventory().Update(ctx, rec); derr != nil {
			return derr
		}
		if derr = tx.Shipments().Update(ctx, s); derr != nil {
			return derr
		}
		received = s
		return newAuditBatch(ctx, now).
			add(audit.EntityShipment, s.ID().String(), before, s.Snapshot(), audit.ReasonInboundReceived, "").
			add(audit.EntityInventoryRecord, s.Key().String(), recBefore, rec.Snapshot(), audit.ReasonInboundReceived, s.ID().String()).
			flush(tx)
	})
	if err != nil {
		return nil, shared.Classify(err)
	}

	uc.logger.InfoContext(ctx, "inbound received",
		slog.String("shipment_id", received.ID().String()),
		slog.Int("quantity", in.Quantity),
		slog.String("status", received.Status().String()))
	return received, nil
}

func (uc *ledgerCommandsImpl) CancelInbound(ctx context.Context, shipmentID uuid.UUID, at time.Time) (*inventory.Shipment, error) {
	now := uc.now(at)

	var cancelled *inventory.Shipment
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, derr := tx.Shipments().Lock(ctx, shipmentID)
		if derr != nil {
			return shared.NotFoundAs(derr, inventory.ErrShipmentNotFound)
		}
		before := s.Snapshot()
		if derr = s.Cancel(now); derr != nil {
			return derr
		}
		if derr = tx.Shipments().Update(ctx, s); derr != nil {
			return derr
		}
		cancelled = s
		return newAuditBatch(ctx, now).
			add(audit.EntityShipment, s.ID().String(), before, s.Snapshot(), audit.ReasonInboundCancelled, "").
			flush(tx)
	})
	if err != nil {
		return nil, shared.Classify(err)
	}
	return cancelled, nil
}

// AdjustStock corrects on hand after a count; it can never drop below reserved.
func (uc *ledgerCommandsImpl) AdjustStock(ctx context.Context, in AdjustStockInput) (*inventory.Record, error) {
	now := uc.now(in.At)

	var adjusted *inventory.Record
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rec, derr := tx.Inventory().LockOrCreate(ctx, in.Key, now)
		if derr != nil {
			return derr
		}
		before := rec.Snapshot()
		if derr = rec.Adjust(in.Delta, now); derr != nil {
			return derr
		}
		if derr = tx.Inventory().Update(ctx, rec); derr != nil {
			return derr
		}
		adjusted = rec
		return newAuditBatch(ctx, now).
			add(audit.EntityInventoryRecord, in.Key.String(), before, rec.Snapshot(), audit.ReasonStockAdjusted, in.Note).
			flush(tx)
	})
	if err != nil {
		return nil, shared.Classify(err)
	}

	uc.logger.InfoContext(ctx, "stock adjusted",
		slog.String("key", in.Key.String()),
		slog.Int("delta", in.Delta),
		slog.Int("on_hand", adjusted.OnHand()))
	return adjusted, nil
}
