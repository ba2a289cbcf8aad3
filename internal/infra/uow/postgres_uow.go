package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"checkout-engine/internal/infra"
	"checkout-engine/internal/infra/repository"
	sqlc "checkout-engine/internal/infra/sqlc/generated"
	"checkout-engine/internal/pkg/config"
	"checkout-engine/internal/pkg/errs"
	"checkout-engine/internal/pkg/metrics"
	"checkout-engine/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"

	defaultBackoffBase = 50 * time.Millisecond
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool       *pgxpool.Pool
	q          *sqlc.Queries
	maxRetries int
	base       time.Duration
	metrics    *metrics.Metrics
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries, cfg config.Config, m *metrics.Metrics) *PostgresUoW {
	maxRetries := cfg.Reservation.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}
	if m == nil {
		m = metrics.NewNop()
	}
	return &PostgresUoW{
		pool:       pool,
		q:          q,
		maxRetries: maxRetries,
		base:       defaultBackoffBase,
		metrics:    m,
	}
}

// ReadCommitted plus row locks; lost version checks surface as conflicts and are retried.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	for attempt := 0; attempt <= u.maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			q:    u.q,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !isRetryableError(err) {
			return err
		}
		if attempt == u.maxRetries {
			slog.Error("transaction failed after max retries",
				"attempts", attempt+1,
				"error", err.Error())
			return errs.Mark(errs.Mark(err, errMaxRetriesExceeded), errs.ErrConcurrency)
		}

		u.metrics.TxRetry()
		waitTime := calculateBackoff(attempt, u.base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errs.Mark(errMaxRetriesExceeded, errs.ErrConcurrency)
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

// isRetryableError: serialization failures, deadlocks and lost inventory
// version checks.
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	if infra.IsKind(err, infra.KindConflict) {
		return true
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	q    *sqlc.Queries

	// Lazy-initialized repositories
	inventoryRepo   shared.InventoryRepository
	reservationRepo shared.ReservationRepository
	shipmentRepo    shared.ShipmentRepository
	ruleRepo        shared.RuleRepository
	auditRepo       shared.AuditRepository
}

func (t *pgTx) Inventory() shared.InventoryRepository {
	if t.inventoryRepo == nil {
		t.inventoryRepo = repository.NewInventoryRepository(t.q, t.dbtx)
	}
	return t.inventoryRepo
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservationRepo == nil {
		t.reservationRepo = repository.NewReservationRepository(t.q, t.dbtx)
	}
	return t.reservationRepo
}

func (t *pgTx) Shipments() shared.ShipmentRepository {
	if t.shipmentRepo == nil {
		t.shipmentRepo = repository.NewShipmentRepository(t.q, t.dbtx)
	}
	return t.shipmentRepo
}

func (t *pgTx) Rules() shared.RuleRepository {
	if t.ruleRepo == nil {
		t.ruleRepo = repository.NewRuleRepository(t.q, t.dbtx)
	}
	return t.ruleRepo
}

func (t *pgTx) Audit() shared.AuditRepository {
	if t.auditRepo == nil {
		t.auditRepo = repository.NewAuditRepository(t.q, t.dbtx)
	}
	return t.auditRepo
}
