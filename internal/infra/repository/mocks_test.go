//go:build unit

package repository

import (
	"context"
	"time"

	"checkout-engine/internal/domain/audit"
	sqlc "checkout-engine/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/mock"
)

type MockInventoryWriteQueries struct {
	mock.Mock
}

func (m *MockInventoryWriteQueries) GetInventoryRecordForUpdate(ctx context.Context, db sqlc.DBTX, arg sqlc.GetInventoryRecordForUpdateParams) (sqlc.InventoryRecord, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.InventoryRecord), args.Error(1)
}

func (m *MockInventoryWriteQueries) InsertInventoryRecordIfMissing(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertInventoryRecordIfMissingParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockInventoryWriteQueries) UpdateInventoryRecord(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateInventoryRecordParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

type MockReservationWriteQueries struct {
	mock.Mock
}

func (m *MockReservationWriteQueries) CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockReservationWriteQueries) GetReservationForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservation, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Reservation), args.Error(1)
}

func (m *MockReservationWriteQueries) UpdateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReservationWriteQueries) LockDueReservations(ctx context.Context, db sqlc.DBTX, arg sqlc.LockDueReservationsParams) ([]sqlc.Reservation, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.Reservation), args.Error(1)
}

type MockRuleWriteQueries struct {
	mock.Mock
}

func (m *MockRuleWriteQueries) GetPriceRuleForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetPriceRuleForUpdateRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.GetPriceRuleForUpdateRow), args.Error(1)
}

func (m *MockRuleWriteQueries) BumpRuleStoreVersion(ctx context.Context, db sqlc.DBTX, updatedAt pgtype.Timestamptz) (int64, error) {
	args := m.Called(ctx, db, updatedAt)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRuleWriteQueries) UpsertPriceRule(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertPriceRuleParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

type MockAuditWriteQueries struct {
	mock.Mock
}

func (m *MockAuditWriteQueries) LockAuditAppends(ctx context.Context, db sqlc.DBTX, lockKey int64) error {
	args := m.Called(ctx, db, lockKey)
	return args.Error(0)
}

func (m *MockAuditWriteQueries) InsertAuditEntry(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertAuditEntryParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func auditEntry(entityID string) audit.Entry {
	return audit.Entry{
		OccurredAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		Actor:      audit.SystemActor,
		EntityType: audit.EntityReservation,
		EntityID:   entityID,
		Reason:     audit.ReasonReservationHeld,
	}
}
