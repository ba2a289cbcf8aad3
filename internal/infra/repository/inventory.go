package repository

import (
	"context"
	"time"

	"checkout-engine/internal/domain/inventory"
	"checkout-engine/internal/infra"
	"checkout-engine/internal/infra/repository/converter"
	sqlc "checkout-engine/internal/infra/sqlc/generated"
	"checkout-engine/internal/pkg/pgconv"
)

type InventoryWriteQueries interface {
	GetInventoryRecordForUpdate(ctx context.Context, db sqlc.DBTX, arg sqlc.GetInventoryRecordForUpdateParams) (sqlc.InventoryRecord, error)
	InsertInventoryRecordIfMissing(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertInventoryRecordIfMissingParams) error
	UpdateInventoryRecord(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateInventoryRecordParams) (int64, error)
}

type InventoryRepository struct {
	queries InventoryWriteQueries
	db      sqlc.DBTX
}

func NewInventoryRepository(queries InventoryWriteQueries, db sqlc.DBTX) *InventoryRepository {
	return &InventoryRepository{
		queries: queries,
		db:      db,
	}
}

func (r *InventoryRepository) Lock(ctx context.Context, key inventory.Key) (*inventory.Record, error) {
	row, err := r.queries.GetInventoryRecordForUpdate(ctx, r.db, sqlc.GetInventoryRecordForUpdateParams{
		VariantID:  key.VariantID,
		LocationID: key.LocationID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("inventory record not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock inventory record", err)
	}
	return converter.RecordFromRow(row), nil
}

func (r *InventoryRepository) LockOrCreate(ctx context.Context, key inventory.Key, now time.Time) (*inventory.Record, error) {
	err := r.queries.InsertInventoryRecordIfMissing(ctx, r.db, sqlc.InsertInventoryRecordIfMissingParams{
		VariantID:  key.VariantID,
		LocationID: key.LocationID,
		UpdatedAt:  pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create inventory record", err)
	}
	return r.Lock(ctx, key)
}

func (r *InventoryRepository) Update(ctx context.Context, rec *inventory.Record) error {
	params, err := converter.RecordToUpdateParams(rec)
	if err != nil {
		return infra.WrapRepoErr("failed to encode inventory record", err, infra.KindConstraintViolated)
	}
	n, err := r.queries.UpdateInventoryRecord(ctx, r.db, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update inventory record", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("inventory record version changed", infra.ErrVersionConflict, infra.KindConflict)
	}
	return nil
}
