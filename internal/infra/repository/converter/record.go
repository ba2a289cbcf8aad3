package converter

import (
	"fmt"
	"math"

	"checkout-engine/internal/domain/inventory"
	sqlc "checkout-engine/internal/infra/sqlc/generated"
	"checkout-engine/internal/pkg/pgconv"
)

// Int32 narrows a domain quantity to the column type.
func Int32(n int) (int32, error) {
	if n > math.MaxInt32 || n < math.MinInt32 {
		return 0, fmt.Errorf("quantity out of int32 range: %d", n)
	}
	return int32(n), nil
}

func RecordFromRow(row sqlc.InventoryRecord) *inventory.Record {
	return inventory.ReconstructRecord(
		inventory.Key{VariantID: row.VariantID, LocationID: row.LocationID},
		int(row.OnHand),
		int(row.Reserved),
		row.Version,
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

// RecordToUpdateParams guards the write with the version the record was read at.
func RecordToUpdateParams(rec *inventory.Record) (sqlc.UpdateInventoryRecordParams, error) {
	onHand, err := Int32(rec.OnHand())
	if err != nil {
		return sqlc.UpdateInventoryRecordParams{}, err
	}
	reserved, err := Int32(rec.Reserved())
	if err != nil {
		return sqlc.UpdateInventoryRecordParams{}, err
	}
	return sqlc.UpdateInventoryRecordParams{
		OnHand:          onHand,
		Reserved:        reserved,
		UpdatedAt:       pgconv.TimeToPgtype(rec.UpdatedAt()),
		VariantID:       rec.Key().VariantID,
		LocationID:      rec.Key().LocationID,
		ExpectedVersion: rec.Version(),
	}, nil
}
