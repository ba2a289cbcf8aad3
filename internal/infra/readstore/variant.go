package readstore

import (
	"context"

	"checkout-engine/internal/domain/catalog"
	"checkout-engine/internal/infra"
	"checkout-engine/internal/infra/repository/converter"
	sqlc "checkout-engine/internal/infra/sqlc/generated"
	"checkout-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type VariantReadQueries interface {
	GetVariant(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Variant, error)
}

// VariantReadStore reads the catalog-owned variants table.
type VariantReadStore struct {
	queries VariantReadQueries
	db      sqlc.DBTX
}

func NewVariantReadStore(queries VariantReadQueries, db sqlc.DBTX) *VariantReadStore {
	return &VariantReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *VariantReadStore) FindVariant(ctx context.Context, id uuid.UUID) (*catalog.Variant, error) {
	row, err := r.queries.GetVariant(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("variant not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get variant", err)
	}
	v, err := converter.VariantFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode variant", err, infra.KindDBFailure)
	}
	return v, nil
}
