package converter

import (
	"encoding/json"
	"fmt"

	"checkout-engine/internal/domain/catalog"
	sqlc "checkout-engine/internal/infra/sqlc/generated"
)

func VariantFromRow(row sqlc.Variant) (*catalog.Variant, error) {
	attrs := map[string]string{}
	if len(row.Attributes) > 0 {
		if err := json.Unmarshal(row.Attributes, &attrs); err != nil {
			return nil, fmt.Errorf("decode variant attributes: %w", err)
		}
	}
	return catalog.NewVariant(row.ID, row.ProductID, row.Sku, attrs, row.Active)
}
