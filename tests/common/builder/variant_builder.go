//go:build unit || e2e

package builder

import (
	"checkout-engine/internal/domain/catalog"

	"github.com/google/uuid"
)

type VariantBuilder struct {
	ID         uuid.UUID
	ProductID  uuid.UUID
	SKU        string
	Attributes map[string]string
	Active     bool
}

func NewVariantBuilder() *VariantBuilder {
	return &VariantBuilder{
		ID:         uuid.New(),
		ProductID:  uuid.New(),
		SKU:        "TSHIRT-RED-M",
		Attributes: map[string]string{"color": "red", "size": "M"},
		Active:     true,
	}
}

func (b *VariantBuilder) With(mutate func(*VariantBuilder)) *VariantBuilder {
	mutate(b)
	return b
}

func (b *VariantBuilder) BuildDomain() *catalog.Variant {
	v, err := catalog.NewVariant(b.ID, b.ProductID, b.SKU, b.Attributes, b.Active)
	if err != nil {
		panic(err)
	}
	return v
}
