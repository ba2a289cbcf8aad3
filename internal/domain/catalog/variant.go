package catalog

import (
	"errors"
	"maps"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrVariantNotFound = errors.New("variant not found")
	ErrVariantInactive = errors.New("variant is not active")
	ErrEmptySKU        = errors.New("variant sku cannot be empty")
	ErrSKUTooLong      = errors.New("variant sku is too long (max 64 characters)")
)

const (
	MaxSKULength = 64
)

// Variant is owned by the catalog; this service only reads it.
type Variant struct {
	id         uuid.UUID
	productID  uuid.UUID
	sku        string
	attributes map[string]string
	active     bool
}

func NewVariant(id, productID uuid.UUID, sku string, attributes map[string]string, active bool) (*Variant, error) {
	if err := validateSKU(sku); err != nil {
		return nil, err
	}
	return &Variant{
		id:         id,
		productID:  productID,
		sku:        strings.TrimSpace(sku),
		attributes: maps.Clone(attributes),
		active:     active,
	}, nil
}

func validateSKU(sku string) error {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return ErrEmptySKU
	}
	if len(sku) > MaxSKULength {
		return ErrSKUTooLong
	}
	return nil
}

func (v *Variant) Attribute(key string) (string, bool) {
	val, ok := v.attributes[key]
	return val, ok
}

func (v *Variant) ID() uuid.UUID                 { return v.id }
func (v *Variant) ProductID() uuid.UUID          { return v.productID }
func (v *Variant) SKU() string                   { return v.sku }
func (v *Variant) Attributes() map[string]string { return maps.Clone(v.attributes) }
func (v *Variant) Active() bool                  { return v.active }
