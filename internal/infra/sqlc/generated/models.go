// Written by hand in sqlc v1.29.0 output shape. Keep in step with
// ../queries and regenerate with `sqlc generate` once sqlc.yaml is wired
// into CI.

package sqlc

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type AuditEntry struct {
	Seq        int64              `json:"seq"`
	OccurredAt pgtype.Timestamptz `json:"occurred_at"`
	Actor      string             `json:"actor"`
	EntityType string             `json:"entity_type"`
	EntityID   string             `json:"entity_id"`
	Before     []byte             `json:"before"`
	After      []byte             `json:"after"`
	Reason     string             `json:"reason"`
	Note       pgtype.Text        `json:"note"`
}

type InboundShipment struct {
	ID          uuid.UUID          `json:"id"`
	VariantID   uuid.UUID          `json:"variant_id"`
	LocationID  uuid.UUID          `json:"location_id"`
	Reference   string             `json:"reference"`
	ExpectedQty int32              `json:"expected_qty"`
	ReceivedQty int32              `json:"received_qty"`
	Status      string             `json:"status"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
	UpdatedAt   pgtype.Timestamptz `json:"updated_at"`
}

type InventoryRecord struct {
	VariantID  uuid.UUID          `json:"variant_id"`
	LocationID uuid.UUID          `json:"location_id"`
	OnHand     int32              `json:"on_hand"`
	Reserved   int32              `json:"reserved"`
	Version    int64              `json:"version"`
	UpdatedAt  pgtype.Timestamptz `json:"updated_at"`
}

type PriceRule struct {
	ID         uuid.UUID          `json:"id"`
	Kind       string             `json:"kind"`
	Name       string             `json:"name"`
	ValidFrom  pgtype.Timestamptz `json:"valid_from"`
	ValidUntil pgtype.Timestamptz `json:"valid_until"`
	Priority   int32              `json:"priority"`
	Body       []byte             `json:"body"`
	Version    int64              `json:"version"`
	UpdatedAt  pgtype.Timestamptz `json:"updated_at"`
}

type Reservation struct {
	ID             uuid.UUID          `json:"id"`
	VariantID      uuid.UUID          `json:"variant_id"`
	LocationID     uuid.UUID          `json:"location_id"`
	Quantity       int32              `json:"quantity"`
	Status         string             `json:"status"`
	Pricing        []byte             `json:"pricing"`
	OrderReference pgtype.Text        `json:"order_reference"`
	CreatedAt      pgtype.Timestamptz `json:"created_at"`
	ExpiresAt      pgtype.Timestamptz `json:"expires_at"`
	UpdatedAt      pgtype.Timestamptz `json:"updated_at"`
}

type RuleStoreVersion struct {
	ID        int16              `json:"id"`
	Version   int64              `json:"version"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

type Variant struct {
	ID         uuid.UUID          `json:"id"`
	ProductID  uuid.UUID          `json:"product_id"`
	Sku        string             `json:"sku"`
	Attributes []byte             `json:"attributes"`
	Active     bool               `json:"active"`
	CreatedAt  pgtype.Timestamptz `json:"created_at"`
}
