package request

import (
	"time"

	"github.com/google/uuid"
)

type RegisterInboundRequest struct {
	VariantID   uuid.UUID  `json:"variant_id" binding:"required"`
	LocationID  uuid.UUID  `json:"location_id" binding:"required"`
	Reference   string     `json:"reference" binding:"max=128"`
	ExpectedQty int        `json:"expected_qty" binding:"required,gt=0"`
	At          *time.Time `json:"at,omitempty"`
}

type ReceiveInboundRequest struct {
	Quantity int        `json:"quantity" binding:"required,gt=0"`
	At       *time.Time `json:"at,omitempty"`
}

type CancelInboundRequest struct {
	At *time.Time `json:"at,omitempty"`
}

type AdjustStockRequest struct {
	VariantID  uuid.UUID  `json:"variant_id" binding:"required"`
	LocationID uuid.UUID  `json:"location_id" binding:"required"`
	Delta      int        `json:"delta" binding:"required,ne=0"`
	Note       string     `json:"note" binding:"max=500"`
	At         *time.Time `json:"at,omitempty"`
}
