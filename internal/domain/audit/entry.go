package audit

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

var ErrEmptyEntity = errors.New("audit entry requires an entity type and id")

type EntityType string

const (
	EntityInventoryRecord EntityType = "inventory_record"
	EntityReservation     EntityType = "reservation"
	EntityShipment        EntityType = "inbound_shipment"
	EntityPriceRule       EntityType = "price_rule"
)

type Reason string

const (
	ReasonReservationHeld      Reason = "reservation_held"
	ReasonReservationPriced    Reason = "reservation_priced"
	ReasonReservationCommitted Reason = "reservation_committed"
	ReasonReservationReleased  Reason = "reservation_released"
	ReasonReservationExpired   Reason = "reservation_expired"
	ReasonPricingFailed        Reason = "pricing_failed"
	ReasonInboundRegistered    Reason = "inbound_registered"
	ReasonInboundReceived      Reason = "inbound_received"
	ReasonInboundCancelled     Reason = "inbound_cancelled"
	ReasonStockAdjusted        Reason = "stock_adjusted"
	ReasonRuleUpserted         Reason = "rule_upserted"
)

// Entry is immutable once appended. Seq is assigned by the store.
type Entry struct {
	Seq        int64           `json:"seq"`
	OccurredAt time.Time       `json:"occurred_at"`
	Actor      string          `json:"actor"`
	EntityType EntityType      `json:"entity_type"`
	EntityID   string          `json:"entity_id"`
	Before     json.RawMessage `json:"before,omitempty"`
	After      json.RawMessage `json:"after,omitempty"`
	Reason     Reason          `json:"reason"`
	Note       string          `json:"note,omitempty"`
}

// NewEntry snapshots before and after as JSON. A nil value is left empty.
func NewEntry(
	ctx context.Context,
	at time.Time,
	entityType EntityType,
	entityID string,
	before, after any,
	reason Reason,
) (Entry, error) {
	if entityType == "" || entityID == "" {
		return Entry{}, ErrEmptyEntity
	}
	b, err := marshal(before)
	if err != nil {
		return Entry{}, err
	}
	a, err := marshal(after)
	if err != nil {
		return Entry{}, err
	}
	return Entry{
		OccurredAt: at.UTC(),
		Actor:      ActorFrom(ctx),
		EntityType: entityType,
		EntityID:   entityID,
		Before:     b,
		After:      a,
		Reason:     reason,
	}, nil
}

func (e Entry) WithNote(note string) Entry {
	e.Note = note
	return e
}

func marshal(v any) (json.RawMessage, error) {
	if v == nil {
		return nil, nil
	}
	return json.Marshal(v)
}

// Filter selects entries in sequence order. AfterSeq is an exclusive cursor.
type Filter struct {
	EntityType EntityType
	EntityID   string
	AfterSeq   int64
	Limit      int
}

func (f Filter) Matches(e Entry) bool {
	if f.EntityType != "" && e.EntityType != f.EntityType {
		return false
	}
	if f.EntityID != "" && e.EntityID != f.EntityID {
		return false
	}
	return e.Seq > f.AfterSeq
}
