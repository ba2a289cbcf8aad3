package response

import (
	"checkout-engine/internal/domain/audit"
	"checkout-engine/internal/domain/inventory"
	"checkout-engine/internal/usecase/queries"
)

type RecordResponse = queries.RecordView

type AvailabilityResponse = queries.AvailabilityView

type ShipmentResponse = queries.ShipmentView

type AuditEntryResponse = audit.Entry

type AuditPageResponse struct {
	Entries []AuditEntryResponse `json:"entries"`
	// opaque cursor for the next page; absent on the last page
	Next string `json:"next,omitempty"`
}

func FromRecord(rec *inventory.Record) *RecordResponse {
	return &RecordResponse{
		RecordSnapshot: rec.Snapshot(),
		Version:        rec.Version(),
		UpdatedAt:      rec.UpdatedAt(),
	}
}

func FromShipment(s *inventory.Shipment) *ShipmentResponse {
	return &ShipmentResponse{
		ShipmentSnapshot: s.Snapshot(),
		CreatedAt:        s.CreatedAt(),
		UpdatedAt:        s.UpdatedAt(),
	}
}

func FromAuditPage(p *queries.AuditPage) *AuditPageResponse {
	resp := &AuditPageResponse{Entries: p.Entries}
	if resp.Entries == nil {
		resp.Entries = []AuditEntryResponse{}
	}
	if p.Next != nil {
		resp.Next = p.Next.After
	}
	return resp
}
