package api

import (
	"net/http"

	"checkout-engine/internal/domain/inventory"
	reqdto "checkout-engine/internal/handler/dto/request"
	resdto "checkout-engine/internal/handler/dto/response"
	"checkout-engine/internal/handler/httperr"
	"checkout-engine/internal/usecase/commands"
	"checkout-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InventoryHandler struct {
	ledger commands.LedgerCommands
	q      queries.InventoryQueries
}

func NewInventoryHandler(ledger commands.LedgerCommands, q queries.InventoryQueries) *InventoryHandler {
	return &InventoryHandler{ledger: ledger, q: q}
}

// @Summary Inventory record
// @Description Stock counters for one variant at one location. A missing record reads as zero.
// @Tags inventory
// @Produce json
// @Param variantId path string true "Variant ID"
// @Param locationId path string true "Location ID"
// @Success 200 {object} resdto.RecordResponse
// @Failure 400 {object} httperr.Response
// @Router /inventory/variants/{variantId}/locations/{locationId} [get]
func (h *InventoryHandler) GetRecord(c *gin.Context) {
	variantID, err := uuid.Parse(c.Param("variantId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid variant id", nil)
		return
	}
	locationID, err := uuid.Parse(c.Param("locationId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid location id", nil)
		return
	}
	view, err := h.q.Snapshot(c.Request.Context(), inventory.Key{VariantID: variantID, LocationID: locationID})
	if err != nil {
		httperr.Abort(c, err, "Failed to load inventory record")
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Availability across locations
// @Tags inventory
// @Produce json
// @Param variantId path string true "Variant ID"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /inventory/variants/{variantId} [get]
func (h *InventoryHandler) GetAvailability(c *gin.Context) {
	variantID, err := uuid.Parse(c.Param("variantId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid variant id", nil)
		return
	}
	view, err := h.q.Availability(c.Request.Context(), variantID)
	if err != nil {
		httperr.Abort(c, err, "Failed to load availability")
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Register inbound shipment
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterInboundRequest true "Shipment"
// @Success 201 {object} resdto.ShipmentResponse
// @Failure 400 {object} httperr.Response
// @Router /inventory/shipments [post]
func (h *InventoryHandler) RegisterShipment(c *gin.Context) {
	var req reqdto.RegisterInboundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	s, err := h.ledger.RegisterInbound(c.Request.Context(), commands.RegisterInboundInput{
		Key:         inventory.Key{VariantID: req.VariantID, LocationID: req.LocationID},
		Reference:   req.Reference,
		ExpectedQty: req.ExpectedQty,
		At:          reqdto.AtOrZero(req.At),
	})
	if err != nil {
		httperr.Abort(c, err, "Register shipment failed")
		return
	}
	c.Header("Location", "/api/inventory/shipments/"+s.ID().String())
	c.JSON(http.StatusCreated, resdto.FromShipment(s))
}

// @Summary Get inbound shipment
// @Tags inventory
// @Produce json
// @Param id path string true "Shipment ID"
// @Success 200 {object} resdto.ShipmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /inventory/shipments/{id} [get]
func (h *InventoryHandler) GetShipment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid shipment id", nil)
		return
	}
	view, err := h.q.Shipment(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err, "Shipment not found")
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Receive inbound shipment
// @Description Add received units to on-hand stock. Receiving more than expected is rejected.
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path string true "Shipment ID"
// @Param request body reqdto.ReceiveInboundRequest true "Received quantity"
// @Success 200 {object} resdto.ShipmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /inventory/shipments/{id}/receive [post]
func (h *InventoryHandler) ReceiveShipment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid shipment id", nil)
		return
	}
	var req reqdto.ReceiveInboundRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	s, err := h.ledger.ReceiveInbound(c.Request.Context(), commands.ReceiveInboundInput{
		ShipmentID: id,
		Quantity:   req.Quantity,
		At:         reqdto.AtOrZero(req.At),
	})
	if err != nil {
		httperr.Abort(c, err, "Receive failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromShipment(s))
}

// @Summary Cancel inbound shipment
// @Tags inventory
// @Produce json
// @Param id path string true "Shipment ID"
// @Success 200 {object} resdto.ShipmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /inventory/shipments/{id}/cancel [post]
func (h *InventoryHandler) CancelShipment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid shipment id", nil)
		return
	}
	var req reqdto.CancelInboundRequest
	if c.Request.ContentLength > 0 {
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
			return
		}
	}
	s, err := h.ledger.CancelInbound(c.Request.Context(), id, reqdto.AtOrZero(req.At))
	if err != nil {
		httperr.Abort(c, err, "Cancel failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromShipment(s))
}

// @Summary Adjust stock
// @Description Manual correction of on-hand stock; never below the reserved count
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body reqdto.AdjustStockRequest true "Adjustment"
// @Success 200 {object} resdto.RecordResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /inventory/adjustments [post]
func (h *InventoryHandler) AdjustStock(c *gin.Context) {
	var req reqdto.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	rec, err := h.ledger.AdjustStock(c.Request.Context(), commands.AdjustStockInput{
		Key:   inventory.Key{VariantID: req.VariantID, LocationID: req.LocationID},
		Delta: req.Delta,
		Note:  req.Note,
		At:    reqdto.AtOrZero(req.At),
	})
	if err != nil {
		httperr.Abort(c, err, "Adjustment failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromRecord(rec))
}
