package api

import (
	"net/http"
	"strconv"

	"checkout-engine/internal/domain/audit"
	resdto "checkout-engine/internal/handler/dto/response"
	"checkout-engine/internal/handler/httperr"
	"checkout-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	q queries.AuditQueries
}

func NewAuditHandler(q queries.AuditQueries) *AuditHandler {
	return &AuditHandler{q: q}
}

// @Summary List audit entries
// @Description Chronological audit log with keyset pagination by sequence
// @Tags audit
// @Produce json
// @Param entity_type query string false "inventory_record, reservation, inbound_shipment or price_rule"
// @Param entity_id query string false "Entity ID"
// @Param limit query int false "Max items (default 100, max 1000)"
// @Param after query string false "Cursor from a previous page"
// @Success 200 {object} resdto.AuditPageResponse
// @Failure 400 {object} httperr.Response
// @Router /audit [get]
func (h *AuditHandler) List(c *gin.Context) {
	in := queries.AuditQuery{
		EntityType: audit.EntityType(c.Query("entity_type")),
		EntityID:   c.Query("entity_id"),
	}
	if v := c.Query("limit"); v != "" {
		iv, err := strconv.Atoi(v)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
			return
		}
		in.Limit = iv
	}
	if after := c.Query("after"); after != "" {
		in.Cursor = &queries.Cursor{After: after}
	}
	page, err := h.q.List(c.Request.Context(), in)
	if err != nil {
		httperr.Abort(c, err, "Failed to list audit entries")
		return
	}
	c.JSON(http.StatusOK, resdto.FromAuditPage(page))
}
