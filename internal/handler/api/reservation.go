package api

import (
	"net/http"
	"time"

	reqdto "checkout-engine/internal/handler/dto/request"
	resdto "checkout-engine/internal/handler/dto/response"
	"checkout-engine/internal/handler/httperr"
	"checkout-engine/internal/usecase/commands"
	"checkout-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	ledger commands.LedgerCommands
	q      queries.ReservationQueries
}

func NewReservationHandler(ledger commands.LedgerCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{ledger: ledger, q: q}
}

// @Summary Get reservation
// @Description Get reservation by ID
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation ID format", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err, "Reservation not found")
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Commit reservation
// @Description Convert a live hold into a sale
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body reqdto.CommitReservationRequest true "Commit request"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id}/commit [post]
func (h *ReservationHandler) Commit(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation ID format", nil)
		return
	}
	var req reqdto.CommitReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	res, err := h.ledger.Commit(c.Request.Context(), commands.CommitInput{
		ReservationID:  id,
		OrderReference: req.OrderReference,
	})
	if err != nil {
		httperr.Abort(c, err, "Commit failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservation(res))
}

// @Summary Release reservation
// @Description Return a hold to stock; releasing twice is a no-op
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id}/release [post]
func (h *ReservationHandler) Release(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation ID format", nil)
		return
	}
	res, err := h.ledger.Release(c.Request.Context(), commands.ReleaseInput{
		ReservationID: id,
	})
	if err != nil {
		httperr.Abort(c, err, "Release failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservation(res))
}

// @Summary Expire due reservations
// @Description Sweep held reservations whose hold has lapsed at the server clock. Intended for an external scheduler.
// @Tags reservations
// @Accept json
// @Produce json
// @Success 200 {object} resdto.ExpireResponse
// @Failure 503 {object} httperr.Response
// @Router /reservations/expire [post]
func (h *ReservationHandler) Expire(c *gin.Context) {
	n, err := h.ledger.ExpireDueReservations(c.Request.Context(), time.Time{})
	if err != nil {
		httperr.Abort(c, err, "Expiry sweep failed")
		return
	}
	c.JSON(http.StatusOK, resdto.ExpireResponse{Expired: n})
}
