package api

import (
	"net/http"

	"checkout-engine/internal/domain/inventory"
	reqdto "checkout-engine/internal/handler/dto/request"
	resdto "checkout-engine/internal/handler/dto/response"
	"checkout-engine/internal/handler/httperr"
	"checkout-engine/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	cmds commands.CheckoutCommands
}

func NewCheckoutHandler(cmds commands.CheckoutCommands) *CheckoutHandler {
	return &CheckoutHandler{cmds: cmds}
}

// @Summary Checkout line
// @Description Hold stock for one cart line and freeze its price
// @Tags checkout
// @Accept json
// @Produce json
// @Param X-Actor header string false "Actor recorded in the audit log"
// @Param request body reqdto.CheckoutLineRequest true "Checkout line"
// @Success 201 {object} resdto.PricedReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /checkout/lines [post]
func (h *CheckoutHandler) CheckoutLine(c *gin.Context) {
	var req reqdto.CheckoutLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	priced, err := h.cmds.CheckoutLine(c.Request.Context(), commands.CheckoutLineInput{
		Key:      inventory.Key{VariantID: req.VariantID, LocationID: req.LocationID},
		Quantity: req.Quantity,
	})
	if err != nil {
		httperr.Abort(c, err, "Checkout failed")
		return
	}
	c.Header("Location", "/api/reservations/"+priced.Reservation.ID().String())
	c.JSON(http.StatusCreated, resdto.FromPricedReservation(priced))
}
