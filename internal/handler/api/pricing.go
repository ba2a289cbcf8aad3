package api

import (
	"net/http"
	"strconv"
	"time"

	"checkout-engine/internal/domain/pricing"
	reqdto "checkout-engine/internal/handler/dto/request"
	resdto "checkout-engine/internal/handler/dto/response"
	"checkout-engine/internal/handler/httperr"
	"checkout-engine/internal/usecase/commands"
	"checkout-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PricingHandler struct {
	rules commands.RuleCommands
	q     queries.PricingQueries
}

func NewPricingHandler(rules commands.RuleCommands, q queries.PricingQueries) *PricingHandler {
	return &PricingHandler{rules: rules, q: q}
}

// @Summary Quote
// @Description Price one variant as of an instant
// @Tags pricing
// @Produce json
// @Param id path string true "Variant ID"
// @Param at query string false "RFC3339 instant (default now)"
// @Param quantity query int false "Quantity (default 1)"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /pricing/variants/{id}/quote [get]
func (h *PricingHandler) Quote(c *gin.Context) {
	variantID, at, quantity, ok := parsePricingQuery(c)
	if !ok {
		return
	}
	q, err := h.q.PriceAsOf(c.Request.Context(), variantID, at, quantity)
	if err != nil {
		httperr.Abort(c, err, "Pricing failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuote(q))
}

// @Summary Active rules
// @Description Rules that apply to a variant at an instant, in application order
// @Tags pricing
// @Produce json
// @Param id path string true "Variant ID"
// @Param at query string false "RFC3339 instant (default now)"
// @Param quantity query int false "Quantity (default 1)"
// @Success 200 {object} resdto.ActiveRulesResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /pricing/variants/{id}/rules [get]
func (h *PricingHandler) ActiveRules(c *gin.Context) {
	variantID, at, quantity, ok := parsePricingQuery(c)
	if !ok {
		return
	}
	view, err := h.q.ActiveRulesAt(c.Request.Context(), variantID, at, quantity)
	if err != nil {
		httperr.Abort(c, err, "Failed to load rules")
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Upsert price book
// @Tags pricing
// @Accept json
// @Produce json
// @Param id path string true "Rule ID"
// @Param request body reqdto.UpsertPriceBookRequest true "Price book"
// @Success 200 {object} resdto.RuleResponse
// @Success 201 {object} resdto.RuleResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /pricing/price-books/{id} [put]
func (h *PricingHandler) PutPriceBook(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid rule id", nil)
		return
	}
	var req reqdto.UpsertPriceBookRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	doc, err := req.ToDocument(id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	h.upsert(c, doc)
}

// @Summary Upsert campaign
// @Tags pricing
// @Accept json
// @Produce json
// @Param id path string true "Rule ID"
// @Param request body reqdto.UpsertDiscountRequest true "Campaign"
// @Success 200 {object} resdto.RuleResponse
// @Success 201 {object} resdto.RuleResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /pricing/campaigns/{id} [put]
func (h *PricingHandler) PutCampaign(c *gin.Context) {
	h.putDiscount(c, pricing.KindCampaign)
}

// @Summary Upsert promotion
// @Tags pricing
// @Accept json
// @Produce json
// @Param id path string true "Rule ID"
// @Param request body reqdto.UpsertDiscountRequest true "Promotion"
// @Success 200 {object} resdto.RuleResponse
// @Success 201 {object} resdto.RuleResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /pricing/promotions/{id} [put]
func (h *PricingHandler) PutPromotion(c *gin.Context) {
	h.putDiscount(c, pricing.KindPromotion)
}

func (h *PricingHandler) putDiscount(c *gin.Context, kind pricing.Kind) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid rule id", nil)
		return
	}
	var req reqdto.UpsertDiscountRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	doc, err := req.ToDocument(id, kind)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	h.upsert(c, doc)
}

func (h *PricingHandler) upsert(c *gin.Context, doc pricing.Document) {
	result, err := h.rules.UpsertRule(c.Request.Context(), doc)
	if err != nil {
		httperr.Abort(c, err, "Rule rejected")
		return
	}
	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	c.JSON(status, resdto.FromUpsertRuleResult(result))
}

func parsePricingQuery(c *gin.Context) (uuid.UUID, time.Time, int, bool) {
	variantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid variant id", nil)
		return uuid.Nil, time.Time{}, 0, false
	}
	var at time.Time
	if v := c.Query("at"); v != "" {
		at, err = time.Parse(time.RFC3339Nano, v)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid at", nil)
			return uuid.Nil, time.Time{}, 0, false
		}
	}
	quantity := 1
	if v := c.Query("quantity"); v != "" {
		quantity, err = strconv.Atoi(v)
		if err != nil || quantity <= 0 {
			if err == nil {
				err = pricing.ErrInvalidQuantity
			}
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid quantity", nil)
			return uuid.Nil, time.Time{}, 0, false
		}
	}
	return variantID, at, quantity, true
}
