package api

import (
	"net/http"

	reqdto "parkme/internal/handler/dto/request"
	resdto "parkme/internal/handler/dto/response"
	"parkme/internal/handler/httperr"
	"parkme/internal/handler/middleware"
	"parkme/internal/pkg/errs"
	"parkme/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PricingHandler struct {
	q queries.PricingQueries
}

func NewPricingHandler(q queries.PricingQueries) *PricingHandler {
	return &PricingHandler{q: q}
}

// @Summary Estimate price
// @Description Price a stay without booking it. A subscriber's plan is considered but not consumed.
// @Tags pricing
// @Produce json
// @Security BearerAuth
// @Param facility_id query string true "Facility ID"
// @Param vehicle_type query string true "Vehicle type"
// @Param duration_hours query number true "Duration in hours"
// @Param spot_size query string false "Spot size"
// @Param start_time query string false "Start time (RFC3339)"
// @Success 200 {object} resdto.PriceResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /pricing/estimate [get]
func (h *PricingHandler) Estimate(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingUser, "Unauthorized", nil)
		return
	}
	var req reqdto.EstimateRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrValidation), "Invalid query", nil)
		return
	}
	result, err := h.q.Estimate(c.Request.Context(), req, userID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPriceResult(result))
}
