package api

import (
	"net/http"

	reqdto "parkme/internal/handler/dto/request"
	resdto "parkme/internal/handler/dto/response"
	"parkme/internal/handler/httperr"
	"parkme/internal/pkg/errs"
	"parkme/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	q queries.AvailabilityQueries
}

func NewAvailabilityHandler(q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q}
}

// @Summary Facility availability
// @Tags availability
// @Produce json
// @Param id path string true "Facility ID"
// @Success 200 {object} resdto.FacilityAvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /facilities/{id}/availability [get]
func (h *AvailabilityHandler) Facility(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.q.Facility(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromFacilityAvailability(view))
}

// @Summary Spot availability
// @Description Non-blocking check; a spot held by an in-flight booking operation is reported as locked.
// @Tags availability
// @Produce json
// @Param id path string true "Spot ID"
// @Success 200 {object} resdto.SpotAvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /spots/{id}/availability [get]
func (h *AvailabilityHandler) Spot(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.q.CheckSpot(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSpotAvailability(view))
}

// @Summary Search available spots
// @Description Available spots in a facility that fit the vehicle and provide the requested features.
// @Tags availability
// @Produce json
// @Param id path string true "Facility ID"
// @Param vehicle_type query string true "Vehicle type"
// @Param ev_charger query bool false "Needs an EV charger"
// @Param accessible query bool false "Needs an accessible spot"
// @Param covered query bool false "Needs a covered spot"
// @Success 200 {object} resdto.SpotSearchResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /facilities/{id}/spots [get]
func (h *AvailabilityHandler) SearchSpots(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.SpotSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrValidation), "Invalid query", nil)
		return
	}
	vt, err := req.ParsedVehicleType()
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	views, err := h.q.SearchSpots(c.Request.Context(), id, vt, req.Requirements())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSpotViews(views))
}
