package api

import (
	"net/http"

	"rental-engine/internal/domain/booking"
	reqdto "rental-engine/internal/handler/dto/request"
	resdto "rental-engine/internal/handler/dto/response"
	"rental-engine/internal/handler/httperr"
	"rental-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	q queries.AvailabilityQueries
}

func NewAvailabilityHandler(q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q}
}

// @Summary Item availability
// @Description Advisory count of free units for a window, per location or at one location. Not a reservation.
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Param pickup query string true "Pickup time (RFC 3339)"
// @Param return query string true "Return time (RFC 3339)"
// @Param location_id query string false "Restrict to one location"
// @Success 200 {array} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items/{id}/availability [get]
func (h *AvailabilityHandler) Get(c *gin.Context) {
	itemID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var qp reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&qp); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	window, err := booking.NewWindow(qp.PickupAt, qp.ReturnAt)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	if qp.LocationID != "" {
		// validated by the binding tag
		locationID := uuid.MustParse(qp.LocationID)
		view, err := h.q.Available(c.Request.Context(), itemID, locationID, window)
		if err != nil {
			httperr.AbortWithDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, []*resdto.AvailabilityResponse{resdto.FromAvailability(view)})
		return
	}

	views, err := h.q.AvailableByItem(c.Request.Context(), itemID, window)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityList(views))
}
