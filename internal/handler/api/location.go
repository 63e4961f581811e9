package api

import (
	"net/http"

	reqdto "rental-engine/internal/handler/dto/request"
	resdto "rental-engine/internal/handler/dto/response"
	"rental-engine/internal/handler/httperr"
	"rental-engine/internal/usecase/commands"
	"rental-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type LocationHandler struct {
	cmd commands.CatalogCommands
	q   queries.CatalogQueries
}

func NewLocationHandler(cmd commands.CatalogCommands, q queries.CatalogQueries) *LocationHandler {
	return &LocationHandler{cmd: cmd, q: q}
}

// @Summary List locations
// @Tags locations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.LocationResponse
// @Router /locations [get]
func (h *LocationHandler) List(c *gin.Context) {
	views, err := h.q.ListLocations(c.Request.Context())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLocationList(views))
}

// @Summary Get location
// @Tags locations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Location ID"
// @Success 200 {object} resdto.LocationResponse
// @Failure 404 {object} httperr.Response
// @Router /locations/{id} [get]
func (h *LocationHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetLocation(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLocationView(view))
}

// @Summary Create location
// @Tags locations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.LocationRequest true "Location"
// @Success 201 {object} resdto.LocationResponse
// @Failure 400 {object} httperr.Response
// @Router /locations [post]
func (h *LocationHandler) Create(c *gin.Context) {
	var req reqdto.LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	loc, err := h.cmd.CreateLocation(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.Header("Location", "/api/locations/"+loc.ID().String())
	c.JSON(http.StatusCreated, resdto.FromLocation(loc))
}

// @Summary Update location
// @Tags locations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Location ID"
// @Param request body reqdto.LocationRequest true "Location"
// @Success 200 {object} resdto.LocationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /locations/{id} [put]
func (h *LocationHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	loc, err := h.cmd.UpdateLocation(c.Request.Context(), id, req.ToCommand())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLocation(loc))
}

// @Summary Delete location
// @Description Refused while any item still has stock there
// @Tags locations
// @Security BearerAuth
// @Param id path string true "Location ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /locations/{id} [delete]
func (h *LocationHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.cmd.DeleteLocation(c.Request.Context(), id); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
