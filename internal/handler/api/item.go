package api

import (
	"net/http"
	"strconv"

	reqdto "rental-engine/internal/handler/dto/request"
	resdto "rental-engine/internal/handler/dto/response"
	"rental-engine/internal/handler/httperr"
	"rental-engine/internal/usecase/commands"
	"rental-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ItemHandler struct {
	cmd commands.CatalogCommands
	q   queries.CatalogQueries
}

func NewItemHandler(cmd commands.CatalogCommands, q queries.CatalogQueries) *ItemHandler {
	return &ItemHandler{cmd: cmd, q: q}
}

// @Summary List items
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items"
// @Param after query string false "Opaque cursor"
// @Success 200 {object} resdto.ItemListResponse
// @Failure 400 {object} httperr.Response
// @Router /items [get]
func (h *ItemHandler) List(c *gin.Context) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = iv
		}
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	items, next, err := h.q.ListItems(c.Request.Context(), cursor, limit)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemList(items, next))
}

// @Summary Get item
// @Description Item with its per-location stock
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 200 {object} resdto.ItemResponse
// @Failure 404 {object} httperr.Response
// @Router /items/{id} [get]
func (h *ItemHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	item, err := h.q.GetItem(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemView(item))
}

// @Summary Create item
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateItemRequest true "Item"
// @Success 201 {object} resdto.ItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items [post]
func (h *ItemHandler) Create(c *gin.Context) {
	var req reqdto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	item, err := h.cmd.CreateItem(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.Header("Location", "/api/items/"+item.ID().String())

	// re-read so the response carries the stock rows created with the item
	view, err := h.q.GetItem(c.Request.Context(), item.ID())
	if err != nil {
		c.JSON(http.StatusCreated, resdto.FromItem(item))
		return
	}
	c.JSON(http.StatusCreated, resdto.FromItemView(view))
}

// @Summary Update item
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Param request body reqdto.UpdateItemRequest true "Fields to change"
// @Success 200 {object} resdto.ItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items/{id} [put]
func (h *ItemHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	item, err := h.cmd.UpdateItem(c.Request.Context(), id, req.ToCommand())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItem(item))
}

// @Summary Delete item
// @Description Removes the item and its stock. Refused while pending or confirmed bookings reference it.
// @Tags items
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /items/{id} [delete]
func (h *ItemHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.cmd.DeleteItem(c.Request.Context(), id); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Set location stock
// @Description Set how many units of the item a location holds. Refused if active bookings would no longer fit.
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Param locationId path string true "Location ID"
// @Param request body reqdto.SetStockRequest true "Stock"
// @Success 200 {object} resdto.StockResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /items/{id}/stock/{locationId} [put]
func (h *ItemHandler) SetStock(c *gin.Context) {
	itemID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	locationID, ok := parseUUIDParam(c, "locationId")
	if !ok {
		return
	}
	var req reqdto.SetStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}

	stock, err := h.cmd.SetLocationStock(c.Request.Context(), itemID, locationID, *req.Quantity, req.DailyRateCents)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStock(stock))
}

// @Summary Remove location stock
// @Description Stop carrying the item at a location. Refused while future bookings hold units there.
// @Tags items
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Param locationId path string true "Location ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /items/{id}/stock/{locationId} [delete]
func (h *ItemHandler) RemoveStock(c *gin.Context) {
	itemID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	locationID, ok := parseUUIDParam(c, "locationId")
	if !ok {
		return
	}
	if err := h.cmd.RemoveLocationStock(c.Request.Context(), itemID, locationID); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
