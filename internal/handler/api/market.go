package api

import (
	"context"
	"net/http"

	reqdto "preloved-market/internal/handler/dto/request"
	"preloved-market/internal/handler/httperr"
	"preloved-market/internal/usecase/commands"
	"preloved-market/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MarketHandler struct {
	cmds     commands.MarketCommands
	q        queries.MarketQueries
	capacity queries.CapacityQueries
}

func NewMarketHandler(cmds commands.MarketCommands, q queries.MarketQueries, capacity queries.CapacityQueries) *MarketHandler {
	return &MarketHandler{cmds: cmds, q: q, capacity: capacity}
}

// @Summary List markets
// @Tags markets
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.MarketView
// @Failure 401 {object} httperr.Response
// @Router /markets [get]
func (h *MarketHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Get market
// @Tags markets
// @Produce json
// @Security BearerAuth
// @Param id path string true "Market ID"
// @Success 200 {object} queries.MarketView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /markets/{id} [get]
func (h *MarketHandler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Create market
// @Description Staff only. max_hangers defaults to max_vendors times the per-vendor allowance.
// @Tags markets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateMarketRequest true "Market"
// @Success 201 {object} queries.MarketView
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /markets [post]
func (h *MarketHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.CreateMarketRequest
	if !bindJSON(c, &req) {
		return
	}
	m, err := h.cmds.CreateMarket(c.Request.Context(), actor, req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, queries.NewMarketView(m))
}

// @Summary Resize market
// @Description Staff only. A limit below current usage is rejected.
// @Tags markets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Market ID"
// @Param request body reqdto.UpdateCapacityRequest true "New limits"
// @Success 200 {object} queries.MarketView
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /markets/{id}/capacity [patch]
func (h *MarketHandler) UpdateCapacity(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateCapacityRequest
	if !bindJSON(c, &req) {
		return
	}
	m, err := h.cmds.UpdateCapacity(c.Request.Context(), actor, id, req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, queries.NewMarketView(m))
}

// @Summary Change market status
// @Tags markets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Market ID"
// @Param request body reqdto.ChangeStatusRequest true "Target status"
// @Success 200 {object} queries.MarketView
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /markets/{id}/status [put]
func (h *MarketHandler) ChangeStatus(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.ChangeStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	m, err := h.cmds.ChangeStatus(c.Request.Context(), actor, id, req.ToDomain())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, queries.NewMarketView(m))
}

// @Summary Delete market
// @Description Staff only. Active markets cannot be deleted.
// @Tags markets
// @Security BearerAuth
// @Param id path string true "Market ID"
// @Success 204
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /markets/{id} [delete]
func (h *MarketHandler) Delete(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.DeleteMarket(c.Request.Context(), actor, id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Market capacity for display
// @Description May lag behind writes by the cache TTL.
// @Tags markets
// @Produce json
// @Param id path string true "Market ID"
// @Success 200 {object} queries.CapacityView
// @Failure 404 {object} httperr.Response
// @Router /markets/{id}/capacity [get]
func (h *MarketHandler) DisplayCapacity(c *gin.Context) {
	h.capacityView(c, h.capacity.GetDisplayCapacity)
}

// @Summary Live market capacity
// @Tags markets
// @Produce json
// @Security BearerAuth
// @Param id path string true "Market ID"
// @Success 200 {object} queries.CapacityView
// @Failure 404 {object} httperr.Response
// @Router /markets/{id}/capacity/live [get]
func (h *MarketHandler) LiveCapacity(c *gin.Context) {
	h.capacityView(c, h.capacity.GetMarketCapacity)
}

func (h *MarketHandler) capacityView(c *gin.Context, get func(ctx context.Context, id uuid.UUID) (*queries.CapacityView, error)) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	view, err := get(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
