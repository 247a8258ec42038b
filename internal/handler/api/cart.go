package api

import (
	"net/http"

	"preloved-market/internal/domain/cart"
	reqdto "preloved-market/internal/handler/dto/request"
	resdto "preloved-market/internal/handler/dto/response"
	"preloved-market/internal/handler/httperr"
	"preloved-market/internal/usecase/commands"
	"preloved-market/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cmds commands.CartCommands
	q    queries.CartQueries
}

func NewCartHandler(cmds commands.CartCommands, q queries.CartQueries) *CartHandler {
	return &CartHandler{cmds: cmds, q: q}
}

// @Summary List my cart
// @Description Lapsed holds are never returned.
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.CartItemView
// @Router /cart [get]
func (h *CartHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	views, err := h.q.ListCart(c.Request.Context(), actor.ID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Hold an item
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AddToCartRequest true "Item"
// @Success 201 {object} resdto.CartReservationResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /cart [post]
func (h *CartHandler) Add(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.AddToCartRequest
	if !bindJSON(c, &req) {
		return
	}
	r, err := h.cmds.AddToCart(c.Request.Context(), actor.ID, req.ItemID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.renderHold(c, http.StatusCreated, r)
}

// @Summary Release a hold
// @Tags cart
// @Security BearerAuth
// @Param id path string true "Cart reservation ID"
// @Success 204
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /cart/{id} [delete]
func (h *CartHandler) Remove(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.RemoveFromCart(c.Request.Context(), actor.ID, id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Extend a hold
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param id path string true "Cart reservation ID"
// @Success 200 {object} resdto.CartReservationResponse
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /cart/{id}/extend [post]
func (h *CartHandler) Extend(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	r, err := h.cmds.ExtendReservation(c.Request.Context(), actor.ID, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.renderHold(c, http.StatusOK, r)
}

// @Summary Complete a sale
// @Description Staff only, called by the payment flow for a held item.
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param id path string true "Cart reservation ID"
// @Success 200 {object} queries.ItemView
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /cart/{id}/complete [post]
func (h *CartHandler) Complete(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	it, err := h.cmds.CompleteSale(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, queries.NewItemView(it))
}

func (h *CartHandler) renderHold(c *gin.Context, status int, r *cart.Reservation) {
	res, err := resdto.FromCartReservation(r)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(status, res)
}
