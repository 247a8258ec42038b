package api

import (
	"net/http"

	reqdto "preloved-market/internal/handler/dto/request"
	resdto "preloved-market/internal/handler/dto/response"
	"preloved-market/internal/handler/httperr"
	"preloved-market/internal/usecase/commands"
	"preloved-market/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ItemHandler struct {
	cmds commands.ItemCommands
	q    queries.ItemQueries
}

func NewItemHandler(cmds commands.ItemCommands, q queries.ItemQueries) *ItemHandler {
	return &ItemHandler{cmds: cmds, q: q}
}

// @Summary Add an item to the wardrobe
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateItemRequest true "Item"
// @Success 201 {object} queries.ItemView
// @Failure 400 {object} httperr.Response
// @Router /items [post]
func (h *ItemHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.CreateItemRequest
	if !bindJSON(c, &req) {
		return
	}
	it, err := h.cmds.CreateItem(c.Request.Context(), actor.ID, req.Title)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, queries.NewItemView(it))
}

// @Summary List my wardrobe
// @Tags items
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.ItemView
// @Router /items [get]
func (h *ItemHandler) ListWardrobe(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	views, err := h.q.ListWardrobe(c.Request.Context(), actor.ID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Get item
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 200 {object} queries.ItemView
// @Failure 404 {object} httperr.Response
// @Router /items/{id} [get]
func (h *ItemHandler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetItem(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Link a QR label to an item
// @Description Puts the item on the rack. Either qr_code_id or a scanned code is required.
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Param request body reqdto.LinkItemRequest true "Label and price"
// @Success 200 {object} resdto.LinkResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /items/{id}/link [post]
func (h *ItemHandler) Link(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	itemID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.LinkItemRequest
	if !bindJSON(c, &req) {
		return
	}

	var (
		res *commands.LinkResult
		err error
	)
	if req.Scanned() {
		res, err = h.cmds.LinkScannedCode(c.Request.Context(), req.Code, itemID, actor.ID, *req.SellingPrice)
	} else {
		res, err = h.cmds.LinkQRCodeToItem(c.Request.Context(), *req.QRCodeID, itemID, actor.ID, *req.SellingPrice)
	}
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLinkResult(res))
}

// @Summary Take an item off the rack
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 200 {object} queries.ItemView
// @Failure 409 {object} httperr.Response
// @Router /items/{id}/withdraw [post]
func (h *ItemHandler) Withdraw(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	itemID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	it, err := h.cmds.WithdrawItem(c.Request.Context(), itemID, actor.ID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, queries.NewItemView(it))
}
