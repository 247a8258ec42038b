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

type QRCodeHandler struct {
	cmds commands.QRCodeCommands
	q    queries.ItemQueries
}

func NewQRCodeHandler(cmds commands.QRCodeCommands, q queries.ItemQueries) *QRCodeHandler {
	return &QRCodeHandler{cmds: cmds, q: q}
}

// @Summary Mint a QR batch
// @Description Staff only. Codes are numbered PREFIX-BATCH-NNNNN.
// @Tags qr-codes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Market ID"
// @Param request body reqdto.MintBatchRequest true "Batch"
// @Success 201 {object} resdto.BatchResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /markets/{id}/qr-batches [post]
func (h *QRCodeHandler) MintBatch(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	marketID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.MintBatchRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.cmds.MintBatch(c.Request.Context(), actor, marketID, req.Prefix, req.Size)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	out, err := resdto.FromMintResult(res)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

// @Summary Invalidate a QR code
// @Description Staff only. A linked code cannot be invalidated.
// @Tags qr-codes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "QR code ID"
// @Param request body reqdto.InvalidateQRCodeRequest true "Reason"
// @Success 200 {object} queries.QRCodeView
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /qr-codes/{id}/invalidate [post]
func (h *QRCodeHandler) Invalidate(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.InvalidateQRCodeRequest
	if !bindJSON(c, &req) {
		return
	}
	q, err := h.cmds.InvalidateQRCode(c.Request.Context(), actor, id, req.Reason)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, queries.NewQRCodeView(q))
}

// @Summary Look up a scanned label
// @Tags qr-codes
// @Produce json
// @Security BearerAuth
// @Param code query string true "Scanned code"
// @Success 200 {object} queries.QRCodeView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /qr-codes/lookup [get]
func (h *QRCodeHandler) Lookup(c *gin.Context) {
	view, err := h.q.LookupQRCode(c.Request.Context(), c.Query("code"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary List the codes of a batch
// @Tags qr-codes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Batch ID"
// @Success 200 {array} queries.QRCodeView
// @Router /qr-batches/{id}/codes [get]
func (h *QRCodeHandler) ListBatchCodes(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	views, err := h.q.ListBatchCodes(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}
