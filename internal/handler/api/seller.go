package api

import (
	"net/http"

	reqdto "preloved-market/internal/handler/dto/request"
	resdto "preloved-market/internal/handler/dto/response"
	"preloved-market/internal/handler/httperr"
	"preloved-market/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type SellerHandler struct {
	cmds commands.SellerCommands
}

func NewSellerHandler(cmds commands.SellerCommands) *SellerHandler {
	return &SellerHandler{cmds: cmds}
}

// @Summary Sync a seller profile
// @Description Staff only. Receives verification flags from onboarding.
// @Tags sellers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Seller ID"
// @Param request body reqdto.SyncSellerRequest true "Profile"
// @Success 200 {object} resdto.SellerResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /sellers/{id} [put]
func (h *SellerHandler) Sync(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.SyncSellerRequest
	if !bindJSON(c, &req) {
		return
	}
	p, err := h.cmds.SyncProfile(c.Request.Context(), actor, id, req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromSeller(p)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
