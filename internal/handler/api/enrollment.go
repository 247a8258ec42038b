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

// EnrollmentHandler serves the seller side of a market: the vendor slot, hanger rentals and
// the rack quota they produce.
type EnrollmentHandler struct {
	enrollments commands.EnrollmentCommands
	hangers     commands.HangerCommands
	quota       queries.QuotaQueries
}

func NewEnrollmentHandler(enrollments commands.EnrollmentCommands, hangers commands.HangerCommands, quota queries.QuotaQueries) *EnrollmentHandler {
	return &EnrollmentHandler{enrollments: enrollments, hangers: hangers, quota: quota}
}

// @Summary Register for a market
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Market ID"
// @Success 201 {object} resdto.EnrollmentResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /markets/{id}/enrollments [post]
func (h *EnrollmentHandler) Register(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	marketID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	e, err := h.enrollments.Register(c.Request.Context(), actor.ID, marketID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromEnrollment(e)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// @Summary Leave a market
// @Tags enrollments
// @Security BearerAuth
// @Param id path string true "Market ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /markets/{id}/enrollments [delete]
func (h *EnrollmentHandler) Unregister(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	marketID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.enrollments.Unregister(c.Request.Context(), actor.ID, marketID); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Rent hangers
// @Description The rental stays pending until confirmed and lapses after the pending TTL.
// @Tags hangers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Market ID"
// @Param request body reqdto.RentHangersRequest true "Hanger count"
// @Success 201 {object} resdto.RentalResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /markets/{id}/hanger-rentals [post]
func (h *EnrollmentHandler) RentHangers(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	marketID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.RentHangersRequest
	if !bindJSON(c, &req) {
		return
	}
	r, err := h.hangers.RentHangers(c.Request.Context(), actor.ID, marketID, req.Count)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromRental(r)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// @Summary Confirm a hanger rental
// @Description Staff only, called once the rental fee is settled.
// @Tags hangers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rental ID"
// @Success 200 {object} resdto.RentalResponse
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /hanger-rentals/{id}/confirm [post]
func (h *EnrollmentHandler) ConfirmRental(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	r, err := h.hangers.ConfirmRental(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromRental(r)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Cancel a hanger rental
// @Tags hangers
// @Security BearerAuth
// @Param id path string true "Rental ID"
// @Success 204
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /hanger-rentals/{id} [delete]
func (h *EnrollmentHandler) CancelRental(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.hangers.CancelRental(c.Request.Context(), actor, id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Rack quota
// @Description Advisory; linking checks the quota again before it commits.
// @Tags hangers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Market ID"
// @Success 200 {object} queries.QuotaView
// @Router /markets/{id}/quota [get]
func (h *EnrollmentHandler) Quota(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	marketID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	view, err := h.quota.CanLink(c.Request.Context(), actor.ID, marketID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
