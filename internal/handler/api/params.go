package api

import (
	"preloved-market/internal/domain/user"
	"preloved-market/internal/handler/httperr"
	"preloved-market/internal/handler/middleware"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errNoActor = errors.New("no actor on authenticated route")

// pathUUID aborts with 400 when the path segment is not a UUID.
func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.BadRequest(c, errors.Wrapf(err, "path param %s", name), "Invalid "+name+" format")
		return uuid.Nil, false
	}
	return id, true
}

func requireActor(c *gin.Context) (user.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.Abort(c, errNoActor)
		return user.Actor{}, false
	}
	return actor, true
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return false
	}
	return true
}
