package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"preloved-market/internal/domain/user"
	"preloved-market/internal/handler/httperr"
	"preloved-market/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
)

// TokenValidator is satisfied by *jwt.Service.
type TokenValidator interface {
	Authenticate(token string) (user.Actor, error)
}

type AuthMiddleware struct {
	tokenValidator TokenValidator
}

const ctxActorKey = "actor"

var errMissingToken = errors.New("access token required")

func NewAuthMiddleware(tokenValidator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{tokenValidator: tokenValidator}
}

func bearerToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.Unauthorized(c, errMissingToken, "Access token required")
			return
		}

		actor, err := m.tokenValidator.Authenticate(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.Unauthorized(c, err, "Invalid or expired token")
			return
		}

		setActor(c, actor)
		c.Next()
	}
}

// RequireStaff must run after RequireAuth.
func (m *AuthMiddleware) RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			httperr.Unauthorized(c, errMissingToken, "Access token required")
			return
		}
		if !actor.Role.IsStaff() {
			httperr.AbortWithError(c, http.StatusForbidden, errors.New("staff role required"),
				"NOT_AUTHORIZED", "Insufficient permissions", nil)
			return
		}
		c.Next()
	}
}

func setActor(c *gin.Context, actor user.Actor) {
	c.Set(ctxActorKey, actor)
}

func GetActor(c *gin.Context) (user.Actor, bool) {
	v, exists := c.Get(ctxActorKey)
	if !exists {
		return user.Actor{}, false
	}
	actor, ok := v.(user.Actor)
	return actor, ok
}
