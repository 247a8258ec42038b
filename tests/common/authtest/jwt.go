//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"preloved-market/internal/domain/user"
	"preloved-market/internal/pkg/config"
	"preloved-market/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper mints the tokens the identity provider would issue.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, err := jwt.NewService(h.cfg.Secret, duration).Issue(user.Actor{ID: userID, Role: role})
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, -time.Minute).Issue(user.Actor{ID: userID, Role: role})
	require.NoError(t, err)
	return token
}

// Actor returns a fresh identity of the role with its bearer token.
func (h *JWTHelper) Actor(t *testing.T, role user.Role) (user.Actor, string) {
	t.Helper()
	actor := user.Actor{ID: uuid.New(), Role: role}
	return actor, h.GenerateToken(t, actor.ID, role)
}
