// Package jwt reads the identity provider's HS256 tokens. The subject is the user id and
// the role claim one of the user roles.
package jwt

import (
	"errors"
	"time"

	"preloved-market/internal/domain/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

const clockSkew = 30 * time.Second

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type Service struct {
	secretKey []byte
	ttl       time.Duration
	parser    *jwt.Parser
}

func NewService(secretKey string, ttl time.Duration) *Service {
	return &Service{
		secretKey: []byte(secretKey),
		ttl:       ttl,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
			jwt.WithLeeway(clockSkew),
		),
	}
}

// Issue mints a token the way the identity provider does. Only tooling and tests call it.
func (s *Service) Issue(actor user.Actor) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: actor.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actor.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secretKey)
}

// Authenticate resolves a token to the caller. Unknown roles and malformed subjects are
// reported as ErrInvalidToken.
func (s *Service) Authenticate(tokenString string) (user.Actor, error) {
	var claims Claims
	_, err := s.parser.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return s.secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return user.Actor{}, ErrExpiredToken
		}
		return user.Actor{}, ErrInvalidToken
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return user.Actor{}, ErrInvalidToken
	}
	role, err := user.NewRole(claims.Role)
	if err != nil {
		return user.Actor{}, ErrInvalidToken
	}
	return user.Actor{ID: id, Role: role}, nil
}
