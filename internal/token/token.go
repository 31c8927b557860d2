// Package token issues and verifies the signed identity tokens presented in
// the x-auth-token header.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is returned by Verify for any failure: malformed token,
// bad signature or expired claims. Callers must not distinguish between
// these cases in responses.
var ErrInvalidToken = errors.New("invalid or expired token")

// Service signs and verifies JWTs with a shared HMAC-SHA256 secret.
type Service struct {
	secret   []byte
	lifetime time.Duration
	timeFunc func() time.Time
}

// claims carries the user identity. The userId key matches the claim name
// issued by the system this one replaces, so tokens stay interchangeable
// during a migration.
type claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// NewService creates a token service. The secret is shared across all
// deployments unless overridden in config, which is a known weakness kept
// for compatibility.
func NewService(secret string, lifetime time.Duration) *Service {
	return &Service{
		secret:   []byte(secret),
		lifetime: lifetime,
		timeFunc: time.Now,
	}
}

// Issue produces a signed token asserting userID, valid for the configured
// lifetime from the moment of issue.
func (s *Service) Issue(userID string) (string, error) {
	now := s.timeFunc()
	c := claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
			ID:        uuid.New().String(),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return t.SignedString(s.secret)
}

// Verify validates the signature and expiry of tokenString and returns the
// embedded user identifier.
func (s *Service) Verify(tokenString string) (string, error) {
	t, err := jwt.ParseWithClaims(
		tokenString,
		&claims{},
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ErrInvalidToken
			}
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithTimeFunc(func() time.Time { return s.timeFunc() }),
	)
	if err != nil {
		return "", ErrInvalidToken
	}
	c, ok := t.Claims.(*claims)
	if !ok || !t.Valid || c.UserID == "" {
		return "", ErrInvalidToken
	}
	return c.UserID, nil
}
