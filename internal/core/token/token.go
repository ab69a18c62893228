// Package token issues and verifies the signed session credentials carried in
// the auth cookie. A token embeds the caller's id and role plus an expiry; it
// is the only thing the session middleware trusts, so verification rejects
// anything not signed with the server secret.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/projethub/projethub/internal/core/domain"
)

const defaultTTL = time.Hour

// Service signs and verifies session tokens with a shared HMAC secret.
type Service struct {
	secret []byte
	ttl    time.Duration
}

func NewService(secret string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Service{secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured token lifetime. The session cookie Max-Age is
// derived from it so the two can never drift apart.
func (s *Service) TTL() time.Duration {
	return s.ttl
}

// Issue signs a token carrying the identity's id and role, expiring after the
// configured TTL.
func (s *Service) Issue(id domain.Identity) (string, error) {
	claims := jwt.MapClaims{
		"id":   id.ID,
		"role": string(id.Role),
		"exp":  time.Now().Add(s.ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify parses and validates raw, returning the embedded identity.
// Past-expiry tokens fail with domain.ErrTokenExpired; anything else wrong
// with the token (bad signature, foreign key, tampered payload, unexpected
// algorithm, missing expiry, malformed claims) fails with
// domain.ErrTokenInvalid.
func (s *Service) Verify(raw string) (domain.Identity, error) {
	if raw == "" {
		return domain.Identity{}, domain.ErrTokenInvalid
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.Identity{}, domain.ErrTokenExpired
		}
		return domain.Identity{}, domain.ErrTokenInvalid
	}
	if !tkn.Valid {
		return domain.Identity{}, domain.ErrTokenInvalid
	}

	id, _ := claims["id"].(string)
	rawRole, _ := claims["role"].(string)
	role, err := domain.ParseRole(rawRole)
	if err != nil || id == "" {
		return domain.Identity{}, domain.ErrTokenInvalid
	}

	return domain.Identity{ID: id, Role: role}, nil
}
