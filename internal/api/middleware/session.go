package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/projethub/projethub/internal/core/domain"
	"github.com/projethub/projethub/internal/core/policy"
	"github.com/projethub/projethub/internal/core/token"
)

// CookieName is the cookie the session token travels in.
const CookieName = "token"

// IdentityKey is the echo context key the resolved identity is stored under.
const IdentityKey = "identity"

// Session locates the credential cookie, verifies it, and injects the
// resolved identity into the request context. It is purely a gate over the
// token: it never consults the database, so a deleted user's still-valid
// token stays authenticated until it expires.
func Session(tokens *token.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				return domain.ErrUnauthenticated
			}

			identity, err := tokens.Verify(cookie.Value)
			if err != nil {
				// Expired vs invalid is preserved for the error envelope.
				return err
			}

			c.Set(IdentityKey, identity)
			return next(c)
		}
	}
}

// RequireAdmin gates a route group to admin identities. It must run after
// Session.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := c.Get(IdentityKey).(domain.Identity)
			if !ok {
				return domain.ErrUnauthenticated
			}
			if !policy.IsAdmin(identity) {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
