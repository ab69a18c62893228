package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/projethub/projethub/internal/api/middleware"
	"github.com/projethub/projethub/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Session middleware.
// Absence means the route was wired without the middleware; treat it as an
// unauthenticated request rather than panicking.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	identity, ok := c.Get(middleware.IdentityKey).(domain.Identity)
	if !ok || identity.ID == "" {
		return domain.Identity{}, domain.ErrUnauthenticated
	}
	return identity, nil
}
