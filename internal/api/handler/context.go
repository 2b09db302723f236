package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ratewise/store-ratings-api/internal/api/middleware"
	"github.com/ratewise/store-ratings-api/internal/core/domain"
)

// ctxPrincipal extracts the principal injected by the Auth middleware.
// Its presence proves the middleware ran; a handler wired without Auth in
// front of it fails closed with 401 rather than acting unauthenticated.
func ctxPrincipal(c echo.Context) (*domain.Principal, error) {
	principal, _ := c.Get(middleware.PrincipalKey).(*domain.Principal)
	if principal == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return principal, nil
}
