package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ratewise/store-ratings-api/internal/core/domain"
)

// PrincipalKey is the echo context key the verified principal is stored
// under.
const PrincipalKey = "principal"

// TokenVerifier resolves a bearer credential into a principal. Implemented
// by service.TokenService; an interface here so tests and secret rotation
// never touch shared state.
type TokenVerifier interface {
	Verify(token string) (*domain.Principal, error)
}

// Auth extracts the bearer token, verifies it, and injects the principal
// into the request context. A missing header, a malformed header, and an
// invalid or expired token are indistinguishable to the client: all 401.
func Auth(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			principal, err := verifier.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(PrincipalKey, principal)
			return next(c)
		}
	}
}
