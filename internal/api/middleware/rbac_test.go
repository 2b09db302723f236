package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ratewise/store-ratings-api/internal/core/domain"
	"github.com/ratewise/store-ratings-api/internal/core/service"
)

func invokeRequireRole(t *testing.T, principal *domain.Principal, allowed ...domain.Role) *echo.HTTPError {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if principal != nil {
		c.Set(PrincipalKey, principal)
	}

	err := RequireRole(allowed...)(okHandler)(c)
	if err == nil {
		return nil
	}
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T: %v", err, err)
	}
	return httpErr
}

func TestRequireRole_Allowed(t *testing.T) {
	principal := &domain.Principal{UserID: 1, Email: "a@example.com", Role: domain.RoleAdmin}
	if httpErr := invokeRequireRole(t, principal, domain.RoleAdmin); httpErr != nil {
		t.Fatalf("expected success, got %v", httpErr)
	}
}

func TestRequireRole_MultipleRoles(t *testing.T) {
	principal := &domain.Principal{UserID: 1, Email: "a@example.com", Role: domain.RoleStoreOwner}
	if httpErr := invokeRequireRole(t, principal, domain.RoleAdmin, domain.RoleStoreOwner); httpErr != nil {
		t.Fatalf("expected success, got %v", httpErr)
	}
}

func TestRequireRole_Forbidden(t *testing.T) {
	principal := &domain.Principal{UserID: 1, Email: "a@example.com", Role: domain.RoleUser}
	httpErr := invokeRequireRole(t, principal, domain.RoleAdmin)
	if httpErr == nil || httpErr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %v", httpErr)
	}
}

func TestRequireRole_NoPrincipal(t *testing.T) {
	httpErr := invokeRequireRole(t, nil, domain.RoleAdmin)
	if httpErr == nil || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", httpErr)
	}
}

// Composed pipeline: Auth feeds RequireRole the way the router wires them.
func TestAuthThenRequireRole(t *testing.T) {
	tokens := service.NewTokenService("test-secret", time.Hour)
	userToken, err := tokens.Issue(&domain.User{ID: 2, Email: "u@example.com", Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	adminToken, err := tokens.Issue(&domain.User{ID: 1, Email: "root@example.com", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	handler := Auth(tokens)(RequireRole(domain.RoleAdmin)(okHandler))

	run := func(header string) error {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		return handler(e.NewContext(req, rec))
	}

	if err := run("Bearer " + adminToken); err != nil {
		t.Fatalf("admin token: expected success, got %v", err)
	}

	if httpErr, ok := run("Bearer " + userToken).(*echo.HTTPError); !ok || httpErr.Code != http.StatusForbidden {
		t.Fatalf("user token on admin route: expected 403")
	}

	if httpErr, ok := run("").(*echo.HTTPError); !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("no token: expected 401")
	}
}
