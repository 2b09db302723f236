package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ratewise/store-ratings-api/internal/core/domain"
	"github.com/ratewise/store-ratings-api/internal/core/service"
)

func renderError(t *testing.T, err error) (int, errorResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	return rec.Code, body
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"weak password", domain.ErrWeakPassword, http.StatusBadRequest, domain.ErrWeakPassword.Error()},
		{"invalid role", domain.ErrInvalidRole, http.StatusBadRequest, domain.ErrInvalidRole.Error()},
		{"invalid score", domain.ErrInvalidScore, http.StatusBadRequest, domain.ErrInvalidScore.Error()},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{"invalid token", domain.ErrInvalidToken, http.StatusUnauthorized, "invalid token"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "forbidden"},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{"store not found", domain.ErrStoreNotFound, http.StatusNotFound, "store not found"},
		{"email taken", domain.ErrEmailTaken, http.StatusConflict, "email already registered"},
		{"duplicate rating", domain.ErrDuplicateRating, http.StatusConflict, "store already rated"},
		{"owner has store", domain.ErrOwnerHasStore, http.StatusConflict, "owner already has a store"},
		{"throttled", service.ErrTooManyAttempts, http.StatusTooManyRequests, "too many failed login attempts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := renderError(t, tt.err)
			if code != tt.wantCode {
				t.Fatalf("expected status %d, got %d", tt.wantCode, code)
			}
			if body.Error != tt.wantMsg {
				t.Fatalf("expected message %q, got %q", tt.wantMsg, body.Error)
			}
		})
	}
}

func TestHTTPErrorHandler_EchoError(t *testing.T) {
	code, body := renderError(t, echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header"))
	if code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
	if body.Error != "missing authorization header" {
		t.Fatalf("unexpected message: %q", body.Error)
	}
}

func TestHTTPErrorHandler_WrappedDomainError(t *testing.T) {
	wrapped := errors.Join(errors.New("insert rating"), domain.ErrDuplicateRating)
	code, _ := renderError(t, wrapped)
	if code != http.StatusConflict {
		t.Fatalf("expected 409 for wrapped domain error, got %d", code)
	}
}

func TestHTTPErrorHandler_UnexpectedError(t *testing.T) {
	code, body := renderError(t, errors.New("pq: connection refused"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if body.Error != "internal server error" {
		t.Fatalf("storage error text must not reach clients, got %q", body.Error)
	}
}

func TestHTTPErrorHandler_CorruptCredential(t *testing.T) {
	code, body := renderError(t, domain.ErrCorruptCredential)
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if body.Error != "internal server error" {
		t.Fatalf("corrupt credential detail must not reach clients, got %q", body.Error)
	}
}
