package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/ratewise/store-ratings-api/internal/core/domain"
)

type stubAuthService struct {
	registerErr error
	loginErr    error
	lastRole    domain.Role
	lastEmail   string
}

func (s *stubAuthService) Register(_ context.Context, name, email, _ string, role domain.Role) (*domain.User, error) {
	if s.registerErr != nil {
		return nil, s.registerErr
	}
	s.lastRole = role
	s.lastEmail = email
	return &domain.User{ID: 1, Name: name, Email: email, Role: role}, nil
}

func (s *stubAuthService) Login(_ context.Context, email, _ string) (string, *domain.User, error) {
	if s.loginErr != nil {
		return "", nil, s.loginErr
	}
	return "signed-token", &domain.User{ID: 1, Email: email, Role: domain.RoleUser}, nil
}

func (s *stubAuthService) ChangePassword(context.Context, int64, string, string) error {
	return nil
}

func postJSON(t *testing.T, h echo.HandlerFunc, target, body string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return rec, h(e.NewContext(req, rec))
}

func TestAuthHandler_Register(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAuthHandler(svc)

	rec, err := postJSON(t, h.Register, "/api/auth/register",
		`{"name":"Alice","email":"alice@example.com","password":"abc123","role":"user"}`)
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.lastRole != domain.RoleUser {
		t.Fatalf("unexpected role passed to service: %s", svc.lastRole)
	}

	var body authResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if body.User == nil || body.User.Email != "alice@example.com" {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
	if body.Token != "" {
		t.Fatalf("registration must not issue a token")
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("password material leaked into response: %s", rec.Body.String())
	}
}

func TestAuthHandler_RegisterValidation(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"email":"a@example.com","password":"abc123","role":"user"}`},
		{"bad email", `{"name":"Alice","email":"nope","password":"abc123","role":"user"}`},
		{"admin role", `{"name":"Alice","email":"a@example.com","password":"abc123","role":"admin"}`},
		{"unknown role", `{"name":"Alice","email":"a@example.com","password":"abc123","role":"boss"}`},
		{"not json", `name=Alice`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := postJSON(t, h.Register, "/api/auth/register", tt.body)
			httpErr, ok := err.(*echo.HTTPError)
			if !ok || httpErr.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %v", err)
			}
		})
	}
}

func TestAuthHandler_RegisterServiceError(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{registerErr: domain.ErrEmailTaken})

	_, err := postJSON(t, h.Register, "/api/auth/register",
		`{"name":"Alice","email":"alice@example.com","password":"abc123","role":"user"}`)
	if err != domain.ErrEmailTaken {
		t.Fatalf("expected service error to pass through, got %v", err)
	}
}

func TestAuthHandler_Login(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	rec, err := postJSON(t, h.Login, "/api/auth/login",
		`{"email":"alice@example.com","password":"abc123"}`)
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body authResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if body.Token != "signed-token" {
		t.Fatalf("expected token in response, got %q", body.Token)
	}
}

func TestAuthHandler_LoginFailure(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{loginErr: domain.ErrInvalidCredentials})

	_, err := postJSON(t, h.Login, "/api/auth/login",
		`{"email":"alice@example.com","password":"wrong1"}`)
	if err != domain.ErrInvalidCredentials {
		t.Fatalf("expected service error to pass through, got %v", err)
	}
}
