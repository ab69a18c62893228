package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/projethub/projethub/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, errorEnvelope) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var env errorEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return rec.Code, env
}

func TestErrorHandler_ValidationError(t *testing.T) {
	verr := domain.NewValidationError().
		Add("pseudo", "pseudo is required").
		Add("email", "email must be a valid email")

	code, env := renderError(t, verr)

	if code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", code)
	}
	if env.Name != "ValidationError" {
		t.Fatalf("name = %q, want ValidationError", env.Name)
	}
	if len(env.ValidationErrors) != 2 {
		t.Fatalf("validationErrors = %v, want both fields", env.ValidationErrors)
	}
	if env.Success {
		t.Fatal("success must be false on errors")
	}
}

func TestErrorHandler_StatusMapping(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
		wantName string
	}{
		{"unauthenticated", domain.ErrUnauthenticated, http.StatusUnauthorized, "UnauthorizedError"},
		{"expired token", domain.ErrTokenExpired, http.StatusUnauthorized, "UnauthorizedError"},
		{"invalid token", domain.ErrTokenInvalid, http.StatusUnauthorized, "UnauthorizedError"},
		{"bad credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "UnauthorizedError"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "ForbiddenError"},
		{"user missing", domain.ErrUserNotFound, http.StatusNotFound, "NotFoundError"},
		{"projet missing", domain.ErrProjetNotFound, http.StatusNotFound, "NotFoundError"},
		{"review missing", domain.ErrReviewNotFound, http.StatusNotFound, "NotFoundError"},
		{"echo error passthrough", echo.NewHTTPError(http.StatusBadRequest, "invalid payload"), http.StatusBadRequest, "BadRequestError"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, env := renderError(t, tc.err)
			if code != tc.wantCode {
				t.Fatalf("status = %d, want %d", code, tc.wantCode)
			}
			if env.Name != tc.wantName {
				t.Fatalf("name = %q, want %q", env.Name, tc.wantName)
			}
			if env.StatusCode != tc.wantCode {
				t.Fatalf("envelope statusCode = %d, want %d", env.StatusCode, tc.wantCode)
			}
		})
	}
}

func TestErrorHandler_UnknownErrorHidesDetails(t *testing.T) {
	code, env := renderError(t, errors.New("mongo connection reset"))

	if code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", code)
	}
	if env.Name != "InternalServerError" {
		t.Fatalf("name = %q, want InternalServerError", env.Name)
	}
	if env.Message != "internal server error" {
		t.Fatalf("message = %q, must not leak the cause", env.Message)
	}
}
