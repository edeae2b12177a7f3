package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bazaarly/marketplace-system/internal/core/domain"
)

func handleError(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	return rec.Code, body.Error
}

func TestErrorHandler_DomainMappings(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"duplicate email", domain.ErrEmailTaken, http.StatusBadRequest, "Email already registered"},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
		{"invalid token", domain.ErrTokenInvalid, http.StatusUnauthorized, "token invalid or expired"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "access forbidden"},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{"product not found", domain.ErrProductNotFound, http.StatusNotFound, "product not found"},
		{"duplicate slug", domain.ErrDuplicateSlug, http.StatusConflict, "a product with this name already exists"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, msg := handleError(t, tc.err)
			if code != tc.wantCode || msg != tc.wantMsg {
				t.Fatalf("got (%d, %q), want (%d, %q)", code, msg, tc.wantCode, tc.wantMsg)
			}
		})
	}
}

func TestErrorHandler_ValidationJoinsMessages(t *testing.T) {
	code, msg := handleError(t, &domain.ValidationError{
		Messages: []string{"Name is required", "Please provide a valid email"},
	})
	if code != http.StatusBadRequest {
		t.Fatalf("code = %d, want 400", code)
	}
	if msg != "Name is required, Please provide a valid email" {
		t.Fatalf("msg = %q", msg)
	}
}

func TestErrorHandler_EchoErrorsPassThrough(t *testing.T) {
	code, msg := handleError(t, echo.NewHTTPError(http.StatusNotFound, "Not Found"))
	if code != http.StatusNotFound || msg != "Not Found" {
		t.Fatalf("got (%d, %q)", code, msg)
	}
}

func TestErrorHandler_UnknownErrorsAreGeneric(t *testing.T) {
	code, msg := handleError(t, errors.New("dial tcp 10.0.0.4:27017: i/o timeout"))
	if code != http.StatusInternalServerError {
		t.Fatalf("code = %d, want 500", code)
	}
	if msg != "An unexpected error occurred" {
		t.Fatalf("internal detail must not leak, got %q", msg)
	}
}

func TestErrorHandler_CommittedResponseUntouched(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = c.JSON(http.StatusCreated, map[string]string{"message": "done"})

	NewHTTPErrorHandler(zerolog.Nop())(errors.New("late failure"), c)

	if rec.Code != http.StatusCreated {
		t.Fatalf("committed response was rewritten: %d", rec.Code)
	}
}
