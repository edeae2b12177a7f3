package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bazaarly/marketplace-system/internal/api/middleware"
	"github.com/bazaarly/marketplace-system/internal/core/domain"
	"github.com/bazaarly/marketplace-system/internal/core/service"
)

func authedGet(t *testing.T, target, userID string, role domain.Role) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.CtxUserID, userID)
	c.Set(middleware.CtxRole, string(role))
	return c, rec
}

func TestDashboardHome_VendorMenu(t *testing.T) {
	repo := newMemUsers()
	reg := service.NewRegistrationService(repo, nil, zerolog.Nop())
	result, err := reg.Register(context.Background(), domain.Registration{
		Name:         "Jo Smith",
		Email:        "jo@x.com",
		Password:     "secret1",
		Role:         domain.RoleVendor,
		ShopName:     "Jo Shop",
		ShopAddress:  "1 Main St",
		BusinessType: "grocery",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	h := NewDashboardHandler(repo)
	c, rec := authedGet(t, "/dashboard/vendor", result.UserID, domain.RoleVendor)
	if err := h.Home(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	body := decodeBody(t, rec)
	if body["name"] != "Jo Smith" || body["role"] != "VENDOR" {
		t.Fatalf("unexpected body: %v", body)
	}
	menu, _ := body["menu"].([]any)
	if len(menu) != len(domain.MenuFor(domain.RoleVendor)) {
		t.Fatalf("menu length = %d", len(menu))
	}
}

func TestDashboardHome_UnauthenticatedContext(t *testing.T) {
	h := NewDashboardHandler(newMemUsers())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dashboard/customer", nil)
	rec := httptest.NewRecorder()
	err := h.Home(e.NewContext(req, rec))

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestUpdateAvailability(t *testing.T) {
	repo := newMemUsers()
	h := NewUserHandler(repo)

	e := echo.New()
	body := `{"is_available":false,"location":{"lat":23.81,"lng":90.41}}`
	req := httptest.NewRequest(http.MethodPatch, "/v1/delivery/availability", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.CtxUserID, "u_1")
	c.Set(middleware.CtxRole, string(domain.RoleDelivery))

	if err := h.UpdateAvailability(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
