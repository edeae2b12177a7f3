package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/bazaarly/marketplace-system/internal/core/domain"
)

func newBoundaryContext(t *testing.T, target string, role string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != "" {
		c.Set(CtxUserID, "user_1")
		c.Set(CtxRole, role)
	}
	return c, rec
}

func okHandler(called *bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		*called = true
		return c.NoContent(http.StatusOK)
	}
}

func TestRequireAuth_AdmitsAnyRole(t *testing.T) {
	for _, role := range domain.Roles {
		c, _ := newBoundaryContext(t, "/v1/me", string(role))
		called := false
		if err := RequireAuth()(okHandler(&called))(c); err != nil {
			t.Fatalf("role %s: unexpected error: %v", role, err)
		}
		if !called {
			t.Fatalf("role %s: handler not called", role)
		}
	}
}

func TestRequireAuth_RejectsUnauthenticated(t *testing.T) {
	c, _ := newBoundaryContext(t, "/v1/me", "")
	called := false
	err := RequireAuth()(okHandler(&called))(c)
	if called {
		t.Fatalf("handler called without authentication")
	}
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestRequireRole_AdmitsMatchingRole(t *testing.T) {
	c, _ := newBoundaryContext(t, "/v1/products", string(domain.RoleVendor))
	called := false
	if err := RequireRole(domain.RoleVendor)(okHandler(&called))(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Fatalf("handler not called")
	}
}

func TestRequireRole_NoHierarchy(t *testing.T) {
	// An admin does not pass a vendor boundary.
	c, rec := newBoundaryContext(t, "/v1/products", string(domain.RoleAdmin))
	called := false
	if err := RequireRole(domain.RoleVendor)(okHandler(&called))(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if called {
		t.Fatalf("handler called for mismatched role")
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRequireRole_UnauthenticatedIs401(t *testing.T) {
	c, _ := newBoundaryContext(t, "/v1/users", "")
	called := false
	err := RequireRole(domain.RoleAdmin)(okHandler(&called))(c)
	if called {
		t.Fatalf("handler called without authentication")
	}
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestRequireRolePage_AdmitsMatchingRole(t *testing.T) {
	c, _ := newBoundaryContext(t, "/dashboard/vendor", string(domain.RoleVendor))
	called := false
	if err := RequireRolePage(domain.RoleVendor)(okHandler(&called))(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Fatalf("handler not called")
	}
}

func TestRequireRolePage_RedirectsWithCallback(t *testing.T) {
	cases := []struct {
		name string
		role string
	}{
		{name: "unauthenticated", role: ""},
		{name: "wrong role", role: string(domain.RoleCustomer)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newBoundaryContext(t, "/dashboard/admin", tc.role)
			called := false
			if err := RequireRolePage(domain.RoleAdmin)(okHandler(&called))(c); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if called {
				t.Fatalf("handler called")
			}
			if rec.Code != http.StatusFound {
				t.Fatalf("expected 302, got %d", rec.Code)
			}
			want := "/auth/signin?callbackUrl=%2Fdashboard%2Fadmin"
			if got := rec.Header().Get("Location"); got != want {
				t.Fatalf("redirect location = %q, want %q", got, want)
			}
		})
	}
}
