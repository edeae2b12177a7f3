package middleware

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/bazaarly/marketplace-system/internal/api/metrics"
	"github.com/bazaarly/marketplace-system/internal/core/domain"
)

// signinPath is where page boundaries send unauthenticated visitors.
const signinPath = "/auth/signin"

// RequireAuth admits any authenticated caller, regardless of role.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(CtxRole).(string)
			if role == "" {
				metrics.AuthzDeniedTotal.WithLabelValues("unauthenticated").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			return next(c)
		}
	}
}

// RequireRole enforces an exact role match for API boundaries: 401 when the
// context is unauthenticated, 403 when the caller holds a different role.
// There is no role hierarchy; an admin does not implicitly pass a vendor
// boundary.
func RequireRole(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[string(r)] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(CtxRole).(string)
			if role == "" {
				metrics.AuthzDeniedTotal.WithLabelValues("unauthenticated").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			if _, ok := allowed[role]; !ok {
				metrics.AuthzDeniedTotal.WithLabelValues("forbidden").Inc()
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}

// RequireRolePage is the page-boundary variant of RequireRole: instead of a
// JSON error it redirects to the sign-in page, carrying the original URL so
// the visitor lands back where they started after authenticating.
func RequireRolePage(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[string(r)] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(CtxRole).(string)
			if _, ok := allowed[role]; role == "" || !ok {
				kind := "forbidden"
				if role == "" {
					kind = "unauthenticated"
				}
				metrics.AuthzDeniedTotal.WithLabelValues(kind).Inc()

				callback := url.QueryEscape(c.Request().URL.RequestURI())
				return c.Redirect(http.StatusFound, signinPath+"?callbackUrl="+callback)
			}
			return next(c)
		}
	}
}
