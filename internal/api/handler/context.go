package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bazaarly/marketplace-system/internal/api/middleware"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// ctxClaims extracts the session claims injected by the Session middleware
// and fast-fails before any service call: a non-empty role proves an
// authenticated context, and every authenticated token carries its subject.
func ctxClaims(c echo.Context) (userID string, role string, err error) {
	role, _ = c.Get(middleware.CtxRole).(string)
	if role == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	userID, _ = c.Get(middleware.CtxUserID).(string)
	if userID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "token missing subject")
	}

	return userID, role, nil
}
