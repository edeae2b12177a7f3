package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bazaarly/marketplace-system/internal/core/domain"
	"github.com/bazaarly/marketplace-system/internal/core/ports"
)

// DashboardHandler serves the role-scoped dashboard entry points. Each route
// sits behind a page boundary, so an unauthenticated or wrong-role visitor is
// redirected to sign-in before this handler runs.
type DashboardHandler struct {
	repo ports.UserRepository
}

func NewDashboardHandler(repo ports.UserRepository) *DashboardHandler {
	return &DashboardHandler{repo: repo}
}

type dashboardResponse struct {
	Name string            `json:"name"`
	Role string            `json:"role"`
	Menu []domain.MenuItem `json:"menu"`
}

// Home resolves the caller's role to its fixed navigation descriptor.
func (h *DashboardHandler) Home(c echo.Context) error {
	userID, role, err := ctxClaims(c)
	if err != nil {
		return err
	}

	name := ""
	if user, err := h.repo.FindByID(c.Request().Context(), userID); err == nil {
		name = user.Name
	}

	return c.JSON(http.StatusOK, dashboardResponse{
		Name: name,
		Role: role,
		Menu: domain.MenuFor(domain.Role(role)),
	})
}
