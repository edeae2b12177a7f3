package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bazaarly/marketplace-system/internal/core/domain"
	"github.com/bazaarly/marketplace-system/internal/core/ports"
)

// UserHandler serves account views for authenticated callers.
type UserHandler struct {
	repo ports.UserRepository
}

func NewUserHandler(repo ports.UserRepository) *UserHandler {
	return &UserHandler{repo: repo}
}

type listUsersResponse struct {
	Users []domain.User `json:"users"`
}

// List handles GET /v1/users — admin-only account listing. Credential hashes
// are excluded by the repository's projection.
//
// @Summary      List all accounts
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listUsersResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.repo.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listUsersResponse{Users: users})
}

// Me handles GET /v1/me — the caller's own profile.
//
// @Summary      Get own profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      401  {object}  errorResponse
// @Router       /v1/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	user, err := h.repo.FindByID(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

type availabilityRequest struct {
	IsAvailable bool                `json:"is_available"`
	Location    *domain.Coordinates `json:"location,omitempty"`
}

// UpdateAvailability handles PATCH /v1/delivery/availability — delivery
// agents toggle their availability and optionally report a location.
//
// @Summary      Update delivery availability
// @Tags         delivery
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      availabilityRequest  true  "Availability and optional location"
// @Success      200   {object}  map[string]string
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/delivery/availability [patch]
func (h *UserHandler) UpdateAvailability(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req availabilityRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	if err := h.repo.UpdateAvailability(c.Request().Context(), userID, req.IsAvailable, req.Location); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "availability updated"})
}
