package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bazaarly/marketplace-system/internal/api/metrics"
	"github.com/bazaarly/marketplace-system/internal/core/domain"
	"github.com/bazaarly/marketplace-system/internal/core/ports"
)

type AuthHandler struct {
	registration ports.RegistrationService
	auth         ports.AuthService
}

func NewAuthHandler(registration ports.RegistrationService, auth ports.AuthService) *AuthHandler {
	return &AuthHandler{registration: registration, auth: auth}
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	Avatar   string `json:"avatar,omitempty"`

	// Vendor fields.
	ShopName     string `json:"shopName,omitempty"`
	ShopAddress  string `json:"shopAddress,omitempty"`
	BusinessType string `json:"businessType,omitempty"`

	// Delivery agent fields.
	VehicleType  string   `json:"vehicleType,omitempty"`
	DeliveryZone []string `json:"deliveryZone,omitempty"`
}

type signupResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
	Role    string `json:"role"`
}

type signinRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signinResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// Signup provisions a new account.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Account details; vendor and delivery roles require their extra fields"
// @Success      201   {object}  signupResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	result, err := h.registration.Register(c.Request().Context(), domain.Registration{
		Name:         req.Name,
		Email:        req.Email,
		Password:     req.Password,
		Role:         domain.Role(req.Role),
		Phone:        req.Phone,
		Address:      req.Address,
		Avatar:       req.Avatar,
		ShopName:     req.ShopName,
		ShopAddress:  req.ShopAddress,
		BusinessType: req.BusinessType,
		VehicleType:  req.VehicleType,
		DeliveryZone: req.DeliveryZone,
	})
	if err != nil {
		var ve *domain.ValidationError
		switch {
		case errors.As(err, &ve):
			metrics.RegistrationErrorsTotal.WithLabelValues("validation").Inc()
			return c.JSON(http.StatusBadRequest, errorResponse{Error: ve.Error()})
		case errors.Is(err, domain.ErrEmailTaken):
			metrics.RegistrationErrorsTotal.WithLabelValues("duplicate").Inc()
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "Email already registered"})
		default:
			metrics.RegistrationErrorsTotal.WithLabelValues("storage").Inc()
			return err
		}
	}

	metrics.RegistrationsTotal.WithLabelValues(string(result.Role)).Inc()
	return c.JSON(http.StatusCreated, signupResponse{
		Message: "User created successfully",
		UserID:  result.UserID,
		Role:    string(result.Role),
	})
}

// Signin authenticates an account and issues a session token.
//
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signinRequest  true  "Credentials"
// @Success      200   {object}  signinResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/signin [post]
func (h *AuthHandler) Signin(c echo.Context) error {
	var req signinRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	token, user, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "Invalid email or password"})
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, signinResponse{Token: token, User: user})
}

// Signout revokes the presented session token.
//
// @Summary      Sign out
// @Tags         auth
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  errorResponse
// @Router       /auth/signout [post]
func (h *AuthHandler) Signout(c echo.Context) error {
	token := rawBearerToken(c)
	if token == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
	}

	if err := h.auth.Logout(c.Request().Context(), token); err != nil {
		if errors.Is(err, domain.ErrTokenInvalid) {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Verify completes the email-verification flow.
//
// @Summary      Verify an email address
// @Tags         auth
// @Produce      json
// @Param        token  query     string  true  "Verification token"
// @Success      200    {object}  map[string]string
// @Failure      400    {object}  errorResponse
// @Router       /auth/verify [get]
func (h *AuthHandler) Verify(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "token is required"})
	}

	if err := h.auth.VerifyEmail(c.Request().Context(), token); err != nil {
		if errors.Is(err, domain.ErrTokenInvalid) || errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid or expired verification token"})
		}
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Email verified"})
}

// rawBearerToken returns the bearer token without parsing it; the auth
// service verifies the signature before acting on it.
func rawBearerToken(c echo.Context) string {
	header := c.Request().Header.Get("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
