package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"coursehub/internal/auth"
	"coursehub/internal/config"
	"coursehub/internal/errors"
	"coursehub/internal/service"
)

// UserHandler handles user signup, login, logout, and the purchase list.
type UserHandler struct {
	authService     service.AuthService
	purchaseService service.PurchaseService
	cfg             *config.Config
}

// NewUserHandler creates a new user handler.
func NewUserHandler(authService service.AuthService, purchaseService service.PurchaseService, cfg *config.Config) *UserHandler {
	return &UserHandler{
		authService:     authService,
		purchaseService: purchaseService,
		cfg:             cfg,
	}
}

// Signup godoc
// @Summary Register a new user
// @Tags user
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Signup data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /user/signup [post]
func (h *UserHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	user, err := h.authService.Register(c.Request().Context(), req.FirstName, req.LastName, req.Email, req.Password)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, echo.Map{"user": user})
}

// Login godoc
// @Summary Login as user
// @Tags user
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /user/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return httpError(err)
	}

	setSessionCookie(c, h.cfg, token)
	return c.JSON(http.StatusOK, echo.Map{
		"token": token,
		"user":  user,
	})
}

// Logout godoc
// @Summary Clear the user session cookie
// @Tags user
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Router /user/logout [get]
func (h *UserHandler) Logout(c echo.Context) error {
	if !hasSessionCookie(c) {
		return httpError(errors.ErrNotAuthenticated)
	}
	clearSessionCookie(c, h.cfg)
	return c.JSON(http.StatusOK, echo.Map{"message": "you have logged out successfully"})
}

// Purchases godoc
// @Summary List the acting user's purchases with their courses
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /user/purchases [get]
func (h *UserHandler) Purchases(c echo.Context) error {
	userID, err := principalID(c, auth.VariantUser)
	if err != nil {
		return err
	}

	purchases, err := h.purchaseService.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"purchases": purchases})
}
