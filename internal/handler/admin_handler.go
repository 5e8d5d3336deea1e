package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"coursehub/internal/auth"
	"coursehub/internal/config"
	"coursehub/internal/errors"
	"coursehub/internal/service"
)

// AdminHandler handles admin signup, login, logout, and the own-course view.
type AdminHandler struct {
	authService   service.AuthService
	courseService service.CourseService
	cfg           *config.Config
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(authService service.AuthService, courseService service.CourseService, cfg *config.Config) *AdminHandler {
	return &AdminHandler{
		authService:   authService,
		courseService: courseService,
		cfg:           cfg,
	}
}

// Signup godoc
// @Summary Register a new admin
// @Tags admin
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Signup data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/signup [post]
func (h *AdminHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	admin, err := h.authService.Register(c.Request().Context(), req.FirstName, req.LastName, req.Email, req.Password)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, echo.Map{"admin": admin})
}

// Login godoc
// @Summary Login as admin
// @Tags admin
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /admin/login [post]
func (h *AdminHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	token, admin, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return httpError(err)
	}

	setSessionCookie(c, h.cfg, token)
	return c.JSON(http.StatusOK, echo.Map{
		"token": token,
		"admin": admin,
	})
}

// Logout godoc
// @Summary Clear the admin session cookie
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Router /admin/logout [get]
func (h *AdminHandler) Logout(c echo.Context) error {
	if !hasSessionCookie(c) {
		return httpError(errors.ErrNotAuthenticated)
	}
	clearSessionCookie(c, h.cfg)
	return c.JSON(http.StatusOK, echo.Map{"message": "you have logged out successfully"})
}

// MyCourses godoc
// @Summary List the acting admin's own courses
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/my-courses [get]
func (h *AdminHandler) MyCourses(c echo.Context) error {
	adminID, err := principalID(c, auth.VariantAdmin)
	if err != nil {
		return err
	}

	courses, err := h.courseService.ListByCreator(c.Request().Context(), adminID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"courses": courses})
}
