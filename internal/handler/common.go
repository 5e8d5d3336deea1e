package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"coursehub/internal/auth"
	"coursehub/internal/config"
	"coursehub/internal/errors"
)

// sessionCookieName is fixed; browser clients authenticate through it while
// API clients use the Authorization header.
const sessionCookieName = "jwt"

// SignupRequest is shared by admin and user signup.
type SignupRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
}

// LoginRequest is shared by admin and user login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// httpError converts a domain error into an echo error via the taxonomy mapping.
func httpError(err error) *echo.HTTPError {
	he := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
}

// validationError builds a 400 response listing every violated field.
func validationError(err error) *echo.HTTPError {
	if ve, ok := err.(validator.ValidationErrors); ok {
		fields := make([]string, 0, len(ve))
		for _, fe := range ve {
			fields = append(fields, fmt.Sprintf("%s: failed on %q", fe.Field(), fe.Tag()))
		}
		return echo.NewHTTPError(http.StatusBadRequest, echo.Map{"error": fields})
	}
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Error: err.Error(),
		Code:  "VALIDATION_ERROR",
	})
}

// principalID reads the guard-resolved principal id from the request context.
func principalID(c echo.Context, v auth.Variant) (uuid.UUID, error) {
	id, ok := c.Get(v.ContextKey()).(uuid.UUID)
	if !ok {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: auth.ErrInvalidToken.Error(),
			Code:  "INVALID_TOKEN",
		})
	}
	return id, nil
}

// setSessionCookie mirrors the login token into an HTTP-only cookie for
// browser sessions. Cookie lifetime is configured independently of token
// expiry and the two may diverge.
func setSessionCookie(c echo.Context, cfg *config.Config, token string) {
	c.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(cfg.CookieMaxAge),
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteStrictMode,
	})
}

// clearSessionCookie expires the session cookie. Issued bearer tokens stay
// valid until expiry; logout is cookie-scoped only.
func clearSessionCookie(c echo.Context, cfg *config.Config) {
	c.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteStrictMode,
	})
}

func hasSessionCookie(c echo.Context) bool {
	_, err := c.Cookie(sessionCookieName)
	return err == nil
}
