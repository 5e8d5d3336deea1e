package auth

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"coursehub/internal/errors"
)

// Guard returns middleware that gates a route on a valid bearer token for the
// service's variant. On success the resolved principal id is stored in the
// request context under the variant's context key. The guard never creates or
// refreshes tokens.
func Guard(ts *TokenService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return ts.Verify(token)
		},
		SuccessHandler: func(c echo.Context) {
			claims, ok := c.Get("user").(*Claims)
			if !ok {
				return
			}
			if id, err := uuid.Parse(claims.PrincipalID); err == nil {
				c.Set(ts.Variant().ContextKey(), id)
			}
		},
		ErrorHandler: func(c echo.Context, err error) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
					Error: "no token provided or bad authorization format",
					Code:  "MISSING_TOKEN",
				})
			}
			return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
				Error: ErrInvalidToken.Error(),
				Code:  "INVALID_TOKEN",
			})
		},
	})
}
