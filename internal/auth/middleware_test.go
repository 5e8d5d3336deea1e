package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newGuardedEcho(ts *TokenService) *echo.Echo {
	e := echo.New()
	e.GET("/protected", func(c echo.Context) error {
		id, ok := c.Get(ts.Variant().ContextKey()).(uuid.UUID)
		if !ok {
			return c.String(http.StatusInternalServerError, "no principal in context")
		}
		return c.String(http.StatusOK, id.String())
	}, Guard(ts))
	return e
}

func TestGuard_MissingToken(t *testing.T) {
	e := newGuardedEcho(NewTokenService(VariantUser, "user-secret", time.Hour))

	tests := []struct {
		name   string
		header string
	}{
		{name: "no header", header: ""},
		{name: "not bearer", header: "Basic abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), "MISSING_TOKEN")
		})
	}
}

func TestGuard_InvalidToken(t *testing.T) {
	userTS := NewTokenService(VariantUser, "user-secret", time.Hour)
	adminTS := NewTokenService(VariantAdmin, "admin-secret", time.Hour)
	e := newGuardedEcho(userTS)

	adminToken, err := adminTS.Generate(uuid.New(), "a@x.com")
	assert.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "garbage"},
		{name: "wrong variant", token: adminToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set(echo.HeaderAuthorization, "Bearer "+tt.token)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
		})
	}
}

func TestGuard_ValidTokenResolvesPrincipal(t *testing.T) {
	ts := NewTokenService(VariantUser, "user-secret", time.Hour)
	e := newGuardedEcho(ts)

	id := uuid.New()
	token, err := ts.Generate(id, "u@x.com")
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, id.String(), strings.TrimSpace(rec.Body.String()))
}
