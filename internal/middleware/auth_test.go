package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awesner/wesner-corporate-site/internal/utils"
)

const testKey = "test-signing-key"

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func runRequest(t *testing.T, mw echo.MiddlewareFunc, authHeader string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, mw(okHandler)(c))
	return rec, c
}

func TestJWTAuth(t *testing.T) {
	t.Run("valid token passes and stashes claims", func(t *testing.T) {
		token, err := utils.GenerateToken(testKey, time.Hour, 7, "anna", "admin")
		require.NoError(t, err)

		rec, c := runRequest(t, JWTAuth(testKey), "Bearer "+token)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 7, c.Get("user_id"))
		assert.Equal(t, "anna", c.Get("username"))
		assert.Equal(t, "admin", c.Get("role"))
	})

	t.Run("missing header", func(t *testing.T) {
		rec, _ := runRequest(t, JWTAuth(testKey), "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		rec, _ := runRequest(t, JWTAuth(testKey), "Basic abc")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("tampered token", func(t *testing.T) {
		token, err := utils.GenerateToken("other-key", time.Hour, 7, "anna", "admin")
		require.NoError(t, err)

		rec, _ := runRequest(t, JWTAuth(testKey), "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	t.Run("admin passes", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodDelete, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set("role", "admin")

		require.NoError(t, RequireAdmin()(okHandler)(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("client is rejected", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodDelete, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set("role", "client")

		require.NoError(t, RequireAdmin()(okHandler)(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("no role at all", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodDelete, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, RequireAdmin()(okHandler)(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
