package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"membership-form-backend/src/utils"
)

func newGuardedApp(secret string) *fiber.App {
	app := fiber.New()
	app.Get("/api/users", OptionalAuthJWT(secret), func(c *fiber.Ctx) error {
		return c.JSON([]string{})
	})
	return app
}

func TestOptionalAuthJWT(t *testing.T) {
	t.Run("disabled without secret", func(t *testing.T) {
		resp, err := newGuardedApp("").Test(httptest.NewRequest("GET", "/api/users", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	app := newGuardedApp("s3cret")

	t.Run("missing header", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/users", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("invalid token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/users", nil)
		req.Header.Set("Authorization", "Bearer nope")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("valid token", func(t *testing.T) {
		token, err := utils.GenerateJWT([]byte("s3cret"), "admin-1", "admin@example.com", "admin", time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/users", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}
