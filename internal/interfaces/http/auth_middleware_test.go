package http

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suryatek/quotation-api/pkg/jwt"
	"github.com/suryatek/quotation-api/pkg/logger"
)

const testSecret = "test-secret"

func protectedApp(extra ...fiber.Handler) *fiber.App {
	app := fiber.New()
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	handlers := append([]fiber.Handler{AuthMiddleware(testSecret, log)}, extra...)
	handlers = append(handlers, func(c *fiber.Ctx) error {
		return c.SendString(GetUserID(c) + ":" + GetRole(c))
	})
	app.Get("/protected", handlers...)
	return app
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	app := protectedApp()
	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_BadToken(t *testing.T) {
	app := protectedApp()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer not-a-token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_ValidTokenExposesIdentity(t *testing.T) {
	token, err := jwt.Generate(testSecret, "user-7", "sales", "quotation-api", 5)
	require.NoError(t, err)

	app := protectedApp()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "user-7:sales", string(body))
}

func TestRequireAdmin_BlocksSalesRole(t *testing.T) {
	token, err := jwt.Generate(testSecret, "user-7", "sales", "quotation-api", 5)
	require.NoError(t, err)

	app := protectedApp(RequireAdmin())
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequireAdmin_AllowsAdmin(t *testing.T) {
	token, err := jwt.Generate(testSecret, "admin-1", "admin", "quotation-api", 5)
	require.NoError(t, err)

	app := protectedApp(RequireAdmin())
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
