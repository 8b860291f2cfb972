package services

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avanee-labs/guarani_api/shared"
)

const testJWTSecret = "test-secret"

func newAuthTestApp() *fiber.App {
	authSvc := &AuthService{jwt: &JWTService{jwtSecretKey: testJWTSecret}}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if appErr, ok := shared.GetAppError(err); ok {
				return shared.ResponseJSON(c, appErr.StatusCode, appErr.Message, appErr.Data)
			}
			return fiber.DefaultErrorHandler(c, err)
		},
	})
	app.Get("/me", authSvc.RequiredAuth(), func(c *fiber.Ctx) error {
		return c.SendString(UserID(c))
	})
	return app
}

func signTestToken(t *testing.T, secret, userID string, expiresAt time.Time) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, CustomClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})

	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestRequiredAuthRejectsMissingToken(t *testing.T) {
	app := newAuthTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/me", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	malformed := httptest.NewRequest("GET", "/me", nil)
	malformed.Header.Set("Authorization", "Token abc")

	resp, err = app.Test(malformed)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequiredAuthRejectsInvalidToken(t *testing.T) {
	app := newAuthTestApp()

	wrongKey := signTestToken(t, "other-secret", "user-1", time.Now().Add(time.Hour))
	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+wrongKey)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	expired := signTestToken(t, testJWTSecret, "user-1", time.Now().Add(-time.Hour))
	req = httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+expired)

	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequiredAuthSetsUserID(t *testing.T) {
	app := newAuthTestApp()

	token := signTestToken(t, testJWTSecret, "user-1", time.Now().Add(time.Hour))
	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "user-1", string(body))
}
