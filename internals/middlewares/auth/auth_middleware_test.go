package auth

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	authService "apgi_backend/internals/features/admins/auth/service"
	helper "apgi_backend/internals/helpers"
)

const secret = "gate-test-secret"

func newGateApp(t *testing.T) (*fiber.App, *int) {
	t.Helper()
	app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler(zap.NewNop())})
	hits := 0
	app.Get("/private", AccessGate(authService.NewTokenService(secret), zap.NewNop()), func(c *fiber.Ctx) error {
		hits++
		fromLocals, ok := CurrentAdmin(c)
		if !ok {
			return fiber.ErrInternalServerError
		}
		fromCtx, ok := AdminFromContext(c.UserContext())
		if !ok || fromCtx != fromLocals {
			return fiber.ErrInternalServerError
		}
		return c.SendString(fromLocals.Username)
	})
	return app, &hits
}

func call(t *testing.T, app *fiber.App, authHeader string) (int, map[string]any, string) {
	t.Helper()
	req := httptest.NewRequest("GET", "/private", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]any
	_ = sonic.Unmarshal(raw, &body)
	return resp.StatusCode, body, string(raw)
}

func signed(t *testing.T, exp time.Time) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, authService.AdminClaims{
		ID:       1,
		Username: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(exp.Add(-authService.AccessTokenTTL)),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}).SignedString([]byte(secret))
	require.NoError(t, err)
	return raw
}

func TestAccessGate_MissingToken(t *testing.T) {
	app, hits := newGateApp(t)

	for _, h := range []string{"", "Bearer", "Bearer   ", "Basic abc"} {
		status, body, _ := call(t, app, h)
		assert.Equal(t, fiber.StatusUnauthorized, status, h)
		assert.Equal(t, "Access token required", body["error"], h)
	}
	assert.Zero(t, *hits)
}

func TestAccessGate_InvalidToken(t *testing.T) {
	app, hits := newGateApp(t)

	expired := signed(t, time.Now().Add(-time.Minute))
	for _, h := range []string{"Bearer garbage", "Bearer " + expired} {
		status, body, _ := call(t, app, h)
		assert.Equal(t, fiber.StatusForbidden, status)
		assert.Equal(t, "Invalid token", body["error"])
		assert.Equal(t, false, body["success"])
	}
	assert.Zero(t, *hits)
}

func TestAccessGate_ValidToken(t *testing.T) {
	app, hits := newGateApp(t)

	tok, _, err := authService.NewTokenService(secret).Issue(1, "admin")
	require.NoError(t, err)

	status, _, raw := call(t, app, "Bearer "+tok)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "admin", raw)

	// scheme tidak case-sensitive
	status, _, _ = call(t, app, "bearer "+signed(t, time.Now().Add(time.Hour)))
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, 2, *hits)
}
