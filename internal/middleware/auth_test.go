package middleware

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orderdesk/orderdesk/internal/auth"
	"github.com/orderdesk/orderdesk/internal/identity"
	"github.com/orderdesk/orderdesk/internal/logging"
)

const testSecret = "middleware-secret"

func newAuthApp(t *testing.T, revs auth.Revocations) (*fiber.App, *auth.Codec) {
	t.Helper()
	codec, err := auth.NewCodec(testSecret, auth.TokenTTL)
	require.NoError(t, err)

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(logging.Discard())})
	protected := app.Group("", Authenticate(codec, revs))
	protected.Get("/me", func(c *fiber.Ctx) error {
		id, _ := auth.CurrentIdentity(c)
		return c.JSON(fiber.Map{"id": id.UserID, "role": id.Role})
	})
	protected.Get("/admin", RequireAdmin(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	protected.Get("/users", RequireRole(identity.RoleUser), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app, codec
}

func issue(t *testing.T, codec *auth.Codec, role identity.Role) auth.Token {
	t.Helper()
	tok, err := codec.Issue(auth.Identity{UserID: "u-1", Phone: "555-1", Role: role})
	require.NoError(t, err)
	return tok
}

func do(t *testing.T, app *fiber.App, path, authz string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodGet, path, nil)
	if authz != "" {
		req.Header.Set(fiber.HeaderAuthorization, authz)
	}
	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	body := map[string]any{}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &body)
	}
	return resp.StatusCode, body
}

func TestAuthenticateMissingToken(t *testing.T) {
	app, _ := newAuthApp(t, nil)

	for _, header := range []string{"", "Bearer", "Bearer   ", "Basic abc", "token-only"} {
		status, body := do(t, app, "/me", header)
		assert.Equal(t, fiber.StatusUnauthorized, status, header)
		assert.Equal(t, "Access token required", body["error"], header)
	}
}

func TestAuthenticateInvalidToken(t *testing.T) {
	app, _ := newAuthApp(t, nil)

	status, body := do(t, app, "/me", "Bearer not.a.token")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "Invalid or expired token", body["error"])
}

func TestAuthenticateExpiredToken(t *testing.T) {
	app, _ := newAuthApp(t, nil)

	past := time.Now().Add(-25 * time.Hour)
	claims := auth.Claims{
		UserID: "u-1",
		Phone:  "555-1",
		Role:   identity.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(past),
			ExpiresAt: jwt.NewNumericDate(past.Add(auth.TokenTTL)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	status, body := do(t, app, "/me", "Bearer "+signed)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "Invalid or expired token", body["error"])
}

func TestAuthenticateRejectsTokenWithoutRole(t *testing.T) {
	app, _ := newAuthApp(t, nil)

	claims := jwt.MapClaims{
		"userId": "u-1",
		"phone":  "555-1",
		"iat":    time.Now().Unix(),
		"exp":    time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	status, body := do(t, app, "/me", "Bearer "+signed)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "Invalid or expired token", body["error"])
}

func TestAuthenticateAttachesIdentity(t *testing.T) {
	app, codec := newAuthApp(t, nil)
	tok := issue(t, codec, identity.RoleUser)

	status, body := do(t, app, "/me", "Bearer "+tok.Value)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "u-1", body["id"])
	assert.Equal(t, "user", body["role"])

	status, _ = do(t, app, "/me", "bearer "+tok.Value)
	assert.Equal(t, fiber.StatusOK, status)
}

func TestRequireRole(t *testing.T) {
	app, codec := newAuthApp(t, nil)
	userTok := issue(t, codec, identity.RoleUser)
	adminTok := issue(t, codec, identity.RoleAdmin)

	status, body := do(t, app, "/admin", "Bearer "+userTok.Value)
	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Equal(t, "Insufficient permissions", body["error"])

	status, _ = do(t, app, "/admin", "Bearer "+adminTok.Value)
	assert.Equal(t, fiber.StatusOK, status)

	status, _ = do(t, app, "/users", "Bearer "+userTok.Value)
	assert.Equal(t, fiber.StatusOK, status)

	// Admins bypass narrower gates.
	status, _ = do(t, app, "/users", "Bearer "+adminTok.Value)
	assert.Equal(t, fiber.StatusOK, status)
}

func TestRequireRoleWithoutAuthenticate(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(logging.Discard())})
	app.Get("/admin", RequireAdmin(), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	status, _ := do(t, app, "/admin", "")
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestAuthenticateRejectsRevokedToken(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer cache.Close()

	revs := auth.NewRedisRevocations(cache)
	app, codec := newAuthApp(t, revs)
	tok := issue(t, codec, identity.RoleUser)

	status, _ := do(t, app, "/me", "Bearer "+tok.Value)
	require.Equal(t, fiber.StatusOK, status)

	require.NoError(t, revs.Revoke(context.Background(), tok.ID, tok.ExpiresAt))

	status, body := do(t, app, "/me", "Bearer "+tok.Value)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "Invalid or expired token", body["error"])

	// Revocation store outage fails closed.
	mr.Close()
	status, body = do(t, app, "/me", "Bearer "+issue(t, codec, identity.RoleUser).Value)
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "Internal server error", body["error"])
}

func TestBearerToken(t *testing.T) {
	tok, ok := bearerToken("Bearer abc.def")
	assert.True(t, ok)
	assert.Equal(t, "abc.def", tok)

	tok, ok = bearerToken("  Bearer\tabc  ")
	assert.True(t, ok)
	assert.Equal(t, "abc", tok)

	_, ok = bearerToken("Bearer")
	assert.False(t, ok)
}
