package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func protectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/me", Protected(testSecret), func(c *fiber.Ctx) error {
		claims := ClaimsFromContext(c)
		if claims == nil {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.JSON(fiber.Map{"uid": claims.UserID, "email": claims.Email})
	})
	return app
}

func TestProtected_ValidToken(t *testing.T) {
	signToken := NewTokenSigner(testSecret)
	token, err := signToken("user-123", "maria@example.com", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := protectedApp().Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestProtected_MissingHeader(t *testing.T) {
	req := httptest.NewRequest("GET", "/me", nil)

	resp, err := protectedApp().Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestProtected_MalformedToken(t *testing.T) {
	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")

	resp, err := protectedApp().Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestProtected_WrongSecret(t *testing.T) {
	signToken := NewTokenSigner([]byte("other-secret"))
	token, err := signToken("user-123", "maria@example.com", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := protectedApp().Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestProtected_ExpiredToken(t *testing.T) {
	signToken := NewTokenSigner(testSecret)
	token, err := signToken("user-123", "maria@example.com", -time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := protectedApp().Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
