package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"photorank/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-at-least-32-characters!!"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func validClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"sub": "42",
		"iss": "photorank",
		"aud": "photorank",
		"exp": time.Now().Add(time.Hour).Unix(),
	}
}

func newAuthApp() *fiber.App {
	InitMiddleware(&config.Config{JWTSecret: testSecret})
	app := fiber.New()
	app.Get("/protected", AuthRequired, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"userID": c.Locals("userID")})
	})
	return app
}

func TestAuthRequired(t *testing.T) {
	app := newAuthApp()

	request := func(header string) int {
		req := httptest.NewRequest("GET", "/protected", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		return resp.StatusCode
	}

	t.Run("Valid token passes and sets userID", func(t *testing.T) {
		token := signToken(t, testSecret, validClaims())
		assert.Equal(t, fiber.StatusOK, request("Bearer "+token))
	})

	t.Run("Missing header", func(t *testing.T) {
		assert.Equal(t, fiber.StatusUnauthorized, request(""))
	})

	t.Run("Malformed header", func(t *testing.T) {
		assert.Equal(t, fiber.StatusUnauthorized, request("Token abc"))
	})

	t.Run("Wrong secret", func(t *testing.T) {
		token := signToken(t, "some-other-secret-32-characters!!!!!", validClaims())
		assert.Equal(t, fiber.StatusUnauthorized, request("Bearer "+token))
	})

	t.Run("Expired token", func(t *testing.T) {
		claims := validClaims()
		claims["exp"] = time.Now().Add(-time.Minute).Unix()
		token := signToken(t, testSecret, claims)
		assert.Equal(t, fiber.StatusUnauthorized, request("Bearer "+token))
	})

	t.Run("Wrong issuer", func(t *testing.T) {
		claims := validClaims()
		claims["iss"] = "someone-else"
		token := signToken(t, testSecret, claims)
		assert.Equal(t, fiber.StatusUnauthorized, request("Bearer "+token))
	})

	t.Run("Missing expiry", func(t *testing.T) {
		claims := validClaims()
		delete(claims, "exp")
		token := signToken(t, testSecret, claims)
		assert.Equal(t, fiber.StatusUnauthorized, request("Bearer "+token))
	})

	t.Run("Non-numeric subject", func(t *testing.T) {
		claims := validClaims()
		claims["sub"] = "not-a-number"
		token := signToken(t, testSecret, claims)
		assert.Equal(t, fiber.StatusUnauthorized, request("Bearer "+token))
	})
}
