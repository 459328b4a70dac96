package middleware

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	jwt "github.com/golang-jwt/jwt/v5"
)

const claimsKey = "auth_claims"

type Claims struct {
	UserID string `json:"uid"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// NewTokenSigner returns a signer issuing HS256 tokens with the given secret.
func NewTokenSigner(secret []byte) func(userID, email string, ttl time.Duration) (string, error) {
	return func(userID, email string, ttl time.Duration) (string, error) {
		now := time.Now()
		claims := Claims{
			UserID: userID,
			Email:  email,
			RegisteredClaims: jwt.RegisteredClaims{
				IssuedAt:  jwt.NewNumericDate(now),
				ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			},
		}
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		return token.SignedString(secret)
	}
}

func parseToken(secret []byte, tok string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tok, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if c, ok := t.Claims.(*Claims); ok && t.Valid {
		return c, nil
	}
	return nil, errors.New("invalid token")
}

// Protected rejects requests without a valid bearer token and stores the
// claims in the request locals.
func Protected(secret []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing bearer token",
			})
		}

		claims, err := parseToken(secret, strings.TrimSpace(strings.TrimPrefix(header, "Bearer ")))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid or expired token",
			})
		}

		c.Locals(claimsKey, claims)
		return c.Next()
	}
}

// ClaimsFromContext returns the claims stored by Protected, or nil.
func ClaimsFromContext(c *fiber.Ctx) *Claims {
	if claims, ok := c.Locals(claimsKey).(*Claims); ok {
		return claims
	}
	return nil
}
