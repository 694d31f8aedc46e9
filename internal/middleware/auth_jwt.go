package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// JWTAuth validates a Bearer token when one is present and stores the caller
// uid and email-verified flag in locals. Requests without an Authorization
// header pass through as anonymous; route handlers decide whether a uid is
// required.
func JWTAuth(secret string) fiber.Handler {
	type authClaims struct {
		UID           string `json:"uid,omitempty"`
		EmailVerified bool   `json:"email_verified,omitempty"`
		jwt.RegisteredClaims
	}

	return func(c *fiber.Ctx) error {
		auth := c.Get("Authorization")
		if auth == "" || !strings.HasPrefix(strings.ToLower(auth), "bearer ") {
			return c.Next()
		}
		if secret == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing JWT secret")
		}

		tokenStr := strings.TrimSpace(auth[7:])
		var claims authClaims

		token, err := jwt.ParseWithClaims(
			tokenStr,
			&claims,
			func(t *jwt.Token) (any, error) {
				if t.Method != jwt.SigningMethodHS256 {
					return nil, fiber.ErrUnauthorized
				}
				return []byte(secret), nil
			},
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		)
		if err != nil || !token.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		uid := claims.UID
		if uid == "" {
			uid = claims.Subject
		}
		if uid == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing uid/sub")
		}

		c.Locals("user_id", uid)
		c.Locals("email_verified", claims.EmailVerified)
		return c.Next()
	}
}
