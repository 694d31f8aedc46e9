package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// UIDFromLocals reads the user id the JWT middleware stored. Empty means the
// request is anonymous.
func UIDFromLocals(c *fiber.Ctx) (string, error) {
	uid, _ := c.Locals("user_id").(string)
	if uid == "" {
		return "", fiber.ErrUnauthorized
	}
	return uid, nil
}

// MaybeUID is the anonymous-tolerant variant: it never fails, an empty string
// signals no authenticated caller.
func MaybeUID(c *fiber.Ctx) string {
	uid, _ := c.Locals("user_id").(string)
	return uid
}

// EmailVerifiedFromLocals reads the email-verified claim, defaulting false.
func EmailVerifiedFromLocals(c *fiber.Ctx) bool {
	v, _ := c.Locals("email_verified").(bool)
	return v
}
