package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// BearerToken extracts the bearer credential from the Authorization header.
// Sibling services calling the verify endpoint pass tokens this way.
func BearerToken(c *fiber.Ctx) (string, bool) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	if parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
