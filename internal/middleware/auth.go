package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/nigelkyalo/mamacare-backend/internal/dto"
	"github.com/nigelkyalo/mamacare-backend/internal/identity"
)

// Protected guards a route behind the configured identity backend.
// Missing, malformed, expired, and badly signed tokens are all
// answered with the same 401.
func Protected(ids identity.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := bearerIdentity(c, ids)
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: "Unauthorized",
			})
		}
		c.Locals("user_id", userID)
		return c.Next()
	}
}

// UserID returns the authenticated user id set by Protected.
func UserID(c *fiber.Ctx) string {
	if id, ok := c.Locals("user_id").(string); ok {
		return id
	}
	return ""
}

func bearerIdentity(c *fiber.Ctx, ids identity.Service) string {
	header := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(strings.ToLower(header), "bearer ") {
		return ""
	}
	return ids.Verify(strings.TrimSpace(header[len("bearer "):]))
}
