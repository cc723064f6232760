package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/monetra/monetra/models"
)

// GetCurrentUser returns the member placed in the request context by
// the Authenticate middleware, nil when the request is unauthenticated.
func GetCurrentUser(c *fiber.Ctx) *models.Member {
	member, ok := c.Locals("CurrentUser").(*models.Member)
	if !ok {
		return nil
	}

	return member
}
