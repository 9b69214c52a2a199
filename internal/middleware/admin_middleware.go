package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fleetdesk/FleetDesk/internal/apperr"
	"github.com/fleetdesk/FleetDesk/internal/models"
	"github.com/fleetdesk/FleetDesk/internal/utils"
)

// AdminOnly rejects non-admin users. Must run after Auth.
func AdminOnly(development bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := CurrentUser(c)
		if !ok {
			return utils.Fail(c, apperr.Authentication("Access token is required"), "", development)
		}
		if user.Role != models.RoleAdmin {
			return utils.Fail(c, apperr.Authorization("Access denied. Admins only."), "", development)
		}
		return c.Next()
	}
}
