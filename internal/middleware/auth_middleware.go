package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fleetdesk/FleetDesk/internal/apperr"
	"github.com/fleetdesk/FleetDesk/internal/models"
	"github.com/fleetdesk/FleetDesk/internal/services"
	"github.com/fleetdesk/FleetDesk/internal/utils"
)

// userKey is the context-local slot the authenticated user lives in.
const userKey = "user"

// Auth validates the Bearer token and loads the account behind it into the
// request context. Deleted accounts fail here even with a valid token.
func Auth(auth *services.AuthService, development bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			return utils.Fail(c, apperr.Authentication("Access token is required"), "", development)
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		claims, err := auth.ParseToken(tokenString)
		if err != nil {
			return utils.Fail(c, err, "Invalid or expired token", development)
		}

		idHex, _ := claims["userId"].(string)
		userID, err := primitive.ObjectIDFromHex(idHex)
		if err != nil {
			return utils.Fail(c, apperr.Authentication("Invalid token payload"), "", development)
		}

		user, err := auth.UserByID(c.Context(), userID)
		if err != nil {
			return utils.Fail(c, apperr.Authentication("User no longer exists"), "", development)
		}

		c.Locals(userKey, user)
		return c.Next()
	}
}

// CurrentUser returns the user placed in the context by Auth.
func CurrentUser(c *fiber.Ctx) (models.User, bool) {
	user, ok := c.Locals(userKey).(models.User)
	return user, ok
}
