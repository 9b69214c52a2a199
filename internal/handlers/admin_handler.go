package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fleetdesk/FleetDesk/internal/services"
	"github.com/fleetdesk/FleetDesk/internal/utils"
)

// AdminHandler exposes cross-tenant listings for operators.
type AdminHandler struct {
	auth        *services.AuthService
	bookings    *services.BookingService
	development bool
}

func NewAdminHandler(auth *services.AuthService, bookings *services.BookingService, development bool) *AdminHandler {
	return &AdminHandler{auth: auth, bookings: bookings, development: development}
}

// ListUsers returns every account as a password-free projection.
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.auth.Users(c.Context())
	if err != nil {
		return utils.Fail(c, err, "Failed to retrieve users", h.development)
	}
	return utils.OK(c, "Users retrieved successfully", users)
}

// ListBookings returns the full booking intake across all customers.
func (h *AdminHandler) ListBookings(c *fiber.Ctx) error {
	bookings, err := h.bookings.List(c.Context())
	if err != nil {
		return utils.Fail(c, err, "Error retrieving bookings", h.development)
	}
	return utils.OK(c, "Bookings retrieved successfully", bookings)
}
