package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/fleetdesk/FleetDesk/internal/utils"
)

// HealthHandler serves the root banner and liveness probe.
type HealthHandler struct {
	environment string
	startedAt   time.Time
}

func NewHealthHandler(environment string) *HealthHandler {
	return &HealthHandler{environment: environment, startedAt: time.Now()}
}

func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return utils.OK(c, "FleetDesk server is running!", fiber.Map{
		"version":     "1.0.0",
		"environment": h.environment,
	})
}

func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return utils.OK(c, "Server is healthy", fiber.Map{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    time.Since(h.startedAt).Seconds(),
	})
}

// NotFound is the catch-all for unmatched routes.
func NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(utils.Envelope{
		Status:  false,
		Message: "Route not found",
	})
}
