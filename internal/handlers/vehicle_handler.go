package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fleetdesk/FleetDesk/internal/apperr"
	"github.com/fleetdesk/FleetDesk/internal/middleware"
	"github.com/fleetdesk/FleetDesk/internal/models"
	"github.com/fleetdesk/FleetDesk/internal/services"
	"github.com/fleetdesk/FleetDesk/internal/utils"
)

// VehicleHandler exposes the per-user vehicle fleet.
type VehicleHandler struct {
	vehicles    *services.VehicleService
	development bool
}

func NewVehicleHandler(vehicles *services.VehicleService, development bool) *VehicleHandler {
	return &VehicleHandler{vehicles: vehicles, development: development}
}

// requireUser pulls the authenticated user or writes a 401. Shared by every
// owner-scoped handler in this package.
func requireUser(c *fiber.Ctx, development bool) (models.User, error) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return models.User{}, utils.Fail(c, apperr.Authentication("User authentication required"), "", development)
	}
	return user, nil
}

// objectIDParam parses the :id route param.
func objectIDParam(c *fiber.Ctx, name string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(c.Params(name))
	if err != nil {
		return primitive.NilObjectID, apperr.Validation("Invalid ID format")
	}
	return id, nil
}

func (h *VehicleHandler) Create(c *fiber.Ctx) error {
	user, err := requireUser(c, h.development)
	if err != nil {
		return err
	}

	var req struct {
		VehicleNumber string `json:"vehicleNumber"`
		VehicleType   string `json:"vehicleType"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.Fail(c, apperr.Validation("Invalid request body"), "", h.development)
	}

	vehicle, err := h.vehicles.Create(c.Context(), user.ID, req.VehicleNumber, req.VehicleType)
	if err != nil {
		return utils.Fail(c, err, "Failed to create vehicle", h.development)
	}
	return utils.Created(c, "Vehicle created successfully", vehicle)
}

func (h *VehicleHandler) List(c *fiber.Ctx) error {
	user, err := requireUser(c, h.development)
	if err != nil {
		return err
	}

	page, limit := utils.ParsePage(c.Query("page"), c.Query("limit"))
	vehicles, pagination, err := h.vehicles.List(c.Context(), user.ID, c.Query("search"), page, limit)
	if err != nil {
		return utils.Fail(c, err, "Failed to retrieve vehicles", h.development)
	}

	message := "Vehicles retrieved successfully"
	if len(vehicles) == 0 {
		message = "No vehicles found"
	}
	return utils.OK(c, message, fiber.Map{
		"vehicles":   vehicles,
		"pagination": pagination,
	})
}

func (h *VehicleHandler) Get(c *fiber.Ctx) error {
	user, err := requireUser(c, h.development)
	if err != nil {
		return err
	}
	id, err := objectIDParam(c, "id")
	if err != nil {
		return utils.Fail(c, err, "", h.development)
	}

	vehicle, err := h.vehicles.ByID(c.Context(), user.ID, id)
	if err != nil {
		return utils.Fail(c, err, "Failed to retrieve vehicle", h.development)
	}
	return utils.OK(c, "Vehicle retrieved successfully", vehicle)
}

func (h *VehicleHandler) Update(c *fiber.Ctx) error {
	user, err := requireUser(c, h.development)
	if err != nil {
		return err
	}
	id, err := objectIDParam(c, "id")
	if err != nil {
		return utils.Fail(c, err, "", h.development)
	}

	var input services.UpdateVehicleInput
	if err := c.BodyParser(&input); err != nil {
		return utils.Fail(c, apperr.Validation("Invalid request body"), "", h.development)
	}

	vehicle, err := h.vehicles.Update(c.Context(), user.ID, id, input)
	if err != nil {
		return utils.Fail(c, err, "Failed to update vehicle", h.development)
	}
	return utils.OK(c, "Vehicle updated successfully", vehicle)
}

func (h *VehicleHandler) Delete(c *fiber.Ctx) error {
	user, err := requireUser(c, h.development)
	if err != nil {
		return err
	}
	id, err := objectIDParam(c, "id")
	if err != nil {
		return utils.Fail(c, err, "", h.development)
	}

	vehicle, err := h.vehicles.Delete(c.Context(), user.ID, id)
	if err != nil {
		return utils.Fail(c, err, "Failed to delete vehicle", h.development)
	}
	return utils.OK(c, "Vehicle deleted successfully", vehicle)
}

func (h *VehicleHandler) Stats(c *fiber.Ctx) error {
	user, err := requireUser(c, h.development)
	if err != nil {
		return err
	}

	stats, err := h.vehicles.Stats(c.Context(), user.ID)
	if err != nil {
		return utils.Fail(c, err, "Failed to retrieve vehicle statistics", h.development)
	}
	return utils.OK(c, "Vehicle statistics retrieved successfully", stats)
}

// Types lists the accepted vehicle types. No auth-specific data involved but
// kept behind auth like the rest of the fleet surface.
func (h *VehicleHandler) Types(c *fiber.Ctx) error {
	return utils.OK(c, "Vehicle types retrieved successfully", models.VehicleTypes)
}
