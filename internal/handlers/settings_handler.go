package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fleetdesk/FleetDesk/internal/apperr"
	"github.com/fleetdesk/FleetDesk/internal/services"
	"github.com/fleetdesk/FleetDesk/internal/utils"
)

// SettingsHandler exposes the per-user invoicing settings.
type SettingsHandler struct {
	settings    *services.SettingsService
	development bool
}

func NewSettingsHandler(settings *services.SettingsService, development bool) *SettingsHandler {
	return &SettingsHandler{settings: settings, development: development}
}

func (h *SettingsHandler) Create(c *fiber.Ctx) error {
	user, err := requireUser(c, h.development)
	if err != nil {
		return err
	}

	var input services.CreateSettingsInput
	if err := c.BodyParser(&input); err != nil {
		return utils.Fail(c, apperr.Validation("Invalid request body"), "", h.development)
	}

	record, err := h.settings.Create(c.Context(), user.ID, input)
	if err != nil {
		return utils.Fail(c, err, "Error creating settings", h.development)
	}
	return utils.Created(c, "Settings created successfully", record)
}

func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	user, err := requireUser(c, h.development)
	if err != nil {
		return err
	}

	record, err := h.settings.Get(c.Context(), user.ID)
	if err != nil {
		return utils.Fail(c, err, "Error retrieving settings", h.development)
	}
	return utils.OK(c, "Settings retrieved successfully", record)
}

func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	user, err := requireUser(c, h.development)
	if err != nil {
		return err
	}

	var input services.UpdateSettingsInput
	if err := c.BodyParser(&input); err != nil {
		return utils.Fail(c, apperr.Validation("Invalid request body"), "", h.development)
	}

	record, err := h.settings.Update(c.Context(), user.ID, input)
	if err != nil {
		return utils.Fail(c, err, "Error updating settings", h.development)
	}
	return utils.OK(c, "Settings updated successfully", record)
}

func (h *SettingsHandler) Delete(c *fiber.Ctx) error {
	user, err := requireUser(c, h.development)
	if err != nil {
		return err
	}

	record, err := h.settings.Delete(c.Context(), user.ID)
	if err != nil {
		return utils.Fail(c, err, "Error deleting settings", h.development)
	}
	return utils.OK(c, "Settings deleted successfully", record)
}
