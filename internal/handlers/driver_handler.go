package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fleetdesk/FleetDesk/internal/apperr"
	"github.com/fleetdesk/FleetDesk/internal/services"
	"github.com/fleetdesk/FleetDesk/internal/utils"
)

// DriverHandler exposes driver records and photo uploads.
type DriverHandler struct {
	drivers     *services.DriverService
	development bool
}

func NewDriverHandler(drivers *services.DriverService, development bool) *DriverHandler {
	return &DriverHandler{drivers: drivers, development: development}
}

func (h *DriverHandler) Create(c *fiber.Ctx) error {
	user, err := requireUser(c, h.development)
	if err != nil {
		return err
	}

	var req struct {
		DriverName        string `json:"driverName"`
		DriverPhoneNumber string `json:"driverPhoneNumber"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.Fail(c, apperr.Validation("Invalid request body"), "", h.development)
	}

	driver, err := h.drivers.Create(c.Context(), user.ID, req.DriverName, req.DriverPhoneNumber)
	if err != nil {
		return utils.Fail(c, err, "Error creating driver", h.development)
	}
	return utils.Created(c, "Driver created successfully", driver)
}

func (h *DriverHandler) List(c *fiber.Ctx) error {
	user, err := requireUser(c, h.development)
	if err != nil {
		return err
	}

	page, limit := utils.ParsePage(c.Query("page"), c.Query("limit"))
	drivers, pagination, err := h.drivers.List(c.Context(), user.ID, c.Query("search"), page, limit)
	if err != nil {
		return utils.Fail(c, err, "Error retrieving drivers", h.development)
	}
	return utils.OK(c, "Drivers retrieved successfully", fiber.Map{
		"drivers":    drivers,
		"pagination": pagination,
	})
}

func (h *DriverHandler) Get(c *fiber.Ctx) error {
	user, err := requireUser(c, h.development)
	if err != nil {
		return err
	}
	id, err := objectIDParam(c, "id")
	if err != nil {
		return utils.Fail(c, err, "", h.development)
	}

	driver, err := h.drivers.ByID(c.Context(), user.ID, id)
	if err != nil {
		return utils.Fail(c, err, "Error retrieving driver", h.development)
	}
	return utils.OK(c, "Driver retrieved successfully", driver)
}

func (h *DriverHandler) Update(c *fiber.Ctx) error {
	user, err := requireUser(c, h.development)
	if err != nil {
		return err
	}
	id, err := objectIDParam(c, "id")
	if err != nil {
		return utils.Fail(c, err, "", h.development)
	}

	var input services.UpdateDriverInput
	if err := c.BodyParser(&input); err != nil {
		return utils.Fail(c, apperr.Validation("Invalid request body"), "", h.development)
	}

	driver, err := h.drivers.Update(c.Context(), user.ID, id, input)
	if err != nil {
		return utils.Fail(c, err, "Error updating driver", h.development)
	}
	return utils.OK(c, "Driver updated successfully", driver)
}

func (h *DriverHandler) Delete(c *fiber.Ctx) error {
	user, err := requireUser(c, h.development)
	if err != nil {
		return err
	}
	id, err := objectIDParam(c, "id")
	if err != nil {
		return utils.Fail(c, err, "", h.development)
	}

	driver, err := h.drivers.Delete(c.Context(), user.ID, id)
	if err != nil {
		return utils.Fail(c, err, "Error deleting driver", h.development)
	}
	return utils.OK(c, "Driver deleted successfully", driver)
}

// UploadImage stores a driver photo from a multipart form field named "image".
func (h *DriverHandler) UploadImage(c *fiber.Ctx) error {
	user, err := requireUser(c, h.development)
	if err != nil {
		return err
	}
	id, err := objectIDParam(c, "id")
	if err != nil {
		return utils.Fail(c, err, "", h.development)
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return utils.Fail(c, apperr.Validation("Image file is required"), "", h.development)
	}
	file, err := fileHeader.Open()
	if err != nil {
		return utils.Fail(c, apperr.Internal("Failed to read uploaded image", err), "", h.development)
	}
	defer file.Close()

	driver, err := h.drivers.AttachImage(c.Context(), user.ID, id,
		fileHeader.Filename, fileHeader.Header.Get("Content-Type"), file, fileHeader.Size)
	if err != nil {
		return utils.Fail(c, err, "Failed to upload driver image", h.development)
	}
	return utils.OK(c, "Driver image uploaded successfully", driver)
}
