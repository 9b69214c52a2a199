package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/fleetdesk/FleetDesk/internal/apperr"
	"github.com/fleetdesk/FleetDesk/internal/models"
	"github.com/fleetdesk/FleetDesk/internal/services"
	"github.com/fleetdesk/FleetDesk/internal/utils"
)

// BookingHandler exposes the public booking intake. No auth on any route.
type BookingHandler struct {
	bookings    *services.BookingService
	development bool
}

func NewBookingHandler(bookings *services.BookingService, development bool) *BookingHandler {
	return &BookingHandler{bookings: bookings, development: development}
}

func (h *BookingHandler) Create(c *fiber.Ctx) error {
	var booking models.Booking
	if err := c.BodyParser(&booking); err != nil {
		return utils.Fail(c, apperr.Validation("Invalid request body"), "", h.development)
	}

	created, err := h.bookings.Create(c.Context(), booking)
	if err != nil {
		return utils.Fail(c, err, "Error creating booking", h.development)
	}
	return utils.Created(c, "Booking created successfully", created)
}

func (h *BookingHandler) List(c *fiber.Ctx) error {
	bookings, err := h.bookings.List(c.Context())
	if err != nil {
		return utils.Fail(c, err, "Error retrieving bookings", h.development)
	}
	return utils.OK(c, "Bookings retrieved successfully", bookings)
}

// Range lists bookings between startDate and endDate (YYYY-MM-DD), falling
// back to the current Monday-Sunday week when both are absent.
func (h *BookingHandler) Range(c *fiber.Ctx) error {
	var from, to time.Time
	if v := c.Query("startDate"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return utils.Fail(c, apperr.Validation("Invalid startDate format"), "", h.development)
		}
		from = t
	}
	if v := c.Query("endDate"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return utils.Fail(c, apperr.Validation("Invalid endDate format"), "", h.development)
		}
		to = t
	}

	page, limit := utils.ParsePage(c.Query("page"), c.Query("limit"))
	bookings, pagination, err := h.bookings.Range(c.Context(), from, to, page, limit)
	if err != nil {
		return utils.Fail(c, err, "Error retrieving rangewise bookings", h.development)
	}
	return utils.OK(c, "Rangewise bookings retrieved successfully", fiber.Map{
		"bookings":   bookings,
		"pagination": pagination,
	})
}

func (h *BookingHandler) Month(c *fiber.Ctx) error {
	monthYear := c.Params("monthYear")
	bookings, err := h.bookings.Month(c.Context(), monthYear)
	if err != nil {
		return utils.Fail(c, err, "Error retrieving monthwise bookings", h.development)
	}
	return utils.OK(c, "Bookings for "+monthYear+" retrieved successfully", bookings)
}

func (h *BookingHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := objectIDParam(c, "id")
	if err != nil {
		return utils.Fail(c, err, "", h.development)
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.Fail(c, apperr.Validation("Invalid request body"), "", h.development)
	}

	booking, err := h.bookings.UpdateStatus(c.Context(), id, req.Status)
	if err != nil {
		return utils.Fail(c, err, "Error updating booking status", h.development)
	}
	return utils.OK(c, "Booking status updated successfully", booking)
}
