package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/fleetdesk/FleetDesk/internal/apperr"
	"github.com/fleetdesk/FleetDesk/internal/billing"
	"github.com/fleetdesk/FleetDesk/internal/services"
	"github.com/fleetdesk/FleetDesk/internal/utils"
)

// BillingHandler exposes invoice CRUD, stats and the standalone estimate.
type BillingHandler struct {
	billings    *services.BillingService
	development bool
}

func NewBillingHandler(billings *services.BillingService, development bool) *BillingHandler {
	return &BillingHandler{billings: billings, development: development}
}

func (h *BillingHandler) Create(c *fiber.Ctx) error {
	user, err := requireUser(c, h.development)
	if err != nil {
		return err
	}

	var input services.CreateBillingInput
	if err := c.BodyParser(&input); err != nil {
		return utils.Fail(c, apperr.Validation("Invalid request body"), "", h.development)
	}

	record, err := h.billings.Create(c.Context(), user.ID, input)
	if err != nil {
		return utils.Fail(c, err, "Failed to create billing", h.development)
	}
	return utils.Created(c, "Billing created successfully", record)
}

func (h *BillingHandler) List(c *fiber.Ctx) error {
	user, err := requireUser(c, h.development)
	if err != nil {
		return err
	}

	filters := services.BillingFilters{
		SearchQuery: c.Query("searchQuery"),
		CompanyName: c.Query("companyName"),
		VehicleID:   c.Query("vehicleId"),
	}
	if v := c.Query("dateFrom"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return utils.Fail(c, apperr.Validation("Invalid dateFrom format"), "", h.development)
		}
		filters.DateFrom = t
	}
	if v := c.Query("dateTo"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return utils.Fail(c, apperr.Validation("Invalid dateTo format"), "", h.development)
		}
		filters.DateTo = t.Add(24*time.Hour - time.Nanosecond)
	}
	if v := c.Query("isCompleted"); v != "" {
		completed := v == "true"
		filters.IsCompleted = &completed
	}

	page, limit := utils.ParsePage(c.Query("page"), c.Query("limit"))
	bills, pagination, err := h.billings.List(c.Context(), user.ID, filters, page, limit)
	if err != nil {
		return utils.Fail(c, err, "Failed to retrieve billings", h.development)
	}

	message := "Billings retrieved successfully"
	if len(bills) == 0 {
		message = "No billings found"
	}
	return utils.OK(c, message, fiber.Map{
		"bills":      bills,
		"pagination": pagination,
	})
}

func (h *BillingHandler) Get(c *fiber.Ctx) error {
	user, err := requireUser(c, h.development)
	if err != nil {
		return err
	}
	id, err := objectIDParam(c, "id")
	if err != nil {
		return utils.Fail(c, err, "", h.development)
	}

	record, err := h.billings.ByID(c.Context(), user.ID, id)
	if err != nil {
		return utils.Fail(c, err, "Failed to retrieve billing", h.development)
	}
	return utils.OK(c, "Billing retrieved successfully", record)
}

func (h *BillingHandler) Update(c *fiber.Ctx) error {
	user, err := requireUser(c, h.development)
	if err != nil {
		return err
	}
	id, err := objectIDParam(c, "id")
	if err != nil {
		return utils.Fail(c, err, "", h.development)
	}

	var input services.UpdateBillingInput
	if err := c.BodyParser(&input); err != nil {
		return utils.Fail(c, apperr.Validation("Invalid request body"), "", h.development)
	}

	record, err := h.billings.Update(c.Context(), user.ID, id, input)
	if err != nil {
		return utils.Fail(c, err, "Failed to update billing", h.development)
	}
	return utils.OK(c, "Billing updated successfully", record)
}

func (h *BillingHandler) Delete(c *fiber.Ctx) error {
	user, err := requireUser(c, h.development)
	if err != nil {
		return err
	}
	id, err := objectIDParam(c, "id")
	if err != nil {
		return utils.Fail(c, err, "", h.development)
	}

	record, err := h.billings.Delete(c.Context(), user.ID, id)
	if err != nil {
		return utils.Fail(c, err, "Failed to delete billing", h.development)
	}
	return utils.OK(c, "Billing deleted successfully", record)
}

func (h *BillingHandler) Stats(c *fiber.Ctx) error {
	user, err := requireUser(c, h.development)
	if err != nil {
		return err
	}

	stats, err := h.billings.Stats(c.Context(), user.ID)
	if err != nil {
		return utils.Fail(c, err, "Failed to retrieve billing statistics", h.development)
	}
	return utils.OK(c, "Billing statistics retrieved successfully", stats)
}

// Calculate is the stateless single-line estimate with the fixed 18% GST.
// Quantity defaults to 1 when omitted.
func (h *BillingHandler) Calculate(c *fiber.Ctx) error {
	if _, err := requireUser(c, h.development); err != nil {
		return err
	}

	var req struct {
		Quantity *float64 `json:"quantity"`
		Rate     float64  `json:"rate"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.Fail(c, apperr.Validation("Invalid request body"), "", h.development)
	}

	if req.Rate <= 0 {
		return utils.Fail(c, apperr.Validation("Valid rate is required"), "", h.development)
	}
	quantity := 1.0
	if req.Quantity != nil {
		quantity = *req.Quantity
	}
	if quantity <= 0 {
		return utils.Fail(c, apperr.Validation("Quantity must be greater than 0"), "", h.development)
	}

	calculation, err := billing.LegacyTotals(quantity, req.Rate)
	if err != nil {
		return utils.Fail(c, err, "Failed to calculate billing", h.development)
	}
	return utils.OK(c, "Billing calculation completed", calculation)
}
