// Package billing holds the pure invoice arithmetic: line totals, the legacy
// GST estimate, and the invoice-level aggregation. Everything here must stay
// consistent across create, update, and the standalone calculate endpoint.
package billing

import (
	"math"

	"github.com/fleetdesk/FleetDesk/internal/apperr"
	"github.com/fleetdesk/FleetDesk/internal/models"
)

// GSTRate is the fixed 18% GST used by the legacy single-line estimate.
const GSTRate = 0.18

// Round2 rounds to two decimals, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// LineTotal computes quantity * rate rounded to currency precision.
func LineTotal(quantity, rate float64) (float64, error) {
	if quantity <= 0 {
		return 0, apperr.Validation("Quantity must be greater than 0")
	}
	if rate <= 0 {
		return 0, apperr.Validation("Rate must be greater than 0")
	}
	return Round2(quantity * rate), nil
}

// LegacyCalculation is the pre-multi-item estimate: subtotal plus 18% GST.
type LegacyCalculation struct {
	Quantity  float64 `json:"quantity"`
	Rate      float64 `json:"rate"`
	Subtotal  float64 `json:"subtotal"`
	TaxAmount float64 `json:"taxAmount"`
	Total     float64 `json:"total"`
	TaxRate   float64 `json:"taxRate"`
}

// LegacyTotals applies the fixed-rate GST math to a single line.
func LegacyTotals(quantity, rate float64) (LegacyCalculation, error) {
	subtotal, err := LineTotal(quantity, rate)
	if err != nil {
		return LegacyCalculation{}, err
	}
	tax := Round2(subtotal * GSTRate)
	return LegacyCalculation{
		Quantity:  quantity,
		Rate:      rate,
		Subtotal:  subtotal,
		TaxAmount: tax,
		Total:     Round2(subtotal + tax),
		TaxRate:   GSTRate,
	}, nil
}

// ValidateItem checks a single line item for completeness.
func ValidateItem(item models.BillingItem) error {
	if item.Description == "" {
		return apperr.Validation("Item description is required")
	}
	if item.HSNSAC == "" {
		return apperr.Validation("Item HSN/SAC code is required")
	}
	if item.Unit == "" {
		return apperr.Validation("Item unit is required")
	}
	if item.Quantity <= 0 {
		return apperr.Validation("Item quantity must be greater than 0")
	}
	if item.Rate <= 0 {
		return apperr.Validation("Item rate must be greater than 0")
	}
	return nil
}

// ComputeInvoice validates every item, fills each item's TotalAmount, and
// returns the invoice total. Running it again on unchanged items yields the
// same result.
func ComputeInvoice(items []models.BillingItem) (float64, error) {
	if len(items) == 0 {
		return 0, apperr.Validation("At least one billing item is required")
	}
	var sum float64
	for i := range items {
		if err := ValidateItem(items[i]); err != nil {
			return 0, err
		}
		total, err := LineTotal(items[i].Quantity, items[i].Rate)
		if err != nil {
			return 0, err
		}
		items[i].TotalAmount = total
		sum += total
	}
	return Round2(sum), nil
}

// MergeItems normalizes items supplied on an update. A missing quantity
// defaults to 1 while a missing rate stays 0, matching the historical update
// behavior that clients depend on.
func MergeItems(updated []models.BillingItem) []models.BillingItem {
	merged := make([]models.BillingItem, len(updated))
	for i, item := range updated {
		if item.Quantity == 0 {
			item.Quantity = 1
		}
		merged[i] = item
	}
	return merged
}

// RecomputeInvoice is the permissive variant used on updates: totals are
// rederived without re-validating positivity, so a defaulted rate of 0
// produces zero totals rather than an error.
func RecomputeInvoice(items []models.BillingItem) float64 {
	var sum float64
	for i := range items {
		items[i].TotalAmount = Round2(items[i].Quantity * items[i].Rate)
		sum += items[i].TotalAmount
	}
	return Round2(sum)
}
