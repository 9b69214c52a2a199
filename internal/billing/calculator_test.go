package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetdesk/FleetDesk/internal/models"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.23, Round2(1.2349))
	assert.Equal(t, 1.24, Round2(1.235))
	assert.Equal(t, -1.24, Round2(-1.235))
	assert.Equal(t, 0.0, Round2(0))
}

func TestLineTotal(t *testing.T) {
	total, err := LineTotal(3, 100)
	require.NoError(t, err)
	assert.Equal(t, 300.0, total)

	total, err = LineTotal(2.5, 99.99)
	require.NoError(t, err)
	assert.Equal(t, 249.98, total)

	_, err = LineTotal(0, 100)
	assert.Error(t, err)
	_, err = LineTotal(1, 0)
	assert.Error(t, err)
	_, err = LineTotal(-1, 50)
	assert.Error(t, err)
}

func TestLegacyTotals(t *testing.T) {
	calc, err := LegacyTotals(3, 100)
	require.NoError(t, err)
	assert.Equal(t, 300.0, calc.Subtotal)
	assert.Equal(t, 54.0, calc.TaxAmount)
	assert.Equal(t, 354.0, calc.Total)
	assert.Equal(t, GSTRate, calc.TaxRate)

	_, err = LegacyTotals(1, -5)
	assert.Error(t, err)
}

func TestComputeInvoice(t *testing.T) {
	items := []models.BillingItem{
		{Description: "Crane hire", HSNSAC: "9966", Unit: "hours", Quantity: 8, Rate: 1500},
		{Description: "Operator", HSNSAC: "9985", Unit: "days", Quantity: 1, Rate: 999.99},
	}
	total, err := ComputeInvoice(items)
	require.NoError(t, err)
	assert.Equal(t, 12999.99, total)
	assert.Equal(t, 12000.0, items[0].TotalAmount)
	assert.Equal(t, 999.99, items[1].TotalAmount)

	// Same input, same output.
	again, err := ComputeInvoice(items)
	require.NoError(t, err)
	assert.Equal(t, total, again)
}

func TestComputeInvoiceRejectsBadItems(t *testing.T) {
	_, err := ComputeInvoice(nil)
	assert.Error(t, err)

	cases := []models.BillingItem{
		{HSNSAC: "9966", Unit: "hours", Quantity: 1, Rate: 10},
		{Description: "x", Unit: "hours", Quantity: 1, Rate: 10},
		{Description: "x", HSNSAC: "9966", Quantity: 1, Rate: 10},
		{Description: "x", HSNSAC: "9966", Unit: "hours", Quantity: 0, Rate: 10},
		{Description: "x", HSNSAC: "9966", Unit: "hours", Quantity: 1, Rate: 0},
	}
	for _, item := range cases {
		_, err := ComputeInvoice([]models.BillingItem{item})
		assert.Error(t, err)
	}
}

func TestMergeItemsDefaults(t *testing.T) {
	merged := MergeItems([]models.BillingItem{
		{Description: "a", HSNSAC: "1", Unit: "hours", Rate: 250},
		{Description: "b", HSNSAC: "2", Unit: "days", Quantity: 3},
		{Description: "c", HSNSAC: "3", Unit: "trips", Quantity: 2, Rate: 500},
	})

	// Missing quantity becomes 1.
	assert.Equal(t, 1.0, merged[0].Quantity)
	assert.Equal(t, 250.0, merged[0].Rate)
	// Missing rate stays 0.
	assert.Equal(t, 3.0, merged[1].Quantity)
	assert.Equal(t, 0.0, merged[1].Rate)
	// Complete items pass through.
	assert.Equal(t, 2.0, merged[2].Quantity)
	assert.Equal(t, 500.0, merged[2].Rate)
}

func TestRecomputeInvoice(t *testing.T) {
	items := MergeItems([]models.BillingItem{
		{Description: "a", HSNSAC: "1", Unit: "hours", Quantity: 3},
		{Description: "b", HSNSAC: "2", Unit: "days", Quantity: 2, Rate: 100.255},
	})
	total := RecomputeInvoice(items)

	// Defaulted rate of 0 produces a zero line, not an error.
	assert.Equal(t, 0.0, items[0].TotalAmount)
	assert.Equal(t, 200.51, items[1].TotalAmount)
	assert.Equal(t, 200.51, total)
}
