package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fleetdesk/FleetDesk/internal/apperr"
	"github.com/fleetdesk/FleetDesk/internal/models"
)

func TestParseVehicleIDs(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()

	ids, err := parseVehicleIDs([]string{a.Hex(), " " + b.Hex() + " "})
	require.NoError(t, err)
	assert.Equal(t, []primitive.ObjectID{a, b}, ids)

	// Duplicates collapse.
	ids, err = parseVehicleIDs([]string{a.Hex(), a.Hex(), b.Hex()})
	require.NoError(t, err)
	assert.Len(t, ids, 2)

	_, err = parseVehicleIDs([]string{"nothex"})
	assert.Error(t, err)
}

func TestValidateBankDetails(t *testing.T) {
	full := models.BillingBankDetails{
		BankName:      "State Bank",
		Branch:        "MG Road",
		AccountNumber: "1234567890",
		IFSCCode:      "SBIN0001234",
	}
	assert.NoError(t, validateBankDetails(full))

	cases := []models.BillingBankDetails{
		{Branch: "b", AccountNumber: "1", IFSCCode: "i"},
		{BankName: "n", AccountNumber: "1", IFSCCode: "i"},
		{BankName: "n", Branch: "b", IFSCCode: "i"},
		{BankName: "n", Branch: "b", AccountNumber: "1"},
		{BankName: "  ", Branch: "b", AccountNumber: "1", IFSCCode: "i"},
	}
	for i, c := range cases {
		err := validateBankDetails(c)
		require.Error(t, err, "case %d", i)
		var appErr *apperr.Error
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Status)
	}
}

func TestBillingFiltersToStore(t *testing.T) {
	vehicleID := primitive.NewObjectID()
	completed := true

	filters, err := BillingFilters{
		SearchQuery: "acme",
		CompanyName: "Acme",
		VehicleID:   vehicleID.Hex(),
		IsCompleted: &completed,
	}.toStore()
	require.NoError(t, err)
	assert.Len(t, filters, 4)

	_, err = BillingFilters{VehicleID: "bad-hex"}.toStore()
	assert.Error(t, err)

	filters, err = BillingFilters{}.toStore()
	require.NoError(t, err)
	assert.Empty(t, filters)
}

func TestCreateBillingInputTrim(t *testing.T) {
	in := CreateBillingInput{
		CompanyName:   "  Acme  ",
		RecipientName: " Ravi ",
		BillingItems: []models.BillingItem{
			{Description: " Crane hire ", HSNSAC: " 9966 ", Unit: " hours "},
		},
	}
	in.trim()
	assert.Equal(t, "Acme", in.CompanyName)
	assert.Equal(t, "Ravi", in.RecipientName)
	assert.Equal(t, "Crane hire", in.BillingItems[0].Description)
	assert.Equal(t, "9966", in.BillingItems[0].HSNSAC)
	assert.Equal(t, "hours", in.BillingItems[0].Unit)
}
