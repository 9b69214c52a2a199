package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetdesk/FleetDesk/internal/apperr"
	"github.com/fleetdesk/FleetDesk/internal/models"
)

func TestValidateStruct(t *testing.T) {
	valid := models.Driver{DriverName: "Ravi", DriverPhoneNumber: "9876543210"}
	assert.NoError(t, validateStruct(valid))

	err := validateStruct(models.Driver{DriverPhoneNumber: "9876543210"})
	require.Error(t, err)
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Status)
	assert.Contains(t, appErr.Message, "required")
}

func TestValidateStructEmail(t *testing.T) {
	user := models.User{Email: "not-an-email", BusinessName: "Acme"}
	err := validateStruct(user)
	require.Error(t, err)
	assert.Contains(t, err.(*apperr.Error).Message, "email")

	// Optional booking email is only checked when present.
	booking := models.Booking{
		Name: "A", PhoneNumber: "1", Date: time.Now(), Time: "10:00",
		Pickup: "X", Drop: "Y", Vehicle: "Car",
	}
	assert.NoError(t, validateStruct(booking))

	booking.Email = "bad"
	assert.Error(t, validateStruct(booking))
}
