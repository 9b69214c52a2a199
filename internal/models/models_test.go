package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUserViewOmitsPassword(t *testing.T) {
	user := User{
		ID:           primitive.NewObjectID(),
		Email:        "owner@example.com",
		Password:     "$2a$10$secret-hash",
		Role:         RoleUser,
		BusinessName: "Acme Logistics",
	}

	view := user.View()
	assert.Equal(t, user.Email, view.Email)
	assert.Equal(t, user.BusinessName, view.BusinessName)

	raw, err := json.Marshal(view)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret-hash")
	assert.NotContains(t, string(raw), "password")
}

func TestUserJSONHidesPassword(t *testing.T) {
	raw, err := json.Marshal(User{Email: "a@b.c", Password: "hash"})
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "hash")
}

func TestValidVehicleType(t *testing.T) {
	for _, v := range VehicleTypes {
		assert.True(t, ValidVehicleType(v))
	}
	assert.False(t, ValidVehicleType("Spaceship"))
	assert.False(t, ValidVehicleType("car"))
	assert.False(t, ValidVehicleType(""))
}

func TestValidBookingStatus(t *testing.T) {
	assert.True(t, ValidBookingStatus("Pending"))
	assert.True(t, ValidBookingStatus("Completed"))
	assert.True(t, ValidBookingStatus("inProgress"))
	assert.False(t, ValidBookingStatus("InProgress"))
	assert.False(t, ValidBookingStatus("pending"))
	assert.False(t, ValidBookingStatus(""))
}
