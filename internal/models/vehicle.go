package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VehicleTypes is the fixed set of accepted vehicle categories.
var VehicleTypes = []string{
	"Car",
	"Truck",
	"Van",
	"Bus",
	"Motorcycle",
	"Auto Rickshaw",
	"Tempo Traveller",
	"Trailer",
	"Other",
}

// ValidVehicleType reports whether t is one of VehicleTypes.
func ValidVehicleType(t string) bool {
	for _, v := range VehicleTypes {
		if v == t {
			return true
		}
	}
	return false
}

type Vehicle struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID        primitive.ObjectID `bson:"userId" json:"userId"`
	VehicleNumber string             `bson:"vehicleNumber" json:"vehicleNumber" validate:"required,max=20"`
	VehicleType   string             `bson:"vehicleType" json:"vehicleType" validate:"required"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}
