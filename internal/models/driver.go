package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Driver struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID            primitive.ObjectID `bson:"userId" json:"userId"`
	DriverName        string             `bson:"driverName" json:"driverName" validate:"required"`
	DriverPhoneNumber string             `bson:"driverPhoneNumber" json:"driverPhoneNumber" validate:"required"`
	DriverImage       string             `bson:"driverImage,omitempty" json:"driverImage,omitempty"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt" json:"updatedAt"`
}
