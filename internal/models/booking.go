package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	BookingPending    = "Pending"
	BookingCompleted  = "Completed"
	BookingInProgress = "inProgress"
)

// ValidBookingStatus reports whether s is an accepted booking status.
func ValidBookingStatus(s string) bool {
	return s == BookingPending || s == BookingCompleted || s == BookingInProgress
}

// Booking is public intake and is not scoped to a user.
type Booking struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"name" json:"name" validate:"required"`
	Email       string             `bson:"email,omitempty" json:"email,omitempty" validate:"omitempty,email"`
	PhoneNumber string             `bson:"phoneNumber" json:"phoneNumber" validate:"required"`
	Date        time.Time          `bson:"date" json:"date" validate:"required"`
	Time        string             `bson:"time" json:"time" validate:"required"`
	Pickup      string             `bson:"pickup" json:"pickup" validate:"required"`
	Drop        string             `bson:"drop" json:"drop" validate:"required"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Vehicle     string             `bson:"vehicle" json:"vehicle" validate:"required"`
	Status      string             `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
