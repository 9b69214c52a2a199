package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email        string             `bson:"email" json:"email" validate:"required,email"`
	Password     string             `bson:"password" json:"-"`
	Role         string             `bson:"role" json:"role"`
	BusinessName string             `bson:"businessName" json:"businessName" validate:"required,max=100"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// UserView is the external projection of a user. The password hash never
// leaves the persistence layer through this type.
type UserView struct {
	ID           primitive.ObjectID `json:"id"`
	Email        string             `json:"email"`
	Role         string             `json:"role"`
	BusinessName string             `json:"businessName"`
	CreatedAt    time.Time          `json:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}

func (u User) View() UserView {
	return UserView{
		ID:           u.ID,
		Email:        u.Email,
		Role:         u.Role,
		BusinessName: u.BusinessName,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
