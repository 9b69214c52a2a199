package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BankDetails struct {
	BankName      string `bson:"bankName" json:"bankName" validate:"required"`
	IFSCCode      string `bson:"ifscCode" json:"ifscCode" validate:"required"`
	AccountNumber string `bson:"accountNumber" json:"accountNumber" validate:"required"`
	BranchName    string `bson:"branchName" json:"branchName" validate:"required"`
}

// Settings holds the invoicing identity of a business. One record per user.
type Settings struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID         primitive.ObjectID `bson:"userId" json:"userId"`
	CompanyName    string             `bson:"companyName" json:"companyName" validate:"required"`
	GSTNumber      string             `bson:"gstNumber" json:"gstNumber" validate:"required"`
	PANNumber      string             `bson:"panNumber" json:"panNumber" validate:"required"`
	ProprietorName string             `bson:"proprietorName" json:"proprietorName" validate:"required"`
	BankDetails    BankDetails        `bson:"bankDetails" json:"bankDetails" validate:"required"`
	ContactNumber  string             `bson:"contactNumber" json:"contactNumber" validate:"required"`
	CompanyAddress string             `bson:"companyAddress" json:"companyAddress" validate:"required"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}
