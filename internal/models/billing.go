package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BillingItem is one invoice line. TotalAmount is always derived from
// Quantity and Rate, never accepted from the client as-is.
type BillingItem struct {
	Description string  `bson:"description" json:"description" validate:"required"`
	HSNSAC      string  `bson:"hsnSac" json:"hsnSac" validate:"required"`
	Unit        string  `bson:"unit" json:"unit" validate:"required"`
	Quantity    float64 `bson:"quantity" json:"quantity" validate:"required,gt=0"`
	Rate        float64 `bson:"rate" json:"rate" validate:"required,gt=0"`
	TotalAmount float64 `bson:"totalAmount" json:"totalAmount"`
}

// BillingBankDetails is the bank-detail capture embedded in an invoice. The
// field set differs slightly from settings.BankDetails (branch vs branchName).
type BillingBankDetails struct {
	BankName      string `bson:"bankName" json:"bankName" validate:"required"`
	Branch        string `bson:"branch" json:"branch" validate:"required"`
	AccountNumber string `bson:"accountNumber" json:"accountNumber" validate:"required"`
	IFSCCode      string `bson:"ifscCode" json:"ifscCode" validate:"required"`
}

// Billing is a multi-item invoice. TotalInvoiceValue is recomputed from the
// items on every write that touches them.
type Billing struct {
	ID                primitive.ObjectID   `bson:"_id,omitempty" json:"id,omitempty"`
	UserID            primitive.ObjectID   `bson:"userId" json:"userId"`
	CompanyName       string               `bson:"companyName" json:"companyName" validate:"required,max=100"`
	VehicleIDs        []primitive.ObjectID `bson:"vehicleIds" json:"vehicleIds" validate:"required,min=1"`
	BillingDate       time.Time            `bson:"billingDate" json:"billingDate"`
	RecipientName     string               `bson:"recipientName" json:"recipientName" validate:"required,max=100"`
	RecipientAddress  string               `bson:"recipientAddress" json:"recipientAddress" validate:"required,max=500"`
	WorkingTime       string               `bson:"workingTime" json:"workingTime" validate:"required,max=50"`
	Period            string               `bson:"period" json:"period"`
	ProjectLocation   string               `bson:"projectLocation" json:"projectLocation"`
	PlaceOfSupply     string               `bson:"placeOfSupply" json:"placeOfSupply"`
	BillingItems      []BillingItem        `bson:"billingItems" json:"billingItems" validate:"required,min=1,dive"`
	BankDetails       BillingBankDetails   `bson:"bankDetails" json:"bankDetails"`
	TotalInvoiceValue float64              `bson:"totalInvoiceValue" json:"totalInvoiceValue"`
	IsCompleted       bool                 `bson:"isCompleted" json:"isCompleted"`
	GSTEnabled        bool                 `bson:"gstEnabled" json:"gstEnabled"`
	CreatedAt         time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// BillingStats is the dashboard aggregate for a user's invoices.
type BillingStats struct {
	TotalBills     int64     `json:"totalBills"`
	TotalRevenue   float64   `json:"totalRevenue"`
	MonthlyBills   int64     `json:"monthlyBills"`
	MonthlyRevenue float64   `json:"monthlyRevenue"`
	RecentBills    []Billing `json:"recentBills"`
}
