package services

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fleetdesk/FleetDesk/internal/apperr"
	"github.com/fleetdesk/FleetDesk/internal/billing"
	"github.com/fleetdesk/FleetDesk/internal/models"
	"github.com/fleetdesk/FleetDesk/internal/store"
	"github.com/fleetdesk/FleetDesk/internal/utils"
)

// BillingService owns the billings collection and consults the vehicle
// service for ownership checks.
type BillingService struct {
	billings *mongo.Collection
	vehicles *VehicleService
}

func NewBillingService(database *mongo.Database, vehicles *VehicleService) *BillingService {
	return &BillingService{
		billings: database.Collection("billings"),
		vehicles: vehicles,
	}
}

// CreateBillingInput is the payload for creating an invoice.
type CreateBillingInput struct {
	CompanyName      string                    `json:"companyName"`
	VehicleIDs       []string                  `json:"vehicleIds"`
	BillingDate      *time.Time                `json:"billingDate"`
	RecipientName    string                    `json:"recipientName"`
	RecipientAddress string                    `json:"recipientAddress"`
	WorkingTime      string                    `json:"workingTime"`
	Period           string                    `json:"period"`
	ProjectLocation  string                    `json:"projectLocation"`
	PlaceOfSupply    string                    `json:"placeOfSupply"`
	BillingItems     []models.BillingItem      `json:"billingItems"`
	BankDetails      models.BillingBankDetails `json:"bankDetails"`
	IsCompleted      *bool                     `json:"isCompleted"`
	GSTEnabled       bool                      `json:"gstEnabled"`
}

// Create validates and persists a new invoice. Validation runs in a fixed
// order: top-level fields, then every item, then bank details, then vehicle
// ownership.
func (s *BillingService) Create(ctx context.Context, userID primitive.ObjectID, input CreateBillingInput) (models.Billing, error) {
	input.trim()

	if input.CompanyName == "" || input.RecipientName == "" ||
		input.RecipientAddress == "" || input.WorkingTime == "" {
		return models.Billing{}, apperr.Validation("All required fields must be provided")
	}
	if len(input.VehicleIDs) == 0 {
		return models.Billing{}, apperr.Validation("At least one vehicle is required")
	}

	if len(input.BillingItems) == 0 {
		return models.Billing{}, apperr.Validation("At least one billing item is required")
	}
	for _, item := range input.BillingItems {
		if err := billing.ValidateItem(item); err != nil {
			return models.Billing{}, err
		}
	}

	if err := validateBankDetails(input.BankDetails); err != nil {
		return models.Billing{}, err
	}

	vehicleIDs, err := parseVehicleIDs(input.VehicleIDs)
	if err != nil {
		return models.Billing{}, err
	}
	if err := s.verifyOwnership(ctx, userID, vehicleIDs); err != nil {
		return models.Billing{}, err
	}

	items := make([]models.BillingItem, len(input.BillingItems))
	copy(items, input.BillingItems)
	total, err := billing.ComputeInvoice(items)
	if err != nil {
		return models.Billing{}, err
	}

	billingDate := time.Now()
	if input.BillingDate != nil {
		billingDate = *input.BillingDate
	}
	isCompleted := true
	if input.IsCompleted != nil {
		isCompleted = *input.IsCompleted
	}

	now := time.Now()
	record := models.Billing{
		ID:                primitive.NewObjectID(),
		UserID:            userID,
		CompanyName:       input.CompanyName,
		VehicleIDs:        vehicleIDs,
		BillingDate:       billingDate,
		RecipientName:     input.RecipientName,
		RecipientAddress:  input.RecipientAddress,
		WorkingTime:       input.WorkingTime,
		Period:            input.Period,
		ProjectLocation:   input.ProjectLocation,
		PlaceOfSupply:     input.PlaceOfSupply,
		BillingItems:      items,
		BankDetails:       input.BankDetails,
		TotalInvoiceValue: total,
		IsCompleted:       isCompleted,
		GSTEnabled:        input.GSTEnabled,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := validateStruct(record); err != nil {
		return models.Billing{}, err
	}

	if _, err := s.billings.InsertOne(ctx, record); err != nil {
		return models.Billing{}, apperr.Internal("Failed to create billing", err)
	}
	return record, nil
}

// BillingFilters are the typed listing filters.
type BillingFilters struct {
	SearchQuery string
	CompanyName string
	VehicleID   string
	DateFrom    time.Time
	DateTo      time.Time
	IsCompleted *bool
}

func (f BillingFilters) toStore() ([]store.Filter, error) {
	var filters []store.Filter
	if f.SearchQuery != "" {
		filters = append(filters, store.TextSearch{Query: strings.TrimSpace(f.SearchQuery)})
	}
	if f.CompanyName != "" {
		filters = append(filters, store.Regex{Field: "companyName", Value: f.CompanyName})
	}
	if f.VehicleID != "" {
		id, err := primitive.ObjectIDFromHex(f.VehicleID)
		if err != nil {
			return nil, apperr.Validation("Invalid vehicle ID")
		}
		filters = append(filters, store.Exact{Field: "vehicleIds", Value: id})
	}
	if !f.DateFrom.IsZero() || !f.DateTo.IsZero() {
		filters = append(filters, store.DateRange{Field: "billingDate", From: f.DateFrom, To: f.DateTo})
	}
	if f.IsCompleted != nil {
		filters = append(filters, store.Exact{Field: "isCompleted", Value: *f.IsCompleted})
	}
	return filters, nil
}

// List returns the user's invoices newest first with filters applied.
func (s *BillingService) List(ctx context.Context, userID primitive.ObjectID, f BillingFilters, page, limit int) ([]models.Billing, utils.Pagination, error) {
	filters, err := f.toStore()
	if err != nil {
		return nil, utils.Pagination{}, err
	}
	query := store.OwnerQuery(userID, filters...)

	total, err := s.billings.CountDocuments(ctx, query)
	if err != nil {
		return nil, utils.Pagination{}, apperr.Internal("Failed to retrieve billings", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))
	cursor, err := s.billings.Find(ctx, query, opts)
	if err != nil {
		return nil, utils.Pagination{}, apperr.Internal("Failed to retrieve billings", err)
	}
	defer cursor.Close(ctx)

	bills := []models.Billing{}
	if err := cursor.All(ctx, &bills); err != nil {
		return nil, utils.Pagination{}, apperr.Internal("Failed to retrieve billings", err)
	}
	return bills, utils.NewPagination(page, limit, total), nil
}

// ByID returns the invoice only when it belongs to the user.
func (s *BillingService) ByID(ctx context.Context, userID, id primitive.ObjectID) (models.Billing, error) {
	var record models.Billing
	err := s.billings.FindOne(ctx, bson.M{"_id": id, "userId": userID}).Decode(&record)
	if err != nil {
		return models.Billing{}, apperr.NotFound("Billing not found")
	}
	return record, nil
}

// UpdateBillingInput is a partial invoice update. Nil fields stay untouched.
type UpdateBillingInput struct {
	CompanyName      *string                    `json:"companyName"`
	VehicleIDs       []string                   `json:"vehicleIds"`
	BillingDate      *time.Time                 `json:"billingDate"`
	RecipientName    *string                    `json:"recipientName"`
	RecipientAddress *string                    `json:"recipientAddress"`
	WorkingTime      *string                    `json:"workingTime"`
	Period           *string                    `json:"period"`
	ProjectLocation  *string                    `json:"projectLocation"`
	PlaceOfSupply    *string                    `json:"placeOfSupply"`
	BillingItems     []models.BillingItem       `json:"billingItems"`
	BankDetails      *models.BillingBankDetails `json:"bankDetails"`
	IsCompleted      *bool                      `json:"isCompleted"`
	GSTEnabled       *bool                      `json:"gstEnabled"`
}

// Update applies a partial update. Vehicle reassignment re-validates
// ownership; any touch of the items recomputes every total.
func (s *BillingService) Update(ctx context.Context, userID, id primitive.ObjectID, input UpdateBillingInput) (models.Billing, error) {
	set := bson.M{}

	if len(input.VehicleIDs) > 0 {
		vehicleIDs, err := parseVehicleIDs(input.VehicleIDs)
		if err != nil {
			return models.Billing{}, err
		}
		if err := s.verifyOwnership(ctx, userID, vehicleIDs); err != nil {
			return models.Billing{}, err
		}
		set["vehicleIds"] = vehicleIDs
	}

	setTrimmed := func(key string, val *string, required bool) error {
		if val == nil {
			return nil
		}
		v := strings.TrimSpace(*val)
		if required && v == "" {
			return apperr.Validation(key + " cannot be empty")
		}
		set[key] = v
		return nil
	}
	for _, f := range []struct {
		key      string
		val      *string
		required bool
	}{
		{"companyName", input.CompanyName, true},
		{"recipientName", input.RecipientName, true},
		{"recipientAddress", input.RecipientAddress, true},
		{"workingTime", input.WorkingTime, true},
		{"period", input.Period, false},
		{"projectLocation", input.ProjectLocation, false},
		{"placeOfSupply", input.PlaceOfSupply, false},
	} {
		if err := setTrimmed(f.key, f.val, f.required); err != nil {
			return models.Billing{}, err
		}
	}

	if input.BillingDate != nil {
		set["billingDate"] = *input.BillingDate
	}
	if input.BankDetails != nil {
		if err := validateBankDetails(*input.BankDetails); err != nil {
			return models.Billing{}, err
		}
		set["bankDetails"] = *input.BankDetails
	}
	if input.IsCompleted != nil {
		set["isCompleted"] = *input.IsCompleted
	}
	if input.GSTEnabled != nil {
		set["gstEnabled"] = *input.GSTEnabled
	}

	if len(input.BillingItems) > 0 {
		items := billing.MergeItems(input.BillingItems)
		total := billing.RecomputeInvoice(items)
		set["billingItems"] = items
		set["totalInvoiceValue"] = total
	}

	if len(set) == 0 {
		return models.Billing{}, apperr.Validation("No valid fields provided for update")
	}
	set["updatedAt"] = time.Now()

	var record models.Billing
	err := s.billings.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "userId": userID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&record)
	if err != nil {
		return models.Billing{}, apperr.NotFound("Billing not found")
	}
	return record, nil
}

// Delete removes a completed invoice. Incomplete invoices report not found
// and stay untouched.
func (s *BillingService) Delete(ctx context.Context, userID, id primitive.ObjectID) (models.Billing, error) {
	var record models.Billing
	err := s.billings.FindOneAndDelete(ctx, bson.M{
		"_id":         id,
		"userId":      userID,
		"isCompleted": true,
	}).Decode(&record)
	if err != nil {
		return models.Billing{}, apperr.NotFound("Billing not found or not completed")
	}
	return record, nil
}

// Stats aggregates completed-invoice counts and revenue, overall and for the
// current calendar month, plus the five most recent invoices.
func (s *BillingService) Stats(ctx context.Context, userID primitive.ObjectID) (models.BillingStats, error) {
	completed := bson.M{"userId": userID, "isCompleted": true}

	totalBills, err := s.billings.CountDocuments(ctx, completed)
	if err != nil {
		return models.BillingStats{}, apperr.Internal("Failed to retrieve billing statistics", err)
	}

	now := time.Now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthly := bson.M{
		"userId":      userID,
		"isCompleted": true,
		"createdAt":   bson.M{"$gte": startOfMonth},
	}
	monthlyBills, err := s.billings.CountDocuments(ctx, monthly)
	if err != nil {
		return models.BillingStats{}, apperr.Internal("Failed to retrieve billing statistics", err)
	}

	totalRevenue, err := s.sumRevenue(ctx, completed)
	if err != nil {
		return models.BillingStats{}, err
	}
	monthlyRevenue, err := s.sumRevenue(ctx, monthly)
	if err != nil {
		return models.BillingStats{}, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(5)
	cursor, err := s.billings.Find(ctx, completed, opts)
	if err != nil {
		return models.BillingStats{}, apperr.Internal("Failed to retrieve billing statistics", err)
	}
	defer cursor.Close(ctx)

	recent := []models.Billing{}
	if err := cursor.All(ctx, &recent); err != nil {
		return models.BillingStats{}, apperr.Internal("Failed to retrieve billing statistics", err)
	}

	return models.BillingStats{
		TotalBills:     totalBills,
		TotalRevenue:   billing.Round2(totalRevenue),
		MonthlyBills:   monthlyBills,
		MonthlyRevenue: billing.Round2(monthlyRevenue),
		RecentBills:    recent,
	}, nil
}

func (s *BillingService) sumRevenue(ctx context.Context, match bson.M) (float64, error) {
	cursor, err := s.billings.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{
			"_id":     nil,
			"revenue": bson.M{"$sum": "$totalInvoiceValue"},
		}}},
	})
	if err != nil {
		return 0, apperr.Internal("Failed to retrieve billing statistics", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Revenue float64 `bson:"revenue"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, apperr.Internal("Failed to retrieve billing statistics", err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Revenue, nil
}

// verifyOwnership rejects the whole request unless every referenced vehicle
// belongs to the user. Partial matches are a single not-found error, never
// itemized.
func (s *BillingService) verifyOwnership(ctx context.Context, userID primitive.ObjectID, ids []primitive.ObjectID) error {
	count, err := s.vehicles.CountOwned(ctx, userID, ids)
	if err != nil {
		return apperr.Internal("Failed to verify vehicles", err)
	}
	if count != int64(len(ids)) {
		return apperr.NotFound("Vehicle not found or doesn't belong to user")
	}
	return nil
}

func parseVehicleIDs(hexIDs []string) ([]primitive.ObjectID, error) {
	seen := make(map[primitive.ObjectID]bool, len(hexIDs))
	ids := make([]primitive.ObjectID, 0, len(hexIDs))
	for _, h := range hexIDs {
		id, err := primitive.ObjectIDFromHex(strings.TrimSpace(h))
		if err != nil {
			return nil, apperr.Validation("Invalid vehicle ID")
		}
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func validateBankDetails(b models.BillingBankDetails) error {
	switch {
	case strings.TrimSpace(b.BankName) == "":
		return apperr.Validation("Bank name is required")
	case strings.TrimSpace(b.Branch) == "":
		return apperr.Validation("Branch is required")
	case strings.TrimSpace(b.AccountNumber) == "":
		return apperr.Validation("Account number is required")
	case strings.TrimSpace(b.IFSCCode) == "":
		return apperr.Validation("IFSC code is required")
	}
	return nil
}

func (in *CreateBillingInput) trim() {
	in.CompanyName = strings.TrimSpace(in.CompanyName)
	in.RecipientName = strings.TrimSpace(in.RecipientName)
	in.RecipientAddress = strings.TrimSpace(in.RecipientAddress)
	in.WorkingTime = strings.TrimSpace(in.WorkingTime)
	in.Period = strings.TrimSpace(in.Period)
	in.ProjectLocation = strings.TrimSpace(in.ProjectLocation)
	in.PlaceOfSupply = strings.TrimSpace(in.PlaceOfSupply)
	for i := range in.BillingItems {
		in.BillingItems[i].Description = strings.TrimSpace(in.BillingItems[i].Description)
		in.BillingItems[i].HSNSAC = strings.TrimSpace(in.BillingItems[i].HSNSAC)
		in.BillingItems[i].Unit = strings.TrimSpace(in.BillingItems[i].Unit)
	}
}
