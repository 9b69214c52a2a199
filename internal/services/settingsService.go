package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fleetdesk/FleetDesk/internal/apperr"
	"github.com/fleetdesk/FleetDesk/internal/db"
	"github.com/fleetdesk/FleetDesk/internal/models"
)

// SettingsService stores the single settings record each user has.
type SettingsService struct {
	settings *mongo.Collection
}

func NewSettingsService(database *mongo.Database) *SettingsService {
	return &SettingsService{settings: database.Collection("settings")}
}

// CreateSettingsInput is the one-time settings payload.
type CreateSettingsInput struct {
	CompanyName    string             `json:"companyName"`
	GSTNumber      string             `json:"gstNumber"`
	PANNumber      string             `json:"panNumber"`
	ProprietorName string             `json:"proprietorName"`
	BankDetails    models.BankDetails `json:"bankDetails"`
	ContactNumber  string             `json:"contactNumber"`
	CompanyAddress string             `json:"companyAddress"`
}

// Create inserts the user's settings. A second create for the same user is a
// conflict, enforced by the unique userId index.
func (s *SettingsService) Create(ctx context.Context, userID primitive.ObjectID, input CreateSettingsInput) (models.Settings, error) {
	now := time.Now()
	record := models.Settings{
		ID:             primitive.NewObjectID(),
		UserID:         userID,
		CompanyName:    input.CompanyName,
		GSTNumber:      input.GSTNumber,
		PANNumber:      input.PANNumber,
		ProprietorName: input.ProprietorName,
		BankDetails:    input.BankDetails,
		ContactNumber:  input.ContactNumber,
		CompanyAddress: input.CompanyAddress,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := validateStruct(record); err != nil {
		return models.Settings{}, err
	}

	if _, err := s.settings.InsertOne(ctx, record); err != nil {
		if db.IsDuplicateKey(err) {
			return models.Settings{}, apperr.Conflict("Settings already exist for this user")
		}
		return models.Settings{}, apperr.Internal("Error creating settings", err)
	}
	return record, nil
}

func (s *SettingsService) Get(ctx context.Context, userID primitive.ObjectID) (models.Settings, error) {
	var record models.Settings
	err := s.settings.FindOne(ctx, bson.M{"userId": userID}).Decode(&record)
	if err != nil {
		return models.Settings{}, apperr.NotFound("Settings not found")
	}
	return record, nil
}

// UpdateSettingsInput carries a partial settings update.
type UpdateSettingsInput struct {
	CompanyName    *string             `json:"companyName"`
	GSTNumber      *string             `json:"gstNumber"`
	PANNumber      *string             `json:"panNumber"`
	ProprietorName *string             `json:"proprietorName"`
	BankDetails    *models.BankDetails `json:"bankDetails"`
	ContactNumber  *string             `json:"contactNumber"`
	CompanyAddress *string             `json:"companyAddress"`
}

func (s *SettingsService) Update(ctx context.Context, userID primitive.ObjectID, input UpdateSettingsInput) (models.Settings, error) {
	set := bson.M{}
	for key, val := range map[string]*string{
		"companyName":    input.CompanyName,
		"gstNumber":      input.GSTNumber,
		"panNumber":      input.PANNumber,
		"proprietorName": input.ProprietorName,
		"contactNumber":  input.ContactNumber,
		"companyAddress": input.CompanyAddress,
	} {
		if val != nil {
			set[key] = *val
		}
	}
	if input.BankDetails != nil {
		if err := validateStruct(*input.BankDetails); err != nil {
			return models.Settings{}, err
		}
		set["bankDetails"] = *input.BankDetails
	}
	if len(set) == 0 {
		return models.Settings{}, apperr.Validation("No valid fields provided for update")
	}
	set["updatedAt"] = time.Now()

	var record models.Settings
	err := s.settings.FindOneAndUpdate(ctx,
		bson.M{"userId": userID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&record)
	if err != nil {
		return models.Settings{}, apperr.NotFound("Settings not found")
	}
	return record, nil
}

func (s *SettingsService) Delete(ctx context.Context, userID primitive.ObjectID) (models.Settings, error) {
	var record models.Settings
	err := s.settings.FindOneAndDelete(ctx, bson.M{"userId": userID}).Decode(&record)
	if err != nil {
		return models.Settings{}, apperr.NotFound("Settings not found")
	}
	return record, nil
}
