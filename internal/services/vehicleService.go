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
	"github.com/fleetdesk/FleetDesk/internal/store"
	"github.com/fleetdesk/FleetDesk/internal/utils"
)

// VehicleService owns the vehicles collection.
type VehicleService struct {
	vehicles *mongo.Collection
}

func NewVehicleService(database *mongo.Database) *VehicleService {
	return &VehicleService{vehicles: database.Collection("vehicles")}
}

// VehicleStats is the dashboard aggregate for a user's fleet.
type VehicleStats struct {
	TotalVehicles  int64            `json:"totalVehicles"`
	RecentVehicles []models.Vehicle `json:"recentVehicles"`
}

// Create registers a vehicle for the user. The number is normalized before
// the uniqueness check so " ka 01 " and "KA 01" collide.
func (s *VehicleService) Create(ctx context.Context, userID primitive.ObjectID, number, vehicleType string) (models.Vehicle, error) {
	number = utils.NormalizeVehicleNumber(number)
	if number == "" {
		return models.Vehicle{}, apperr.Validation("Vehicle number is required")
	}
	if vehicleType == "" {
		return models.Vehicle{}, apperr.Validation("Vehicle type is required")
	}
	if !models.ValidVehicleType(vehicleType) {
		return models.Vehicle{}, apperr.Validation("Invalid vehicle type")
	}

	now := time.Now()
	vehicle := models.Vehicle{
		ID:            primitive.NewObjectID(),
		UserID:        userID,
		VehicleNumber: number,
		VehicleType:   vehicleType,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := validateStruct(vehicle); err != nil {
		return models.Vehicle{}, err
	}

	if _, err := s.vehicles.InsertOne(ctx, vehicle); err != nil {
		if db.IsDuplicateKey(err) {
			return models.Vehicle{}, apperr.Conflict("Vehicle number already exists")
		}
		return models.Vehicle{}, apperr.Internal("Failed to create vehicle", err)
	}
	return vehicle, nil
}

// List returns the user's vehicles, newest first, optionally filtered by a
// case-insensitive substring of the vehicle number.
func (s *VehicleService) List(ctx context.Context, userID primitive.ObjectID, search string, page, limit int) ([]models.Vehicle, utils.Pagination, error) {
	var filters []store.Filter
	if search != "" {
		filters = append(filters, store.Regex{Field: "vehicleNumber", Value: search})
	}
	query := store.OwnerQuery(userID, filters...)

	total, err := s.vehicles.CountDocuments(ctx, query)
	if err != nil {
		return nil, utils.Pagination{}, apperr.Internal("Failed to retrieve vehicles", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))
	cursor, err := s.vehicles.Find(ctx, query, opts)
	if err != nil {
		return nil, utils.Pagination{}, apperr.Internal("Failed to retrieve vehicles", err)
	}
	defer cursor.Close(ctx)

	vehicles := []models.Vehicle{}
	if err := cursor.All(ctx, &vehicles); err != nil {
		return nil, utils.Pagination{}, apperr.Internal("Failed to retrieve vehicles", err)
	}
	return vehicles, utils.NewPagination(page, limit, total), nil
}

// ByID returns the vehicle only when it belongs to the user.
func (s *VehicleService) ByID(ctx context.Context, userID, id primitive.ObjectID) (models.Vehicle, error) {
	var vehicle models.Vehicle
	err := s.vehicles.FindOne(ctx, bson.M{"_id": id, "userId": userID}).Decode(&vehicle)
	if err != nil {
		return models.Vehicle{}, apperr.NotFound("Vehicle not found")
	}
	return vehicle, nil
}

// UpdateVehicleInput carries the optional fields of a vehicle update.
type UpdateVehicleInput struct {
	VehicleNumber *string `json:"vehicleNumber"`
	VehicleType   *string `json:"vehicleType"`
}

// Update applies a partial update, re-normalizing and re-checking uniqueness
// when the number changes.
func (s *VehicleService) Update(ctx context.Context, userID, id primitive.ObjectID, input UpdateVehicleInput) (models.Vehicle, error) {
	set := bson.M{}

	if input.VehicleNumber != nil {
		number := utils.NormalizeVehicleNumber(*input.VehicleNumber)
		if number == "" {
			return models.Vehicle{}, apperr.Validation("Vehicle number cannot be empty")
		}
		count, err := s.vehicles.CountDocuments(ctx, bson.M{
			"userId":        userID,
			"vehicleNumber": number,
			"_id":           bson.M{"$ne": id},
		})
		if err != nil {
			return models.Vehicle{}, apperr.Internal("Failed to update vehicle", err)
		}
		if count > 0 {
			return models.Vehicle{}, apperr.Conflict("Vehicle number already exists")
		}
		set["vehicleNumber"] = number
	}

	if input.VehicleType != nil {
		if !models.ValidVehicleType(*input.VehicleType) {
			return models.Vehicle{}, apperr.Validation("Invalid vehicle type")
		}
		set["vehicleType"] = *input.VehicleType
	}

	if len(set) == 0 {
		return models.Vehicle{}, apperr.Validation("No valid fields provided for update")
	}
	set["updatedAt"] = time.Now()

	var vehicle models.Vehicle
	err := s.vehicles.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "userId": userID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&vehicle)
	if err != nil {
		if db.IsDuplicateKey(err) {
			return models.Vehicle{}, apperr.Conflict("Vehicle number already exists")
		}
		return models.Vehicle{}, apperr.NotFound("Vehicle not found")
	}
	return vehicle, nil
}

// Delete removes the vehicle when it belongs to the user.
func (s *VehicleService) Delete(ctx context.Context, userID, id primitive.ObjectID) (models.Vehicle, error) {
	var vehicle models.Vehicle
	err := s.vehicles.FindOneAndDelete(ctx, bson.M{"_id": id, "userId": userID}).Decode(&vehicle)
	if err != nil {
		return models.Vehicle{}, apperr.NotFound("Vehicle not found")
	}
	return vehicle, nil
}

// Stats returns the fleet total and the five most recent vehicles.
func (s *VehicleService) Stats(ctx context.Context, userID primitive.ObjectID) (VehicleStats, error) {
	total, err := s.vehicles.CountDocuments(ctx, bson.M{"userId": userID})
	if err != nil {
		return VehicleStats{}, apperr.Internal("Failed to retrieve vehicle statistics", err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(5)
	cursor, err := s.vehicles.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return VehicleStats{}, apperr.Internal("Failed to retrieve vehicle statistics", err)
	}
	defer cursor.Close(ctx)

	recent := []models.Vehicle{}
	if err := cursor.All(ctx, &recent); err != nil {
		return VehicleStats{}, apperr.Internal("Failed to retrieve vehicle statistics", err)
	}
	return VehicleStats{TotalVehicles: total, RecentVehicles: recent}, nil
}

// CountOwned reports how many of the given vehicle ids belong to the user.
// Billing uses this to reject invoices referencing foreign vehicles.
func (s *VehicleService) CountOwned(ctx context.Context, userID primitive.ObjectID, ids []primitive.ObjectID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	return s.vehicles.CountDocuments(ctx, bson.M{
		"userId": userID,
		"_id":    bson.M{"$in": ids},
	})
}
