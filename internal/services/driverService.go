package services

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fleetdesk/FleetDesk/internal/apperr"
	"github.com/fleetdesk/FleetDesk/internal/models"
	"github.com/fleetdesk/FleetDesk/internal/storage"
	"github.com/fleetdesk/FleetDesk/internal/store"
	"github.com/fleetdesk/FleetDesk/internal/utils"
)

// DriverService manages a user's drivers and their photos.
type DriverService struct {
	drivers *mongo.Collection
	images  *storage.ImageStore
	log     *logrus.Logger
}

// NewDriverService creates the service. images may be nil when no object
// store is configured; image uploads then fail with a clear error.
func NewDriverService(database *mongo.Database, images *storage.ImageStore, log *logrus.Logger) *DriverService {
	return &DriverService{
		drivers: database.Collection("drivers"),
		images:  images,
		log:     log,
	}
}

func (s *DriverService) Create(ctx context.Context, userID primitive.ObjectID, name, phone string) (models.Driver, error) {
	now := time.Now()
	driver := models.Driver{
		ID:                primitive.NewObjectID(),
		UserID:            userID,
		DriverName:        strings.TrimSpace(name),
		DriverPhoneNumber: strings.TrimSpace(phone),
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := validateStruct(driver); err != nil {
		return models.Driver{}, err
	}
	if _, err := s.drivers.InsertOne(ctx, driver); err != nil {
		return models.Driver{}, apperr.Internal("Failed to create driver", err)
	}
	return driver, nil
}

// List returns the user's drivers newest first, optionally filtered by a
// case-insensitive name search.
func (s *DriverService) List(ctx context.Context, userID primitive.ObjectID, search string, page, limit int) ([]models.Driver, utils.Pagination, error) {
	var filters []store.Filter
	if search != "" {
		filters = append(filters, store.Regex{Field: "driverName", Value: search})
	}
	query := store.OwnerQuery(userID, filters...)

	total, err := s.drivers.CountDocuments(ctx, query)
	if err != nil {
		return nil, utils.Pagination{}, apperr.Internal("Failed to retrieve drivers", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))
	cursor, err := s.drivers.Find(ctx, query, opts)
	if err != nil {
		return nil, utils.Pagination{}, apperr.Internal("Failed to retrieve drivers", err)
	}
	defer cursor.Close(ctx)

	drivers := []models.Driver{}
	if err := cursor.All(ctx, &drivers); err != nil {
		return nil, utils.Pagination{}, apperr.Internal("Failed to retrieve drivers", err)
	}
	return drivers, utils.NewPagination(page, limit, total), nil
}

func (s *DriverService) ByID(ctx context.Context, userID, id primitive.ObjectID) (models.Driver, error) {
	var driver models.Driver
	err := s.drivers.FindOne(ctx, bson.M{"_id": id, "userId": userID}).Decode(&driver)
	if err != nil {
		return models.Driver{}, apperr.NotFound("Driver not found")
	}
	return driver, nil
}

// UpdateDriverInput carries a partial driver update.
type UpdateDriverInput struct {
	DriverName        *string `json:"driverName"`
	DriverPhoneNumber *string `json:"driverPhoneNumber"`
}

func (s *DriverService) Update(ctx context.Context, userID, id primitive.ObjectID, input UpdateDriverInput) (models.Driver, error) {
	set := bson.M{}
	if input.DriverName != nil {
		name := strings.TrimSpace(*input.DriverName)
		if name == "" {
			return models.Driver{}, apperr.Validation("Driver name cannot be empty")
		}
		set["driverName"] = name
	}
	if input.DriverPhoneNumber != nil {
		phone := strings.TrimSpace(*input.DriverPhoneNumber)
		if phone == "" {
			return models.Driver{}, apperr.Validation("Driver phone number cannot be empty")
		}
		set["driverPhoneNumber"] = phone
	}
	if len(set) == 0 {
		return models.Driver{}, apperr.Validation("No valid fields provided for update")
	}
	set["updatedAt"] = time.Now()

	var driver models.Driver
	err := s.drivers.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "userId": userID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&driver)
	if err != nil {
		return models.Driver{}, apperr.NotFound("Driver not found")
	}
	return driver, nil
}

// Delete removes the driver and best-effort removes their stored photo.
func (s *DriverService) Delete(ctx context.Context, userID, id primitive.ObjectID) (models.Driver, error) {
	var driver models.Driver
	err := s.drivers.FindOneAndDelete(ctx, bson.M{"_id": id, "userId": userID}).Decode(&driver)
	if err != nil {
		return models.Driver{}, apperr.NotFound("Driver not found")
	}
	if driver.DriverImage != "" && s.images != nil {
		if err := s.images.Remove(ctx, driver.DriverImage); err != nil {
			s.log.WithError(err).Warn("failed to remove driver image")
		}
	}
	return driver, nil
}

// AttachImage uploads a driver photo, replaces any previous one and stores
// the new URL on the driver.
func (s *DriverService) AttachImage(ctx context.Context, userID, id primitive.ObjectID, filename, contentType string, r io.Reader, size int64) (models.Driver, error) {
	if s.images == nil {
		return models.Driver{}, apperr.Internal("Image storage is not configured", nil)
	}

	driver, err := s.ByID(ctx, userID, id)
	if err != nil {
		return models.Driver{}, err
	}

	url, err := s.images.Put(ctx, filename, contentType, r, size)
	if err != nil {
		return models.Driver{}, apperr.Internal("Failed to upload driver image", err)
	}

	if driver.DriverImage != "" {
		if err := s.images.Remove(ctx, driver.DriverImage); err != nil {
			s.log.WithError(err).Warn("failed to remove previous driver image")
		}
	}

	var updated models.Driver
	err = s.drivers.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "userId": userID},
		bson.M{"$set": bson.M{"driverImage": url, "updatedAt": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		return models.Driver{}, apperr.NotFound("Driver not found")
	}
	return updated, nil
}
