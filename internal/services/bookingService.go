package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fleetdesk/FleetDesk/internal/apperr"
	"github.com/fleetdesk/FleetDesk/internal/mail"
	"github.com/fleetdesk/FleetDesk/internal/models"
	"github.com/fleetdesk/FleetDesk/internal/store"
	"github.com/fleetdesk/FleetDesk/internal/utils"
)

// BookingService handles public booking intake. Bookings are not scoped to
// a user.
type BookingService struct {
	bookings *mongo.Collection
	mailer   *mail.BookingMailer
}

func NewBookingService(database *mongo.Database, mailer *mail.BookingMailer) *BookingService {
	return &BookingService{
		bookings: database.Collection("bookings"),
		mailer:   mailer,
	}
}

// Create stores a booking with status Pending and fires email notifications.
// Mail failures are logged inside the mailer and never fail the booking.
func (s *BookingService) Create(ctx context.Context, booking models.Booking) (models.Booking, error) {
	booking.ID = primitive.NewObjectID()
	booking.Status = models.BookingPending
	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	if err := validateStruct(booking); err != nil {
		return models.Booking{}, err
	}
	if _, err := s.bookings.InsertOne(ctx, booking); err != nil {
		return models.Booking{}, apperr.Internal("Error creating booking", err)
	}

	if s.mailer != nil {
		s.mailer.NotifyBookingCreated(booking)
	}
	return booking, nil
}

// List returns every booking, unfiltered.
func (s *BookingService) List(ctx context.Context) ([]models.Booking, error) {
	cursor, err := s.bookings.Find(ctx, bson.M{})
	if err != nil {
		return nil, apperr.Internal("Error retrieving bookings", err)
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, apperr.Internal("Error retrieving bookings", err)
	}
	return bookings, nil
}

// Range returns bookings between from and to, sorted by date then time of
// day, paginated. Zero bounds fall back to the current Monday-Sunday week.
func (s *BookingService) Range(ctx context.Context, from, to time.Time, page, limit int) ([]models.Booking, utils.Pagination, error) {
	weekStart, weekEnd := currentWeek(time.Now())
	if from.IsZero() {
		from = weekStart
	} else {
		from = startOfDay(from)
	}
	if to.IsZero() {
		to = weekEnd
	} else {
		to = endOfDay(to)
	}

	query := store.Query(store.DateRange{Field: "date", From: from, To: to})

	total, err := s.bookings.CountDocuments(ctx, query)
	if err != nil {
		return nil, utils.Pagination{}, apperr.Internal("Error retrieving rangewise bookings", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))
	cursor, err := s.bookings.Find(ctx, query, opts)
	if err != nil {
		return nil, utils.Pagination{}, apperr.Internal("Error retrieving rangewise bookings", err)
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, utils.Pagination{}, apperr.Internal("Error retrieving rangewise bookings", err)
	}
	return bookings, utils.NewPagination(page, limit, total), nil
}

// Month returns all bookings within the calendar month given as "MM-YYYY".
func (s *BookingService) Month(ctx context.Context, monthYear string) ([]models.Booking, error) {
	from, to, err := ParseMonthYear(monthYear)
	if err != nil {
		return nil, err
	}

	query := store.Query(store.DateRange{Field: "date", From: from, To: to})
	cursor, err := s.bookings.Find(ctx, query)
	if err != nil {
		return nil, apperr.Internal("Error retrieving monthwise bookings", err)
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, apperr.Internal("Error retrieving monthwise bookings", err)
	}
	return bookings, nil
}

// UpdateStatus moves a booking into one of the accepted statuses.
func (s *BookingService) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (models.Booking, error) {
	if !models.ValidBookingStatus(status) {
		return models.Booking{}, apperr.Validation(
			"Invalid status value. Must be one of: Pending, Completed, inProgress")
	}

	var booking models.Booking
	err := s.bookings.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&booking)
	if err != nil {
		return models.Booking{}, apperr.NotFound("Booking not found")
	}
	return booking, nil
}

// ParseMonthYear parses "MM-YYYY" into the inclusive bounds of that month.
func ParseMonthYear(monthYear string) (time.Time, time.Time, error) {
	parts := strings.Split(monthYear, "-")
	if len(parts) != 2 {
		return time.Time{}, time.Time{}, invalidMonthYear()
	}
	month, err := strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return time.Time{}, time.Time{}, invalidMonthYear()
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, time.Time{}, invalidMonthYear()
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	to := from.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return from, to, nil
}

func invalidMonthYear() error {
	return apperr.Validation(fmt.Sprintf(
		"Invalid month or year format. Please use MM-YYYY format (e.g., 10-%d for October %d).",
		time.Now().Year(), time.Now().Year()))
}

// currentWeek returns the Monday 00:00 and Sunday end-of-day bounds of the
// week containing now.
func currentWeek(now time.Time) (time.Time, time.Time) {
	offset := int(now.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	monday := startOfDay(now.AddDate(0, 0, -offset))
	sunday := endOfDay(monday.AddDate(0, 0, 6))
	return monday, sunday
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
