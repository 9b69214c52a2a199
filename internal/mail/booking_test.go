package mail

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetdesk/FleetDesk/internal/models"
)

func testBooking() models.Booking {
	return models.Booking{
		Name:        "Asha",
		Email:       "asha@example.com",
		PhoneNumber: "9876543210",
		Date:        time.Date(2026, time.September, 14, 0, 0, 0, 0, time.UTC),
		Time:        "10:30 AM",
		Pickup:      "Airport",
		Drop:        "City Center",
		Vehicle:     "Tempo Traveller",
	}
}

func TestNotifyBookingCreated(t *testing.T) {
	sender := &InMemory{}
	mailer := &BookingMailer{Sender: sender, AdminEmail: "ops@example.com", Log: logrus.New()}

	mailer.NotifyBookingCreated(testBooking())

	require.Len(t, sender.Outbox, 2)

	confirmation := sender.Outbox[0]
	assert.Equal(t, "asha@example.com", confirmation.To)
	assert.Equal(t, "Booking Confirmation - Travel Service", confirmation.Subject)
	assert.Contains(t, confirmation.HTML, "Dear Asha")
	assert.Contains(t, confirmation.HTML, "14/09/2026")
	assert.Contains(t, confirmation.HTML, "Tempo Traveller")

	notification := sender.Outbox[1]
	assert.Equal(t, "ops@example.com", notification.To)
	assert.Equal(t, "New Booking Created - Travel Service", notification.Subject)
	assert.Contains(t, notification.HTML, "New Booking Notification")
}

func TestNotifySkipsCustomerWithoutEmail(t *testing.T) {
	sender := &InMemory{}
	mailer := &BookingMailer{Sender: sender, AdminEmail: "ops@example.com", Log: logrus.New()}

	b := testBooking()
	b.Email = ""
	mailer.NotifyBookingCreated(b)

	require.Len(t, sender.Outbox, 1)
	assert.Equal(t, "ops@example.com", sender.Outbox[0].To)
	// Missing optional fields render as N/A.
	assert.Contains(t, sender.Outbox[0].HTML, "N/A")
}

func TestNotifyNoAdminConfigured(t *testing.T) {
	sender := &InMemory{}
	mailer := &BookingMailer{Sender: sender, Log: logrus.New()}

	mailer.NotifyBookingCreated(testBooking())

	require.Len(t, sender.Outbox, 1)
	assert.Equal(t, "asha@example.com", sender.Outbox[0].To)
}

func TestNilMailerIsSafe(t *testing.T) {
	var mailer *BookingMailer
	assert.NotPanics(t, func() { mailer.NotifyBookingCreated(testBooking()) })
}
