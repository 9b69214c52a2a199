package mail

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/fleetdesk/FleetDesk/internal/models"
)

// BookingMailer sends the customer confirmation and the admin notification for
// new bookings. Delivery failures are logged and never fail the booking.
type BookingMailer struct {
	Sender     Sender
	AdminEmail string
	Log        *logrus.Logger
}

// NotifyBookingCreated fires both emails for a freshly created booking.
func (m *BookingMailer) NotifyBookingCreated(b models.Booking) {
	if m == nil || m.Sender == nil {
		return
	}
	if b.Email != "" {
		if err := m.Sender.Send(b.Email, "Booking Confirmation - Travel Service", confirmationBody(b)); err != nil {
			m.Log.WithError(err).Warn("failed to send booking confirmation email")
		}
	}
	if m.AdminEmail != "" {
		if err := m.Sender.Send(m.AdminEmail, "New Booking Created - Travel Service", notificationBody(b)); err != nil {
			m.Log.WithError(err).Warn("failed to send booking notification email")
		}
	}
}

func confirmationBody(b models.Booking) string {
	var sb strings.Builder
	sb.WriteString("<h1>Booking Confirmation</h1>")
	fmt.Fprintf(&sb, "<p>Dear %s,</p>", b.Name)
	sb.WriteString("<p>Your booking has been successfully created. Here are the details:</p>")
	sb.WriteString(detailList(b))
	sb.WriteString("<p>Thank you for choosing our service!</p>")
	return sb.String()
}

func notificationBody(b models.Booking) string {
	var sb strings.Builder
	sb.WriteString("<h1>New Booking Notification</h1>")
	sb.WriteString("<p>A new booking has been created. Here are the details:</p>")
	sb.WriteString(detailList(b))
	return sb.String()
}

func detailList(b models.Booking) string {
	desc := b.Description
	if desc == "" {
		desc = "N/A"
	}
	email := b.Email
	if email == "" {
		email = "N/A"
	}
	var sb strings.Builder
	sb.WriteString("<ul>")
	fmt.Fprintf(&sb, "<li><strong>Name:</strong> %s</li>", b.Name)
	fmt.Fprintf(&sb, "<li><strong>Email:</strong> %s</li>", email)
	fmt.Fprintf(&sb, "<li><strong>Phone:</strong> %s</li>", b.PhoneNumber)
	fmt.Fprintf(&sb, "<li><strong>Date:</strong> %s</li>", b.Date.Format("02/01/2006"))
	fmt.Fprintf(&sb, "<li><strong>Time:</strong> %s</li>", b.Time)
	fmt.Fprintf(&sb, "<li><strong>Pickup Location:</strong> %s</li>", b.Pickup)
	fmt.Fprintf(&sb, "<li><strong>Drop Location:</strong> %s</li>", b.Drop)
	fmt.Fprintf(&sb, "<li><strong>Vehicle Type:</strong> %s</li>", b.Vehicle)
	fmt.Fprintf(&sb, "<li><strong>Description:</strong> %s</li>", desc)
	sb.WriteString("</ul>")
	return sb.String()
}
