package domain

import (
	"context"

	"github.com/eventbooking/booking-system/shared/events"
	"github.com/eventbooking/booking-system/shared/models"
)

// Notification is a stored message addressed to one user, optionally linked
// to the booking or catalog event it is about. Notifications are append-only:
// the fan-out writes them, the HTTP API only reads them back.
type Notification struct {
	ID         models.ID  `json:"id"`
	UserID     models.ID  `json:"user_id"`
	Title      string     `json:"title"`
	Message    string     `json:"message"`
	BookingID  *models.ID `json:"booking_id,omitempty"`
	EventID    *models.ID `json:"event_id,omitempty"`
	Timestamps models.Timestamps
}

// NewBookingNotification creates a notification linked to a booking
func NewBookingNotification(userID, bookingID models.ID, title, message string) *Notification {
	return &Notification{
		ID:         models.GenerateUUID(),
		UserID:     userID,
		Title:      title,
		Message:    message,
		BookingID:  &bookingID,
		Timestamps: models.NewTimestamps(),
	}
}

// NewEventNotification creates a notification linked to a catalog event
func NewEventNotification(userID, eventID models.ID, title, message string) *Notification {
	return &Notification{
		ID:         models.GenerateUUID(),
		UserID:     userID,
		Title:      title,
		Message:    message,
		EventID:    &eventID,
		Timestamps: models.NewTimestamps(),
	}
}

// NotificationRepository persists notifications
type NotificationRepository interface {
	Save(ctx context.Context, notification *Notification) error
	FindByUserID(ctx context.Context, userID models.ID) ([]*Notification, error)
}

// EventGateway looks up catalog events synchronously. The review fan-out uses
// it to resolve the organizer to notify.
type EventGateway interface {
	FetchEvent(ctx context.Context, eventID models.ID) (*events.EventSnapshot, error)
}
