package application

import (
	"context"

	"github.com/eventbooking/booking-system/notification-service/domain"
	"github.com/eventbooking/booking-system/shared/events"
	"github.com/eventbooking/booking-system/shared/models"
	"github.com/pkg/errors"
)

// NotifyEventUpdatedBookingsCommand carries the affected-bookings batch
type NotifyEventUpdatedBookingsCommand struct {
	Batch events.BookingBatch `json:"batch"`
}

// NotifyEventUpdatedBookings use case notifies the users holding active
// bookings on an updated event. Users are deduplicated: someone with several
// bookings on the event gets a single notification.
type NotifyEventUpdatedBookings struct {
	notificationRepository domain.NotificationRepository
}

// NewNotifyEventUpdatedBookings creates a new NotifyEventUpdatedBookings use case
func NewNotifyEventUpdatedBookings(notificationRepository domain.NotificationRepository) *NotifyEventUpdatedBookings {
	return &NotifyEventUpdatedBookings{
		notificationRepository: notificationRepository,
	}
}

// Execute stores one notification per distinct affected user
func (uc *NotifyEventUpdatedBookings) Execute(ctx context.Context, cmd *NotifyEventUpdatedBookingsCommand) error {
	if cmd.Batch.EventID.IsZero() {
		return errors.New("event ID is required")
	}

	seen := make(map[models.ID]bool)
	for _, booking := range cmd.Batch.Bookings {
		if seen[booking.UserID] {
			continue
		}
		seen[booking.UserID] = true

		notification := domain.NewEventNotification(
			booking.UserID,
			cmd.Batch.EventID,
			"Event updated",
			"An update has been made to the event you booked. Please check the event details for more information.",
		)

		if err := uc.notificationRepository.Save(ctx, notification); err != nil {
			return errors.Wrapf(err, "failed to save notification for user %s", booking.UserID)
		}
	}

	return nil
}
