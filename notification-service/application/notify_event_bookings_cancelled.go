package application

import (
	"context"

	"github.com/eventbooking/booking-system/notification-service/domain"
	"github.com/eventbooking/booking-system/shared/events"
	"github.com/pkg/errors"
)

// NotifyEventBookingsCancelledCommand carries the cascade batch
type NotifyEventBookingsCancelledCommand struct {
	Batch events.BookingBatch `json:"batch"`
}

// NotifyEventBookingsCancelled use case fans the cascade out to its victims:
// one notification per cancelled booking, so a user with several bookings on
// the event hears about each of them.
type NotifyEventBookingsCancelled struct {
	notificationRepository domain.NotificationRepository
}

// NewNotifyEventBookingsCancelled creates a new NotifyEventBookingsCancelled use case
func NewNotifyEventBookingsCancelled(notificationRepository domain.NotificationRepository) *NotifyEventBookingsCancelled {
	return &NotifyEventBookingsCancelled{
		notificationRepository: notificationRepository,
	}
}

// Execute stores one notification per cancelled booking
func (uc *NotifyEventBookingsCancelled) Execute(ctx context.Context, cmd *NotifyEventBookingsCancelledCommand) error {
	if cmd.Batch.EventID.IsZero() {
		return errors.New("event ID is required")
	}

	for _, booking := range cmd.Batch.Bookings {
		notification := domain.NewBookingNotification(
			booking.UserID,
			booking.ID,
			"Booking cancelled because of event cancellation",
			"Your booking has been cancelled because the event has been cancelled. Your refund will be processed shortly.",
		)

		if err := uc.notificationRepository.Save(ctx, notification); err != nil {
			return errors.Wrapf(err, "failed to save notification for booking %s", booking.ID)
		}
	}

	return nil
}
