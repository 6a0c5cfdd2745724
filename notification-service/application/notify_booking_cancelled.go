package application

import (
	"context"

	"github.com/eventbooking/booking-system/notification-service/domain"
	"github.com/eventbooking/booking-system/shared/models"
	"github.com/pkg/errors"
)

// NotifyBookingCancelledCommand identifies the cancelled booking
type NotifyBookingCancelledCommand struct {
	BookingID models.ID `json:"booking_id"`
	UserID    models.ID `json:"user_id"`
}

// NotifyBookingCancelled use case stores the direct-cancellation message for
// the requester
type NotifyBookingCancelled struct {
	notificationRepository domain.NotificationRepository
}

// NewNotifyBookingCancelled creates a new NotifyBookingCancelled use case
func NewNotifyBookingCancelled(notificationRepository domain.NotificationRepository) *NotifyBookingCancelled {
	return &NotifyBookingCancelled{
		notificationRepository: notificationRepository,
	}
}

// Execute stores the booking-cancelled notification
func (uc *NotifyBookingCancelled) Execute(ctx context.Context, cmd *NotifyBookingCancelledCommand) error {
	if cmd.BookingID.IsZero() {
		return errors.New("booking ID is required")
	}

	if cmd.UserID.IsZero() {
		return errors.New("user ID is required")
	}

	notification := domain.NewBookingNotification(
		cmd.UserID,
		cmd.BookingID,
		"Booking Cancelled",
		"Your booking has been cancelled. Your refund will be processed shortly.",
	)

	if err := uc.notificationRepository.Save(ctx, notification); err != nil {
		return errors.Wrap(err, "failed to save notification")
	}

	return nil
}
