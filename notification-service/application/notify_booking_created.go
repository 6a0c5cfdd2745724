package application

import (
	"context"
	"time"

	"github.com/eventbooking/booking-system/notification-service/domain"
	"github.com/eventbooking/booking-system/shared/models"
	"github.com/eventbooking/booking-system/shared/telemetry"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// NotifyBookingCreatedCommand identifies the booking to notify about
type NotifyBookingCreatedCommand struct {
	BookingID models.ID `json:"booking_id"`
	UserID    models.ID `json:"user_id"`
}

// NotifyBookingCreated use case stores the booking confirmation message for
// the requester
type NotifyBookingCreated struct {
	notificationRepository domain.NotificationRepository
}

// NewNotifyBookingCreated creates a new NotifyBookingCreated use case
func NewNotifyBookingCreated(notificationRepository domain.NotificationRepository) *NotifyBookingCreated {
	return &NotifyBookingCreated{
		notificationRepository: notificationRepository,
	}
}

// Execute stores the booking-created notification
func (uc *NotifyBookingCreated) Execute(ctx context.Context, cmd *NotifyBookingCreatedCommand) error {
	start := time.Now()
	ctx, span := telemetry.StartSpan(ctx, "notify_booking_created",
		trace.WithAttributes(
			attribute.String("booking_id", cmd.BookingID.String()),
			attribute.String("user_id", cmd.UserID.String()),
		),
	)
	defer span.End()

	var status string = "error"
	defer func() {
		duration := time.Since(start)

		telemetry.RecordCounter(ctx, "notifications_created_total", "Total notifications created", 1,
			attribute.String("kind", "booking_created"),
			attribute.String("status", status),
		)

		telemetry.RecordHistogram(ctx, "notification_duration_seconds", "Notification fan-out duration", duration.Seconds(),
			attribute.String("kind", "booking_created"),
		)
	}()

	if err := uc.validateCommand(cmd); err != nil {
		span.RecordError(err)
		return errors.Wrap(err, "invalid command")
	}

	notification := domain.NewBookingNotification(
		cmd.UserID,
		cmd.BookingID,
		"Booking Created",
		"Your booking has been created successfully.",
	)

	if err := uc.notificationRepository.Save(ctx, notification); err != nil {
		span.RecordError(err)
		return errors.Wrap(err, "failed to save notification")
	}

	status = "success"
	return nil
}

// validateCommand validates the notify booking created command
func (uc *NotifyBookingCreated) validateCommand(cmd *NotifyBookingCreatedCommand) error {
	if cmd.BookingID.IsZero() {
		return errors.New("booking ID is required")
	}

	if cmd.UserID.IsZero() {
		return errors.New("user ID is required")
	}

	return nil
}
