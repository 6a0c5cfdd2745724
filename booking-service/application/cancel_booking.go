package application

import (
	"context"
	"time"

	"github.com/eventbooking/booking-system/booking-service/domain"
	"github.com/eventbooking/booking-system/shared/events"
	"github.com/eventbooking/booking-system/shared/models"
	"github.com/eventbooking/booking-system/shared/telemetry"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// CancelBookingCommand represents the command to cancel a booking
type CancelBookingCommand struct {
	BookingID string `json:"booking_id"`
	UserID    string `json:"user_id"`
}

// CancelBookingResponse represents the response after cancelling a booking
type CancelBookingResponse struct {
	BookingID string `json:"booking_id"`
	Status    string `json:"status"`
}

// CancelBooking use case cancels a booking on the requester's behalf and
// publishes booking.cancelled, which drives the refund downstream. A direct
// cancel is refused once the event is inside its start lead or already
// cancelled; the cascade path is exempt from both checks.
type CancelBooking struct {
	bookingRepository domain.BookingRepository
	eventGateway      domain.EventGateway
	eventPublisher    events.Publisher
}

// NewCancelBooking creates a new CancelBooking use case
func NewCancelBooking(
	bookingRepository domain.BookingRepository,
	eventGateway domain.EventGateway,
	eventPublisher events.Publisher,
) *CancelBooking {
	return &CancelBooking{
		bookingRepository: bookingRepository,
		eventGateway:      eventGateway,
		eventPublisher:    eventPublisher,
	}
}

// Execute cancels a booking
func (uc *CancelBooking) Execute(ctx context.Context, cmd *CancelBookingCommand) (*CancelBookingResponse, error) {
	start := time.Now()
	ctx, span := telemetry.StartSpan(ctx, "cancel_booking",
		trace.WithAttributes(
			attribute.String("booking_id", cmd.BookingID),
			attribute.String("user_id", cmd.UserID),
		),
	)
	defer span.End()

	var status string = "error"
	defer func() {
		duration := time.Since(start)

		telemetry.RecordCounter(ctx, "booking_operations_total", "Total booking operations", 1,
			attribute.String("operation", "cancel_booking"),
			attribute.String("status", status),
		)

		telemetry.RecordHistogram(ctx, "booking_operation_duration_seconds", "Booking operation duration", duration.Seconds(),
			attribute.String("operation", "cancel_booking"),
			attribute.String("status", status),
		)
	}()

	if cmd.BookingID == "" {
		return nil, errors.Wrap(domain.ErrValidation, "booking ID is required")
	}

	if cmd.UserID == "" {
		return nil, errors.Wrap(domain.ErrValidation, "user ID is required")
	}

	bookingID, err := models.NewID(cmd.BookingID)
	if err != nil {
		span.RecordError(err)
		return nil, errors.Wrap(domain.ErrValidation, "invalid booking ID")
	}

	userID, err := models.NewID(cmd.UserID)
	if err != nil {
		span.RecordError(err)
		return nil, errors.Wrap(domain.ErrValidation, "invalid user ID")
	}

	booking, err := uc.bookingRepository.FindByID(ctx, bookingID)
	if err != nil {
		span.RecordError(err)
		return nil, errors.Wrap(err, "failed to find booking")
	}

	if booking == nil {
		return nil, domain.ErrBookingNotFound
	}

	if booking.UserID != userID {
		return nil, domain.ErrNotOwner
	}

	if booking.Status.IsTerminal() {
		return nil, domain.ErrBookingFinalized
	}

	eventSnapshot, err := uc.eventGateway.FetchEvent(ctx, booking.EventID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if time.Until(eventSnapshot.StartTime) < domain.MinStartLead {
		err := errors.Wrap(domain.ErrValidation, "event starts in less than one hour")
		span.RecordError(err)
		return nil, err
	}

	if eventSnapshot.Status == events.EventStatusCancelled {
		err := errors.Wrap(domain.ErrValidation, "event is already cancelled")
		span.RecordError(err)
		return nil, err
	}

	if err := booking.Cancel(); err != nil {
		span.RecordError(err)
		return nil, err
	}

	if err := uc.bookingRepository.Save(ctx, booking); err != nil {
		span.RecordError(err)
		return nil, errors.Wrap(err, "failed to save booking")
	}

	if err := uc.eventPublisher.Publish(ctx, booking.Events()...); err != nil {
		span.RecordError(err)
		return nil, errors.Wrap(err, "failed to publish events")
	}
	booking.ClearEvents()

	status = "success"

	return &CancelBookingResponse{
		BookingID: booking.ID.String(),
		Status:    string(booking.Status),
	}, nil
}
