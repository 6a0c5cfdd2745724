package application

import (
	"context"
	"regexp"
	"time"

	"github.com/eventbooking/booking-system/booking-service/domain"
	"github.com/eventbooking/booking-system/shared/events"
	"github.com/eventbooking/booking-system/shared/models"
	"github.com/eventbooking/booking-system/shared/telemetry"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// emailPattern matches the address format accepted at booking time
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@(.+)$`)

// CreateBookingCommand represents the command to create a booking
type CreateBookingCommand struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	UserID   string `json:"user_id"`
	EventID  string `json:"event_id"`
}

// CreateBookingResponse represents the response after creating a booking
type CreateBookingResponse struct {
	BookingID string       `json:"booking_id"`
	EventID   string       `json:"event_id"`
	Price     models.Money `json:"price"`
	Status    string       `json:"status"`
}

// CreateBooking use case validates the request against the event catalog and
// the requester's balance, persists a PENDING booking and publishes
// booking.created. The capacity and balance checks are optimistic: the payment
// decision consumer settles the outcome.
type CreateBooking struct {
	bookingRepository domain.BookingRepository
	eventGateway      domain.EventGateway
	paymentGateway    domain.PaymentGateway
	eventPublisher    events.Publisher
}

// NewCreateBooking creates a new CreateBooking use case
func NewCreateBooking(
	bookingRepository domain.BookingRepository,
	eventGateway domain.EventGateway,
	paymentGateway domain.PaymentGateway,
	eventPublisher events.Publisher,
) *CreateBooking {
	return &CreateBooking{
		bookingRepository: bookingRepository,
		eventGateway:      eventGateway,
		paymentGateway:    paymentGateway,
		eventPublisher:    eventPublisher,
	}
}

// Execute creates a booking
func (uc *CreateBooking) Execute(ctx context.Context, cmd *CreateBookingCommand) (*CreateBookingResponse, error) {
	start := time.Now()
	ctx, span := telemetry.StartSpan(ctx, "create_booking",
		trace.WithAttributes(
			attribute.String("user_id", cmd.UserID),
			attribute.String("event_id", cmd.EventID),
		),
	)
	defer span.End()

	var status string = "error"
	defer func() {
		duration := time.Since(start)

		telemetry.RecordCounter(ctx, "booking_operations_total", "Total booking operations", 1,
			attribute.String("operation", "create_booking"),
			attribute.String("status", status),
		)

		telemetry.RecordHistogram(ctx, "booking_operation_duration_seconds", "Booking operation duration", duration.Seconds(),
			attribute.String("operation", "create_booking"),
			attribute.String("status", status),
		)
	}()

	if err := uc.validateCommand(cmd); err != nil {
		span.RecordError(err)
		return nil, err
	}

	userID, err := models.NewID(cmd.UserID)
	if err != nil {
		span.RecordError(err)
		return nil, errors.Wrap(domain.ErrValidation, "invalid user ID")
	}

	eventID, err := models.NewID(cmd.EventID)
	if err != nil {
		span.RecordError(err)
		return nil, errors.Wrap(domain.ErrValidation, "invalid event ID")
	}

	// Fetch the event snapshot from the catalog
	eventSnapshot, err := uc.eventGateway.FetchEvent(ctx, eventID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if err := uc.validateEvent(ctx, eventSnapshot, userID); err != nil {
		span.RecordError(err)
		return nil, err
	}

	// Optimistic balance check. The payment decision consumer re-checks
	// against the ledger and is authoritative.
	balance, err := uc.paymentGateway.FetchBalance(ctx, userID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if !balance.GreaterOrEqual(eventSnapshot.Price) {
		err := errors.Wrap(domain.ErrValidation, "insufficient balance")
		span.RecordError(err)
		return nil, err
	}

	booking, err := domain.CreateBooking(cmd.FullName, cmd.Email, userID, eventID, eventSnapshot.Price)
	if err != nil {
		span.RecordError(err)
		return nil, errors.Wrap(err, "failed to create booking")
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
	span.SetAttributes(attribute.String("booking_id", booking.ID.String()))

	return &CreateBookingResponse{
		BookingID: booking.ID.String(),
		EventID:   booking.EventID.String(),
		Price:     booking.Price,
		Status:    string(booking.Status),
	}, nil
}

// validateCommand validates the create booking command fields
func (uc *CreateBooking) validateCommand(cmd *CreateBookingCommand) error {
	if cmd.FullName == "" {
		return errors.Wrap(domain.ErrValidation, "full name is required")
	}

	if cmd.Email == "" {
		return errors.Wrap(domain.ErrValidation, "email is required")
	}

	if !emailPattern.MatchString(cmd.Email) {
		return errors.Wrap(domain.ErrValidation, "email is not valid")
	}

	if cmd.UserID == "" {
		return errors.Wrap(domain.ErrValidation, "user ID is required")
	}

	if cmd.EventID == "" {
		return errors.Wrap(domain.ErrValidation, "event ID is required")
	}

	return nil
}

// validateEvent checks the event-side booking preconditions
func (uc *CreateBooking) validateEvent(ctx context.Context, snapshot *events.EventSnapshot, userID models.ID) error {
	if snapshot.Status != events.EventStatusActive {
		return errors.Wrap(domain.ErrValidation, "event is not active")
	}

	if snapshot.OrganizerID == userID {
		return errors.Wrap(domain.ErrValidation, "organizer cannot book own event")
	}

	if time.Until(snapshot.StartTime) < domain.MinStartLead {
		return errors.Wrap(domain.ErrValidation, "event starts in less than one hour")
	}

	// Capacity check counts PENDING and CONFIRMED bookings. Two concurrent
	// requests can both pass; the event can oversell by design.
	active, err := uc.bookingRepository.CountActiveByEventID(ctx, snapshot.ID)
	if err != nil {
		return errors.Wrap(err, "failed to count active bookings")
	}

	if active >= snapshot.Capacity {
		return errors.Wrap(domain.ErrValidation, "event is fully booked")
	}

	return nil
}
