package handlers

import (
	"context"

	"github.com/eventbooking/booking-system/booking-service/application"
	"github.com/eventbooking/booking-system/shared/events"
	"github.com/pkg/errors"
)

// BookingEventHandlers handles all booking-related events in the choreography
type BookingEventHandlers struct {
	processPaymentDecision *application.ProcessPaymentDecision
	processEventCancelled  *application.ProcessEventCancelled
	processEventUpdated    *application.ProcessEventUpdated
}

// NewBookingEventHandlers creates new booking event handlers
func NewBookingEventHandlers(
	processPaymentDecision *application.ProcessPaymentDecision,
	processEventCancelled *application.ProcessEventCancelled,
	processEventUpdated *application.ProcessEventUpdated,
) *BookingEventHandlers {
	return &BookingEventHandlers{
		processPaymentDecision: processPaymentDecision,
		processEventCancelled:  processEventCancelled,
		processEventUpdated:    processEventUpdated,
	}
}

// HandlerID returns the unique identifier for this event handler
func (h *BookingEventHandlers) HandlerID() string {
	return "booking-service-event-handler"
}

// Handle implements the events.EventHandler interface
func (h *BookingEventHandlers) Handle(ctx context.Context, event *events.Event) error {
	switch event.EventType {
	case events.PaymentCreatedEvent:
		return h.HandlePaymentCreated(ctx, event)
	case events.EventCancelledEvent:
		return h.HandleEventCancelled(ctx, event)
	case events.EventUpdatedEvent:
		return h.HandleEventUpdated(ctx, event)
	default:
		// Unknown event type, ignore
		return nil
	}
}

// HandlePaymentCreated settles the booking from the payment outcome
func (h *BookingEventHandlers) HandlePaymentCreated(ctx context.Context, event *events.Event) error {
	var outcome events.PaymentOutcome
	if err := event.UnmarshalPayload(&outcome); err != nil {
		return errors.Wrap(err, "failed to parse payment outcome")
	}

	cmd := &application.ProcessPaymentDecisionCommand{
		BookingID: outcome.BookingID,
		PaymentID: outcome.PaymentID,
		Status:    outcome.Status,
	}

	return h.processPaymentDecision.Execute(ctx, cmd)
}

// HandleEventCancelled cascades the event cancellation to its bookings
func (h *BookingEventHandlers) HandleEventCancelled(ctx context.Context, event *events.Event) error {
	var snapshot events.EventSnapshot
	if err := event.UnmarshalPayload(&snapshot); err != nil {
		return errors.Wrap(err, "failed to parse event snapshot")
	}

	cmd := &application.ProcessEventCancelledCommand{
		EventID: snapshot.ID,
	}

	return h.processEventCancelled.Execute(ctx, cmd)
}

// HandleEventUpdated republishes the event's bookings for notification fan-out
func (h *BookingEventHandlers) HandleEventUpdated(ctx context.Context, event *events.Event) error {
	var snapshot events.EventSnapshot
	if err := event.UnmarshalPayload(&snapshot); err != nil {
		return errors.Wrap(err, "failed to parse event snapshot")
	}

	cmd := &application.ProcessEventUpdatedCommand{
		EventID: snapshot.ID,
	}

	return h.processEventUpdated.Execute(ctx, cmd)
}
