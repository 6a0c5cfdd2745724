package handlers

import (
	"context"

	"github.com/eventbooking/booking-system/payment-service/application"
	"github.com/eventbooking/booking-system/shared/events"
	"github.com/pkg/errors"
)

// PaymentEventHandlers handles all payment-related events in the choreography
type PaymentEventHandlers struct {
	processBookingCreated *application.ProcessBookingCreated
	refundPayment         *application.RefundPayment
}

// NewPaymentEventHandlers creates new payment event handlers
func NewPaymentEventHandlers(
	processBookingCreated *application.ProcessBookingCreated,
	refundPayment *application.RefundPayment,
) *PaymentEventHandlers {
	return &PaymentEventHandlers{
		processBookingCreated: processBookingCreated,
		refundPayment:         refundPayment,
	}
}

// HandlerID returns the unique identifier for this event handler
func (h *PaymentEventHandlers) HandlerID() string {
	return "payment-service-event-handler"
}

// Handle implements the events.EventHandler interface
func (h *PaymentEventHandlers) Handle(ctx context.Context, event *events.Event) error {
	switch event.EventType {
	case events.BookingCreatedEvent:
		return h.HandleBookingCreated(ctx, event)
	case events.BookingCancelledEvent:
		return h.HandleBookingCancelled(ctx, event)
	case events.EventBookingsCancelledEvent:
		return h.HandleEventBookingsCancelled(ctx, event)
	default:
		// Unknown event type, ignore
		return nil
	}
}

// HandleBookingCreated runs the payment decision for a new booking
func (h *PaymentEventHandlers) HandleBookingCreated(ctx context.Context, event *events.Event) error {
	var snapshot events.BookingSnapshot
	if err := event.UnmarshalPayload(&snapshot); err != nil {
		return errors.Wrap(err, "failed to parse booking snapshot")
	}

	cmd := &application.ProcessBookingCreatedCommand{
		BookingID: snapshot.ID,
		UserID:    snapshot.UserID,
		Price:     snapshot.Price,
	}

	return h.processBookingCreated.Execute(ctx, cmd)
}

// HandleBookingCancelled refunds the cancelled booking's debit
func (h *PaymentEventHandlers) HandleBookingCancelled(ctx context.Context, event *events.Event) error {
	var snapshot events.BookingSnapshot
	if err := event.UnmarshalPayload(&snapshot); err != nil {
		return errors.Wrap(err, "failed to parse booking snapshot")
	}

	cmd := &application.RefundPaymentCommand{
		BookingID: snapshot.ID,
	}

	return h.refundPayment.Execute(ctx, cmd)
}

// HandleEventBookingsCancelled refunds every booking in the cascade batch
func (h *PaymentEventHandlers) HandleEventBookingsCancelled(ctx context.Context, event *events.Event) error {
	var batch events.BookingBatch
	if err := event.UnmarshalPayload(&batch); err != nil {
		return errors.Wrap(err, "failed to parse booking batch")
	}

	for _, booking := range batch.Bookings {
		cmd := &application.RefundPaymentCommand{
			BookingID: booking.ID,
		}

		if err := h.refundPayment.Execute(ctx, cmd); err != nil {
			return errors.Wrapf(err, "failed to refund booking %s", booking.ID)
		}
	}

	return nil
}
