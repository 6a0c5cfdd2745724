package handlers

import (
	"context"

	"github.com/eventbooking/booking-system/notification-service/application"
	"github.com/eventbooking/booking-system/shared/events"
	"github.com/pkg/errors"
)

// NotificationEventHandlers is the terminal consumer of the saga: it turns
// lifecycle events into stored notifications and publishes nothing back.
type NotificationEventHandlers struct {
	notifyBookingCreated         *application.NotifyBookingCreated
	notifyBookingCancelled       *application.NotifyBookingCancelled
	notifyEventBookingsCancelled *application.NotifyEventBookingsCancelled
	notifyEventUpdatedBookings   *application.NotifyEventUpdatedBookings
	notifyReviewCreated          *application.NotifyReviewCreated
}

// NewNotificationEventHandlers creates new notification event handlers
func NewNotificationEventHandlers(
	notifyBookingCreated *application.NotifyBookingCreated,
	notifyBookingCancelled *application.NotifyBookingCancelled,
	notifyEventBookingsCancelled *application.NotifyEventBookingsCancelled,
	notifyEventUpdatedBookings *application.NotifyEventUpdatedBookings,
	notifyReviewCreated *application.NotifyReviewCreated,
) *NotificationEventHandlers {
	return &NotificationEventHandlers{
		notifyBookingCreated:         notifyBookingCreated,
		notifyBookingCancelled:       notifyBookingCancelled,
		notifyEventBookingsCancelled: notifyEventBookingsCancelled,
		notifyEventUpdatedBookings:   notifyEventUpdatedBookings,
		notifyReviewCreated:          notifyReviewCreated,
	}
}

// HandlerID returns the unique identifier for this event handler
func (h *NotificationEventHandlers) HandlerID() string {
	return "notification-service-event-handler"
}

// Handle implements the events.EventHandler interface
func (h *NotificationEventHandlers) Handle(ctx context.Context, event *events.Event) error {
	switch event.EventType {
	case events.BookingCreatedEvent:
		return h.HandleBookingCreated(ctx, event)
	case events.BookingCancelledEvent:
		return h.HandleBookingCancelled(ctx, event)
	case events.EventBookingsCancelledEvent:
		return h.HandleEventBookingsCancelled(ctx, event)
	case events.EventUpdatedBookingsEvent:
		return h.HandleEventUpdatedBookings(ctx, event)
	case events.ReviewCreatedEvent:
		return h.HandleReviewCreated(ctx, event)
	default:
		// Unknown event type, ignore
		return nil
	}
}

// HandleBookingCreated notifies the requester of their new booking
func (h *NotificationEventHandlers) HandleBookingCreated(ctx context.Context, event *events.Event) error {
	var snapshot events.BookingSnapshot
	if err := event.UnmarshalPayload(&snapshot); err != nil {
		return errors.Wrap(err, "failed to parse booking snapshot")
	}

	cmd := &application.NotifyBookingCreatedCommand{
		BookingID: snapshot.ID,
		UserID:    snapshot.UserID,
	}

	return h.notifyBookingCreated.Execute(ctx, cmd)
}

// HandleBookingCancelled notifies the requester of their cancellation
func (h *NotificationEventHandlers) HandleBookingCancelled(ctx context.Context, event *events.Event) error {
	var snapshot events.BookingSnapshot
	if err := event.UnmarshalPayload(&snapshot); err != nil {
		return errors.Wrap(err, "failed to parse booking snapshot")
	}

	cmd := &application.NotifyBookingCancelledCommand{
		BookingID: snapshot.ID,
		UserID:    snapshot.UserID,
	}

	return h.notifyBookingCancelled.Execute(ctx, cmd)
}

// HandleEventBookingsCancelled notifies every victim of a cancellation cascade
func (h *NotificationEventHandlers) HandleEventBookingsCancelled(ctx context.Context, event *events.Event) error {
	var batch events.BookingBatch
	if err := event.UnmarshalPayload(&batch); err != nil {
		return errors.Wrap(err, "failed to parse booking batch")
	}

	cmd := &application.NotifyEventBookingsCancelledCommand{Batch: batch}

	return h.notifyEventBookingsCancelled.Execute(ctx, cmd)
}

// HandleEventUpdatedBookings notifies the distinct users holding bookings on
// an updated event
func (h *NotificationEventHandlers) HandleEventUpdatedBookings(ctx context.Context, event *events.Event) error {
	var batch events.BookingBatch
	if err := event.UnmarshalPayload(&batch); err != nil {
		return errors.Wrap(err, "failed to parse booking batch")
	}

	cmd := &application.NotifyEventUpdatedBookingsCommand{Batch: batch}

	return h.notifyEventUpdatedBookings.Execute(ctx, cmd)
}

// HandleReviewCreated notifies the reviewed event's organizer
func (h *NotificationEventHandlers) HandleReviewCreated(ctx context.Context, event *events.Event) error {
	var snapshot events.ReviewSnapshot
	if err := event.UnmarshalPayload(&snapshot); err != nil {
		return errors.Wrap(err, "failed to parse review snapshot")
	}

	cmd := &application.NotifyReviewCreatedCommand{
		ReviewID: snapshot.ID,
		EventID:  snapshot.EventID,
	}

	return h.notifyReviewCreated.Execute(ctx, cmd)
}
