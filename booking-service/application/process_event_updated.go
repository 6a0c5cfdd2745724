package application

import (
	"context"

	"github.com/eventbooking/booking-system/booking-service/domain"
	"github.com/eventbooking/booking-system/shared/events"
	"github.com/eventbooking/booking-system/shared/models"
	"github.com/pkg/errors"
)

// ProcessEventUpdatedCommand represents an event update from the catalog
type ProcessEventUpdatedCommand struct {
	EventID models.ID `json:"event_id"`
}

// ProcessEventUpdated use case republishes the active bookings of an updated
// event as one event.updated.bookings batch so the notification fan-out can
// reach the affected users. Bookings are not mutated.
type ProcessEventUpdated struct {
	bookingRepository domain.BookingRepository
	eventPublisher    events.Publisher
}

// NewProcessEventUpdated creates a new ProcessEventUpdated use case
func NewProcessEventUpdated(
	bookingRepository domain.BookingRepository,
	eventPublisher events.Publisher,
) *ProcessEventUpdated {
	return &ProcessEventUpdated{
		bookingRepository: bookingRepository,
		eventPublisher:    eventPublisher,
	}
}

// Execute publishes the active bookings for the updated event
func (uc *ProcessEventUpdated) Execute(ctx context.Context, cmd *ProcessEventUpdatedCommand) error {
	if cmd.EventID.IsZero() {
		return errors.New("event ID is required")
	}

	bookings, err := uc.bookingRepository.FindActiveByEventID(ctx, cmd.EventID)
	if err != nil {
		return errors.Wrap(err, "failed to find active bookings")
	}

	if len(bookings) == 0 {
		return nil
	}

	snapshots := make([]events.BookingSnapshot, len(bookings))
	for i, booking := range bookings {
		snapshots[i] = booking.Snapshot()
	}

	batch := events.NewEvent(cmd.EventID, events.EventUpdatedBookingsEvent, events.BookingBatch{
		EventID:  cmd.EventID,
		Bookings: snapshots,
	})

	if err := uc.eventPublisher.Publish(ctx, batch); err != nil {
		return errors.Wrap(err, "failed to publish updated bookings event")
	}

	return nil
}
