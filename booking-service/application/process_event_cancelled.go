package application

import (
	"context"
	"log"

	"github.com/eventbooking/booking-system/booking-service/domain"
	"github.com/eventbooking/booking-system/shared/events"
	"github.com/eventbooking/booking-system/shared/models"
	"github.com/pkg/errors"
)

// ProcessEventCancelledCommand represents an event cancellation from the catalog
type ProcessEventCancelledCommand struct {
	EventID models.ID `json:"event_id"`
}

// ProcessEventCancelled use case force-cancels every active booking for a
// cancelled event and publishes one batched event.bookings.cancelled event
// carrying the cancelled snapshots. The lead-time rule is not re-checked:
// the cascade always wins.
type ProcessEventCancelled struct {
	bookingRepository domain.BookingRepository
	eventPublisher    events.Publisher
}

// NewProcessEventCancelled creates a new ProcessEventCancelled use case
func NewProcessEventCancelled(
	bookingRepository domain.BookingRepository,
	eventPublisher events.Publisher,
) *ProcessEventCancelled {
	return &ProcessEventCancelled{
		bookingRepository: bookingRepository,
		eventPublisher:    eventPublisher,
	}
}

// Execute cancels all active bookings for the event
func (uc *ProcessEventCancelled) Execute(ctx context.Context, cmd *ProcessEventCancelledCommand) error {
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

	cancelled := make([]events.BookingSnapshot, 0, len(bookings))
	for _, booking := range bookings {
		if err := booking.Cancel(); err != nil {
			// A concurrent settlement may have finalized it; skip
			log.Printf("skipping booking %s during cascade: %v", booking.ID, err)
			continue
		}

		if err := uc.bookingRepository.Save(ctx, booking); err != nil {
			return errors.Wrap(err, "failed to save cancelled booking")
		}

		// The batch event replaces per-booking cancellation events
		booking.ClearEvents()
		cancelled = append(cancelled, booking.Snapshot())
	}

	if len(cancelled) == 0 {
		return nil
	}

	batch := events.NewEvent(cmd.EventID, events.EventBookingsCancelledEvent, events.BookingBatch{
		EventID:  cmd.EventID,
		Bookings: cancelled,
	})

	if err := uc.eventPublisher.Publish(ctx, batch); err != nil {
		return errors.Wrap(err, "failed to publish bookings cancelled event")
	}

	return nil
}
