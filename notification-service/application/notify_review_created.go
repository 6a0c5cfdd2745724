package application

import (
	"context"
	"log"

	"github.com/eventbooking/booking-system/notification-service/domain"
	"github.com/eventbooking/booking-system/shared/models"
	"github.com/pkg/errors"
)

// NotifyReviewCreatedCommand identifies the reviewed event
type NotifyReviewCreatedCommand struct {
	ReviewID models.ID `json:"review_id"`
	EventID  models.ID `json:"event_id"`
}

// NotifyReviewCreated use case tells an event's organizer about a new review.
// The organizer is resolved through the catalog lookup; if the lookup fails
// the notification is dropped without failing the delivery, so one broken
// review cannot wedge the queue.
type NotifyReviewCreated struct {
	notificationRepository domain.NotificationRepository
	eventGateway           domain.EventGateway
}

// NewNotifyReviewCreated creates a new NotifyReviewCreated use case
func NewNotifyReviewCreated(
	notificationRepository domain.NotificationRepository,
	eventGateway domain.EventGateway,
) *NotifyReviewCreated {
	return &NotifyReviewCreated{
		notificationRepository: notificationRepository,
		eventGateway:           eventGateway,
	}
}

// Execute notifies the organizer of the reviewed event
func (uc *NotifyReviewCreated) Execute(ctx context.Context, cmd *NotifyReviewCreatedCommand) error {
	if cmd.EventID.IsZero() {
		return errors.New("event ID is required")
	}

	event, err := uc.eventGateway.FetchEvent(ctx, cmd.EventID)
	if err != nil {
		log.Printf("failed to resolve event %s for review %s, dropping notification: %v",
			cmd.EventID, cmd.ReviewID, err)
		return nil
	}

	notification := domain.NewEventNotification(
		event.OrganizerID,
		event.ID,
		"A new review has been created",
		"A new review has been created for your event.",
	)

	if err := uc.notificationRepository.Save(ctx, notification); err != nil {
		return errors.Wrap(err, "failed to save notification")
	}

	return nil
}
