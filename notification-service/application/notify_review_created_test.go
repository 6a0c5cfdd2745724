package application

import (
	"context"
	"testing"
	"time"

	"github.com/eventbooking/booking-system/notification-service/domain"
	"github.com/eventbooking/booking-system/notification-service/mocks"
	"github.com/eventbooking/booking-system/shared/events"
	"github.com/eventbooking/booking-system/shared/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNotifyReviewCreated_Execute(t *testing.T) {
	eventID := models.GenerateUUID()
	reviewID := models.GenerateUUID()
	organizerID := models.GenerateUUID()

	catalogEvent := &events.EventSnapshot{
		ID:          eventID,
		Title:       "Go Conference",
		Price:       models.NewMoney(5000, "USD"),
		Capacity:    100,
		Status:      events.EventStatusActive,
		StartTime:   time.Now().Add(48 * time.Hour),
		OrganizerID: organizerID,
	}

	t.Run("organizer is notified", func(t *testing.T) {
		mockRepo := mocks.NewMockNotificationRepository(t)
		mockGateway := mocks.NewMockEventGateway(t)

		mockGateway.EXPECT().FetchEvent(mock.Anything, eventID).Return(catalogEvent, nil).Once()
		mockRepo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
			return n.UserID == organizerID &&
				n.Title == "A new review has been created" &&
				n.EventID != nil && *n.EventID == eventID
		})).Return(nil).Once()

		useCase := NewNotifyReviewCreated(mockRepo, mockGateway)

		err := useCase.Execute(context.Background(), &NotifyReviewCreatedCommand{
			ReviewID: reviewID,
			EventID:  eventID,
		})

		assert.NoError(t, err)
	})

	t.Run("failed event lookup drops the notification", func(t *testing.T) {
		mockRepo := mocks.NewMockNotificationRepository(t)
		mockGateway := mocks.NewMockEventGateway(t)

		mockGateway.EXPECT().FetchEvent(mock.Anything, eventID).
			Return(nil, domain.ErrGatewayUnavailable).Once()

		useCase := NewNotifyReviewCreated(mockRepo, mockGateway)

		err := useCase.Execute(context.Background(), &NotifyReviewCreatedCommand{
			ReviewID: reviewID,
			EventID:  eventID,
		})

		// The delivery succeeds; only this notification is lost
		assert.NoError(t, err)
		mockRepo.AssertNotCalled(t, "Save")
	})

	t.Run("unknown event drops the notification", func(t *testing.T) {
		mockRepo := mocks.NewMockNotificationRepository(t)
		mockGateway := mocks.NewMockEventGateway(t)

		mockGateway.EXPECT().FetchEvent(mock.Anything, eventID).
			Return(nil, domain.ErrEventNotFound).Once()

		useCase := NewNotifyReviewCreated(mockRepo, mockGateway)

		err := useCase.Execute(context.Background(), &NotifyReviewCreatedCommand{
			ReviewID: reviewID,
			EventID:  eventID,
		})

		assert.NoError(t, err)
		mockRepo.AssertNotCalled(t, "Save")
	})

	t.Run("missing event ID", func(t *testing.T) {
		mockRepo := mocks.NewMockNotificationRepository(t)
		mockGateway := mocks.NewMockEventGateway(t)

		useCase := NewNotifyReviewCreated(mockRepo, mockGateway)

		err := useCase.Execute(context.Background(), &NotifyReviewCreatedCommand{ReviewID: reviewID})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "event ID is required")
	})
}
