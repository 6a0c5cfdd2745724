package application

import (
	"context"
	"testing"

	"github.com/eventbooking/booking-system/notification-service/domain"
	"github.com/eventbooking/booking-system/notification-service/mocks"
	"github.com/eventbooking/booking-system/shared/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNotifyBookingCreated_Execute(t *testing.T) {
	bookingID := models.GenerateUUID()
	userID := models.GenerateUUID()

	tests := []struct {
		name          string
		command       *NotifyBookingCreatedCommand
		setupMocks    func(*mocks.MockNotificationRepository)
		expectedError string
	}{
		{
			name:    "stores the confirmation message",
			command: &NotifyBookingCreatedCommand{BookingID: bookingID, UserID: userID},
			setupMocks: func(repo *mocks.MockNotificationRepository) {
				repo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
					return n.UserID == userID &&
						n.Title == "Booking Created" &&
						n.Message == "Your booking has been created successfully." &&
						n.BookingID != nil && *n.BookingID == bookingID
				})).Return(nil).Once()
			},
		},
		{
			name:          "missing booking ID",
			command:       &NotifyBookingCreatedCommand{UserID: userID},
			setupMocks:    func(repo *mocks.MockNotificationRepository) {},
			expectedError: "booking ID is required",
		},
		{
			name:          "missing user ID",
			command:       &NotifyBookingCreatedCommand{BookingID: bookingID},
			setupMocks:    func(repo *mocks.MockNotificationRepository) {},
			expectedError: "user ID is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := mocks.NewMockNotificationRepository(t)
			tt.setupMocks(mockRepo)

			useCase := NewNotifyBookingCreated(mockRepo)

			err := useCase.Execute(context.Background(), tt.command)

			if tt.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNotifyBookingCancelled_Execute(t *testing.T) {
	bookingID := models.GenerateUUID()
	userID := models.GenerateUUID()

	t.Run("stores the cancellation message", func(t *testing.T) {
		mockRepo := mocks.NewMockNotificationRepository(t)

		mockRepo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
			return n.UserID == userID &&
				n.Title == "Booking Cancelled" &&
				n.BookingID != nil && *n.BookingID == bookingID
		})).Return(nil).Once()

		useCase := NewNotifyBookingCancelled(mockRepo)

		err := useCase.Execute(context.Background(), &NotifyBookingCancelledCommand{
			BookingID: bookingID,
			UserID:    userID,
		})

		assert.NoError(t, err)
	})

	t.Run("missing user ID", func(t *testing.T) {
		mockRepo := mocks.NewMockNotificationRepository(t)

		useCase := NewNotifyBookingCancelled(mockRepo)

		err := useCase.Execute(context.Background(), &NotifyBookingCancelledCommand{BookingID: bookingID})

		assert.Error(t, err)
	})
}
