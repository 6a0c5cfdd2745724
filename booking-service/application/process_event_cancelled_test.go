package application

import (
	"context"
	"testing"

	"github.com/eventbooking/booking-system/booking-service/domain"
	"github.com/eventbooking/booking-system/booking-service/mocks"
	"github.com/eventbooking/booking-system/shared/events"
	"github.com/eventbooking/booking-system/shared/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func activeBookingForEvent(t *testing.T, eventID models.ID, status domain.BookingStatus) *domain.Booking {
	t.Helper()

	booking, err := domain.CreateBooking(
		"Jane Roe",
		"jane@example.com",
		models.GenerateUUID(),
		eventID,
		models.NewMoney(5000, "USD"),
	)
	assert.NoError(t, err)
	booking.ClearEvents()
	if status == domain.BookingStatusConfirmed {
		assert.NoError(t, booking.Confirm())
	}
	return booking
}

func TestProcessEventCancelled_Execute(t *testing.T) {
	eventID := models.GenerateUUID()

	t.Run("cancels all active bookings and publishes one batch", func(t *testing.T) {
		mockRepo := mocks.NewMockBookingRepository(t)
		mockPublisher := mocks.NewMockPublisher(t)

		confirmed := activeBookingForEvent(t, eventID, domain.BookingStatusConfirmed)
		pending := activeBookingForEvent(t, eventID, domain.BookingStatusPending)

		mockRepo.EXPECT().FindActiveByEventID(mock.Anything, eventID).
			Return([]*domain.Booking{confirmed, pending}, nil).Once()
		mockRepo.EXPECT().Save(mock.Anything, confirmed).Return(nil).Once()
		mockRepo.EXPECT().Save(mock.Anything, pending).Return(nil).Once()
		mockPublisher.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(evt *events.Event) bool {
			if evt.EventType != events.EventBookingsCancelledEvent {
				return false
			}
			batch, ok := evt.Data.(events.BookingBatch)
			return ok && batch.EventID == eventID && len(batch.Bookings) == 2
		})).Return(nil).Once()

		useCase := NewProcessEventCancelled(mockRepo, mockPublisher)

		err := useCase.Execute(context.Background(), &ProcessEventCancelledCommand{EventID: eventID})

		assert.NoError(t, err)
		assert.Equal(t, domain.BookingStatusCancelled, confirmed.Status)
		assert.Equal(t, domain.BookingStatusCancelled, pending.Status)
		// Individual cancellation events are replaced by the batch
		assert.Empty(t, confirmed.Events())
		assert.Empty(t, pending.Events())
	})

	t.Run("no active bookings publishes nothing", func(t *testing.T) {
		mockRepo := mocks.NewMockBookingRepository(t)
		mockPublisher := mocks.NewMockPublisher(t)

		mockRepo.EXPECT().FindActiveByEventID(mock.Anything, eventID).
			Return([]*domain.Booking{}, nil).Once()

		useCase := NewProcessEventCancelled(mockRepo, mockPublisher)

		err := useCase.Execute(context.Background(), &ProcessEventCancelledCommand{EventID: eventID})

		assert.NoError(t, err)
		mockPublisher.AssertNotCalled(t, "Publish")
	})

	t.Run("missing event ID", func(t *testing.T) {
		useCase := NewProcessEventCancelled(mocks.NewMockBookingRepository(t), mocks.NewMockPublisher(t))

		err := useCase.Execute(context.Background(), &ProcessEventCancelledCommand{})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "event ID is required")
	})
}

func TestProcessEventUpdated_Execute(t *testing.T) {
	eventID := models.GenerateUUID()

	t.Run("republishes active bookings without mutating them", func(t *testing.T) {
		mockRepo := mocks.NewMockBookingRepository(t)
		mockPublisher := mocks.NewMockPublisher(t)

		confirmed := activeBookingForEvent(t, eventID, domain.BookingStatusConfirmed)
		pending := activeBookingForEvent(t, eventID, domain.BookingStatusPending)

		mockRepo.EXPECT().FindActiveByEventID(mock.Anything, eventID).
			Return([]*domain.Booking{confirmed, pending}, nil).Once()
		mockPublisher.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(evt *events.Event) bool {
			if evt.EventType != events.EventUpdatedBookingsEvent {
				return false
			}
			batch, ok := evt.Data.(events.BookingBatch)
			return ok && batch.EventID == eventID && len(batch.Bookings) == 2
		})).Return(nil).Once()

		useCase := NewProcessEventUpdated(mockRepo, mockPublisher)

		err := useCase.Execute(context.Background(), &ProcessEventUpdatedCommand{EventID: eventID})

		assert.NoError(t, err)
		assert.Equal(t, domain.BookingStatusConfirmed, confirmed.Status)
		assert.Equal(t, domain.BookingStatusPending, pending.Status)
		mockRepo.AssertNotCalled(t, "Save")
	})

	t.Run("no active bookings publishes nothing", func(t *testing.T) {
		mockRepo := mocks.NewMockBookingRepository(t)
		mockPublisher := mocks.NewMockPublisher(t)

		mockRepo.EXPECT().FindActiveByEventID(mock.Anything, eventID).
			Return(nil, nil).Once()

		useCase := NewProcessEventUpdated(mockRepo, mockPublisher)

		err := useCase.Execute(context.Background(), &ProcessEventUpdatedCommand{EventID: eventID})

		assert.NoError(t, err)
		mockPublisher.AssertNotCalled(t, "Publish")
	})
}
