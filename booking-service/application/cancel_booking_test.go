package application

import (
	"context"
	"testing"
	"time"

	"github.com/eventbooking/booking-system/booking-service/domain"
	"github.com/eventbooking/booking-system/booking-service/mocks"
	"github.com/eventbooking/booking-system/shared/events"
	"github.com/eventbooking/booking-system/shared/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCancelBooking_Execute(t *testing.T) {
	bookingID := models.GenerateUUID()
	ownerID := models.GenerateUUID()
	eventID := models.GenerateUUID()

	ownedBooking := func(status domain.BookingStatus) *domain.Booking {
		booking, err := domain.CreateBooking(
			"Jane Roe",
			"jane@example.com",
			ownerID,
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

	upcomingEvent := func() *events.EventSnapshot {
		return &events.EventSnapshot{
			ID:          eventID,
			Title:       "Go Conference",
			Price:       models.NewMoney(5000, "USD"),
			Capacity:    100,
			Status:      events.EventStatusActive,
			StartTime:   time.Now().Add(48 * time.Hour),
			OrganizerID: models.GenerateUUID(),
		}
	}

	tests := []struct {
		name          string
		command       *CancelBookingCommand
		setupMocks    func(*mocks.MockBookingRepository, *mocks.MockEventGateway, *mocks.MockPublisher)
		expectedError string
		errorIs       error
	}{
		{
			name: "cancel confirmed booking",
			command: &CancelBookingCommand{
				BookingID: bookingID.String(),
				UserID:    ownerID.String(),
			},
			setupMocks: func(repo *mocks.MockBookingRepository, gateway *mocks.MockEventGateway, publisher *mocks.MockPublisher) {
				repo.EXPECT().FindByID(mock.Anything, bookingID).Return(ownedBooking(domain.BookingStatusConfirmed), nil).Once()
				gateway.EXPECT().FetchEvent(mock.Anything, eventID).Return(upcomingEvent(), nil).Once()
				repo.EXPECT().Save(mock.Anything, mock.AnythingOfType("*domain.Booking")).Return(nil).Once()
				publisher.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(evt *events.Event) bool {
					return evt.EventType == events.BookingCancelledEvent
				})).Return(nil).Once()
			},
		},
		{
			name: "booking not found",
			command: &CancelBookingCommand{
				BookingID: bookingID.String(),
				UserID:    ownerID.String(),
			},
			setupMocks: func(repo *mocks.MockBookingRepository, gateway *mocks.MockEventGateway, publisher *mocks.MockPublisher) {
				repo.EXPECT().FindByID(mock.Anything, bookingID).Return(nil, nil).Once()
			},
			expectedError: "booking not found",
			errorIs:       domain.ErrBookingNotFound,
		},
		{
			name: "cancel someone else's booking",
			command: &CancelBookingCommand{
				BookingID: bookingID.String(),
				UserID:    models.GenerateUUID().String(),
			},
			setupMocks: func(repo *mocks.MockBookingRepository, gateway *mocks.MockEventGateway, publisher *mocks.MockPublisher) {
				repo.EXPECT().FindByID(mock.Anything, bookingID).Return(ownedBooking(domain.BookingStatusConfirmed), nil).Once()
			},
			expectedError: "booking belongs to another user",
			errorIs:       domain.ErrNotOwner,
		},
		{
			name: "cancel already cancelled booking",
			command: &CancelBookingCommand{
				BookingID: bookingID.String(),
				UserID:    ownerID.String(),
			},
			setupMocks: func(repo *mocks.MockBookingRepository, gateway *mocks.MockEventGateway, publisher *mocks.MockPublisher) {
				booking := ownedBooking(domain.BookingStatusConfirmed)
				assert.NoError(t, booking.Cancel())
				booking.ClearEvents()
				repo.EXPECT().FindByID(mock.Anything, bookingID).Return(booking, nil).Once()
			},
			expectedError: "booking already finalized",
			errorIs:       domain.ErrBookingFinalized,
		},
		{
			name: "cancel inside the start lead",
			command: &CancelBookingCommand{
				BookingID: bookingID.String(),
				UserID:    ownerID.String(),
			},
			setupMocks: func(repo *mocks.MockBookingRepository, gateway *mocks.MockEventGateway, publisher *mocks.MockPublisher) {
				repo.EXPECT().FindByID(mock.Anything, bookingID).Return(ownedBooking(domain.BookingStatusConfirmed), nil).Once()
				snapshot := upcomingEvent()
				snapshot.StartTime = time.Now().Add(30 * time.Minute)
				gateway.EXPECT().FetchEvent(mock.Anything, eventID).Return(snapshot, nil).Once()
			},
			expectedError: "event starts in less than one hour",
			errorIs:       domain.ErrValidation,
		},
		{
			name: "cancel after the event was cancelled",
			command: &CancelBookingCommand{
				BookingID: bookingID.String(),
				UserID:    ownerID.String(),
			},
			setupMocks: func(repo *mocks.MockBookingRepository, gateway *mocks.MockEventGateway, publisher *mocks.MockPublisher) {
				repo.EXPECT().FindByID(mock.Anything, bookingID).Return(ownedBooking(domain.BookingStatusConfirmed), nil).Once()
				snapshot := upcomingEvent()
				snapshot.Status = events.EventStatusCancelled
				gateway.EXPECT().FetchEvent(mock.Anything, eventID).Return(snapshot, nil).Once()
			},
			expectedError: "event is already cancelled",
			errorIs:       domain.ErrValidation,
		},
		{
			name: "event lookup failure",
			command: &CancelBookingCommand{
				BookingID: bookingID.String(),
				UserID:    ownerID.String(),
			},
			setupMocks: func(repo *mocks.MockBookingRepository, gateway *mocks.MockEventGateway, publisher *mocks.MockPublisher) {
				repo.EXPECT().FindByID(mock.Anything, bookingID).Return(ownedBooking(domain.BookingStatusConfirmed), nil).Once()
				gateway.EXPECT().FetchEvent(mock.Anything, eventID).Return(nil, domain.ErrGatewayUnavailable).Once()
			},
			expectedError: "gateway unavailable",
			errorIs:       domain.ErrGatewayUnavailable,
		},
		{
			name: "missing user ID",
			command: &CancelBookingCommand{
				BookingID: bookingID.String(),
			},
			setupMocks:    func(*mocks.MockBookingRepository, *mocks.MockEventGateway, *mocks.MockPublisher) {},
			expectedError: "user ID is required",
			errorIs:       domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := mocks.NewMockBookingRepository(t)
			mockGateway := mocks.NewMockEventGateway(t)
			mockPublisher := mocks.NewMockPublisher(t)

			tt.setupMocks(mockRepo, mockGateway, mockPublisher)

			useCase := NewCancelBooking(mockRepo, mockGateway, mockPublisher)

			result, err := useCase.Execute(context.Background(), tt.command)

			if tt.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
				if tt.errorIs != nil {
					assert.ErrorIs(t, err, tt.errorIs)
				}
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, result)
				assert.Equal(t, string(domain.BookingStatusCancelled), result.Status)
			}
		})
	}
}
