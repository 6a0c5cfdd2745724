package application

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/eventbooking/booking-system/booking-service/domain"
	"github.com/eventbooking/booking-system/booking-service/mocks"
	"github.com/eventbooking/booking-system/shared/events"
	"github.com/eventbooking/booking-system/shared/models"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const (
	testUserID      = "550e8400-e29b-41d4-a716-446655440010"
	testEventID     = "550e8400-e29b-41d4-a716-446655440020"
	testOrganizerID = "550e8400-e29b-41d4-a716-446655440030"
)

func activeEventSnapshot() *events.EventSnapshot {
	return &events.EventSnapshot{
		ID:          models.ID(testEventID),
		Title:       "Go Conference",
		Price:       models.NewMoney(5000, "USD"),
		Capacity:    100,
		Status:      events.EventStatusActive,
		StartTime:   time.Now().Add(48 * time.Hour),
		OrganizerID: models.ID(testOrganizerID),
	}
}

func TestCreateBooking_Execute(t *testing.T) {
	validCommand := func() *CreateBookingCommand {
		return &CreateBookingCommand{
			FullName: "Jane Roe",
			Email:    "jane@example.com",
			UserID:   testUserID,
			EventID:  testEventID,
		}
	}

	tests := []struct {
		name          string
		command       *CreateBookingCommand
		setupMocks    func(*mocks.MockBookingRepository, *mocks.MockEventGateway, *mocks.MockPaymentGateway, *mocks.MockPublisher)
		expectedError string
		errorIs       error
	}{
		{
			name:    "successful booking creation",
			command: validCommand(),
			setupMocks: func(repo *mocks.MockBookingRepository, eventGw *mocks.MockEventGateway, paymentGw *mocks.MockPaymentGateway, publisher *mocks.MockPublisher) {
				eventGw.EXPECT().FetchEvent(mock.Anything, models.ID(testEventID)).Return(activeEventSnapshot(), nil).Once()
				repo.EXPECT().CountActiveByEventID(mock.Anything, models.ID(testEventID)).Return(10, nil).Once()
				paymentGw.EXPECT().FetchBalance(mock.Anything, models.ID(testUserID)).Return(models.NewMoney(10000, "USD"), nil).Once()
				repo.EXPECT().Save(mock.Anything, mock.AnythingOfType("*domain.Booking")).Return(nil).Once()
				publisher.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(evt *events.Event) bool {
					return evt.EventType == events.BookingCreatedEvent
				})).Return(nil).Once()
			},
		},
		{
			name: "missing full name",
			command: &CreateBookingCommand{
				Email:   "jane@example.com",
				UserID:  testUserID,
				EventID: testEventID,
			},
			setupMocks:    func(*mocks.MockBookingRepository, *mocks.MockEventGateway, *mocks.MockPaymentGateway, *mocks.MockPublisher) {},
			expectedError: "full name is required",
			errorIs:       domain.ErrValidation,
		},
		{
			name: "invalid email",
			command: &CreateBookingCommand{
				FullName: "Jane Roe",
				Email:    "not-an-email",
				UserID:   testUserID,
				EventID:  testEventID,
			},
			setupMocks:    func(*mocks.MockBookingRepository, *mocks.MockEventGateway, *mocks.MockPaymentGateway, *mocks.MockPublisher) {},
			expectedError: "email is not valid",
			errorIs:       domain.ErrValidation,
		},
		{
			name:    "event not found",
			command: validCommand(),
			setupMocks: func(repo *mocks.MockBookingRepository, eventGw *mocks.MockEventGateway, paymentGw *mocks.MockPaymentGateway, publisher *mocks.MockPublisher) {
				eventGw.EXPECT().FetchEvent(mock.Anything, models.ID(testEventID)).Return(nil, domain.ErrEventNotFound).Once()
			},
			expectedError: "event not found",
			errorIs:       domain.ErrEventNotFound,
		},
		{
			name:    "event is cancelled",
			command: validCommand(),
			setupMocks: func(repo *mocks.MockBookingRepository, eventGw *mocks.MockEventGateway, paymentGw *mocks.MockPaymentGateway, publisher *mocks.MockPublisher) {
				snapshot := activeEventSnapshot()
				snapshot.Status = events.EventStatusCancelled
				eventGw.EXPECT().FetchEvent(mock.Anything, models.ID(testEventID)).Return(snapshot, nil).Once()
			},
			expectedError: "event is not active",
			errorIs:       domain.ErrValidation,
		},
		{
			name: "organizer books own event",
			command: &CreateBookingCommand{
				FullName: "Jane Roe",
				Email:    "jane@example.com",
				UserID:   testOrganizerID,
				EventID:  testEventID,
			},
			setupMocks: func(repo *mocks.MockBookingRepository, eventGw *mocks.MockEventGateway, paymentGw *mocks.MockPaymentGateway, publisher *mocks.MockPublisher) {
				eventGw.EXPECT().FetchEvent(mock.Anything, models.ID(testEventID)).Return(activeEventSnapshot(), nil).Once()
			},
			expectedError: "organizer cannot book own event",
			errorIs:       domain.ErrValidation,
		},
		{
			name:    "event starts too soon",
			command: validCommand(),
			setupMocks: func(repo *mocks.MockBookingRepository, eventGw *mocks.MockEventGateway, paymentGw *mocks.MockPaymentGateway, publisher *mocks.MockPublisher) {
				snapshot := activeEventSnapshot()
				snapshot.StartTime = time.Now().Add(30 * time.Minute)
				eventGw.EXPECT().FetchEvent(mock.Anything, models.ID(testEventID)).Return(snapshot, nil).Once()
			},
			expectedError: "event starts in less than one hour",
			errorIs:       domain.ErrValidation,
		},
		{
			name:    "event is fully booked",
			command: validCommand(),
			setupMocks: func(repo *mocks.MockBookingRepository, eventGw *mocks.MockEventGateway, paymentGw *mocks.MockPaymentGateway, publisher *mocks.MockPublisher) {
				eventGw.EXPECT().FetchEvent(mock.Anything, models.ID(testEventID)).Return(activeEventSnapshot(), nil).Once()
				repo.EXPECT().CountActiveByEventID(mock.Anything, models.ID(testEventID)).Return(100, nil).Once()
			},
			expectedError: "event is fully booked",
			errorIs:       domain.ErrValidation,
		},
		{
			name:    "insufficient balance",
			command: validCommand(),
			setupMocks: func(repo *mocks.MockBookingRepository, eventGw *mocks.MockEventGateway, paymentGw *mocks.MockPaymentGateway, publisher *mocks.MockPublisher) {
				eventGw.EXPECT().FetchEvent(mock.Anything, models.ID(testEventID)).Return(activeEventSnapshot(), nil).Once()
				repo.EXPECT().CountActiveByEventID(mock.Anything, models.ID(testEventID)).Return(10, nil).Once()
				paymentGw.EXPECT().FetchBalance(mock.Anything, models.ID(testUserID)).Return(models.NewMoney(1000, "USD"), nil).Once()
			},
			expectedError: "insufficient balance",
			errorIs:       domain.ErrValidation,
		},
		{
			name:    "payment gateway unavailable",
			command: validCommand(),
			setupMocks: func(repo *mocks.MockBookingRepository, eventGw *mocks.MockEventGateway, paymentGw *mocks.MockPaymentGateway, publisher *mocks.MockPublisher) {
				eventGw.EXPECT().FetchEvent(mock.Anything, models.ID(testEventID)).Return(activeEventSnapshot(), nil).Once()
				repo.EXPECT().CountActiveByEventID(mock.Anything, models.ID(testEventID)).Return(10, nil).Once()
				paymentGw.EXPECT().FetchBalance(mock.Anything, models.ID(testUserID)).
					Return(models.Money{}, domain.ErrGatewayUnavailable).Once()
			},
			expectedError: "gateway unavailable",
			errorIs:       domain.ErrGatewayUnavailable,
		},
		{
			name:    "repository save error",
			command: validCommand(),
			setupMocks: func(repo *mocks.MockBookingRepository, eventGw *mocks.MockEventGateway, paymentGw *mocks.MockPaymentGateway, publisher *mocks.MockPublisher) {
				eventGw.EXPECT().FetchEvent(mock.Anything, models.ID(testEventID)).Return(activeEventSnapshot(), nil).Once()
				repo.EXPECT().CountActiveByEventID(mock.Anything, models.ID(testEventID)).Return(10, nil).Once()
				paymentGw.EXPECT().FetchBalance(mock.Anything, models.ID(testUserID)).Return(models.NewMoney(10000, "USD"), nil).Once()
				repo.EXPECT().Save(mock.Anything, mock.AnythingOfType("*domain.Booking")).
					Return(errors.New("database error")).Once()
			},
			expectedError: "failed to save booking",
		},
		{
			name:    "event publisher error",
			command: validCommand(),
			setupMocks: func(repo *mocks.MockBookingRepository, eventGw *mocks.MockEventGateway, paymentGw *mocks.MockPaymentGateway, publisher *mocks.MockPublisher) {
				eventGw.EXPECT().FetchEvent(mock.Anything, models.ID(testEventID)).Return(activeEventSnapshot(), nil).Once()
				repo.EXPECT().CountActiveByEventID(mock.Anything, models.ID(testEventID)).Return(10, nil).Once()
				paymentGw.EXPECT().FetchBalance(mock.Anything, models.ID(testUserID)).Return(models.NewMoney(10000, "USD"), nil).Once()
				repo.EXPECT().Save(mock.Anything, mock.AnythingOfType("*domain.Booking")).Return(nil).Once()
				publisher.EXPECT().Publish(mock.Anything, mock.Anything).
					Return(errors.New("publisher error")).Once()
			},
			expectedError: "failed to publish events",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := mocks.NewMockBookingRepository(t)
			mockEventGw := mocks.NewMockEventGateway(t)
			mockPaymentGw := mocks.NewMockPaymentGateway(t)
			mockPublisher := mocks.NewMockPublisher(t)

			tt.setupMocks(mockRepo, mockEventGw, mockPaymentGw, mockPublisher)

			useCase := NewCreateBooking(mockRepo, mockEventGw, mockPaymentGw, mockPublisher)

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
				assert.NotEmpty(t, result.BookingID)
				assert.Equal(t, string(domain.BookingStatusPending), result.Status)
				assert.Equal(t, int64(5000), result.Price.Amount)

				_, err := models.NewID(result.BookingID)
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateBooking_validateCommand(t *testing.T) {
	useCase := &CreateBooking{}

	tests := []struct {
		name          string
		command       *CreateBookingCommand
		expectedError string
	}{
		{
			name: "valid command",
			command: &CreateBookingCommand{
				FullName: "Jane Roe",
				Email:    "jane@example.com",
				UserID:   testUserID,
				EventID:  testEventID,
			},
		},
		{
			name: "empty full name",
			command: &CreateBookingCommand{
				Email:   "jane@example.com",
				UserID:  testUserID,
				EventID: testEventID,
			},
			expectedError: "full name is required",
		},
		{
			name: "empty email",
			command: &CreateBookingCommand{
				FullName: "Jane Roe",
				UserID:   testUserID,
				EventID:  testEventID,
			},
			expectedError: "email is required",
		},
		{
			name: "email without at sign",
			command: &CreateBookingCommand{
				FullName: "Jane Roe",
				Email:    "jane.example.com",
				UserID:   testUserID,
				EventID:  testEventID,
			},
			expectedError: "email is not valid",
		},
		{
			name: "empty user ID",
			command: &CreateBookingCommand{
				FullName: "Jane Roe",
				Email:    "jane@example.com",
				EventID:  testEventID,
			},
			expectedError: "user ID is required",
		},
		{
			name: "empty event ID",
			command: &CreateBookingCommand{
				FullName: "Jane Roe",
				Email:    "jane@example.com",
				UserID:   testUserID,
			},
			expectedError: "event ID is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := useCase.validateCommand(tt.command)

			if tt.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
				assert.ErrorIs(t, err, domain.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateBooking_Execute_ConcurrentCapacityRace(t *testing.T) {
	// Two requests race for the last seat. The capacity check is optimistic:
	// both read zero active bookings, both pass, and the event oversells.
	secondUserID := "550e8400-e29b-41d4-a716-446655440011"

	mockRepo := mocks.NewMockBookingRepository(t)
	mockEventGw := mocks.NewMockEventGateway(t)
	mockPaymentGw := mocks.NewMockPaymentGateway(t)
	mockPublisher := mocks.NewMockPublisher(t)

	lastSeat := activeEventSnapshot()
	lastSeat.Capacity = 1

	mockEventGw.EXPECT().FetchEvent(mock.Anything, models.ID(testEventID)).Return(lastSeat, nil).Times(2)
	mockRepo.EXPECT().CountActiveByEventID(mock.Anything, models.ID(testEventID)).Return(0, nil).Times(2)
	mockPaymentGw.EXPECT().FetchBalance(mock.Anything, mock.Anything).Return(models.NewMoney(10000, "USD"), nil).Times(2)
	mockRepo.EXPECT().Save(mock.Anything, mock.AnythingOfType("*domain.Booking")).Return(nil).Times(2)
	mockPublisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Times(2)

	useCase := NewCreateBooking(mockRepo, mockEventGw, mockPaymentGw, mockPublisher)

	commands := []*CreateBookingCommand{
		{FullName: "Jane Roe", Email: "jane@example.com", UserID: testUserID, EventID: testEventID},
		{FullName: "John Doe", Email: "john@example.com", UserID: secondUserID, EventID: testEventID},
	}

	var wg sync.WaitGroup
	results := make([]error, len(commands))
	for i, cmd := range commands {
		wg.Add(1)
		go func(i int, cmd *CreateBookingCommand) {
			defer wg.Done()
			_, results[i] = useCase.Execute(context.Background(), cmd)
		}(i, cmd)
	}
	wg.Wait()

	// Both pass the precondition; the payment decision downstream stays
	// authoritative
	assert.NoError(t, results[0])
	assert.NoError(t, results[1])
}
