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

func pendingBooking(t *testing.T) *domain.Booking {
	t.Helper()

	booking, err := domain.CreateBooking(
		"Jane Roe",
		"jane@example.com",
		models.GenerateUUID(),
		models.GenerateUUID(),
		models.NewMoney(5000, "USD"),
	)
	assert.NoError(t, err)
	booking.ClearEvents()
	return booking
}

func TestProcessPaymentDecision_Execute(t *testing.T) {
	bookingID := models.GenerateUUID()

	tests := []struct {
		name           string
		command        *ProcessPaymentDecisionCommand
		setupMocks     func(*mocks.MockBookingRepository) *domain.Booking
		expectedError  string
		expectedStatus domain.BookingStatus
	}{
		{
			name: "approved payment confirms booking",
			command: &ProcessPaymentDecisionCommand{
				BookingID: bookingID,
				PaymentID: models.GenerateUUID(),
				Status:    events.PaymentStatusApproved,
			},
			setupMocks: func(repo *mocks.MockBookingRepository) *domain.Booking {
				booking := pendingBooking(t)
				repo.EXPECT().FindByID(mock.Anything, bookingID).Return(booking, nil).Once()
				repo.EXPECT().Save(mock.Anything, booking).Return(nil).Once()
				return booking
			},
			expectedStatus: domain.BookingStatusConfirmed,
		},
		{
			name: "rejected payment rejects booking",
			command: &ProcessPaymentDecisionCommand{
				BookingID: bookingID,
				PaymentID: models.GenerateUUID(),
				Status:    events.PaymentStatusRejected,
			},
			setupMocks: func(repo *mocks.MockBookingRepository) *domain.Booking {
				booking := pendingBooking(t)
				repo.EXPECT().FindByID(mock.Anything, bookingID).Return(booking, nil).Once()
				repo.EXPECT().Save(mock.Anything, booking).Return(nil).Once()
				return booking
			},
			expectedStatus: domain.BookingStatusRejected,
		},
		{
			name: "unknown booking is dropped",
			command: &ProcessPaymentDecisionCommand{
				BookingID: bookingID,
				PaymentID: models.GenerateUUID(),
				Status:    events.PaymentStatusApproved,
			},
			setupMocks: func(repo *mocks.MockBookingRepository) *domain.Booking {
				repo.EXPECT().FindByID(mock.Anything, bookingID).Return(nil, nil).Once()
				return nil
			},
		},
		{
			name: "decision on cancelled booking is a no-op",
			command: &ProcessPaymentDecisionCommand{
				BookingID: bookingID,
				PaymentID: models.GenerateUUID(),
				Status:    events.PaymentStatusApproved,
			},
			setupMocks: func(repo *mocks.MockBookingRepository) *domain.Booking {
				booking := pendingBooking(t)
				assert.NoError(t, booking.Cancel())
				booking.ClearEvents()
				repo.EXPECT().FindByID(mock.Anything, bookingID).Return(booking, nil).Once()
				return booking
			},
			expectedStatus: domain.BookingStatusCancelled,
		},
		{
			name: "duplicate approval is a no-op",
			command: &ProcessPaymentDecisionCommand{
				BookingID: bookingID,
				PaymentID: models.GenerateUUID(),
				Status:    events.PaymentStatusApproved,
			},
			setupMocks: func(repo *mocks.MockBookingRepository) *domain.Booking {
				booking := pendingBooking(t)
				assert.NoError(t, booking.Confirm())
				repo.EXPECT().FindByID(mock.Anything, bookingID).Return(booking, nil).Once()
				return booking
			},
			expectedStatus: domain.BookingStatusConfirmed,
		},
		{
			name: "invalid status",
			command: &ProcessPaymentDecisionCommand{
				BookingID: bookingID,
				PaymentID: models.GenerateUUID(),
				Status:    "SETTLED",
			},
			setupMocks: func(repo *mocks.MockBookingRepository) *domain.Booking {
				return nil
			},
			expectedError: "status must be either 'APPROVED' or 'REJECTED'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := mocks.NewMockBookingRepository(t)
			booking := tt.setupMocks(mockRepo)

			useCase := NewProcessPaymentDecision(mockRepo)

			err := useCase.Execute(context.Background(), tt.command)

			if tt.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
			} else {
				assert.NoError(t, err)
			}

			if booking != nil && tt.expectedStatus != "" {
				assert.Equal(t, tt.expectedStatus, booking.Status)
			}
		})
	}
}
