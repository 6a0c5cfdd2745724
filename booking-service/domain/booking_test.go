package domain

import (
	"testing"

	"github.com/eventbooking/booking-system/shared/events"
	"github.com/eventbooking/booking-system/shared/models"
	"github.com/stretchr/testify/assert"
)

func newTestBooking(t *testing.T, status BookingStatus) *Booking {
	t.Helper()

	booking, err := CreateBooking(
		"Jane Roe",
		"jane@example.com",
		models.GenerateUUID(),
		models.GenerateUUID(),
		models.NewMoney(2500, "USD"),
	)
	assert.NoError(t, err)
	booking.ClearEvents()
	booking.Status = status
	return booking
}

func TestCreateBooking(t *testing.T) {
	userID := models.GenerateUUID()
	eventID := models.GenerateUUID()

	booking, err := CreateBooking("Jane Roe", "jane@example.com", userID, eventID, models.NewMoney(2500, "USD"))

	assert.NoError(t, err)
	assert.Equal(t, BookingStatusPending, booking.Status)
	assert.Equal(t, userID, booking.UserID)
	assert.Equal(t, eventID, booking.EventID)
	assert.Equal(t, 1, booking.Version.Value)

	recorded := booking.Events()
	assert.Len(t, recorded, 1)
	assert.Equal(t, events.BookingCreatedEvent, recorded[0].EventType)
	assert.Equal(t, booking.ID, recorded[0].AggregateID)

	snapshot, ok := recorded[0].Data.(events.BookingSnapshot)
	assert.True(t, ok)
	assert.Equal(t, booking.ID, snapshot.ID)
	assert.Equal(t, int64(2500), snapshot.Price.Amount)
}

func TestBookingTransitions(t *testing.T) {
	tests := []struct {
		name          string
		from          BookingStatus
		transition    func(*Booking) error
		expectedErr   error
		expectedState BookingStatus
	}{
		{
			name:          "confirm pending booking",
			from:          BookingStatusPending,
			transition:    (*Booking).Confirm,
			expectedState: BookingStatusConfirmed,
		},
		{
			name:          "reject pending booking",
			from:          BookingStatusPending,
			transition:    (*Booking).Reject,
			expectedState: BookingStatusRejected,
		},
		{
			name:          "cancel pending booking",
			from:          BookingStatusPending,
			transition:    (*Booking).Cancel,
			expectedState: BookingStatusCancelled,
		},
		{
			name:          "cancel confirmed booking",
			from:          BookingStatusConfirmed,
			transition:    (*Booking).Cancel,
			expectedState: BookingStatusCancelled,
		},
		{
			name:          "confirm already confirmed booking",
			from:          BookingStatusConfirmed,
			transition:    (*Booking).Confirm,
			expectedErr:   ErrBookingFinalized,
			expectedState: BookingStatusConfirmed,
		},
		{
			name:          "confirm cancelled booking",
			from:          BookingStatusCancelled,
			transition:    (*Booking).Confirm,
			expectedErr:   ErrBookingFinalized,
			expectedState: BookingStatusCancelled,
		},
		{
			name:          "reject confirmed booking",
			from:          BookingStatusConfirmed,
			transition:    (*Booking).Reject,
			expectedErr:   ErrBookingFinalized,
			expectedState: BookingStatusConfirmed,
		},
		{
			name:          "cancel rejected booking",
			from:          BookingStatusRejected,
			transition:    (*Booking).Cancel,
			expectedErr:   ErrBookingFinalized,
			expectedState: BookingStatusRejected,
		},
		{
			name:          "cancel cancelled booking",
			from:          BookingStatusCancelled,
			transition:    (*Booking).Cancel,
			expectedErr:   ErrBookingFinalized,
			expectedState: BookingStatusCancelled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := newTestBooking(t, tt.from)

			err := tt.transition(booking)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedState, booking.Status)
		})
	}
}

func TestBookingCancelRecordsEvent(t *testing.T) {
	booking := newTestBooking(t, BookingStatusConfirmed)

	err := booking.Cancel()

	assert.NoError(t, err)
	recorded := booking.Events()
	assert.Len(t, recorded, 1)
	assert.Equal(t, events.BookingCancelledEvent, recorded[0].EventType)

	snapshot, ok := recorded[0].Data.(events.BookingSnapshot)
	assert.True(t, ok)
	assert.Equal(t, string(BookingStatusCancelled), snapshot.Status)
}

func TestBookingStatusIsTerminal(t *testing.T) {
	assert.False(t, BookingStatusPending.IsTerminal())
	assert.False(t, BookingStatusConfirmed.IsTerminal())
	assert.True(t, BookingStatusRejected.IsTerminal())
	assert.True(t, BookingStatusCancelled.IsTerminal())
}
