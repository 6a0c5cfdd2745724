package domain

import (
	"testing"

	"github.com/eventbooking/booking-system/shared/events"
	"github.com/eventbooking/booking-system/shared/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDebit(t *testing.T) {
	userID := models.GenerateUUID()
	bookingID := models.GenerateUUID()
	price := models.NewMoney(5000, "USD")

	t.Run("approved debit", func(t *testing.T) {
		payment := NewDebit(userID, bookingID, price, true)

		assert.Equal(t, PaymentStatusApproved, payment.Status)
		assert.Equal(t, PaymentKindDebit, payment.Kind)
		assert.Equal(t, int64(-5000), payment.Amount.Amount)
		require.NotNil(t, payment.BookingID)
		assert.Equal(t, bookingID, *payment.BookingID)
		assert.True(t, payment.CountsTowardBalance())

		recorded := payment.Events()
		require.Len(t, recorded, 1)
		assert.Equal(t, events.PaymentCreatedEvent, recorded[0].EventType)
		assert.Equal(t, bookingID, recorded[0].AggregateID)

		outcome, ok := recorded[0].Data.(events.PaymentOutcome)
		require.True(t, ok)
		assert.Equal(t, events.PaymentStatusApproved, outcome.Status)
		assert.Equal(t, bookingID, outcome.BookingID)
	})

	t.Run("rejected debit", func(t *testing.T) {
		payment := NewDebit(userID, bookingID, price, false)

		assert.Equal(t, PaymentStatusRejected, payment.Status)
		assert.False(t, payment.CountsTowardBalance())

		recorded := payment.Events()
		require.Len(t, recorded, 1)
		outcome, ok := recorded[0].Data.(events.PaymentOutcome)
		require.True(t, ok)
		assert.Equal(t, events.PaymentStatusRejected, outcome.Status)
	})
}

func TestNewTopUp(t *testing.T) {
	payment := NewTopUp(models.GenerateUUID(), models.NewMoney(10000, "USD"))

	assert.Equal(t, PaymentKindTopUp, payment.Kind)
	assert.Equal(t, PaymentStatusApproved, payment.Status)
	assert.Equal(t, int64(10000), payment.Amount.Amount)
	assert.Nil(t, payment.BookingID)
	assert.Empty(t, payment.Events())
}

func TestPaymentRefund(t *testing.T) {
	userID := models.GenerateUUID()
	bookingID := models.GenerateUUID()
	price := models.NewMoney(5000, "USD")

	t.Run("refund approved debit", func(t *testing.T) {
		payment := NewDebit(userID, bookingID, price, true)

		err := payment.Refund()

		assert.NoError(t, err)
		assert.Equal(t, PaymentStatusRefunded, payment.Status)
		assert.False(t, payment.CountsTowardBalance())
		// The amount is untouched; only the status flips
		assert.Equal(t, int64(-5000), payment.Amount.Amount)
	})

	t.Run("refund twice", func(t *testing.T) {
		payment := NewDebit(userID, bookingID, price, true)
		require.NoError(t, payment.Refund())

		err := payment.Refund()

		assert.ErrorIs(t, err, ErrAlreadyRefunded)
		assert.Equal(t, PaymentStatusRefunded, payment.Status)
	})

	t.Run("refund rejected debit", func(t *testing.T) {
		payment := NewDebit(userID, bookingID, price, false)

		err := payment.Refund()

		assert.ErrorIs(t, err, ErrNotRefundable)
		assert.Equal(t, PaymentStatusRejected, payment.Status)
	})

	t.Run("refund top-up", func(t *testing.T) {
		payment := NewTopUp(userID, models.NewMoney(10000, "USD"))

		err := payment.Refund()

		assert.ErrorIs(t, err, ErrNotRefundable)
	})
}
