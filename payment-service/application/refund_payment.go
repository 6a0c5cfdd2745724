package application

import (
	"context"
	"log"

	"github.com/eventbooking/booking-system/payment-service/domain"
	"github.com/eventbooking/booking-system/shared/models"
	"github.com/pkg/errors"
)

// RefundPaymentCommand identifies the booking whose debit should be refunded
type RefundPaymentCommand struct {
	BookingID models.ID `json:"booking_id"`
}

// RefundPayment use case compensates a cancelled booking by flipping its
// approved debit to REFUNDED. Bookings without an approved debit (rejected,
// already refunded, or never decided) are dropped silently so cascades and
// replays stay idempotent.
type RefundPayment struct {
	paymentRepository domain.PaymentRepository
}

// NewRefundPayment creates a new RefundPayment use case
func NewRefundPayment(paymentRepository domain.PaymentRepository) *RefundPayment {
	return &RefundPayment{
		paymentRepository: paymentRepository,
	}
}

// Execute refunds the debit of a cancelled booking
func (uc *RefundPayment) Execute(ctx context.Context, cmd *RefundPaymentCommand) error {
	if cmd.BookingID.IsZero() {
		return errors.New("booking ID is required")
	}

	payment, err := uc.paymentRepository.FindDebitByBookingID(ctx, cmd.BookingID)
	if err != nil {
		return errors.Wrap(err, "failed to find debit")
	}

	if payment == nil {
		log.Printf("no debit for cancelled booking %s, nothing to refund", cmd.BookingID)
		return nil
	}

	if err := payment.Refund(); err != nil {
		if errors.Is(err, domain.ErrAlreadyRefunded) || errors.Is(err, domain.ErrNotRefundable) {
			log.Printf("debit for booking %s not refundable (%s), dropping", cmd.BookingID, payment.Status)
			return nil
		}
		return errors.Wrap(err, "failed to refund payment")
	}

	if err := uc.paymentRepository.Save(ctx, payment); err != nil {
		return errors.Wrap(err, "failed to save refunded payment")
	}

	return nil
}
