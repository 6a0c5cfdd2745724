package application

import (
	"context"
	"log"

	"github.com/eventbooking/booking-system/booking-service/domain"
	"github.com/eventbooking/booking-system/shared/events"
	"github.com/eventbooking/booking-system/shared/models"
	"github.com/pkg/errors"
)

// ProcessPaymentDecisionCommand represents the payment outcome for a booking
type ProcessPaymentDecisionCommand struct {
	BookingID models.ID `json:"booking_id"`
	PaymentID models.ID `json:"payment_id"`
	Status    string    `json:"status"` // "APPROVED" or "REJECTED"
}

// ProcessPaymentDecision use case settles a PENDING booking from the payment
// outcome: APPROVED confirms it, REJECTED rejects it. Replayed or out-of-order
// deliveries land on a finalized booking and are dropped.
type ProcessPaymentDecision struct {
	bookingRepository domain.BookingRepository
}

// NewProcessPaymentDecision creates a new ProcessPaymentDecision use case
func NewProcessPaymentDecision(bookingRepository domain.BookingRepository) *ProcessPaymentDecision {
	return &ProcessPaymentDecision{
		bookingRepository: bookingRepository,
	}
}

// Execute applies the payment decision to the booking
func (uc *ProcessPaymentDecision) Execute(ctx context.Context, cmd *ProcessPaymentDecisionCommand) error {
	if err := uc.validateCommand(cmd); err != nil {
		return errors.Wrap(err, "invalid command")
	}

	booking, err := uc.bookingRepository.FindByID(ctx, cmd.BookingID)
	if err != nil {
		return errors.Wrap(err, "failed to find booking")
	}

	if booking == nil {
		// Outcome for a booking this service never created; nothing to settle
		log.Printf("payment decision for unknown booking %s, dropping", cmd.BookingID)
		return nil
	}

	switch cmd.Status {
	case events.PaymentStatusApproved:
		err = booking.Confirm()
	case events.PaymentStatusRejected:
		err = booking.Reject()
	}

	if err != nil {
		if errors.Is(err, domain.ErrBookingFinalized) {
			// Duplicate or late delivery; the booking already settled
			log.Printf("payment decision for finalized booking %s (%s), dropping", booking.ID, booking.Status)
			return nil
		}
		return errors.Wrap(err, "failed to apply payment decision")
	}

	if err := uc.bookingRepository.Save(ctx, booking); err != nil {
		return errors.Wrap(err, "failed to save booking")
	}

	return nil
}

// validateCommand validates the process payment decision command
func (uc *ProcessPaymentDecision) validateCommand(cmd *ProcessPaymentDecisionCommand) error {
	if cmd.BookingID.IsZero() {
		return errors.New("booking ID is required")
	}

	if cmd.Status == "" {
		return errors.New("status is required")
	}

	if cmd.Status != events.PaymentStatusApproved && cmd.Status != events.PaymentStatusRejected {
		return errors.New("status must be either 'APPROVED' or 'REJECTED'")
	}

	return nil
}
