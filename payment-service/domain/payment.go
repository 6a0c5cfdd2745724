package domain

import (
	"context"

	"github.com/eventbooking/booking-system/shared/events"
	"github.com/eventbooking/booking-system/shared/models"
)

// PaymentStatus represents the status of a ledger entry
type PaymentStatus string

const (
	PaymentStatusApproved PaymentStatus = "APPROVED"
	PaymentStatusRejected PaymentStatus = "REJECTED"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

// PaymentKind represents the kind of ledger entry
type PaymentKind string

const (
	PaymentKindDebit PaymentKind = "DEBIT"
	PaymentKindTopUp PaymentKind = "TOPUP"
)

// DefaultCurrency is the currency of the ledger
const DefaultCurrency = "USD"

// Payment is one immutable ledger entry. The user's balance is the sum of
// their APPROVED entries: debits carry negative amounts, top-ups positive
// ones. A refund flips the debit's status to REFUNDED, which removes it from
// the balance sum; no reversing entry is written.
type Payment struct {
	ID         models.ID     `json:"id"`
	UserID     models.ID     `json:"user_id"`
	BookingID  *models.ID    `json:"booking_id,omitempty"`
	Amount     models.Money  `json:"amount"`
	Kind       PaymentKind   `json:"kind"`
	Status     PaymentStatus `json:"status"`
	Timestamps models.Timestamps
	Version    models.Version

	events []*events.Event
}

// NewDebit creates the debit entry for a booking. The amount stored is the
// negated price. Records the payment.created outcome event either way: the
// booking service settles the booking from it.
func NewDebit(userID, bookingID models.ID, price models.Money, approved bool) *Payment {
	status := PaymentStatusRejected
	if approved {
		status = PaymentStatusApproved
	}

	payment := &Payment{
		ID:         models.GenerateUUID(),
		UserID:     userID,
		BookingID:  &bookingID,
		Amount:     price.Negate(),
		Kind:       PaymentKindDebit,
		Status:     status,
		Timestamps: models.NewTimestamps(),
		Version:    models.NewVersion(),
	}

	event := events.NewEvent(bookingID, events.PaymentCreatedEvent, events.PaymentOutcome{
		PaymentID: payment.ID,
		BookingID: bookingID,
		UserID:    userID,
		Amount:    payment.Amount,
		Status:    string(status),
		CreatedAt: payment.Timestamps.CreatedAt,
	})

	payment.recordEvent(event)
	return payment
}

// NewTopUp creates an approved credit entry. Top-ups skip the decision
// engine and publish nothing.
func NewTopUp(userID models.ID, amount models.Money) *Payment {
	return &Payment{
		ID:         models.GenerateUUID(),
		UserID:     userID,
		Amount:     amount,
		Kind:       PaymentKindTopUp,
		Status:     PaymentStatusApproved,
		Timestamps: models.NewTimestamps(),
		Version:    models.NewVersion(),
	}
}

// Refund flips an approved debit to REFUNDED. Refunding an already refunded
// entry returns ErrAlreadyRefunded so replays are no-ops; rejected debits
// never held funds and cannot be refunded.
func (p *Payment) Refund() error {
	if p.Kind != PaymentKindDebit {
		return ErrNotRefundable
	}

	switch p.Status {
	case PaymentStatusRefunded:
		return ErrAlreadyRefunded
	case PaymentStatusRejected:
		return ErrNotRefundable
	}

	p.Status = PaymentStatusRefunded
	p.Timestamps = p.Timestamps.Update()
	p.Version = p.Version.Update()
	return nil
}

// CountsTowardBalance reports whether the entry contributes to the balance sum
func (p *Payment) CountsTowardBalance() bool {
	return p.Status == PaymentStatusApproved
}

// Events returns domain events
func (p *Payment) Events() []*events.Event {
	return p.events
}

// ClearEvents clears domain events
func (p *Payment) ClearEvents() {
	p.events = make([]*events.Event, 0)
}

// recordEvent records a domain event
func (p *Payment) recordEvent(event *events.Event) {
	p.events = append(p.events, event)
}

// PaymentRepository persists ledger entries
type PaymentRepository interface {
	Save(ctx context.Context, payment *Payment) error
	FindByID(ctx context.Context, id models.ID) (*Payment, error)
	FindByUserID(ctx context.Context, userID models.ID) ([]*Payment, error)
	FindDebitByBookingID(ctx context.Context, bookingID models.ID) (*Payment, error)
	SumApprovedByUserID(ctx context.Context, userID models.ID) (int64, error)
}
