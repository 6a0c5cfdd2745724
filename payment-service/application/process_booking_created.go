package application

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/eventbooking/booking-system/payment-service/domain"
	"github.com/eventbooking/booking-system/shared/events"
	"github.com/eventbooking/booking-system/shared/models"
	"github.com/eventbooking/booking-system/shared/telemetry"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ProcessBookingCreatedCommand carries the booking snapshot to decide on
type ProcessBookingCreatedCommand struct {
	BookingID models.ID    `json:"booking_id"`
	UserID    models.ID    `json:"user_id"`
	Price     models.Money `json:"price"`
}

// ProcessBookingCreated is the payment decision engine. For each
// booking.created it writes the debit ledger entry, approves iff the balance
// over prior APPROVED entries covers the price, and publishes the
// payment.created outcome keyed by booking ID.
//
// Deliveries for the same user are serialized on a per-user mutex so the
// read-sum-then-insert sequence cannot interleave for one user. Duplicate
// deliveries are caught by the pre-insert lookup and, under races, by the
// unique debit-per-booking constraint.
type ProcessBookingCreated struct {
	paymentRepository domain.PaymentRepository
	eventPublisher    events.Publisher

	userLocks sync.Map // models.ID -> *sync.Mutex
}

// NewProcessBookingCreated creates a new ProcessBookingCreated use case
func NewProcessBookingCreated(
	paymentRepository domain.PaymentRepository,
	eventPublisher events.Publisher,
) *ProcessBookingCreated {
	return &ProcessBookingCreated{
		paymentRepository: paymentRepository,
		eventPublisher:    eventPublisher,
	}
}

// Execute decides the payment for a created booking
func (uc *ProcessBookingCreated) Execute(ctx context.Context, cmd *ProcessBookingCreatedCommand) error {
	start := time.Now()
	ctx, span := telemetry.StartSpan(ctx, "process_booking_created",
		trace.WithAttributes(
			attribute.String("booking_id", cmd.BookingID.String()),
			attribute.String("user_id", cmd.UserID.String()),
			attribute.Int64("price", cmd.Price.Amount),
		),
	)
	defer span.End()

	var status string = "error"
	defer func() {
		duration := time.Since(start)

		telemetry.RecordCounter(ctx, "payment_decisions_total", "Total payment decisions", 1,
			attribute.String("status", status),
		)

		telemetry.RecordHistogram(ctx, "payment_decision_duration_seconds", "Payment decision duration", duration.Seconds(),
			attribute.String("status", status),
		)
	}()

	if err := uc.validateCommand(cmd); err != nil {
		span.RecordError(err)
		return errors.Wrap(err, "invalid command")
	}

	mu := uc.lockForUser(cmd.UserID)
	mu.Lock()
	defer mu.Unlock()

	// Idempotency: one debit per booking, ever
	existing, err := uc.paymentRepository.FindDebitByBookingID(ctx, cmd.BookingID)
	if err != nil {
		span.RecordError(err)
		return errors.Wrap(err, "failed to check for existing debit")
	}

	if existing != nil {
		log.Printf("debit for booking %s already exists, dropping duplicate", cmd.BookingID)
		status = "duplicate"
		return nil
	}

	balance, err := uc.paymentRepository.SumApprovedByUserID(ctx, cmd.UserID)
	if err != nil {
		span.RecordError(err)
		return errors.Wrap(err, "failed to compute balance")
	}

	approved := balance >= cmd.Price.Amount
	payment := domain.NewDebit(cmd.UserID, cmd.BookingID, cmd.Price, approved)

	if err := uc.paymentRepository.Save(ctx, payment); err != nil {
		if errors.Is(err, domain.ErrDuplicateEntry) {
			// Lost the race against a concurrent duplicate delivery
			log.Printf("debit for booking %s inserted concurrently, dropping duplicate", cmd.BookingID)
			status = "duplicate"
			return nil
		}
		span.RecordError(err)
		return errors.Wrap(err, "failed to save payment")
	}

	if err := uc.eventPublisher.Publish(ctx, payment.Events()...); err != nil {
		span.RecordError(err)
		return errors.Wrap(err, "failed to publish payment outcome")
	}
	payment.ClearEvents()

	if approved {
		status = "approved"
	} else {
		status = "rejected"
	}
	span.SetAttributes(
		attribute.String("payment_id", payment.ID.String()),
		attribute.String("decision", string(payment.Status)),
	)

	return nil
}

// validateCommand validates the process booking created command
func (uc *ProcessBookingCreated) validateCommand(cmd *ProcessBookingCreatedCommand) error {
	if cmd.BookingID.IsZero() {
		return errors.New("booking ID is required")
	}

	if cmd.UserID.IsZero() {
		return errors.New("user ID is required")
	}

	if !cmd.Price.IsPositive() {
		return errors.New("price must be positive")
	}

	return nil
}

// lockForUser returns the mutex serializing decisions for one user
func (uc *ProcessBookingCreated) lockForUser(userID models.ID) *sync.Mutex {
	mu, _ := uc.userLocks.LoadOrStore(userID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}
