package application

import (
	"context"
	"time"

	"github.com/eventbooking/booking-system/payment-service/domain"
	"github.com/eventbooking/booking-system/shared/models"
	"github.com/eventbooking/booking-system/shared/telemetry"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// TopUpCommand represents the command to deposit funds
type TopUpCommand struct {
	UserID   string `json:"user_id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// TopUpResponse represents the response after a deposit
type TopUpResponse struct {
	PaymentID string       `json:"payment_id"`
	Amount    models.Money `json:"amount"`
	Status    string       `json:"status"`
}

// TopUp use case writes an approved credit entry. Deposits bypass the
// decision engine entirely.
type TopUp struct {
	paymentRepository domain.PaymentRepository
}

// NewTopUp creates a new TopUp use case
func NewTopUp(paymentRepository domain.PaymentRepository) *TopUp {
	return &TopUp{paymentRepository: paymentRepository}
}

// Execute deposits funds into the user's ledger
func (uc *TopUp) Execute(ctx context.Context, cmd *TopUpCommand) (*TopUpResponse, error) {
	start := time.Now()
	ctx, span := telemetry.StartSpan(ctx, "top_up",
		trace.WithAttributes(
			attribute.String("user_id", cmd.UserID),
			attribute.Int64("amount", cmd.Amount),
		),
	)
	defer span.End()

	var status string = "error"
	defer func() {
		duration := time.Since(start)

		telemetry.RecordCounter(ctx, "payment_operations_total", "Total payment operations", 1,
			attribute.String("operation", "top_up"),
			attribute.String("status", status),
		)

		telemetry.RecordHistogram(ctx, "payment_operation_duration_seconds", "Payment operation duration", duration.Seconds(),
			attribute.String("operation", "top_up"),
			attribute.String("status", status),
		)
	}()

	if cmd.UserID == "" {
		return nil, errors.Wrap(domain.ErrValidation, "user ID is required")
	}

	if cmd.Amount <= 0 {
		return nil, errors.Wrap(domain.ErrValidation, "amount must be positive")
	}

	currency := cmd.Currency
	if currency == "" {
		currency = domain.DefaultCurrency
	}

	userID, err := models.NewID(cmd.UserID)
	if err != nil {
		span.RecordError(err)
		return nil, errors.Wrap(domain.ErrValidation, "invalid user ID")
	}

	payment := domain.NewTopUp(userID, models.NewMoney(cmd.Amount, currency))

	if err := uc.paymentRepository.Save(ctx, payment); err != nil {
		span.RecordError(err)
		return nil, errors.Wrap(err, "failed to save top-up")
	}

	status = "success"

	return &TopUpResponse{
		PaymentID: payment.ID.String(),
		Amount:    payment.Amount,
		Status:    string(payment.Status),
	}, nil
}
