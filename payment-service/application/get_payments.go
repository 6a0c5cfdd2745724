package application

import (
	"context"
	"time"

	"github.com/eventbooking/booking-system/payment-service/domain"
	"github.com/eventbooking/booking-system/shared/models"
	"github.com/pkg/errors"
)

// GetPaymentsQuery represents the query for a user's ledger entries
type GetPaymentsQuery struct {
	UserID string `json:"user_id"`
}

// PaymentView is the read model returned by payment queries
type PaymentView struct {
	PaymentID string       `json:"payment_id"`
	UserID    string       `json:"user_id"`
	BookingID string       `json:"booking_id,omitempty"`
	Amount    models.Money `json:"amount"`
	Kind      string       `json:"kind"`
	Status    string       `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
}

// GetPayments use case serves the ledger read path
type GetPayments struct {
	paymentRepository domain.PaymentRepository
}

// NewGetPayments creates a new GetPayments use case
func NewGetPayments(paymentRepository domain.PaymentRepository) *GetPayments {
	return &GetPayments{paymentRepository: paymentRepository}
}

// Execute returns the user's ledger entries, newest first
func (uc *GetPayments) Execute(ctx context.Context, query *GetPaymentsQuery) ([]PaymentView, error) {
	if query.UserID == "" {
		return nil, errors.Wrap(domain.ErrValidation, "user ID is required")
	}

	userID, err := models.NewID(query.UserID)
	if err != nil {
		return nil, errors.Wrap(domain.ErrValidation, "invalid user ID")
	}

	payments, err := uc.paymentRepository.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find payments")
	}

	views := make([]PaymentView, len(payments))
	for i, payment := range payments {
		view := PaymentView{
			PaymentID: payment.ID.String(),
			UserID:    payment.UserID.String(),
			Amount:    payment.Amount,
			Kind:      string(payment.Kind),
			Status:    string(payment.Status),
			CreatedAt: payment.Timestamps.CreatedAt,
		}
		if payment.BookingID != nil {
			view.BookingID = payment.BookingID.String()
		}
		views[i] = view
	}

	return views, nil
}
