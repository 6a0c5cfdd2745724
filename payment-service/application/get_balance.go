package application

import (
	"context"

	"github.com/eventbooking/booking-system/payment-service/domain"
	"github.com/eventbooking/booking-system/shared/models"
	"github.com/pkg/errors"
)

// GetBalanceQuery represents the query for a user's balance
type GetBalanceQuery struct {
	UserID string `json:"user_id"`
}

// GetBalanceResponse carries the computed balance
type GetBalanceResponse struct {
	UserID  string       `json:"user_id"`
	Balance models.Money `json:"balance"`
}

// GetBalance use case computes the balance as the sum over APPROVED entries
type GetBalance struct {
	paymentRepository domain.PaymentRepository
}

// NewGetBalance creates a new GetBalance use case
func NewGetBalance(paymentRepository domain.PaymentRepository) *GetBalance {
	return &GetBalance{paymentRepository: paymentRepository}
}

// Execute returns the user's current balance
func (uc *GetBalance) Execute(ctx context.Context, query *GetBalanceQuery) (*GetBalanceResponse, error) {
	if query.UserID == "" {
		return nil, errors.Wrap(domain.ErrValidation, "user ID is required")
	}

	userID, err := models.NewID(query.UserID)
	if err != nil {
		return nil, errors.Wrap(domain.ErrValidation, "invalid user ID")
	}

	sum, err := uc.paymentRepository.SumApprovedByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute balance")
	}

	return &GetBalanceResponse{
		UserID:  userID.String(),
		Balance: models.NewMoney(sum, domain.DefaultCurrency),
	}, nil
}
