package application

import (
	"context"
	"sync"
	"testing"

	"github.com/eventbooking/booking-system/payment-service/domain"
	"github.com/eventbooking/booking-system/payment-service/mocks"
	"github.com/eventbooking/booking-system/shared/events"
	"github.com/eventbooking/booking-system/shared/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestProcessBookingCreated_Execute(t *testing.T) {
	bookingID := models.GenerateUUID()
	userID := models.GenerateUUID()
	price := models.NewMoney(5000, "USD")

	outcomeWithStatus := func(status string) interface{} {
		return mock.MatchedBy(func(evt *events.Event) bool {
			outcome, ok := evt.Data.(events.PaymentOutcome)
			return ok &&
				evt.EventType == events.PaymentCreatedEvent &&
				outcome.BookingID == bookingID &&
				outcome.Status == status
		})
	}

	tests := []struct {
		name          string
		command       *ProcessBookingCreatedCommand
		setupMocks    func(*mocks.MockPaymentRepository, *mocks.MockPublisher)
		expectedError string
	}{
		{
			name: "sufficient balance approves the debit",
			command: &ProcessBookingCreatedCommand{
				BookingID: bookingID,
				UserID:    userID,
				Price:     price,
			},
			setupMocks: func(repo *mocks.MockPaymentRepository, publisher *mocks.MockPublisher) {
				repo.EXPECT().FindDebitByBookingID(mock.Anything, bookingID).Return(nil, nil).Once()
				repo.EXPECT().SumApprovedByUserID(mock.Anything, userID).Return(10000, nil).Once()
				repo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(p *domain.Payment) bool {
					return p.Status == domain.PaymentStatusApproved && p.Amount.Amount == -5000
				})).Return(nil).Once()
				publisher.EXPECT().Publish(mock.Anything, outcomeWithStatus(events.PaymentStatusApproved)).Return(nil).Once()
			},
		},
		{
			name: "exact balance approves the debit",
			command: &ProcessBookingCreatedCommand{
				BookingID: bookingID,
				UserID:    userID,
				Price:     price,
			},
			setupMocks: func(repo *mocks.MockPaymentRepository, publisher *mocks.MockPublisher) {
				repo.EXPECT().FindDebitByBookingID(mock.Anything, bookingID).Return(nil, nil).Once()
				repo.EXPECT().SumApprovedByUserID(mock.Anything, userID).Return(5000, nil).Once()
				repo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(p *domain.Payment) bool {
					return p.Status == domain.PaymentStatusApproved
				})).Return(nil).Once()
				publisher.EXPECT().Publish(mock.Anything, outcomeWithStatus(events.PaymentStatusApproved)).Return(nil).Once()
			},
		},
		{
			name: "insufficient balance rejects the debit",
			command: &ProcessBookingCreatedCommand{
				BookingID: bookingID,
				UserID:    userID,
				Price:     price,
			},
			setupMocks: func(repo *mocks.MockPaymentRepository, publisher *mocks.MockPublisher) {
				repo.EXPECT().FindDebitByBookingID(mock.Anything, bookingID).Return(nil, nil).Once()
				repo.EXPECT().SumApprovedByUserID(mock.Anything, userID).Return(4999, nil).Once()
				repo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(p *domain.Payment) bool {
					return p.Status == domain.PaymentStatusRejected
				})).Return(nil).Once()
				publisher.EXPECT().Publish(mock.Anything, outcomeWithStatus(events.PaymentStatusRejected)).Return(nil).Once()
			},
		},
		{
			name: "duplicate delivery is dropped before deciding",
			command: &ProcessBookingCreatedCommand{
				BookingID: bookingID,
				UserID:    userID,
				Price:     price,
			},
			setupMocks: func(repo *mocks.MockPaymentRepository, publisher *mocks.MockPublisher) {
				existing := domain.NewDebit(userID, bookingID, price, true)
				repo.EXPECT().FindDebitByBookingID(mock.Anything, bookingID).Return(existing, nil).Once()
			},
		},
		{
			name: "concurrent duplicate insert is dropped",
			command: &ProcessBookingCreatedCommand{
				BookingID: bookingID,
				UserID:    userID,
				Price:     price,
			},
			setupMocks: func(repo *mocks.MockPaymentRepository, publisher *mocks.MockPublisher) {
				repo.EXPECT().FindDebitByBookingID(mock.Anything, bookingID).Return(nil, nil).Once()
				repo.EXPECT().SumApprovedByUserID(mock.Anything, userID).Return(10000, nil).Once()
				repo.EXPECT().Save(mock.Anything, mock.Anything).Return(domain.ErrDuplicateEntry).Once()
			},
		},
		{
			name: "missing booking ID",
			command: &ProcessBookingCreatedCommand{
				UserID: userID,
				Price:  price,
			},
			setupMocks:    func(repo *mocks.MockPaymentRepository, publisher *mocks.MockPublisher) {},
			expectedError: "booking ID is required",
		},
		{
			name: "missing user ID",
			command: &ProcessBookingCreatedCommand{
				BookingID: bookingID,
				Price:     price,
			},
			setupMocks:    func(repo *mocks.MockPaymentRepository, publisher *mocks.MockPublisher) {},
			expectedError: "user ID is required",
		},
		{
			name: "non-positive price",
			command: &ProcessBookingCreatedCommand{
				BookingID: bookingID,
				UserID:    userID,
				Price:     models.NewMoney(0, "USD"),
			},
			setupMocks:    func(repo *mocks.MockPaymentRepository, publisher *mocks.MockPublisher) {},
			expectedError: "price must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := mocks.NewMockPaymentRepository(t)
			mockPublisher := mocks.NewMockPublisher(t)
			tt.setupMocks(mockRepo, mockPublisher)

			useCase := NewProcessBookingCreated(mockRepo, mockPublisher)

			err := useCase.Execute(context.Background(), tt.command)

			if tt.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProcessBookingCreated_Execute_BalanceIgnoresRefundedAndRejected(t *testing.T) {
	// The balance query itself filters on APPROVED; here we only pin down that
	// the decision follows whatever sum the repository reports.
	bookingID := models.GenerateUUID()
	userID := models.GenerateUUID()

	mockRepo := mocks.NewMockPaymentRepository(t)
	mockPublisher := mocks.NewMockPublisher(t)

	mockRepo.EXPECT().FindDebitByBookingID(mock.Anything, bookingID).Return(nil, nil).Once()
	mockRepo.EXPECT().SumApprovedByUserID(mock.Anything, userID).Return(0, nil).Once()
	mockRepo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(p *domain.Payment) bool {
		return p.Status == domain.PaymentStatusRejected
	})).Return(nil).Once()
	mockPublisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()

	useCase := NewProcessBookingCreated(mockRepo, mockPublisher)

	err := useCase.Execute(context.Background(), &ProcessBookingCreatedCommand{
		BookingID: bookingID,
		UserID:    userID,
		Price:     models.NewMoney(100, "USD"),
	})

	assert.NoError(t, err)
}

func TestProcessBookingCreated_Execute_SerializesPerUser(t *testing.T) {
	// Two bookings from one user race for a balance that covers only one of
	// them. The per-user lock serializes the read-sum-then-insert sequence,
	// so exactly one debit is approved and the other sees the drained balance.
	userID := models.GenerateUUID()
	price := models.NewMoney(5000, "USD")

	mockRepo := mocks.NewMockPaymentRepository(t)
	mockPublisher := mocks.NewMockPublisher(t)

	var ledgerMu sync.Mutex
	balance := int64(5000)
	var approved, rejected int

	mockRepo.EXPECT().FindDebitByBookingID(mock.Anything, mock.Anything).Return(nil, nil).Times(2)
	mockRepo.EXPECT().SumApprovedByUserID(mock.Anything, userID).RunAndReturn(
		func(ctx context.Context, _ models.ID) (int64, error) {
			ledgerMu.Lock()
			defer ledgerMu.Unlock()
			return balance, nil
		}).Times(2)
	mockRepo.EXPECT().Save(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, payment *domain.Payment) error {
			ledgerMu.Lock()
			defer ledgerMu.Unlock()
			if payment.Status == domain.PaymentStatusApproved {
				balance += payment.Amount.Amount
				approved++
			} else {
				rejected++
			}
			return nil
		}).Times(2)
	mockPublisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Times(2)

	useCase := NewProcessBookingCreated(mockRepo, mockPublisher)

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = useCase.Execute(context.Background(), &ProcessBookingCreatedCommand{
				BookingID: models.GenerateUUID(),
				UserID:    userID,
				Price:     price,
			})
		}(i)
	}
	wg.Wait()

	assert.NoError(t, results[0])
	assert.NoError(t, results[1])
	assert.Equal(t, 1, approved)
	assert.Equal(t, 1, rejected)
	assert.Equal(t, int64(0), balance)
}
