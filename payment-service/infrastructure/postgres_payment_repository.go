package infrastructure

import (
	"context"
	"database/sql"
	"time"

	"github.com/eventbooking/booking-system/payment-service/domain"
	"github.com/eventbooking/booking-system/shared/models"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"
)

// uniqueViolation is the Postgres error code for unique constraint violations
const uniqueViolation = "23505"

// PostgresPaymentRepository implements PaymentRepository using PostgreSQL.
// The payments table carries a unique index on booking_id for DEBIT entries;
// it backs the one-debit-per-booking idempotency guarantee.
type PostgresPaymentRepository struct {
	db *sqlx.DB
}

// NewPostgresPaymentRepository creates a new PostgresPaymentRepository
func NewPostgresPaymentRepository(db *sqlx.DB) *PostgresPaymentRepository {
	return &PostgresPaymentRepository{db: db}
}

// postgresPayment represents a ledger entry in the database
type postgresPayment struct {
	ID        string     `db:"id"`
	UserID    string     `db:"user_id"`
	BookingID *string    `db:"booking_id"`
	Amount    int64      `db:"amount"`
	Currency  string     `db:"currency"`
	Kind      string     `db:"kind"`
	Status    string     `db:"status"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
	Version   int        `db:"version"`
}

const paymentColumns = `id, user_id, booking_id, amount, currency, kind,
	   status, created_at, updated_at, deleted_at, version`

// Save inserts a new ledger entry or updates the status of an existing one
func (r *PostgresPaymentRepository) Save(ctx context.Context, payment *domain.Payment) error {
	if payment.Version.Value == 1 {
		return r.insertPayment(ctx, payment)
	}
	return r.updatePayment(ctx, payment)
}

func (r *PostgresPaymentRepository) insertPayment(ctx context.Context, payment *domain.Payment) error {
	query := `
		INSERT INTO payments (
			id, user_id, booking_id, amount, currency, kind,
			status, created_at, updated_at, version
		) VALUES (
			:id, :user_id, :booking_id, :amount, :currency, :kind,
			:status, :created_at, :updated_at, :version
		)`

	_, err := r.db.NamedExecContext(ctx, query, r.toPostgres(payment))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.ErrDuplicateEntry
		}
		return errors.Wrap(err, "failed to insert payment")
	}

	return nil
}

func (r *PostgresPaymentRepository) updatePayment(ctx context.Context, payment *domain.Payment) error {
	query := `
		UPDATE payments
		SET status = :status, updated_at = :updated_at, version = :version
		WHERE id = :id AND version = :old_version`

	_, err := r.db.NamedExecContext(ctx, query, map[string]interface{}{
		"id":          payment.ID.String(),
		"status":      string(payment.Status),
		"updated_at":  payment.Timestamps.UpdatedAt,
		"version":     payment.Version.Value,
		"old_version": payment.Version.Value - 1, // Optimistic locking
	})

	if err != nil {
		return errors.Wrap(err, "failed to update payment")
	}

	return nil
}

// FindByID finds a ledger entry by ID
func (r *PostgresPaymentRepository) FindByID(ctx context.Context, id models.ID) (*domain.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE id = $1 AND deleted_at IS NULL`

	var pgPayment postgresPayment
	err := r.db.GetContext(ctx, &pgPayment, query, id.String())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Payment not found
		}
		return nil, errors.Wrap(err, "failed to find payment")
	}

	return r.toDomain(&pgPayment)
}

// FindByUserID finds ledger entries by user ID
func (r *PostgresPaymentRepository) FindByUserID(ctx context.Context, userID models.ID) ([]*domain.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC`

	var pgPayments []postgresPayment
	err := r.db.SelectContext(ctx, &pgPayments, query, userID.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to find payments by user ID")
	}

	payments := make([]*domain.Payment, len(pgPayments))
	for i := range pgPayments {
		payment, err := r.toDomain(&pgPayments[i])
		if err != nil {
			return nil, err
		}
		payments[i] = payment
	}

	return payments, nil
}

// FindDebitByBookingID finds the debit entry for a booking
func (r *PostgresPaymentRepository) FindDebitByBookingID(ctx context.Context, bookingID models.ID) (*domain.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE booking_id = $1 AND kind = $2 AND deleted_at IS NULL`

	var pgPayment postgresPayment
	err := r.db.GetContext(ctx, &pgPayment, query, bookingID.String(), string(domain.PaymentKindDebit))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // No debit for this booking
		}
		return nil, errors.Wrap(err, "failed to find debit")
	}

	return r.toDomain(&pgPayment)
}

// SumApprovedByUserID computes the balance over APPROVED entries in cents
func (r *PostgresPaymentRepository) SumApprovedByUserID(ctx context.Context, userID models.ID) (int64, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM payments
		WHERE user_id = $1 AND status = $2 AND deleted_at IS NULL`

	var sum int64
	err := r.db.GetContext(ctx, &sum, query, userID.String(), string(domain.PaymentStatusApproved))
	if err != nil {
		return 0, errors.Wrap(err, "failed to sum approved payments")
	}

	return sum, nil
}

// toPostgres converts a domain payment to the postgres model
func (r *PostgresPaymentRepository) toPostgres(payment *domain.Payment) *postgresPayment {
	var bookingID *string
	if payment.BookingID != nil {
		id := payment.BookingID.String()
		bookingID = &id
	}

	return &postgresPayment{
		ID:        payment.ID.String(),
		UserID:    payment.UserID.String(),
		BookingID: bookingID,
		Amount:    payment.Amount.Amount,
		Currency:  payment.Amount.Currency,
		Kind:      string(payment.Kind),
		Status:    string(payment.Status),
		CreatedAt: payment.Timestamps.CreatedAt,
		UpdatedAt: payment.Timestamps.UpdatedAt,
		DeletedAt: payment.Timestamps.DeletedAt,
		Version:   payment.Version.Value,
	}
}

// toDomain converts a postgres model to a domain payment
func (r *PostgresPaymentRepository) toDomain(pgPayment *postgresPayment) (*domain.Payment, error) {
	id, err := models.NewID(pgPayment.ID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid payment ID")
	}

	userID, err := models.NewID(pgPayment.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid user ID")
	}

	var bookingID *models.ID
	if pgPayment.BookingID != nil {
		bid, err := models.NewID(*pgPayment.BookingID)
		if err != nil {
			return nil, errors.Wrap(err, "invalid booking ID")
		}
		bookingID = &bid
	}

	return &domain.Payment{
		ID:        id,
		UserID:    userID,
		BookingID: bookingID,
		Amount:    models.NewMoney(pgPayment.Amount, pgPayment.Currency),
		Kind:      domain.PaymentKind(pgPayment.Kind),
		Status:    domain.PaymentStatus(pgPayment.Status),
		Timestamps: models.Timestamps{
			CreatedAt: pgPayment.CreatedAt,
			UpdatedAt: pgPayment.UpdatedAt,
			DeletedAt: pgPayment.DeletedAt,
		},
		Version: models.Version{Value: pgPayment.Version},
	}, nil
}
