package infrastructure

import (
	"context"
	"database/sql"
	"time"

	"github.com/eventbooking/booking-system/booking-service/domain"
	"github.com/eventbooking/booking-system/shared/models"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// PostgresBookingRepository implements BookingRepository using PostgreSQL
type PostgresBookingRepository struct {
	db *sqlx.DB
}

// NewPostgresBookingRepository creates a new PostgresBookingRepository
func NewPostgresBookingRepository(db *sqlx.DB) *PostgresBookingRepository {
	return &PostgresBookingRepository{db: db}
}

// postgresBooking represents a booking in the database
type postgresBooking struct {
	ID        string     `db:"id"`
	FullName  string     `db:"full_name"`
	Email     string     `db:"email"`
	UserID    string     `db:"user_id"`
	EventID   string     `db:"event_id"`
	Amount    int64      `db:"amount"`
	Currency  string     `db:"currency"`
	Status    string     `db:"status"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
	Version   int        `db:"version"`
}

const bookingColumns = `id, full_name, email, user_id, event_id, amount, currency,
	   status, created_at, updated_at, deleted_at, version`

// Save inserts a new booking or updates an existing one
func (r *PostgresBookingRepository) Save(ctx context.Context, booking *domain.Booking) error {
	if booking.Version.Value == 1 {
		return r.insertBooking(ctx, booking)
	}
	return r.updateBooking(ctx, booking)
}

func (r *PostgresBookingRepository) insertBooking(ctx context.Context, booking *domain.Booking) error {
	query := `
		INSERT INTO bookings (
			id, full_name, email, user_id, event_id, amount, currency,
			status, created_at, updated_at, version
		) VALUES (
			:id, :full_name, :email, :user_id, :event_id, :amount, :currency,
			:status, :created_at, :updated_at, :version
		)`

	_, err := r.db.NamedExecContext(ctx, query, r.toPostgres(booking))
	if err != nil {
		return errors.Wrap(err, "failed to insert booking")
	}

	return nil
}

func (r *PostgresBookingRepository) updateBooking(ctx context.Context, booking *domain.Booking) error {
	query := `
		UPDATE bookings
		SET status = :status, updated_at = :updated_at, version = :version
		WHERE id = :id AND version = :old_version`

	_, err := r.db.NamedExecContext(ctx, query, map[string]interface{}{
		"id":          booking.ID.String(),
		"status":      string(booking.Status),
		"updated_at":  booking.Timestamps.UpdatedAt,
		"version":     booking.Version.Value,
		"old_version": booking.Version.Value - 1, // Optimistic locking
	})

	if err != nil {
		return errors.Wrap(err, "failed to update booking")
	}

	return nil
}

// FindByID finds a booking by ID
func (r *PostgresBookingRepository) FindByID(ctx context.Context, id models.ID) (*domain.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE id = $1 AND deleted_at IS NULL`

	var pgBooking postgresBooking
	err := r.db.GetContext(ctx, &pgBooking, query, id.String())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Booking not found
		}
		return nil, errors.Wrap(err, "failed to find booking")
	}

	return r.toDomain(&pgBooking)
}

// FindByUserID finds bookings by user ID
func (r *PostgresBookingRepository) FindByUserID(ctx context.Context, userID models.ID) ([]*domain.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC`

	return r.selectBookings(ctx, query, userID.String())
}

// FindByEventID finds bookings by event ID
func (r *PostgresBookingRepository) FindByEventID(ctx context.Context, eventID models.ID) ([]*domain.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE event_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC`

	return r.selectBookings(ctx, query, eventID.String())
}

// FindActiveByEventID finds PENDING and CONFIRMED bookings by event ID
func (r *PostgresBookingRepository) FindActiveByEventID(ctx context.Context, eventID models.ID) ([]*domain.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE event_id = $1 AND status IN ($2, $3) AND deleted_at IS NULL
		ORDER BY created_at ASC`

	return r.selectBookings(ctx, query, eventID.String(),
		string(domain.BookingStatusPending), string(domain.BookingStatusConfirmed))
}

// CountActiveByEventID counts PENDING and CONFIRMED bookings by event ID
func (r *PostgresBookingRepository) CountActiveByEventID(ctx context.Context, eventID models.ID) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM bookings
		WHERE event_id = $1 AND status IN ($2, $3) AND deleted_at IS NULL`

	var count int
	err := r.db.GetContext(ctx, &count, query, eventID.String(),
		string(domain.BookingStatusPending), string(domain.BookingStatusConfirmed))
	if err != nil {
		return 0, errors.Wrap(err, "failed to count active bookings")
	}

	return count, nil
}

func (r *PostgresBookingRepository) selectBookings(ctx context.Context, query string, args ...interface{}) ([]*domain.Booking, error) {
	var pgBookings []postgresBooking
	err := r.db.SelectContext(ctx, &pgBookings, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to select bookings")
	}

	bookings := make([]*domain.Booking, len(pgBookings))
	for i := range pgBookings {
		booking, err := r.toDomain(&pgBookings[i])
		if err != nil {
			return nil, err
		}
		bookings[i] = booking
	}

	return bookings, nil
}

// toPostgres converts a domain booking to the postgres model
func (r *PostgresBookingRepository) toPostgres(booking *domain.Booking) *postgresBooking {
	return &postgresBooking{
		ID:        booking.ID.String(),
		FullName:  booking.FullName,
		Email:     booking.Email,
		UserID:    booking.UserID.String(),
		EventID:   booking.EventID.String(),
		Amount:    booking.Price.Amount,
		Currency:  booking.Price.Currency,
		Status:    string(booking.Status),
		CreatedAt: booking.Timestamps.CreatedAt,
		UpdatedAt: booking.Timestamps.UpdatedAt,
		DeletedAt: booking.Timestamps.DeletedAt,
		Version:   booking.Version.Value,
	}
}

// toDomain converts a postgres model to a domain booking
func (r *PostgresBookingRepository) toDomain(pgBooking *postgresBooking) (*domain.Booking, error) {
	id, err := models.NewID(pgBooking.ID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid booking ID")
	}

	userID, err := models.NewID(pgBooking.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid user ID")
	}

	eventID, err := models.NewID(pgBooking.EventID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid event ID")
	}

	return &domain.Booking{
		ID:       id,
		FullName: pgBooking.FullName,
		Email:    pgBooking.Email,
		UserID:   userID,
		EventID:  eventID,
		Price:    models.NewMoney(pgBooking.Amount, pgBooking.Currency),
		Status:   domain.BookingStatus(pgBooking.Status),
		Timestamps: models.Timestamps{
			CreatedAt: pgBooking.CreatedAt,
			UpdatedAt: pgBooking.UpdatedAt,
			DeletedAt: pgBooking.DeletedAt,
		},
		Version: models.Version{Value: pgBooking.Version},
	}, nil
}
