package infrastructure

import (
	"context"
	"time"

	"github.com/eventbooking/booking-system/notification-service/domain"
	"github.com/eventbooking/booking-system/shared/models"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// PostgresNotificationRepository implements NotificationRepository using PostgreSQL
type PostgresNotificationRepository struct {
	db *sqlx.DB
}

// NewPostgresNotificationRepository creates a new PostgresNotificationRepository
func NewPostgresNotificationRepository(db *sqlx.DB) *PostgresNotificationRepository {
	return &PostgresNotificationRepository{db: db}
}

// postgresNotification represents a notification in the database
type postgresNotification struct {
	ID        string     `db:"id"`
	UserID    string     `db:"user_id"`
	Title     string     `db:"title"`
	Message   string     `db:"message"`
	BookingID *string    `db:"booking_id"`
	EventID   *string    `db:"event_id"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

// Save inserts a notification. Notifications are append-only; there is no
// update path.
func (r *PostgresNotificationRepository) Save(ctx context.Context, notification *domain.Notification) error {
	query := `
		INSERT INTO notifications (
			id, user_id, title, message, booking_id, event_id,
			created_at, updated_at
		) VALUES (
			:id, :user_id, :title, :message, :booking_id, :event_id,
			:created_at, :updated_at
		)`

	_, err := r.db.NamedExecContext(ctx, query, r.toPostgres(notification))
	if err != nil {
		return errors.Wrap(err, "failed to insert notification")
	}

	return nil
}

// FindByUserID finds notifications by user ID, newest first
func (r *PostgresNotificationRepository) FindByUserID(ctx context.Context, userID models.ID) ([]*domain.Notification, error) {
	query := `
		SELECT id, user_id, title, message, booking_id, event_id,
			   created_at, updated_at, deleted_at
		FROM notifications
		WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC`

	var pgNotifications []postgresNotification
	err := r.db.SelectContext(ctx, &pgNotifications, query, userID.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to find notifications by user ID")
	}

	notifications := make([]*domain.Notification, len(pgNotifications))
	for i := range pgNotifications {
		notification, err := r.toDomain(&pgNotifications[i])
		if err != nil {
			return nil, err
		}
		notifications[i] = notification
	}

	return notifications, nil
}

// toPostgres converts a domain notification to the postgres model
func (r *PostgresNotificationRepository) toPostgres(notification *domain.Notification) *postgresNotification {
	var bookingID, eventID *string
	if notification.BookingID != nil {
		id := notification.BookingID.String()
		bookingID = &id
	}
	if notification.EventID != nil {
		id := notification.EventID.String()
		eventID = &id
	}

	return &postgresNotification{
		ID:        notification.ID.String(),
		UserID:    notification.UserID.String(),
		Title:     notification.Title,
		Message:   notification.Message,
		BookingID: bookingID,
		EventID:   eventID,
		CreatedAt: notification.Timestamps.CreatedAt,
		UpdatedAt: notification.Timestamps.UpdatedAt,
	}
}

// toDomain converts a postgres model to a domain notification
func (r *PostgresNotificationRepository) toDomain(pgNotification *postgresNotification) (*domain.Notification, error) {
	id, err := models.NewID(pgNotification.ID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid notification ID")
	}

	userID, err := models.NewID(pgNotification.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid user ID")
	}

	var bookingID, eventID *models.ID
	if pgNotification.BookingID != nil {
		bid, err := models.NewID(*pgNotification.BookingID)
		if err != nil {
			return nil, errors.Wrap(err, "invalid booking ID")
		}
		bookingID = &bid
	}
	if pgNotification.EventID != nil {
		eid, err := models.NewID(*pgNotification.EventID)
		if err != nil {
			return nil, errors.Wrap(err, "invalid event ID")
		}
		eventID = &eid
	}

	return &domain.Notification{
		ID:        id,
		UserID:    userID,
		Title:     pgNotification.Title,
		Message:   pgNotification.Message,
		BookingID: bookingID,
		EventID:   eventID,
		Timestamps: models.Timestamps{
			CreatedAt: pgNotification.CreatedAt,
			UpdatedAt: pgNotification.UpdatedAt,
			DeletedAt: pgNotification.DeletedAt,
		},
	}, nil
}
