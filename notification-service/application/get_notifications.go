package application

import (
	"context"
	"time"

	"github.com/eventbooking/booking-system/notification-service/domain"
	"github.com/eventbooking/booking-system/shared/models"
	"github.com/pkg/errors"
)

// GetUserNotificationsQuery represents the query to list a user's notifications
type GetUserNotificationsQuery struct {
	UserID string `json:"user_id"`
}

// NotificationView is the read model returned by notification queries
type NotificationView struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	BookingID *string   `json:"booking_id,omitempty"`
	EventID   *string   `json:"event_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// GetNotifications use case serves the user's notification feed
type GetNotifications struct {
	notificationRepository domain.NotificationRepository
}

// NewGetNotifications creates a new GetNotifications use case
func NewGetNotifications(notificationRepository domain.NotificationRepository) *GetNotifications {
	return &GetNotifications{
		notificationRepository: notificationRepository,
	}
}

// ListByUser returns all notifications for a user, newest first
func (uc *GetNotifications) ListByUser(ctx context.Context, query *GetUserNotificationsQuery) ([]NotificationView, error) {
	if query.UserID == "" {
		return nil, errors.Wrap(domain.ErrValidation, "user ID is required")
	}

	userID, err := models.NewID(query.UserID)
	if err != nil {
		return nil, errors.Wrap(domain.ErrValidation, "invalid user ID")
	}

	notifications, err := uc.notificationRepository.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find notifications")
	}

	views := make([]NotificationView, len(notifications))
	for i, notification := range notifications {
		views[i] = toNotificationView(notification)
	}

	return views, nil
}

func toNotificationView(notification *domain.Notification) NotificationView {
	var bookingID, eventID *string
	if notification.BookingID != nil {
		id := notification.BookingID.String()
		bookingID = &id
	}
	if notification.EventID != nil {
		id := notification.EventID.String()
		eventID = &id
	}

	return NotificationView{
		ID:        notification.ID.String(),
		UserID:    notification.UserID.String(),
		Title:     notification.Title,
		Message:   notification.Message,
		BookingID: bookingID,
		EventID:   eventID,
		CreatedAt: notification.Timestamps.CreatedAt,
	}
}
