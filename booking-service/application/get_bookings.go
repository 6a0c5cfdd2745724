package application

import (
	"context"
	"time"

	"github.com/eventbooking/booking-system/booking-service/domain"
	"github.com/eventbooking/booking-system/shared/models"
	"github.com/pkg/errors"
)

// GetBookingQuery represents the query to get a single booking
type GetBookingQuery struct {
	BookingID string `json:"booking_id"`
}

// GetUserBookingsQuery represents the query to list a user's bookings
type GetUserBookingsQuery struct {
	UserID string `json:"user_id"`
}

// BookingView is the read model returned by booking queries
type BookingView struct {
	BookingID string       `json:"booking_id"`
	FullName  string       `json:"full_name"`
	Email     string       `json:"email"`
	UserID    string       `json:"user_id"`
	EventID   string       `json:"event_id"`
	Price     models.Money `json:"price"`
	Status    string       `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
}

// GetBookings use case serves the synchronous booking read paths
type GetBookings struct {
	bookingRepository domain.BookingRepository
}

// NewGetBookings creates a new GetBookings use case
func NewGetBookings(bookingRepository domain.BookingRepository) *GetBookings {
	return &GetBookings{bookingRepository: bookingRepository}
}

// GetByID returns a single booking
func (uc *GetBookings) GetByID(ctx context.Context, query *GetBookingQuery) (*BookingView, error) {
	if query.BookingID == "" {
		return nil, errors.Wrap(domain.ErrValidation, "booking ID is required")
	}

	bookingID, err := models.NewID(query.BookingID)
	if err != nil {
		return nil, errors.Wrap(domain.ErrValidation, "invalid booking ID")
	}

	booking, err := uc.bookingRepository.FindByID(ctx, bookingID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find booking")
	}

	if booking == nil {
		return nil, domain.ErrBookingNotFound
	}

	view := toBookingView(booking)
	return &view, nil
}

// ListByUser returns all bookings belonging to a user, newest first
func (uc *GetBookings) ListByUser(ctx context.Context, query *GetUserBookingsQuery) ([]BookingView, error) {
	if query.UserID == "" {
		return nil, errors.Wrap(domain.ErrValidation, "user ID is required")
	}

	userID, err := models.NewID(query.UserID)
	if err != nil {
		return nil, errors.Wrap(domain.ErrValidation, "invalid user ID")
	}

	bookings, err := uc.bookingRepository.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find bookings")
	}

	views := make([]BookingView, len(bookings))
	for i, booking := range bookings {
		views[i] = toBookingView(booking)
	}

	return views, nil
}

func toBookingView(booking *domain.Booking) BookingView {
	return BookingView{
		BookingID: booking.ID.String(),
		FullName:  booking.FullName,
		Email:     booking.Email,
		UserID:    booking.UserID.String(),
		EventID:   booking.EventID.String(),
		Price:     booking.Price,
		Status:    string(booking.Status),
		CreatedAt: booking.Timestamps.CreatedAt,
	}
}
