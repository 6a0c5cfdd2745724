package events

import (
	"time"

	"github.com/eventbooking/booking-system/shared/models"
)

// BookingSnapshot is the full booking copy carried on lifecycle events.
// Consumers treat it as read-only; the booking service owns the record.
type BookingSnapshot struct {
	ID        models.ID    `json:"id"`
	FullName  string       `json:"full_name"`
	Email     string       `json:"email"`
	UserID    models.ID    `json:"user_id"`
	EventID   models.ID    `json:"event_id"`
	Price     models.Money `json:"price"`
	Status    string       `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
}

// BookingBatch carries the bookings affected by one cascade. Downstream
// consumers receive the whole cohort in a single event.
type BookingBatch struct {
	EventID  models.ID         `json:"event_id"`
	Bookings []BookingSnapshot `json:"bookings"`
}

// EventSnapshot is the catalog event copy carried on event.cancelled and
// event.updated, and returned by the synchronous event lookup.
type EventSnapshot struct {
	ID          models.ID    `json:"id"`
	Title       string       `json:"title"`
	Price       models.Money `json:"price"`
	Capacity    int          `json:"capacity"`
	Status      string       `json:"status"`
	StartTime   time.Time    `json:"start_time"`
	OrganizerID models.ID    `json:"organizer_id"`
}

// Catalog event statuses observed by the saga.
const (
	EventStatusActive    = "ACTIVE"
	EventStatusCancelled = "CANCELLED"
)

// Payment decision statuses carried on payment.created.
const (
	PaymentStatusApproved = "APPROVED"
	PaymentStatusRejected = "REJECTED"
)

// PaymentOutcome is the decision result keyed by booking ID. The booking
// service finalizes the booking status from it.
type PaymentOutcome struct {
	PaymentID models.ID    `json:"payment_id"`
	BookingID models.ID    `json:"booking_id"`
	UserID    models.ID    `json:"user_id"`
	Amount    models.Money `json:"amount"`
	Status    string       `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
}

// ReviewSnapshot is the review copy consumed by the notification fan-out.
type ReviewSnapshot struct {
	ID      models.ID `json:"id"`
	EventID models.ID `json:"event_id"`
	UserID  models.ID `json:"user_id"`
	Rating  int       `json:"rating"`
	Comment string    `json:"comment"`
}
