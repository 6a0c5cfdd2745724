package domain

import (
	"context"
	"time"

	"github.com/eventbooking/booking-system/shared/events"
	"github.com/eventbooking/booking-system/shared/models"
)

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusRejected  BookingStatus = "REJECTED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// IsTerminal reports whether no further transitions are allowed from the status.
// CONFIRMED is not terminal: a confirmed booking can still be cancelled.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusRejected || s == BookingStatusCancelled
}

// Booking aggregate root
type Booking struct {
	ID         models.ID     `json:"id"`
	FullName   string        `json:"full_name"`
	Email      string        `json:"email"`
	UserID     models.ID     `json:"user_id"`
	EventID    models.ID     `json:"event_id"`
	Price      models.Money  `json:"price"`
	Status     BookingStatus `json:"status"`
	Timestamps models.Timestamps
	Version    models.Version

	events []*events.Event
}

// CreateBooking factory method. The booking starts PENDING and records a
// booking.created event carrying the full snapshot the payment decision needs.
func CreateBooking(fullName, email string, userID, eventID models.ID, price models.Money) (*Booking, error) {
	booking := &Booking{
		ID:         models.GenerateUUID(),
		FullName:   fullName,
		Email:      email,
		UserID:     userID,
		EventID:    eventID,
		Price:      price,
		Status:     BookingStatusPending,
		Timestamps: models.NewTimestamps(),
		Version:    models.NewVersion(),
	}

	event := events.NewEvent(booking.ID, events.BookingCreatedEvent, booking.Snapshot())
	booking.recordEvent(event)
	return booking, nil
}

// Confirm transitions the booking from PENDING to CONFIRMED
func (b *Booking) Confirm() error {
	if b.Status != BookingStatusPending {
		return ErrBookingFinalized
	}

	b.Status = BookingStatusConfirmed
	b.Timestamps = b.Timestamps.Update()
	b.Version = b.Version.Update()
	return nil
}

// Reject transitions the booking from PENDING to REJECTED
func (b *Booking) Reject() error {
	if b.Status != BookingStatusPending {
		return ErrBookingFinalized
	}

	b.Status = BookingStatusRejected
	b.Timestamps = b.Timestamps.Update()
	b.Version = b.Version.Update()
	return nil
}

// Cancel transitions the booking to CANCELLED and records a booking.cancelled
// event. Allowed from PENDING and CONFIRMED; already-terminal bookings return
// ErrBookingFinalized so consumers can treat replays as no-ops.
func (b *Booking) Cancel() error {
	if b.Status.IsTerminal() {
		return ErrBookingFinalized
	}

	b.Status = BookingStatusCancelled
	b.Timestamps = b.Timestamps.Update()
	b.Version = b.Version.Update()

	event := events.NewEvent(b.ID, events.BookingCancelledEvent, b.Snapshot())
	b.recordEvent(event)
	return nil
}

// IsActive reports whether the booking still holds (or may hold) a seat
func (b *Booking) IsActive() bool {
	return b.Status == BookingStatusPending || b.Status == BookingStatusConfirmed
}

// Snapshot returns the wire representation of the booking
func (b *Booking) Snapshot() events.BookingSnapshot {
	return events.BookingSnapshot{
		ID:        b.ID,
		FullName:  b.FullName,
		Email:     b.Email,
		UserID:    b.UserID,
		EventID:   b.EventID,
		Price:     b.Price,
		Status:    string(b.Status),
		CreatedAt: b.Timestamps.CreatedAt,
	}
}

// Events returns domain events
func (b *Booking) Events() []*events.Event {
	return b.events
}

// ClearEvents clears domain events
func (b *Booking) ClearEvents() {
	b.events = make([]*events.Event, 0)
}

// recordEvent records a domain event
func (b *Booking) recordEvent(event *events.Event) {
	b.events = append(b.events, event)
}

// BookingRepository persists bookings
type BookingRepository interface {
	Save(ctx context.Context, booking *Booking) error
	FindByID(ctx context.Context, id models.ID) (*Booking, error)
	FindByUserID(ctx context.Context, userID models.ID) ([]*Booking, error)
	FindByEventID(ctx context.Context, eventID models.ID) ([]*Booking, error)
	FindActiveByEventID(ctx context.Context, eventID models.ID) ([]*Booking, error)
	CountActiveByEventID(ctx context.Context, eventID models.ID) (int, error)
}

// EventGateway fetches event snapshots from the event catalog service
type EventGateway interface {
	FetchEvent(ctx context.Context, eventID models.ID) (*events.EventSnapshot, error)
}

// PaymentGateway fetches the requester's current balance from the payment
// service. The check is optimistic; the payment decision stays authoritative.
type PaymentGateway interface {
	FetchBalance(ctx context.Context, userID models.ID) (models.Money, error)
}

// MinStartLead is the minimum time between booking creation and event start
const MinStartLead = time.Hour
