package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/eventbooking/booking-system/booking-service/application"
	"github.com/eventbooking/booking-system/booking-service/domain"
	"github.com/go-chi/chi/v5"
)

// BookingHandlers contains booking HTTP handlers
type BookingHandlers struct {
	createBooking *application.CreateBooking
	cancelBooking *application.CancelBooking
	getBookings   *application.GetBookings
}

// NewBookingHandlers creates new booking handlers
func NewBookingHandlers(
	createBooking *application.CreateBooking,
	cancelBooking *application.CancelBooking,
	getBookings *application.GetBookings,
) *BookingHandlers {
	return &BookingHandlers{
		createBooking: createBooking,
		cancelBooking: cancelBooking,
		getBookings:   getBookings,
	}
}

// CreateBooking handles booking creation requests
func (h *BookingHandlers) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var cmd application.CreateBookingCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	response, err := h.createBooking.Execute(r.Context(), &cmd)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(response)
}

// CancelBooking handles booking cancellation requests
func (h *BookingHandlers) CancelBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		http.Error(w, "Booking ID is required", http.StatusBadRequest)
		return
	}

	var body struct {
		UserID string `json:"user_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	cmd := &application.CancelBookingCommand{
		BookingID: bookingID,
		UserID:    body.UserID,
	}

	response, err := h.cancelBooking.Execute(r.Context(), cmd)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// GetBooking handles single booking retrieval requests
func (h *BookingHandlers) GetBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		http.Error(w, "Booking ID is required", http.StatusBadRequest)
		return
	}

	query := &application.GetBookingQuery{BookingID: bookingID}

	response, err := h.getBookings.GetByID(r.Context(), query)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// GetUserBookings handles user booking listing requests
func (h *BookingHandlers) GetUserBookings(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		http.Error(w, "User ID is required", http.StatusBadRequest)
		return
	}

	query := &application.GetUserBookingsQuery{UserID: userID}

	response, err := h.getBookings.ListByUser(r.Context(), query)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// RegisterRoutes registers booking routes
func (h *BookingHandlers) RegisterRoutes(r chi.Router) {
	r.Route("/bookings", func(r chi.Router) {
		r.Post("/", h.CreateBooking)
		r.Get("/{id}", h.GetBooking)
		r.Post("/{id}/cancel", h.CancelBooking)
	})
	r.Get("/users/{userID}/bookings", h.GetUserBookings)
}

// writeError maps domain errors to HTTP status codes
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrBookingNotFound), errors.Is(err, domain.ErrEventNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrNotOwner):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, domain.ErrBookingFinalized):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, domain.ErrGatewayUnavailable):
		http.Error(w, err.Error(), http.StatusBadGateway)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
