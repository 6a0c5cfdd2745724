package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/eventbooking/booking-system/notification-service/application"
	"github.com/eventbooking/booking-system/notification-service/domain"
	"github.com/go-chi/chi/v5"
)

// NotificationHandlers contains notification HTTP handlers
type NotificationHandlers struct {
	getNotifications *application.GetNotifications
}

// NewNotificationHandlers creates new notification handlers
func NewNotificationHandlers(getNotifications *application.GetNotifications) *NotificationHandlers {
	return &NotificationHandlers{
		getNotifications: getNotifications,
	}
}

// GetUserNotifications handles notification feed requests
func (h *NotificationHandlers) GetUserNotifications(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		http.Error(w, "User ID is required", http.StatusBadRequest)
		return
	}

	query := &application.GetUserNotificationsQuery{UserID: userID}

	response, err := h.getNotifications.ListByUser(r.Context(), query)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// RegisterRoutes registers notification routes
func (h *NotificationHandlers) RegisterRoutes(r chi.Router) {
	r.Get("/users/{userID}/notifications", h.GetUserNotifications)
}

// writeError maps domain errors to HTTP status codes
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrEventNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrGatewayUnavailable):
		http.Error(w, err.Error(), http.StatusBadGateway)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
