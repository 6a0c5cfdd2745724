package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/eventbooking/booking-system/payment-service/application"
	"github.com/eventbooking/booking-system/payment-service/domain"
	"github.com/go-chi/chi/v5"
)

// PaymentHandlers contains payment HTTP handlers
type PaymentHandlers struct {
	topUp       *application.TopUp
	getBalance  *application.GetBalance
	getPayments *application.GetPayments
}

// NewPaymentHandlers creates new payment handlers
func NewPaymentHandlers(
	topUp *application.TopUp,
	getBalance *application.GetBalance,
	getPayments *application.GetPayments,
) *PaymentHandlers {
	return &PaymentHandlers{
		topUp:       topUp,
		getBalance:  getBalance,
		getPayments: getPayments,
	}
}

// TopUp handles deposit requests
func (h *PaymentHandlers) TopUp(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		http.Error(w, "User ID is required", http.StatusBadRequest)
		return
	}

	var body struct {
		Amount   int64  `json:"amount"`
		Currency string `json:"currency"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	cmd := &application.TopUpCommand{
		UserID:   userID,
		Amount:   body.Amount,
		Currency: body.Currency,
	}

	response, err := h.topUp.Execute(r.Context(), cmd)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(response)
}

// GetBalance handles balance requests
func (h *PaymentHandlers) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		http.Error(w, "User ID is required", http.StatusBadRequest)
		return
	}

	query := &application.GetBalanceQuery{UserID: userID}

	response, err := h.getBalance.Execute(r.Context(), query)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// GetPayments handles ledger listing requests
func (h *PaymentHandlers) GetPayments(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		http.Error(w, "User ID is required", http.StatusBadRequest)
		return
	}

	query := &application.GetPaymentsQuery{UserID: userID}

	response, err := h.getPayments.Execute(r.Context(), query)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// RegisterRoutes registers payment routes
func (h *PaymentHandlers) RegisterRoutes(r chi.Router) {
	r.Route("/users/{userID}", func(r chi.Router) {
		r.Post("/topup", h.TopUp)
		r.Get("/balance", h.GetBalance)
		r.Get("/payments", h.GetPayments)
	})
}

// writeError maps domain errors to HTTP status codes
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrPaymentNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
