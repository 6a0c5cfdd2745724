package domain

import "github.com/pkg/errors"

// Sentinel errors. Handlers map these to HTTP status codes with errors.Is,
// event consumers use them to distinguish drops from retryable failures.
var (
	// ErrValidation marks a create/cancel command that fails a business precondition
	ErrValidation = errors.New("validation failed")

	// ErrBookingNotFound is returned when no booking matches the given ID
	ErrBookingNotFound = errors.New("booking not found")

	// ErrEventNotFound is returned when the event catalog has no such event
	ErrEventNotFound = errors.New("event not found")

	// ErrBookingFinalized is returned on transitions out of a terminal status
	ErrBookingFinalized = errors.New("booking already finalized")

	// ErrNotOwner is returned when a user tries to cancel someone else's booking
	ErrNotOwner = errors.New("booking belongs to another user")

	// ErrGatewayUnavailable is returned when a downstream HTTP gateway cannot be reached
	ErrGatewayUnavailable = errors.New("gateway unavailable")
)
