package domain

import "github.com/pkg/errors"

var (
	// ErrValidation is returned when input validation fails
	ErrValidation = errors.New("validation error")

	// ErrEventNotFound is returned when the catalog has no such event
	ErrEventNotFound = errors.New("event not found")

	// ErrGatewayUnavailable is returned when the event catalog cannot be reached
	ErrGatewayUnavailable = errors.New("gateway unavailable")
)
