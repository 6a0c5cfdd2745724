package domain

import "github.com/pkg/errors"

// Sentinel errors for the ledger.
var (
	// ErrValidation marks a command that fails a business precondition
	ErrValidation = errors.New("validation failed")

	// ErrPaymentNotFound is returned when no ledger entry matches
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrDuplicateEntry is returned when the debit uniqueness constraint fires
	ErrDuplicateEntry = errors.New("duplicate ledger entry")

	// ErrAlreadyRefunded is returned when refunding a refunded debit
	ErrAlreadyRefunded = errors.New("payment already refunded")

	// ErrNotRefundable is returned when the entry never held funds
	ErrNotRefundable = errors.New("payment is not refundable")
)
