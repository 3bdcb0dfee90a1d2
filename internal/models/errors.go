package models

import "errors"

// Error taxonomy surfaced by the ledger core. Each sentinel maps to one
// distinct response category at the HTTP boundary.
var (
	// ErrInvalidTransaction covers malformed input: non-positive amount,
	// missing or self-referencing transfer destination, unknown type.
	ErrInvalidTransaction = errors.New("invalid transaction")

	// ErrAccountNotFound is returned when a referenced account is absent.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountNotActive is returned when a referenced account exists but
	// its status forbids participation.
	ErrAccountNotActive = errors.New("account not active")

	// ErrInsufficientFunds is returned when a debit would take the source
	// balance below zero. Detected under lock; no mutation occurs.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrRateLimited is returned when admission control rejects the caller
	// before any lock is taken.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrInternalInconsistency signals a record that vanished while its
	// lock was held. Fatal, surfaced, never swallowed.
	ErrInternalInconsistency = errors.New("internal ledger inconsistency")
)
