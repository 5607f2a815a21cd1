package errs

import "errors"

// Domain-specific sentinel errors shared by the facility engine and the
// usecase layers. Handlers match on these with errors.Is.
var (
	// Issuance errors
	ErrCapacityExhausted = errors.New("no eligible spot available")

	// Settlement errors
	ErrTicketNotFound    = errors.New("ticket not found")
	ErrPaymentDeclined   = errors.New("payment declined")
	ErrUnsupportedMethod = errors.New("unsupported payment method")

	// Invariant violations (programming faults, not recoverable conditions)
	ErrInvalidRelease = errors.New("release of a spot that is not occupied")
	ErrUnknownSpot    = errors.New("unknown spot id")

	// Validation errors
	ErrInvalidVehicle = errors.New("invalid vehicle")
)
