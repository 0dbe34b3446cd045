package lattice

import "errors"

// Sentinel errors for lattice construction. Matched with errors.Is.
var (
	// ErrUnknownSystem is returned for a crystal-system value or name
	// outside {SC, BCC, FCC}. Fatal to the construction attempt.
	ErrUnknownSystem = errors.New("lattice: unknown crystal system")

	// ErrNonPositiveOrder is returned when the requested plane count is
	// less than one.
	ErrNonPositiveOrder = errors.New("lattice: order must be positive")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("lattice: invalid option supplied")
)
