package hkl

import "errors"

// Sentinel errors for Miller-index operations. All are matched with
// errors.Is; wrap with fmt.Errorf("...: %w", ...) only at outer
// boundaries if extra context is essential.
var (
	// ErrDegeneratePlane is returned when the all-zero triple (0,0,0) is
	// used where a real plane is required: it has no orientation and no
	// d-spacing.
	ErrDegeneratePlane = errors.New("hkl: degenerate plane (0,0,0)")

	// ErrNegativeMaxIndex is returned by Generate when the enumeration
	// bound is negative.
	ErrNegativeMaxIndex = errors.New("hkl: negative max index")
)
