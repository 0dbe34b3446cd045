package match

import "errors"

// Sentinel errors for pair matching. Matched with errors.Is.
var (
	// ErrNilLattice is returned if a nil lattice pointer is passed.
	ErrNilLattice = errors.New("match: lattice is nil")

	// ErrBadRatio is returned when the target ratio is not a positive
	// finite number.
	ErrBadRatio = errors.New("match: target ratio must be positive and finite")

	// ErrBadAngle is returned when the angle threshold lies outside the
	// open interval (0, 180) degrees.
	ErrBadAngle = errors.New("match: angle threshold must lie in (0, 180) degrees")

	// ErrBadSpacing is returned by RatioFromSpacings when a measured
	// spacing is not a positive finite number.
	ErrBadSpacing = errors.New("match: measured spacing must be positive and finite")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("match: invalid option supplied")
)
