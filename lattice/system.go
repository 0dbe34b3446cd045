package lattice

import (
	"fmt"
	"strings"

	"github.com/GKarbon/crystal-index/hkl"
)

// System selects the cubic lattice centering. The centering determines
// the reflection condition: which candidate Miller indices correspond
// to physically diffracting planes.
type System int

const (
	// SimpleCubic accepts every candidate index.
	SimpleCubic System = iota

	// BodyCentered accepts indices with even h+k+l.
	BodyCentered

	// FaceCentered accepts indices with h, k, l all even or all odd;
	// mixed parity is extinguished.
	FaceCentered
)

// String returns the conventional abbreviation: SC, BCC or FCC.
func (s System) String() string {
	switch s {
	case SimpleCubic:
		return "SC"
	case BodyCentered:
		return "BCC"
	case FaceCentered:
		return "FCC"
	default:
		return fmt.Sprintf("System(%d)", int(s))
	}
}

// ParseSystem maps the conventional abbreviation (case-insensitive,
// surrounding blanks ignored) to its System.
//
// Returns ErrUnknownSystem for anything else.
func ParseSystem(name string) (System, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "SC":
		return SimpleCubic, nil
	case "BCC":
		return BodyCentered, nil
	case "FCC":
		return FaceCentered, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSystem, name)
	}
}

// valid reports whether s is one of the three known centerings.
func (s System) valid() bool {
	return s == SimpleCubic || s == BodyCentered || s == FaceCentered
}

// allows is the single dispatch point for the per-centering reflection
// predicates. Callers must have validated s first.
func (s System) allows(ix hkl.Index) bool {
	switch s {
	case SimpleCubic:
		return true
	case BodyCentered:
		return (ix.H+ix.K+ix.L)%2 == 0
	case FaceCentered:
		hOdd, kOdd, lOdd := ix.H%2 != 0, ix.K%2 != 0, ix.L%2 != 0

		return hOdd == kOdd && kOdd == lOdd
	default:
		return false
	}
}
