package match

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/GKarbon/crystal-index/hkl"
)

// Match is one indexing result: a reference plane, the symmetry
// equivalent of its partner that satisfied the angle threshold, and the
// zone axis the two planes share.
type Match struct {
	// First is the fixed reference plane of the pair, as it appears in
	// the lattice's plane sequence.
	First hkl.Plane

	// Second is the first member of the partner plane's
	// signed-permutation orbit whose angle to First fell below the
	// threshold.
	Second hkl.Plane

	// ZoneAxis is First.Normal × Second.Normal, left unnormalized.
	ZoneAxis r3.Vec
}

// Ratio couples the d-spacing ratio of a plane pair with the pair
// itself, in lattice sequence order (First precedes Second).
type Ratio struct {
	// Value is DSpacing(First) / DSpacing(Second). Planes later in the
	// sequence have smaller spacings, so Value ≥ 1 for untouched
	// lattice sequences.
	Value float64

	First  hkl.Plane
	Second hkl.Plane
}
