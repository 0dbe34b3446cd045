package hkl

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/GKarbon/crystal-index/geom"
)

// permTable lists the 6 component permutations of (h, k, l) in the
// lexicographic order of their position triples. Together with
// signTable it fixes the orbit enumeration order; do not reorder.
var permTable = [6][3]int{
	{0, 1, 2}, {0, 2, 1},
	{1, 0, 2}, {1, 2, 0},
	{2, 0, 1}, {2, 1, 0},
}

// signTable lists the 8 sign patterns, + before - per position.
var signTable = [8][3]int{
	{1, 1, 1}, {1, 1, -1}, {1, -1, 1}, {1, -1, -1},
	{-1, 1, 1}, {-1, 1, -1}, {-1, -1, 1}, {-1, -1, -1},
}

// Plane is one crystallographic lattice plane: a Miller index together
// with its plane normal, the index interpreted as a 3-vector. Planes are
// immutable value objects; construct them with NewPlane (or
// Index.Plane) and discard freely.
type Plane struct {
	// Index is the (h, k, l) triple naming the plane.
	Index Index

	// Normal is the plane-normal vector (h, k, l); non-zero for any
	// plane built by NewPlane.
	Normal r3.Vec
}

// NewPlane builds the lattice plane for the triple (h, k, l).
// Returns ErrDegeneratePlane for (0,0,0), which has no orientation.
func NewPlane(h, k, l int) (Plane, error) {
	ix := Index{H: h, K: k, L: l}
	if ix.IsZero() {
		return Plane{}, ErrDegeneratePlane
	}

	return Plane{
		Index:  ix,
		Normal: r3.Vec{X: float64(h), Y: float64(k), Z: float64(l)},
	}, nil
}

// String renders the plane by its Miller index, e.g. "(1, 1, 1)".
func (p Plane) String() string {
	return p.Index.String()
}

// DSpacing returns the inter-planar spacing of the family: for a cubic
// lattice with lattice parameter normalized to 1,
//
//	d = 1 / √(h²+k²+l²).
//
// Returns ErrDegeneratePlane on the degenerate (zero-value) plane.
func (p Plane) DSpacing() (float64, error) {
	if p.Index.IsZero() {
		return 0, ErrDegeneratePlane
	}

	return 1 / math.Sqrt(float64(p.Index.SquareSum())), nil
}

// EquivalentPlanes enumerates the cubic point-group orbit of the plane
// family {hkl}: every component permutation crossed with every sign
// pattern, emitted as exactly 48 entries — permutations outermost
// (permTable order), sign patterns innermost (signTable order).
//
// The result is a multiset: repeated or zero components yield repeated
// entries, which are intentionally not deduplicated. First-match scans
// over the orbit depend on this fixed length and order; callers that
// need a unique set must deduplicate themselves.
func (p Plane) EquivalentPlanes() []Plane {
	comps := [3]int{p.Index.H, p.Index.K, p.Index.L}
	orbit := make([]Plane, 0, len(permTable)*len(signTable))
	for _, perm := range permTable {
		for _, sign := range signTable {
			// Permuting and flipping signs of a non-zero triple keeps it
			// non-zero, so the constructor cannot fail here.
			q, _ := NewPlane(
				comps[perm[0]]*sign[0],
				comps[perm[1]]*sign[1],
				comps[perm[2]]*sign[2],
			)
			orbit = append(orbit, q)
		}
	}

	return orbit
}

// AngleBetween returns the angle in degrees between the normals of p1
// and p2. Neither plane owns the operation, so it is a free function.
//
// Returns geom.ErrZeroVector if either plane is the degenerate zero value.
func AngleBetween(p1, p2 Plane) (float64, error) {
	return geom.AngleDegrees(p1.Normal, p2.Normal)
}

// ZoneAxis returns the zone axis shared by p1 and p2: the cross product
// of their normals, left unnormalized.
func ZoneAxis(p1, p2 Plane) r3.Vec {
	return geom.ZoneAxis(p1.Normal, p2.Normal)
}
