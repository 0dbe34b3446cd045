package hkl

import (
	"fmt"
	"sort"
)

// Index is an ordered Miller-index triple (h, k, l). Components are
// signed, need not be coprime, and may be zero in one or two positions;
// the all-zero triple names no plane and is rejected wherever a plane
// is required.
type Index struct {
	H, K, L int
}

// String renders the index in the conventional (h, k, l) form.
func (ix Index) String() string {
	return fmt.Sprintf("(%d, %d, %d)", ix.H, ix.K, ix.L)
}

// IsZero reports whether all three components are zero.
func (ix Index) IsZero() bool {
	return ix.H == 0 && ix.K == 0 && ix.L == 0
}

// SquareSum returns h²+k²+l², the squared magnitude of the index taken
// as a vector. It orders candidate indices and fixes every d-spacing.
func (ix Index) SquareSum() int {
	return ix.H*ix.H + ix.K*ix.K + ix.L*ix.L
}

// Plane converts the index into its lattice plane.
// Returns ErrDegeneratePlane for (0,0,0).
func (ix Index) Plane() (Plane, error) {
	return NewPlane(ix.H, ix.K, ix.L)
}

// Generate enumerates every combination-with-repetition triple
// 0 ≤ h ≤ k ≤ l ≤ maxIndex, excluding (0,0,0), sorted ascending by
// square sum. The sort is stable, so triples with equal square sums
// keep the lexicographic order of the underlying combination
// enumeration: Generate(5) places (0,1,4) before (2,2,3) (both sum 17).
//
// This is the canonical candidate list from which any crystal's allowed
// plane sequence is filtered.
//
// Returns ErrNegativeMaxIndex when maxIndex < 0; maxIndex == 0 yields
// an empty list.
//
// Complexity: O(n³ log n) for n = maxIndex (C(n+3, 3) triples sorted).
func Generate(maxIndex int) ([]Index, error) {
	if maxIndex < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeMaxIndex, maxIndex)
	}

	// (maxIndex+1 multichoose 3) combinations, minus the excluded origin.
	n := maxIndex + 1
	out := make([]Index, 0, n*(n+1)*(n+2)/6-1)
	for h := 0; h <= maxIndex; h++ {
		for k := h; k <= maxIndex; k++ {
			for l := k; l <= maxIndex; l++ {
				if h == 0 && k == 0 && l == 0 {
					continue
				}
				out = append(out, Index{H: h, K: k, L: l})
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SquareSum() < out[j].SquareSum()
	})

	return out, nil
}
