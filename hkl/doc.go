// Package hkl models crystallographic lattice planes through their
// Miller indices: candidate index generation, d-spacing, and the cubic
// symmetry orbit of a plane family.
//
// 🚀 What is hkl?
//
//	A Miller index (h, k, l) is an integer triple naming the orientation
//	of a family of parallel lattice planes. This package supplies:
//	  • Index            — the ordered (h, k, l) triple
//	  • Generate         — candidate triples with 0 ≤ h ≤ k ≤ l ≤ max,
//	    sorted ascending by h²+k²+l² (stable, enumeration order kept on ties)
//	  • Plane            — an Index with its plane-normal vector
//	  • DSpacing         — inter-planar spacing 1/√(h²+k²+l²) (cubic, a=1)
//	  • EquivalentPlanes — the full signed-permutation orbit of {hkl}
//	  • AngleBetween / ZoneAxis — binary plane-vs-plane geometry
//
// ✨ Key properties:
//   - value semantics: Index and Plane are immutable value objects
//   - fixed enumeration order: the 48-entry orbit (6 permutations × 8 sign
//     patterns) is emitted in one documented order and is NOT deduplicated;
//     repeated or zero components produce repeated entries by design,
//     because downstream first-match scans depend on this exact order
//   - explicit failure: the degenerate triple (0,0,0) names no plane and
//     yields ErrDegeneratePlane, never a panic
//
// ⚙️ Usage:
//
//	import "github.com/GKarbon/crystal-index/hkl"
//
//	p, err := hkl.NewPlane(1, 1, 1)
//	d, err := p.DSpacing()            // 1/√3
//	orbit := p.EquivalentPlanes()     // 48 entries
//	a, err := hkl.AngleBetween(p, q)  // degrees
//
// See examples in example_test.go.
package hkl
