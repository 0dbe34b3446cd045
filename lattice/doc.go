// Package lattice builds the ordered list of diffracting lattice planes
// for a cubic crystal: candidate Miller indices are filtered by the
// lattice-centering reflection condition and truncated at a requested
// plane count.
//
// 🚀 What is lattice?
//
//	Cubic crystals come in three centerings, and each centering
//	extinguishes part of the candidate index set:
//	  • SimpleCubic  (SC)  — every index diffracts
//	  • BodyCentered (BCC) — h+k+l must be even
//	  • FaceCentered (FCC) — h, k, l all even or all odd
//
//	New(system, order) walks the canonical ascending-by-square-sum
//	candidate list (hkl.Generate), keeps the allowed indices, and stops
//	after order planes. The result is the plane sequence a diffraction
//	pattern of that crystal exposes, strongest rings first.
//
// ✨ Key properties:
//   - one dispatch point: each System carries its own reflection
//     predicate; the three rules live in a single switch, not at call sites
//   - deterministic: identical inputs yield element-wise identical plane
//     sequences; the default candidate list is memoized, never mutated
//   - boundary-safe: when the candidate list runs out before order
//     planes are collected, the shorter sequence is returned without error
//
// ⚙️ Usage:
//
//	import "github.com/GKarbon/crystal-index/lattice"
//
//	lat, err := lattice.New(lattice.FaceCentered, 8)
//	for _, p := range lat.Planes() {
//	  d, _ := p.DSpacing()
//	  fmt.Println(p, d)
//	}
//
// Options (functional, validated):
//   - WithMaxIndex(n)    — widen or narrow the candidate enumeration bound
//   - WithCandidates(cs) — supply an explicit candidate list
//
// See examples in example_test.go.
package lattice
