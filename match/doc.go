// Package match identifies pairs of lattice planes whose d-spacing
// ratio and mutual angle agree with values measured on an
// electron-diffraction pattern, and reports the zone axis of each
// matching pair.
//
// 🚀 What is match?
//
//	Given a crystal's ordered plane sequence, a target spacing ratio and
//	an angle threshold, Find:
//	  1. enumerates every unordered pair of distinct planes, in sequence
//	     order;
//	  2. keeps pairs whose d-spacing ratio lies strictly inside the
//	     tolerance band around the target (±20% by default — deliberately
//	     loose, reflecting experimental measurement error);
//	  3. holds the first plane fixed and walks the second plane's
//	     48-entry symmetry orbit in its fixed enumeration order;
//	  4. emits at most one Match per pair: the FIRST orbit member whose
//	     angle to the first plane is strictly below the threshold —
//	     first qualifying, not best;
//	  5. derives the zone axis as the cross product of the two normals.
//
// ✨ Key properties:
//   - order-stable: results mirror the pair enumeration order; repeated
//     runs over the same lattice are element-wise identical
//   - deterministic parallelism: WithWorkers shards the orbit scans but
//     collects results in the single-threaded emission order, because the
//     first-qualifying tie-break is enumeration-order-dependent
//   - bounded: at most C(order, 2) pairs × 48 orbit members, no I/O
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/GKarbon/crystal-index/lattice"
//	  "github.com/GKarbon/crystal-index/match"
//	)
//
//	lat, _ := lattice.New(lattice.FaceCentered, 8)
//	ratio, _ := match.RatioFromSpacings(28.93, 11.11)
//	matches, err := match.Find(lat, ratio, 66)
//
// Options (functional, validated):
//   - WithRatioTolerance(t) — fractional half-width of the ratio band
//   - WithWorkers(n)        — parallel orbit scanning, order preserved
//
// See examples in example_test.go.
package match
