// Package geom provides the small vector-geometry kernel behind plane
// indexing: unit vectors, inter-normal angles and zone axes over
// gonum's r3 three-vectors.
//
// 🚀 What is geom?
//
//	Three pure functions shared by every higher-level package:
//	  • Unit         — normalize a vector to unit length
//	  • AngleDegrees — angle between two vectors, in degrees
//	  • ZoneAxis     — cross product of two plane normals
//
// ✨ Key properties:
//   - deterministic: no state, no randomness, no I/O
//   - safe arccos: the unit-vector dot product is clamped to [-1, 1]
//     before the inverse cosine, so floating drift can never produce NaN
//   - explicit failure: a zero vector yields ErrZeroVector, never a panic
//
// ⚙️ Usage:
//
//	import "github.com/GKarbon/crystal-index/geom"
//
//	a, err := geom.AngleDegrees(r3.Vec{X: 1}, r3.Vec{Y: 1}) // 90°, nil
//	axis := geom.ZoneAxis(r3.Vec{X: 1}, r3.Vec{Y: 1})       // (0, 0, 1)
//
// See examples in example_test.go.
package geom
