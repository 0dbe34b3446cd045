// Package crystalindex identifies pairs of crystallographic lattice
// planes whose inter-planar spacing ratio and mutual angle match values
// measured on an electron-diffraction pattern, and reports the zone
// axis of every matching pair.
//
// 🚀 What is crystal-index?
//
//	Point a transmission electron microscope at a cubic crystal and the
//	diffraction pattern hands you two measurables per spot pair: the
//	ratio of ring spacings and the angle between them. This library
//	runs that measurement backwards:
//	  • candidate Miller indices per crystal structure
//	  • d-spacing computation (cubic, unit lattice parameter)
//	  • symmetry-equivalent plane enumeration (the full 48-entry orbit)
//	  • ratio/angle matching with an experimental tolerance band
//	  • zone-axis derivation via the normals' cross product
//
// ✨ Why choose crystal-index?
//
//   - Deterministic – fixed enumeration orders end to end, so the same
//     query always returns the same matches in the same order
//   - Explicit errors – degenerate planes and unknown crystal systems
//     surface as sentinel errors, never panics
//   - Small surface – value types in, ordered match records out
//
// Under the hood, everything is organized under six subpackages:
//
//	geom/      — unit vectors, angles, zone axes (gonum r3)
//	hkl/       — Miller indices, planes, d-spacing, symmetry orbits
//	lattice/   — SC/BCC/FCC reflection conditions, ordered plane lists
//	match/     — d-ratio pair matching with angle-threshold orbit scans
//	imagemark/ — image point-picking collaborator (coordinates only)
//	report/    — text listing and HTML scatter of the match results
//
// Quick start:
//
//	lat, _ := lattice.New(lattice.FaceCentered, 8)
//	ratio, _ := match.RatioFromSpacings(28.93, 11.11)
//	matches, _ := match.Find(lat, ratio, 66)
//
// or run the bundled front end:
//
//	go run ./cmd/temindex -system FCC -d1 28.93 -d2 11.11 -angle 66
package crystalindex
