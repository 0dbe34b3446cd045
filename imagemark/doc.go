// Package imagemark is the image-marking collaborator of the indexing
// core: it selects a diffraction image on disk and records an ordered
// sequence of picked pixel coordinates.
//
// The interactive click widget itself is out of scope; points arrive
// programmatically through Mark. The core never consumes the collected
// coordinates — no calibration pipeline from picked points to spacing
// or angle inputs exists yet, and that gap is intentional. The
// collaborator's only contract with the core is invocation: it hands
// back the image path and the point sequence for a future pipeline.
package imagemark
