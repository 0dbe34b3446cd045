package imagemark

import (
	"errors"
	"fmt"
	"image"
	"os"

	// Decoders for the pattern formats cameras export.
	_ "image/jpeg"
	_ "image/png"
)

// Sentinel errors for image selection and marking. Matched with
// errors.Is; underlying I/O errors are wrapped and propagate unchanged.
var (
	// ErrNoImage is returned when no image path was selected.
	ErrNoImage = errors.New("imagemark: no image selected")

	// ErrBadImage is returned when the selected file cannot be read or
	// decoded as an image.
	ErrBadImage = errors.New("imagemark: image not found or unreadable")

	// ErrOutOfBounds is returned when a marked point lies outside the
	// image.
	ErrOutOfBounds = errors.New("imagemark: point outside image bounds")
)

// Point is one picked pixel coordinate, origin at the top-left corner.
type Point struct {
	X, Y int
}

// Marker collects an ordered point sequence over one selected image.
// Not safe for concurrent use; one Marker per picking session.
type Marker struct {
	path   string
	bounds image.Rectangle
	points []Point
}

// Select opens the image at path, verifies it decodes, and returns a
// Marker ready to record points. Only the header is decoded; the pixel
// data is never loaded.
//
// Returns ErrNoImage for an empty path and ErrBadImage (wrapping the
// underlying cause) when the file is missing or not a decodable image.
func Select(path string) (*Marker, error) {
	if path == "" {
		return nil, ErrNoImage
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrBadImage, path, err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrBadImage, path, err)
	}

	return &Marker{
		path:   path,
		bounds: image.Rect(0, 0, cfg.Width, cfg.Height),
	}, nil
}

// Mark records one picked point, in click order.
// Returns ErrOutOfBounds when (x, y) lies outside the image.
func (m *Marker) Mark(x, y int) error {
	if !image.Pt(x, y).In(m.bounds) {
		return fmt.Errorf("%w: (%d, %d) not in %v", ErrOutOfBounds, x, y, m.bounds)
	}
	m.points = append(m.points, Point{X: x, Y: y})

	return nil
}

// Path returns the selected image path.
func (m *Marker) Path() string { return m.path }

// Bounds returns the image rectangle the points are validated against.
func (m *Marker) Bounds() image.Rectangle { return m.bounds }

// Points returns a copy of the recorded points in marking order.
func (m *Marker) Points() []Point {
	return append([]Point(nil), m.points...)
}

// Run is the session contract used by the front end: it returns the
// selected path and the points picked so far, mirroring the
// select-then-mark flow of the interactive tool.
func (m *Marker) Run() (string, []Point) {
	return m.path, m.Points()
}
