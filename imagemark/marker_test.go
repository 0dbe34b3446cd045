package imagemark_test

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GKarbon/crystal-index/imagemark"
)

// writeTestImage encodes a blank PNG of the given size and returns its
// path.
func writeTestImage(t *testing.T, w, h int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "pattern.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, png.Encode(f, image.NewGray(image.Rect(0, 0, w, h))))

	return path
}

// TestSelect_DecodesBounds verifies that selection reads the image
// dimensions without loading pixels.
func TestSelect_DecodesBounds(t *testing.T) {
	path := writeTestImage(t, 64, 48)

	m, err := imagemark.Select(path)
	require.NoError(t, err)
	assert.Equal(t, path, m.Path())
	assert.Equal(t, image.Rect(0, 0, 64, 48), m.Bounds())
	assert.Empty(t, m.Points(), "fresh marker starts with no points")
}

// TestSelect_EmptyPath verifies the no-selection error.
func TestSelect_EmptyPath(t *testing.T) {
	_, err := imagemark.Select("")
	assert.ErrorIs(t, err, imagemark.ErrNoImage)
}

// TestSelect_MissingFile verifies that a nonexistent path surfaces
// ErrBadImage.
func TestSelect_MissingFile(t *testing.T) {
	_, err := imagemark.Select(filepath.Join(t.TempDir(), "nope.png"))
	assert.ErrorIs(t, err, imagemark.ErrBadImage)
}

// TestSelect_NotAnImage verifies that an undecodable file surfaces
// ErrBadImage.
func TestSelect_NotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("not pixels"), 0o600))

	_, err := imagemark.Select(path)
	assert.ErrorIs(t, err, imagemark.ErrBadImage)
}

// TestMark_OrderAndBounds verifies click-order preservation and the
// bounds check.
func TestMark_OrderAndBounds(t *testing.T) {
	m, err := imagemark.Select(writeTestImage(t, 10, 10))
	require.NoError(t, err)

	require.NoError(t, m.Mark(1, 2))
	require.NoError(t, m.Mark(9, 9))
	require.NoError(t, m.Mark(0, 0))

	assert.Equal(t, []imagemark.Point{{X: 1, Y: 2}, {X: 9, Y: 9}, {X: 0, Y: 0}}, m.Points())

	err = m.Mark(10, 3)
	assert.ErrorIs(t, err, imagemark.ErrOutOfBounds, "x == width is outside")
	assert.Len(t, m.Points(), 3, "rejected points are not recorded")
}

// TestRun_Contract verifies the session hand-off: path plus points, the
// points slice detached from the marker.
func TestRun_Contract(t *testing.T) {
	m, err := imagemark.Select(writeTestImage(t, 4, 4))
	require.NoError(t, err)
	require.NoError(t, m.Mark(2, 2))

	path, points := m.Run()
	assert.Equal(t, m.Path(), path)
	assert.Equal(t, []imagemark.Point{{X: 2, Y: 2}}, points)

	points[0] = imagemark.Point{X: 99, Y: 99}
	assert.Equal(t, []imagemark.Point{{X: 2, Y: 2}}, m.Points(), "Run must hand out a copy")
}
