package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GKarbon/crystal-index/imagemark"
)

// TestParsePoints_Valid covers the accepted spellings, including
// whitespace slack.
func TestParsePoints_Valid(t *testing.T) {
	points, err := parsePoints("10:20, 30:40 ,0:0")
	require.NoError(t, err)
	assert.Equal(t, []imagemark.Point{{X: 10, Y: 20}, {X: 30, Y: 40}, {X: 0, Y: 0}}, points)
}

// TestParsePoints_Empty verifies that an empty value yields no points.
func TestParsePoints_Empty(t *testing.T) {
	points, err := parsePoints("   ")
	require.NoError(t, err)
	assert.Nil(t, points)
}

// TestParsePoints_Malformed covers the rejection cases.
func TestParsePoints_Malformed(t *testing.T) {
	for _, raw := range []string{"10", "10:20:30", "a:b", "10:", "1:2,3"} {
		_, err := parsePoints(raw)
		assert.Error(t, err, "value %q must be rejected", raw)
	}
}
