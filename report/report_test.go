package report_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GKarbon/crystal-index/lattice"
	"github.com/GKarbon/crystal-index/match"
	"github.com/GKarbon/crystal-index/report"
)

// demoMatches runs the reference query: FCC/8, ratio 28.93/11.11, 66°.
func demoMatches(t *testing.T) []match.Match {
	t.Helper()

	lat, err := lattice.New(lattice.FaceCentered, 8)
	require.NoError(t, err)
	matches, err := match.Find(lat, 28.93/11.11, 66)
	require.NoError(t, err)
	require.NotEmpty(t, matches)

	return matches
}

// TestText_Golden pins the full listing of the reference query.
func TestText_Golden(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Text(&buf, demoMatches(t)))

	want := strings.Join([]string{
		"Vector 1: (1, 1, 1), Vector 2: (0, 0, 4)",
		"Zone axis: (4, -4, 0)",
		"******************************",
		"Vector 1: (1, 1, 1), Vector 2: (1, 3, 3)",
		"Zone axis: (0, -2, 2)",
		"******************************",
		"Vector 1: (1, 1, 1), Vector 2: (0, 2, 4)",
		"Zone axis: (2, -4, 2)",
		"******************************",
		"Vector 1: (0, 0, 2), Vector 2: (1, 3, 3)",
		"Zone axis: (-6, 2, 0)",
		"******************************",
		"Vector 1: (0, 0, 2), Vector 2: (0, 2, 4)",
		"Zone axis: (-4, 0, 0)",
		"******************************",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

// TestText_Empty verifies that no matches produce no output.
func TestText_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Text(&buf, nil))
	assert.Empty(t, buf.String())
}

// TestChart_RendersHTML smoke-tests the scatter render: a non-empty
// HTML document mentioning echarts and the chart title.
func TestChart_RendersHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Chart(&buf, demoMatches(t), "FCC demo"))

	html := buf.String()
	assert.Contains(t, html, "echarts", "document must pull in the echarts runtime")
	assert.Contains(t, html, "FCC demo", "title must appear")
}

// TestChart_EmptyMatches verifies that an empty match list still
// renders a valid (blank) chart.
func TestChart_EmptyMatches(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Chart(&buf, nil, "empty"))
	assert.NotEmpty(t, buf.String())
}
