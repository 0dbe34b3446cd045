package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/GKarbon/crystal-index/match"
)

// separator closes each match block in the listing.
var separator = strings.Repeat("*", 30)

// Text writes each match as a three-line block:
//
//	Vector 1: (1, 1, 1), Vector 2: (0, 0, 4)
//	Zone axis: (4, -4, 0)
//	******************************
//
// Matches are written in input order. Returns the first write error.
func Text(w io.Writer, matches []match.Match) error {
	for _, m := range matches {
		if _, err := fmt.Fprintf(w, "Vector 1: %s, Vector 2: %s\n", m.First, m.Second); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "Zone axis: (%.0f, %.0f, %.0f)\n",
			m.ZoneAxis.X, m.ZoneAxis.Y, m.ZoneAxis.Z); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, separator); err != nil {
			return err
		}
	}

	return nil
}
