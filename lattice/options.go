package lattice

import (
	"fmt"

	"github.com/GKarbon/crystal-index/hkl"
)

// DefaultMaxIndex bounds the default candidate enumeration. Index 5 is
// deep enough to fill any realistic plane count for all three
// centerings (55 candidates, square sums up to 75).
const DefaultMaxIndex = 5

// Option configures lattice construction via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when New is invoked.
type Option func(*options)

// options holds gathered construction parameters.
type options struct {
	maxIndex   int
	candidates []hkl.Index

	// internal error recorded during option parsing
	err error
}

// defaultOptions returns the documented defaults: candidate bound
// DefaultMaxIndex, no explicit candidate list.
func defaultOptions() options {
	return options{maxIndex: DefaultMaxIndex}
}

// WithMaxIndex sets the candidate enumeration bound used when no
// explicit candidate list is supplied.
//
//	n >= 0: enumerate 0 ≤ h ≤ k ≤ l ≤ n
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxIndex(n int) Option {
	return func(o *options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: WithMaxIndex(%d)", ErrOptionViolation, n)

			return
		}
		o.maxIndex = n
	}
}

// WithCandidates supplies an explicit, already-ordered candidate index
// list, bypassing hkl.Generate entirely. The slice is copied; the
// caller's ordering is preserved and becomes the selection order.
func WithCandidates(candidates []hkl.Index) Option {
	return func(o *options) {
		o.candidates = append([]hkl.Index(nil), candidates...)
	}
}

// gatherOptions applies opts over the defaults and enforces invariants.
func gatherOptions(opts ...Option) (options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return options{}, o.err
	}

	return o, nil
}
