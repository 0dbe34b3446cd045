package match

import "fmt"

// DefaultRatioTolerance is the fractional half-width of the d-spacing
// ratio acceptance band: pairs survive when
// target·(1−t) < ratio < target·(1+t). The default ±20% is the loose
// experimental window the matcher was designed around.
const DefaultRatioTolerance = 0.20

// Option configures Find via functional arguments. An invalid Option
// is recorded internally and surfaced as ErrOptionViolation when Find
// is invoked.
type Option func(*options)

// options holds gathered matcher parameters.
type options struct {
	tolerance float64
	workers   int

	// internal error recorded during option parsing
	err error
}

// defaultOptions returns the documented defaults: ±20% band, serial scan.
func defaultOptions() options {
	return options{tolerance: DefaultRatioTolerance, workers: 1}
}

// WithRatioTolerance sets the fractional half-width of the ratio band.
//
//	0 < t < 1: accept ratios in (target·(1−t), target·(1+t))
//	otherwise: invalid option → ErrOptionViolation
func WithRatioTolerance(t float64) Option {
	return func(o *options) {
		if t <= 0 || t >= 1 {
			o.err = fmt.Errorf("%w: WithRatioTolerance(%v)", ErrOptionViolation, t)

			return
		}
		o.tolerance = t
	}
}

// WithWorkers shards the per-pair orbit scans across n goroutines.
// Result order is unaffected: matches are collected by pair position,
// so any worker count reproduces the serial output exactly.
//
//	n >= 1: scan with n workers
//	n == 0: explicit serial scan (same as 1)
//	n < 0:  invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: WithWorkers(%d)", ErrOptionViolation, n)
		case n == 0:
			o.workers = 1
		default:
			o.workers = n
		}
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
