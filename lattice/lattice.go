package lattice

import (
	"fmt"
	"sync"

	"github.com/GKarbon/crystal-index/hkl"
)

// defaultCandidates memoizes the DefaultMaxIndex candidate list. The
// list is pure function output; memoization only avoids re-sorting 55
// triples per construction. Never mutated after first use.
var defaultCandidates = sync.OnceValues(func() ([]hkl.Index, error) {
	return hkl.Generate(DefaultMaxIndex)
})

// Lattice is the ordered sequence of allowed lattice planes for one
// cubic crystal, truncated at the requested plane count. Immutable once
// constructed; accessors return copies.
type Lattice struct {
	system System
	order  int
	planes []hkl.Plane
}

// New builds the Lattice for the given centering: candidate indices are
// taken in ascending square-sum order, filtered through the system's
// reflection condition, and collected until order planes are found.
//
// If the candidate list is exhausted first, the shorter sequence is
// returned without error — callers asking for more planes than the
// bound admits simply get everything there is.
//
// Validation (in order):
//  1. system must be SC, BCC or FCC (ErrUnknownSystem).
//  2. order must be ≥ 1 (ErrNonPositiveOrder).
//  3. options must be valid (ErrOptionViolation).
//
// Complexity: O(C) over the candidate list length C.
func New(system System, order int, opts ...Option) (*Lattice, error) {
	if !system.valid() {
		return nil, fmt.Errorf("%w: System(%d)", ErrUnknownSystem, int(system))
	}
	if order < 1 {
		return nil, fmt.Errorf("%w: %d", ErrNonPositiveOrder, order)
	}
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, err
	}

	candidates := o.candidates
	if candidates == nil {
		if o.maxIndex == DefaultMaxIndex {
			candidates, err = defaultCandidates()
		} else {
			candidates, err = hkl.Generate(o.maxIndex)
		}
		if err != nil {
			return nil, err
		}
	}

	planes := make([]hkl.Plane, 0, order)
	for _, ix := range candidates {
		if len(planes) == order {
			break
		}
		if !system.allows(ix) {
			continue
		}
		p, err := ix.Plane()
		if err != nil {
			// Only possible with an explicit candidate list carrying (0,0,0).
			return nil, err
		}
		planes = append(planes, p)
	}

	return &Lattice{system: system, order: order, planes: planes}, nil
}

// System returns the lattice centering the planes were selected for.
func (l *Lattice) System() System { return l.system }

// Order returns the requested plane count. The actual sequence may be
// shorter when the candidate list ran out; see Len.
func (l *Lattice) Order() int { return l.order }

// Len returns the number of planes actually collected (≤ Order).
func (l *Lattice) Len() int { return len(l.planes) }

// Planes returns a copy of the ordered plane sequence. The copy keeps
// the Lattice immutable under caller mutation.
func (l *Lattice) Planes() []hkl.Plane {
	return append([]hkl.Plane(nil), l.planes...)
}
