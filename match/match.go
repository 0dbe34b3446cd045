package match

import (
	"fmt"
	"math"
	"sync"

	"github.com/GKarbon/crystal-index/hkl"
	"github.com/GKarbon/crystal-index/lattice"
)

// RatioFromSpacings converts two measured inter-planar spacings (any
// order, any common unit) into the target ratio for Find: the larger
// spacing over the smaller one. With both rings measured on the same
// pattern the unit cancels, so no pixel calibration is needed.
//
// Returns ErrBadSpacing unless both spacings are positive and finite.
func RatioFromSpacings(d1, d2 float64) (float64, error) {
	for _, d := range [2]float64{d1, d2} {
		if d <= 0 || math.IsInf(d, 0) || math.IsNaN(d) {
			return 0, fmt.Errorf("%w: %v", ErrBadSpacing, d)
		}
	}
	if d1 < d2 {
		d1, d2 = d2, d1
	}

	return d1 / d2, nil
}

// DRatios returns the d-spacing ratio of every unordered pair of
// distinct planes in lat's sequence, in combination order: (0,1),
// (0,2), ..., (1,2), ... by sequence position.
//
// Returns ErrNilLattice for a nil lattice.
func DRatios(lat *lattice.Lattice) ([]Ratio, error) {
	if lat == nil {
		return nil, ErrNilLattice
	}

	planes := lat.Planes()
	spacings, err := planeSpacings(planes)
	if err != nil {
		return nil, err
	}

	out := make([]Ratio, 0, len(planes)*(len(planes)-1)/2)
	for i := 0; i < len(planes); i++ {
		for j := i + 1; j < len(planes); j++ {
			out = append(out, Ratio{
				Value:  spacings[i] / spacings[j],
				First:  planes[i],
				Second: planes[j],
			})
		}
	}

	return out, nil
}

// Find scans every unordered pair of lat's planes for pairs whose
// d-spacing ratio falls strictly inside the tolerance band around
// targetRatio, then holds the first plane fixed and walks the second
// plane's full symmetry orbit in its fixed enumeration order. Each
// retained pair contributes at most one Match: the first orbit member
// whose angle to the first plane is strictly below angleDeg. Pairs with
// no qualifying orbit member contribute nothing.
//
// Results preserve the pair enumeration order, so repeated runs over
// the same lattice are element-wise identical — with any worker count.
//
// Validation (in order):
//  1. lat must be non-nil (ErrNilLattice).
//  2. targetRatio must be positive and finite (ErrBadRatio).
//  3. angleDeg must lie in (0, 180) (ErrBadAngle).
//  4. options must be valid (ErrOptionViolation).
//
// Complexity: O(P·48) angle evaluations over the P band-surviving pairs.
func Find(lat *lattice.Lattice, targetRatio, angleDeg float64, opts ...Option) ([]Match, error) {
	if lat == nil {
		return nil, ErrNilLattice
	}
	if targetRatio <= 0 || math.IsInf(targetRatio, 0) || math.IsNaN(targetRatio) {
		return nil, fmt.Errorf("%w: %v", ErrBadRatio, targetRatio)
	}
	if angleDeg <= 0 || angleDeg >= 180 || math.IsNaN(angleDeg) {
		return nil, fmt.Errorf("%w: %v", ErrBadAngle, angleDeg)
	}
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, err
	}

	ratios, err := DRatios(lat)
	if err != nil {
		return nil, err
	}

	lower := targetRatio * (1 - o.tolerance)
	upper := targetRatio * (1 + o.tolerance)
	retained := make([]Ratio, 0, len(ratios))
	for _, r := range ratios {
		if lower < r.Value && r.Value < upper {
			retained = append(retained, r)
		}
	}

	if o.workers <= 1 || len(retained) < 2 {
		return scanSerial(retained, angleDeg)
	}

	return scanParallel(retained, angleDeg, o.workers)
}

// planeSpacings computes the d-spacing of each plane once.
func planeSpacings(planes []hkl.Plane) ([]float64, error) {
	spacings := make([]float64, len(planes))
	for i, p := range planes {
		d, err := p.DSpacing()
		if err != nil {
			return nil, err
		}
		spacings[i] = d
	}

	return spacings, nil
}

// scanOrbit walks the partner's orbit and returns the first equivalent
// under the threshold, if any.
func scanOrbit(first, second hkl.Plane, angleDeg float64) (Match, bool, error) {
	for _, candidate := range second.EquivalentPlanes() {
		a, err := hkl.AngleBetween(first, candidate)
		if err != nil {
			return Match{}, false, err
		}
		if a < angleDeg {
			return Match{
				First:    first,
				Second:   candidate,
				ZoneAxis: hkl.ZoneAxis(first, candidate),
			}, true, nil
		}
	}

	return Match{}, false, nil
}

// scanSerial runs the orbit scans one pair at a time.
func scanSerial(retained []Ratio, angleDeg float64) ([]Match, error) {
	out := make([]Match, 0, len(retained))
	for _, r := range retained {
		m, ok, err := scanOrbit(r.First, r.Second, angleDeg)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, m)
		}
	}

	return out, nil
}

// scanParallel shards the orbit scans across workers by striding the
// retained-pair index space, then compacts hits in pair order. Orbit
// scans are independent, so only the collection step needs ordering.
func scanParallel(retained []Ratio, angleDeg float64, workers int) ([]Match, error) {
	if workers > len(retained) {
		workers = len(retained)
	}

	hits := make([]Match, len(retained))
	found := make([]bool, len(retained))

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(start int) {
			defer wg.Done()
			for i := start; i < len(retained); i += workers {
				m, ok, err := scanOrbit(retained[i].First, retained[i].Second, angleDeg)
				if err != nil {
					errOnce.Do(func() { firstErr = err })

					return
				}
				hits[i], found[i] = m, ok
			}
		}(w)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	out := make([]Match, 0, len(retained))
	for i, ok := range found {
		if ok {
			out = append(out, hits[i])
		}
	}

	return out, nil
}
