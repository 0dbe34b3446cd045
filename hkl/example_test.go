package hkl_test

import (
	"fmt"

	"github.com/GKarbon/crystal-index/hkl"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleGenerate
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Enumerate every candidate Miller index up to maxIndex=2. The result
//	is ordered by h²+k²+l², i.e. by decreasing d-spacing, which is the
//	order a diffraction pattern presents its rings in.
func ExampleGenerate() {
	indices, err := hkl.Generate(2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, ix := range indices {
		fmt.Printf("%s sum=%d\n", ix, ix.SquareSum())
	}
	// Output:
	// (0, 0, 1) sum=1
	// (0, 1, 1) sum=2
	// (1, 1, 1) sum=3
	// (0, 0, 2) sum=4
	// (0, 1, 2) sum=5
	// (1, 1, 2) sum=6
	// (0, 2, 2) sum=8
	// (1, 2, 2) sum=9
	// (2, 2, 2) sum=12
}

// ExamplePlane_DSpacing computes the unit-lattice d-spacing of the
// (1,1,1) family.
func ExamplePlane_DSpacing() {
	p, err := hkl.NewPlane(1, 1, 1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	d, err := p.DSpacing()
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("d(111) = %.4f\n", d)
	// Output:
	// d(111) = 0.5774
}

// ExamplePlane_EquivalentPlanes walks the first few members of the
// {001} orbit; note the repeats — the orbit is a fixed-order multiset.
func ExamplePlane_EquivalentPlanes() {
	p, err := hkl.NewPlane(0, 0, 1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	orbit := p.EquivalentPlanes()
	fmt.Println("entries:", len(orbit))
	for _, q := range orbit[:4] {
		fmt.Println(q)
	}
	// Output:
	// entries: 48
	// (0, 0, 1)
	// (0, 0, -1)
	// (0, 0, 1)
	// (0, 0, -1)
}
