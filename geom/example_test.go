package geom_test

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/GKarbon/crystal-index/geom"
)

// ExampleAngleDegrees measures the angle between the normals of the
// (1,0,0) and (1,1,0) plane families.
func ExampleAngleDegrees() {
	a, err := geom.AngleDegrees(r3.Vec{X: 1}, r3.Vec{X: 1, Y: 1})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%.2f°\n", a)
	// Output:
	// 45.00°
}

// ExampleZoneAxis derives the zone axis shared by the (1,0,0) and
// (0,1,0) planes.
func ExampleZoneAxis() {
	axis := geom.ZoneAxis(r3.Vec{X: 1}, r3.Vec{Y: 1})
	fmt.Printf("(%.0f, %.0f, %.0f)\n", axis.X, axis.Y, axis.Z)
	// Output:
	// (0, 0, 1)
}
