package geom

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// ErrZeroVector is returned when an operation requires a non-zero vector.
var ErrZeroVector = errors.New("geom: zero vector")

// degPerRad converts radians to degrees.
const degPerRad = 180 / math.Pi

// Unit returns v scaled to unit Euclidean length.
//
// Returns ErrZeroVector when ‖v‖ == 0, since the direction of the zero
// vector is undefined.
func Unit(v r3.Vec) (r3.Vec, error) {
	n := r3.Norm(v)
	if n == 0 {
		return r3.Vec{}, ErrZeroVector
	}

	return r3.Scale(1/n, v), nil
}

// AngleDegrees returns the angle between v1 and v2 in degrees, in [0, 180].
//
// The dot product of the two unit vectors is clamped to [-1, 1] before the
// arccos call: for (anti)parallel inputs floating drift can push it
// marginally outside the domain of arccos.
//
// Returns ErrZeroVector when either input has zero norm.
func AngleDegrees(v1, v2 r3.Vec) (float64, error) {
	u1, err := Unit(v1)
	if err != nil {
		return 0, err
	}
	u2, err := Unit(v2)
	if err != nil {
		return 0, err
	}

	d := r3.Dot(u1, u2)
	if d > 1 {
		d = 1
	} else if d < -1 {
		d = -1
	}

	return math.Acos(d) * degPerRad, nil
}

// ZoneAxis returns the cross product v1 × v2, left unnormalized: its
// direction is the axis common to both planes and its magnitude is
// proportional to the sine of the angle between the normals.
func ZoneAxis(v1, v2 r3.Vec) r3.Vec {
	return r3.Cross(v1, v2)
}
