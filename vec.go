package deltachain

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// angleBetween returns the angle between two vectors in degrees.
//
// The cosine is clamped to [-1, 1] before the acos call, as accumulated
// rounding can push the ratio slightly outside the domain. If either
// operand has zero length the angle is 0 by convention, not an error; this
// keeps the solver's objective total on degenerate chains.
func angleBetween(a, b r3.Vec) float64 {
	norms := r3.Norm(a) * r3.Norm(b)
	if norms == 0 {
		return 0
	}
	return math.Acos(clamp(r3.Dot(a, b)/norms, -1, 1)) * 180 / math.Pi
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// direction returns the unit vector pointing from a toward b, or the zero
// vector if the two points coincide.
func direction(a, b r3.Vec) r3.Vec {
	d := r3.Sub(b, a)
	if r3.Norm(d) == 0 {
		return r3.Vec{}
	}
	return r3.Unit(d)
}

// extend moves p along dir by dist.
func extend(p, dir r3.Vec, dist float64) r3.Vec {
	return r3.Add(p, r3.Scale(dist, dir))
}

// midpoint returns the midpoint of two points.
func midpoint(a, b r3.Vec) r3.Vec {
	return r3.Scale(0.5, r3.Add(a, b))
}
