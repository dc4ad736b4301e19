package deltachain

import "gonum.org/v1/gonum/spatial/r3"

// The solver itself is unit-agnostic: joints come out in whatever frame
// and unit the connection points went in. The helpers below cover the
// common handoff to solvers that want millimeters and a fixed base at the
// origin.

// MetersToMillimeters converts a scalar length.
func MetersToMillimeters(m float64) float64 { return m * 1000 }

// MillimetersToMeters converts a scalar length.
func MillimetersToMeters(mm float64) float64 { return mm / 1000 }

// VecMetersToMillimeters converts a position.
func VecMetersToMillimeters(v r3.Vec) r3.Vec { return r3.Scale(1000, v) }

// VecMillimetersToMeters converts a position.
func VecMillimetersToMeters(v r3.Vec) r3.Vec { return r3.Scale(1.0/1000, v) }

// RebaseAtOrigin re-expresses a chain relative to its first element, for
// downstream solvers that require the base joint at the coordinate
// origin. The input is not modified. An empty chain yields nil.
func RebaseAtOrigin(joints []r3.Vec) []r3.Vec {
	if len(joints) == 0 {
		return nil
	}
	base := joints[0]
	out := make([]r3.Vec, len(joints))
	for i, j := range joints {
		out[i] = r3.Sub(j, base)
	}
	return out
}
