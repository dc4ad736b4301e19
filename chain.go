package deltachain

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// NamedPoint pairs a connection point with the name it was extracted
// under. The name is carried for diagnostics and visualization only; the
// solver uses positions alone.
type NamedPoint struct {
	Name string
	Pos  r3.Vec
}

// Positions strips the names from a chain of connection points, yielding
// the slice SolveJoints consumes.
func Positions(points []NamedPoint) []r3.Vec {
	out := make([]r3.Vec, len(points))
	for i, p := range points {
		out[i] = p.Pos
	}
	return out
}

// SegmentChain holds the measured link positions of a segmented
// mechanism, in meters in the world frame. How the positions are obtained
// (typically from a scene graph or a motion-capture rig) is up to the
// caller.
type SegmentChain struct {
	// Base is the mechanism's mounting point.
	Base r3.Vec
	// FirstLink is the first link of the first segment. Its distance
	// from Base sets the extension length used at both chain ends.
	FirstLink r3.Vec
	// Couplings lists, per pair of consecutive segments, the facing
	// link positions: the last link of segment N and the first link of
	// segment N+1.
	Couplings [][2]r3.Vec
	// Wrist is the second-to-last link of the final segment.
	Wrist r3.Vec
	// Tip is the last link of the final segment.
	Tip r3.Vec
}

// ConnectionPoints assembles the ordered connection-point chain for the
// mechanism:
//
//   - a base extension point, extending Base away from FirstLink by the
//     base distance,
//   - one midpoint per segment coupling, and
//   - an end extension point, extending Tip by the base distance, toward
//     target if one is given, otherwise along the Wrist→Tip direction.
//
// When no target is given and Wrist coincides with Tip, the extension
// falls back to the Base→FirstLink direction.
func (c SegmentChain) ConnectionPoints(target *r3.Vec) []NamedPoint {
	baseDist := r3.Norm(r3.Sub(c.FirstLink, c.Base))
	baseDir := direction(c.Base, c.FirstLink)

	points := []NamedPoint{{
		Name: "base_extension",
		Pos:  extend(c.Base, r3.Scale(-1, baseDir), baseDist),
	}}
	for i, pair := range c.Couplings {
		points = append(points, NamedPoint{
			Name: fmt.Sprintf("seg%d_to_seg%d", i+1, i+2),
			Pos:  midpoint(pair[0], pair[1]),
		})
	}

	name := "end_extension_current"
	var dir r3.Vec
	if target != nil {
		name = "end_extension"
		dir = direction(c.Tip, *target)
	} else {
		dir = direction(c.Wrist, c.Tip)
		if dir == (r3.Vec{}) {
			dir = baseDir
		}
	}
	points = append(points, NamedPoint{
		Name: name,
		Pos:  extend(c.Tip, dir, baseDist),
	})
	return points
}
