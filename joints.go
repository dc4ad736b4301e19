package deltachain

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"
	"gonum.org/v1/gonum/spatial/r3"
)

// InsufficientPointsError reports a solve attempted on a connection-point
// chain that is too short to form a single triangle.
type InsufficientPointsError struct {
	// Points is the number of points that were supplied.
	Points int
}

func (err InsufficientPointsError) Error() string {
	return fmt.Sprintf("need at least 2 connection points to solve joints, got %d", err.Points)
}

// SolveOptions configures SolveJoints. The zero value is not useful; start
// from DefaultSolveOptions.
type SolveOptions struct {
	// FirstJointBounds brackets the Z offset of the first joint, in
	// meters. A chain whose geometry wants an offset outside the bracket
	// silently settles near a boundary instead of an angle-equalized
	// position.
	FirstJointBounds [2]float64
	// JointBounds brackets the ray parameter of every joint after the
	// first, in meters. The same boundary behavior applies.
	JointBounds [2]float64
	// Tolerance is the abscissa tolerance of the scalar minimizer. A
	// nonpositive value selects the default tolerance.
	Tolerance float64
	// Logger, if non-nil, receives a debug record for every committed
	// joint.
	Logger *log.Logger
}

var DefaultSolveOptions = SolveOptions{
	FirstJointBounds: [2]float64{-0.5, 0.5},
	JointBounds:      [2]float64{-2, 2},
	Tolerance:        1e-8,
}

func (opts SolveOptions) WithFirstJointBounds(lo, hi float64) SolveOptions {
	opts.FirstJointBounds = [2]float64{lo, hi}
	return opts
}

func (opts SolveOptions) WithJointBounds(lo, hi float64) SolveOptions {
	opts.JointBounds = [2]float64{lo, hi}
	return opts
}

func (opts SolveOptions) WithTolerance(tol float64) SolveOptions {
	opts.Tolerance = tol
	return opts
}

func (opts SolveOptions) WithLogger(l *log.Logger) SolveOptions {
	opts.Logger = l
	return opts
}

// SolveJoints turns an ordered chain of connection points into an ordered
// chain of joint positions, one joint per point.
//
// Each joint locally equalizes the two incidence angles of the triangle
// formed by the joint and two consecutive connection points. The first
// joint is constrained to the Z axis, the mechanism's central column,
// and found by minimizing the angle difference over the bounded offset
// z, giving (0, 0, z). Every following joint is constrained to the ray
// from the previously committed joint through its pivot point, with the
// ray parameter minimized over the bounded interval. The terminal joint
// is the last connection point itself, unchanged: the chain ends at the
// end effector by definition, not by optimization.
//
// Joints are committed strictly left to right. A joint depends only on
// the joint before it and the next two connection points, never on
// anything later in the chain, so the result for a shared prefix of two
// chains is identical.
//
// For an input of N ≥ 2 points the result has exactly N joints and its
// last element equals points[N-1]. Fewer than two points yield an
// InsufficientPointsError. The minimizer's best effort is always
// accepted, even when the residual angle difference is nonzero; this is
// a local per-triangle heuristic, not a full inverse-kinematics solve.
//
// SolveJoints never mutates points. A nil opts selects
// DefaultSolveOptions.
func SolveJoints(points []r3.Vec, opts *SolveOptions) ([]r3.Vec, error) {
	if opts == nil {
		opts = &DefaultSolveOptions
	}
	if len(points) < 2 {
		return nil, InsufficientPointsError{Points: len(points)}
	}
	o := *opts
	if o.Tolerance <= 0 {
		o.Tolerance = DefaultSolveOptions.Tolerance
	}
	joints := make([]r3.Vec, 0, len(points))
	j := firstJoint(points[0], points[1], o)
	joints = append(joints, j)
	if l := o.Logger; l != nil {
		l.Debug("committed joint", "index", 0, "x", j.X, "y", j.Y, "z", j.Z)
	}
	for i := 1; i < len(points)-1; i++ {
		j = nextJoint(j, points[i], points[i+1], o)
		joints = append(joints, j)
		if l := o.Logger; l != nil {
			l.Debug("committed joint", "index", i, "x", j.X, "y", j.Y, "z", j.Z)
		}
	}
	// The end effector is a joint by definition.
	joints = append(joints, points[len(points)-1])
	return joints, nil
}

// firstJoint places a joint on the Z axis at the offset that best
// equalizes the incidence angles of the triangle (p1, joint, p2).
func firstJoint(p1, p2 r3.Vec, opts SolveOptions) r3.Vec {
	objective := func(z float64) float64 {
		j := r3.Vec{Z: z}
		angle1 := angleBetween(r3.Sub(j, p1), r3.Sub(p2, p1))
		angle2 := angleBetween(r3.Sub(j, p2), r3.Sub(p1, p2))
		return math.Abs(angle1 - angle2)
	}
	z := MinimizeScalar(objective, opts.FirstJointBounds[0], opts.FirstJointBounds[1], opts.Tolerance)
	return r3.Vec{Z: z}
}

// nextJoint places a joint on the ray from the previously committed joint
// through the pivot point, equalizing the incidence angles at pivot and
// next. If prev and pivot coincide the ray has no direction and the joint
// stays at prev.
func nextJoint(prev, pivot, next r3.Vec, opts SolveOptions) r3.Vec {
	dir := direction(prev, pivot)
	objective := func(t float64) float64 {
		j := r3.Add(prev, r3.Scale(t, dir))
		angle1 := angleBetween(r3.Sub(j, next), r3.Sub(pivot, next))
		angle2 := angleBetween(r3.Sub(j, pivot), r3.Sub(next, pivot))
		return math.Abs(angle1 - angle2)
	}
	t := MinimizeScalar(objective, opts.JointBounds[0], opts.JointBounds[1], opts.Tolerance)
	return r3.Add(prev, r3.Scale(t, dir))
}
