// Package deltachain seeds inverse-kinematics solves for segmented
// multi-joint mechanisms.
//
// Given an ordered chain of connection points (anchor positions measured
// along the mechanism, in meters in a shared world frame), the package
// computes an equally ordered chain of joint positions, one per
// connection point. Each interior joint is placed by solving a small
// geometric problem on its own: in the triangle formed by the candidate
// joint and two consecutive connection points, minimize the difference
// between the two incidence angles. The triangles are chained, each
// joint's search ray anchored at the joint committed before it, so the
// whole solve is a single strict left-to-right pass. See [SolveJoints].
//
// The result is a seed, not a solution: it gives a downstream
// inverse-kinematics solver a mechanically plausible starting chain. The
// package performs no collision avoidance and does not validate the
// joints against physical limits.
//
// # Building the input chain
//
// [SegmentChain.ConnectionPoints] assembles the connection-point chain
// from measured link positions: a base extension point, the midpoints
// between coupled segments, and an end-effector extension, mirroring how
// such chains are read off a segmented mechanism in practice. Any other
// source of ordered points works just as well; the solver only sees
// positions.
//
// # Handing off to a solver
//
// The joint chain comes out in the input's unit and frame. For solvers
// that expect millimeters with the base joint at the origin, use
// [VecMetersToMillimeters] and [RebaseAtOrigin].
package deltachain
