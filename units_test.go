package deltachain

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestUnitConversions(t *testing.T) {
	diff(t, 1250.0, MetersToMillimeters(1.25))
	diff(t, 0.075, MillimetersToMeters(75))
	diff(t, r3.Vec{X: 100, Y: -200, Z: 1500}, VecMetersToMillimeters(r3.Vec{X: 0.1, Y: -0.2, Z: 1.5}))
	diff(t, r3.Vec{X: 0.5}, VecMillimetersToMeters(r3.Vec{X: 500}))
}

func TestRebaseAtOrigin(t *testing.T) {
	joints := []r3.Vec{
		{X: 0.25, Y: 0.5, Z: -0.25},
		{X: 0.25, Y: 0.5, Z: 0.75},
		{X: 0.75, Y: 0.25, Z: 1.25},
	}
	got := RebaseAtOrigin(joints)
	want := []r3.Vec{
		{},
		{Z: 1},
		{X: 0.5, Y: -0.25, Z: 1.5},
	}
	diff(t, want, got)

	// The input chain stays put.
	diff(t, r3.Vec{X: 0.25, Y: 0.5, Z: -0.25}, joints[0])

	if RebaseAtOrigin(nil) != nil {
		t.Error("empty chain should rebase to nil")
	}
}
