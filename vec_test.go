package deltachain

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestAngleBetween(t *testing.T) {
	tests := []struct {
		a, b r3.Vec
		want float64
	}{
		{r3.Vec{X: 1}, r3.Vec{Y: 1}, 90},
		{r3.Vec{X: 1}, r3.Vec{X: 3}, 0},
		{r3.Vec{X: 1}, r3.Vec{X: -2}, 180},
		{r3.Vec{X: 1, Y: 1}, r3.Vec{X: 1}, 45},
		{r3.Vec{Z: 0.25}, r3.Vec{X: 1, Z: 1}, 45},
	}
	for _, tt := range tests {
		if got := angleBetween(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("angleBetween(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestAngleBetweenZeroVector(t *testing.T) {
	if got := angleBetween(r3.Vec{}, r3.Vec{X: 1}); got != 0 {
		t.Errorf("zero operand: got %v, want 0", got)
	}
	if got := angleBetween(r3.Vec{}, r3.Vec{}); got != 0 {
		t.Errorf("both operands zero: got %v, want 0", got)
	}
}

// Parallel vectors of very different magnitudes can push the cosine ratio
// past 1 by rounding; the clamp keeps acos in its domain.
func TestAngleBetweenClamp(t *testing.T) {
	a := r3.Vec{X: 0.1, Y: 0.1, Z: 0.1}
	b := r3.Scale(1e9, a)
	if got := angleBetween(a, b); math.IsNaN(got) {
		t.Error("near-parallel vectors produced NaN")
	}
}

func TestDirection(t *testing.T) {
	got := direction(r3.Vec{X: 1, Y: 2, Z: 3}, r3.Vec{X: 1, Y: 2, Z: 5})
	diff(t, r3.Vec{Z: 1}, got)

	if got := direction(r3.Vec{X: 1}, r3.Vec{X: 1}); got != (r3.Vec{}) {
		t.Errorf("coincident points: got %v, want the zero vector", got)
	}
}

func TestMidpoint(t *testing.T) {
	got := midpoint(r3.Vec{X: -1, Z: 2}, r3.Vec{X: 3, Y: 4})
	diff(t, r3.Vec{X: 1, Y: 2, Z: 1}, got)
}

func TestExtend(t *testing.T) {
	got := extend(r3.Vec{Z: 1}, r3.Vec{X: 1}, 0.25)
	diff(t, r3.Vec{X: 0.25, Z: 1}, got)
}
