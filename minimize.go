package deltachain

import "math"

// invPhi is 1/φ, the interval reduction factor of golden-section search.
const invPhi = 0.6180339887498949

// MinimizeScalar finds an approximate minimizer of f over the closed
// interval [a, b] using golden-section search.
//
// The method is derivative-free and maintains a bracket that shrinks by the
// constant factor 1/φ per function evaluation, so the number of evaluations
// is logarithmic in (b-a)/tol: a few dozen for the intervals and
// tolerances the joint solver uses. The returned abscissa is within tol of
// a local minimizer when f is unimodal on [a, b]. For other functions the
// result is still the best bracket found: some local minimizer, or a value
// near a boundary when f keeps decreasing toward it. The caller always
// accepts the result; there is no convergence failure.
//
// The bounds may be given in either order. tol must be positive.
func MinimizeScalar(f func(float64) float64, a, b, tol float64) float64 {
	if tol <= 0 {
		panic("tolerance must be positive")
	}
	if b < a {
		a, b = b, a
	}
	h := b - a
	if h <= tol {
		return 0.5 * (a + b)
	}
	n := int(math.Ceil(math.Log(tol/h) / math.Log(invPhi)))
	c := b - invPhi*h
	d := a + invPhi*h
	yc := f(c)
	yd := f(d)
	for i := 0; i < n; i++ {
		if yc < yd {
			b, d, yd = d, c, yc
			h = b - a
			c = b - invPhi*h
			yc = f(c)
		} else {
			a, c, yc = c, d, yd
			h = b - a
			d = a + invPhi*h
			yd = f(d)
		}
	}
	if yc < yd {
		return 0.5 * (a + d)
	}
	return 0.5 * (c + b)
}
