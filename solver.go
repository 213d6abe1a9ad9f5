package vectsharp

import "math"

// Polynomial root solvers used by curve inflection finding and by spline
// easing parameter inversion.

// SolveQuadratic finds real roots of a*x^2 + b*x + c = 0.
// Returns roots sorted in ascending order. If a is zero or nearly zero
// the equation is treated as linear.
func SolveQuadratic(a, b, c float64) []float64 {
	sc0 := c / a
	sc1 := b / a

	if !isFinite(sc0) || !isFinite(sc1) {
		// Coefficient a is zero or too small; solve b*x + c = 0.
		root := -c / b
		if isFinite(root) {
			return []float64{root}
		}
		if c == 0 && b == 0 {
			return []float64{0}
		}
		return nil
	}

	arg := sc1*sc1 - 4.0*sc0
	if !isFinite(arg) {
		// Discriminant overflowed; one root dominates at -sc1.
		root1 := -sc1
		root2 := sc0 / root1
		if !isFinite(root2) {
			return []float64{root1}
		}
		return sortPair(root1, root2)
	}

	if arg < 0 {
		return nil
	}
	if arg == 0 {
		return []float64{-0.5 * sc1}
	}

	// Numerically stable form avoiding cancellation.
	root1 := -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	root2 := sc0 / root1
	if !isFinite(root2) {
		return []float64{root1}
	}
	return sortPair(root1, root2)
}

// SolveCubic finds real roots of a*x^3 + b*x^2 + c*x + d = 0.
// Roots are not necessarily sorted. Uses the trigonometric method from
// Blinn's "How to Solve a Cubic Equation". Falls back to the quadratic
// solver when a is zero or nearly zero.
func SolveCubic(a, b, c, d float64) []float64 {
	const oneThird = 1.0 / 3.0
	aRecip := 1.0 / a

	c2 := b * (oneThird * aRecip)
	c1 := c * (oneThird * aRecip)
	c0 := d * aRecip

	if !isFinite(c2) || !isFinite(c1) || !isFinite(c0) {
		return SolveQuadratic(b, c, d)
	}

	d0 := (-c2)*c2 + c1
	d1 := (-c1)*c2 + c0
	d2 := c2*c0 - c1*c1

	disc := 4.0*d0*d2 - d1*d1
	de := (-2.0*c2)*d0 + d1

	switch {
	case disc < 0:
		sq := math.Sqrt(-0.25 * disc)
		r := -0.5 * de
		t1 := math.Cbrt(r+sq) + math.Cbrt(r-sq)
		return []float64{t1 - c2}
	case disc == 0:
		t1 := math.Copysign(math.Sqrt(-d0), de)
		return []float64{t1 - c2, -2.0*t1 - c2}
	}

	th := math.Atan2(math.Sqrt(disc), -de) * oneThird
	thSin, thCos := math.Sincos(th)
	ss3 := thSin * math.Sqrt(3.0)
	t := 2.0 * math.Sqrt(-d0)

	return []float64{
		t*thCos - c2,
		t*0.5*(-thCos+ss3) - c2,
		t*0.5*(-thCos-ss3) - c2,
	}
}

// SolveQuadraticInUnitInterval returns roots of a*x^2 + b*x + c = 0 that
// lie in [0, 1], clamping roots within epsilon of the boundaries.
func SolveQuadraticInUnitInterval(a, b, c float64) []float64 {
	return filterUnitInterval(SolveQuadratic(a, b, c))
}

// SolveCubicInUnitInterval returns roots of a*x^3 + b*x^2 + c*x + d = 0
// that lie in [0, 1], clamping roots within epsilon of the boundaries.
func SolveCubicInUnitInterval(a, b, c, d float64) []float64 {
	return filterUnitInterval(SolveCubic(a, b, c, d))
}

func filterUnitInterval(roots []float64) []float64 {
	if len(roots) == 0 {
		return nil
	}

	const eps = 1e-12
	result := make([]float64, 0, len(roots))
	for _, r := range roots {
		if r >= -eps && r <= 1.0+eps {
			result = append(result, math.Min(math.Max(r, 0), 1))
		}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

func sortPair(a, b float64) []float64 {
	if a > b {
		return []float64{b, a}
	}
	return []float64{a, b}
}

// isFinite returns true if x is neither infinite nor NaN.
func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
