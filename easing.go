package vectsharp

import "fmt"

// Easing remaps a normalized interpolation position in [0, 1] to control
// perceived speed. Implementations must be monotonic with Ease(0) = 0 and
// Ease(1) = 1.
type Easing interface {
	Ease(position float64) float64
}

// LinearEasing is the identity easing.
type LinearEasing struct{}

// Ease implements Easing.
func (LinearEasing) Ease(position float64) float64 {
	return clamp01(position)
}

// SplineEasing is a cubic Bezier easing through (0,0), P1, P2, (1,1),
// the same model as CSS cubic-bezier timing functions.
type SplineEasing struct {
	P1, P2 Point
}

// NewSplineEasing creates a spline easing from two control points.
// Both control points must lie inside the unit square; coordinates
// outside [0, 1] are a construction error, never clamped.
func NewSplineEasing(p1, p2 Point) (SplineEasing, error) {
	for _, p := range []Point{p1, p2} {
		if p.X < 0 || p.X > 1 || p.Y < 0 || p.Y > 1 {
			return SplineEasing{}, fmt.Errorf("vectsharp: spline easing control point (%v, %v) outside [0, 1]", p.X, p.Y)
		}
	}
	return SplineEasing{P1: p1, P2: p2}, nil
}

// EaseIn is a spline easing that starts slowly.
func EaseIn() SplineEasing {
	e, _ := NewSplineEasing(Pt(0.42, 0), Pt(1, 1))
	return e
}

// EaseOut is a spline easing that ends slowly.
func EaseOut() SplineEasing {
	e, _ := NewSplineEasing(Pt(0, 0), Pt(0.58, 1))
	return e
}

// EaseInOut is a spline easing that starts and ends slowly.
func EaseInOut() SplineEasing {
	e, _ := NewSplineEasing(Pt(0.42, 0), Pt(0.58, 1))
	return e
}

// Ease implements Easing. The Bezier x(t) is inverted with the cubic
// root solver to find the curve parameter for the requested position,
// then y(t) is evaluated at that parameter.
func (e SplineEasing) Ease(position float64) float64 {
	position = clamp01(position)
	if position == 0 || position == 1 {
		return position
	}

	// x(t) = ax*t^3 + bx*t^2 + cx*t with the endpoint coefficients of
	// a Bezier anchored at (0,0) and (1,1).
	cx := 3 * e.P1.X
	bx := 3*(e.P2.X-e.P1.X) - cx
	ax := 1 - cx - bx

	roots := SolveCubicInUnitInterval(ax, bx, cx, -position)
	if len(roots) == 0 {
		return position
	}
	t := roots[0]

	cy := 3 * e.P1.Y
	by := 3*(e.P2.Y-e.P1.Y) - cy
	ay := 1 - cy - by
	return ((ay*t+by)*t + cy) * t
}
