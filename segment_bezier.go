package vectsharp

import (
	"math"
	"sort"
	"sync"
)

// Tolerances for the arc-length machinery.
const (
	// bezierLengthRelTol is the relative agreement required between two
	// successive sample-doubling length estimates.
	bezierLengthRelTol = 1e-4
	// bezierLengthAbsTol is the absolute floor below which estimates
	// always count as converged.
	bezierLengthAbsTol = 1e-5
	// bezierPositionTol is the tolerance on the fractional arc-length
	// residual of the bisection search in PointAt/TangentAt.
	bezierPositionTol = 1e-3
	// bezierMaxSamples caps the sample doubling for pathological curves.
	bezierMaxSamples = 1 << 15
)

// CubicBezierSegment draws a cubic Bezier curve through two control
// points to a terminal point. The arc length and the sample count at
// which the length estimate converged are computed lazily on the first
// Measure call and cached for every later query on the same instance;
// concurrent first touches race benignly (the computation is
// deterministic and the cell is written under a sync.Once).
type CubicBezierSegment struct {
	Control1, Control2, Point Point

	measureOnce sync.Once
	length      float64
	samples     int
	cumulative  []float64 // cumulative polyline length at i/samples
	measured    Point     // previous point the cache was computed against
}

func (*CubicBezierSegment) segmentMarker() {}

func (*CubicBezierSegment) Type() SegmentType { return SegmentCubicBezier }

func (s *CubicBezierSegment) Points() []Point {
	return []Point{s.Control1, s.Control2, s.Point}
}

func (s *CubicBezierSegment) End() Point { return s.Point }

func (s *CubicBezierSegment) Clone() Segment {
	return &CubicBezierSegment{Control1: s.Control1, Control2: s.Control2, Point: s.Point}
}

// eval evaluates the curve at parameter t.
func (s *CubicBezierSegment) eval(prev Point, t float64) Point {
	mt := 1 - t
	mt2 := mt * mt
	mt3 := mt2 * mt
	t2 := t * t
	t3 := t2 * t
	return Point{
		X: mt3*prev.X + 3*mt2*t*s.Control1.X + 3*mt*t2*s.Control2.X + t3*s.Point.X,
		Y: mt3*prev.Y + 3*mt2*t*s.Control1.Y + 3*mt*t2*s.Control2.Y + t3*s.Point.Y,
	}
}

// deriv evaluates the derivative of the curve at parameter t.
func (s *CubicBezierSegment) deriv(prev Point, t float64) Point {
	d0 := s.Control1.Sub(prev)
	d1 := s.Control2.Sub(s.Control1)
	d2 := s.Point.Sub(s.Control2)
	mt := 1 - t
	return Point{
		X: 3 * (d0.X*mt*mt + 2*d1.X*mt*t + d2.X*t*t),
		Y: 3 * (d0.Y*mt*mt + 2*d1.Y*mt*t + d2.Y*t*t),
	}
}

// Measure estimates the arc length by doubling the number of uniform
// evaluation samples until two successive estimates agree within the
// relative tolerance, then caches the converged estimate together with
// the cumulative length table at the converged sample count.
func (s *CubicBezierSegment) Measure(prev Point) float64 {
	s.measureOnce.Do(func() {
		s.measured = prev

		prevEst, n := s.convergedLength(prev)

		s.samples = n
		s.length = prevEst
		s.cumulative = make([]float64, n+1)
		p := prev
		acc := 0.0
		for i := 1; i <= n; i++ {
			q := s.eval(prev, float64(i)/float64(n))
			acc += p.Distance(q)
			s.cumulative[i] = acc
			p = q
		}
		// Re-anchor the cached length on the table so fractions are
		// exact with respect to it.
		s.length = acc
	})
	if prev != s.measured {
		// The cache is keyed to the first previous point seen; a
		// different one describes a different curve, so measure it
		// fresh without disturbing the cache.
		length, _ := s.convergedLength(prev)
		return length
	}
	return s.length
}

// convergedLength runs the sample-doubling estimate for an arbitrary
// previous point, returning the converged length and sample count.
func (s *CubicBezierSegment) convergedLength(prev Point) (float64, int) {
	n := 8
	prevEst := s.polylineLength(prev, n)
	for n < bezierMaxSamples {
		n *= 2
		est := s.polylineLength(prev, n)
		if math.Abs(est-prevEst) <= math.Max(bezierLengthRelTol*est, bezierLengthAbsTol) {
			prevEst = est
			break
		}
		prevEst = est
	}
	return prevEst, n
}

// polylineLength sums the chord lengths of n uniform samples.
func (s *CubicBezierSegment) polylineLength(prev Point, n int) float64 {
	total := 0.0
	p := prev
	for i := 1; i <= n; i++ {
		q := s.eval(prev, float64(i)/float64(n))
		total += p.Distance(q)
		p = q
	}
	return total
}

// fraction returns the fractional arc length accumulated up to
// parameter t, interpolating the cached cumulative table.
func (s *CubicBezierSegment) fraction(t float64) float64 {
	if s.length == 0 {
		return 0
	}
	x := t * float64(s.samples)
	i := int(x)
	if i >= s.samples {
		return 1
	}
	if i < 0 {
		return 0
	}
	lo := s.cumulative[i]
	hi := s.cumulative[i+1]
	return (lo + (hi-lo)*(x-float64(i))) / s.length
}

// parameterAt maps an arc-length fraction in (0, 1) to the curve
// parameter t via bisection over the cached sample table.
func (s *CubicBezierSegment) parameterAt(position float64) float64 {
	lo, hi := 0.0, 1.0
	mid := position
	for i := 0; i < 64; i++ {
		mid = (lo + hi) / 2
		f := s.fraction(mid)
		if math.Abs(f-position) <= bezierPositionTol {
			break
		}
		if f < position {
			lo = mid
		} else {
			hi = mid
		}
	}
	return mid
}

func (s *CubicBezierSegment) PointAt(prev Point, position float64) Point {
	length := s.Measure(prev)
	if length == 0 {
		return s.Point
	}

	switch {
	case position <= 0:
		tan := s.boundaryTangent(prev, 0)
		if tan.IsNaN() {
			return prev
		}
		return prev.Add(tan.Mul(position * length))
	case position >= 1:
		tan := s.boundaryTangent(prev, 1)
		if tan.IsNaN() {
			return s.Point
		}
		return s.Point.Add(tan.Mul((position - 1) * length))
	}

	return s.eval(prev, s.parameterAt(position))
}

func (s *CubicBezierSegment) TangentAt(prev Point, position float64) Point {
	length := s.Measure(prev)
	if length == 0 {
		return nanPoint()
	}

	t := clamp01(position)
	if position > 0 && position < 1 {
		t = s.parameterAt(position)
	}

	d := s.deriv(prev, t)
	if d.Modulus() > 0 {
		return d.Normalize()
	}
	// Zero derivative (coincident control points at an endpoint): walk
	// the parameter inward a little before giving up.
	for _, delta := range []float64{1e-3, 1e-2, 0.1} {
		probe := clamp01(t + math.Copysign(delta, 0.5-t))
		d = s.deriv(prev, probe)
		if d.Modulus() > 0 {
			return d.Normalize()
		}
	}
	return nanPoint()
}

// boundaryTangent is TangentAt at an exact endpoint, used for
// extrapolation outside [0, 1].
func (s *CubicBezierSegment) boundaryTangent(prev Point, t float64) Point {
	d := s.deriv(prev, t)
	if d.Modulus() > 0 {
		return d.Normalize()
	}
	// Fall back to the chord.
	chord := s.Point.Sub(prev)
	if chord.Modulus() > 0 {
		return chord.Normalize()
	}
	return nanPoint()
}

func (s *CubicBezierSegment) Linearise(prev Point, resolution float64) []Segment {
	return lineariseByPoint(s, prev, resolution)
}

// Inflections returns the curve parameters of the inflection points
// (up to 2), found by solving the characteristic quadratic of the
// curvature numerator.
func (s *CubicBezierSegment) Inflections(prev Point) []float64 {
	a := s.Control1.Sub(prev)
	b := s.Control2.Sub(s.Control1).Sub(a)
	c := s.Point.Sub(prev).Sub(s.Control2.Sub(s.Control1).Mul(3))

	roots := SolveQuadratic(b.Cross(c), a.Cross(c), a.Cross(b))

	var result []float64
	for _, t := range roots {
		if t > 1e-9 && t < 1-1e-9 {
			result = append(result, t)
		}
	}
	sort.Float64s(result)
	return result
}

// Flatten adaptively subdivides the curve until the perpendicular
// deviation of each chord from the true curve is within flatness. The
// curve is first split at its inflection points, because a
// curvature-based flatness test is unreliable across an inflection.
func (s *CubicBezierSegment) Flatten(prev Point, flatness float64) []Point {
	if prev == s.Control1 && prev == s.Control2 && prev == s.Point {
		// Fully degenerate curve: a single non-drawable point.
		return []Point{s.Point}
	}

	var out []Point
	for _, piece := range s.monotonicPieces(prev) {
		flattenCubic(piece, flatness, 0, &out)
	}
	return out
}

// FlattenForOffset flattens with a tighter subdivision criterion that
// bounds the error of a curve offset by the requested stroke distance,
// and returns tangents alongside the points.
func (s *CubicBezierSegment) FlattenForOffset(prev Point, offset, flatness float64) []PointTangent {
	if prev == s.Control1 && prev == s.Control2 && prev == s.Point {
		return []PointTangent{{Point: s.Point, Tangent: nanPoint()}}
	}

	var out []PointTangent
	for _, piece := range s.monotonicPieces(prev) {
		flattenCubicOffset(piece, math.Abs(offset), flatness, 0, &out)
	}
	return out
}

// monotonicPieces splits the curve at its inflection points.
func (s *CubicBezierSegment) monotonicPieces(prev Point) [][4]Point {
	whole := [4]Point{prev, s.Control1, s.Control2, s.Point}
	inflections := s.Inflections(prev)
	if len(inflections) == 0 {
		return [][4]Point{whole}
	}

	pieces := make([][4]Point, 0, len(inflections)+1)
	rest := whole
	t0 := 0.0
	for _, t := range inflections {
		// Remap the global parameter into the remaining piece.
		local := (t - t0) / (1 - t0)
		if math.IsNaN(local) || local <= 0 || local >= 1 {
			// Degenerate remap: fall back to the flat split ratio 1,
			// i.e. keep the remaining piece whole.
			continue
		}
		first, second := splitCubic(rest, local)
		pieces = append(pieces, first)
		rest = second
		t0 = t
	}
	return append(pieces, rest)
}

// splitCubic performs de Casteljau subdivision at parameter t.
func splitCubic(c [4]Point, t float64) (first, second [4]Point) {
	p01 := c[0].Lerp(c[1], t)
	p12 := c[1].Lerp(c[2], t)
	p23 := c[2].Lerp(c[3], t)
	p012 := p01.Lerp(p12, t)
	p123 := p12.Lerp(p23, t)
	mid := p012.Lerp(p123, t)

	first = [4]Point{c[0], p01, p012, mid}
	second = [4]Point{mid, p123, p23, c[3]}
	return first, second
}

const flattenMaxDepth = 24

// chordDeviation bounds the perpendicular distance of the curve from
// the chord by the distance of the control points from the chord.
func chordDeviation(c [4]Point) float64 {
	chord := c[3].Sub(c[0])
	length := chord.Modulus()
	if length == 0 {
		return math.Max(c[1].Distance(c[0]), c[2].Distance(c[0]))
	}
	dir := chord.Div(length)
	d1 := math.Abs(c[1].Sub(c[0]).Cross(dir))
	d2 := math.Abs(c[2].Sub(c[0]).Cross(dir))
	return math.Max(d1, d2)
}

func flattenCubic(c [4]Point, flatness float64, depth int, out *[]Point) {
	dev := chordDeviation(c)
	if math.IsNaN(dev) || dev <= flatness || depth >= flattenMaxDepth {
		*out = append(*out, c[3])
		return
	}
	first, second := splitCubic(c, 0.5)
	flattenCubic(first, flatness, depth+1, out)
	flattenCubic(second, flatness, depth+1, out)
}

func flattenCubicOffset(c [4]Point, offset, flatness float64, depth int, out *[]PointTangent) {
	dev := chordDeviation(c)

	// An offset curve sweeps offset * (1 - cos(dtheta/2)) further from
	// the chord when the tangent turns by dtheta across the piece, so
	// high-curvature pieces need tighter sampling.
	turn := tangentTurn(c)
	offsetErr := offset * (1 - math.Cos(turn/2))

	flatEnough := dev <= flatness && offsetErr <= flatness
	if math.IsNaN(dev) || math.IsNaN(offsetErr) {
		flatEnough = true
	}
	if flatEnough || depth >= flattenMaxDepth {
		*out = append(*out, PointTangent{Point: c[3], Tangent: cubicEndTangent(c)})
		return
	}
	first, second := splitCubic(c, 0.5)
	flattenCubicOffset(first, offset, flatness, depth+1, out)
	flattenCubicOffset(second, offset, flatness, depth+1, out)
}

// tangentTurn returns the angle between the tangents at the two ends of
// the piece.
func tangentTurn(c [4]Point) float64 {
	t0 := cubicStartTangent(c)
	t1 := cubicEndTangent(c)
	if t0.IsNaN() || t1.IsNaN() {
		return 0
	}
	dot := clampf(t0.Dot(t1), -1, 1)
	return math.Acos(dot)
}

func cubicStartTangent(c [4]Point) Point {
	for _, q := range []Point{c[1], c[2], c[3]} {
		d := q.Sub(c[0])
		if d.Modulus() > 0 {
			return d.Normalize()
		}
	}
	return nanPoint()
}

func cubicEndTangent(c [4]Point) Point {
	for _, q := range []Point{c[2], c[1], c[0]} {
		d := c[3].Sub(q)
		if d.Modulus() > 0 {
			return d.Normalize()
		}
	}
	return nanPoint()
}

func clampf(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
