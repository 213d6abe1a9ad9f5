package vectsharp

import "math"

// SegmentType identifies the variant of a Segment.
type SegmentType int

const (
	SegmentMove SegmentType = iota
	SegmentLine
	SegmentClose
	SegmentCubicBezier
	SegmentArc
)

// PointTangent pairs a sample point with the unit tangent at that point.
// A NaN tangent marks a degenerate, non-drawable zero-length piece.
type PointTangent struct {
	Point   Point
	Tangent Point
}

// Segment is one unit of path geometry. It is a sealed union:
// MoveSegment, LineSegment, CloseSegment, CubicBezierSegment and
// ArcSegment are the only implementations.
//
// Every segment except the first in a figure is evaluated relative to an
// implicit previous point (the end point of the prior segment); segments
// do not store their own start point. The position arguments of PointAt
// and TangentAt are arc-length fractions in [0, 1]; positions outside
// that range extrapolate linearly along the boundary tangent.
type Segment interface {
	segmentMarker()

	// Type returns the segment variant.
	Type() SegmentType

	// Points returns the raw defining points (control and terminal
	// points, not arc-length samples). Nil for Close.
	Points() []Point

	// End returns the terminal point. Close has no terminal point of
	// its own (the figure start closes it) and returns the zero Point.
	End() Point

	// Measure returns the arc length of the segment.
	Measure(prev Point) float64

	// PointAt samples the point at an arc-length fraction.
	PointAt(prev Point, position float64) Point

	// TangentAt samples the unit tangent at an arc-length fraction.
	// Degenerate geometry yields the NaN sentinel.
	TangentAt(prev Point, position float64) Point

	// Linearise emits equal-arc-length line segments approximating the
	// segment, at most resolution units long each.
	Linearise(prev Point, resolution float64) []Segment

	// Flatten emits the points of an adaptive polyline approximation
	// whose perpendicular deviation from the true curve is bounded by
	// flatness. The previous point is not included.
	Flatten(prev Point, flatness float64) []Point

	// FlattenForOffset is Flatten with a subdivision step that also
	// accounts for the requested stroke offset distance, returning
	// tangents alongside points so a stroker never re-differentiates.
	FlattenForOffset(prev Point, offset, flatness float64) []PointTangent

	// Clone returns an independent copy of the segment.
	Clone() Segment
}

// nanPoint is the "no defined direction" tangent sentinel.
func nanPoint() Point {
	return Point{X: math.NaN(), Y: math.NaN()}
}

// MoveSegment starts a new figure at Point.
type MoveSegment struct {
	Point Point
}

func (*MoveSegment) segmentMarker() {}

func (*MoveSegment) Type() SegmentType { return SegmentMove }

func (s *MoveSegment) Points() []Point { return []Point{s.Point} }

func (s *MoveSegment) End() Point { return s.Point }

func (*MoveSegment) Measure(Point) float64 { return 0 }

func (s *MoveSegment) PointAt(Point, float64) Point { return s.Point }

func (*MoveSegment) TangentAt(Point, float64) Point { return nanPoint() }

func (s *MoveSegment) Linearise(Point, float64) []Segment {
	return []Segment{s.Clone()}
}

func (s *MoveSegment) Flatten(Point, float64) []Point {
	return []Point{s.Point}
}

func (s *MoveSegment) FlattenForOffset(Point, float64, float64) []PointTangent {
	return []PointTangent{{Point: s.Point, Tangent: nanPoint()}}
}

func (s *MoveSegment) Clone() Segment {
	return &MoveSegment{Point: s.Point}
}

// LineSegment draws a straight line to Point.
type LineSegment struct {
	Point Point
}

func (*LineSegment) segmentMarker() {}

func (*LineSegment) Type() SegmentType { return SegmentLine }

func (s *LineSegment) Points() []Point { return []Point{s.Point} }

func (s *LineSegment) End() Point { return s.Point }

func (s *LineSegment) Measure(prev Point) float64 {
	return prev.Distance(s.Point)
}

func (s *LineSegment) PointAt(prev Point, position float64) Point {
	// The affine form extrapolates on its own outside [0, 1].
	return prev.Lerp(s.Point, position)
}

func (s *LineSegment) TangentAt(prev Point, _ float64) Point {
	d := s.Point.Sub(prev)
	if d.Modulus() == 0 {
		return nanPoint()
	}
	return d.Normalize()
}

func (s *LineSegment) Linearise(prev Point, resolution float64) []Segment {
	return lineariseByPoint(s, prev, resolution)
}

func (s *LineSegment) Flatten(Point, float64) []Point {
	return []Point{s.Point}
}

func (s *LineSegment) FlattenForOffset(prev Point, _, _ float64) []PointTangent {
	return []PointTangent{{Point: s.Point, Tangent: s.TangentAt(prev, 1)}}
}

func (s *LineSegment) Clone() Segment {
	return &LineSegment{Point: s.Point}
}

// CloseSegment closes the current figure back to its start. The closing
// line itself belongs to the figure, which knows the start point; the
// segment in isolation has no geometry.
type CloseSegment struct{}

func (*CloseSegment) segmentMarker() {}

func (*CloseSegment) Type() SegmentType { return SegmentClose }

func (*CloseSegment) Points() []Point { return nil }

func (*CloseSegment) End() Point { return Point{} }

func (*CloseSegment) Measure(Point) float64 { return 0 }

func (*CloseSegment) PointAt(prev Point, _ float64) Point { return prev }

func (*CloseSegment) TangentAt(Point, float64) Point { return nanPoint() }

func (s *CloseSegment) Linearise(Point, float64) []Segment {
	return []Segment{s.Clone()}
}

func (*CloseSegment) Flatten(Point, float64) []Point { return nil }

func (*CloseSegment) FlattenForOffset(Point, float64, float64) []PointTangent {
	return nil
}

func (*CloseSegment) Clone() Segment { return &CloseSegment{} }

// lineariseByPoint emits ceil(length/resolution) equal-arc-length line
// segments sampled through the segment's own PointAt.
func lineariseByPoint(s Segment, prev Point, resolution float64) []Segment {
	length := s.Measure(prev)
	if length <= 0 || resolution <= 0 {
		return []Segment{&LineSegment{Point: s.End()}}
	}

	n := int(math.Ceil(length / resolution))
	out := make([]Segment, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, &LineSegment{Point: s.PointAt(prev, float64(i)/float64(n))})
	}
	return out
}
