package vectsharp

import "math"

// quarterCircleK is the control point distance (as a fraction of the
// radius) of the cubic Bezier approximation of a quarter circle.
const quarterCircleK = 0.55191496

// ArcSegment draws a circular arc from StartAngle to EndAngle (radians)
// around Centre. When the previous point differs from the arc's own
// start point, the segment includes a straight approach from the
// previous point to the arc start.
type ArcSegment struct {
	Centre               Point
	Radius               float64
	StartAngle, EndAngle float64
}

func (*ArcSegment) segmentMarker() {}

func (*ArcSegment) Type() SegmentType { return SegmentArc }

func (s *ArcSegment) Points() []Point {
	return []Point{s.StartPoint(), s.End()}
}

// StartPoint returns the point where the arc itself begins.
func (s *ArcSegment) StartPoint() Point {
	return s.pointAtAngle(s.StartAngle)
}

func (s *ArcSegment) End() Point {
	return s.pointAtAngle(s.EndAngle)
}

func (s *ArcSegment) pointAtAngle(angle float64) Point {
	return Point{
		X: s.Centre.X + s.Radius*math.Cos(angle),
		Y: s.Centre.Y + s.Radius*math.Sin(angle),
	}
}

// tangentAtAngle returns the unit tangent along the sweep direction.
func (s *ArcSegment) tangentAtAngle(angle float64) Point {
	t := Point{X: -math.Sin(angle), Y: math.Cos(angle)}
	if s.EndAngle < s.StartAngle {
		return t.Mul(-1)
	}
	return t
}

func (s *ArcSegment) Clone() Segment {
	return &ArcSegment{Centre: s.Centre, Radius: s.Radius, StartAngle: s.StartAngle, EndAngle: s.EndAngle}
}

// Measure returns the arc length plus the length of the straight
// approach from the previous point to the arc start.
func (s *ArcSegment) Measure(prev Point) float64 {
	return s.Radius*math.Abs(s.EndAngle-s.StartAngle) + prev.Distance(s.StartPoint())
}

// preArcFraction returns the fraction of the total length taken up by
// the straight approach.
func (s *ArcSegment) preArcFraction(prev Point) float64 {
	total := s.Measure(prev)
	if total == 0 {
		return 0
	}
	return prev.Distance(s.StartPoint()) / total
}

// PointAt splits the position between the straight approach and the arc
// proportionally to their lengths.
//
// The on-arc remapping deliberately computes
// position - preArc/(1-preArc) rather than the parenthesised quotient;
// this reproduces the observed behaviour of the system this model is
// drawn from and is pinned by a characterization test. The two agree
// whenever the previous point lies on the arc start (preArc == 0).
func (s *ArcSegment) PointAt(prev Point, position float64) Point {
	total := s.Measure(prev)
	if total == 0 {
		return s.End()
	}

	start := s.StartPoint()
	preArc := s.preArcFraction(prev)

	switch {
	case position < 0:
		tan := s.approachTangent(prev)
		if tan.IsNaN() {
			return prev
		}
		return prev.Add(tan.Mul(position * total))
	case position > 1:
		return s.End().Add(s.tangentAtAngle(s.EndAngle).Mul((position - 1) * total))
	}

	if preArc > 0 && position < preArc {
		return prev.Lerp(start, position/preArc)
	}

	relPos := position
	if preArc < 1 {
		relPos = position - preArc/(1-preArc)
	}
	angle := s.StartAngle + (s.EndAngle-s.StartAngle)*relPos
	return s.pointAtAngle(angle)
}

// TangentAt mirrors the PointAt position split.
func (s *ArcSegment) TangentAt(prev Point, position float64) Point {
	total := s.Measure(prev)
	if total == 0 {
		return nanPoint()
	}

	preArc := s.preArcFraction(prev)

	if position < 0 || (preArc > 0 && position < preArc) {
		tan := s.approachTangent(prev)
		if !tan.IsNaN() {
			return tan
		}
		return s.tangentAtAngle(s.StartAngle)
	}
	if position > 1 {
		return s.tangentAtAngle(s.EndAngle)
	}

	relPos := position
	if preArc < 1 {
		relPos = position - preArc/(1-preArc)
	}
	return s.tangentAtAngle(s.StartAngle + (s.EndAngle-s.StartAngle)*relPos)
}

// approachTangent is the direction of the straight approach, or the arc
// start tangent when there is no approach.
func (s *ArcSegment) approachTangent(prev Point) Point {
	d := s.StartPoint().Sub(prev)
	if d.Modulus() > 0 {
		return d.Normalize()
	}
	return s.tangentAtAngle(s.StartAngle)
}

// ToBeziers converts the arc to its canonical renderer-agnostic form: a
// straight approach (when needed) followed by one cubic Bezier per
// quarter-circle or smaller sweep. The control point distance is
// quarterCircleK scaled by each piece's share of a quarter turn, so an
// exact 90 degree piece uses the constant itself.
func (s *ArcSegment) ToBeziers(prev Point) []Segment {
	var out []Segment
	start := s.StartPoint()
	if prev.Distance(start) > 0 {
		out = append(out, &LineSegment{Point: start})
	}

	sweep := s.EndAngle - s.StartAngle
	if sweep == 0 || s.Radius == 0 {
		return append(out, &LineSegment{Point: s.End()})
	}

	n := int(math.Ceil(2 * math.Abs(sweep) / math.Pi))
	if n < 1 {
		n = 1
	}
	step := sweep / float64(n)
	k := quarterCircleK * step / (math.Pi / 2)

	for i := 0; i < n; i++ {
		a1 := s.StartAngle + float64(i)*step
		a2 := a1 + step

		p0 := s.pointAtAngle(a1)
		p3 := s.pointAtAngle(a2)
		c1 := Point{
			X: p0.X - k*s.Radius*math.Sin(a1),
			Y: p0.Y + k*s.Radius*math.Cos(a1),
		}
		c2 := Point{
			X: p3.X + k*s.Radius*math.Sin(a2),
			Y: p3.Y - k*s.Radius*math.Cos(a2),
		}
		out = append(out, &CubicBezierSegment{Control1: c1, Control2: c2, Point: p3})
	}
	return out
}

func (s *ArcSegment) Linearise(prev Point, resolution float64) []Segment {
	return lineariseByPoint(s, prev, resolution)
}

func (s *ArcSegment) Flatten(prev Point, flatness float64) []Point {
	var out []Point
	p := prev
	for _, seg := range s.ToBeziers(prev) {
		out = append(out, seg.Flatten(p, flatness)...)
		p = seg.End()
	}
	return out
}

func (s *ArcSegment) FlattenForOffset(prev Point, offset, flatness float64) []PointTangent {
	var out []PointTangent
	p := prev
	for _, seg := range s.ToBeziers(prev) {
		out = append(out, seg.FlattenForOffset(p, offset, flatness)...)
		p = seg.End()
	}
	return out
}
