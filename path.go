package vectsharp

import "math"

// FillRule determines which regions a path fills.
type FillRule int

const (
	FillRuleNonZero FillRule = iota
	FillRuleEvenOdd
)

// Figure is a maximal run of segments starting at a Move and ending at
// the next Move or at the path's end. A figure is closed iff its last
// segment is a Close.
type Figure struct {
	Segments []Segment
	Closed   bool
}

// Start returns the figure's starting point.
func (f Figure) Start() Point {
	if len(f.Segments) == 0 {
		return Point{}
	}
	return f.Segments[0].End()
}

// Length returns the figure's total arc length, including the implicit
// closing line of a closed figure.
func (f Figure) Length() float64 {
	start := f.Start()
	prev := start
	total := 0.0
	for _, seg := range f.Segments {
		if seg.Type() == SegmentClose {
			total += prev.Distance(start)
			prev = start
			continue
		}
		total += seg.Measure(prev)
		prev = seg.End()
	}
	return total
}

// Points returns the raw defining points of the figure (control and
// terminal points, not arc-length samples).
func (f Figure) Points() []Point {
	var out []Point
	for _, seg := range f.Segments {
		out = append(out, seg.Points()...)
	}
	return out
}

// Polyline samples the figure into points spaced at most resolution
// apart in arc length. The starting point is included; for a closed
// figure the samples of the closing edge are included but the repeated
// start point is not, so the result can be treated cyclically.
func (f Figure) Polyline(resolution float64) []Point {
	start := f.Start()
	out := []Point{start}
	prev := start
	for _, seg := range f.Segments[1:] {
		if seg.Type() == SegmentClose {
			closing := &LineSegment{Point: start}
			for _, ls := range closing.Linearise(prev, resolution) {
				out = append(out, ls.End())
			}
			// Drop the repeated start point.
			out = out[:len(out)-1]
			prev = start
			continue
		}
		for _, ls := range seg.Linearise(prev, resolution) {
			out = append(out, ls.End())
		}
		prev = seg.End()
	}
	return out
}

// GraphicsPath is an ordered sequence of segments forming one or more
// figures.
type GraphicsPath struct {
	segments []Segment
}

// NewGraphicsPath creates an empty path.
func NewGraphicsPath() *GraphicsPath {
	return &GraphicsPath{}
}

// Segments returns the underlying segment list.
func (p *GraphicsPath) Segments() []Segment {
	return p.segments
}

// currentPoint returns the end point of the last segment, resolving
// Close back to the current figure's start.
func (p *GraphicsPath) currentPoint() Point {
	start := Point{}
	prev := Point{}
	for _, seg := range p.segments {
		switch seg.Type() {
		case SegmentMove:
			start = seg.End()
			prev = start
		case SegmentClose:
			prev = start
		default:
			prev = seg.End()
		}
	}
	return prev
}

// ensureFigure inserts a Move at the origin when a drawing segment is
// appended to a path with no open figure.
func (p *GraphicsPath) ensureFigure() {
	if len(p.segments) == 0 {
		p.segments = append(p.segments, &MoveSegment{})
	}
}

// MoveTo starts a new figure at the given point.
func (p *GraphicsPath) MoveTo(pt Point) *GraphicsPath {
	p.segments = append(p.segments, &MoveSegment{Point: pt})
	return p
}

// LineTo draws a line to the given point.
func (p *GraphicsPath) LineTo(pt Point) *GraphicsPath {
	p.ensureFigure()
	p.segments = append(p.segments, &LineSegment{Point: pt})
	return p
}

// CubicBezierTo draws a cubic Bezier curve through two control points
// to the given end point.
func (p *GraphicsPath) CubicBezierTo(control1, control2, end Point) *GraphicsPath {
	p.ensureFigure()
	p.segments = append(p.segments, &CubicBezierSegment{Control1: control1, Control2: control2, Point: end})
	return p
}

// Arc draws a circular arc around centre from startAngle to endAngle
// (radians). If the path has no current point the figure starts at the
// arc's start point; otherwise the arc includes a straight approach
// from the current point.
func (p *GraphicsPath) Arc(centre Point, radius, startAngle, endAngle float64) *GraphicsPath {
	arc := &ArcSegment{Centre: centre, Radius: radius, StartAngle: startAngle, EndAngle: endAngle}
	if len(p.segments) == 0 {
		p.segments = append(p.segments, &MoveSegment{Point: arc.StartPoint()})
	}
	p.segments = append(p.segments, arc)
	return p
}

// Close closes the current figure back to its start.
func (p *GraphicsPath) Close() *GraphicsPath {
	p.ensureFigure()
	p.segments = append(p.segments, &CloseSegment{})
	return p
}

// Rectangle adds a closed rectangular figure.
func (p *GraphicsPath) Rectangle(r Rect) *GraphicsPath {
	p.MoveTo(r.Min)
	p.LineTo(Pt(r.Max.X, r.Min.Y))
	p.LineTo(r.Max)
	p.LineTo(Pt(r.Min.X, r.Max.Y))
	return p.Close()
}

// Circle adds a closed circular figure.
func (p *GraphicsPath) Circle(centre Point, radius float64) *GraphicsPath {
	p.Arc(centre, radius, 0, 2*math.Pi)
	return p.Close()
}

// Polygon adds a figure through the given vertices.
func (p *GraphicsPath) Polygon(vertices []Point, closed bool) *GraphicsPath {
	if len(vertices) == 0 {
		return p
	}
	p.MoveTo(vertices[0])
	for _, v := range vertices[1:] {
		p.LineTo(v)
	}
	if closed {
		p.Close()
	}
	return p
}

// SmoothSpline adds a smooth curve through the given points using
// Catmull-Rom tangents converted to cubic Beziers.
func (p *GraphicsPath) SmoothSpline(points []Point) *GraphicsPath {
	if len(points) == 0 {
		return p
	}
	p.MoveTo(points[0])
	if len(points) == 1 {
		return p
	}

	for i := 0; i < len(points)-1; i++ {
		p0 := points[max(i-1, 0)]
		p1 := points[i]
		p2 := points[i+1]
		p3 := points[min(i+2, len(points)-1)]

		c1 := p1.Add(p2.Sub(p0).Div(6))
		c2 := p2.Sub(p3.Sub(p1).Div(6))
		p.CubicBezierTo(c1, c2, p2)
	}
	return p
}

// Figures decomposes the path into its figures.
func (p *GraphicsPath) Figures() []Figure {
	var figures []Figure
	var current []Segment
	for _, seg := range p.segments {
		if seg.Type() == SegmentMove && len(current) > 0 {
			figures = append(figures, newFigure(current))
			current = nil
		}
		if len(current) == 0 && seg.Type() != SegmentMove {
			current = append(current, &MoveSegment{})
		}
		current = append(current, seg)
	}
	if len(current) > 0 {
		figures = append(figures, newFigure(current))
	}
	return figures
}

func newFigure(segments []Segment) Figure {
	closed := len(segments) > 0 && segments[len(segments)-1].Type() == SegmentClose
	return Figure{Segments: segments, Closed: closed}
}

// Length returns the total arc length of the path, including the
// implicit closing lines of closed figures.
func (p *GraphicsPath) Length() float64 {
	total := 0.0
	for _, f := range p.Figures() {
		total += f.Length()
	}
	return total
}

// PointAtRelative samples the point at a fraction of the path's total
// length. Fractions outside [0, 1] extrapolate along the boundary
// tangent of the first or last segment.
func (p *GraphicsPath) PointAtRelative(position float64) Point {
	pt, _ := p.sampleAtRelative(position)
	return pt
}

// TangentAtRelative samples the unit tangent at a fraction of the
// path's total length.
func (p *GraphicsPath) TangentAtRelative(position float64) Point {
	_, tan := p.sampleAtRelative(position)
	return tan
}

func (p *GraphicsPath) sampleAtRelative(position float64) (Point, Point) {
	total := p.Length()
	if total == 0 || len(p.segments) == 0 {
		return Point{}, nanPoint()
	}

	target := position * total
	walked := 0.0
	for _, f := range p.Figures() {
		start := f.Start()
		prev := start
		for _, seg := range f.Segments {
			var length float64
			eval := seg
			if seg.Type() == SegmentClose {
				eval = &LineSegment{Point: start}
			}
			length = eval.Measure(prev)

			if length > 0 {
				local := (target - walked) / length
				if local <= 1 || walked+length >= total {
					return eval.PointAt(prev, local), eval.TangentAt(prev, local)
				}
			}
			walked += length
			prev = eval.End()
		}
	}

	last := p.segments[len(p.segments)-1]
	return last.End(), nanPoint()
}

// Linearise resamples every segment into equal-arc-length lines spaced
// at most resolution apart.
func (p *GraphicsPath) Linearise(resolution float64) *GraphicsPath {
	out := NewGraphicsPath()
	prev := Point{}
	for _, seg := range p.segments {
		switch seg.Type() {
		case SegmentMove, SegmentClose:
			out.segments = append(out.segments, seg.Clone())
		default:
			out.segments = append(out.segments, seg.Linearise(prev, resolution)...)
		}
		prev = segmentEnd(seg, prev)
	}
	return out
}

// Flatten approximates every curve with an adaptive polyline whose
// deviation from the true curve is bounded by flatness.
func (p *GraphicsPath) Flatten(flatness float64) *GraphicsPath {
	out := NewGraphicsPath()
	prev := Point{}
	for _, seg := range p.segments {
		switch seg.Type() {
		case SegmentMove, SegmentClose:
			out.segments = append(out.segments, seg.Clone())
		default:
			for _, pt := range seg.Flatten(prev, flatness) {
				out.segments = append(out.segments, &LineSegment{Point: pt})
			}
		}
		prev = segmentEnd(seg, prev)
	}
	return out
}

// FlattenForOffset flattens each figure with offset-aware subdivision,
// returning (point, tangent) pairs per figure for a stroker.
func (p *GraphicsPath) FlattenForOffset(offset, flatness float64) [][]PointTangent {
	var out [][]PointTangent
	for _, f := range p.Figures() {
		start := f.Start()
		prev := start
		fig := []PointTangent{{Point: start, Tangent: nanPoint()}}
		for _, seg := range f.Segments[1:] {
			eval := seg
			if seg.Type() == SegmentClose {
				eval = &LineSegment{Point: start}
			}
			fig = append(fig, eval.FlattenForOffset(prev, offset, flatness)...)
			prev = eval.End()
		}
		out = append(out, fig)
	}
	return out
}

// ConvertArcsToBeziers returns a path with every arc replaced by its
// canonical cubic Bezier form.
func (p *GraphicsPath) ConvertArcsToBeziers() *GraphicsPath {
	out := NewGraphicsPath()
	prev := Point{}
	for _, seg := range p.segments {
		if arc, ok := seg.(*ArcSegment); ok {
			out.segments = append(out.segments, arc.ToBeziers(prev)...)
		} else {
			out.segments = append(out.segments, seg.Clone())
		}
		prev = segmentEnd(seg, prev)
	}
	return out
}

// Transform applies a point transformation to the whole path. Arcs are
// first converted to Beziers, because an arc is not closed under
// arbitrary point transforms.
func (p *GraphicsPath) Transform(fn func(Point) Point) *GraphicsPath {
	canonical := p.ConvertArcsToBeziers()
	out := NewGraphicsPath()
	for _, seg := range canonical.segments {
		switch s := seg.(type) {
		case *MoveSegment:
			out.segments = append(out.segments, &MoveSegment{Point: fn(s.Point)})
		case *LineSegment:
			out.segments = append(out.segments, &LineSegment{Point: fn(s.Point)})
		case *CubicBezierSegment:
			out.segments = append(out.segments, &CubicBezierSegment{
				Control1: fn(s.Control1),
				Control2: fn(s.Control2),
				Point:    fn(s.Point),
			})
		case *CloseSegment:
			out.segments = append(out.segments, &CloseSegment{})
		}
	}
	return out
}

// Bounds returns the tight axis-aligned bounding box of the path.
func (p *GraphicsPath) Bounds() Rect {
	canonical := p.ConvertArcsToBeziers()
	first := true
	var bounds Rect
	prev := Point{}

	include := func(pt Point) {
		r := NewRect(pt, pt)
		if first {
			bounds = r
			first = false
		} else {
			bounds = bounds.Union(r)
		}
	}

	for _, seg := range canonical.segments {
		switch s := seg.(type) {
		case *MoveSegment:
			include(s.Point)
		case *LineSegment:
			include(s.Point)
		case *CubicBezierSegment:
			include(s.Point)
			for _, t := range cubicExtrema(prev, s.Control1, s.Control2, s.Point) {
				include(s.eval(prev, t))
			}
		}
		prev = segmentEnd(seg, prev)
	}
	return bounds
}

// cubicExtrema returns the curve parameters in (0, 1) where either
// derivative component vanishes.
func cubicExtrema(p0, p1, p2, p3 Point) []float64 {
	d0 := p1.Sub(p0)
	d1 := p2.Sub(p1)
	d2 := p3.Sub(p2)

	var out []float64
	out = append(out, SolveQuadraticInUnitInterval(d0.X-2*d1.X+d2.X, 2*(d1.X-d0.X), d0.X)...)
	out = append(out, SolveQuadraticInUnitInterval(d0.Y-2*d1.Y+d2.Y, 2*(d1.Y-d0.Y), d0.Y)...)
	return out
}

// GetPoints returns the raw defining points of each figure.
func (p *GraphicsPath) GetPoints() [][]Point {
	figures := p.Figures()
	out := make([][]Point, len(figures))
	for i, f := range figures {
		out[i] = f.Points()
	}
	return out
}

// Clone returns a deep copy of the path.
func (p *GraphicsPath) Clone() *GraphicsPath {
	out := NewGraphicsPath()
	out.segments = make([]Segment, len(p.segments))
	for i, seg := range p.segments {
		out.segments[i] = seg.Clone()
	}
	return out
}

// segmentEnd resolves the point a segment leaves the pen at. Close
// keeps the previous point; resolving it back to the figure start is
// the caller's concern.
func segmentEnd(seg Segment, prev Point) Point {
	if seg.Type() == SegmentClose {
		return prev
	}
	return seg.End()
}
