package animation

import (
	"math"

	vectsharp "github.com/arklumpus/VectSharp-sub002"
)

// pathMorph holds the precomputed correspondence between the figures of
// two paths. When the two paths share an identical segment-type
// sequence, intermediate paths blend each segment's defining points
// directly; otherwise each figure pair is resampled to the same point
// count and rotationally aligned, so producing an intermediate path is
// a single pass of point interpolation.
type pathMorph struct {
	// segs holds the segment-by-segment fast path; nil when the paths
	// need figure correspondence.
	segs [2][]vectsharp.Segment

	figures []figureMorph
}

type figureMorph struct {
	start, end             []vectsharp.Point
	startClosed, endClosed bool
}

// morphFigure pairs a real figure with its centroid for matching.
type morphFigure struct {
	figure   vectsharp.Figure
	centroid vectsharp.Point
	length   float64
}

// newPathMorph builds the correspondence between two paths. resolution
// is the arc-length sampling step in graphics units.
func newPathMorph(start, end *vectsharp.GraphicsPath, resolution float64) *pathMorph {
	if resolution <= 0 {
		resolution = 1
	}

	// Arcs blend poorly parameter-wise; work on the cubic canonical form.
	start = start.ConvertArcsToBeziers()
	end = end.ConvertArcsToBeziers()

	if sameSegmentTypes(start.Segments(), end.Segments()) {
		return &pathMorph{segs: [2][]vectsharp.Segment{start.Segments(), end.Segments()}}
	}

	startFigs := collectFigures(start)
	endFigs := collectFigures(end)

	pairs := matchFigures(startFigs, endFigs)

	morph := &pathMorph{}
	for _, pair := range pairs {
		fm := alignFigures(pair[0], pair[1], resolution)
		morph.figures = append(morph.figures, fm)
	}
	return morph
}

// sameSegmentTypes reports whether two segment lists have the same
// variants in the same order.
func sameSegmentTypes(a, b []vectsharp.Segment) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Type() != b[i].Type() {
			return false
		}
	}
	return len(a) > 0
}

func collectFigures(p *vectsharp.GraphicsPath) []morphFigure {
	var out []morphFigure
	for _, f := range p.Figures() {
		pts := f.Points()
		out = append(out, morphFigure{
			figure:   f,
			centroid: centroid(pts),
			length:   f.Length(),
		})
	}
	return out
}

func centroid(pts []vectsharp.Point) vectsharp.Point {
	if len(pts) == 0 {
		return vectsharp.Point{}
	}
	var sum vectsharp.Point
	for _, p := range pts {
		sum = sum.Add(p)
	}
	return sum.Div(float64(len(pts)))
}

// matchFigures pairs figures across the two sides greedily by centroid
// distance. Sides with more figures than the other get degenerate
// partners: point-figures collapsed onto their own centroid, so extra
// figures grow out of or shrink into a point.
func matchFigures(start, end []morphFigure) [][2]morphFigure {
	used := make([]bool, len(end))
	var pairs [][2]morphFigure

	matchedStart := make([]bool, len(start))
	for range start {
		bestI, bestJ := -1, -1
		bestDist := math.Inf(1)
		for i, sf := range start {
			if matchedStart[i] {
				continue
			}
			for j, ef := range end {
				if used[j] {
					continue
				}
				if d := sf.centroid.Distance(ef.centroid); d < bestDist {
					bestDist = d
					bestI, bestJ = i, j
				}
			}
		}
		if bestI < 0 {
			break
		}
		matchedStart[bestI] = true
		used[bestJ] = true
		pairs = append(pairs, [2]morphFigure{start[bestI], end[bestJ]})
	}

	for i, sf := range start {
		if !matchedStart[i] {
			pairs = append(pairs, [2]morphFigure{sf, degenerateFigure(sf)})
		}
	}
	for j, ef := range end {
		if !used[j] {
			pairs = append(pairs, [2]morphFigure{degenerateFigure(ef), ef})
		}
	}
	return pairs
}

// degenerateFigure builds a point-figure at the centroid of an
// unmatched figure, closed iff the original is closed.
func degenerateFigure(of morphFigure) morphFigure {
	c := of.centroid
	segs := []vectsharp.Segment{
		&vectsharp.MoveSegment{Point: c},
		&vectsharp.LineSegment{Point: c},
	}
	if of.figure.Closed {
		segs = append(segs, &vectsharp.CloseSegment{})
	}
	return morphFigure{
		figure:   vectsharp.Figure{Segments: segs, Closed: of.figure.Closed},
		centroid: c,
		length:   0,
	}
}

// alignFigures resamples both figures of a pair to the same point count
// and rotates closed pairs into the alignment with the least total
// squared point distance.
func alignFigures(sf, ef morphFigure, resolution float64) figureMorph {
	maxLength := math.Max(sf.length, ef.length)

	// Scale each figure's sampling step by its share of the longer
	// length, so both sides produce comparable initial counts.
	sPoly := samplePolyline(sf, maxLength, resolution)
	ePoly := samplePolyline(ef, maxLength, resolution)

	n := int(math.Ceil(maxLength / resolution))
	if n < len(sPoly) {
		n = len(sPoly)
	}
	if n < len(ePoly) {
		n = len(ePoly)
	}
	if n < 2 {
		n = 2
	}

	sPoly = resampleTo(sPoly, n, sf.figure.Closed)
	ePoly = resampleTo(ePoly, n, ef.figure.Closed)

	if sf.figure.Closed && ef.figure.Closed {
		ePoly = rotateForBestFit(sPoly, ePoly)
	}

	return figureMorph{
		start:       sPoly,
		end:         ePoly,
		startClosed: sf.figure.Closed,
		endClosed:   ef.figure.Closed,
	}
}

func samplePolyline(f morphFigure, maxLength, resolution float64) []vectsharp.Point {
	if f.length <= 0 {
		// Degenerate figure: a pair of coincident points.
		return []vectsharp.Point{f.centroid, f.centroid}
	}
	step := resolution
	if maxLength > 0 {
		// Shorter figures sample proportionally finer so both sides of
		// a pair end up with comparable counts.
		step = f.length / maxLength * resolution
	}
	if step <= 0 {
		step = resolution
	}
	return f.figure.Polyline(step)
}

// resampleTo grows a polyline to exactly n points by repeatedly
// bisecting its longest edge. For closed polylines the edge from the
// last point back to the first participates.
func resampleTo(pts []vectsharp.Point, n int, closed bool) []vectsharp.Point {
	out := make([]vectsharp.Point, len(pts))
	copy(out, pts)

	for len(out) < n {
		longest := 0
		longestLen := -1.0
		edges := len(out) - 1
		if closed {
			edges = len(out)
		}
		for i := 0; i < edges; i++ {
			next := (i + 1) % len(out)
			if d := out[i].Distance(out[next]); d > longestLen {
				longestLen = d
				longest = i
			}
		}

		next := (longest + 1) % len(out)
		mid := out[longest].Lerp(out[next], 0.5)
		out = append(out, vectsharp.Point{})
		copy(out[longest+2:], out[longest+1:])
		out[longest+1] = mid
	}
	return out[:n]
}

// rotateForBestFit returns the cyclic rotation of end that minimises
// the total squared distance to start, tried by brute force over all
// offsets.
func rotateForBestFit(start, end []vectsharp.Point) []vectsharp.Point {
	n := len(end)
	bestShift := 0
	bestCost := math.Inf(1)
	for shift := 0; shift < n; shift++ {
		cost := 0.0
		for k := 0; k < n; k++ {
			d := start[k].Sub(end[(k+shift)%n])
			cost += d.Dot(d)
			if cost >= bestCost {
				break
			}
		}
		if cost < bestCost {
			bestCost = cost
			bestShift = shift
		}
	}
	if bestShift == 0 {
		return end
	}
	out := make([]vectsharp.Point, n)
	for k := 0; k < n; k++ {
		out[k] = end[(k+bestShift)%n]
	}
	return out
}

// at builds the intermediate path at the given position: blended
// segments when the paths are isomorphic, polyline figures through the
// interpolated sample points otherwise.
func (m *pathMorph) at(pos float64) *vectsharp.GraphicsPath {
	out := vectsharp.NewGraphicsPath()

	if m.segs[0] != nil {
		for i, s := range m.segs[0] {
			appendBlendedSegment(out, s, m.segs[1][i], pos)
		}
		return out
	}

	for _, fm := range m.figures {
		// A pair with mismatched winding closes on both sides, so the
		// point counts stay equal through the blend.
		closed := fm.startClosed || fm.endClosed

		for i := range fm.start {
			p := fm.start[i].Lerp(fm.end[i], pos)
			if i == 0 {
				out.MoveTo(p)
			} else {
				out.LineTo(p)
			}
		}
		if closed {
			out.Close()
		}
	}
	return out
}

// appendBlendedSegment appends the point-wise blend of two segments of
// the same variant.
func appendBlendedSegment(p *vectsharp.GraphicsPath, s, e vectsharp.Segment, pos float64) {
	switch sv := s.(type) {
	case *vectsharp.MoveSegment:
		p.MoveTo(sv.Point.Lerp(e.(*vectsharp.MoveSegment).Point, pos))
	case *vectsharp.LineSegment:
		p.LineTo(sv.Point.Lerp(e.(*vectsharp.LineSegment).Point, pos))
	case *vectsharp.CubicBezierSegment:
		ev := e.(*vectsharp.CubicBezierSegment)
		p.CubicBezierTo(
			sv.Control1.Lerp(ev.Control1, pos),
			sv.Control2.Lerp(ev.Control2, pos),
			sv.Point.Lerp(ev.Point, pos),
		)
	case *vectsharp.CloseSegment:
		p.Close()
	}
}
