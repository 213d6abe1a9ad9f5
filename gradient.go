package vectsharp

import (
	"math"
	"sort"
)

// ColorStop represents a colour at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Colour RGBA    // Colour at this position
}

// NormaliseStops returns the stops sorted by offset with duplicate
// offsets removed (the first stop at a given offset wins). The input
// slice is not modified.
func NormaliseStops(stops []ColorStop) []ColorStop {
	if len(stops) == 0 {
		return nil
	}

	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})

	out := sorted[:1]
	for _, s := range sorted[1:] {
		if s.Offset != out[len(out)-1].Offset {
			out = append(out, s)
		}
	}
	return out
}

// colorAtOffset returns the interpolated colour at a given offset.
// Offsets outside the stop range pad with the boundary colour.
func colorAtOffset(stops []ColorStop, t float64) RGBA {
	if len(stops) == 0 {
		return Transparent
	}
	if len(stops) == 1 {
		return stops[0].Colour
	}

	sorted := NormaliseStops(stops)
	t = clamp01(t)

	idx := sort.Search(len(sorted), func(i int) bool {
		return sorted[i].Offset >= t
	})
	if idx == 0 {
		return sorted[0].Colour
	}
	if idx >= len(sorted) {
		return sorted[len(sorted)-1].Colour
	}

	stop1 := sorted[idx-1]
	stop2 := sorted[idx]
	if stop2.Offset == stop1.Offset {
		return stop1.Colour
	}

	localT := (t - stop1.Offset) / (stop2.Offset - stop1.Offset)
	return stop1.Colour.Lerp(stop2.Colour, localT)
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// LinearGradientBrush represents a linear colour transition between two
// points. Points beyond the axis pad with the boundary colour.
type LinearGradientBrush struct {
	Start Point       // Start point of the gradient axis (offset 0)
	End   Point       // End point of the gradient axis (offset 1)
	Stops []ColorStop // Colour stops defining the gradient
}

// NewLinearGradientBrush creates a linear gradient from start to end.
func NewLinearGradientBrush(start, end Point, stops ...ColorStop) *LinearGradientBrush {
	return &LinearGradientBrush{Start: start, End: end, Stops: stops}
}

// AddColorStop adds a colour stop at the specified offset.
// Returns the gradient for method chaining.
func (g *LinearGradientBrush) AddColorStop(offset float64, c RGBA) *LinearGradientBrush {
	g.Stops = append(g.Stops, ColorStop{Offset: offset, Colour: c})
	return g
}

func (*LinearGradientBrush) brushMarker() {}

// NormalisedStops returns the ordered, offset-deduplicated stop list.
func (g *LinearGradientBrush) NormalisedStops() []ColorStop {
	return NormaliseStops(g.Stops)
}

// ColorAtOffset returns the gradient colour at an arbitrary offset.
func (g *LinearGradientBrush) ColorAtOffset(t float64) RGBA {
	return colorAtOffset(g.Stops, t)
}

// ColorAt returns the colour at the given point, projecting it onto the
// gradient axis.
func (g *LinearGradientBrush) ColorAt(x, y float64) RGBA {
	dx := g.End.X - g.Start.X
	dy := g.End.Y - g.Start.Y
	lengthSq := dx*dx + dy*dy
	if lengthSq == 0 {
		return firstStopColor(g.Stops)
	}

	// t = dot(P - Start, End - Start) / |End - Start|^2
	px := x - g.Start.X
	py := y - g.Start.Y
	t := (px*dx + py*dy) / lengthSq
	return colorAtOffset(g.Stops, t)
}

// RadialGradientBrush represents a colour transition radiating from a
// focal point within a circle defined by a centre and radius.
type RadialGradientBrush struct {
	FocalPoint Point       // Point where the gradient begins (offset 0)
	Centre     Point       // Centre of the gradient circle
	Radius     float64     // Radius of the circle where the gradient ends (offset 1)
	Stops      []ColorStop // Colour stops defining the gradient
}

// NewRadialGradientBrush creates a radial gradient. A focal point equal
// to the centre produces a symmetric gradient; an offset focal point
// produces a spotlight effect.
func NewRadialGradientBrush(focalPoint, centre Point, radius float64, stops ...ColorStop) *RadialGradientBrush {
	return &RadialGradientBrush{FocalPoint: focalPoint, Centre: centre, Radius: radius, Stops: stops}
}

// AddColorStop adds a colour stop at the specified offset.
// Returns the gradient for method chaining.
func (g *RadialGradientBrush) AddColorStop(offset float64, c RGBA) *RadialGradientBrush {
	g.Stops = append(g.Stops, ColorStop{Offset: offset, Colour: c})
	return g
}

func (*RadialGradientBrush) brushMarker() {}

// NormalisedStops returns the ordered, offset-deduplicated stop list.
func (g *RadialGradientBrush) NormalisedStops() []ColorStop {
	return NormaliseStops(g.Stops)
}

// ColorAtOffset returns the gradient colour at an arbitrary offset.
func (g *RadialGradientBrush) ColorAtOffset(t float64) RGBA {
	return colorAtOffset(g.Stops, t)
}

// ColorAt returns the colour at the given point.
func (g *RadialGradientBrush) ColorAt(x, y float64) RGBA {
	if g.Radius == 0 {
		return firstStopColor(g.Stops)
	}
	if g.FocalPoint == g.Centre {
		d := math.Hypot(x-g.Centre.X, y-g.Centre.Y)
		return colorAtOffset(g.Stops, d/g.Radius)
	}
	return colorAtOffset(g.Stops, g.focalOffset(x, y))
}

// focalOffset solves the ray-circle intersection for focal gradients:
// the offset is the ratio of the distance from the focal point to the
// point over the distance from the focal point to the circle along the
// same ray.
func (g *RadialGradientBrush) focalOffset(x, y float64) float64 {
	dx := x - g.FocalPoint.X
	dy := y - g.FocalPoint.Y
	fx := g.Centre.X - g.FocalPoint.X
	fy := g.Centre.Y - g.FocalPoint.Y

	a := dx*dx + dy*dy
	if a == 0 {
		return 0
	}
	b := -2 * (dx*fx + dy*fy)
	c := fx*fx + fy*fy - g.Radius*g.Radius

	disc := b*b - 4*a*c
	if disc < 0 {
		return 1
	}

	sqrtD := math.Sqrt(disc)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)

	var t float64
	switch {
	case t1 > 0 && t2 > 0:
		t = math.Min(t1, t2)
	case t1 > 0:
		t = t1
	case t2 > 0:
		t = t2
	default:
		return 0
	}

	pointDist := math.Sqrt(a)
	intersectDist := t * pointDist
	if intersectDist == 0 {
		return 0
	}
	return pointDist / intersectDist
}

// firstStopColor returns the lowest-offset stop colour, or Transparent
// when the gradient has no stops.
func firstStopColor(stops []ColorStop) RGBA {
	if len(stops) == 0 {
		return Transparent
	}
	return NormaliseStops(stops)[0].Colour
}
