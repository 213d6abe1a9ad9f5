package animation

import (
	"math"

	vectsharp "github.com/arklumpus/VectSharp-sub002"
)

// minRadialPosition floors the interpolation position when deriving a
// radial gradient radius from a linear gradient, keeping the synthetic
// radius finite.
const minRadialPosition = 1e-4

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// blendBrush interpolates between two brushes. Like kinds blend
// continuously; a solid against a gradient blends the gradient's stop
// colours toward the solid colour; a linear against a radial gradient
// blends through a synthetic radial whose radius diverges as the
// position approaches the linear side.
func blendBrush(start, end vectsharp.Brush, t float64) vectsharp.Brush {
	if start == nil || end == nil {
		if t < 0.5 {
			return start
		}
		return end
	}

	switch s := start.(type) {
	case vectsharp.SolidBrush:
		switch e := end.(type) {
		case vectsharp.SolidBrush:
			return s.Lerp(e, t)
		case *vectsharp.LinearGradientBrush:
			return fadeLinearToward(e, s.Colour, 1-t)
		case *vectsharp.RadialGradientBrush:
			return fadeRadialToward(e, s.Colour, 1-t)
		}
	case *vectsharp.LinearGradientBrush:
		switch e := end.(type) {
		case vectsharp.SolidBrush:
			return fadeLinearToward(s, e.Colour, t)
		case *vectsharp.LinearGradientBrush:
			return &vectsharp.LinearGradientBrush{
				Start: s.Start.Lerp(e.Start, t),
				End:   s.End.Lerp(e.End, t),
				Stops: blendStops(s.Stops, e.Stops, t),
			}
		case *vectsharp.RadialGradientBrush:
			return blendLinearRadial(s, e, t)
		}
	case *vectsharp.RadialGradientBrush:
		switch e := end.(type) {
		case vectsharp.SolidBrush:
			return fadeRadialToward(s, e.Colour, t)
		case *vectsharp.RadialGradientBrush:
			return &vectsharp.RadialGradientBrush{
				FocalPoint: s.FocalPoint.Lerp(e.FocalPoint, t),
				Centre:     s.Centre.Lerp(e.Centre, t),
				Radius:     lerp(s.Radius, e.Radius, t),
				Stops:      blendStops(s.Stops, e.Stops, t),
			}
		case *vectsharp.LinearGradientBrush:
			return blendLinearRadial(e, s, 1-t)
		}
	}

	if t < 0.5 {
		return start
	}
	return end
}

// blendLinearRadial interpolates from a linear gradient at position 0
// to a radial gradient at position 1. The intermediate brush is a
// radial gradient whose geometry collapses onto the linear axis as the
// position approaches 0, with the radius growing as 1/position so the
// gradient locally approximates the linear transition.
func blendLinearRadial(lin *vectsharp.LinearGradientBrush, rad *vectsharp.RadialGradientBrush, t float64) vectsharp.Brush {
	if t <= 0 {
		return lin
	}
	if t >= 1 {
		return rad
	}
	return &vectsharp.RadialGradientBrush{
		FocalPoint: lin.Start.Lerp(rad.FocalPoint, t),
		Centre:     lin.Start.Lerp(rad.Centre, t),
		Radius:     rad.Radius / math.Max(t, minRadialPosition),
		Stops:      blendStops(lin.Stops, rad.Stops, t),
	}
}

// fadeLinearToward blends a linear gradient's stop colours toward a
// solid colour, keeping the gradient geometry.
func fadeLinearToward(g *vectsharp.LinearGradientBrush, c vectsharp.RGBA, t float64) vectsharp.Brush {
	stops := g.NormalisedStops()
	out := make([]vectsharp.ColorStop, len(stops))
	for i, s := range stops {
		out[i] = vectsharp.ColorStop{Offset: s.Offset, Colour: s.Colour.Lerp(c, t)}
	}
	return &vectsharp.LinearGradientBrush{Start: g.Start, End: g.End, Stops: out}
}

// fadeRadialToward blends a radial gradient's stop colours toward a
// solid colour, keeping the gradient geometry.
func fadeRadialToward(g *vectsharp.RadialGradientBrush, c vectsharp.RGBA, t float64) vectsharp.Brush {
	stops := g.NormalisedStops()
	out := make([]vectsharp.ColorStop, len(stops))
	for i, s := range stops {
		out[i] = vectsharp.ColorStop{Offset: s.Offset, Colour: s.Colour.Lerp(c, t)}
	}
	return &vectsharp.RadialGradientBrush{FocalPoint: g.FocalPoint, Centre: g.Centre, Radius: g.Radius, Stops: out}
}

// blendStops interpolates two stop lists pairwise. The shorter list is
// first padded to the longer one's length by inserting stops in its
// largest offset gaps, coloured as the average of their neighbours, so
// padding does not change the gradient it describes.
func blendStops(a, b []vectsharp.ColorStop, t float64) []vectsharp.ColorStop {
	sa := vectsharp.NormaliseStops(a)
	sb := vectsharp.NormaliseStops(b)
	if len(sa) == 0 {
		return sb
	}
	if len(sb) == 0 {
		return sa
	}
	for len(sa) < len(sb) {
		sa = padStops(sa)
	}
	for len(sb) < len(sa) {
		sb = padStops(sb)
	}

	out := make([]vectsharp.ColorStop, len(sa))
	for i := range sa {
		out[i] = vectsharp.ColorStop{
			Offset: lerp(sa[i].Offset, sb[i].Offset, t),
			Colour: sa[i].Colour.Lerp(sb[i].Colour, t),
		}
	}
	return out
}

// padStops inserts one stop into the largest offset gap of a sorted
// stop list. Single-stop lists are padded with a copy.
func padStops(stops []vectsharp.ColorStop) []vectsharp.ColorStop {
	if len(stops) == 1 {
		return []vectsharp.ColorStop{stops[0], stops[0]}
	}

	widest := 0
	widestGap := -1.0
	for i := 0; i < len(stops)-1; i++ {
		if gap := stops[i+1].Offset - stops[i].Offset; gap > widestGap {
			widestGap = gap
			widest = i
		}
	}

	inserted := vectsharp.ColorStop{
		Offset: (stops[widest].Offset + stops[widest+1].Offset) / 2,
		Colour: stops[widest].Colour.Lerp(stops[widest+1].Colour, 0.5),
	}

	out := make([]vectsharp.ColorStop, 0, len(stops)+1)
	out = append(out, stops[:widest+1]...)
	out = append(out, inserted)
	out = append(out, stops[widest+1:]...)
	return out
}

// blendStyle interpolates two draw styles. Width and dash blend
// continuously, brushes blend per blendBrush, caps and joins switch at
// the midpoint.
func blendStyle(a, b vectsharp.DrawStyle, t float64) vectsharp.DrawStyle {
	out := a
	if t >= 0.5 {
		out = b
	}
	out.Fill = blendBrush(a.Fill, b.Fill, t)
	out.Stroke = blendBrush(a.Stroke, b.Stroke, t)
	out.LineWidth = lerp(a.LineWidth, b.LineWidth, t)
	out.Dash = a.Dash.Lerp(b.Dash, t)
	return out
}
