package vectsharp

// LineCap is the shape of line endpoints.
type LineCap int

const (
	LineCapButt LineCap = iota
	LineCapRound
	LineCapSquare
)

// LineJoin is the shape of line joins.
type LineJoin int

const (
	LineJoinMiter LineJoin = iota
	LineJoinRound
	LineJoinBevel
)

// LineDash describes a two-phase dash pattern. The zero value is a
// solid line.
type LineDash struct {
	// UnitsOn is the length of the painted part of the pattern.
	UnitsOn float64
	// UnitsOff is the length of the unpainted part of the pattern.
	UnitsOff float64
	// Phase is the offset into the pattern at the start of the stroke.
	Phase float64
}

// IsSolid reports whether the dash pattern paints a solid line.
func (d LineDash) IsSolid() bool {
	return d.UnitsOn == 0 && d.UnitsOff == 0
}

// Lerp performs component-wise linear interpolation between two dash
// patterns.
func (d LineDash) Lerp(o LineDash, t float64) LineDash {
	return LineDash{
		UnitsOn:  d.UnitsOn + (o.UnitsOn-d.UnitsOn)*t,
		UnitsOff: d.UnitsOff + (o.UnitsOff-d.UnitsOff)*t,
		Phase:    d.Phase + (o.Phase-d.Phase)*t,
	}
}

// DrawStyle carries the paint state shared by path, rectangle and text
// actions. A nil Fill or Stroke brush means the corresponding operation
// does not apply.
type DrawStyle struct {
	Fill      Brush
	Stroke    Brush
	LineWidth float64
	Cap       LineCap
	Join      LineJoin
	Dash      LineDash
}

// DefaultStroke returns the paint state for a plain 1-unit stroke.
func DefaultStroke(brush Brush) DrawStyle {
	return DrawStyle{
		Stroke:    brush,
		LineWidth: 1,
		Cap:       LineCapButt,
		Join:      LineJoinMiter,
	}
}
