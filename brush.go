package vectsharp

// Brush represents what to paint with.
// This is a sealed interface - only types in this package implement it.
//
// Supported brush types:
//   - SolidBrush: a single solid colour
//   - LinearGradientBrush: a colour transition along an axis
//   - RadialGradientBrush: a colour transition radiating from a focal point
type Brush interface {
	// brushMarker is an unexported method that seals this interface.
	brushMarker()

	// ColorAt returns the colour at the given coordinates.
	// For solid brushes this returns the same colour regardless of position.
	ColorAt(x, y float64) RGBA
}

// SolidBrush is a single-colour brush.
type SolidBrush struct {
	// Colour is the solid colour of this brush.
	Colour RGBA
}

func (SolidBrush) brushMarker() {}

// ColorAt implements Brush. Returns the solid colour regardless of position.
func (b SolidBrush) ColorAt(_, _ float64) RGBA {
	return b.Colour
}

// Solid creates a SolidBrush from an RGBA colour.
func Solid(c RGBA) SolidBrush {
	return SolidBrush{Colour: c}
}

// SolidRGB creates an opaque SolidBrush from RGB components (0-1 range).
func SolidRGB(r, g, b float64) SolidBrush {
	return SolidBrush{Colour: RGB(r, g, b)}
}

// SolidRGBA creates a SolidBrush from RGBA components (0-1 range).
func SolidRGBA(r, g, b, a float64) SolidBrush {
	return SolidBrush{Colour: NewRGBA(r, g, b, a)}
}

// WithAlpha returns a new SolidBrush with the specified alpha value.
// The RGB components are preserved.
func (b SolidBrush) WithAlpha(alpha float64) SolidBrush {
	return SolidBrush{Colour: b.Colour.WithAlpha(alpha)}
}

// Lerp performs linear interpolation between two solid brushes.
func (b SolidBrush) Lerp(other SolidBrush, t float64) SolidBrush {
	return SolidBrush{Colour: b.Colour.Lerp(other.Colour, t)}
}
