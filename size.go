package vectsharp

// Size represents a width/height pair.
type Size struct {
	Width, Height float64
}

// Sz is a convenience function to create a Size.
func Sz(w, h float64) Size {
	return Size{Width: w, Height: h}
}

// Lerp performs linear interpolation between two sizes.
func (s Size) Lerp(o Size, t float64) Size {
	return Size{
		Width:  s.Width + (o.Width-s.Width)*t,
		Height: s.Height + (o.Height-s.Height)*t,
	}
}
