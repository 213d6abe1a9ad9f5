package filters

import "image"

// Filter is a raster effect applied to filtered graphics content.
//
// Filter is a sealed interface: the implementations in this package are
// the only ones.
type Filter interface {
	filterMarker()

	// Margin returns the padding in graphics units the filter needs
	// around its input on each side.
	Margin() float64

	// Apply runs the filter over src and returns the result. scale is
	// the rasterisation scale in pixels per graphics unit.
	Apply(src *image.RGBA, scale float64) *image.RGBA
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
