package vectsharp

import (
	"image"
	"image/color"
	"testing"
)

func checkerboard(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.RGBA{A: 255}
			if (x+y)%2 == 0 {
				c = color.RGBA{R: 255, G: 255, B: 255, A: 255}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestRasterImageSize(t *testing.T) {
	r := NewRasterImage(checkerboard(8, 6), false)
	if r.Width() != 8 || r.Height() != 6 {
		t.Errorf("size %dx%d, want 8x6", r.Width(), r.Height())
	}

	var empty RasterImage
	if empty.Width() != 0 || empty.Height() != 0 {
		t.Error("nil-backed image should report zero size")
	}
}

func TestRasterImageResample(t *testing.T) {
	r := NewRasterImage(checkerboard(8, 8), false)

	got := r.Resample(4, 2)
	if got.Width() != 4 || got.Height() != 2 {
		t.Errorf("resampled size %dx%d, want 4x2", got.Width(), got.Height())
	}
	if got == r {
		t.Error("resampling should produce a new image")
	}
	if got.Interpolate != r.Interpolate {
		t.Error("resampling should keep the interpolation mode")
	}
}

func TestRasterImageResampleInvalidSize(t *testing.T) {
	r := NewRasterImage(checkerboard(4, 4), true)
	if got := r.Resample(0, 4); got != r {
		t.Error("zero-width resample should return the image unchanged")
	}
}

func TestRasterImageResampleNearestKeepsColours(t *testing.T) {
	// A uniform image stays uniform under either kernel.
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 10, G: 20, B: 30, A: 255})
		}
	}
	for _, interpolate := range []bool{false, true} {
		got := NewRasterImage(img, interpolate).Resample(8, 8)
		rgba := got.Image.(*image.RGBA)
		if c := rgba.RGBAAt(3, 3); c.R != 10 || c.G != 20 || c.B != 30 {
			t.Errorf("interpolate=%v: pixel %+v, want (10,20,30)", interpolate, c)
		}
	}
}
