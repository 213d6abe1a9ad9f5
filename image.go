package vectsharp

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"golang.org/x/image/draw"
)

// RasterImage embeds a pixel image in a vector scene. Interpolate
// selects smooth resampling when the image is drawn at a size other
// than its native one.
type RasterImage struct {
	Image       image.Image
	Interpolate bool
}

// NewRasterImage wraps a decoded image.
func NewRasterImage(img image.Image, interpolate bool) *RasterImage {
	return &RasterImage{Image: img, Interpolate: interpolate}
}

// RasterImageFromFile loads a PNG image from disk.
func RasterImageFromFile(path string, interpolate bool) (*RasterImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("vectsharp: opening image: %w", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("vectsharp: decoding image: %w", err)
	}
	return NewRasterImage(img, interpolate), nil
}

// Width returns the pixel width of the image.
func (r *RasterImage) Width() int {
	if r.Image == nil {
		return 0
	}
	return r.Image.Bounds().Dx()
}

// Height returns the pixel height of the image.
func (r *RasterImage) Height() int {
	if r.Image == nil {
		return 0
	}
	return r.Image.Bounds().Dy()
}

// Resample returns a copy of the image scaled to the given pixel size.
// With Interpolate set the Catmull-Rom kernel is used, otherwise
// nearest neighbour.
func (r *RasterImage) Resample(width, height int) *RasterImage {
	if r.Image == nil || width <= 0 || height <= 0 {
		return r
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	var scaler draw.Scaler = draw.NearestNeighbor
	if r.Interpolate {
		scaler = draw.CatmullRom
	}
	scaler.Scale(dst, dst.Bounds(), r.Image, r.Image.Bounds(), draw.Over, nil)
	return &RasterImage{Image: dst, Interpolate: r.Interpolate}
}
