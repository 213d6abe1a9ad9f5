package filters

import "image"

// ConvolutionFilter convolves its input with an arbitrary kernel. The
// kernel must be rectangular with odd dimensions.
type ConvolutionFilter struct {
	Kernel [][]float64

	// Normalise divides each output sample by the kernel sum.
	Normalise bool

	// Scale multiplies and Bias offsets each output sample after
	// normalisation.
	Scale float64
	Bias  float64

	// PreserveAlpha keeps the source alpha channel instead of
	// convolving it.
	PreserveAlpha bool
}

// NewConvolutionFilter creates a normalised convolution filter with
// unit scale.
func NewConvolutionFilter(kernel [][]float64) *ConvolutionFilter {
	return &ConvolutionFilter{Kernel: kernel, Normalise: true, Scale: 1}
}

func (*ConvolutionFilter) filterMarker() {}

// Margin covers the kernel's half extent. Kernels are defined in
// pixels, so the margin is nominal.
func (f *ConvolutionFilter) Margin() float64 {
	rows := len(f.Kernel)
	cols := 0
	if rows > 0 {
		cols = len(f.Kernel[0])
	}
	return float64(max(rows, cols) / 2)
}

func (f *ConvolutionFilter) kernelSum() float64 {
	sum := 0.0
	for _, row := range f.Kernel {
		for _, v := range row {
			sum += v
		}
	}
	return sum
}

// Apply convolves src with the kernel. Samples outside the image clamp
// to the nearest edge pixel.
func (f *ConvolutionFilter) Apply(src *image.RGBA, _ float64) *image.RGBA {
	if src == nil {
		return nil
	}
	rows := len(f.Kernel)
	if rows == 0 || len(f.Kernel[0]) == 0 {
		out := image.NewRGBA(src.Bounds())
		copy(out.Pix, src.Pix)
		return out
	}
	cols := len(f.Kernel[0])
	halfY := rows / 2
	halfX := cols / 2

	norm := 1.0
	if f.Normalise {
		if sum := f.kernelSum(); sum != 0 {
			norm = 1 / sum
		}
	}
	scale := f.Scale
	if scale == 0 {
		scale = 1
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	dst := image.NewRGBA(image.Rect(0, 0, w, h))

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var r, g, b, a float64
			for ky, row := range f.Kernel {
				sy := clampInt(y+ky-halfY, 0, h-1)
				for kx, weight := range row {
					sx := clampInt(x+kx-halfX, 0, w-1)
					i := src.PixOffset(bounds.Min.X+sx, bounds.Min.Y+sy)
					r += weight * float64(src.Pix[i])
					g += weight * float64(src.Pix[i+1])
					b += weight * float64(src.Pix[i+2])
					a += weight * float64(src.Pix[i+3])
				}
			}
			i := dst.PixOffset(x, y)
			dst.Pix[i] = clampByte(r*norm*scale + f.Bias)
			dst.Pix[i+1] = clampByte(g*norm*scale + f.Bias)
			dst.Pix[i+2] = clampByte(b*norm*scale + f.Bias)
			if f.PreserveAlpha {
				dst.Pix[i+3] = src.Pix[src.PixOffset(bounds.Min.X+x, bounds.Min.Y+y)+3]
			} else {
				dst.Pix[i+3] = clampByte(a*norm*scale + f.Bias)
			}
		}
	}
	return dst
}
