package filters

import (
	"image"
	"math"
	"sync"
)

// GaussianBlurFilter blurs its input with a Gaussian kernel.
// StandardDeviation is expressed in graphics units.
type GaussianBlurFilter struct {
	StandardDeviation float64
}

// NewGaussianBlurFilter creates a blur filter.
func NewGaussianBlurFilter(standardDeviation float64) *GaussianBlurFilter {
	return &GaussianBlurFilter{StandardDeviation: standardDeviation}
}

func (*GaussianBlurFilter) filterMarker() {}

// Margin covers three standard deviations on each side.
func (f *GaussianBlurFilter) Margin() float64 {
	return 3 * f.StandardDeviation
}

// Apply runs a two-pass separable blur: each row is convolved with the
// 1D kernel, then each column of the intermediate.
func (f *GaussianBlurFilter) Apply(src *image.RGBA, scale float64) *image.RGBA {
	if src == nil {
		return nil
	}
	sigma := f.StandardDeviation * scale
	if sigma <= 0 {
		out := image.NewRGBA(src.Bounds())
		copy(out.Pix, src.Pix)
		return out
	}

	kernel := cachedGaussianKernel(sigma)
	half := len(kernel) / 2

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	temp := image.NewRGBA(image.Rect(0, 0, w, h))
	dst := image.NewRGBA(image.Rect(0, 0, w, h))

	// Horizontal pass.
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var r, g, b, a float64
			for k, weight := range kernel {
				sx := clampInt(x+k-half, 0, w-1)
				i := src.PixOffset(bounds.Min.X+sx, bounds.Min.Y+y)
				wf := float64(weight)
				r += wf * float64(src.Pix[i])
				g += wf * float64(src.Pix[i+1])
				b += wf * float64(src.Pix[i+2])
				a += wf * float64(src.Pix[i+3])
			}
			i := temp.PixOffset(x, y)
			temp.Pix[i] = clampByte(r)
			temp.Pix[i+1] = clampByte(g)
			temp.Pix[i+2] = clampByte(b)
			temp.Pix[i+3] = clampByte(a)
		}
	}

	// Vertical pass.
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var r, g, b, a float64
			for k, weight := range kernel {
				sy := clampInt(y+k-half, 0, h-1)
				i := temp.PixOffset(x, sy)
				wf := float64(weight)
				r += wf * float64(temp.Pix[i])
				g += wf * float64(temp.Pix[i+1])
				b += wf * float64(temp.Pix[i+2])
				a += wf * float64(temp.Pix[i+3])
			}
			i := dst.PixOffset(x, y)
			dst.Pix[i] = clampByte(r)
			dst.Pix[i+1] = clampByte(g)
			dst.Pix[i+2] = clampByte(b)
			dst.Pix[i+3] = clampByte(a)
		}
	}
	return dst
}

// gaussianKernel generates a normalised 1D Gaussian kernel. The size
// 2*ceil(3*sigma)+1 covers three standard deviations on each side.
func gaussianKernel(sigma float64) []float32 {
	if sigma <= 0 {
		return []float32{1}
	}
	half := int(math.Ceil(sigma * 3))
	size := half*2 + 1
	kernel := make([]float32, size)

	twoSigmaSq := 2 * sigma * sigma
	sum := 0.0
	for i := 0; i < size; i++ {
		x := float64(i - half)
		v := math.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = float32(v)
		sum += v
	}
	inv := float32(1 / sum)
	for i := range kernel {
		kernel[i] *= inv
	}
	return kernel
}

// Kernels are cached keyed by sigma rounded to 1/100, bounded to keep
// the cache from growing with animated blurs.
var kernels = struct {
	mu    sync.Mutex
	cache map[int][]float32
}{cache: make(map[int][]float32)}

const maxCachedKernels = 64

func cachedGaussianKernel(sigma float64) []float32 {
	key := int(sigma * 100)
	kernels.mu.Lock()
	defer kernels.mu.Unlock()

	if k, ok := kernels.cache[key]; ok {
		return k
	}
	k := gaussianKernel(sigma)
	if len(kernels.cache) >= maxCachedKernels {
		kernels.cache = make(map[int][]float32)
	}
	kernels.cache[key] = k
	return k
}
