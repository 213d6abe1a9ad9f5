package filters

import "image"

// ColourMatrix transforms colours in homogeneous RGBA space. Each
// output channel is a linear combination of the input channels plus a
// constant term; the fifth row is conventionally (0, 0, 0, 0, 1).
// Channel values are treated as being in [0, 1].
type ColourMatrix [5][5]float64

// IdentityColourMatrix returns the matrix that leaves colours
// unchanged.
func IdentityColourMatrix() ColourMatrix {
	var m ColourMatrix
	for i := range m {
		m[i][i] = 1
	}
	return m
}

// GreyscaleMatrix converts colours to luminance-weighted grey.
func GreyscaleMatrix() ColourMatrix {
	m := IdentityColourMatrix()
	for i := 0; i < 3; i++ {
		m[i][0], m[i][1], m[i][2] = 0.2126, 0.7152, 0.0722
	}
	return m
}

// InvertMatrix inverts the colour channels, leaving alpha unchanged.
func InvertMatrix() ColourMatrix {
	m := IdentityColourMatrix()
	for i := 0; i < 3; i++ {
		m[i][i] = -1
		m[i][4] = 1
	}
	return m
}

// AlphaMatrix scales the alpha channel by factor.
func AlphaMatrix(factor float64) ColourMatrix {
	m := IdentityColourMatrix()
	m[3][3] = factor
	return m
}

// Multiply composes two matrices so that applying the result equals
// applying other first and then m.
func (m ColourMatrix) Multiply(other ColourMatrix) ColourMatrix {
	var out ColourMatrix
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			sum := 0.0
			for k := 0; k < 5; k++ {
				sum += m[i][k] * other[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

// Lerp blends two matrices element-wise.
func (m ColourMatrix) Lerp(other ColourMatrix, t float64) ColourMatrix {
	var out ColourMatrix
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			out[i][j] = m[i][j] + (other[i][j]-m[i][j])*t
		}
	}
	return out
}

// ColourMatrixFilter applies a colour matrix to every pixel.
type ColourMatrixFilter struct {
	Matrix ColourMatrix
}

// NewColourMatrixFilter creates a colour matrix filter.
func NewColourMatrixFilter(matrix ColourMatrix) *ColourMatrixFilter {
	return &ColourMatrixFilter{Matrix: matrix}
}

func (*ColourMatrixFilter) filterMarker() {}

// Margin is zero: the transform is per-pixel.
func (f *ColourMatrixFilter) Margin() float64 { return 0 }

// Apply transforms every pixel through the matrix.
func (f *ColourMatrixFilter) Apply(src *image.RGBA, _ float64) *image.RGBA {
	if src == nil {
		return nil
	}
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	dst := image.NewRGBA(image.Rect(0, 0, w, h))

	m := f.Matrix
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := src.PixOffset(bounds.Min.X+x, bounds.Min.Y+y)
			r := float64(src.Pix[i]) / 255
			g := float64(src.Pix[i+1]) / 255
			b := float64(src.Pix[i+2]) / 255
			a := float64(src.Pix[i+3]) / 255

			o := dst.PixOffset(x, y)
			dst.Pix[o] = clampByte((m[0][0]*r + m[0][1]*g + m[0][2]*b + m[0][3]*a + m[0][4]) * 255)
			dst.Pix[o+1] = clampByte((m[1][0]*r + m[1][1]*g + m[1][2]*b + m[1][3]*a + m[1][4]) * 255)
			dst.Pix[o+2] = clampByte((m[2][0]*r + m[2][1]*g + m[2][2]*b + m[2][3]*a + m[2][4]) * 255)
			dst.Pix[o+3] = clampByte((m[3][0]*r + m[3][1]*g + m[3][2]*b + m[3][3]*a + m[3][4]) * 255)
		}
	}
	return dst
}
