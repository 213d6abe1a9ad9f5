package animation

import (
	"testing"

	vectsharp "github.com/arklumpus/VectSharp-sub002"
	"github.com/arklumpus/VectSharp-sub002/filters"
)

func taggedRectangles(t *testing.T) (*vectsharp.RectangleAction, *vectsharp.RectangleAction) {
	t.Helper()
	start := vectsharp.NewGraphics()
	start.FillRectangle(vectsharp.RectXYWH(0, 0, 10, 10), vectsharp.SolidRGB(1, 0, 0), vectsharp.WithTag("r"))
	end := vectsharp.NewGraphics()
	end.FillRectangle(vectsharp.RectXYWH(20, 0, 30, 10), vectsharp.SolidRGB(0, 0, 1), vectsharp.WithTag("r"))
	return start.Actions()[0].(*vectsharp.RectangleAction), end.Actions()[0].(*vectsharp.RectangleAction)
}

func TestInterpolatorBoundaryIdentity(t *testing.T) {
	s, e := taggedRectangles(t)
	interp := newInterpolator(s, e, nil, 1)

	tests := []struct {
		pos  float64
		want *vectsharp.RectangleAction
	}{
		{0, s},
		{-0.5, s},
		{1, e},
		{1.5, e},
	}
	for _, tt := range tests {
		got, ok := interp.at(tt.pos).(*vectsharp.RectangleAction)
		if !ok {
			t.Fatalf("at(%v) returned %T", tt.pos, interp.at(tt.pos))
		}
		if got.Rect != tt.want.Rect {
			t.Errorf("at(%v) rect = %+v, want %+v", tt.pos, got.Rect, tt.want.Rect)
		}
		if got.Tag() != "r" {
			t.Errorf("at(%v) tag = %q, want preserved", tt.pos, got.Tag())
		}
	}
}

func TestRectangleInterpolatorMidpoint(t *testing.T) {
	s, e := taggedRectangles(t)
	interp := newInterpolator(s, e, nil, 1)

	got := interp.at(0.5).(*vectsharp.RectangleAction)
	if !almostEq(got.Rect.Min.X, 10) || !almostEq(got.Rect.Max.X, 30) {
		t.Errorf("mid rect %+v, want min X 10 max X 30", got.Rect)
	}

	fill, ok := got.Style.Fill.(vectsharp.SolidBrush)
	if !ok {
		t.Fatalf("mid fill is %T", got.Style.Fill)
	}
	if !almostEq(fill.Colour.R, 0.5) || !almostEq(fill.Colour.B, 0.5) {
		t.Errorf("mid colour %+v, want half red half blue", fill.Colour)
	}
}

func TestInterpolatorEasingAppliesBeforeBoundaries(t *testing.T) {
	s, e := taggedRectangles(t)
	// An ease-in spline at position 0.25 maps well below 0.25.
	interp := newInterpolator(s, e, vectsharp.EaseIn(), 1)

	linear := newInterpolator(s, e, nil, 1)
	eased := interp.at(0.25).(*vectsharp.RectangleAction)
	plain := linear.at(0.25).(*vectsharp.RectangleAction)
	if eased.Rect.Min.X >= plain.Rect.Min.X {
		t.Errorf("ease-in at 0.25 moved %v, linear moved %v; want less", eased.Rect.Min.X, plain.Rect.Min.X)
	}
}

func TestTransformInterpolatorSameKind(t *testing.T) {
	start := vectsharp.NewGraphics()
	start.Rotate(0, vectsharp.WithTag("spin"))
	end := vectsharp.NewGraphics()
	end.Rotate(1, vectsharp.WithTag("spin"))

	interp := newInterpolator(start.Actions()[0], end.Actions()[0], nil, 1)
	got := interp.at(0.25).(*vectsharp.TransformAction)
	if got.Kind != vectsharp.TransformRotate {
		t.Fatalf("kind = %v, want rotate", got.Kind)
	}
	if !almostEq(got.Angle, 0.25) {
		t.Errorf("angle = %v, want 0.25", got.Angle)
	}
}

func TestTransformInterpolatorMixedKindsSwitch(t *testing.T) {
	start := vectsharp.NewGraphics()
	start.Translate(10, 0, vectsharp.WithTag("t"))
	end := vectsharp.NewGraphics()
	end.Scale(3, 3, vectsharp.WithTag("t"))

	interp := newInterpolator(start.Actions()[0], end.Actions()[0], nil, 1)

	before := interp.at(0.4).(*vectsharp.TransformAction)
	if before.Kind != vectsharp.TransformTranslate || !almostEq(before.Delta.X, 10) {
		t.Errorf("before midpoint got kind %v delta %v, want the translation", before.Kind, before.Delta)
	}
	after := interp.at(0.6).(*vectsharp.TransformAction)
	if after.Kind != vectsharp.TransformScale || !almostEq(after.ScaleX, 3) {
		t.Errorf("after midpoint got kind %v scale %v, want the scale", after.Kind, after.ScaleX)
	}
}

func TestTransformInterpolatorMatrixKind(t *testing.T) {
	start := vectsharp.NewGraphics()
	start.Transform(vectsharp.Translation(10, 0), vectsharp.WithTag("t"))
	end := vectsharp.NewGraphics()
	end.Transform(vectsharp.Scaling(3, 3), vectsharp.WithTag("t"))

	interp := newInterpolator(start.Actions()[0], end.Actions()[0], nil, 1)
	got := interp.at(0.5).(*vectsharp.TransformAction)
	// Element-wise midpoint of translate(10,0) and scale(3,3).
	if !almostEq(got.Matrix.A, 2) || !almostEq(got.Matrix.C, 5) {
		t.Errorf("mid matrix %+v, want A=2 C=5", got.Matrix)
	}
}

func TestTextInterpolatorUnderlineRamp(t *testing.T) {
	fam, err := vectsharp.StandardFontFamily("Helvetica")
	if err != nil {
		t.Fatal(err)
	}
	plain := vectsharp.NewFont(fam, 12)
	underlined := vectsharp.NewFont(fam, 12).WithUnderline(vectsharp.FontUnderline{Position: 0.2, Thickness: 0.1})

	start := vectsharp.NewGraphics()
	start.FillText(vectsharp.Pt(0, 0), "hi", plain, vectsharp.SolidRGB(0, 0, 0), vectsharp.WithTag("t"))
	end := vectsharp.NewGraphics()
	end.FillText(vectsharp.Pt(10, 0), "hi", underlined, vectsharp.SolidRGB(0, 0, 0), vectsharp.WithTag("t"))

	interp := newInterpolator(start.Actions()[0], end.Actions()[0], nil, 1)
	got := interp.at(0.5).(*vectsharp.TextAction)

	if got.Font.Underline == nil {
		t.Fatal("midpoint lost the underline ramp")
	}
	if !almostEq(got.Font.Underline.Thickness, 0.05) {
		t.Errorf("midpoint underline thickness = %v, want 0.05", got.Font.Underline.Thickness)
	}
	if !almostEq(got.Origin.X, 5) {
		t.Errorf("midpoint origin X = %v, want 5", got.Origin.X)
	}
}

func TestTextInterpolatorSwitchesTextAtMidpoint(t *testing.T) {
	fam, err := vectsharp.StandardFontFamily("Helvetica")
	if err != nil {
		t.Fatal(err)
	}
	font := vectsharp.NewFont(fam, 12)

	start := vectsharp.NewGraphics()
	start.FillText(vectsharp.Pt(0, 0), "before", font, vectsharp.SolidRGB(0, 0, 0), vectsharp.WithTag("t"))
	end := vectsharp.NewGraphics()
	end.FillText(vectsharp.Pt(0, 0), "after", font, vectsharp.SolidRGB(0, 0, 0), vectsharp.WithTag("t"))

	interp := newInterpolator(start.Actions()[0], end.Actions()[0], nil, 1)
	if got := interp.at(0.4).(*vectsharp.TextAction); got.Text != "before" {
		t.Errorf("at 0.4 text = %q, want %q", got.Text, "before")
	}
	if got := interp.at(0.6).(*vectsharp.TextAction); got.Text != "after" {
		t.Errorf("at 0.6 text = %q, want %q", got.Text, "after")
	}
}

func TestPathInterpolatorMorphs(t *testing.T) {
	start := vectsharp.NewGraphics()
	start.FillPath(square(0, 0, 4), vectsharp.SolidRGB(0, 0, 0), vectsharp.WithTag("p"))
	end := vectsharp.NewGraphics()
	end.FillPath(square(10, 0, 4), vectsharp.SolidRGB(0, 0, 0), vectsharp.WithTag("p"))

	interp := newInterpolator(start.Actions()[0], end.Actions()[0], nil, 0.5)
	got := interp.at(0.5).(*vectsharp.PathAction)

	b := got.Path.Bounds()
	if !almostEq(b.Min.X, 5) || !almostEq(b.Max.X, 9) {
		t.Errorf("mid path bounds %+v, want (5,0)-(9,4)", b)
	}
}

func TestBlendFilterGaussian(t *testing.T) {
	a := filters.NewGaussianBlurFilter(2)
	b := filters.NewGaussianBlurFilter(6)

	mid, ok := blendFilter(a, b, 0.5).(*filters.GaussianBlurFilter)
	if !ok {
		t.Fatalf("blend is %T", blendFilter(a, b, 0.5))
	}
	if !almostEq(mid.StandardDeviation, 4) {
		t.Errorf("mid sigma %v, want 4", mid.StandardDeviation)
	}
}

func TestBlendFilterConvolution(t *testing.T) {
	a := filters.NewConvolutionFilter([][]float64{{0, 0, 0}, {0, 1, 0}, {0, 0, 0}})
	b := filters.NewConvolutionFilter([][]float64{{0, 1, 0}, {1, 1, 1}, {0, 1, 0}})

	mid, ok := blendFilter(a, b, 0.5).(*filters.ConvolutionFilter)
	if !ok {
		t.Fatalf("blend is %T", blendFilter(a, b, 0.5))
	}
	if !almostEq(mid.Kernel[1][1], 1) || !almostEq(mid.Kernel[0][1], 0.5) {
		t.Errorf("mid kernel %v, want centre 1 and cross cells 0.5", mid.Kernel)
	}

	// Mismatched kernel dimensions fall back to a discrete switch.
	c := filters.NewConvolutionFilter([][]float64{{1}})
	if got := blendFilter(a, c, 0.3); got != filters.Filter(a) {
		t.Errorf("dimension mismatch at 0.3 got %T, want the first filter", got)
	}
}

func TestRasterInterpolatorBlendsRects(t *testing.T) {
	img := vectsharp.NewRasterImage(nil, false)
	start := vectsharp.NewGraphics()
	start.DrawRasterImage(img, vectsharp.RectXYWH(0, 0, 10, 10), vectsharp.RectXYWH(0, 0, 20, 20), vectsharp.WithTag("img"))
	end := vectsharp.NewGraphics()
	end.DrawRasterImage(img, vectsharp.RectXYWH(10, 0, 10, 10), vectsharp.RectXYWH(40, 0, 20, 20), vectsharp.WithTag("img"))

	interp := newInterpolator(start.Actions()[0], end.Actions()[0], nil, 1)
	got := interp.at(0.5).(*vectsharp.RasterImageAction)
	if !almostEq(got.Source.Min.X, 5) {
		t.Errorf("mid source min X = %v, want 5", got.Source.Min.X)
	}
	if !almostEq(got.Destination.Min.X, 20) {
		t.Errorf("mid destination min X = %v, want 20", got.Destination.Min.X)
	}
}

func TestBlendFilterMismatchedKinds(t *testing.T) {
	blur := filters.NewGaussianBlurFilter(2)
	matrix := filters.NewColourMatrixFilter(filters.GreyscaleMatrix())

	if got := blendFilter(blur, matrix, 0.3); got != filters.Filter(blur) {
		t.Errorf("at 0.3 got %T, want the blur", got)
	}
	if got := blendFilter(blur, matrix, 0.7); got != filters.Filter(matrix) {
		t.Errorf("at 0.7 got %T, want the colour matrix", got)
	}
}

func TestBlendBrushGradients(t *testing.T) {
	lin := vectsharp.NewLinearGradientBrush(vectsharp.Pt(0, 0), vectsharp.Pt(10, 0),
		vectsharp.ColorStop{Offset: 0, Colour: vectsharp.RGB(0, 0, 0)},
		vectsharp.ColorStop{Offset: 1, Colour: vectsharp.RGB(1, 1, 1)},
	)
	rad := vectsharp.NewRadialGradientBrush(vectsharp.Pt(5, 5), vectsharp.Pt(5, 5), 4,
		vectsharp.ColorStop{Offset: 0, Colour: vectsharp.RGB(1, 0, 0)},
		vectsharp.ColorStop{Offset: 1, Colour: vectsharp.RGB(0, 0, 1)},
	)

	mid, ok := blendBrush(lin, rad, 0.5).(*vectsharp.RadialGradientBrush)
	if !ok {
		t.Fatalf("linear to radial midpoint is %T, want radial", blendBrush(lin, rad, 0.5))
	}
	// Radius diverges as 1/position: at 0.5 it is twice the target.
	if !almostEq(mid.Radius, 8) {
		t.Errorf("mid radius %v, want 8", mid.Radius)
	}

	// The reverse direction mirrors the forward one.
	back, ok := blendBrush(rad, lin, 0.5).(*vectsharp.RadialGradientBrush)
	if !ok {
		t.Fatalf("radial to linear midpoint is %T, want radial", blendBrush(rad, lin, 0.5))
	}
	if !almostEq(back.Radius, mid.Radius) {
		t.Errorf("reverse radius %v, want %v", back.Radius, mid.Radius)
	}
}

func TestBlendStopsPadsShorterList(t *testing.T) {
	two := []vectsharp.ColorStop{
		{Offset: 0, Colour: vectsharp.RGB(0, 0, 0)},
		{Offset: 1, Colour: vectsharp.RGB(1, 1, 1)},
	}
	three := []vectsharp.ColorStop{
		{Offset: 0, Colour: vectsharp.RGB(1, 0, 0)},
		{Offset: 0.5, Colour: vectsharp.RGB(0, 1, 0)},
		{Offset: 1, Colour: vectsharp.RGB(0, 0, 1)},
	}

	got := blendStops(two, three, 0.5)
	if len(got) != 3 {
		t.Fatalf("got %d stops, want 3", len(got))
	}

	// At the boundaries the original lists come back unchanged in
	// colour, padded in count.
	atStart := blendStops(two, three, 0)
	if !almostEq(atStart[0].Colour.R, 0) || !almostEq(atStart[2].Colour.R, 1) {
		t.Errorf("position 0 stops %+v do not match the start colours", atStart)
	}
	// The padded middle stop averages its neighbours, so at position 0
	// it is mid-grey.
	if !almostEq(atStart[1].Colour.R, 0.5) {
		t.Errorf("padded stop colour %v, want 0.5", atStart[1].Colour.R)
	}
}
