package vectsharp

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormaliseStops(t *testing.T) {
	stops := []ColorStop{
		{Offset: 0.8, Colour: RGB(0, 0, 1)},
		{Offset: 0.2, Colour: RGB(1, 0, 0)},
		{Offset: 0.8, Colour: RGB(0, 1, 0)}, // duplicate offset, dropped
		{Offset: 0.5, Colour: RGB(1, 1, 1)},
	}

	got := NormaliseStops(stops)
	want := []ColorStop{
		{Offset: 0.2, Colour: RGB(1, 0, 0)},
		{Offset: 0.5, Colour: RGB(1, 1, 1)},
		{Offset: 0.8, Colour: RGB(0, 0, 1)},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("NormaliseStops mismatch (-want +got):\n%s", diff)
	}
}

func TestLinearGradientColorAt(t *testing.T) {
	g := NewLinearGradientBrush(Pt(0, 0), Pt(10, 0),
		ColorStop{Offset: 0, Colour: RGB(0, 0, 0)},
		ColorStop{Offset: 1, Colour: RGB(1, 1, 1)},
	)

	tests := []struct {
		name string
		x, y float64
		want RGBA
	}{
		{"start", 0, 0, RGB(0, 0, 0)},
		{"middle", 5, 0, RGB(0.5, 0.5, 0.5)},
		{"end", 10, 0, RGB(1, 1, 1)},
		{"before axis pads", -5, 0, RGB(0, 0, 0)},
		{"beyond axis pads", 20, 0, RGB(1, 1, 1)},
		{"off-axis projects", 5, 100, RGB(0.5, 0.5, 0.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.ColorAt(tt.x, tt.y)
			if !approxEq(got.R, tt.want.R, 1e-9) || !approxEq(got.G, tt.want.G, 1e-9) || !approxEq(got.B, tt.want.B, 1e-9) {
				t.Errorf("ColorAt(%v,%v) = %+v, want %+v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRadialGradientSymmetric(t *testing.T) {
	g := NewRadialGradientBrush(Pt(0, 0), Pt(0, 0), 10,
		ColorStop{Offset: 0, Colour: RGB(1, 0, 0)},
		ColorStop{Offset: 1, Colour: RGB(0, 0, 1)},
	)

	centre := g.ColorAt(0, 0)
	if !approxEq(centre.R, 1, 1e-9) {
		t.Errorf("centre colour %+v, want red", centre)
	}
	mid := g.ColorAt(5, 0)
	if !approxEq(mid.R, 0.5, 1e-9) || !approxEq(mid.B, 0.5, 1e-9) {
		t.Errorf("mid colour %+v, want half red half blue", mid)
	}

	// Symmetric: same distance, any direction.
	a := g.ColorAt(3, 4)
	b := g.ColorAt(-5, 0)
	if !approxEq(a.R, b.R, 1e-9) || !approxEq(a.B, b.B, 1e-9) {
		t.Errorf("asymmetric result: %+v vs %+v", a, b)
	}
}

func TestRadialGradientFocalOnCircle(t *testing.T) {
	// A point on the gradient circle is at offset 1 even with an
	// off-centre focal point.
	g := NewRadialGradientBrush(Pt(2, 0), Pt(0, 0), 10,
		ColorStop{Offset: 0, Colour: RGB(1, 1, 1)},
		ColorStop{Offset: 1, Colour: RGB(0, 0, 0)},
	)
	got := g.ColorAt(10, 0)
	if !approxEq(got.R, 0, 1e-9) {
		t.Errorf("colour on circle %+v, want black", got)
	}
	atFocal := g.ColorAt(2, 0)
	if !approxEq(atFocal.R, 1, 1e-9) {
		t.Errorf("colour at focal point %+v, want white", atFocal)
	}
}

func TestGradientSingleStop(t *testing.T) {
	g := NewLinearGradientBrush(Pt(0, 0), Pt(1, 0), ColorStop{Offset: 0.5, Colour: RGB(0, 1, 0)})
	got := g.ColorAt(0.7, 0)
	if !approxEq(got.G, 1, 1e-9) {
		t.Errorf("single stop colour %+v, want green everywhere", got)
	}
}
