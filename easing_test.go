package vectsharp

import (
	"math"
	"testing"
)

func TestLinearEasing(t *testing.T) {
	e := LinearEasing{}
	for _, pos := range []float64{0, 0.25, 0.5, 0.9, 1} {
		if got := e.Ease(pos); got != pos {
			t.Errorf("Ease(%v) = %v, want identity", pos, got)
		}
	}
}

func TestNewSplineEasingValidation(t *testing.T) {
	tests := []struct {
		name    string
		p1, p2  Point
		wantErr bool
	}{
		{"valid", Pt(0.25, 0.1), Pt(0.25, 1), false},
		{"corner points", Pt(0, 0), Pt(1, 1), false},
		{"x below range", Pt(-0.1, 0.5), Pt(0.5, 0.5), true},
		{"x above range", Pt(0.5, 0.5), Pt(1.1, 0.5), true},
		{"y below range", Pt(0.5, -0.5), Pt(0.5, 0.5), true},
		{"y above range", Pt(0.5, 0.5), Pt(0.5, 2), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSplineEasing(tt.p1, tt.p2)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewSplineEasing(%v, %v) error = %v, wantErr %v", tt.p1, tt.p2, err, tt.wantErr)
			}
		})
	}
}

func TestSplineEasingEndpoints(t *testing.T) {
	easings := map[string]SplineEasing{
		"ease-in":     EaseIn(),
		"ease-out":    EaseOut(),
		"ease-in-out": EaseInOut(),
	}
	for name, e := range easings {
		t.Run(name, func(t *testing.T) {
			if got := e.Ease(0); !approxEq(got, 0, 1e-9) {
				t.Errorf("Ease(0) = %v, want 0", got)
			}
			if got := e.Ease(1); !approxEq(got, 1, 1e-9) {
				t.Errorf("Ease(1) = %v, want 1", got)
			}
		})
	}
}

func TestEaseInOutSymmetry(t *testing.T) {
	e := EaseInOut()
	if got := e.Ease(0.5); !approxEq(got, 0.5, 1e-6) {
		t.Errorf("Ease(0.5) = %v, want 0.5", got)
	}
	// The symmetric curve satisfies f(x) + f(1-x) = 1.
	for _, x := range []float64{0.1, 0.2, 0.3, 0.4} {
		if got := e.Ease(x) + e.Ease(1-x); !approxEq(got, 1, 1e-6) {
			t.Errorf("Ease(%v)+Ease(%v) = %v, want 1", x, 1-x, got)
		}
	}
}

func TestEaseInIsSlowAtStart(t *testing.T) {
	e := EaseIn()
	if got := e.Ease(0.25); got >= 0.25 {
		t.Errorf("Ease(0.25) = %v, want below 0.25 for ease-in", got)
	}
}

func TestSplineEasingMonotonic(t *testing.T) {
	e, err := NewSplineEasing(Pt(0.3, 0), Pt(0.7, 1))
	if err != nil {
		t.Fatal(err)
	}
	prev := math.Inf(-1)
	for i := 0; i <= 100; i++ {
		got := e.Ease(float64(i) / 100)
		if got < prev-1e-9 {
			t.Fatalf("easing not monotonic at %v: %v after %v", float64(i)/100, got, prev)
		}
		prev = got
	}
}
