package animation

import (
	"testing"

	vectsharp "github.com/arklumpus/VectSharp-sub002"
)

func TestGraphicsInterpolatorMatchesByTag(t *testing.T) {
	start := vectsharp.NewGraphics()
	start.FillRectangle(vectsharp.RectXYWH(0, 0, 10, 10), vectsharp.SolidRGB(1, 0, 0), vectsharp.WithTag("box"))
	end := vectsharp.NewGraphics()
	end.FillRectangle(vectsharp.RectXYWH(40, 0, 10, 10), vectsharp.SolidRGB(1, 0, 0), vectsharp.WithTag("box"))

	interp := NewGraphicsInterpolator(start, end, nil, 1)
	mid := interp.Interpolate(0.5)

	actions := mid.Actions()
	if len(actions) != 1 {
		t.Fatalf("got %d actions, want 1", len(actions))
	}
	rect := actions[0].(*vectsharp.RectangleAction)
	if !almostEq(rect.Rect.Min.X, 20) {
		t.Errorf("matched rectangle min X = %v, want 20", rect.Rect.Min.X)
	}
}

func TestGraphicsInterpolatorBoundaries(t *testing.T) {
	start := vectsharp.NewGraphics()
	start.FillRectangle(vectsharp.RectXYWH(0, 0, 10, 10), vectsharp.SolidRGB(1, 0, 0), vectsharp.WithTag("box"))
	end := vectsharp.NewGraphics()
	end.FillRectangle(vectsharp.RectXYWH(40, 0, 10, 10), vectsharp.SolidRGB(1, 0, 0), vectsharp.WithTag("box"))

	interp := NewGraphicsInterpolator(start, end, nil, 1)

	atStart := interp.Interpolate(0).Actions()[0].(*vectsharp.RectangleAction)
	if !almostEq(atStart.Rect.Min.X, 0) {
		t.Errorf("position 0 min X = %v, want 0", atStart.Rect.Min.X)
	}
	atEnd := interp.Interpolate(1).Actions()[0].(*vectsharp.RectangleAction)
	if !almostEq(atEnd.Rect.Min.X, 40) {
		t.Errorf("position 1 min X = %v, want 40", atEnd.Rect.Min.X)
	}

	// The boundary results are clones, not the original scenes.
	if interp.Interpolate(0) == start {
		t.Error("position 0 returned the start scene itself")
	}
}

func TestGraphicsInterpolatorUnmatchedActionsSwitchAtMidpoint(t *testing.T) {
	start := vectsharp.NewGraphics()
	start.FillRectangle(vectsharp.RectXYWH(0, 0, 10, 10), vectsharp.SolidRGB(1, 0, 0), vectsharp.WithTag("box"))
	start.FillRectangle(vectsharp.RectXYWH(0, 20, 5, 5), vectsharp.SolidRGB(0, 1, 0))
	start.FillRectangle(vectsharp.RectXYWH(0, 30, 5, 5), vectsharp.SolidRGB(0, 0, 1))

	end := vectsharp.NewGraphics()
	end.FillRectangle(vectsharp.RectXYWH(40, 0, 10, 10), vectsharp.SolidRGB(1, 0, 0), vectsharp.WithTag("box"))
	end.FillRectangle(vectsharp.RectXYWH(40, 20, 5, 5), vectsharp.SolidRGB(1, 1, 0))

	interp := NewGraphicsInterpolator(start, end, nil, 1)

	// Before the midpoint the start scene's action list drives: the two
	// untagged start rectangles are still present.
	if got := len(interp.Interpolate(0.4).Actions()); got != 3 {
		t.Errorf("at 0.4 got %d actions, want 3", got)
	}
	// After the midpoint the end scene's list drives.
	if got := len(interp.Interpolate(0.6).Actions()); got != 2 {
		t.Errorf("at 0.6 got %d actions, want 2", got)
	}

	// The matched pair blends continuously on both sides.
	before := interp.Interpolate(0.4).Actions()[0].(*vectsharp.RectangleAction)
	if !almostEq(before.Rect.Min.X, 16) {
		t.Errorf("at 0.4 matched min X = %v, want 16", before.Rect.Min.X)
	}
	after := interp.Interpolate(0.6).Actions()[0].(*vectsharp.RectangleAction)
	if !almostEq(after.Rect.Min.X, 24) {
		t.Errorf("at 0.6 matched min X = %v, want 24", after.Rect.Min.X)
	}
}

func TestGraphicsInterpolatorSkipsTypeMismatch(t *testing.T) {
	start := vectsharp.NewGraphics()
	start.FillRectangle(vectsharp.RectXYWH(0, 0, 10, 10), vectsharp.SolidRGB(1, 0, 0), vectsharp.WithTag("shape"))
	end := vectsharp.NewGraphics()
	end.FillPath(square(40, 0, 10), vectsharp.SolidRGB(1, 0, 0), vectsharp.WithTag("shape"))

	interp := NewGraphicsInterpolator(start, end, nil, 1)

	// The mismatched pair is not blended: before the midpoint the start
	// rectangle passes through unchanged.
	got := interp.Interpolate(0.4).Actions()[0].(*vectsharp.RectangleAction)
	if !almostEq(got.Rect.Min.X, 0) {
		t.Errorf("mismatched pair moved: min X = %v, want 0", got.Rect.Min.X)
	}
}

func TestGraphicsInterpolatorPerTagEasing(t *testing.T) {
	start := vectsharp.NewGraphics()
	start.FillRectangle(vectsharp.RectXYWH(0, 0, 10, 10), vectsharp.SolidRGB(1, 0, 0), vectsharp.WithTag("box"))
	end := vectsharp.NewGraphics()
	end.FillRectangle(vectsharp.RectXYWH(40, 0, 10, 10), vectsharp.SolidRGB(1, 0, 0), vectsharp.WithTag("box"))

	eased := NewGraphicsInterpolator(start, end, map[string]vectsharp.Easing{"box": vectsharp.EaseIn()}, 1)
	plain := NewGraphicsInterpolator(start, end, nil, 1)

	e := eased.Interpolate(0.25).Actions()[0].(*vectsharp.RectangleAction)
	p := plain.Interpolate(0.25).Actions()[0].(*vectsharp.RectangleAction)
	if e.Rect.Min.X >= p.Rect.Min.X {
		t.Errorf("ease-in at 0.25 moved %v, linear moved %v; want less", e.Rect.Min.X, p.Rect.Min.X)
	}
}

func TestGraphicsInterpolatorDuplicateStartTagKeepsFirst(t *testing.T) {
	// Two start actions share a tag; the strategy is built from the
	// first occurrence, not silently replaced by the second.
	start := vectsharp.NewGraphics()
	start.FillRectangle(vectsharp.RectXYWH(0, 0, 10, 10), vectsharp.SolidRGB(1, 0, 0), vectsharp.WithTag("box"))
	start.FillRectangle(vectsharp.RectXYWH(100, 0, 10, 10), vectsharp.SolidRGB(1, 0, 0), vectsharp.WithTag("box"))
	end := vectsharp.NewGraphics()
	end.FillRectangle(vectsharp.RectXYWH(40, 0, 10, 10), vectsharp.SolidRGB(1, 0, 0), vectsharp.WithTag("box"))

	interp := NewGraphicsInterpolator(start, end, nil, 1)
	got := interp.Interpolate(0.25).Actions()[0].(*vectsharp.RectangleAction)
	if !almostEq(got.Rect.Min.X, 10) {
		t.Errorf("first tagged action min X = %v, want 10 (blend of the first pair)", got.Rect.Min.X)
	}
}

func TestGraphicsInterpolatorStateActionsPassThrough(t *testing.T) {
	start := vectsharp.NewGraphics()
	start.Save()
	start.Translate(5, 0)
	start.FillRectangle(vectsharp.RectXYWH(0, 0, 10, 10), vectsharp.SolidRGB(1, 0, 0))
	start.Restore()

	end := vectsharp.NewGraphics()
	end.Save()
	end.Translate(15, 0)
	end.FillRectangle(vectsharp.RectXYWH(0, 0, 10, 10), vectsharp.SolidRGB(1, 0, 0))
	end.Restore()

	interp := NewGraphicsInterpolator(start, end, nil, 1)
	actions := interp.Interpolate(0.4).Actions()

	if len(actions) != 4 {
		t.Fatalf("got %d actions, want 4", len(actions))
	}
	if _, ok := actions[0].(*vectsharp.StateAction); !ok {
		t.Errorf("first action is %T, want a state action", actions[0])
	}
	// Untagged, so no blending: the translation is the start scene's.
	tr := actions[1].(*vectsharp.TransformAction)
	if !almostEq(tr.Delta.X, 5) {
		t.Errorf("untagged translate delta = %v, want 5", tr.Delta.X)
	}
}
