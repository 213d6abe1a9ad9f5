package animation

import (
	"testing"

	vectsharp "github.com/arklumpus/VectSharp-sub002"
)

func boxScene(x float64) *vectsharp.Graphics {
	g := vectsharp.NewGraphics()
	g.FillRectangle(vectsharp.RectXYWH(x, 0, 10, 10), vectsharp.SolidRGB(1, 0, 0), vectsharp.WithTag("box"))
	return g
}

// twoFrameTimeline is a 2500 ms timeline: frame A held for 1000 ms,
// a 500 ms transition, frame B held for 1000 ms.
func twoFrameTimeline() *Animation {
	a := NewAnimation(100, 100, 1)
	a.AddFrame(NewFrame(boxScene(0), 1000), Transition{})
	a.AddFrame(NewFrame(boxScene(40), 1000), Transition{Duration: 500})
	return a
}

func boxMinX(t *testing.T, p *vectsharp.Page) float64 {
	t.Helper()
	actions := p.Graphics.Actions()
	if len(actions) != 1 {
		t.Fatalf("got %d actions, want 1", len(actions))
	}
	return actions[0].(*vectsharp.RectangleAction).Rect.Min.X
}

func TestAnimationDuration(t *testing.T) {
	a := twoFrameTimeline()
	if got := a.Duration(); got != 2500 {
		t.Errorf("Duration() = %v, want 2500", got)
	}
	if got := a.Count(); got != 2 {
		t.Errorf("Count() = %v, want 2", got)
	}
}

func TestAnimationFrameAtAbsolute(t *testing.T) {
	a := twoFrameTimeline()

	tests := []struct {
		time float64
		want float64
	}{
		{0, 0},      // start of frame A
		{100, 0},    // held frame A
		{999, 0},    // last instant of frame A
		{1250, 20},  // halfway through the transition
		{1100, 8},   // one fifth through the transition
		{1500, 40},  // frame B begins
		{2000, 40},  // held frame B
		{2600, 0},   // wraps to 100 ms, back in frame A
		{-50, 0},    // clamped to the start
	}
	for _, tt := range tests {
		if got := boxMinX(t, a.GetFrameAtAbsolute(tt.time)); !almostEq(got, tt.want) {
			t.Errorf("at %v ms box min X = %v, want %v", tt.time, got, tt.want)
		}
	}
}

func TestAnimationFrameAtRelative(t *testing.T) {
	a := twoFrameTimeline()
	// Half of 2500 ms is 1250 ms, the middle of the transition.
	if got := boxMinX(t, a.GetFrameAtRelative(0.5)); !almostEq(got, 20) {
		t.Errorf("at relative 0.5 box min X = %v, want 20", got)
	}
}

func TestAnimationFiniteRepeatWindow(t *testing.T) {
	a := twoFrameTimeline()
	a.RepeatCount = 2

	tests := []struct {
		time float64
		want float64
	}{
		// Within the second play-through the timeline still wraps.
		{2500 + 1250, 20},
		// Just past the final repeat the excess equals the wrapped
		// time, so the timeline keeps playing: effective time 100 is
		// back in frame A.
		{5100, 0},
		// Effective time 1000 is the start of the transition.
		{6000, 0},
		// Once the excess exceeds the duration the final state holds.
		{7600, 40},
	}
	for _, tt := range tests {
		if got := boxMinX(t, a.GetFrameAtAbsolute(tt.time)); !almostEq(got, tt.want) {
			t.Errorf("at %v ms box min X = %v, want %v", tt.time, got, tt.want)
		}
	}
}

func TestAnimationOverallTransitionEasing(t *testing.T) {
	a := NewAnimation(100, 100, 1)
	a.AddFrame(NewFrame(boxScene(0), 1000), Transition{})
	a.AddFrame(NewFrame(boxScene(40), 1000), Transition{Duration: 500, Easing: vectsharp.EaseIn()})

	plain := twoFrameTimeline()
	eased := boxMinX(t, a.GetFrameAtAbsolute(1100))
	linear := boxMinX(t, plain.GetFrameAtAbsolute(1100))
	if eased >= linear {
		t.Errorf("ease-in at 1100 ms moved %v, linear moved %v; want less", eased, linear)
	}
}

func TestAnimationPerTagEasingOnTransition(t *testing.T) {
	a := NewAnimation(100, 100, 1)
	a.AddFrame(NewFrame(boxScene(0), 1000), Transition{})
	a.AddFrame(NewFrame(boxScene(40), 1000), Transition{
		Duration: 500,
		Easings:  map[string]vectsharp.Easing{"box": vectsharp.EaseIn()},
	})

	plain := twoFrameTimeline()
	eased := boxMinX(t, a.GetFrameAtAbsolute(1100))
	linear := boxMinX(t, plain.GetFrameAtAbsolute(1100))
	if eased >= linear {
		t.Errorf("per-tag ease-in at 1100 ms moved %v, linear moved %v; want less", eased, linear)
	}
}

func TestAnimationEmpty(t *testing.T) {
	a := NewAnimation(100, 100, 1)
	p := a.GetFrameAtAbsolute(500)
	if len(p.Graphics.Actions()) != 0 {
		t.Error("empty animation should render an empty scene")
	}
	if p.Width != 100 || p.Height != 100 {
		t.Errorf("page size %vx%v, want 100x100", p.Width, p.Height)
	}
}

func TestAnimationZeroDuration(t *testing.T) {
	a := NewAnimation(100, 100, 1)
	a.AddFrame(NewFrame(boxScene(7), 0), Transition{})
	if got := boxMinX(t, a.GetFrameAtAbsolute(123)); !almostEq(got, 7) {
		t.Errorf("zero-duration timeline min X = %v, want the single frame", got)
	}
}

func TestAnimationRemoveLastFrame(t *testing.T) {
	a := twoFrameTimeline()
	a.RemoveLastFrame()
	if a.Count() != 1 {
		t.Fatalf("Count() = %v after removal, want 1", a.Count())
	}
	if got := a.Duration(); got != 1000 {
		t.Errorf("Duration() = %v after removal, want 1000", got)
	}

	a.RemoveLastFrame()
	defer func() {
		if recover() == nil {
			t.Error("RemoveLastFrame on an empty animation should panic")
		}
	}()
	a.RemoveLastFrame()
}

func TestAnimationPageBackground(t *testing.T) {
	a := twoFrameTimeline()
	a.Background = vectsharp.RGB(1, 1, 1)
	p := a.GetFrameAtAbsolute(0)
	if p.Background != vectsharp.RGB(1, 1, 1) {
		t.Errorf("page background %+v, want white", p.Background)
	}
}
