package animation

import (
	"math"

	vectsharp "github.com/arklumpus/VectSharp-sub002"
)

// Frame is one keyframe: a scene held for a duration in milliseconds.
type Frame struct {
	Scene    *vectsharp.Graphics
	Duration float64
}

// NewFrame creates a keyframe.
func NewFrame(scene *vectsharp.Graphics, duration float64) Frame {
	return Frame{Scene: scene, Duration: duration}
}

// Transition describes how one keyframe blends into the next. Easing,
// when set, reshapes the position of the whole transition; Easings maps
// individual action tags to their own easings, applied on top of the
// overall one.
type Transition struct {
	Duration float64
	Easing   vectsharp.Easing
	Easings  map[string]vectsharp.Easing
}

// Animation is a timeline of keyframes separated by transitions.
// Interpolators between consecutive frames are built when frames are
// added, so rendering a time point does no matching work.
type Animation struct {
	Width  float64
	Height float64

	Background vectsharp.RGBA

	// LinearisationResolution is the arc-length sampling step used when
	// morphing paths between frames.
	LinearisationResolution float64

	// RepeatCount is the number of times the timeline plays. Zero or
	// negative means it loops forever.
	RepeatCount int

	frames        []Frame
	transitions   []Transition
	interpolators []*GraphicsInterpolator
}

// NewAnimation creates an empty animation with the given surface size.
func NewAnimation(width, height, linearisationResolution float64) *Animation {
	return &Animation{
		Width:                   width,
		Height:                  height,
		Background:              vectsharp.Transparent,
		LinearisationResolution: linearisationResolution,
	}
}

// Count returns the number of keyframes.
func (a *Animation) Count() int {
	return len(a.frames)
}

// Duration returns the total timeline duration in milliseconds: the sum
// of all frame durations and all transition durations.
func (a *Animation) Duration() float64 {
	total := 0.0
	for _, f := range a.frames {
		total += f.Duration
	}
	for _, t := range a.transitions {
		total += t.Duration
	}
	return total
}

// AddFrame appends a keyframe. transition describes the blend from the
// previous keyframe into this one and is ignored for the first frame.
// The interpolator for the transition is built immediately.
func (a *Animation) AddFrame(frame Frame, transition Transition) {
	if len(a.frames) == 0 {
		a.frames = append(a.frames, frame)
		a.transitions = append(a.transitions, Transition{})
		a.interpolators = append(a.interpolators, nil)
		return
	}

	prev := a.frames[len(a.frames)-1]
	a.frames = append(a.frames, frame)
	a.transitions = append(a.transitions, transition)
	a.interpolators = append(a.interpolators,
		NewGraphicsInterpolator(prev.Scene, frame.Scene, transition.Easings, a.LinearisationResolution))
}

// RemoveLastFrame removes the most recently added keyframe together
// with its incoming transition. It panics if the animation has no
// frames.
func (a *Animation) RemoveLastFrame() {
	if len(a.frames) == 0 {
		panic("animation: RemoveLastFrame on empty animation")
	}
	a.frames = a.frames[:len(a.frames)-1]
	a.transitions = a.transitions[:len(a.transitions)-1]
	a.interpolators = a.interpolators[:len(a.interpolators)-1]
}

// GetFrameAtAbsolute renders the timeline state at an absolute time in
// milliseconds. Times beyond the duration wrap around while repeats
// remain; with a finite repeat count the effective time is the larger
// of the wrapped time and the excess past the final repeat, so the
// timeline keeps wrapping through one extra play-through before the
// final state holds.
func (a *Animation) GetFrameAtAbsolute(time float64) *vectsharp.Page {
	if len(a.frames) == 0 {
		return a.page(vectsharp.NewGraphics())
	}

	total := a.Duration()
	if total <= 0 {
		return a.page(a.frames[0].Scene.Clone())
	}

	if time < 0 {
		time = 0
	}
	if a.RepeatCount > 0 {
		// The excess over the final repeat overtakes the wrapped time
		// only once the timeline has fully played out, after which the
		// frame walk below lands on the last frame.
		time = math.Max(math.Mod(time, total), time-total*float64(a.RepeatCount))
	} else {
		time = math.Mod(time, total)
	}

	for i, frame := range a.frames {
		if time < frame.Duration {
			return a.page(frame.Scene.Clone())
		}
		time -= frame.Duration

		if i+1 < len(a.frames) {
			tr := a.transitions[i+1]
			if time < tr.Duration {
				pos := time / tr.Duration
				if tr.Easing != nil {
					pos = tr.Easing.Ease(pos)
				}
				return a.page(a.interpolators[i+1].Interpolate(pos))
			}
			time -= tr.Duration
		}
	}
	return a.page(a.frames[len(a.frames)-1].Scene.Clone())
}

// GetFrameAtRelative renders the timeline state at a fraction of the
// total duration.
func (a *Animation) GetFrameAtRelative(position float64) *vectsharp.Page {
	return a.GetFrameAtAbsolute(position * a.Duration())
}

func (a *Animation) page(scene *vectsharp.Graphics) *vectsharp.Page {
	p := vectsharp.NewPage(a.Width, a.Height)
	p.Background = a.Background
	p.Graphics = scene
	return p
}
