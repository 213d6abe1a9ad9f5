package animation

import (
	"log/slog"
	"reflect"

	vectsharp "github.com/arklumpus/VectSharp-sub002"
)

// GraphicsInterpolator blends two retained scenes. Actions are matched
// across the scenes by tag and concrete type; every matched pair gets
// an interpolation strategy built once, up front. Unmatched actions
// pass through from whichever side of the transition is being shown.
type GraphicsInterpolator struct {
	start, end *vectsharp.Graphics

	// byTag maps a correspondence tag to the strategy for its pair.
	byTag map[string]interpolator
}

// NewGraphicsInterpolator builds an interpolator between two scenes.
// easings maps tags to per-pair easings; a missing entry leaves the
// pair's position linear. resolution is the arc-length sampling step
// used when morphing paths.
func NewGraphicsInterpolator(start, end *vectsharp.Graphics, easings map[string]vectsharp.Easing, resolution float64) *GraphicsInterpolator {
	g := &GraphicsInterpolator{
		start: start,
		end:   end,
		byTag: make(map[string]interpolator),
	}

	endByTag := make(map[string]vectsharp.Action)
	for _, a := range end.Actions() {
		if tag := a.Tag(); tag != "" {
			if _, dup := endByTag[tag]; dup {
				vectsharp.Logger().Warn("duplicate action tag", slog.String("tag", tag))
				continue
			}
			endByTag[tag] = a
		}
	}

	seen := make(map[string]bool)
	for _, a := range start.Actions() {
		tag := a.Tag()
		if tag == "" {
			continue
		}
		if seen[tag] {
			vectsharp.Logger().Warn("duplicate action tag", slog.String("tag", tag))
			continue
		}
		seen[tag] = true
		partner, ok := endByTag[tag]
		if !ok {
			continue
		}
		if reflect.TypeOf(a) != reflect.TypeOf(partner) {
			vectsharp.Logger().Warn("tag matches actions of different types",
				slog.String("tag", tag))
			continue
		}
		g.byTag[tag] = newInterpolator(a, partner, easings[tag], resolution)
	}
	return g
}

// Interpolate produces the intermediate scene at a position in [0, 1].
// The action list of the start scene drives the first half of the
// transition and the end scene's list the second half, so unmatched
// actions appear and disappear at the midpoint while matched pairs
// blend throughout.
func (g *GraphicsInterpolator) Interpolate(pos float64) *vectsharp.Graphics {
	if pos <= 0 {
		return g.start.Clone()
	}
	if pos >= 1 {
		return g.end.Clone()
	}

	side := g.start
	if pos >= 0.5 {
		side = g.end
	}

	out := vectsharp.NewGraphics()
	for _, a := range side.Actions() {
		if tag := a.Tag(); tag != "" {
			if interp, ok := g.byTag[tag]; ok {
				out.Append(interp.at(pos))
				continue
			}
		}
		out.Append(a.CloneAction())
	}
	return out
}
