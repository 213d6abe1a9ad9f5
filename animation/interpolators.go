package animation

import (
	"math"

	vectsharp "github.com/arklumpus/VectSharp-sub002"
	"github.com/arklumpus/VectSharp-sub002/filters"
)

// interpolator produces the intermediate form of one matched action
// pair at a transition position in [0, 1].
type interpolator interface {
	at(pos float64) vectsharp.Action
}

// newInterpolator selects the strategy for a matched action pair. The
// pair is guaranteed to share a concrete type by the matching step.
// easing, when non-nil, reshapes the position for this pair only.
func newInterpolator(start, end vectsharp.Action, easing vectsharp.Easing, resolution float64) interpolator {
	base := baseInterpolator{start: start, end: end, easing: easing}
	switch s := start.(type) {
	case *vectsharp.TransformAction:
		return &transformInterpolator{baseInterpolator: base, s: s, e: end.(*vectsharp.TransformAction)}
	case *vectsharp.RectangleAction:
		return &rectangleInterpolator{baseInterpolator: base, s: s, e: end.(*vectsharp.RectangleAction)}
	case *vectsharp.PathAction:
		e := end.(*vectsharp.PathAction)
		return &pathInterpolator{
			baseInterpolator: base,
			s:                s,
			e:                e,
			morph:            newPathMorph(s.Path, e.Path, resolution),
		}
	case *vectsharp.TextAction:
		return &textInterpolator{baseInterpolator: base, s: s, e: end.(*vectsharp.TextAction)}
	case *vectsharp.RasterImageAction:
		return &rasterInterpolator{baseInterpolator: base, s: s, e: end.(*vectsharp.RasterImageAction)}
	case *vectsharp.FilteredGraphicsAction:
		e := end.(*vectsharp.FilteredGraphicsAction)
		return &filteredInterpolator{
			baseInterpolator: base,
			s:                s,
			e:                e,
			content:          NewGraphicsInterpolator(s.Content, e.Content, nil, resolution),
		}
	default:
		return &discreteInterpolator{baseInterpolator: base}
	}
}

// baseInterpolator carries the shared easing and boundary handling:
// the eased position at or below 0 yields the start action unchanged,
// at or above 1 the end action.
type baseInterpolator struct {
	start, end vectsharp.Action
	easing     vectsharp.Easing
}

// resolve applies the pair easing and checks the boundaries. When done
// is true the returned action is the final answer.
func (b *baseInterpolator) resolve(pos float64) (eased float64, done vectsharp.Action) {
	if b.easing != nil {
		pos = b.easing.Ease(pos)
	}
	if pos <= 0 {
		return 0, b.start.CloneAction()
	}
	if pos >= 1 {
		return 1, b.end.CloneAction()
	}
	return pos, nil
}

// discreteInterpolator switches from start to end at the midpoint.
// It serves state actions and any pair with no continuous blend.
type discreteInterpolator struct {
	baseInterpolator
}

func (i *discreteInterpolator) at(pos float64) vectsharp.Action {
	pos, done := i.resolve(pos)
	if done != nil {
		return done
	}
	if pos < 0.5 {
		return i.start.CloneAction()
	}
	return i.end.CloneAction()
}

type transformInterpolator struct {
	baseInterpolator
	s, e *vectsharp.TransformAction
}

func (i *transformInterpolator) at(pos float64) vectsharp.Action {
	pos, done := i.resolve(pos)
	if done != nil {
		return done
	}

	// Mixed kinds have no continuous blend; switch at the midpoint.
	if i.s.Kind != i.e.Kind {
		if pos < 0.5 {
			return i.s.CloneAction()
		}
		return i.e.CloneAction()
	}

	out := i.s.CloneAction().(*vectsharp.TransformAction)
	switch i.s.Kind {
	case vectsharp.TransformTranslate:
		out.Delta = i.s.Delta.Lerp(i.e.Delta, pos)
	case vectsharp.TransformRotate:
		out.Angle = lerp(i.s.Angle, i.e.Angle, pos)
	case vectsharp.TransformScale:
		out.ScaleX = lerp(i.s.ScaleX, i.e.ScaleX, pos)
		out.ScaleY = lerp(i.s.ScaleY, i.e.ScaleY, pos)
	default:
		out.Matrix = i.s.Matrix.Lerp(i.e.Matrix, pos)
	}
	return out
}

type rectangleInterpolator struct {
	baseInterpolator
	s, e *vectsharp.RectangleAction
}

func (i *rectangleInterpolator) at(pos float64) vectsharp.Action {
	pos, done := i.resolve(pos)
	if done != nil {
		return done
	}
	out := i.s.CloneAction().(*vectsharp.RectangleAction)
	out.Rect = i.s.Rect.Lerp(i.e.Rect, pos)
	out.Style = blendStyle(i.s.Style, i.e.Style, pos)
	return out
}

type pathInterpolator struct {
	baseInterpolator
	s, e  *vectsharp.PathAction
	morph *pathMorph
}

func (i *pathInterpolator) at(pos float64) vectsharp.Action {
	pos, done := i.resolve(pos)
	if done != nil {
		return done
	}
	out := i.s.CloneAction().(*vectsharp.PathAction)
	out.Path = i.morph.at(pos)
	out.Style = blendStyle(i.s.Style, i.e.Style, pos)
	if pos >= 0.5 {
		out.FillRule = i.e.FillRule
		out.IsClipping = i.e.IsClipping
	}
	return out
}

type textInterpolator struct {
	baseInterpolator
	s, e *vectsharp.TextAction
}

func (i *textInterpolator) at(pos float64) vectsharp.Action {
	pos, done := i.resolve(pos)
	if done != nil {
		return done
	}
	out := i.s.CloneAction().(*vectsharp.TextAction)
	if pos >= 0.5 {
		out.Text = i.e.Text
		out.Baseline = i.e.Baseline
	}
	out.Origin = i.s.Origin.Lerp(i.e.Origin, pos)
	out.Font = blendFont(i.s.Font, i.e.Font, pos)
	out.Style = blendStyle(i.s.Style, i.e.Style, pos)
	return out
}

// blendFont interpolates two fonts, ramping an underline in or out when
// only one side has one.
func blendFont(a, b vectsharp.Font, t float64) vectsharp.Font {
	switch {
	case a.Underline == nil && b.Underline != nil:
		zero := *b.Underline
		zero.Thickness = 0
		a.Underline = &zero
	case a.Underline != nil && b.Underline == nil:
		zero := *a.Underline
		zero.Thickness = 0
		b.Underline = &zero
	}
	return a.Lerp(b, t)
}

type rasterInterpolator struct {
	baseInterpolator
	s, e *vectsharp.RasterImageAction
}

func (i *rasterInterpolator) at(pos float64) vectsharp.Action {
	pos, done := i.resolve(pos)
	if done != nil {
		return done
	}
	out := i.s.CloneAction().(*vectsharp.RasterImageAction)
	if pos >= 0.5 {
		out.Image = i.e.Image
	}
	out.Source = i.s.Source.Lerp(i.e.Source, pos)
	out.Destination = i.s.Destination.Lerp(i.e.Destination, pos)
	return out
}

type filteredInterpolator struct {
	baseInterpolator
	s, e    *vectsharp.FilteredGraphicsAction
	content *GraphicsInterpolator
}

func (i *filteredInterpolator) at(pos float64) vectsharp.Action {
	pos, done := i.resolve(pos)
	if done != nil {
		return done
	}
	out := i.s.CloneAction().(*vectsharp.FilteredGraphicsAction)
	out.Content = i.content.Interpolate(pos)
	out.Filter = blendFilter(i.s.Filter, i.e.Filter, pos)
	return out
}

// blendFilter interpolates two filters of the same kind; mismatched
// kinds switch at the midpoint.
func blendFilter(a, b filters.Filter, t float64) filters.Filter {
	switch fa := a.(type) {
	case *filters.GaussianBlurFilter:
		if fb, ok := b.(*filters.GaussianBlurFilter); ok {
			return &filters.GaussianBlurFilter{
				StandardDeviation: math.Max(lerp(fa.StandardDeviation, fb.StandardDeviation, t), 0),
			}
		}
	case *filters.ColourMatrixFilter:
		if fb, ok := b.(*filters.ColourMatrixFilter); ok {
			return &filters.ColourMatrixFilter{Matrix: fa.Matrix.Lerp(fb.Matrix, t)}
		}
	case *filters.ConvolutionFilter:
		if fb, ok := b.(*filters.ConvolutionFilter); ok {
			if out := blendConvolution(fa, fb, t); out != nil {
				return out
			}
		}
	}
	if t < 0.5 {
		return a
	}
	return b
}

// blendConvolution blends two convolution kernels cell-wise. It returns
// nil when the kernel dimensions differ, leaving the caller to fall
// back to a discrete switch.
func blendConvolution(a, b *filters.ConvolutionFilter, t float64) *filters.ConvolutionFilter {
	if len(a.Kernel) != len(b.Kernel) {
		return nil
	}
	kernel := make([][]float64, len(a.Kernel))
	for i, row := range a.Kernel {
		if len(row) != len(b.Kernel[i]) {
			return nil
		}
		kernel[i] = make([]float64, len(row))
		for j, v := range row {
			kernel[i][j] = lerp(v, b.Kernel[i][j], t)
		}
	}

	out := &filters.ConvolutionFilter{
		Kernel:        kernel,
		Normalise:     a.Normalise,
		Scale:         lerp(a.Scale, b.Scale, t),
		Bias:          lerp(a.Bias, b.Bias, t),
		PreserveAlpha: a.PreserveAlpha,
	}
	if t >= 0.5 {
		out.Normalise = b.Normalise
		out.PreserveAlpha = b.PreserveAlpha
	}
	return out
}
