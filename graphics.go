package vectsharp

import (
	"github.com/arklumpus/VectSharp-sub002/filters"
)

// DrawOption configures a single drawing call.
type DrawOption func(*drawOptions)

type drawOptions struct {
	tag      string
	style    DrawStyle
	fillRule FillRule
	baseline TextBaseline
}

func defaultDrawOptions() drawOptions {
	return drawOptions{style: DefaultStroke(nil), baseline: BaselineBaseline}
}

// WithTag assigns a correspondence tag to the drawn action. Actions
// with equal tags in different scenes are matched when interpolating.
func WithTag(tag string) DrawOption {
	return func(o *drawOptions) { o.tag = tag }
}

// WithLineWidth sets the stroke width.
func WithLineWidth(w float64) DrawOption {
	return func(o *drawOptions) { o.style.LineWidth = w }
}

// WithLineCap sets the stroke cap.
func WithLineCap(c LineCap) DrawOption {
	return func(o *drawOptions) { o.style.Cap = c }
}

// WithLineJoin sets the stroke join.
func WithLineJoin(j LineJoin) DrawOption {
	return func(o *drawOptions) { o.style.Join = j }
}

// WithLineDash sets the stroke dash pattern.
func WithLineDash(d LineDash) DrawOption {
	return func(o *drawOptions) { o.style.Dash = d }
}

// WithFillRule selects the fill rule for path fills and clips.
func WithFillRule(r FillRule) DrawOption {
	return func(o *drawOptions) { o.fillRule = r }
}

// WithBaseline selects the vertical anchor for text.
func WithBaseline(b TextBaseline) DrawOption {
	return func(o *drawOptions) { o.baseline = b }
}

// Graphics is a retained scene: an ordered list of drawing actions.
// The zero value is an empty scene ready for use.
type Graphics struct {
	actions []Action
}

// NewGraphics creates an empty scene.
func NewGraphics() *Graphics {
	return &Graphics{}
}

// Actions returns the scene's action list.
func (g *Graphics) Actions() []Action {
	return g.actions
}

// Append adds an already-built action to the scene.
func (g *Graphics) Append(a Action) {
	g.actions = append(g.actions, a)
}

// Clone returns a deep copy of the scene.
func (g *Graphics) Clone() *Graphics {
	out := NewGraphics()
	out.actions = make([]Action, len(g.actions))
	for i, a := range g.actions {
		out.actions[i] = a.CloneAction()
	}
	return out
}

func applyOptions(opts []DrawOption) drawOptions {
	o := defaultDrawOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// FillPath fills a path with a brush.
func (g *Graphics) FillPath(path *GraphicsPath, fill Brush, opts ...DrawOption) {
	o := applyOptions(opts)
	style := o.style
	style.Fill = fill
	style.Stroke = nil
	g.actions = append(g.actions, &PathAction{
		Path:     path.Clone(),
		Style:    style,
		FillRule: o.fillRule,
		tag:      o.tag,
	})
}

// StrokePath strokes a path with a brush.
func (g *Graphics) StrokePath(path *GraphicsPath, stroke Brush, opts ...DrawOption) {
	o := applyOptions(opts)
	style := o.style
	style.Stroke = stroke
	g.actions = append(g.actions, &PathAction{
		Path:  path.Clone(),
		Style: style,
		tag:   o.tag,
	})
}

// FillRectangle fills an axis-aligned rectangle.
func (g *Graphics) FillRectangle(r Rect, fill Brush, opts ...DrawOption) {
	o := applyOptions(opts)
	style := o.style
	style.Fill = fill
	style.Stroke = nil
	g.actions = append(g.actions, &RectangleAction{Rect: r, Style: style, tag: o.tag})
}

// StrokeRectangle strokes an axis-aligned rectangle.
func (g *Graphics) StrokeRectangle(r Rect, stroke Brush, opts ...DrawOption) {
	o := applyOptions(opts)
	style := o.style
	style.Stroke = stroke
	g.actions = append(g.actions, &RectangleAction{Rect: r, Style: style, tag: o.tag})
}

// FillText draws filled text anchored at origin.
func (g *Graphics) FillText(origin Point, s string, font Font, fill Brush, opts ...DrawOption) {
	o := applyOptions(opts)
	style := o.style
	style.Fill = fill
	style.Stroke = nil
	g.actions = append(g.actions, &TextAction{
		Origin:   origin,
		Text:     s,
		Font:     font,
		Baseline: o.baseline,
		Style:    style,
		tag:      o.tag,
	})
}

// StrokeText draws stroked text anchored at origin.
func (g *Graphics) StrokeText(origin Point, s string, font Font, stroke Brush, opts ...DrawOption) {
	o := applyOptions(opts)
	style := o.style
	style.Stroke = stroke
	g.actions = append(g.actions, &TextAction{
		Origin:   origin,
		Text:     s,
		Font:     font,
		Baseline: o.baseline,
		Style:    style,
		tag:      o.tag,
	})
}

// DrawRasterImage draws the source region of an image into the
// destination rectangle.
func (g *Graphics) DrawRasterImage(img *RasterImage, source, destination Rect, opts ...DrawOption) {
	o := applyOptions(opts)
	g.actions = append(g.actions, &RasterImageAction{
		Image:       img,
		Source:      source,
		Destination: destination,
		tag:         o.tag,
	})
}

// DrawGraphics embeds another scene at the given origin. The embedded
// actions are cloned, bracketed by a state save/restore pair and a
// translation.
func (g *Graphics) DrawGraphics(origin Point, other *Graphics, opts ...DrawOption) {
	o := applyOptions(opts)
	g.actions = append(g.actions, &StateAction{Kind: StateSave})
	g.actions = append(g.actions, &TransformAction{Kind: TransformTranslate, Delta: origin, tag: o.tag})
	for _, a := range other.actions {
		g.actions = append(g.actions, a.CloneAction())
	}
	g.actions = append(g.actions, &StateAction{Kind: StateRestore})
}

// DrawFilteredGraphics embeds another scene drawn through a raster
// filter.
func (g *Graphics) DrawFilteredGraphics(content *Graphics, filter filters.Filter, opts ...DrawOption) {
	o := applyOptions(opts)
	g.actions = append(g.actions, &FilteredGraphicsAction{
		Content: content.Clone(),
		Filter:  filter,
		tag:     o.tag,
	})
}

// SetClippingPath intersects the current clipping region with a path.
func (g *Graphics) SetClippingPath(path *GraphicsPath, opts ...DrawOption) {
	o := applyOptions(opts)
	g.actions = append(g.actions, &PathAction{
		Path:       path.Clone(),
		FillRule:   o.fillRule,
		IsClipping: true,
		tag:        o.tag,
	})
}

// Translate shifts the coordinate system.
func (g *Graphics) Translate(dx, dy float64, opts ...DrawOption) {
	o := applyOptions(opts)
	g.actions = append(g.actions, &TransformAction{Kind: TransformTranslate, Delta: Pt(dx, dy), tag: o.tag})
}

// Rotate rotates the coordinate system by an angle in radians.
func (g *Graphics) Rotate(angle float64, opts ...DrawOption) {
	o := applyOptions(opts)
	g.actions = append(g.actions, &TransformAction{Kind: TransformRotate, Angle: angle, tag: o.tag})
}

// Scale scales the coordinate system.
func (g *Graphics) Scale(sx, sy float64, opts ...DrawOption) {
	o := applyOptions(opts)
	g.actions = append(g.actions, &TransformAction{Kind: TransformScale, ScaleX: sx, ScaleY: sy, tag: o.tag})
}

// Transform applies an arbitrary affine transform to the coordinate
// system.
func (g *Graphics) Transform(m Matrix, opts ...DrawOption) {
	o := applyOptions(opts)
	g.actions = append(g.actions, &TransformAction{Kind: TransformMatrix, Matrix: m, tag: o.tag})
}

// Save pushes the current graphics state.
func (g *Graphics) Save() {
	g.actions = append(g.actions, &StateAction{Kind: StateSave})
}

// Restore pops the most recently saved graphics state.
func (g *Graphics) Restore() {
	g.actions = append(g.actions, &StateAction{Kind: StateRestore})
}

// Bounds returns the axis-aligned bounding box of the scene's painted
// content, taking transforms into account. Clipping paths do not
// contribute.
func (g *Graphics) Bounds() Rect {
	first := true
	var bounds Rect
	matrix := Identity()
	var stack []Matrix

	include := func(r Rect) {
		corners := []Point{
			r.Min,
			Pt(r.Max.X, r.Min.Y),
			r.Max,
			Pt(r.Min.X, r.Max.Y),
		}
		for _, c := range corners {
			p := matrix.TransformPoint(c)
			pr := NewRect(p, p)
			if first {
				bounds = pr
				first = false
			} else {
				bounds = bounds.Union(pr)
			}
		}
	}

	for _, a := range g.actions {
		switch act := a.(type) {
		case *TransformAction:
			matrix = matrix.Multiply(act.AsMatrix())
		case *StateAction:
			if act.Kind == StateSave {
				stack = append(stack, matrix)
			} else if len(stack) > 0 {
				matrix = stack[len(stack)-1]
				stack = stack[:len(stack)-1]
			}
		case *RectangleAction:
			include(act.Rect)
		case *PathAction:
			if !act.IsClipping && act.Path != nil {
				include(act.Path.Bounds())
			}
		case *RasterImageAction:
			include(act.Destination)
		case *TextAction:
			include(textBounds(act))
		case *FilteredGraphicsAction:
			if act.Content != nil {
				inner := act.Content.Bounds()
				if act.Filter != nil {
					m := act.Filter.Margin()
					inner = NewRect(
						Pt(inner.Min.X-m, inner.Min.Y-m),
						Pt(inner.Max.X+m, inner.Max.Y+m),
					)
				}
				include(inner)
			}
		}
	}
	return bounds
}

// textBounds approximates the painted extent of a text action from its
// measured metrics and baseline anchor.
func textBounds(a *TextAction) Rect {
	m, err := a.Font.MeasureTextAdvanced(a.Text)
	if err != nil {
		return NewRect(a.Origin, a.Origin)
	}

	var baselineY float64
	switch a.Baseline {
	case BaselineTop:
		baselineY = a.Origin.Y + m.Top
	case BaselineBottom:
		baselineY = a.Origin.Y - m.Bottom
	case BaselineMiddle:
		baselineY = a.Origin.Y + (m.Top-m.Bottom)/2
	default:
		baselineY = a.Origin.Y
	}

	return NewRect(
		Pt(a.Origin.X+m.LeftSideBearing, baselineY-m.Top),
		Pt(a.Origin.X+m.LeftSideBearing+m.Width, baselineY+m.Bottom),
	)
}

// Page is a drawing surface with a fixed size in graphics units.
type Page struct {
	Width      float64
	Height     float64
	Background RGBA
	Graphics   *Graphics
}

// NewPage creates a page with a transparent background.
func NewPage(width, height float64) *Page {
	return &Page{
		Width:      width,
		Height:     height,
		Background: Transparent,
		Graphics:   NewGraphics(),
	}
}

// Crop adjusts the page to the given region: content is translated so
// that the region's top-left corner becomes the origin.
func (p *Page) Crop(region Rect) {
	translated := NewGraphics()
	translated.Translate(-region.Min.X, -region.Min.Y)
	for _, a := range p.Graphics.actions {
		translated.actions = append(translated.actions, a)
	}
	p.Graphics = translated
	p.Width = region.Width()
	p.Height = region.Height()
}
