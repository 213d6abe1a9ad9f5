package vectsharp

import "github.com/arklumpus/VectSharp-sub002/filters"

// Action is one retained drawing operation in a Graphics scene.
//
// Action is a sealed interface: the implementations in this package are
// the only ones.
type Action interface {
	actionMarker()

	// Tag returns the action's correspondence tag, or "" if untagged.
	Tag() string

	// CloneAction returns a deep copy of the action.
	CloneAction() Action
}

// TransformKind distinguishes the transform actions.
type TransformKind int

const (
	TransformTranslate TransformKind = iota
	TransformRotate
	TransformScale
	TransformMatrix
)

// TransformAction modifies the current coordinate system.
type TransformAction struct {
	Kind TransformKind

	// Delta is the translation for TransformTranslate.
	Delta Point

	// Angle is the rotation in radians for TransformRotate.
	Angle float64

	// ScaleX, ScaleY are the factors for TransformScale.
	ScaleX, ScaleY float64

	// Matrix is the full transform for TransformMatrix.
	Matrix Matrix

	tag string
}

func (*TransformAction) actionMarker() {}

func (a *TransformAction) Tag() string { return a.tag }

func (a *TransformAction) CloneAction() Action {
	out := *a
	return &out
}

// AsMatrix returns the transform as a matrix regardless of kind.
func (a *TransformAction) AsMatrix() Matrix {
	switch a.Kind {
	case TransformTranslate:
		return Translation(a.Delta.X, a.Delta.Y)
	case TransformRotate:
		return Rotation(a.Angle)
	case TransformScale:
		return Scaling(a.ScaleX, a.ScaleY)
	default:
		return a.Matrix
	}
}

// StateKind distinguishes the graphics state actions.
type StateKind int

const (
	StateSave StateKind = iota
	StateRestore
)

// StateAction saves or restores the graphics state.
type StateAction struct {
	Kind StateKind

	tag string
}

func (*StateAction) actionMarker() {}

func (a *StateAction) Tag() string { return a.tag }

func (a *StateAction) CloneAction() Action {
	out := *a
	return &out
}

// RectangleAction fills and/or strokes an axis-aligned rectangle.
type RectangleAction struct {
	Rect  Rect
	Style DrawStyle

	tag string
}

func (*RectangleAction) actionMarker() {}

func (a *RectangleAction) Tag() string { return a.tag }

func (a *RectangleAction) CloneAction() Action {
	out := *a
	return &out
}

// PathAction fills and/or strokes a path, or sets it as the clipping
// region.
type PathAction struct {
	Path     *GraphicsPath
	Style    DrawStyle
	FillRule FillRule

	// IsClipping intersects the current clip with the path instead of
	// painting it.
	IsClipping bool

	tag string
}

func (*PathAction) actionMarker() {}

func (a *PathAction) Tag() string { return a.tag }

func (a *PathAction) CloneAction() Action {
	out := *a
	if a.Path != nil {
		out.Path = a.Path.Clone()
	}
	return &out
}

// TextAction draws a text run anchored at Origin.
type TextAction struct {
	Origin   Point
	Text     string
	Font     Font
	Baseline TextBaseline
	Style    DrawStyle

	tag string
}

func (*TextAction) actionMarker() {}

func (a *TextAction) Tag() string { return a.tag }

func (a *TextAction) CloneAction() Action {
	out := *a
	return &out
}

// RasterImageAction draws a rectangular region of a raster image into a
// destination rectangle in graphics units.
type RasterImageAction struct {
	Image       *RasterImage
	Source      Rect
	Destination Rect

	tag string
}

func (*RasterImageAction) actionMarker() {}

func (a *RasterImageAction) Tag() string { return a.tag }

func (a *RasterImageAction) CloneAction() Action {
	out := *a
	return &out
}

// FilteredGraphicsAction draws a nested scene through a raster filter.
type FilteredGraphicsAction struct {
	Content *Graphics
	Filter  filters.Filter

	tag string
}

func (*FilteredGraphicsAction) actionMarker() {}

func (a *FilteredGraphicsAction) Tag() string { return a.tag }

func (a *FilteredGraphicsAction) CloneAction() Action {
	out := *a
	if a.Content != nil {
		out.Content = a.Content.Clone()
	}
	return &out
}
