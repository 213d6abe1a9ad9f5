package vectsharp

import (
	"fmt"
	"math"
	"strings"

	"github.com/arklumpus/VectSharp-sub002/text"
)

// FontFamily identifies a typeface. Standard families resolve to
// embedded font data; custom families wrap caller-supplied font files.
type FontFamily struct {
	Name     string
	Source   *text.FontSource
	IsBold   bool
	IsItalic bool
}

// StandardFontFamilies lists the names of the built-in families.
var StandardFontFamilies = text.StandardFamilyNames

// StandardFontFamily resolves one of the built-in family names.
func StandardFontFamily(name string) (*FontFamily, error) {
	src, err := text.StandardSource(name)
	if err != nil {
		return nil, err
	}
	return &FontFamily{
		Name:     name,
		Source:   src,
		IsBold:   strings.Contains(name, "Bold"),
		IsItalic: strings.Contains(name, "Italic") || strings.Contains(name, "Oblique"),
	}, nil
}

// FontFamilyFromSource creates a family from an already-loaded font
// source.
func FontFamilyFromSource(src *text.FontSource) *FontFamily {
	return &FontFamily{Name: src.Name(), Source: src}
}

// FontFamilyFromFile loads a family from a TTF or OTF file.
func FontFamilyFromFile(path string) (*FontFamily, error) {
	src, err := text.NewFontSourceFromFile(path)
	if err != nil {
		return nil, err
	}
	return FontFamilyFromSource(src), nil
}

// FontUnderline describes how text drawn with a font is underlined.
// Position and Thickness are fractions of the font size; Position is
// measured downward from the baseline.
type FontUnderline struct {
	Position       float64
	Thickness      float64
	SkipDescenders bool
	Cap            LineCap
}

// Lerp blends two underline styles.
func (u FontUnderline) Lerp(other FontUnderline, t float64) FontUnderline {
	out := u
	if t >= 0.5 {
		out = other
	}
	out.Position = u.Position + (other.Position-u.Position)*t
	out.Thickness = u.Thickness + (other.Thickness-u.Thickness)*t
	return out
}

// TextBaseline selects the vertical anchor of drawn text.
type TextBaseline int

const (
	BaselineTop TextBaseline = iota
	BaselineBottom
	BaselineMiddle
	BaselineBaseline
)

// Font pairs a family with a size in graphics units and an optional
// underline.
type Font struct {
	Family    *FontFamily
	Size      float64
	Underline *FontUnderline
}

// NewFont creates a font at the given size.
func NewFont(family *FontFamily, size float64) Font {
	return Font{Family: family, Size: size}
}

// WithUnderline returns a copy of the font with the given underline.
func (f Font) WithUnderline(u FontUnderline) Font {
	f.Underline = &u
	return f
}

// Ascent returns the font ascent in graphics units.
func (f Font) Ascent() float64 {
	m, err := f.metrics()
	if err != nil {
		return 0
	}
	return m.Ascent
}

// Descent returns the font descent in graphics units, as a positive
// distance below the baseline.
func (f Font) Descent() float64 {
	m, err := f.metrics()
	if err != nil {
		return 0
	}
	return m.Descent
}

func (f Font) metrics() (text.FontMetrics, error) {
	if f.Family == nil || f.Family.Source == nil {
		return text.FontMetrics{}, fmt.Errorf("vectsharp: font has no family source")
	}
	parsed, err := f.Family.Source.Parsed()
	if err != nil {
		return text.FontMetrics{}, err
	}
	return parsed.Metrics(f.Size), nil
}

// TextMetrics describes the measured extent of a text run. Width
// excludes the side bearings; AdvanceWidth is the full pen advance.
// Top and Bottom are positive distances above and below the baseline.
type TextMetrics struct {
	Width            float64
	Height           float64
	LeftSideBearing  float64
	RightSideBearing float64
	Top              float64
	Bottom           float64
	AdvanceWidth     float64
}

// MeasureText returns the ink extent of a text run as a size.
func (f Font) MeasureText(s string) Size {
	m, err := f.MeasureTextAdvanced(s)
	if err != nil {
		return Size{}
	}
	return Sz(m.Width, m.Height)
}

// MeasureTextAdvanced measures a text run with HarfBuzz shaping,
// including kerning and ligature substitution, and reports side
// bearings and vertical ink extent alongside the advance width.
func (f Font) MeasureTextAdvanced(s string) (TextMetrics, error) {
	if f.Family == nil || f.Family.Source == nil {
		return TextMetrics{}, fmt.Errorf("vectsharp: font has no family source")
	}
	if s == "" {
		return TextMetrics{}, nil
	}

	source := f.Family.Source
	parsed, err := source.Parsed()
	if err != nil {
		return TextMetrics{}, err
	}
	glyphs, err := text.DefaultShaper().Shape(s, source, f.Size)
	if err != nil {
		return TextMetrics{}, err
	}
	if len(glyphs) == 0 {
		return TextMetrics{}, nil
	}

	advance := 0.0
	minX := math.Inf(1)
	maxX := math.Inf(-1)
	top := 0.0
	bottom := 0.0
	for _, g := range glyphs {
		advance += g.Advance
		b := parsed.GlyphBounds(g.GID, f.Size)
		if b.MinX == 0 && b.MaxX == 0 && b.MinY == 0 && b.MaxY == 0 {
			continue
		}
		minX = math.Min(minX, g.X+b.MinX)
		maxX = math.Max(maxX, g.X+b.MaxX)
		// Glyph boxes grow downward from the baseline.
		top = math.Max(top, -b.MinY)
		bottom = math.Max(bottom, b.MaxY)
	}

	if math.IsInf(minX, 1) {
		// Whitespace-only run: no ink.
		return TextMetrics{AdvanceWidth: advance}, nil
	}

	return TextMetrics{
		Width:            maxX - minX,
		Height:           top + bottom,
		LeftSideBearing:  minX,
		RightSideBearing: advance - maxX,
		Top:              top,
		Bottom:           bottom,
		AdvanceWidth:     advance,
	}, nil
}

// Lerp blends two fonts. The size interpolates continuously; family and
// underline presence switch at the midpoint.
func (f Font) Lerp(other Font, t float64) Font {
	out := f
	if t >= 0.5 {
		out = other
	}
	out.Size = f.Size + (other.Size-f.Size)*t
	if f.Underline != nil && other.Underline != nil {
		blended := f.Underline.Lerp(*other.Underline, t)
		out.Underline = &blended
	}
	return out
}
