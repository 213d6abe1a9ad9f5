package text

// GlyphRect is an axis-aligned glyph bounding box in pixel units at a
// given ppem. Y grows downward from the baseline, matching the sfnt
// convention.
type GlyphRect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// FontMetrics holds vertical font metrics in pixel units at a given
// ppem. All values are positive distances from the baseline.
type FontMetrics struct {
	Ascent    float64
	Descent   float64
	LineGap   float64
	XHeight   float64
	CapHeight float64
}

// ParsedFont is the parsed form of a font file. Implementations must be
// safe for concurrent use.
type ParsedFont interface {
	// Name returns the font family name, or "" if unavailable.
	Name() string

	// UnitsPerEm returns the font's design grid size.
	UnitsPerEm() int

	// GlyphIndex maps a rune to its glyph index, 0 if unmapped.
	GlyphIndex(r rune) uint16

	// GlyphAdvance returns the horizontal advance of a glyph in pixels
	// at the given ppem.
	GlyphAdvance(glyphIndex uint16, ppem float64) float64

	// GlyphBounds returns the glyph bounding box in pixels at the given
	// ppem.
	GlyphBounds(glyphIndex uint16, ppem float64) GlyphRect

	// Metrics returns the font-wide vertical metrics at the given ppem.
	Metrics(ppem float64) FontMetrics
}
