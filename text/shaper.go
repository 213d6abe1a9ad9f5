package text

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
)

// ShapedGlyph is one positioned glyph in a shaped run. X is the pen
// position at which the glyph is placed, relative to the run origin;
// Advance is the pen movement it contributes.
type ShapedGlyph struct {
	GID     uint16
	Cluster int
	X       float64
	Advance float64
}

// Shaper shapes text runs with HarfBuzz via go-text/typesetting,
// applying kerning and ligature substitution. It caches parsed
// font.Font objects per FontSource and pools the non-concurrent-safe
// HarfbuzzShaper instances, so a single Shaper can be shared.
type Shaper struct {
	pool sync.Pool

	mu    sync.RWMutex
	fonts map[*FontSource]*font.Font
}

// NewShaper creates a Shaper.
func NewShaper() *Shaper {
	return &Shaper{
		pool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		fonts: make(map[*FontSource]*font.Font),
	}
}

var defaultShaper = NewShaper()

// DefaultShaper returns the process-wide shared shaper.
func DefaultShaper() *Shaper {
	return defaultShaper
}

// Shape shapes a text run at the given pixel size and returns the
// positioned glyphs. Direction is resolved from the text itself.
func (s *Shaper) Shape(text string, source *FontSource, size float64) ([]ShapedGlyph, error) {
	if text == "" || source == nil {
		return nil, nil
	}

	goFont, err := s.getOrParse(source)
	if err != nil {
		return nil, err
	}
	// font.Face is not safe for concurrent use; wrapping the shared
	// *Font is cheap, so every call gets its own.
	face := font.NewFace(goFont)

	runes := []rune(text)
	dir := di.DirectionLTR
	if DetectDirection(text) == DirectionRTL {
		dir = di.DirectionRTL
	}

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      face,
		Size:      floatToFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := s.pool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	s.pool.Put(hb)

	glyphs := make([]ShapedGlyph, len(output.Glyphs))
	pen := 0.0
	for i, g := range output.Glyphs {
		adv := fixedToFloat(g.XAdvance)
		glyphs[i] = ShapedGlyph{
			GID:     uint16(g.GlyphID),
			Cluster: g.TextIndex(),
			X:       pen + fixedToFloat(g.XOffset),
			Advance: adv,
		}
		pen += adv
	}
	return glyphs, nil
}

// Advance returns the total shaped advance width of a text run.
func (s *Shaper) Advance(text string, source *FontSource, size float64) (float64, error) {
	glyphs, err := s.Shape(text, source, size)
	if err != nil {
		return 0, err
	}
	total := 0.0
	for _, g := range glyphs {
		total += g.Advance
	}
	return total, nil
}

// getOrParse returns the cached go-text font for a source, parsing on
// first use. font.Font is read-only and safe to share; font.Face is
// not, so only the Font is cached.
func (s *Shaper) getOrParse(source *FontSource) (*font.Font, error) {
	s.mu.RLock()
	if f, ok := s.fonts[source]; ok {
		s.mu.RUnlock()
		return f, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.fonts[source]; ok {
		return f, nil
	}

	face, err := font.ParseTTF(bytes.NewReader(source.Data()))
	if err != nil {
		return nil, err
	}
	s.fonts[source] = face.Font
	return face.Font, nil
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
