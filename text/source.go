package text

import (
	"errors"
	"fmt"
	"os"
	"sync"
)

// ErrEmptyFontData is returned when a FontSource is created from an
// empty byte slice.
var ErrEmptyFontData = errors.New("text: empty font data")

// FontSource represents a loaded font file. It is heavyweight and
// should be shared: one source serves measurements at every size.
//
// FontSource is safe for concurrent use.
type FontSource struct {
	data []byte

	parseOnce sync.Once
	parsed    ParsedFont
	parseErr  error
}

// NewFontSource creates a FontSource from TTF or OTF data. The slice is
// copied internally and can be reused after this call. Parsing is
// deferred until the first metric query.
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	owned := make([]byte, len(data))
	copy(owned, data)
	return &FontSource{data: owned}, nil
}

// NewFontSourceFromFile creates a FontSource by reading a font file.
func NewFontSourceFromFile(path string) (*FontSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: reading font file: %w", err)
	}
	return NewFontSource(data)
}

// Parsed returns the parsed font, parsing the data on first use.
func (s *FontSource) Parsed() (ParsedFont, error) {
	s.parseOnce.Do(func() {
		s.parsed, s.parseErr = parseFont(s.data)
	})
	return s.parsed, s.parseErr
}

// Name returns the font family name recorded in the font, or "" if the
// data cannot be parsed.
func (s *FontSource) Name() string {
	parsed, err := s.Parsed()
	if err != nil {
		return ""
	}
	return parsed.Name()
}

// Data returns the raw font bytes. Callers must not modify the slice.
func (s *FontSource) Data() []byte {
	return s.data
}
