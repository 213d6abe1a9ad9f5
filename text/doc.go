// Package text provides font loading, metrics and text shaping for the
// vectsharp drawing surface.
//
// A FontSource wraps raw TTF/OTF data and parses it lazily. Glyph
// metrics come from golang.org/x/image/font/sfnt; shaped advance
// widths (with kerning and ligatures applied) come from HarfBuzz via
// go-text/typesetting. The standard Latin Modern families used by the
// drawing surface are embedded, so measuring text never touches the
// filesystem.
package text
