package text

import (
	"fmt"
	"sync"

	"github.com/go-fonts/latin-modern/lmmath"
	"github.com/go-fonts/latin-modern/lmmono10italic"
	"github.com/go-fonts/latin-modern/lmmono10regular"
	"github.com/go-fonts/latin-modern/lmroman10bold"
	"github.com/go-fonts/latin-modern/lmroman10bolditalic"
	"github.com/go-fonts/latin-modern/lmroman10italic"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/go-fonts/latin-modern/lmsans10bold"
	"github.com/go-fonts/latin-modern/lmsans10oblique"
	"github.com/go-fonts/latin-modern/lmsans10regular"
)

// standardData maps the 14 standard PostScript family names to embedded
// Latin Modern font data. Cuts that Latin Modern does not provide map
// to the closest available cut.
var standardData = map[string][]byte{
	"Times-Roman":           lmroman10regular.TTF,
	"Times-Bold":            lmroman10bold.TTF,
	"Times-Italic":          lmroman10italic.TTF,
	"Times-BoldItalic":      lmroman10bolditalic.TTF,
	"Helvetica":             lmsans10regular.TTF,
	"Helvetica-Bold":        lmsans10bold.TTF,
	"Helvetica-Oblique":     lmsans10oblique.TTF,
	"Helvetica-BoldOblique": lmsans10bold.TTF,
	"Courier":               lmmono10regular.TTF,
	"Courier-Bold":          lmmono10regular.TTF,
	"Courier-Oblique":       lmmono10italic.TTF,
	"Courier-BoldOblique":   lmmono10italic.TTF,
	"Symbol":                lmmath.TTF,
	"ZapfDingbats":          lmmath.TTF,
}

var (
	standardMu      sync.Mutex
	standardSources = map[string]*FontSource{}
)

// StandardFamilyNames lists the standard family names accepted by
// StandardSource, in their conventional order.
var StandardFamilyNames = []string{
	"Times-Roman", "Times-Bold", "Times-Italic", "Times-BoldItalic",
	"Helvetica", "Helvetica-Bold", "Helvetica-Oblique", "Helvetica-BoldOblique",
	"Courier", "Courier-Bold", "Courier-Oblique", "Courier-BoldOblique",
	"Symbol", "ZapfDingbats",
}

// IsStandardFamily reports whether name is one of the standard family
// names.
func IsStandardFamily(name string) bool {
	_, ok := standardData[name]
	return ok
}

// StandardSource returns the shared FontSource for a standard family
// name. Sources are created on first use and reused afterwards.
func StandardSource(name string) (*FontSource, error) {
	standardMu.Lock()
	defer standardMu.Unlock()

	if src, ok := standardSources[name]; ok {
		return src, nil
	}
	data, ok := standardData[name]
	if !ok {
		return nil, fmt.Errorf("text: unknown standard family %q", name)
	}
	src, err := NewFontSource(data)
	if err != nil {
		return nil, err
	}
	standardSources[name] = src
	return src, nil
}
