package text

import "golang.org/x/text/unicode/bidi"

// Direction is the resolved base direction of a text run.
type Direction int

const (
	DirectionLTR Direction = iota
	DirectionRTL
)

// DetectDirection resolves the base direction of a paragraph of text
// from its first strong directional character, following rules P2 and
// P3 of the Unicode bidirectional algorithm. Text with no strong
// characters resolves to left-to-right.
func DetectDirection(text string) Direction {
	for i := 0; i < len(text); {
		props, size := bidi.LookupString(text[i:])
		if size == 0 {
			break
		}
		switch props.Class() {
		case bidi.L:
			return DirectionLTR
		case bidi.R, bidi.AL:
			return DirectionRTL
		}
		i += size
	}
	return DirectionLTR
}
