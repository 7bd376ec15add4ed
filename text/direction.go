package text

import (
	"golang.org/x/text/unicode/bidi"

	"github.com/Ohio15/PDFManager-sub002/model"
)

// DetectDirection classifies the writing direction of a string by its
// first strong-directional rune. Strings with no strong runes (digits,
// punctuation, whitespace) are Neutral.
func DetectDirection(s string) model.Direction {
	for _, r := range s {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.L:
			return model.LTR
		case bidi.R, bidi.AL:
			return model.RTL
		}
	}
	return model.Neutral
}
