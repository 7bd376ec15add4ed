// Package font provides the minimal font metadata the interpreter needs
// to place glyphs: per-code advance widths in 1000-unit glyph space and
// an optional code-to-text mapping.
package font

// DefaultWidth is the advance, in 1000-unit glyph space, assumed for any
// code a font carries no width for.
const DefaultWidth = 500.0

// Font describes one font resource referenced by a Tf operator.
type Font struct {
	// Name is the resource name the content stream selects the font by.
	Name string

	// Widths maps character codes to advance widths in glyph space.
	Widths map[int]float64

	// ToUnicode maps character codes to their text. Codes without an
	// entry fall back to the code's rune value.
	ToUnicode map[int]string
}

// Width returns the advance width for a character code, falling back to
// DefaultWidth when the font has no entry for it.
func (f *Font) Width(code int) float64 {
	if f != nil && f.Widths != nil {
		if w, ok := f.Widths[code]; ok {
			return w
		}
	}
	return DefaultWidth
}

// Decode returns the text for a character code. Codes without a
// ToUnicode entry decode as their rune value, which is correct for the
// standard Latin encodings.
func (f *Font) Decode(code int) string {
	if f != nil && f.ToUnicode != nil {
		if s, ok := f.ToUnicode[code]; ok {
			return s
		}
	}
	return string(rune(code))
}

// Table maps resource names to fonts for one page.
type Table map[string]*Font

// Lookup returns the font for a resource name, or nil when the table has
// no entry. A nil table is a valid empty table.
func (t Table) Lookup(name string) *Font {
	if t == nil {
		return nil
	}
	return t[name]
}
