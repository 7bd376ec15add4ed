package model

import "strings"

// Direction represents the writing direction of text.
type Direction int

const (
	// LTR (Left-to-Right) for Latin, Cyrillic, etc.
	LTR Direction = iota
	// RTL (Right-to-Left) for Arabic, Hebrew, etc.
	RTL
	// Neutral for numbers, punctuation, and whitespace.
	Neutral
)

// String returns a string representation of the direction.
func (d Direction) String() string {
	switch d {
	case LTR:
		return "LTR"
	case RTL:
		return "RTL"
	case Neutral:
		return "Neutral"
	default:
		return "Unknown"
	}
}

// Glyph is one positioned character from a shown string, in original
// stream order. X and Y are the glyph origin in page space, Width the
// horizontal advance in page units, and FontSize the effective size after
// text-matrix scaling. Transform is the full text-rendering matrix the
// glyph was placed with.
type Glyph struct {
	Code      int
	Text      string
	Width     float64
	X, Y      float64
	FontName  string
	FontSize  float64
	Transform Matrix
}

// TextRun is a maximal contiguous sequence of glyphs from one text
// placement. Runs are immutable once produced: the layout stages hold
// references into the run set and never copy or mutate glyph data.
type TextRun struct {
	Glyphs    []Glyph
	BBox      BBox
	Direction Direction
}

// Text returns the run's resolved text in stream order.
func (r *TextRun) Text() string {
	var sb strings.Builder
	for _, g := range r.Glyphs {
		sb.WriteString(g.Text)
	}
	return sb.String()
}

// Baseline returns the Y coordinate of the run's baseline, taken from its
// first glyph. Runs are never empty.
func (r *TextRun) Baseline() float64 {
	if len(r.Glyphs) == 0 {
		return r.BBox.Y
	}
	return r.Glyphs[0].Y
}

// FontSize returns the effective font size of the run's first glyph.
func (r *TextRun) FontSize() float64 {
	if len(r.Glyphs) == 0 {
		return 0
	}
	return r.Glyphs[0].FontSize
}

// ComputeRunBBox returns the union of per-glyph boxes
// [x, x+width] × [y, y+fontSize].
func ComputeRunBBox(glyphs []Glyph) BBox {
	if len(glyphs) == 0 {
		return BBox{}
	}
	box := BBox{X: glyphs[0].X, Y: glyphs[0].Y, Width: glyphs[0].Width, Height: glyphs[0].FontSize}
	for _, g := range glyphs[1:] {
		box = box.Union(BBox{X: g.X, Y: g.Y, Width: g.Width, Height: g.FontSize})
	}
	return box
}
