package layout

import (
	"math"
	"strings"

	"github.com/Ohio15/PDFManager-sub002/model"
)

// Alignment classifies how a paragraph's lines sit between the margins.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
	AlignCenter
	AlignJustified
)

// String returns the alignment name.
func (a Alignment) String() string {
	switch a {
	case AlignRight:
		return "right"
	case AlignCenter:
		return "center"
	case AlignJustified:
		return "justified"
	default:
		return "left"
	}
}

// Paragraph is a vertical group of lines separated from its neighbors by
// spacing or a column change.
type Paragraph struct {
	// ID is the run-scoped object ID
	ID string

	// Lines are the member lines, top to bottom
	Lines []Line

	// BBox is the union of the member lines' boxes
	BBox model.BBox

	// Alignment is inferred from the variance of line edges
	Alignment Alignment

	// Column is the column cluster the paragraph belongs to
	Column int
}

// Text returns the paragraph's lines joined by single spaces.
func (p *Paragraph) Text() string {
	parts := make([]string, len(p.Lines))
	for i := range p.Lines {
		parts[i] = p.Lines[i].Text()
	}
	return strings.Join(parts, " ")
}

// ParagraphConfig holds configuration options for paragraph detection.
type ParagraphConfig struct {
	// SpacingThreshold is the multiplier for average leading above which
	// a vertical gap starts a new paragraph
	// Default: 2.0
	SpacingThreshold float64

	// AlignmentTolerance is the maximum standard deviation, in points,
	// for a line edge to count as aligned
	// Default: 10.0
	AlignmentTolerance float64
}

// DefaultParagraphConfig returns sensible default configuration
func DefaultParagraphConfig() ParagraphConfig {
	return ParagraphConfig{
		SpacingThreshold:   2.0,
		AlignmentTolerance: 10.0,
	}
}

// ParagraphDetector groups lines into paragraphs.
type ParagraphDetector struct {
	config ParagraphConfig
}

// NewParagraphDetector creates a detector with default configuration.
func NewParagraphDetector() *ParagraphDetector {
	return &ParagraphDetector{config: DefaultParagraphConfig()}
}

// NewParagraphDetectorWithConfig creates a detector with custom configuration.
func NewParagraphDetectorWithConfig(config ParagraphConfig) *ParagraphDetector {
	return &ParagraphDetector{config: config}
}

// Detect walks lines top to bottom and starts a new paragraph when the
// vertical gap exceeds the spacing threshold times the average leading,
// or when the column changes. Lines must already carry their column
// assignment and be sorted top to bottom.
func (d *ParagraphDetector) Detect(lines []Line, ids *IDGenerator) []Paragraph {
	if len(lines) == 0 {
		return nil
	}

	avgLeading := averageLeading(lines)
	breakGap := avgLeading * d.config.SpacingThreshold

	var paragraphs []Paragraph
	group := []Line{lines[0]}
	for _, line := range lines[1:] {
		prev := group[len(group)-1]
		gap := prev.Baseline - line.Baseline
		if gap > breakGap || line.Column != prev.Column {
			paragraphs = append(paragraphs, d.buildParagraph(group, ids))
			group = []Line{line}
			continue
		}
		group = append(group, line)
	}
	paragraphs = append(paragraphs, d.buildParagraph(group, ids))
	return paragraphs
}

func (d *ParagraphDetector) buildParagraph(lines []Line, ids *IDGenerator) Paragraph {
	box := lines[0].BBox
	for _, l := range lines[1:] {
		box = box.Union(l.BBox)
	}
	return Paragraph{
		ID:        ids.Next("paragraph"),
		Lines:     lines,
		BBox:      box,
		Alignment: d.inferAlignment(lines),
		Column:    lines[0].Column,
	}
}

// inferAlignment classifies the paragraph by the spread of its line
// edges. Low variance on both edges means justified text; low variance
// on a single edge means that edge is the anchor.
func (d *ParagraphDetector) inferAlignment(lines []Line) Alignment {
	if len(lines) < 2 {
		return AlignLeft
	}

	lefts := make([]float64, len(lines))
	rights := make([]float64, len(lines))
	centers := make([]float64, len(lines))
	for i, l := range lines {
		lefts[i] = l.BBox.Left()
		rights[i] = l.BBox.Right()
		centers[i] = l.BBox.Center().X
	}

	tol := d.config.AlignmentTolerance
	leftLow := stdDev(lefts) <= tol
	rightLow := stdDev(rights) <= tol

	switch {
	case leftLow && rightLow:
		return AlignJustified
	case leftLow:
		return AlignLeft
	case rightLow:
		return AlignRight
	case stdDev(centers) <= tol:
		return AlignCenter
	default:
		return AlignLeft
	}
}

// averageLeading is the mean baseline-to-baseline distance between
// consecutive lines. A single line has no leading; fall back to its
// font size so the break threshold stays meaningful.
func averageLeading(lines []Line) float64 {
	if len(lines) < 2 {
		return lines[0].AverageFontSize
	}
	sum := 0.0
	for i := 1; i < len(lines); i++ {
		sum += lines[i-1].Baseline - lines[i].Baseline
	}
	return sum / float64(len(lines)-1)
}

func stdDev(values []float64) float64 {
	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	variance := 0.0
	for _, v := range values {
		variance += (v - mean) * (v - mean)
	}
	return math.Sqrt(variance / float64(len(values)))
}
