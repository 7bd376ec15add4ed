package layout

import (
	"sort"
	"strings"

	"github.com/Ohio15/PDFManager-sub002/model"
)

// Line is a horizontal sequence of words sharing a baseline bucket.
type Line struct {
	// ID is the run-scoped object ID
	ID string

	// Words are the member words in visual reading order
	Words []Word

	// BBox is the union of the member words' boxes
	BBox model.BBox

	// Baseline is the average baseline Y of the member words
	Baseline float64

	// AverageFontSize is the mean font size across member words
	AverageFontSize float64

	// SpacingBefore is the baseline distance to the line above (0 for
	// the first line)
	SpacingBefore float64

	// SpacingAfter is the baseline distance to the line below (0 for
	// the last line)
	SpacingAfter float64

	// Column is the index of the column cluster the line falls in,
	// assigned by column detection
	Column int

	// Direction is the dominant writing direction of the line
	Direction model.Direction
}

// Text returns the line's words joined by single spaces.
func (l *Line) Text() string {
	parts := make([]string, len(l.Words))
	for i, w := range l.Words {
		parts[i] = w.Text
	}
	return strings.Join(parts, " ")
}

// LineConfig holds configuration options for line detection.
type LineConfig struct {
	// BaselineTolerance is the bucket size, in points, for grouping
	// word baselines into lines
	// Default: 2.0
	BaselineTolerance float64
}

// DefaultLineConfig returns sensible default configuration
func DefaultLineConfig() LineConfig {
	return LineConfig{
		BaselineTolerance: 2.0,
	}
}

// LineDetector groups words into baseline-bucketed lines.
type LineDetector struct {
	config LineConfig
}

// NewLineDetector creates a detector with default configuration.
func NewLineDetector() *LineDetector {
	return &LineDetector{config: DefaultLineConfig()}
}

// NewLineDetectorWithConfig creates a detector with custom configuration.
func NewLineDetectorWithConfig(config LineConfig) *LineDetector {
	return &LineDetector{config: config}
}

// Detect buckets words by baseline, merges buckets closer than the
// tolerance, and returns lines sorted top to bottom. Words within a
// line are sorted by X, descending when the line is right-to-left.
func (d *LineDetector) Detect(words []Word, ids *IDGenerator) []Line {
	if len(words) == 0 {
		return nil
	}

	groups := d.groupByBaseline(words)

	lines := make([]Line, 0, len(groups))
	for _, group := range groups {
		lines = append(lines, d.buildLine(group, ids))
	}
	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].Baseline > lines[j].Baseline
	})

	for i := 1; i < len(lines); i++ {
		spacing := lines[i-1].Baseline - lines[i].Baseline
		lines[i].SpacingBefore = spacing
		lines[i-1].SpacingAfter = spacing
	}
	return lines
}

func (d *LineDetector) groupByBaseline(words []Word) [][]Word {
	sorted := make([]Word, len(words))
	copy(sorted, words)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Baseline > sorted[j].Baseline
	})

	var groups [][]Word
	var groupBase float64
	for _, w := range sorted {
		if len(groups) > 0 && absFloat(w.Baseline-groupBase) <= d.config.BaselineTolerance {
			groups[len(groups)-1] = append(groups[len(groups)-1], w)
			continue
		}
		groups = append(groups, []Word{w})
		groupBase = w.Baseline
	}
	return groups
}

func (d *LineDetector) buildLine(group []Word, ids *IDGenerator) Line {
	dir := dominantWordDirection(group)
	sort.SliceStable(group, func(i, j int) bool {
		if dir == model.RTL {
			return group[i].BBox.Left() > group[j].BBox.Left()
		}
		return group[i].BBox.Left() < group[j].BBox.Left()
	})

	box := group[0].BBox
	baseSum, fontSum := 0.0, 0.0
	for _, w := range group {
		box = box.Union(w.BBox)
		baseSum += w.Baseline
		fontSum += w.FontSize
	}
	n := float64(len(group))
	return Line{
		ID:              ids.Next("line"),
		Words:           group,
		BBox:            box,
		Baseline:        baseSum / n,
		AverageFontSize: fontSum / n,
		Direction:       dir,
	}
}

func dominantWordDirection(words []Word) model.Direction {
	ltr, rtl := 0, 0
	for _, w := range words {
		switch w.Direction {
		case model.LTR:
			ltr++
		case model.RTL:
			rtl++
		}
	}
	switch {
	case rtl > ltr:
		return model.RTL
	case ltr > 0:
		return model.LTR
	default:
		return model.Neutral
	}
}
