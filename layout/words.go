package layout

import (
	"sort"
	"strings"

	"github.com/Ohio15/PDFManager-sub002/model"
)

// Word is a group of text runs merged along a shared baseline.
type Word struct {
	// ID is the run-scoped object ID
	ID string

	// Text is the concatenated run text
	Text string

	// BBox is the union of the member runs' boxes
	BBox model.BBox

	// Baseline is the Y coordinate of the word's baseline
	Baseline float64

	// FontSize is the average effective font size of the member runs
	FontSize float64

	// Direction is the dominant writing direction
	Direction model.Direction

	// Runs are the member runs in merge order
	Runs []model.TextRun
}

// WordConfig holds configuration options for word detection.
type WordConfig struct {
	// SpacingThreshold is the maximum horizontal gap between runs to
	// merge, as a multiple of the average font size
	// Default: 0.3
	SpacingThreshold float64

	// BaselineTolerance is the maximum baseline Y difference, in points,
	// for two runs to count as sharing a baseline
	// Default: 2.0
	BaselineTolerance float64
}

// DefaultWordConfig returns sensible default configuration
func DefaultWordConfig() WordConfig {
	return WordConfig{
		SpacingThreshold:  0.3,
		BaselineTolerance: 2.0,
	}
}

// WordDetector merges text runs into words.
type WordDetector struct {
	config WordConfig
}

// NewWordDetector creates a detector with default configuration.
func NewWordDetector() *WordDetector {
	return &WordDetector{config: DefaultWordConfig()}
}

// NewWordDetectorWithConfig creates a detector with custom configuration.
func NewWordDetectorWithConfig(config WordConfig) *WordDetector {
	return &WordDetector{config: config}
}

// Detect sorts runs into reading order and merges consecutive runs that
// share a baseline and sit within the spacing threshold of each other.
// Overlapping runs (negative gap) are never merged.
func (d *WordDetector) Detect(runs []model.TextRun, ids *IDGenerator) []Word {
	if len(runs) == 0 {
		return nil
	}

	sorted := make([]model.TextRun, len(runs))
	copy(sorted, runs)
	sort.SliceStable(sorted, func(i, j int) bool {
		yi, yj := sorted[i].Baseline(), sorted[j].Baseline()
		if absFloat(yi-yj) > d.config.BaselineTolerance {
			return yi > yj
		}
		return sorted[i].BBox.Left() < sorted[j].BBox.Left()
	})

	var words []Word
	group := []model.TextRun{sorted[0]}
	for _, run := range sorted[1:] {
		prev := group[len(group)-1]
		if d.mergeable(prev, run) {
			group = append(group, run)
			continue
		}
		words = append(words, d.buildWord(group, ids))
		group = []model.TextRun{run}
	}
	words = append(words, d.buildWord(group, ids))
	return words
}

func (d *WordDetector) mergeable(prev, next model.TextRun) bool {
	if absFloat(prev.Baseline()-next.Baseline()) > d.config.BaselineTolerance {
		return false
	}
	gap := next.BBox.Left() - prev.BBox.Right()
	avgFont := (prev.FontSize() + next.FontSize()) / 2
	return gap >= 0 && gap <= avgFont*d.config.SpacingThreshold
}

func (d *WordDetector) buildWord(group []model.TextRun, ids *IDGenerator) Word {
	var sb strings.Builder
	box := group[0].BBox
	fontSum := 0.0
	for _, run := range group {
		sb.WriteString(run.Text())
		box = box.Union(run.BBox)
		fontSum += run.FontSize()
	}
	return Word{
		ID:        ids.Next("word"),
		Text:      sb.String(),
		BBox:      box,
		Baseline:  group[0].Baseline(),
		FontSize:  fontSum / float64(len(group)),
		Direction: dominantDirection(group),
		Runs:      group,
	}
}

// dominantDirection returns the direction occurring most often among the
// runs, ignoring neutral runs. All-neutral groups are Neutral.
func dominantDirection(runs []model.TextRun) model.Direction {
	ltr, rtl := 0, 0
	for _, run := range runs {
		switch run.Direction {
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

func absFloat(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
