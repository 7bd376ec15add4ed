package layout

import "sort"

// ReadingOrderConfig holds configuration options for reading-order
// inference.
type ReadingOrderConfig struct {
	// MinGapRatio is the smallest whitespace gap the XY-cut will split
	// on, as a fraction of the page dimension along the cut axis
	// Default: 0.02
	MinGapRatio float64
}

// DefaultReadingOrderConfig returns sensible default configuration
func DefaultReadingOrderConfig() ReadingOrderConfig {
	return ReadingOrderConfig{
		MinGapRatio: 0.02,
	}
}

// ReadingOrderDetector orders paragraphs the way a human would read
// them.
type ReadingOrderDetector struct {
	config ReadingOrderConfig
}

// NewReadingOrderDetector creates a detector with default configuration.
func NewReadingOrderDetector() *ReadingOrderDetector {
	return &ReadingOrderDetector{config: DefaultReadingOrderConfig()}
}

// NewReadingOrderDetectorWithConfig creates a detector with custom
// configuration.
func NewReadingOrderDetectorWithConfig(config ReadingOrderConfig) *ReadingOrderDetector {
	return &ReadingOrderDetector{config: config}
}

// Order returns paragraph indices in reading order. Multi-column pages
// read column-major: the left column top to bottom, then the next.
// Single-column pages fall back to a recursive XY-cut. Every index
// appears exactly once.
func (d *ReadingOrderDetector) Order(paragraphs []Paragraph, columns []Column, pageWidth, pageHeight float64) []int {
	if len(paragraphs) == 0 {
		return nil
	}

	indices := make([]int, len(paragraphs))
	for i := range indices {
		indices[i] = i
	}

	if len(columns) > 1 {
		sort.SliceStable(indices, func(a, b int) bool {
			pa, pb := &paragraphs[indices[a]], &paragraphs[indices[b]]
			if pa.Column != pb.Column {
				return pa.Column < pb.Column
			}
			if pa.BBox.Top() != pb.BBox.Top() {
				return pa.BBox.Top() > pb.BBox.Top()
			}
			return pa.BBox.Left() < pb.BBox.Left()
		})
		return indices
	}

	var order []int
	d.xyCut(paragraphs, indices, true, pageWidth, pageHeight, &order)
	return order
}

// xyCut recursively bisects the index set along the largest whitespace
// gap, alternating between horizontal cuts (Y axis) and vertical cuts
// (X axis). Sets with no significant gap are ordered top-to-bottom,
// left-to-right.
func (d *ReadingOrderDetector) xyCut(paragraphs []Paragraph, indices []int, horizontal bool, pageWidth, pageHeight float64, order *[]int) {
	if len(indices) == 1 {
		*order = append(*order, indices[0])
		return
	}

	dim := pageWidth
	if horizontal {
		dim = pageHeight
	}
	before, after := d.splitAtLargestGap(paragraphs, indices, horizontal, d.config.MinGapRatio*dim)
	if before == nil {
		sort.SliceStable(indices, func(a, b int) bool {
			pa, pb := &paragraphs[indices[a]], &paragraphs[indices[b]]
			if pa.BBox.Top() != pb.BBox.Top() {
				return pa.BBox.Top() > pb.BBox.Top()
			}
			return pa.BBox.Left() < pb.BBox.Left()
		})
		*order = append(*order, indices...)
		return
	}
	d.xyCut(paragraphs, before, !horizontal, pageWidth, pageHeight, order)
	d.xyCut(paragraphs, after, !horizontal, pageWidth, pageHeight, order)
}

// splitAtLargestGap projects the elements onto the cut axis and finds
// the widest whitespace gap between their intervals. Returns nil slices
// when no gap exceeds minGap. For horizontal cuts the "before" group is
// the upper one; for vertical cuts it is the left one.
func (d *ReadingOrderDetector) splitAtLargestGap(paragraphs []Paragraph, indices []int, horizontal bool, minGap float64) (before, after []int) {
	lo := func(i int) float64 {
		if horizontal {
			return paragraphs[i].BBox.Bottom()
		}
		return paragraphs[i].BBox.Left()
	}
	hi := func(i int) float64 {
		if horizontal {
			return paragraphs[i].BBox.Top()
		}
		return paragraphs[i].BBox.Right()
	}

	sorted := make([]int, len(indices))
	copy(sorted, indices)
	sort.SliceStable(sorted, func(a, b int) bool {
		return lo(sorted[a]) < lo(sorted[b])
	})

	bestGap, bestCut := 0.0, -1
	edge := hi(sorted[0])
	for i := 1; i < len(sorted); i++ {
		gap := lo(sorted[i]) - edge
		if gap > bestGap {
			bestGap, bestCut = gap, i
		}
		if hi(sorted[i]) > edge {
			edge = hi(sorted[i])
		}
	}
	if bestCut < 0 || bestGap < minGap {
		return nil, nil
	}

	low, high := sorted[:bestCut], sorted[bestCut:]
	if horizontal {
		// Upper elements have larger Y, so the high side reads first.
		return high, low
	}
	return low, high
}
