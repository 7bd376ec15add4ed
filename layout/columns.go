package layout

import (
	"sort"

	"github.com/Ohio15/PDFManager-sub002/model"
)

// Column is one vertical region of the page holding a cluster of lines.
type Column struct {
	// Index is the column's position, left to right
	Index int

	// BBox covers the column's lines; a single detected column spans
	// the full page
	BBox model.BBox
}

// ColumnConfig holds configuration options for column detection.
type ColumnConfig struct {
	// GapRatio is the minimum horizontal gap between line X-extents to
	// start a new column cluster, as a fraction of page width
	// Default: 0.05
	GapRatio float64

	// MaxColumns is the maximum number of columns to detect
	// Default: 6
	MaxColumns int
}

// DefaultColumnConfig returns sensible default configuration
func DefaultColumnConfig() ColumnConfig {
	return ColumnConfig{
		GapRatio:   0.05,
		MaxColumns: 6,
	}
}

// ColumnDetector clusters line X-extents into columns.
type ColumnDetector struct {
	config ColumnConfig
}

// NewColumnDetector creates a detector with default configuration.
func NewColumnDetector() *ColumnDetector {
	return &ColumnDetector{config: DefaultColumnConfig()}
}

// NewColumnDetectorWithConfig creates a detector with custom configuration.
func NewColumnDetectorWithConfig(config ColumnConfig) *ColumnDetector {
	return &ColumnDetector{config: config}
}

// Detect clusters the lines' X-intervals and assigns each line's Column
// field. One or fewer clusters yields a single full-height column.
func (d *ColumnDetector) Detect(lines []Line, pageWidth, pageHeight float64) []Column {
	if len(lines) == 0 {
		return []Column{{Index: 0, BBox: model.NewBBox(0, 0, pageWidth, pageHeight)}}
	}

	clusters := d.clusterIntervals(lines, pageWidth)
	if len(clusters) <= 1 || len(clusters) > d.config.MaxColumns {
		for i := range lines {
			lines[i].Column = 0
		}
		return []Column{{Index: 0, BBox: model.NewBBox(0, 0, pageWidth, pageHeight)}}
	}

	columns := make([]Column, len(clusters))
	for i, cl := range clusters {
		box := lines[cl[0]].BBox
		for _, li := range cl[1:] {
			box = box.Union(lines[li].BBox)
		}
		columns[i] = Column{Index: i, BBox: box}
		for _, li := range cl {
			lines[li].Column = i
		}
	}
	return columns
}

// clusterIntervals orders lines by left edge and splits them into
// clusters wherever the gap between a line and the running right edge
// exceeds the page-relative threshold. Returned clusters hold line
// indices and are ordered left to right.
func (d *ColumnDetector) clusterIntervals(lines []Line, pageWidth float64) [][]int {
	order := make([]int, len(lines))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return lines[order[a]].BBox.Left() < lines[order[b]].BBox.Left()
	})

	minGap := d.config.GapRatio * pageWidth
	var clusters [][]int
	var rightEdge float64
	for _, li := range order {
		box := lines[li].BBox
		if len(clusters) > 0 && box.Left()-rightEdge <= minGap {
			clusters[len(clusters)-1] = append(clusters[len(clusters)-1], li)
			if box.Right() > rightEdge {
				rightEdge = box.Right()
			}
			continue
		}
		clusters = append(clusters, []int{li})
		rightEdge = box.Right()
	}
	return clusters
}
