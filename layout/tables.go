package layout

import (
	"math"
	"sort"

	"github.com/Ohio15/PDFManager-sub002/model"
)

// TableCell is one cell of a detected table row.
type TableCell struct {
	Text string
	BBox model.BBox
}

// TableRow is one horizontal band of cells.
type TableRow struct {
	Cells []TableCell
	BBox  model.BBox
}

// Table is a group of consecutive cell rows. Detection is a whitespace
// heuristic over text geometry, not a grid-line detector.
type Table struct {
	// ID is the run-scoped object ID
	ID string

	// Rows are the member rows, top to bottom
	Rows []TableRow

	// BBox is the union of the member rows' boxes
	BBox model.BBox

	// ColumnWidths are the cell widths of the first row
	ColumnWidths []float64
}

// TableConfig holds configuration options for table detection.
type TableConfig struct {
	// BandHeight is the coarse Y bucket size, in points, for grouping
	// lines into candidate rows
	// Default: 10.0
	BandHeight float64

	// GapRatio mirrors the column detector's gap threshold; cells must
	// be separated by at least half of GapRatio × pageWidth
	// Default: 0.05
	GapRatio float64

	// MinRows is the minimum number of consecutive cell rows for a table
	// Default: 2
	MinRows int

	// MinCells is the minimum number of cells for a band to be a row
	// Default: 2
	MinCells int
}

// DefaultTableConfig returns sensible default configuration
func DefaultTableConfig() TableConfig {
	return TableConfig{
		BandHeight: 10.0,
		GapRatio:   0.05,
		MinRows:    2,
		MinCells:   2,
	}
}

// TableDetector finds tabular regions from line geometry.
type TableDetector struct {
	config TableConfig
}

// NewTableDetector creates a detector with default configuration.
func NewTableDetector() *TableDetector {
	return &TableDetector{config: DefaultTableConfig()}
}

// NewTableDetectorWithConfig creates a detector with custom configuration.
func NewTableDetectorWithConfig(config TableConfig) *TableDetector {
	return &TableDetector{config: config}
}

// Detect groups lines into coarse Y-bands, treats a band as a cell row
// when it has enough well-separated words, and assembles runs of
// consecutive cell rows into tables.
func (d *TableDetector) Detect(lines []Line, pageWidth float64, ids *IDGenerator) []Table {
	if len(lines) == 0 {
		return nil
	}

	bands := d.bandLines(lines)
	minCellGap := d.config.GapRatio * pageWidth / 2

	var tables []Table
	var rows []TableRow
	flushRows := func() {
		if len(rows) >= d.config.MinRows {
			tables = append(tables, d.buildTable(rows, ids))
		}
		rows = nil
	}
	for _, band := range bands {
		row, ok := d.bandToRow(band, minCellGap)
		if !ok {
			flushRows()
			continue
		}
		rows = append(rows, row)
	}
	flushRows()
	return tables
}

// bandLines buckets lines by baseline rounded to the band height and
// returns the bands top to bottom.
func (d *TableDetector) bandLines(lines []Line) [][]Line {
	byBand := make(map[int][]Line)
	for _, l := range lines {
		key := int(math.Round(l.Baseline / d.config.BandHeight))
		byBand[key] = append(byBand[key], l)
	}

	keys := make([]int, 0, len(byBand))
	for k := range byBand {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(keys)))

	bands := make([][]Line, len(keys))
	for i, k := range keys {
		bands[i] = byBand[k]
	}
	return bands
}

// bandToRow turns a band into a cell row when every adjacent pair of its
// words is separated by at least minCellGap. Bands with fewer words than
// MinCells never qualify.
func (d *TableDetector) bandToRow(band []Line, minCellGap float64) (TableRow, bool) {
	var words []Word
	for _, l := range band {
		words = append(words, l.Words...)
	}
	if len(words) < d.config.MinCells {
		return TableRow{}, false
	}
	sort.SliceStable(words, func(i, j int) bool {
		return words[i].BBox.Left() < words[j].BBox.Left()
	})

	for i := 1; i < len(words); i++ {
		if words[i].BBox.Left()-words[i-1].BBox.Right() < minCellGap {
			return TableRow{}, false
		}
	}

	cells := make([]TableCell, len(words))
	box := words[0].BBox
	for i, w := range words {
		cells[i] = TableCell{Text: w.Text, BBox: w.BBox}
		box = box.Union(w.BBox)
	}
	return TableRow{Cells: cells, BBox: box}, true
}

func (d *TableDetector) buildTable(rows []TableRow, ids *IDGenerator) Table {
	box := rows[0].BBox
	for _, r := range rows[1:] {
		box = box.Union(r.BBox)
	}
	widths := make([]float64, len(rows[0].Cells))
	for i, c := range rows[0].Cells {
		widths[i] = c.BBox.Width
	}
	return Table{
		ID:           ids.Next("table"),
		Rows:         rows,
		BBox:         box,
		ColumnWidths: widths,
	}
}
