package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeCellLine builds a line whose words sit at the given X positions,
// each 50pt wide. On a 612pt page the half column gap is 15.3pt, so
// 100pt strides separate cleanly.
func makeCellLine(y float64, xs ...float64) Line {
	var words []Word
	for _, x := range xs {
		words = append(words, makeWord("cell", x, y, 50, 12))
	}
	line := NewLineDetector().buildLine(words, NewIDGenerator())
	line.Baseline = y
	return line
}

func TestTwoRowTable(t *testing.T) {
	lines := []Line{
		makeCellLine(700, 50, 250, 450),
		makeCellLine(680, 50, 250, 450),
	}
	tables := NewTableDetector().Detect(lines, 612, NewIDGenerator())

	require.Len(t, tables, 1)
	require.Len(t, tables[0].Rows, 2)
	assert.Len(t, tables[0].Rows[0].Cells, 3)
	assert.Equal(t, []float64{50, 50, 50}, tables[0].ColumnWidths)
}

func TestSingleRowIsNotATable(t *testing.T) {
	lines := []Line{
		makeCellLine(700, 50, 250, 450),
		makeCellLine(600, 50),
	}
	tables := NewTableDetector().Detect(lines, 612, NewIDGenerator())
	assert.Empty(t, tables)
}

func TestSingleCellBandIsNotARow(t *testing.T) {
	lines := []Line{
		makeCellLine(700, 50),
		makeCellLine(680, 50),
	}
	tables := NewTableDetector().Detect(lines, 612, NewIDGenerator())
	assert.Empty(t, tables)
}

func TestNarrowGapsDoNotFormCells(t *testing.T) {
	// 10pt between words is below the 15.3pt half column gap.
	lines := []Line{
		makeCellLine(700, 50, 110),
		makeCellLine(680, 50, 110),
	}
	tables := NewTableDetector().Detect(lines, 612, NewIDGenerator())
	assert.Empty(t, tables)
}

func TestProseBreaksTableRuns(t *testing.T) {
	// Two separated row groups with prose between them stay two tables.
	lines := []Line{
		makeCellLine(700, 50, 250),
		makeCellLine(680, 50, 250),
		makeCellLine(650, 50),
		makeCellLine(620, 50, 250),
		makeCellLine(600, 50, 250),
	}
	tables := NewTableDetector().Detect(lines, 612, NewIDGenerator())

	require.Len(t, tables, 2)
	assert.Len(t, tables[0].Rows, 2)
	assert.Len(t, tables[1].Rows, 2)
}

func TestNoLinesNoTables(t *testing.T) {
	assert.Nil(t, NewTableDetector().Detect(nil, 612, NewIDGenerator()))
}
