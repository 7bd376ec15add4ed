package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ohio15/PDFManager-sub002/model"
)

func makePara(x, y, width, height float64, column int) Paragraph {
	return Paragraph{
		BBox:   model.NewBBox(x, y, width, height),
		Column: column,
	}
}

func singleColumn(pageWidth, pageHeight float64) []Column {
	return []Column{{Index: 0, BBox: model.NewBBox(0, 0, pageWidth, pageHeight)}}
}

func TestSingleElementOrder(t *testing.T) {
	paragraphs := []Paragraph{makePara(50, 700, 400, 50, 0)}
	order := NewReadingOrderDetector().Order(paragraphs, singleColumn(612, 792), 612, 792)
	assert.Equal(t, []int{0}, order)
}

func TestColumnMajorOrder(t *testing.T) {
	paragraphs := []Paragraph{
		makePara(350, 700, 200, 50, 1),
		makePara(50, 400, 200, 50, 0),
		makePara(50, 700, 200, 50, 0),
		makePara(350, 400, 200, 50, 1),
	}
	columns := []Column{
		{Index: 0, BBox: model.NewBBox(50, 0, 200, 792)},
		{Index: 1, BBox: model.NewBBox(350, 0, 200, 792)},
	}
	order := NewReadingOrderDetector().Order(paragraphs, columns, 612, 792)
	assert.Equal(t, []int{2, 1, 0, 3}, order)
}

func TestXYCutGridOrder(t *testing.T) {
	// 2×2 grid in a single column: the first cut splits top from
	// bottom, the second splits left from right within each band.
	paragraphs := []Paragraph{
		makePara(350, 600, 200, 100, 0), // top right
		makePara(50, 100, 200, 100, 0),  // bottom left
		makePara(50, 600, 200, 100, 0),  // top left
		makePara(350, 100, 200, 100, 0), // bottom right
	}
	order := NewReadingOrderDetector().Order(paragraphs, singleColumn(612, 792), 612, 792)
	assert.Equal(t, []int{2, 0, 1, 3}, order)
}

func TestXYCutPreservesAllElements(t *testing.T) {
	var paragraphs []Paragraph
	for i := 0; i < 7; i++ {
		paragraphs = append(paragraphs, makePara(float64(40*i), 700-float64(90*i), 30, 30, 0))
	}
	order := NewReadingOrderDetector().Order(paragraphs, singleColumn(612, 792), 612, 792)

	require.Len(t, order, len(paragraphs))
	seen := make(map[int]bool)
	for _, i := range order {
		assert.False(t, seen[i], "index %d appears twice", i)
		seen[i] = true
	}
}

func TestNoGapFallsBackToTopToBottom(t *testing.T) {
	paragraphs := []Paragraph{
		makePara(50, 690, 400, 20, 0),
		makePara(50, 700, 400, 20, 0),
		makePara(50, 695, 400, 20, 0),
	}
	order := NewReadingOrderDetector().Order(paragraphs, singleColumn(612, 792), 612, 792)
	assert.Equal(t, []int{1, 2, 0}, order)
}

func TestEmptyOrder(t *testing.T) {
	assert.Nil(t, NewReadingOrderDetector().Order(nil, singleColumn(612, 792), 612, 792))
}
