package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ohio15/PDFManager-sub002/model"
)

func TestAnalyzeMergesAdjacentRuns(t *testing.T) {
	// "Hello" ends at x=140; at font size 12 the merge threshold is a
	// 3.6pt gap.
	runs := []model.TextRun{
		makeRun("Hello", 100, 700, 40, 12),
		makeRun("World", 142, 700, 40, 12),
	}
	result := NewAnalyzer().Analyze(runs, 612, 792)

	require.Len(t, result.Words, 1)
	assert.Equal(t, "HelloWorld", result.Words[0].Text)
	require.Len(t, result.Lines, 1)
	require.Len(t, result.Paragraphs, 1)
	assert.Equal(t, []int{0}, result.ReadingOrder)
}

func TestAnalyzeKeepsSeparatedRunsApart(t *testing.T) {
	runs := []model.TextRun{
		makeRun("Hello", 100, 700, 40, 12),
		makeRun("World", 160, 700, 40, 12),
	}
	result := NewAnalyzer().Analyze(runs, 612, 792)

	require.Len(t, result.Words, 2)
	assert.Equal(t, "Hello", result.Words[0].Text)
	assert.Equal(t, "World", result.Words[1].Text)
	require.Len(t, result.Lines, 1)
	assert.Equal(t, "Hello World", result.Lines[0].Text())
}

func TestAnalyzeEmptyPage(t *testing.T) {
	result := NewAnalyzer().Analyze(nil, 612, 792)

	assert.Empty(t, result.Words)
	assert.Empty(t, result.Lines)
	assert.Empty(t, result.Paragraphs)
	assert.Empty(t, result.Tables)
	assert.Empty(t, result.ReadingOrder)
	require.Len(t, result.Columns, 1)
	assert.Equal(t, model.NewBBox(0, 0, 612, 792), result.Columns[0].BBox)
}

func TestAnalyzeSingleRun(t *testing.T) {
	result := NewAnalyzer().Analyze([]model.TextRun{makeRun("only", 100, 700, 40, 12)}, 612, 792)

	require.Len(t, result.Paragraphs, 1)
	assert.Equal(t, "only", result.Paragraphs[0].Text())
	assert.Equal(t, []int{0}, result.ReadingOrder)
}

func TestAnalyzeIDsAreDeterministic(t *testing.T) {
	runs := []model.TextRun{
		makeRun("a", 100, 700, 10, 12),
		makeRun("b", 100, 680, 10, 12),
	}
	first := NewAnalyzer().Analyze(runs, 612, 792)
	second := NewAnalyzer().Analyze(runs, 612, 792)

	require.Len(t, first.Words, 2)
	assert.Equal(t, first.Words[0].ID, second.Words[0].ID)
	assert.Equal(t, first.Lines[0].ID, second.Lines[0].ID)
	assert.Equal(t, first.Paragraphs[0].ID, second.Paragraphs[0].ID)
}

func TestAnalyzeTwoColumnPage(t *testing.T) {
	// Right-column baselines are offset so the two columns never share
	// a line bucket.
	var runs []model.TextRun
	for i := 0; i < 4; i++ {
		y := 700 - float64(14*i)
		runs = append(runs,
			makeRun("left", 50, y, 200, 12),
			makeRun("right", 350, y-7, 200, 12),
		)
	}
	result := NewAnalyzer().Analyze(runs, 612, 792)

	require.Len(t, result.Columns, 2)
	ordered := result.ParagraphsInOrder()
	require.NotEmpty(t, ordered)
	assert.Equal(t, 0, ordered[0].Column)
	assert.Equal(t, 1, ordered[len(ordered)-1].Column)
}

func TestParagraphsInOrder(t *testing.T) {
	result := &Result{
		Paragraphs:   []Paragraph{{ID: "paragraph-1"}, {ID: "paragraph-2"}},
		ReadingOrder: []int{1, 0},
	}
	ordered := result.ParagraphsInOrder()
	assert.Equal(t, "paragraph-2", ordered[0].ID)
	assert.Equal(t, "paragraph-1", ordered[1].ID)
}
