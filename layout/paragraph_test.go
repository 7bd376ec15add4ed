package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParagraphBreakOnSpacing(t *testing.T) {
	// Gaps are 14, 14, 72; average leading is 33.3, so only the 72pt
	// jump exceeds twice the average.
	lines := []Line{
		makeLine(50, 700, 400),
		makeLine(50, 686, 400),
		makeLine(50, 672, 400),
		makeLine(50, 600, 400),
	}
	paragraphs := NewParagraphDetector().Detect(lines, NewIDGenerator())

	require.Len(t, paragraphs, 2)
	assert.Len(t, paragraphs[0].Lines, 3)
	assert.Len(t, paragraphs[1].Lines, 1)
	assert.Equal(t, "paragraph-1", paragraphs[0].ID)
}

func TestParagraphBreakOnColumnChange(t *testing.T) {
	left := makeLine(50, 700, 200)
	right := makeLine(350, 698, 200)
	right.Column = 1
	paragraphs := NewParagraphDetector().Detect([]Line{left, right}, NewIDGenerator())

	require.Len(t, paragraphs, 2)
	assert.Equal(t, 0, paragraphs[0].Column)
	assert.Equal(t, 1, paragraphs[1].Column)
}

func TestAlignmentInference(t *testing.T) {
	tests := []struct {
		name  string
		lines []Line
		want  Alignment
	}{
		{
			name: "justified",
			lines: []Line{
				makeLine(50, 700, 400),
				makeLine(50, 686, 400),
				makeLine(50, 672, 398),
			},
			want: AlignJustified,
		},
		{
			name: "left",
			lines: []Line{
				makeLine(50, 700, 400),
				makeLine(50, 686, 300),
				makeLine(50, 672, 350),
			},
			want: AlignLeft,
		},
		{
			name: "right",
			lines: []Line{
				makeLine(50, 700, 400),
				makeLine(150, 686, 300),
				makeLine(100, 672, 350),
			},
			want: AlignRight,
		},
		{
			name: "centered",
			lines: []Line{
				makeLine(100, 700, 400),
				makeLine(150, 686, 300),
				makeLine(125, 672, 350),
			},
			want: AlignCenter,
		},
		{
			name:  "single line defaults to left",
			lines: []Line{makeLine(200, 700, 100)},
			want:  AlignLeft,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paragraphs := NewParagraphDetector().Detect(tt.lines, NewIDGenerator())
			require.Len(t, paragraphs, 1)
			assert.Equal(t, tt.want, paragraphs[0].Alignment)
		})
	}
}

func TestNoLinesNoParagraphs(t *testing.T) {
	assert.Nil(t, NewParagraphDetector().Detect(nil, NewIDGenerator()))
}
