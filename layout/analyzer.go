package layout

import "github.com/Ohio15/PDFManager-sub002/model"

// Config holds configuration options for the layout analyzer. Each
// detection stage has its own sub-configuration.
type Config struct {
	// Word detection configuration
	Word WordConfig

	// Line detection configuration
	Line LineConfig

	// Column detection configuration
	Column ColumnConfig

	// Paragraph detection configuration
	Paragraph ParagraphConfig

	// Table detection configuration
	Table TableConfig

	// Reading order configuration
	ReadingOrder ReadingOrderConfig

	// DetectTables enables table detection
	DetectTables bool
}

// DefaultConfig returns a configuration with sensible defaults for
// typical document layout analysis.
func DefaultConfig() Config {
	return Config{
		Word:         DefaultWordConfig(),
		Line:         DefaultLineConfig(),
		Column:       DefaultColumnConfig(),
		Paragraph:    DefaultParagraphConfig(),
		Table:        DefaultTableConfig(),
		ReadingOrder: DefaultReadingOrderConfig(),
		DetectTables: true,
	}
}

// Result is the full structure reconstructed from one page's runs.
type Result struct {
	Words      []Word
	Lines      []Line
	Paragraphs []Paragraph
	Columns    []Column
	Tables     []Table

	// ReadingOrder holds indices into Paragraphs, each exactly once
	ReadingOrder []int

	PageWidth  float64
	PageHeight float64
}

// Analyzer chains the detection stages over a page's text runs.
type Analyzer struct {
	config Config

	words        *WordDetector
	lines        *LineDetector
	columns      *ColumnDetector
	paragraphs   *ParagraphDetector
	tables       *TableDetector
	readingOrder *ReadingOrderDetector
}

// NewAnalyzer creates an analyzer with default configuration.
func NewAnalyzer() *Analyzer {
	return NewAnalyzerWithConfig(DefaultConfig())
}

// NewAnalyzerWithConfig creates an analyzer with custom configuration.
func NewAnalyzerWithConfig(config Config) *Analyzer {
	return &Analyzer{
		config:       config,
		words:        NewWordDetectorWithConfig(config.Word),
		lines:        NewLineDetectorWithConfig(config.Line),
		columns:      NewColumnDetectorWithConfig(config.Column),
		paragraphs:   NewParagraphDetectorWithConfig(config.Paragraph),
		tables:       NewTableDetectorWithConfig(config.Table),
		readingOrder: NewReadingOrderDetectorWithConfig(config.ReadingOrder),
	}
}

// Analyze runs all detection stages over the page's runs. It never
// fails: empty input yields an empty result with a single page-spanning
// column. Object IDs come from a generator scoped to this call, so
// repeated runs over the same input are identical.
func (a *Analyzer) Analyze(runs []model.TextRun, pageWidth, pageHeight float64) *Result {
	ids := NewIDGenerator()

	result := &Result{
		PageWidth:  pageWidth,
		PageHeight: pageHeight,
	}
	result.Words = a.words.Detect(runs, ids)
	result.Lines = a.lines.Detect(result.Words, ids)
	result.Columns = a.columns.Detect(result.Lines, pageWidth, pageHeight)
	result.Paragraphs = a.paragraphs.Detect(result.Lines, ids)
	if a.config.DetectTables {
		result.Tables = a.tables.Detect(result.Lines, pageWidth, ids)
	}
	result.ReadingOrder = a.readingOrder.Order(result.Paragraphs, result.Columns, pageWidth, pageHeight)
	return result
}

// ParagraphsInOrder returns the paragraphs arranged by ReadingOrder.
func (r *Result) ParagraphsInOrder() []Paragraph {
	ordered := make([]Paragraph, 0, len(r.ReadingOrder))
	for _, i := range r.ReadingOrder {
		ordered = append(ordered, r.Paragraphs[i])
	}
	return ordered
}
