// Package pdfmanager analyzes PDF page content streams. It chains a
// tokenizer, an operator parser, a graphics-state interpreter, and a
// layout analyzer into a single call that turns raw content-stream
// bytes into positioned text runs and a reconstructed page structure
// (words, lines, paragraphs, columns, tables, reading order).
//
// The core pipeline is total: malformed input degrades to partial
// output, never an error. Errors surface only for caller mistakes such
// as an invalid configuration or a cancelled context.
package pdfmanager

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/semaphore"

	"github.com/Ohio15/PDFManager-sub002/contentstream"
	"github.com/Ohio15/PDFManager-sub002/core"
	"github.com/Ohio15/PDFManager-sub002/font"
	"github.com/Ohio15/PDFManager-sub002/layout"
	"github.com/Ohio15/PDFManager-sub002/logger"
	"github.com/Ohio15/PDFManager-sub002/model"
	"github.com/Ohio15/PDFManager-sub002/text"
)

// Config controls the processor. Pages are independent, so the only
// resource knob is how many analyze in parallel.
type Config struct {
	MaxConcurrentPages int `validate:"min=1,max=64"`
	Layout             layout.Config
	Logger             logger.LogFunc
}

// NewDefaultConfig returns a config with default layout thresholds and
// moderate parallelism.
func NewDefaultConfig() *Config {
	return &Config{
		MaxConcurrentPages: 4,
		Layout:             layout.DefaultConfig(),
	}
}

// Validate checks the config against its struct tags.
func (cfg *Config) Validate() error {
	logger.Debug("validating config")
	validate := validator.New()
	return validate.Struct(cfg)
}

// Page is one page's input: its raw content-stream bytes, the resolved
// font table, and the page dimensions in points.
type Page struct {
	Content []byte
	Fonts   font.Table
	Width   float64
	Height  float64
}

// PageAnalysis is the full result for one page.
type PageAnalysis struct {
	Runs   []model.TextRun
	Layout *layout.Result
}

// Text returns the page's raw text in run order.
func (a *PageAnalysis) Text() string {
	out := ""
	for i := range a.Runs {
		out += a.Runs[i].Text()
	}
	return out
}

// Processor analyzes pages with bounded concurrency.
type Processor struct {
	cfg      *Config
	sem      *semaphore.Weighted
	analyzer *layout.Analyzer
}

// NewProcessor validates the config and creates a processor.
func NewProcessor(cfg *Config) (*Processor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if cfg.Logger != nil {
		logger.SetLogger(cfg.Logger)
	}
	logger.Debug("processor initialized", "max_concurrent_pages", cfg.MaxConcurrentPages)
	return &Processor{
		cfg:      cfg,
		sem:      semaphore.NewWeighted(int64(cfg.MaxConcurrentPages)),
		analyzer: layout.NewAnalyzerWithConfig(cfg.Layout),
	}, nil
}

// AnalyzePage runs the full pipeline over one page. The only error is a
// cancelled or expired context while waiting for a slot.
func (p *Processor) AnalyzePage(ctx context.Context, page Page) (*PageAnalysis, error) {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("acquire page slot: %w", err)
	}
	defer p.sem.Release(1)
	return p.analyzePage(page), nil
}

// AnalyzePages analyzes pages in parallel, up to MaxConcurrentPages at
// a time. Results keep the input order. A context error abandons pages
// not yet started; already-started pages finish.
func (p *Processor) AnalyzePages(ctx context.Context, pages []Page) ([]*PageAnalysis, error) {
	results := make([]*PageAnalysis, len(pages))
	var wg sync.WaitGroup
	var ctxErr error
	for i := range pages {
		if err := p.sem.Acquire(ctx, 1); err != nil {
			ctxErr = err
			break
		}
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			defer p.sem.Release(1)
			results[i] = p.analyzePage(pages[i])
		}(i)
	}
	wg.Wait()
	if ctxErr != nil {
		return nil, fmt.Errorf("analyze pages: %w", ctxErr)
	}
	return results, nil
}

func (p *Processor) analyzePage(page Page) *PageAnalysis {
	tokens := core.Tokenize(page.Content)
	ops := contentstream.Parse(tokens)
	runs := text.Interpret(ops, page.Fonts)
	logger.Debug("page interpreted", "operations", len(ops), "runs", len(runs))

	return &PageAnalysis{
		Runs:   runs,
		Layout: p.analyzer.Analyze(runs, page.Width, page.Height),
	}
}

// Analyze runs the pipeline over one page with default configuration
// and no concurrency limit. Convenience for single-page callers.
func Analyze(page Page) *PageAnalysis {
	tokens := core.Tokenize(page.Content)
	ops := contentstream.Parse(tokens)
	runs := text.Interpret(ops, page.Fonts)
	return &PageAnalysis{
		Runs:   runs,
		Layout: layout.NewAnalyzer().Analyze(runs, page.Width, page.Height),
	}
}
