// Package pipeline wires the aggregation run together: read the report
// sources, normalize them into tallies, fold the tallies into aggregate
// statistics, then hand the statistics to every configured renderer.
// The run is a single synchronous pass; nothing is rendered until every
// source has parsed, so a malformed source aborts before any output file
// is written.
package pipeline

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"yqhp/perf-report/internal/aggregator"
	"yqhp/perf-report/internal/config"
	"yqhp/perf-report/internal/normalizer"
	"yqhp/perf-report/internal/reporter"
	"yqhp/perf-report/pkg/logger"
	"yqhp/perf-report/pkg/types"
)

// Pipeline executes one aggregation run.
type Pipeline struct {
	cfg       *config.Config
	renderers []reporter.Renderer
	now       func() time.Time
	log       *zap.Logger
}

// Option customizes a pipeline.
type Option func(*Pipeline)

// WithClock overrides the timestamp source (used by tests).
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) {
		p.now = now
	}
}

// WithLogger overrides the process logger (used by tests).
func WithLogger(log *zap.Logger) Option {
	return func(p *Pipeline) {
		p.log = log
	}
}

// New creates a pipeline from configuration with the renderers the
// output section asks for.
func New(cfg *config.Config, opts ...Option) (*Pipeline, error) {
	registry, err := reporter.NewDefaultRegistry()
	if err != nil {
		return nil, err
	}

	var renderers []reporter.Renderer
	if cfg.Output.Console {
		r, err := registry.Create(reporter.RendererTypeConsole, map[string]any{
			"color_output": cfg.Output.Color,
		})
		if err != nil {
			return nil, err
		}
		renderers = append(renderers, r)
	}
	if cfg.Output.MarkdownPath != "" {
		r, err := registry.Create(reporter.RendererTypeMarkdown, map[string]any{
			"file_path": cfg.Output.MarkdownPath,
		})
		if err != nil {
			return nil, err
		}
		renderers = append(renderers, r)
	}
	if cfg.Output.JSONPath != "" {
		r, err := registry.Create(reporter.RendererTypeJSON, map[string]any{
			"file_path": cfg.Output.JSONPath,
		})
		if err != nil {
			return nil, err
		}
		renderers = append(renderers, r)
	}

	p := &Pipeline{
		cfg:       cfg,
		renderers: renderers,
		now:       time.Now,
		log:       logger.L(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Run performs one aggregation pass and returns the resulting
// statistics. A malformed source aborts the run before any renderer is
// invoked.
func (p *Pipeline) Run() (*types.AggregateStats, error) {
	sources := p.cfg.SourceList()

	tallies, err := normalizer.NormalizeAll(sources)
	if err != nil {
		return nil, err
	}

	// Sources sharing a category are already merged, so log per category.
	for category, tally := range tallies {
		p.log.Debug("normalized report category",
			zap.String("category", string(category)),
			zap.Int64("passed", tally.Passed),
			zap.Int64("failed", tally.Failed),
			zap.Int64("skipped", tally.Skipped),
			zap.Int64("total", tally.Total),
		)
	}

	stats := aggregator.Aggregate(tallies)
	generatedAt := p.now()

	for _, r := range p.renderers {
		if err := r.Render(&stats, generatedAt); err != nil {
			return nil, fmt.Errorf("render %s summary: %w", r.Name(), err)
		}
	}

	p.log.Info("aggregation complete",
		zap.Int64("total", stats.TotalTests),
		zap.Int64("passed", stats.TotalPassed),
		zap.Int64("failed", stats.TotalFailed),
		zap.Float64("pass_rate", stats.PassRate),
	)

	return &stats, nil
}
