// Package file provides file-based renderers for the aggregate summary.
package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"yqhp/perf-report/pkg/types"
)

// MarkdownConfig holds configuration for the markdown renderer.
type MarkdownConfig struct {
	// FilePath is the output file path.
	FilePath string `yaml:"file_path"`
	// Title is the document heading.
	Title string `yaml:"title"`
}

// DefaultMarkdownConfig returns the default markdown renderer
// configuration.
func DefaultMarkdownConfig() *MarkdownConfig {
	return &MarkdownConfig{
		FilePath: "reports/test-summary.md",
		Title:    "Test Summary",
	}
}

// MarkdownRenderer writes the canonical summary table as a markdown
// document.
type MarkdownRenderer struct {
	config *MarkdownConfig
}

// NewMarkdownRenderer creates a new markdown renderer.
func NewMarkdownRenderer(config *MarkdownConfig) *MarkdownRenderer {
	if config == nil {
		config = DefaultMarkdownConfig()
	}
	return &MarkdownRenderer{config: config}
}

// NewMarkdownFactory returns a factory function for creating markdown
// renderers.
func NewMarkdownFactory() func(config map[string]any) (*MarkdownRenderer, error) {
	return func(config map[string]any) (*MarkdownRenderer, error) {
		cfg := DefaultMarkdownConfig()
		if config != nil {
			if v, ok := config["file_path"].(string); ok {
				cfg.FilePath = v
			}
			if v, ok := config["title"].(string); ok {
				cfg.Title = v
			}
		}
		return NewMarkdownRenderer(cfg), nil
	}
}

// Name returns the renderer name.
func (r *MarkdownRenderer) Name() string {
	return "markdown"
}

// Render writes the markdown document. The containing directory is
// created if missing.
func (r *MarkdownRenderer) Render(stats *types.AggregateStats, generatedAt time.Time) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", r.config.Title)
	fmt.Fprintf(&b, "Generated: %s\n\n", generatedAt.Format(time.RFC3339))

	b.WriteString("| Suite | Passed | Failed | Skipped | Total | Pass Rate | Duration |\n")
	b.WriteString("| --- | ---: | ---: | ---: | ---: | ---: | ---: |\n")

	for _, category := range stats.OrderedCategories() {
		suite := stats.Suites[category]
		fmt.Fprintf(&b, "| %s | %d | %d | %d | %d | %.2f%% | %.0fms |\n",
			category,
			suite.Passed,
			suite.Failed,
			suite.Skipped,
			suite.Total,
			suite.PassRate,
			suite.DurationMs,
		)
	}

	fmt.Fprintf(&b, "| **Total** | %d | %d | %d | %d | %.2f%% | |\n",
		stats.TotalPassed,
		stats.TotalFailed,
		stats.TotalSkipped,
		stats.TotalTests,
		stats.PassRate,
	)

	dir := filepath.Dir(r.config.FilePath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	if err := os.WriteFile(r.config.FilePath, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write markdown summary: %w", err)
	}
	return nil
}

// GetFilePath returns the output file path.
func (r *MarkdownRenderer) GetFilePath() string {
	return r.config.FilePath
}
