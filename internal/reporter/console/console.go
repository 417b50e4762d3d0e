// Package console renders aggregate statistics as a colored terminal
// transcript.
package console

import (
	"fmt"
	"io"
	"os"
	"time"

	"yqhp/perf-report/pkg/types"
)

// Rate bands for coloring: at or above Good is healthy, at or above Warn
// is degraded, anything below is bad.
const (
	bandGood = 90.0
	bandWarn = 70.0
)

// Config holds configuration for the console renderer.
type Config struct {
	// ColorOutput enables ANSI colored output.
	ColorOutput bool `yaml:"color_output"`
	// Writer is the output writer (defaults to os.Stdout).
	Writer io.Writer `yaml:"-"`
}

// DefaultConfig returns the default console renderer configuration.
func DefaultConfig() *Config {
	return &Config{
		ColorOutput: true,
		Writer:      os.Stdout,
	}
}

// Renderer writes the summary transcript to a terminal.
type Renderer struct {
	config *Config
	writer io.Writer
}

// New creates a new console renderer.
func New(config *Config) *Renderer {
	if config == nil {
		config = DefaultConfig()
	}
	if config.Writer == nil {
		config.Writer = os.Stdout
	}
	return &Renderer{
		config: config,
		writer: config.Writer,
	}
}

// NewFactory returns a factory function for creating console renderers.
func NewFactory() func(config map[string]any) (*Renderer, error) {
	return func(config map[string]any) (*Renderer, error) {
		cfg := DefaultConfig()
		if config != nil {
			if v, ok := config["color_output"].(bool); ok {
				cfg.ColorOutput = v
			}
			if v, ok := config["writer"].(io.Writer); ok {
				cfg.Writer = v
			}
		}
		return New(cfg), nil
	}
}

// Name returns the renderer name.
func (r *Renderer) Name() string {
	return "console"
}

// Render writes the suite-by-suite transcript and the grand totals.
func (r *Renderer) Render(stats *types.AggregateStats, generatedAt time.Time) error {
	r.writeLine("")
	r.writeLine(r.colorize("=== Test Summary ===", colorCyan))
	r.writeLine(fmt.Sprintf("Generated: %s", generatedAt.Format(time.RFC3339)))
	r.writeLine("")

	for _, category := range stats.OrderedCategories() {
		suite := stats.Suites[category]
		r.printSuite(category, suite)
	}

	r.writeLine("")
	r.writeLine(fmt.Sprintf("Total: %d | Passed: %d | Failed: %d | Skipped: %d",
		stats.TotalTests,
		stats.TotalPassed,
		stats.TotalFailed,
		stats.TotalSkipped,
	))
	r.writeLine(fmt.Sprintf("Pass Rate: %s | Fail Rate: %.2f%%",
		r.colorize(fmt.Sprintf("%.2f%%", stats.PassRate), r.bandColor(stats.PassRate)),
		stats.FailRate,
	))
	r.writeLine(r.colorize("====================", colorCyan))
	r.writeLine("")
	return nil
}

// printSuite prints one suite's line.
func (r *Renderer) printSuite(category types.TestCategory, suite types.SuiteStats) {
	r.writeLine(fmt.Sprintf("  %s:", r.colorize(string(category), colorWhite)))
	r.writeLine(fmt.Sprintf("    Passed: %d | Failed: %d | Skipped: %d | Total: %d",
		suite.Passed,
		suite.Failed,
		suite.Skipped,
		suite.Total,
	))
	r.writeLine(fmt.Sprintf("    Pass Rate: %s | Duration: %s",
		r.colorize(fmt.Sprintf("%.2f%%", suite.PassRate), r.bandColor(suite.PassRate)),
		formatDuration(suite.DurationMs),
	))
}

// Helper methods

func (r *Renderer) writeLine(s string) {
	fmt.Fprintln(r.writer, s)
}

func (r *Renderer) bandColor(rate float64) string {
	switch {
	case rate >= bandGood:
		return colorGreen
	case rate >= bandWarn:
		return colorYellow
	default:
		return colorRed
	}
}

func formatDuration(ms float64) string {
	if ms < 1000 {
		return fmt.Sprintf("%.0fms", ms)
	}
	return fmt.Sprintf("%.2fs", ms/1000)
}

// Color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorWhite  = "\033[37m"
)

func (r *Renderer) colorize(s string, color string) string {
	if !r.config.ColorOutput {
		return s
	}
	return color + s + colorReset
}
