package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"yqhp/perf-report/internal/pipeline"
)

var (
	reportResultsDir string
	reportMarkdown   string
	reportJSON       string
	reportNoColor    bool
)

// reportCmd runs one aggregation pass over the configured report sources.
// The exit code is the pipeline contract: zero when no test failed,
// non-zero otherwise.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Aggregate test-runner reports into one summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if reportResultsDir != "" {
			cfg.ResultsDir = reportResultsDir
		}
		if reportMarkdown != "" {
			cfg.Output.MarkdownPath = reportMarkdown
		}
		if reportJSON != "" {
			cfg.Output.JSONPath = reportJSON
		}
		if reportNoColor {
			cfg.Output.Color = false
		}

		p, err := pipeline.New(cfg)
		if err != nil {
			return err
		}

		stats, err := p.Run()
		if err != nil {
			return err
		}

		if stats.TotalFailed > 0 {
			return fmt.Errorf("%d of %d tests failed", stats.TotalFailed, stats.TotalTests)
		}
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportResultsDir, "results-dir", "", "directory containing the report files")
	reportCmd.Flags().StringVar(&reportMarkdown, "out-md", "", "markdown summary output path")
	reportCmd.Flags().StringVar(&reportJSON, "out-json", "", "json summary output path")
	reportCmd.Flags().BoolVar(&reportNoColor, "no-color", false, "disable colored console output")

	rootCmd.AddCommand(reportCmd)
}
