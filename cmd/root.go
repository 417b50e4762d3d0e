// Package cmd provides the perf-report CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"yqhp/perf-report/internal/config"
	"yqhp/perf-report/pkg/logger"
)

const (
	// Version is the current version number.
	Version = "0.1.0"
)

var (
	cfgFile string
	debug   bool
	quiet   bool
)

// rootCmd is the root command.
var rootCmd = &cobra.Command{
	Use:   "perf-report",
	Short: "Test result aggregation and performance benchmark evaluation",
	Long: `perf-report aggregates the report files emitted by the test runners
into one canonical summary and classifies observed measurements against
the shipped performance benchmark catalog.`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger.Init(&logger.Config{
			Level:    cfg.Logging.Level,
			Format:   cfg.Logging.Format,
			Output:   cfg.Logging.Output,
			FilePath: cfg.Logging.FilePath,
		})
		return nil
	},
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig loads configuration honoring the global flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadFromFile(cfgFile)
	if err != nil {
		return nil, err
	}
	if debug {
		cfg.Logging.Level = "debug"
	}
	if quiet {
		cfg.Logging.Level = "error"
		cfg.Output.Console = false
	}
	return cfg, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "quiet mode")

	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
