package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"yqhp/perf-report/internal/catalog"
	"yqhp/perf-report/internal/evaluator"
	"yqhp/perf-report/pkg/types"
)

var (
	benchCategory string
	benchAgent    string

	checkID    string
	checkValue float64
)

// benchmarksCmd lists the shipped benchmark catalog.
var benchmarksCmd = &cobra.Command{
	Use:   "benchmarks",
	Short: "List the performance benchmark catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat := catalog.Default()

		var benchmarks []types.Benchmark
		switch {
		case benchCategory != "" && benchAgent != "":
			return fmt.Errorf("--category and --agent are mutually exclusive")
		case benchCategory != "":
			benchmarks = cat.ByCategory(types.BenchmarkCategory(benchCategory))
		case benchAgent != "":
			benchmarks = cat.ByAgent(benchAgent)
		default:
			benchmarks = cat.All()
		}

		fmt.Printf("Catalog version %s, %d benchmarks\n\n", cat.Version(), len(benchmarks))
		for _, b := range benchmarks {
			line := fmt.Sprintf("  %-26s %-13s target %g %s (%s)", b.ID, b.Category, b.Target, b.Unit, b.Method)
			if b.WarningThreshold != nil {
				line += fmt.Sprintf("  warn %g", *b.WarningThreshold)
			}
			if b.CriticalThreshold != nil {
				line += fmt.Sprintf("  crit %g", *b.CriticalThreshold)
			}
			fmt.Println(line)
		}
		return nil
	},
}

// checkCmd classifies one observed value against a catalog benchmark.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Classify an observed value against one benchmark",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, ok := catalog.Default().ByID(checkID)
		if !ok {
			return fmt.Errorf("unknown benchmark id: %s", checkID)
		}

		result := evaluator.Classify(b, checkValue)
		fmt.Printf("%s: %g %s against target %g %s\n", b.ID, checkValue, b.Unit, b.Target, b.Unit)
		fmt.Printf("  status: %s  meets target: %t  diff: %+g\n", result.Status, result.MeetsTarget, result.Diff)

		if result.Status == types.StatusFail {
			return fmt.Errorf("benchmark %s failed its critical threshold", b.ID)
		}
		return nil
	},
}

func init() {
	benchmarksCmd.Flags().StringVar(&benchCategory, "category", "", "filter by benchmark category")
	benchmarksCmd.Flags().StringVar(&benchAgent, "agent", "", "filter by agent performance target")

	checkCmd.Flags().StringVar(&checkID, "id", "", "benchmark id")
	checkCmd.Flags().Float64Var(&checkValue, "value", 0, "observed value")
	_ = checkCmd.MarkFlagRequired("id")
	_ = checkCmd.MarkFlagRequired("value")

	benchmarksCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(benchmarksCmd)
}
