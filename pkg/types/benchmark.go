package types

// BenchmarkCategory classifies a benchmark by the resource it measures.
type BenchmarkCategory string

const (
	CategoryResponseTime BenchmarkCategory = "response_time"
	CategoryThroughput   BenchmarkCategory = "throughput"
	CategoryMemory       BenchmarkCategory = "memory"
	CategoryCPU          BenchmarkCategory = "cpu"
	CategoryNetwork      BenchmarkCategory = "network"
)

// MeasurementMethod is the aggregation applied to raw measurements before
// a value is compared against a benchmark.
type MeasurementMethod string

const (
	MethodP50 MeasurementMethod = "p50"
	MethodP95 MeasurementMethod = "p95"
	MethodP99 MeasurementMethod = "p99"
	MethodAvg MeasurementMethod = "avg"
	MethodMin MeasurementMethod = "min"
	MethodMax MeasurementMethod = "max"
)

// Benchmark is a named performance target with optional warning/critical
// thresholds. Thresholds are pointers so "not set" is distinguishable
// from zero.
type Benchmark struct {
	ID                string            `yaml:"id" json:"id"`
	Name              string            `yaml:"name" json:"name"`
	Category          BenchmarkCategory `yaml:"category" json:"category"`
	Target            float64           `yaml:"target" json:"target"`
	Unit              string            `yaml:"unit" json:"unit"`
	Threshold         *float64          `yaml:"threshold,omitempty" json:"threshold,omitempty"`
	WarningThreshold  *float64          `yaml:"warning_threshold,omitempty" json:"warning_threshold,omitempty"`
	CriticalThreshold *float64          `yaml:"critical_threshold,omitempty" json:"critical_threshold,omitempty"`
	Method            MeasurementMethod `yaml:"method" json:"method"`
}

// BenchmarkSuite is a named, ordered collection of benchmarks.
type BenchmarkSuite struct {
	ID         string      `yaml:"id" json:"id"`
	Name       string      `yaml:"name" json:"name"`
	Benchmarks []Benchmark `yaml:"benchmarks" json:"benchmarks"`
}

// PerformanceTarget maps an agent to the ordered benchmark suites it is
// evaluated against.
type PerformanceTarget struct {
	Agent  string   `yaml:"agent" json:"agent"`
	Suites []string `yaml:"suites" json:"suites"`
}

// ClassificationStatus is the three-tier outcome of a threshold check.
type ClassificationStatus string

const (
	StatusPass    ClassificationStatus = "pass"
	StatusWarning ClassificationStatus = "warning"
	StatusFail    ClassificationStatus = "fail"
)

// Classification is the result of comparing an observed value against one
// benchmark. Derived, never stored.
type Classification struct {
	MeetsTarget bool                 `json:"meets_target"`
	Status      ClassificationStatus `json:"status"`
	Diff        float64              `json:"diff"`
}
