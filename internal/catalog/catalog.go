// Package catalog holds the benchmark definitions the evaluator classifies
// against. The data is a fixed, versioned table embedded in the binary;
// the catalog is built once per process and is read-only afterwards, so
// concurrent lookups need no synchronization.
package catalog

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"yqhp/perf-report/pkg/types"
)

//go:embed data.yaml
var rawCatalog []byte

// Catalog is an immutable registry of benchmark suites and the agents they
// apply to.
type Catalog struct {
	version string
	suites  []types.BenchmarkSuite
	targets []types.PerformanceTarget

	byID    map[string]types.Benchmark
	bySuite map[string]int      // suite id -> index into suites
	byAgent map[string][]string // agent -> ordered suite ids
}

type catalogFile struct {
	Version string                    `yaml:"version"`
	Suites  []types.BenchmarkSuite    `yaml:"suites"`
	Targets []types.PerformanceTarget `yaml:"targets"`
}

var (
	defaultCatalog *Catalog
	defaultOnce    sync.Once
)

// Default returns the process-wide catalog built from the embedded data
// table. Loading is idempotent; every call returns the same instance.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(rawCatalog)
		if err != nil {
			// The embedded table ships with the binary; failing to parse
			// it is a build defect, not a runtime condition.
			panic(fmt.Sprintf("catalog: embedded data table invalid: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Parse builds a catalog from YAML data and validates its invariants.
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	c := &Catalog{
		version: file.Version,
		suites:  file.Suites,
		targets: file.Targets,
		byID:    make(map[string]types.Benchmark),
		bySuite: make(map[string]int),
		byAgent: make(map[string][]string),
	}

	for i, suite := range c.suites {
		if suite.ID == "" {
			return nil, fmt.Errorf("suite %d has no id", i)
		}
		if _, dup := c.bySuite[suite.ID]; dup {
			return nil, fmt.Errorf("duplicate suite id: %s", suite.ID)
		}
		c.bySuite[suite.ID] = i

		for _, b := range suite.Benchmarks {
			if b.ID == "" {
				return nil, fmt.Errorf("suite %s contains a benchmark with no id", suite.ID)
			}
			if _, dup := c.byID[b.ID]; dup {
				return nil, fmt.Errorf("duplicate benchmark id: %s", b.ID)
			}
			c.byID[b.ID] = b
		}
	}

	for _, target := range c.targets {
		for _, suiteID := range target.Suites {
			if _, ok := c.bySuite[suiteID]; !ok {
				return nil, fmt.Errorf("agent %s references unknown suite: %s", target.Agent, suiteID)
			}
		}
		c.byAgent[target.Agent] = target.Suites
	}

	return c, nil
}

// Version returns the catalog's data table version.
func (c *Catalog) Version() string {
	return c.version
}

// All returns every benchmark in the catalog, in suite order.
func (c *Catalog) All() []types.Benchmark {
	var out []types.Benchmark
	for _, suite := range c.suites {
		out = append(out, suite.Benchmarks...)
	}
	return out
}

// ByCategory returns the benchmarks in the given category, in suite order.
func (c *Catalog) ByCategory(category types.BenchmarkCategory) []types.Benchmark {
	var out []types.Benchmark
	for _, suite := range c.suites {
		for _, b := range suite.Benchmarks {
			if b.Category == category {
				out = append(out, b)
			}
		}
	}
	return out
}

// ByAgent returns the benchmarks of every suite the agent is evaluated
// against. Unknown agents yield an empty slice, not an error.
func (c *Catalog) ByAgent(agent string) []types.Benchmark {
	out := []types.Benchmark{}
	for _, suiteID := range c.byAgent[agent] {
		out = append(out, c.suites[c.bySuite[suiteID]].Benchmarks...)
	}
	return out
}

// ByID looks up a single benchmark. The second return value reports
// whether the id exists; lookups never fail.
func (c *Catalog) ByID(id string) (types.Benchmark, bool) {
	b, ok := c.byID[id]
	return b, ok
}

// Suites returns the benchmark suites in catalog order.
func (c *Catalog) Suites() []types.BenchmarkSuite {
	return c.suites
}

// Agents returns the agent ids that have performance targets, in table
// order.
func (c *Catalog) Agents() []string {
	out := make([]string, 0, len(c.targets))
	for _, t := range c.targets {
		out = append(out, t.Agent)
	}
	return out
}
