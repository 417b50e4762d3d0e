// Package config loads the aggregation pipeline's configuration.
// Precedence: defaults < YAML file < environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"

	"gopkg.in/yaml.v3"

	"yqhp/perf-report/internal/normalizer"
	"yqhp/perf-report/pkg/types"
)

// Config represents the complete configuration for the report pipeline.
type Config struct {
	// ResultsDir is the directory the default report sources are read
	// from. Relative source paths are resolved against it.
	ResultsDir string        `yaml:"results_dir" env:"PR_RESULTS_DIR"`
	Sources    SourcesConfig `yaml:"sources"`
	Output     OutputConfig  `yaml:"output"`
	Logging    LoggingConfig `yaml:"logging"`
}

// SourcesConfig names the report file for each test category. Empty
// entries fall back to the default file name under the results dir.
type SourcesConfig struct {
	Unit          string `yaml:"unit" env:"PR_SOURCE_UNIT"`
	Integration   string `yaml:"integration" env:"PR_SOURCE_INTEGRATION"`
	E2E           string `yaml:"e2e" env:"PR_SOURCE_E2E"`
	Visual        string `yaml:"visual" env:"PR_SOURCE_VISUAL"`
	Accessibility string `yaml:"accessibility" env:"PR_SOURCE_ACCESSIBILITY"`
	Performance   string `yaml:"performance" env:"PR_SOURCE_PERFORMANCE"`
}

// OutputConfig holds the render targets.
type OutputConfig struct {
	MarkdownPath string `yaml:"markdown_path" env:"PR_OUTPUT_MARKDOWN"`
	JSONPath     string `yaml:"json_path" env:"PR_OUTPUT_JSON"`
	Console      bool   `yaml:"console" env:"PR_OUTPUT_CONSOLE"`
	Color        bool   `yaml:"color" env:"PR_OUTPUT_COLOR"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level    string `yaml:"level" env:"PR_LOG_LEVEL"`
	Format   string `yaml:"format" env:"PR_LOG_FORMAT"`
	Output   string `yaml:"output" env:"PR_LOG_OUTPUT"`
	FilePath string `yaml:"file_path" env:"PR_LOG_FILE"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		ResultsDir: "test-results",
		Sources: SourcesConfig{
			Unit:          "unit-results.json",
			Integration:   "integration-results.json",
			E2E:           "e2e-results.json",
			Visual:        "visual-results.json",
			Accessibility: "accessibility-results.json",
			Performance:   "performance-results.json",
		},
		Output: OutputConfig{
			MarkdownPath: "reports/test-summary.md",
			JSONPath:     "",
			Console:      true,
			Color:        true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			Output: "stdout",
		},
	}
}

// SourceList resolves the configured sources into normalizer inputs.
// The category-to-shape mapping is fixed: unit and integration reports
// use the assertion shape, e2e and visual the spec shape, accessibility
// and performance the flat run shape.
func (c *Config) SourceList() []normalizer.Source {
	return []normalizer.Source{
		{Category: types.TestUnit, Shape: normalizer.ShapeAssertions, Path: c.resolve(c.Sources.Unit)},
		{Category: types.TestIntegration, Shape: normalizer.ShapeAssertions, Path: c.resolve(c.Sources.Integration)},
		{Category: types.TestE2E, Shape: normalizer.ShapeSpecs, Path: c.resolve(c.Sources.E2E)},
		{Category: types.TestVisual, Shape: normalizer.ShapeSpecs, Path: c.resolve(c.Sources.Visual)},
		{Category: types.TestAccessibility, Shape: normalizer.ShapeRuns, Path: c.resolve(c.Sources.Accessibility)},
		{Category: types.TestPerformance, Shape: normalizer.ShapeRuns, Path: c.resolve(c.Sources.Performance)},
	}
}

// resolve joins a relative source path with the results directory.
func (c *Config) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.ResultsDir, path)
}

// Loader handles configuration loading from multiple sources.
type Loader struct {
	configPath string
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// WithConfigPath sets the path to the YAML configuration file.
func (l *Loader) WithConfigPath(path string) *Loader {
	l.configPath = path
	return l
}

// Load loads configuration from all sources with proper precedence.
func (l *Loader) Load() (*Config, error) {
	cfg := DefaultConfig()

	if l.configPath != "" {
		if err := l.loadFromFile(cfg); err != nil {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	if err := applyEnvToStruct(reflect.ValueOf(cfg).Elem()); err != nil {
		return nil, fmt.Errorf("apply env overrides: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads configuration from a YAML file. A missing file is
// not an error; defaults apply.
func (l *Loader) loadFromFile(cfg *Config) error {
	data, err := os.ReadFile(l.configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	return nil
}

// applyEnvToStruct recursively applies environment variables to struct
// fields carrying an env tag.
func applyEnvToStruct(v reflect.Value) error {
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldType := t.Field(i)

		if field.Kind() == reflect.Struct {
			if err := applyEnvToStruct(field); err != nil {
				return err
			}
			continue
		}

		envTag := fieldType.Tag.Get("env")
		if envTag == "" {
			continue
		}

		envValue := os.Getenv(envTag)
		if envValue == "" {
			continue
		}

		if err := setFieldValue(field, envValue); err != nil {
			return fmt.Errorf("set field %s from %s: %w", fieldType.Name, envTag, err)
		}
	}

	return nil
}

// setFieldValue sets a reflect.Value from a string value.
func setFieldValue(field reflect.Value, value string) error {
	if !field.CanSet() {
		return fmt.Errorf("field is not settable")
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(value)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid integer: %w", err)
		}
		field.SetInt(i)

	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid float: %w", err)
		}
		field.SetFloat(f)

	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean: %w", err)
		}
		field.SetBool(b)

	default:
		return fmt.Errorf("unsupported field type: %s", field.Kind())
	}

	return nil
}

// LoadFromFile loads configuration from a YAML file path.
func LoadFromFile(path string) (*Config, error) {
	return NewLoader().WithConfigPath(path).Load()
}
