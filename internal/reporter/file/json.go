package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"yqhp/perf-report/pkg/types"
)

// JSONConfig holds configuration for the JSON renderer.
type JSONConfig struct {
	// FilePath is the output file path.
	FilePath string `yaml:"file_path"`
	// Pretty enables pretty-printed JSON output.
	Pretty bool `yaml:"pretty"`
}

// DefaultJSONConfig returns the default JSON renderer configuration.
func DefaultJSONConfig() *JSONConfig {
	return &JSONConfig{
		FilePath: "reports/test-summary.json",
		Pretty:   true,
	}
}

// JSONRenderer writes the aggregate statistics as a JSON document.
type JSONRenderer struct {
	config *JSONConfig
}

// jsonDocument is the on-disk projection of one aggregation run.
type jsonDocument struct {
	GeneratedAt time.Time             `json:"generated_at"`
	Stats       *types.AggregateStats `json:"stats"`
}

// NewJSONRenderer creates a new JSON renderer.
func NewJSONRenderer(config *JSONConfig) *JSONRenderer {
	if config == nil {
		config = DefaultJSONConfig()
	}
	return &JSONRenderer{config: config}
}

// NewJSONFactory returns a factory function for creating JSON renderers.
func NewJSONFactory() func(config map[string]any) (*JSONRenderer, error) {
	return func(config map[string]any) (*JSONRenderer, error) {
		cfg := DefaultJSONConfig()
		if config != nil {
			if v, ok := config["file_path"].(string); ok {
				cfg.FilePath = v
			}
			if v, ok := config["pretty"].(bool); ok {
				cfg.Pretty = v
			}
		}
		return NewJSONRenderer(cfg), nil
	}
}

// Name returns the renderer name.
func (r *JSONRenderer) Name() string {
	return "json"
}

// Render writes the JSON document. The containing directory is created
// if missing.
func (r *JSONRenderer) Render(stats *types.AggregateStats, generatedAt time.Time) error {
	doc := jsonDocument{
		GeneratedAt: generatedAt,
		Stats:       stats,
	}

	var data []byte
	var err error
	if r.config.Pretty {
		data, err = json.MarshalIndent(doc, "", "  ")
	} else {
		data, err = json.Marshal(doc)
	}
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}

	dir := filepath.Dir(r.config.FilePath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	if err := os.WriteFile(r.config.FilePath, data, 0644); err != nil {
		return fmt.Errorf("write json summary: %w", err)
	}
	return nil
}

// GetFilePath returns the output file path.
func (r *JSONRenderer) GetFilePath() string {
	return r.config.FilePath
}
