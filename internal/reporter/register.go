package reporter

import (
	"yqhp/perf-report/internal/reporter/console"
	"yqhp/perf-report/internal/reporter/file"
)

// RegisterBuiltinRenderers registers all built-in renderers with the
// registry.
func RegisterBuiltinRenderers(registry *Registry) error {
	if err := registry.Register(RendererTypeConsole, func(config map[string]any) (Renderer, error) {
		factory := console.NewFactory()
		return factory(config)
	}); err != nil {
		return err
	}

	if err := registry.Register(RendererTypeMarkdown, func(config map[string]any) (Renderer, error) {
		factory := file.NewMarkdownFactory()
		return factory(config)
	}); err != nil {
		return err
	}

	if err := registry.Register(RendererTypeJSON, func(config map[string]any) (Renderer, error) {
		factory := file.NewJSONFactory()
		return factory(config)
	}); err != nil {
		return err
	}

	return nil
}

// NewDefaultRegistry creates a registry with all built-in renderers
// registered.
func NewDefaultRegistry() (*Registry, error) {
	registry := NewRegistry()
	if err := RegisterBuiltinRenderers(registry); err != nil {
		return nil, err
	}
	return registry, nil
}
