// Package reporter provides the rendering boundary for aggregate
// statistics. Renderers are presentation only: they consume an
// AggregateStats and must show every suite exactly once with grand
// totals matching the stats fields, but their exact text is their own.
package reporter

import (
	"fmt"
	"sync"
	"time"

	"yqhp/perf-report/pkg/types"
)

// Renderer projects aggregate statistics into one output target.
type Renderer interface {
	// Name returns the renderer name.
	Name() string

	// Render writes the statistics. generatedAt is the single timestamp
	// stamped on the run, shared by all renderers.
	Render(stats *types.AggregateStats, generatedAt time.Time) error
}

// RendererType identifies a renderer implementation.
type RendererType string

const (
	// RendererTypeConsole writes a human-readable transcript to stdout.
	RendererTypeConsole RendererType = "console"
	// RendererTypeMarkdown writes the canonical markdown summary table.
	RendererTypeMarkdown RendererType = "markdown"
	// RendererTypeJSON writes the statistics as a JSON document.
	RendererTypeJSON RendererType = "json"
)

// Factory creates a renderer from its configuration map.
type Factory func(config map[string]any) (Renderer, error)

// Registry manages renderer registration and creation.
type Registry struct {
	factories map[RendererType]Factory
	mu        sync.RWMutex
}

// NewRegistry creates an empty renderer registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[RendererType]Factory),
	}
}

// Register adds a renderer factory for the given type.
func (r *Registry) Register(rendererType RendererType, factory Factory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[rendererType]; exists {
		return fmt.Errorf("renderer type already registered: %s", rendererType)
	}

	r.factories[rendererType] = factory
	return nil
}

// Create instantiates a renderer of the given type.
func (r *Registry) Create(rendererType RendererType, config map[string]any) (Renderer, error) {
	r.mu.RLock()
	factory, exists := r.factories[rendererType]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("unknown renderer type: %s", rendererType)
	}

	return factory(config)
}

// ListTypes returns all registered renderer types.
func (r *Registry) ListTypes() []RendererType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]RendererType, 0, len(r.factories))
	for t := range r.factories {
		out = append(out, t)
	}
	return out
}

// HasType reports whether a renderer type is registered.
func (r *Registry) HasType(rendererType RendererType) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, exists := r.factories[rendererType]
	return exists
}
