package source

import (
	"fmt"

	"NewsMap/internal/ports"
)

// Registry keeps a mapping from source names to their implementations,
// so sections can select a feed by name in configuration.
type Registry struct {
	sources map[string]ports.StorySource
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{sources: map[string]ports.StorySource{}}
}

// Register adds or replaces a story source implementation.
func (r *Registry) Register(name string, src ports.StorySource) {
	if r.sources == nil {
		r.sources = map[string]ports.StorySource{}
	}
	r.sources[name] = src
}

// Resolve returns a source by name or an error if it is absent.
func (r *Registry) Resolve(name string) (ports.StorySource, error) {
	if src, ok := r.sources[name]; ok {
		return src, nil
	}
	return nil, fmt.Errorf("story source %s is not registered", name)
}
