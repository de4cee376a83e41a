// Package render holds the theme renderer registry. Renderer implementations
// live in pkg/renderers and register themselves here by name, so applications
// select a theme with a string instead of importing concrete types everywhere.
package render

import (
	"fmt"
	"sort"
	"sync"

	"github.com/nimblemvc/go-form/pkg/form"
)

// Registry maps theme names to renderers. A name is claimed once; later
// registrations under the same name fail rather than silently replace the
// renderer a form may already be using. Safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	renderers map[string]form.Renderer
}

// NewRegistry creates an empty registry, independent of the default one.
func NewRegistry() *Registry {
	return &Registry{
		renderers: make(map[string]form.Renderer),
	}
}

// Register stores the renderer under renderer.Name(). The renderer and its
// name must be non-empty, and the name must not be taken.
func (r *Registry) Register(renderer form.Renderer) error {
	if renderer == nil {
		return fmt.Errorf("render: renderer is required")
	}
	name := renderer.Name()
	if name == "" {
		return fmt.Errorf("render: renderer name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.renderers[name]; exists {
		return fmt.Errorf("render: renderer %q already registered", name)
	}

	r.renderers[name] = renderer
	return nil
}

// MustRegister is Register for init functions: theme packages call it to
// claim their name at import time, and a clash panics the program early.
func (r *Registry) MustRegister(renderer form.Renderer) {
	if err := r.Register(renderer); err != nil {
		panic(err)
	}
}

// Get looks a renderer up by theme name.
func (r *Registry) Get(name string) (form.Renderer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	renderer, ok := r.renderers[name]
	if !ok {
		return nil, fmt.Errorf("render: renderer %q not found", name)
	}
	return renderer, nil
}

// MustGet is Get for callers that treat a missing theme as programmer error.
func (r *Registry) MustGet(name string) form.Renderer {
	renderer, err := r.Get(name)
	if err != nil {
		panic(err)
	}
	return renderer
}

// List returns the registered theme names in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.renderers))
	for name := range r.renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a theme name is taken.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.renderers[name]
	return ok
}

// defaultRegistry backs the package-level helpers. Theme packages register
// into it from init.
var defaultRegistry = NewRegistry()

// Default returns the process-wide registry used by the package-level
// helpers.
func Default() *Registry { return defaultRegistry }

// Register adds a renderer to the default registry.
func Register(renderer form.Renderer) error { return defaultRegistry.Register(renderer) }

// MustRegister panics when registration into the default registry fails.
func MustRegister(renderer form.Renderer) { defaultRegistry.MustRegister(renderer) }

// Get retrieves a renderer from the default registry.
func Get(name string) (form.Renderer, error) { return defaultRegistry.Get(name) }

// MustGet panics when the default registry has no such renderer.
func MustGet(name string) form.Renderer { return defaultRegistry.MustGet(name) }
