package formbuilder

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrNotFound is returned when no constructor is registered for a name.
var ErrNotFound = errors.New("formbuilder: form not found")

// Registry maps form names to constructors. Populated at startup, read per
// request; safe for concurrent use.
type Registry struct {
	mu           sync.RWMutex
	constructors map[string]Constructor
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		constructors: make(map[string]Constructor),
	}
}

// Register adds a constructor under name. Duplicate names return an error.
func (r *Registry) Register(name string, constructor Constructor) error {
	if name == "" {
		return fmt.Errorf("formbuilder: form name is required")
	}
	if constructor == nil {
		return fmt.Errorf("formbuilder: constructor is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.constructors[name]; exists {
		return fmt.Errorf("formbuilder: form %q already registered", name)
	}

	r.constructors[name] = constructor
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(name string, constructor Constructor) {
	if err := r.Register(name, constructor); err != nil {
		panic(err)
	}
}

// Get retrieves a constructor by name, or ErrNotFound.
func (r *Registry) Get(name string) (Constructor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	constructor, ok := r.constructors[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return constructor, nil
}

// List returns a sorted list of registered form names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.constructors))
	for name := range r.constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a form is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.constructors[name]
	return ok
}
