package binder

import (
	"fmt"
	"sync"
)

// Registry resolves binders by configuration name. The bindable target is
// passed so that implementations may key on payload type as well; the
// built-in registry ignores it.
type Registry interface {
	Get(name string, bindable any) (Binder, error)
}

// SimpleRegistry is a map-backed Registry. The first registered binder
// becomes the default unless a default is set explicitly; an empty name
// resolves to the default.
type SimpleRegistry struct {
	mu          sync.RWMutex
	binders     map[string]Binder
	defaultName string
}

// NewSimpleRegistry creates an empty registry.
func NewSimpleRegistry() *SimpleRegistry {
	return &SimpleRegistry{
		binders: make(map[string]Binder),
	}
}

// Register adds a binder under name.
func (r *SimpleRegistry) Register(name string, b Binder) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.binders) == 0 {
		r.defaultName = name
	}
	r.binders[name] = b
}

// SetDefault marks name as the binder used when no name is configured.
func (r *SimpleRegistry) SetDefault(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.defaultName = name
}

// Get implements Registry.
func (r *SimpleRegistry) Get(name string, bindable any) (Binder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if name == "" {
		name = r.defaultName
	}
	b, ok := r.binders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBinder, name)
	}
	return b, nil
}
