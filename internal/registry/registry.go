// Package registry lets modules find services the server set up for them
// without importing the server. Lookups go through typed keys.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/sifiratik/fidan/internal/config"
)

// Key names a service of type T. Names are dotted, "area.service".
type Key[T any] string

// Registry holds the services shared at boot. It is safe for concurrent use.
type Registry struct {
	cfg config.Provider

	mu       sync.RWMutex
	services map[string]any
}

// New returns an empty registry exposing cfg.
func New(cfg config.Provider) *Registry {
	return &Registry{cfg: cfg, services: make(map[string]any)}
}

// Config returns the configuration the registry was created with.
func (r *Registry) Config() config.Provider {
	return r.cfg
}

// Names lists the registered service names in order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.services))
	for name := range r.services {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Set stores value under key, replacing any earlier value.
func Set[T any](r *Registry, key Key[T], value T) {
	r.mu.Lock()
	r.services[string(key)] = value
	r.mu.Unlock()
}

// Get returns the value stored under key. It reports false when nothing is
// stored or when the stored value is not a T.
func Get[T any](r *Registry, key Key[T]) (T, bool) {
	r.mu.RLock()
	val, ok := r.services[string(key)]
	r.mu.RUnlock()

	typed, ok2 := val.(T)
	return typed, ok && ok2
}

// MustGet is Get for services a module cannot boot without. It panics when
// the service is missing.
func MustGet[T any](r *Registry, key Key[T]) T {
	val, ok := Get(r, key)
	if !ok {
		panic(fmt.Sprintf("registry: service %q not registered", string(key)))
	}
	return val
}
