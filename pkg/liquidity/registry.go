package liquidity

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps venue identifiers to their liquidity modules
type Registry struct {
	mu      sync.RWMutex
	modules map[string]Module
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		modules: make(map[string]Module),
	}
}

// Register adds a module for the given venue, replacing any previous one
func (r *Registry) Register(venue string, module Module) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.modules[venue] = module
}

// Get returns the module registered for the given venue
func (r *Registry) Get(venue string) (Module, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	module, ok := r.modules[venue]
	if !ok {
		return nil, fmt.Errorf("no liquidity module registered for venue: %s", venue)
	}
	return module, nil
}

// Venues returns the registered venue identifiers in sorted order
func (r *Registry) Venues() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	venues := make([]string, 0, len(r.modules))
	for venue := range r.modules {
		venues = append(venues, venue)
	}
	sort.Strings(venues)
	return venues
}
