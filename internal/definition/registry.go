package definition

import (
	"fmt"
	"sort"
	"sync"
)

// Registry stores calculator definitions for the lifetime of the process.
// Register validates each definition before accepting it; afterwards the
// registry is read-only to the engine.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*Calculator
}

// NewRegistry constructs an empty definition registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*Calculator)}
}

// Register validates and stores a definition. Duplicate calculator ids are
// rejected; definitions are assumed immutable after this call.
func (r *Registry) Register(calc *Calculator) error {
	if calc == nil {
		return ErrCalculatorRequired
	}
	if err := calc.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[calc.ID]; exists {
		return fmt.Errorf("%w: %q", ErrAlreadyRegistered, calc.ID)
	}
	r.entries[calc.ID] = calc
	return nil
}

// Get returns the definition for a calculator id.
func (r *Registry) Get(id string) (*Calculator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	calc, ok := r.entries[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotRegistered, id)
	}
	return calc, nil
}

// Has reports whether a calculator id is registered.
func (r *Registry) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[id]
	return ok
}

// IDs returns all registered calculator ids in lexical order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.entries))
	for id := range r.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// List returns all registered definitions ordered by id.
func (r *Registry) List() []*Calculator {
	ids := r.IDs()
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Calculator, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.entries[id])
	}
	return out
}
