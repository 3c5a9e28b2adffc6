package slugs

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/payjnv/kalcufy-sub010/internal/identity"
)

// MemoryRepository stores slug entries in-memory. Useful for tests and for
// deployments that register calculators at boot without a database.
type MemoryRepository struct {
	mu          sync.RWMutex
	entries     map[string]*Entry
	broadcaster *changeBroadcaster
}

// NewMemoryRepository constructs an in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		entries:     make(map[string]*Entry),
		broadcaster: newChangeBroadcaster(),
	}
}

// Save stores an entry keyed by calculator id, emitting a change event.
func (r *MemoryRepository) Save(_ context.Context, entry *Entry) (*Entry, error) {
	if entry == nil {
		return nil, ErrEntryRequired
	}
	if entry.CalculatorID == "" {
		return nil, ErrCalculatorRequired
	}

	stored := entry.Clone()
	if stored.ID == uuid.Nil {
		stored.ID = identity.SlugEntryUUID(stored.CalculatorID)
	}

	r.mu.Lock()
	_, existed := r.entries[stored.CalculatorID]
	r.entries[stored.CalculatorID] = stored
	r.mu.Unlock()

	changeType := ChangeCreated
	if existed {
		changeType = ChangeUpdated
	}
	r.broadcaster.Broadcast(newChangeEvent(changeType, stored.Clone()))
	return stored.Clone(), nil
}

// GetByCalculator returns the entry for a calculator or ErrEntryNotFound.
func (r *MemoryRepository) GetByCalculator(_ context.Context, calculatorID string) (*Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[calculatorID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrEntryNotFound, calculatorID)
	}
	return entry.Clone(), nil
}

// List returns all stored entries.
func (r *MemoryRepository) List(context.Context) ([]*Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Entry, 0, len(r.entries))
	for _, entry := range r.entries {
		out = append(out, entry.Clone())
	}
	return out, nil
}

// Delete removes the entry for a calculator, emitting a change event.
func (r *MemoryRepository) Delete(_ context.Context, calculatorID string) error {
	r.mu.Lock()
	entry, ok := r.entries[calculatorID]
	if !ok {
		r.mu.Unlock()
		return fmt.Errorf("%w: %q", ErrEntryNotFound, calculatorID)
	}
	delete(r.entries, calculatorID)
	r.mu.Unlock()

	r.broadcaster.Broadcast(newChangeEvent(ChangeDeleted, entry.Clone()))
	return nil
}

// Subscribe delivers change events until the context is cancelled.
func (r *MemoryRepository) Subscribe(ctx context.Context) (<-chan ChangeEvent, error) {
	return r.broadcaster.Subscribe(ctx)
}
