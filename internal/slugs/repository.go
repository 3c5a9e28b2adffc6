package slugs

import "context"

// Repository persists slug entries and emits change notifications so the
// in-memory registry can be rebuilt when the backing store changes.
type Repository interface {
	Save(ctx context.Context, entry *Entry) (*Entry, error)
	GetByCalculator(ctx context.Context, calculatorID string) (*Entry, error)
	List(ctx context.Context) ([]*Entry, error)
	Delete(ctx context.Context, calculatorID string) error
	Subscribe(ctx context.Context) (<-chan ChangeEvent, error)
}

// ChangeType enumerates slug entry change events.
type ChangeType string

const (
	// ChangeCreated indicates an entry was first persisted.
	ChangeCreated ChangeType = "created"
	// ChangeUpdated indicates an entry was updated.
	ChangeUpdated ChangeType = "updated"
	// ChangeDeleted indicates an entry was removed.
	ChangeDeleted ChangeType = "deleted"
)

// ChangeEvent reports entry mutations to interested subscribers.
type ChangeEvent struct {
	Type  ChangeType
	Entry *Entry
}

func newChangeEvent(changeType ChangeType, entry *Entry) ChangeEvent {
	return ChangeEvent{
		Type:  changeType,
		Entry: entry,
	}
}
