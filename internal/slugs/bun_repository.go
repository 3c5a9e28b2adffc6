package slugs

import (
	"context"
	"fmt"
	"time"

	"github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	"github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/payjnv/kalcufy-sub010/internal/definition"
	"github.com/payjnv/kalcufy-sub010/internal/identity"
	"github.com/payjnv/kalcufy-sub010/internal/util"
)

type slugEntryModel struct {
	bun.BaseModel `bun:"table:calculator_slugs,alias:cs"`

	ID           uuid.UUID         `bun:"id,pk,type:uuid"`
	CalculatorID string            `bun:"calculator_id,notnull,unique"`
	Category     string            `bun:"category,notnull"`
	Slugs        map[string]string `bun:"slugs,type:jsonb"`
	CreatedAt    time.Time         `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt    time.Time         `bun:"updated_at,notnull,default:current_timestamp"`
}

func newSlugEntryRepository(db *bun.DB) repository.Repository[*slugEntryModel] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*slugEntryModel]{
		NewRecord:          func() *slugEntryModel { return &slugEntryModel{} },
		GetID:              func(m *slugEntryModel) uuid.UUID { return m.ID },
		SetID:              func(m *slugEntryModel, id uuid.UUID) { m.ID = id },
		GetIdentifier:      func() string { return "calculator_id" },
		GetIdentifierValue: func(m *slugEntryModel) string { return m.CalculatorID },
	})
}

// BunRepository persists slug entries using a Bun-backed database with
// optional read-through caching.
type BunRepository struct {
	repo        repository.Repository[*slugEntryModel]
	broadcaster *changeBroadcaster
}

// NewBunRepository creates a slug repository without caching.
func NewBunRepository(db *bun.DB) *BunRepository {
	return NewBunRepositoryWithCache(db, nil, nil)
}

// NewBunRepositoryWithCache creates a slug repository with caching support.
func NewBunRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunRepository {
	base := newSlugEntryRepository(db)
	if cacheService != nil && serializer != nil {
		base = repositorycache.New(base, cacheService, serializer)
	}
	return &BunRepository{
		repo:        base,
		broadcaster: newChangeBroadcaster(),
	}
}

// Save creates or updates the entry for a calculator, emitting a change
// event.
func (r *BunRepository) Save(ctx context.Context, entry *Entry) (*Entry, error) {
	if entry == nil {
		return nil, ErrEntryRequired
	}
	if entry.CalculatorID == "" {
		return nil, ErrCalculatorRequired
	}

	model := modelFromEntry(entry)
	now := time.Now().UTC()
	model.UpdatedAt = now

	existing, err := r.repo.GetByIdentifier(ctx, entry.CalculatorID)
	created := false
	switch {
	case err == nil:
		model.ID = existing.ID
		model.CreatedAt = existing.CreatedAt
	case errors.IsCategory(err, repository.CategoryDatabaseNotFound):
		created = true
		model.CreatedAt = now
	default:
		return nil, fmt.Errorf("slug repository error: %w", err)
	}

	var stored *slugEntryModel
	if created {
		stored, err = r.repo.Create(ctx, model)
	} else {
		stored, err = r.repo.Update(ctx, model)
	}
	if err != nil {
		return nil, fmt.Errorf("slug repository error: %w", err)
	}

	result := entryFromModel(stored)
	changeType := ChangeUpdated
	if created {
		changeType = ChangeCreated
	}
	r.broadcaster.Broadcast(newChangeEvent(changeType, result.Clone()))
	return result, nil
}

// GetByCalculator returns the entry for a calculator.
func (r *BunRepository) GetByCalculator(ctx context.Context, calculatorID string) (*Entry, error) {
	record, err := r.repo.GetByIdentifier(ctx, calculatorID)
	if err != nil {
		return nil, mapRepositoryError(err, calculatorID)
	}
	return entryFromModel(record), nil
}

// List returns all stored entries.
func (r *BunRepository) List(ctx context.Context) ([]*Entry, error) {
	records, _, err := r.repo.List(ctx, repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("calculator_id ASC")
	}))
	if err != nil {
		return nil, fmt.Errorf("slug repository error: %w", err)
	}
	entries := make([]*Entry, 0, len(records))
	for _, record := range records {
		entries = append(entries, entryFromModel(record))
	}
	return entries, nil
}

// Delete removes the entry for a calculator, emitting a change event.
func (r *BunRepository) Delete(ctx context.Context, calculatorID string) error {
	record, err := r.repo.GetByIdentifier(ctx, calculatorID)
	if err != nil {
		return mapRepositoryError(err, calculatorID)
	}
	if err := r.repo.Delete(ctx, &slugEntryModel{ID: record.ID}); err != nil {
		return fmt.Errorf("slug repository error: %w", err)
	}
	r.broadcaster.Broadcast(newChangeEvent(ChangeDeleted, entryFromModel(record)))
	return nil
}

// Subscribe delivers change events until the context is cancelled.
func (r *BunRepository) Subscribe(ctx context.Context) (<-chan ChangeEvent, error) {
	return r.broadcaster.Subscribe(ctx)
}

func mapRepositoryError(err error, calculatorID string) error {
	if err == nil {
		return nil
	}
	if errors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return fmt.Errorf("%w: %q", ErrEntryNotFound, calculatorID)
	}
	return fmt.Errorf("slug repository error: %w", err)
}

func modelFromEntry(entry *Entry) *slugEntryModel {
	id := entry.ID
	if id == uuid.Nil {
		id = identity.SlugEntryUUID(entry.CalculatorID)
	}
	return &slugEntryModel{
		ID:           id,
		CalculatorID: entry.CalculatorID,
		Category:     string(entry.Category),
		Slugs:        util.CloneStringMap(entry.Slugs),
	}
}

func entryFromModel(model *slugEntryModel) *Entry {
	if model == nil {
		return nil
	}
	return &Entry{
		ID:           model.ID,
		CalculatorID: model.CalculatorID,
		Category:     definition.Category(model.Category),
		Slugs:        util.CloneStringMap(model.Slugs),
	}
}
