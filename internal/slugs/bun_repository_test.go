package slugs

import (
	"context"
	"errors"
	"testing"
	"time"

	repocache "github.com/goliatone/go-repository-cache/cache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/payjnv/kalcufy-sub010/pkg/testsupport"
)

func newTestBunDB(t *testing.T) *bun.DB {
	t.Helper()
	db, err := testsupport.NewBunSQLiteDB()
	if err != nil {
		t.Fatalf("new sqlite db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	db.SetMaxOpenConns(1)

	if err := testsupport.CreateTables(context.Background(), db, (*slugEntryModel)(nil)); err != nil {
		t.Fatalf("create tables: %v", err)
	}
	return db
}

func TestBunRepositorySaveGetDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewBunRepository(newTestBunDB(t))

	saved, err := repo.Save(ctx, ageEntry())
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if saved.ID == uuid.Nil {
		t.Fatal("id not assigned")
	}

	got, err := repo.GetByCalculator(ctx, "age")
	if err != nil {
		t.Fatalf("GetByCalculator() error = %v", err)
	}
	if got.Slugs["es"] != "calculadora-de-edad" {
		t.Fatalf("unexpected entry: %+v", got)
	}

	if _, err := repo.GetByCalculator(ctx, "mortgage"); !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}

	if err := repo.Delete(ctx, "age"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := repo.Delete(ctx, "age"); !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("double delete: %v", err)
	}
}

func TestBunRepositorySaveUpdatesExisting(t *testing.T) {
	ctx := context.Background()
	repo := NewBunRepository(newTestBunDB(t))

	events, err := repo.Subscribe(ctx)
	if err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}

	first, err := repo.Save(ctx, ageEntry())
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if event := waitForEvent(t, events); event.Type != ChangeCreated {
		t.Fatalf("expected create event, got %+v", event)
	}

	changed := ageEntry()
	changed.Slugs["fr"] = "calculateur-age"
	second, err := repo.Save(ctx, changed)
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if event := waitForEvent(t, events); event.Type != ChangeUpdated {
		t.Fatalf("expected update event, got %+v", event)
	}

	if first.ID != second.ID {
		t.Fatalf("update changed the id: %s vs %s", first.ID, second.ID)
	}
	if second.Slugs["fr"] != "calculateur-age" {
		t.Fatalf("update not persisted: %+v", second)
	}

	entries, err := repo.List(ctx)
	if err != nil || len(entries) != 1 {
		t.Fatalf("List() = %v, %v", entries, err)
	}
}

func TestBunRepositoryListOrdersByCalculator(t *testing.T) {
	ctx := context.Background()
	repo := NewBunRepository(newTestBunDB(t))

	for _, id := range []string{"tip", "age", "bmi"} {
		if _, err := repo.Save(ctx, &Entry{CalculatorID: id, Slugs: map[string]string{"en": id + "-calculator"}}); err != nil {
			t.Fatalf("Save(%s) error = %v", id, err)
		}
	}

	entries, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	got := make([]string, 0, len(entries))
	for _, entry := range entries {
		got = append(got, entry.CalculatorID)
	}
	want := []string{"age", "bmi", "tip"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestBunRepositoryWithCache(t *testing.T) {
	ctx := context.Background()

	cacheCfg := repocache.DefaultConfig()
	cacheCfg.TTL = time.Minute
	cacheSvc, err := repocache.NewCacheService(cacheCfg)
	if err != nil {
		t.Fatalf("cache service: %v", err)
	}

	repo := NewBunRepositoryWithCache(newTestBunDB(t), cacheSvc, repocache.NewDefaultKeySerializer())

	if _, err := repo.Save(ctx, ageEntry()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	first, err := repo.GetByCalculator(ctx, "age")
	if err != nil {
		t.Fatalf("GetByCalculator() error = %v", err)
	}
	second, err := repo.GetByCalculator(ctx, "age")
	if err != nil {
		t.Fatalf("GetByCalculator() error = %v", err)
	}
	if first.CalculatorID != second.CalculatorID || first.ID != second.ID {
		t.Fatalf("cached read diverged: %+v vs %+v", first, second)
	}
}
