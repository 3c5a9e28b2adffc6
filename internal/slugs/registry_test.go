package slugs

import (
	"errors"
	"reflect"
	"testing"

	"github.com/google/uuid"

	"github.com/payjnv/kalcufy-sub010/internal/definition"
)

var testRegistryConfig = Config{
	DefaultLocale: "en",
	Locales:       []string{"en", "es", "fr"},
}

func ageEntry() *Entry {
	return &Entry{
		CalculatorID: "age",
		Category:     definition.CategoryDate,
		Slugs: map[string]string{
			"en": "age-calculator",
			"es": "calculadora-de-edad",
		},
	}
}

func TestRegistryRegisterNormalizesSlugs(t *testing.T) {
	registry := NewRegistry(testRegistryConfig)

	entry := ageEntry()
	entry.Slugs["en"] = "  Age Calculator  "
	if err := registry.Register(entry); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	localized, err := registry.LocalizedSlug("age", "en")
	if err != nil {
		t.Fatalf("LocalizedSlug() error = %v", err)
	}
	if localized != "age-calculator" {
		t.Fatalf("slug = %q, want normalized form", localized)
	}
}

func TestRegistryRegisterAssignsDeterministicID(t *testing.T) {
	first := NewRegistry(testRegistryConfig)
	second := NewRegistry(testRegistryConfig)
	if err := first.Register(ageEntry()); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := second.Register(ageEntry()); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	a := first.Entries()[0]
	b := second.Entries()[0]
	if a.ID == uuid.Nil {
		t.Fatal("id not assigned")
	}
	if a.ID != b.ID {
		t.Fatalf("ids differ across registries: %s vs %s", a.ID, b.ID)
	}
}

func TestRegistryRegisterValidation(t *testing.T) {
	registry := NewRegistry(testRegistryConfig)

	if err := registry.Register(nil); !errors.Is(err, ErrEntryRequired) {
		t.Fatalf("nil entry: %v", err)
	}
	if err := registry.Register(&Entry{}); !errors.Is(err, ErrCalculatorRequired) {
		t.Fatalf("empty calculator id: %v", err)
	}

	missingDefault := &Entry{CalculatorID: "age", Slugs: map[string]string{"es": "calculadora"}}
	if err := registry.Register(missingDefault); !errors.Is(err, ErrSlugRequired) {
		t.Fatalf("missing default slug: %v", err)
	}

	invalid := ageEntry()
	invalid.Slugs["es"] = "!!!"
	if err := registry.Register(invalid); !errors.Is(err, ErrSlugInvalid) {
		t.Fatalf("invalid slug: %v", err)
	}

	if err := registry.Register(ageEntry()); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := registry.Register(ageEntry()); !errors.Is(err, ErrEntryExists) {
		t.Fatalf("duplicate registration: %v", err)
	}
}

func TestRegistryLocalizedSlugInheritsDefault(t *testing.T) {
	registry := NewRegistry(testRegistryConfig)
	if err := registry.Register(ageEntry()); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	localized, err := registry.LocalizedSlug("age", "es")
	if err != nil || localized != "calculadora-de-edad" {
		t.Fatalf("es slug = %q, %v", localized, err)
	}

	// fr has no dedicated slug and inherits the default one.
	inherited, err := registry.LocalizedSlug("age", "fr")
	if err != nil || inherited != "age-calculator" {
		t.Fatalf("fr slug = %q, %v", inherited, err)
	}

	if _, err := registry.LocalizedSlug("mortgage", "en"); !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("unknown calculator: %v", err)
	}
}

func TestRegistryEntryBySlugAndInternalSlug(t *testing.T) {
	registry := NewRegistry(testRegistryConfig)
	if err := registry.Register(ageEntry()); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	entry, ok := registry.EntryBySlug("calculadora-de-edad", "es")
	if !ok || entry.CalculatorID != "age" {
		t.Fatalf("EntryBySlug() = %v, %v", entry, ok)
	}
	if _, ok := registry.EntryBySlug("calculadora-de-edad", "en"); ok {
		t.Fatal("spanish slug must not resolve under en")
	}

	internal, err := registry.InternalSlug("calculadora-de-edad", "es")
	if err != nil || internal != "age-calculator" {
		t.Fatalf("InternalSlug() = %q, %v", internal, err)
	}
	if _, err := registry.InternalSlug("nope", "es"); !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("unknown slug: %v", err)
	}
}

func TestRegistryAlternateURLsWithoutResolver(t *testing.T) {
	registry := NewRegistry(testRegistryConfig)
	if err := registry.Register(ageEntry()); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	urls, err := registry.AlternateURLs("age")
	if err != nil {
		t.Fatalf("AlternateURLs() error = %v", err)
	}
	want := []AlternateURL{
		{Locale: "en", URL: "/age-calculator"},
		{Locale: "es", URL: "/es/calculadora-de-edad"},
		{Locale: "fr", URL: "/fr/age-calculator"},
	}
	if !reflect.DeepEqual(urls, want) {
		t.Fatalf("AlternateURLs() = %v, want %v", urls, want)
	}

	if _, err := registry.AlternateURLs("mortgage"); !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("unknown calculator: %v", err)
	}
}

func TestRegistryRedirectRules(t *testing.T) {
	registry := NewRegistry(testRegistryConfig)
	if err := registry.Register(ageEntry()); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := registry.Register(&Entry{
		CalculatorID: "tip",
		Slugs:        map[string]string{"en": "tip-calculator"},
	}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if rules := registry.RedirectRules("en"); rules != nil {
		t.Fatalf("default locale must have no redirects, got %v", rules)
	}

	rules := registry.RedirectRules("es")
	want := []RedirectRule{
		{Locale: "es", From: "/es/age-calculator", To: "/es/calculadora-de-edad", Permanent: true},
	}
	if !reflect.DeepEqual(rules, want) {
		t.Fatalf("RedirectRules() = %v, want %v", rules, want)
	}

	// tip inherits its slug everywhere, so no redirect is needed for it.
	if rules := registry.RedirectRules("fr"); len(rules) != 0 {
		t.Fatalf("expected no fr redirects, got %v", rules)
	}
}

func TestRegistryValidateUniqueness(t *testing.T) {
	registry := NewRegistry(testRegistryConfig)
	if err := registry.Register(ageEntry()); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := registry.Register(&Entry{
		CalculatorID: "birthday",
		Slugs: map[string]string{
			"en": "birthday-calculator",
			"es": "calculadora-de-edad",
		},
	}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	report := registry.ValidateUniqueness()
	if report.IsValid {
		t.Fatal("expected a conflict report")
	}
	if len(report.Conflicts) != 1 {
		t.Fatalf("Conflicts = %v", report.Conflicts)
	}

	conflict := report.Conflicts[0]
	if conflict.Locale != "es" || conflict.Slug != "calculadora-de-edad" {
		t.Fatalf("unexpected conflict: %+v", conflict)
	}
	if !reflect.DeepEqual(conflict.CalculatorIDs, []string{"age", "birthday"}) {
		t.Fatalf("owners = %v", conflict.CalculatorIDs)
	}
	if !errors.Is(conflict, ErrSlugConflict) {
		t.Fatalf("conflict does not unwrap to sentinel: %v", conflict)
	}
}

func TestRegistryUniquenessCleanTable(t *testing.T) {
	registry := NewRegistry(testRegistryConfig)
	if err := registry.Register(ageEntry()); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := registry.Register(&Entry{
		CalculatorID: "tip",
		Slugs:        map[string]string{"en": "tip-calculator", "es": "calculadora-de-propinas"},
	}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	report := registry.ValidateUniqueness()
	if !report.IsValid || len(report.Conflicts) != 0 {
		t.Fatalf("clean table flagged: %+v", report)
	}
}

func TestRegistryEntriesReturnsClones(t *testing.T) {
	registry := NewRegistry(testRegistryConfig)
	if err := registry.Register(ageEntry()); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	snapshot := registry.Entries()
	snapshot[0].Slugs["en"] = "mutated"

	localized, _ := registry.LocalizedSlug("age", "en")
	if localized != "age-calculator" {
		t.Fatal("snapshot mutation leaked into the registry")
	}
}
