package translation

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/payjnv/kalcufy-sub010/internal/definition"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	complete := GenerateTemplate(ageCalculator(), spanishOverlay())
	spanish, err := json.Marshal(map[string]any(complete))
	if err != nil {
		t.Fatalf("marshal overlay: %v", err)
	}

	fsys := fstest.MapFS{
		"age/en.json": mustJSON(t, `{"calculator": {"title": "Age Calculator"}}`),
		"age/es.json": &fstest.MapFile{Data: spanish},
	}

	svc, err := NewService(newTestRegistry(t), NewLoader(fsys, testConfig))
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	return svc
}

func TestServiceRequiresDependencies(t *testing.T) {
	if _, err := NewService(nil, NewLoader(fstest.MapFS{}, testConfig)); !errors.Is(err, ErrRegistryRequired) {
		t.Fatalf("expected ErrRegistryRequired, got %v", err)
	}
	if _, err := NewService(definition.NewRegistry(), nil); !errors.Is(err, ErrLoaderRequired) {
		t.Fatalf("expected ErrLoaderRequired, got %v", err)
	}
}

func TestServiceContentMergesOverlay(t *testing.T) {
	svc := newTestService(t)

	bundle, err := svc.Content(context.Background(), "age", "es")
	if err != nil {
		t.Fatalf("Content() error = %v", err)
	}
	if got := bundle.String("calculator.title"); got != "Calculadora de Edad" {
		t.Fatalf("title = %q", got)
	}
	if bundle.Meta.RequestedLocale != "es" || bundle.Meta.ResolvedLocale != "es" || bundle.Meta.FallbackUsed {
		t.Fatalf("unexpected meta: %+v", bundle.Meta)
	}
}

func TestServiceContentFallsBackAndDefaults(t *testing.T) {
	svc := newTestService(t)

	bundle, err := svc.Content(context.Background(), "age", "fr")
	if err != nil {
		t.Fatalf("Content() error = %v", err)
	}
	if !bundle.Meta.FallbackUsed || bundle.Meta.ResolvedLocale != "en" {
		t.Fatalf("unexpected meta: %+v", bundle.Meta)
	}
	// The en overlay only carries the title; everything else resolves to the
	// definition defaults.
	if got := bundle.String("faq.0.answer"); got != "Yes, exactly." {
		t.Fatalf("faq answer = %q", got)
	}
	if bundle.TranslatedCount() != 1 {
		t.Fatalf("TranslatedCount = %d, want 1", bundle.TranslatedCount())
	}
}

func TestServiceContentRejectsUnknownLocale(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Content(context.Background(), "age", "jp"); !errors.Is(err, ErrLocaleUnknown) {
		t.Fatalf("expected ErrLocaleUnknown, got %v", err)
	}
}

func TestServiceContentUnknownCalculator(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Content(context.Background(), "mortgage", "en"); !errors.Is(err, definition.ErrNotRegistered) {
		t.Fatalf("expected ErrNotRegistered, got %v", err)
	}
}

func TestServiceValidateLocaleMissingFile(t *testing.T) {
	svc := newTestService(t)

	report, err := svc.ValidateLocale(context.Background(), "age", "fr")
	if err != nil {
		t.Fatalf("ValidateLocale() error = %v", err)
	}
	if report.IsValid || len(report.MissingKeys) == 0 {
		t.Fatalf("expected an all-missing report, got %+v", report)
	}
}

func TestServiceValidateTranslationsSummary(t *testing.T) {
	svc := newTestService(t)

	summary, err := svc.ValidateTranslations(context.Background(), "age")
	if err != nil {
		t.Fatalf("ValidateTranslations() error = %v", err)
	}
	// en is mandatory but its file only carries the title.
	if summary.IsValid {
		t.Fatal("expected invalid summary")
	}
	if summary.CalculatorID != "age" {
		t.Fatalf("CalculatorID = %q", summary.CalculatorID)
	}
	en, _ := summary.ReportFor("en")
	if len(en.MissingKeys) == 0 {
		t.Fatal("expected missing keys for en")
	}
	es, _ := summary.ReportFor("es")
	if !es.IsValid {
		t.Fatalf("complete es overlay flagged: %+v", es)
	}
}

func TestServiceTemplateUsesExistingOverlay(t *testing.T) {
	svc := newTestService(t)

	tpl, err := svc.Template(context.Background(), "age", "en")
	if err != nil {
		t.Fatalf("Template() error = %v", err)
	}
	calc, _ := tpl["calculator"].(map[string]any)
	if calc["title"] != "Age Calculator" {
		t.Fatalf("existing value not carried: %v", calc)
	}

	fresh, err := svc.Template(context.Background(), "age", "fr")
	if err != nil {
		t.Fatalf("Template() error = %v", err)
	}
	if CountTodoItems(fresh) == 0 {
		t.Fatal("fresh template carries no sentinels")
	}
}

func TestServiceHTMLRendersMarkdownEntries(t *testing.T) {
	svc := newTestService(t)

	bundle, err := svc.Content(context.Background(), "age", "en")
	if err != nil {
		t.Fatalf("Content() error = %v", err)
	}

	html, err := svc.HTML(bundle)
	if err != nil {
		t.Fatalf("HTML() error = %v", err)
	}
	if _, ok := html["education.about.content"]; !ok {
		t.Fatal("education prose not rendered")
	}
	if _, ok := html["calculator.title"]; ok {
		t.Fatal("plain strings must not be rendered")
	}
	if rendered := html["faq.0.answer"]; !strings.Contains(rendered, "Yes, exactly.") {
		t.Fatalf("faq answer html = %q", rendered)
	}

	if out, err := svc.HTML(nil); err != nil || out != nil {
		t.Fatalf("nil bundle: %v %v", out, err)
	}
}

func TestServiceInvalidate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Content(ctx, "age", "en"); err != nil {
		t.Fatalf("Content() error = %v", err)
	}
	if _, err := svc.Content(ctx, "age", "es"); err != nil {
		t.Fatalf("Content() error = %v", err)
	}
	cache := svc.loader.Cache()
	if cache.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", cache.Len())
	}

	svc.Invalidate("age", "en")
	if cache.Len() != 1 {
		t.Fatalf("Len() = %d after single invalidation", cache.Len())
	}

	svc.Invalidate("age", "")
	if cache.Len() != 0 {
		t.Fatalf("Len() = %d after calculator invalidation", cache.Len())
	}

	if _, err := svc.Content(ctx, "age", "es"); err != nil {
		t.Fatalf("Content() error = %v", err)
	}
	svc.InvalidateAll()
	if cache.Len() != 0 {
		t.Fatalf("Len() = %d after full reset", cache.Len())
	}
}
