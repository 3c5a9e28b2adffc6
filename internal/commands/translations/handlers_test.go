package translationscmd_test

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	translationscmd "github.com/payjnv/kalcufy-sub010/internal/commands/translations"
	"github.com/payjnv/kalcufy-sub010/internal/definition"
	"github.com/payjnv/kalcufy-sub010/internal/translation"
)

func newCommandService(t *testing.T) *translation.Service {
	t.Helper()

	registry := definition.NewRegistry()
	calc := &definition.Calculator{
		ID:       "tip",
		Category: definition.CategoryFinance,
		Title:    "Tip Calculator",
		Inputs: []definition.Input{
			{ID: "bill", Kind: definition.InputNumber, Label: "Bill amount"},
		},
		Results: []definition.Result{
			{ID: "total", Kind: definition.ResultCurrency, Label: "Total with tip"},
		},
	}
	if err := registry.Register(calc); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	fsys := fstest.MapFS{
		"tip/en.json": &fstest.MapFile{Data: []byte(`{
			"calculator": {"title": "Tip Calculator"},
			"inputs": {"bill": {"label": "Bill amount"}},
			"results": {"total": "Total with tip"}
		}`)},
	}

	cfg := translation.Config{
		DefaultLocale:    "en",
		Locales:          []string{"en", "es"},
		MandatoryLocales: []string{"en", "es"},
	}

	svc, err := translation.NewService(registry, translation.NewLoader(fsys, cfg))
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	return svc
}

func TestValidateTranslationsHandlerForwardsSummary(t *testing.T) {
	svc := newCommandService(t)

	var captured translation.Summary
	sink := func(_ context.Context, summary translation.Summary) error {
		captured = summary
		return nil
	}

	handler := translationscmd.NewValidateTranslationsHandler(svc, sink, nil)
	if err := handler.Execute(context.Background(), translationscmd.ValidateTranslationsCommand{CalculatorID: "tip"}); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if captured.CalculatorID != "tip" {
		t.Fatalf("sink not invoked: %+v", captured)
	}
	// es is mandatory and has no file.
	if captured.IsValid {
		t.Fatal("expected invalid summary")
	}
}

func TestValidateTranslationsHandlerRejectsEmptyMessage(t *testing.T) {
	handler := translationscmd.NewValidateTranslationsHandler(newCommandService(t), nil, nil)

	if err := handler.Execute(context.Background(), translationscmd.ValidateTranslationsCommand{}); err == nil {
		t.Fatal("expected a validation error")
	}
}

func TestValidateTranslationsHandlerPropagatesSinkError(t *testing.T) {
	sinkErr := errors.New("sink failed")
	sink := func(context.Context, translation.Summary) error { return sinkErr }

	handler := translationscmd.NewValidateTranslationsHandler(newCommandService(t), sink, nil)
	err := handler.Execute(context.Background(), translationscmd.ValidateTranslationsCommand{CalculatorID: "tip"})
	if !errors.Is(err, sinkErr) {
		t.Fatalf("expected sink error, got %v", err)
	}
}

func TestGenerateTemplateHandlerProducesTemplate(t *testing.T) {
	svc := newCommandService(t)

	var got translation.RawTranslation
	sink := func(_ context.Context, calculatorID, locale string, template translation.RawTranslation) error {
		if calculatorID != "tip" || locale != "es" {
			t.Fatalf("sink called with %s/%s", calculatorID, locale)
		}
		got = template
		return nil
	}

	handler := translationscmd.NewGenerateTemplateHandler(svc, sink, nil)
	if err := handler.Execute(context.Background(), translationscmd.GenerateTemplateCommand{CalculatorID: "tip", Locale: "es"}); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if translation.CountTodoItems(got) != 3 {
		t.Fatalf("CountTodoItems = %d, want 3", translation.CountTodoItems(got))
	}
}

func TestGenerateTemplateHandlerRequiresLocale(t *testing.T) {
	handler := translationscmd.NewGenerateTemplateHandler(newCommandService(t), nil, nil)

	if err := handler.Execute(context.Background(), translationscmd.GenerateTemplateCommand{CalculatorID: "tip"}); err == nil {
		t.Fatal("expected a validation error")
	}
}

func TestInvalidateCacheHandlerEvicts(t *testing.T) {
	svc := newCommandService(t)
	ctx := context.Background()

	if _, err := svc.Content(ctx, "tip", "en"); err != nil {
		t.Fatalf("Content() error = %v", err)
	}

	handler := translationscmd.NewInvalidateCacheHandler(svc, nil)
	if err := handler.Execute(ctx, translationscmd.InvalidateCacheCommand{CalculatorID: "tip", Locale: "en"}); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if err := handler.Execute(ctx, translationscmd.InvalidateCacheCommand{}); err == nil {
		t.Fatal("expected a validation error")
	}
}

func TestMessageTypes(t *testing.T) {
	cases := []struct {
		msg  interface{ Type() string }
		want string
	}{
		{translationscmd.ValidateTranslationsCommand{}, "kalcufy.translations.validate"},
		{translationscmd.GenerateTemplateCommand{}, "kalcufy.translations.template"},
		{translationscmd.InvalidateCacheCommand{}, "kalcufy.translations.invalidate"},
	}
	for _, tc := range cases {
		if got := tc.msg.Type(); got != tc.want {
			t.Errorf("Type() = %q, want %q", got, tc.want)
		}
	}
}
