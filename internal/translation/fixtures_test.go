package translation

import (
	"testing"
	"testing/fstest"

	"github.com/payjnv/kalcufy-sub010/internal/definition"
)

var testConfig = Config{
	DefaultLocale:    "en",
	Locales:          []string{"en", "es", "fr"},
	MandatoryLocales: []string{"en", "es"},
}

func ageCalculator() *definition.Calculator {
	return &definition.Calculator{
		ID:       "age",
		Category: definition.CategoryDate,
		Title:    "Age Calculator",
		Inputs: []definition.Input{
			{ID: "birthdate", Kind: definition.InputDate, Label: "Birth date"},
		},
		Results: []definition.Result{
			{ID: "years", Kind: definition.ResultNumber, Label: "Age in years"},
		},
		Education: []definition.EducationSection{
			&definition.ProseSection{ID: "about", Content: "Counts full years between dates."},
		},
		FAQs: []definition.FAQ{
			{Question: "Does it count leap years?", Answer: "Yes, exactly."},
			{Question: "Can I use future dates?", Answer: "No."},
		},
	}
}

func spanishOverlay() RawTranslation {
	return RawTranslation{
		"calculator": map[string]any{"title": "Calculadora de Edad"},
		"inputs": map[string]any{
			"birthdate": map[string]any{"label": "Fecha de nacimiento"},
		},
		"results": map[string]any{"years": "Edad en años"},
		"education": map[string]any{
			"about": map[string]any{"content": "Cuenta los años completos entre fechas."},
		},
		"faq": []any{
			map[string]any{"question": "¿Cuenta los años bisiestos?", "answer": "Sí, exactamente."},
			map[string]any{"question": "¿Puedo usar fechas futuras?", "answer": "No."},
		},
	}
}

func newTestRegistry(t *testing.T) *definition.Registry {
	t.Helper()
	registry := definition.NewRegistry()
	if err := registry.Register(ageCalculator()); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	return registry
}

func mustJSON(t *testing.T, data string) *fstest.MapFile {
	t.Helper()
	return &fstest.MapFile{Data: []byte(data)}
}
