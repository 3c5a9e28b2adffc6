package kalcufy

import (
	"context"

	admintranslations "github.com/payjnv/kalcufy-sub010/internal/admin/translations"
	"github.com/payjnv/kalcufy-sub010/internal/definition"
	"github.com/payjnv/kalcufy-sub010/internal/di"
	"github.com/payjnv/kalcufy-sub010/internal/logging"
	"github.com/payjnv/kalcufy-sub010/internal/slugs"
	"github.com/payjnv/kalcufy-sub010/internal/translation"
	"github.com/payjnv/kalcufy-sub010/pkg/interfaces"
)

// Calculator exports the calculator definition type for consumers of the package.
type Calculator = definition.Calculator

// Bundle exports the resolved translation bundle.
type Bundle = translation.Bundle

// Summary exports the per-calculator validation summary.
type Summary = translation.Summary

// RawTranslation exports the decoded translation file shape.
type RawTranslation = translation.RawTranslation

// SlugEntry exports the slug registration record.
type SlugEntry = slugs.Entry

// Outcome exports the result shape host-supplied calculator functions return.
type Outcome = interfaces.Outcome

// CalculateFunc exports the pure computation contract hosts implement per
// calculator; the engine itself never evaluates one.
type CalculateFunc = interfaces.CalculateFunc

// TranslationAdminService exports the translation maintenance admin helper contract.
type TranslationAdminService = *admintranslations.Service

// Engine is the top level façade: definitions, translation resolution, and
// slug registration behind one entry point.
type Engine struct {
	container *di.Container
}

// New constructs an engine using the provided configuration and optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Engine, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Engine{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (e *Engine) Container() *di.Container {
	return e.container
}

// Register adds a calculator definition and its slug entry. The definition is
// validated before it is stored; the slug entry is normalized, registered for
// lookups, and persisted.
func (e *Engine) Register(ctx context.Context, calc *definition.Calculator, entry *slugs.Entry) error {
	if err := e.container.Definitions().Register(calc); err != nil {
		return err
	}
	logging.DefinitionsLogger(e.container.LoggerProvider()).
		Debug("definition.registered", "calculator_id", calc.ID, "category", string(calc.Category))

	if entry == nil {
		return nil
	}
	if err := e.container.SlugRegistry().Register(entry); err != nil {
		return err
	}
	if _, err := e.container.SlugRepository().Save(ctx, entry); err != nil {
		return err
	}
	logging.SlugsLogger(e.container.LoggerProvider()).
		Debug("slug.registered", "calculator_id", entry.CalculatorID, "locales", len(entry.Slugs))
	return nil
}

// Content resolves the translated bundle for a calculator in a locale,
// falling back to the default locale when the requested file is absent.
func (e *Engine) Content(ctx context.Context, calculatorID, locale string) (*translation.Bundle, error) {
	return e.container.TranslationService().Content(ctx, calculatorID, locale)
}

// ValidateTranslations checks every configured locale of a calculator for
// missing and empty keys.
func (e *Engine) ValidateTranslations(ctx context.Context, calculatorID string) (translation.Summary, error) {
	return e.container.TranslationService().ValidateTranslations(ctx, calculatorID)
}

// Template generates a translation file template for a calculator locale,
// carrying forward existing values and marking gaps.
func (e *Engine) Template(ctx context.Context, calculatorID, locale string) (translation.RawTranslation, error) {
	return e.container.TranslationService().Template(ctx, calculatorID, locale)
}

// InvalidateTranslations evicts cached translation files for a calculator.
// An empty locale evicts every locale.
func (e *Engine) InvalidateTranslations(calculatorID, locale string) {
	e.container.TranslationService().Invalidate(calculatorID, locale)
}

// Definitions returns the calculator definition registry.
func (e *Engine) Definitions() *definition.Registry {
	return e.container.Definitions()
}

// Translations returns the translation resolution service.
func (e *Engine) Translations() *translation.Service {
	return e.container.TranslationService()
}

// Slugs returns the slug registry.
func (e *Engine) Slugs() *slugs.Registry {
	return e.container.SlugRegistry()
}

// TranslationAdmin returns the translations admin helper service.
func (e *Engine) TranslationAdmin() TranslationAdminService {
	if e == nil || e.container == nil {
		return nil
	}
	return e.container.TranslationAdminService()
}

// Logger returns a module-scoped logger from the configured provider.
func (e *Engine) Logger(name string) interfaces.Logger {
	return e.container.LoggerProvider().GetLogger(name)
}
