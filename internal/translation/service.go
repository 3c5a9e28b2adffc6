package translation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/payjnv/kalcufy-sub010/internal/definition"
	"github.com/payjnv/kalcufy-sub010/internal/logging"
	"github.com/payjnv/kalcufy-sub010/internal/markdown"
	"github.com/payjnv/kalcufy-sub010/pkg/interfaces"
)

// ServiceOption mutates service construction.
type ServiceOption func(*Service)

// WithServiceLogger injects the logger used for resolution reporting.
func WithServiceLogger(logger interfaces.Logger) ServiceOption {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRenderer overrides the markdown renderer used for HTML projection.
func WithRenderer(renderer *markdown.Renderer) ServiceOption {
	return func(s *Service) {
		if renderer != nil {
			s.renderer = renderer
		}
	}
}

// Service is the resolution façade: it loads overlays, merges them with
// definitions, and exposes the validation and template surfaces. Merge and
// validate are pure functions of their inputs; the loader's cache is the only
// shared state underneath.
type Service struct {
	definitions *definition.Registry
	loader      *Loader
	logger      interfaces.Logger
	renderer    *markdown.Renderer
}

// NewService wires a resolution service from a definition registry and a
// loader.
func NewService(definitions *definition.Registry, loader *Loader, opts ...ServiceOption) (*Service, error) {
	if definitions == nil {
		return nil, ErrRegistryRequired
	}
	if loader == nil {
		return nil, ErrLoaderRequired
	}
	svc := &Service{
		definitions: definitions,
		loader:      loader,
		logger:      logging.NoOp(),
		renderer:    markdown.NewRenderer(),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// Content resolves the merged bundle for one (calculator, locale) pair.
// Loader failures for the mandatory default locale abort resolution; missing
// keys never do, because every required path falls back to the definition
// default.
func (s *Service) Content(ctx context.Context, calculatorID, locale string) (*Bundle, error) {
	calc, err := s.definitions.Get(calculatorID)
	if err != nil {
		return nil, err
	}
	if !s.loader.Config().Knows(locale) {
		return nil, fmt.Errorf("%w: %q", ErrLocaleUnknown, locale)
	}

	result, err := s.loader.Load(ctx, calculatorID, locale)
	if err != nil {
		return nil, err
	}

	bundle := Merge(calc, result.Data)
	bundle.Meta = Meta{
		RequestedLocale: locale,
		ResolvedLocale:  result.Locale,
		FallbackUsed:    result.IsFallback,
	}

	logging.WithResolutionContext(s.logger, calculatorID, locale, result.IsFallback).
		Debug("translation.content.resolved",
			"resolved_locale", result.Locale,
			"translated_keys", bundle.TranslatedCount(),
			"total_keys", bundle.Len(),
		)
	return bundle, nil
}

// ValidateLocale reports completeness of one locale's overlay. A missing
// file yields an all-keys-missing report; a malformed file is a hard error.
func (s *Service) ValidateLocale(ctx context.Context, calculatorID, locale string) (Report, error) {
	calc, err := s.definitions.Get(calculatorID)
	if err != nil {
		return Report{}, err
	}

	result, err := s.loader.LoadExact(ctx, calculatorID, locale)
	if err != nil {
		if errors.Is(err, ErrMissingFile) {
			cfg := s.loader.Config()
			summary := ValidateAll(calc, Config{
				DefaultLocale:    cfg.DefaultLocale,
				Locales:          []string{locale},
				MandatoryLocales: cfg.MandatoryLocales,
			}, nil)
			report, _ := summary.ReportFor(locale)
			return report, nil
		}
		return Report{}, err
	}

	return Validate(result.Data, calc, locale), nil
}

// ValidateTranslations aggregates validation across every configured locale
// for one calculator. Absent overlays count as all keys missing; malformed
// overlays abort the run, because they mask real content.
func (s *Service) ValidateTranslations(ctx context.Context, calculatorID string) (Summary, error) {
	calc, err := s.definitions.Get(calculatorID)
	if err != nil {
		return Summary{}, err
	}

	cfg := s.loader.Config()
	overlays := make(map[string]RawTranslation, len(cfg.Locales))
	for _, locale := range cfg.Locales {
		result, err := s.loader.LoadExact(ctx, calculatorID, locale)
		if err != nil {
			if errors.Is(err, ErrMissingFile) {
				continue
			}
			return Summary{}, err
		}
		overlays[locale] = result.Data
	}

	summary := ValidateAll(calc, cfg, overlays)
	if !summary.IsValid {
		s.logger.Warn("translation.validate.incomplete",
			"calculator_id", calculatorID,
			"locales", len(summary.Reports),
		)
	}
	return summary, nil
}

// Template proposes a translation skeleton for one locale, preserving
// already-translated values from the overlay on disk when one exists.
func (s *Service) Template(ctx context.Context, calculatorID, locale string) (RawTranslation, error) {
	calc, err := s.definitions.Get(calculatorID)
	if err != nil {
		return nil, err
	}

	var existing RawTranslation
	result, err := s.loader.LoadExact(ctx, calculatorID, locale)
	switch {
	case err == nil:
		existing = result.Data
	case errors.Is(err, ErrMissingFile):
		// Fresh template; every key gets the sentinel.
	default:
		return nil, err
	}

	return GenerateTemplate(calc, existing), nil
}

// HTML projects the markdown-bearing entries of a bundle (education prose
// and FAQ answers) to HTML, keyed by their required path.
func (s *Service) HTML(bundle *Bundle) (map[string]string, error) {
	if bundle == nil {
		return nil, nil
	}
	out := make(map[string]string)
	for _, entry := range bundle.Entries() {
		if !rendersAsMarkdown(entry.Key) {
			continue
		}
		html, err := s.renderer.Render(entry.Value)
		if err != nil {
			return nil, fmt.Errorf("translation: render %s: %w", entry.Key, err)
		}
		out[entry.Key] = html
	}
	return out, nil
}

// Invalidate drops the cached overlay for one pair; empty locale drops every
// locale of the calculator.
func (s *Service) Invalidate(calculatorID, locale string) {
	if locale == "" {
		s.loader.Cache().InvalidateCalculator(calculatorID)
		return
	}
	s.loader.Cache().Invalidate(calculatorID, locale)
}

// InvalidateAll resets the translation cache.
func (s *Service) InvalidateAll() {
	s.loader.Cache().InvalidateAll()
}

func rendersAsMarkdown(key string) bool {
	if strings.HasPrefix(key, "education.") && strings.HasSuffix(key, ".content") {
		return true
	}
	if strings.HasPrefix(key, "faq.") && strings.HasSuffix(key, ".answer") {
		return true
	}
	return false
}
