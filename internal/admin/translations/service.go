package translations

import (
	"context"
	"errors"
	"time"

	"github.com/payjnv/kalcufy-sub010/internal/audit"
	"github.com/payjnv/kalcufy-sub010/internal/translation"
)

// ErrServiceRequired indicates the admin service was constructed without a translation service.
var ErrServiceRequired = errors.New("admintranslations: translation service is required")

// Option mutates the service configuration.
type Option func(*Service)

// WithClock overrides the clock used for audit timestamps.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithRecorder overrides the audit recorder dependency.
func WithRecorder(recorder audit.Recorder) Option {
	return func(s *Service) {
		s.audit = recorder
	}
}

// Service exposes translation maintenance operations to admin tooling and
// records an audit trail for each one.
type Service struct {
	translations *translation.Service
	audit        audit.Recorder
	clock        func() time.Time
}

// NewService constructs a translations admin service.
func NewService(translations *translation.Service, recorder audit.Recorder, opts ...Option) *Service {
	svc := &Service{
		translations: translations,
		audit:        recorder,
		clock:        time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// Report runs the completeness check for a calculator and records the outcome.
func (s *Service) Report(ctx context.Context, calculatorID string) (translation.Summary, error) {
	if s.translations == nil {
		return translation.Summary{}, ErrServiceRequired
	}
	if ctx == nil {
		ctx = context.Background()
	}

	summary, err := s.translations.ValidateTranslations(ctx, calculatorID)
	if err != nil {
		return translation.Summary{}, err
	}

	s.recordAudit(ctx, audit.Event{
		EntityType: "calculator_translations",
		EntityID:   calculatorID,
		Action:     "translations_validated",
		OccurredAt: s.clock(),
		Metadata: map[string]any{
			"is_valid": summary.IsValid,
			"locales":  len(summary.Reports),
		},
	})
	return summary, nil
}

// ProposeTemplate generates a translation template for a calculator locale
// and records the proposal.
func (s *Service) ProposeTemplate(ctx context.Context, calculatorID, locale string) (translation.RawTranslation, error) {
	if s.translations == nil {
		return nil, ErrServiceRequired
	}
	if ctx == nil {
		ctx = context.Background()
	}

	template, err := s.translations.Template(ctx, calculatorID, locale)
	if err != nil {
		return nil, err
	}

	s.recordAudit(ctx, audit.Event{
		EntityType: "calculator_translations",
		EntityID:   calculatorID,
		Action:     "translation_template_proposed",
		OccurredAt: s.clock(),
		Metadata: map[string]any{
			"locale":     locale,
			"todo_items": translation.CountTodoItems(template),
		},
	})
	return template, nil
}

// Invalidate evicts cached translations for a calculator and records the eviction.
func (s *Service) Invalidate(ctx context.Context, calculatorID, locale string) error {
	if s.translations == nil {
		return ErrServiceRequired
	}
	if ctx == nil {
		ctx = context.Background()
	}

	s.translations.Invalidate(calculatorID, locale)

	s.recordAudit(ctx, audit.Event{
		EntityType: "calculator_translations",
		EntityID:   calculatorID,
		Action:     "translation_cache_invalidated",
		OccurredAt: s.clock(),
		Metadata: map[string]any{
			"locale": locale,
		},
	})
	return nil
}

func (s *Service) recordAudit(ctx context.Context, event audit.Event) {
	if s.audit == nil {
		return
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = s.clock()
	}
	_ = s.audit.Record(ctx, event)
}
