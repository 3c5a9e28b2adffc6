package slugs

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-slug"
	"github.com/google/uuid"

	"github.com/payjnv/kalcufy-sub010/internal/identity"
	"github.com/payjnv/kalcufy-sub010/internal/util"
)

// Config carries the locale policy the registry resolves against.
type Config struct {
	DefaultLocale string
	Locales       []string
}

// RegistryOption mutates registry construction.
type RegistryOption func(*Registry)

// WithURLResolver installs a route-manager backed URL builder for alternate
// URLs. Without one the registry falls back to bare locale-prefixed paths.
func WithURLResolver(resolver *URLResolver) RegistryOption {
	return func(r *Registry) {
		r.urls = resolver
	}
}

// Registry is the flat slug table: one entry per calculator, one localized
// slug per locale. Registration normalizes and validates slugs; lookups are
// read-only and safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	config  Config
	entries []*Entry
	byCalc  map[string]*Entry
	urls    *URLResolver
}

// NewRegistry constructs an empty slug registry.
func NewRegistry(cfg Config, opts ...RegistryOption) *Registry {
	r := &Registry{
		config: cfg,
		byCalc: make(map[string]*Entry),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register normalizes, validates, and stores one entry. The default locale
// must carry a slug; other locales may be absent (they inherit the default
// slug for lookups). A deterministic id is derived when none is set.
func (r *Registry) Register(entry *Entry) error {
	if entry == nil {
		return ErrEntryRequired
	}
	if strings.TrimSpace(entry.CalculatorID) == "" {
		return ErrCalculatorRequired
	}

	stored := entry.Clone()
	if stored.Slugs == nil {
		stored.Slugs = make(map[string]string)
	}

	for locale, raw := range stored.Slugs {
		normalized, err := slug.Normalize(raw)
		if err != nil || !slug.IsValid(normalized) {
			return fmt.Errorf("%w: calculator=%s locale=%s slug=%q", ErrSlugInvalid, stored.CalculatorID, locale, raw)
		}
		stored.Slugs[locale] = normalized
	}
	if strings.TrimSpace(stored.Slugs[r.config.DefaultLocale]) == "" {
		return fmt.Errorf("%w: calculator=%s locale=%s", ErrSlugRequired, stored.CalculatorID, r.config.DefaultLocale)
	}
	if stored.ID == uuid.Nil {
		stored.ID = identity.SlugEntryUUID(stored.CalculatorID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byCalc[stored.CalculatorID]; exists {
		return fmt.Errorf("%w: %q", ErrEntryExists, stored.CalculatorID)
	}
	r.entries = append(r.entries, stored)
	r.byCalc[stored.CalculatorID] = stored
	return nil
}

// EntryBySlug resolves a localized slug back to its entry.
func (r *Registry) EntryBySlug(slugValue, locale string) (*Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, entry := range r.entries {
		if r.localizedSlugLocked(entry, locale) == slugValue {
			return entry.Clone(), true
		}
	}
	return nil, false
}

// LocalizedSlug returns the slug for a calculator in a locale, inheriting
// the default-locale slug when the locale has no dedicated one.
func (r *Registry) LocalizedSlug(calculatorID, locale string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.byCalc[calculatorID]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrEntryNotFound, calculatorID)
	}
	return r.localizedSlugLocked(entry, locale), nil
}

// InternalSlug maps a localized slug back to the default-locale slug, which
// is the stable internal handle used by content tooling.
func (r *Registry) InternalSlug(slugValue, locale string) (string, error) {
	entry, ok := r.EntryBySlug(slugValue, locale)
	if !ok {
		return "", fmt.Errorf("%w: slug=%q locale=%s", ErrEntryNotFound, slugValue, locale)
	}
	return entry.Slugs[r.config.DefaultLocale], nil
}

// AlternateURLs returns one URL per configured locale for a calculator, for
// hreflang/SEO link generation.
func (r *Registry) AlternateURLs(calculatorID string) ([]AlternateURL, error) {
	r.mu.RLock()
	entry, ok := r.byCalc[calculatorID]
	if !ok {
		r.mu.RUnlock()
		return nil, fmt.Errorf("%w: %q", ErrEntryNotFound, calculatorID)
	}
	entry = entry.Clone()
	r.mu.RUnlock()

	urls := make([]AlternateURL, 0, len(r.config.Locales))
	for _, locale := range r.config.Locales {
		slugValue := entry.Slugs[locale]
		if slugValue == "" {
			slugValue = entry.Slugs[r.config.DefaultLocale]
		}
		url, err := r.buildURL(locale, slugValue)
		if err != nil {
			return nil, err
		}
		urls = append(urls, AlternateURL{Locale: locale, URL: url})
	}
	return urls, nil
}

// RedirectRules returns the permanent redirects a locale needs: whenever the
// canonical localized slug differs from the default-locale slug, the
// default-locale slug under that locale's prefix redirects to the canonical
// URL.
func (r *Registry) RedirectRules(locale string) []RedirectRule {
	if locale == r.config.DefaultLocale {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	rules := make([]RedirectRule, 0)
	for _, entry := range r.entries {
		defaultSlug := entry.Slugs[r.config.DefaultLocale]
		localized := r.localizedSlugLocked(entry, locale)
		if localized == defaultSlug {
			continue
		}
		rules = append(rules, RedirectRule{
			Locale:    locale,
			From:      "/" + locale + "/" + defaultSlug,
			To:        "/" + locale + "/" + localized,
			Permanent: true,
		})
	}
	return rules
}

// ValidateUniqueness asserts, per locale independently, that no two entries
// share a slug string. Every duplicate is reported, not just the first.
func (r *Registry) ValidateUniqueness() UniquenessReport {
	r.mu.RLock()
	defer r.mu.RUnlock()

	report := UniquenessReport{Conflicts: make([]*SlugConflictError, 0), IsValid: true}
	for _, locale := range r.config.Locales {
		claims := make(map[string][]string)
		for _, entry := range r.entries {
			slugValue := r.localizedSlugLocked(entry, locale)
			claims[slugValue] = append(claims[slugValue], entry.CalculatorID)
		}

		duplicated := make([]string, 0)
		for slugValue, owners := range claims {
			if len(owners) > 1 {
				duplicated = append(duplicated, slugValue)
			}
		}
		sort.Strings(duplicated)

		for _, slugValue := range duplicated {
			owners := claims[slugValue]
			sort.Strings(owners)
			report.Conflicts = append(report.Conflicts, &SlugConflictError{
				Locale:        locale,
				Slug:          slugValue,
				CalculatorIDs: owners,
			})
		}
	}

	report.IsValid = len(report.Conflicts) == 0
	return report
}

// Entries returns a snapshot of all registered entries in registration order.
func (r *Registry) Entries() []*Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Entry, 0, len(r.entries))
	for _, entry := range r.entries {
		out = append(out, entry.Clone())
	}
	return out
}

func (r *Registry) localizedSlugLocked(entry *Entry, locale string) string {
	return util.FirstNonEmpty(entry.Slugs[locale], entry.Slugs[r.config.DefaultLocale])
}

func (r *Registry) buildURL(locale, slugValue string) (string, error) {
	if r.urls != nil {
		return r.urls.CalculatorURL(locale, slugValue)
	}
	if locale == r.config.DefaultLocale {
		return "/" + slugValue, nil
	}
	return "/" + locale + "/" + slugValue, nil
}
