package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"

	urlkit "github.com/goliatone/go-urlkit"
)

// ErrDefaultLocaleRequired indicates a configuration without a default locale.
var ErrDefaultLocaleRequired = errors.New("engine config: default locale is required")

// ErrDefaultLocaleUnknown indicates the default locale is missing from the locale list.
var ErrDefaultLocaleUnknown = errors.New("engine config: default locale must appear in the locale list")

// ErrMandatoryLocaleUnknown indicates a mandatory locale is missing from the locale list.
var ErrMandatoryLocaleUnknown = errors.New("engine config: mandatory locale must appear in the locale list")

var ErrTranslationsDirRequired = errors.New("engine config: translations directory is required")
var ErrLoggingLevelInvalid = errors.New("engine config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("engine config: logging format is invalid")
var ErrCacheTTLInvalid = errors.New("engine config: cache ttl must be zero or positive")

// Config aggregates locale policy, routing, storage, and logging bindings
// for the engine. Fields intentionally use simple types so host applications
// can extend them later.
type Config struct {
	I18N    I18NConfig
	Routes  RoutesConfig
	Cache   CacheConfig
	Logging LoggingConfig
}

// I18NConfig captures the locale policy the resolution pipeline enforces.
type I18NConfig struct {
	DefaultLocale    string
	Locales          []string
	MandatoryLocales []string
	TranslationsDir  string
}

// RoutesConfig captures routing configuration for slug URL generation.
type RoutesConfig struct {
	RouteConfig  *urlkit.Config
	DefaultGroup string
	LocaleGroups map[string]string
	Route        string
	SlugParam    string
}

// CacheConfig captures cache behaviour toggles for the slug repository.
type CacheConfig struct {
	Enabled    bool
	DefaultTTL time.Duration
}

// LoggingConfig captures logging provider options.
type LoggingConfig struct {
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns the baseline configuration: five locales with
// English and Spanish mandatory, translations read from "translations",
// console logging at info level.
func DefaultConfig() Config {
	return Config{
		I18N: I18NConfig{
			DefaultLocale:    "en",
			Locales:          []string{"en", "es", "fr", "de", "pt"},
			MandatoryLocales: []string{"en", "es"},
			TranslationsDir:  "translations",
		},
		Routes: RoutesConfig{
			Route:     "calculator",
			SlugParam: "slug",
		},
		Cache: CacheConfig{
			Enabled:    true,
			DefaultTTL: 5 * time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate enforces configuration invariants before any component is built.
func (c Config) Validate() error {
	if strings.TrimSpace(c.I18N.DefaultLocale) == "" {
		return ErrDefaultLocaleRequired
	}
	if !containsLocale(c.I18N.Locales, c.I18N.DefaultLocale) {
		return fmt.Errorf("%w: %q", ErrDefaultLocaleUnknown, c.I18N.DefaultLocale)
	}
	for _, locale := range c.I18N.MandatoryLocales {
		if !containsLocale(c.I18N.Locales, locale) {
			return fmt.Errorf("%w: %q", ErrMandatoryLocaleUnknown, locale)
		}
	}
	if strings.TrimSpace(c.I18N.TranslationsDir) == "" {
		return ErrTranslationsDirRequired
	}
	if c.Cache.DefaultTTL < 0 {
		return ErrCacheTTLInvalid
	}
	if err := validateLoggingLevel(c.Logging.Level); err != nil {
		return err
	}
	return validateLoggingFormat(c.Logging.Format)
}

func containsLocale(locales []string, locale string) bool {
	target := strings.ToLower(strings.TrimSpace(locale))
	for _, candidate := range locales {
		if strings.ToLower(strings.TrimSpace(candidate)) == target {
			return true
		}
	}
	return false
}

func validateLoggingLevel(level string) error {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "debug", "info", "warn", "warning", "error":
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrLoggingLevelInvalid, level)
	}
}

func validateLoggingFormat(format string) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "json", "console", "pretty", "text":
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrLoggingFormatInvalid, format)
	}
}
