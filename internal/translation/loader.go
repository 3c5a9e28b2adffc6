package translation

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"path"

	"github.com/payjnv/kalcufy-sub010/internal/logging"
	"github.com/payjnv/kalcufy-sub010/pkg/interfaces"
)

// LoaderOption mutates loader construction.
type LoaderOption func(*Loader)

// WithCache injects a shared cache. Defaults to a fresh cache per loader.
func WithCache(cache *Cache) LoaderOption {
	return func(l *Loader) {
		if cache != nil {
			l.cache = cache
		}
	}
}

// WithLogger injects the logger used for fallback and failure reporting.
func WithLogger(logger interfaces.Logger) LoaderOption {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// Loader resolves translation overlays from a filesystem laid out as
// <calculatorID>/<locale>.json under the provided root.
type Loader struct {
	fsys   fs.FS
	config Config
	cache  *Cache
	logger interfaces.Logger
}

// NewLoader constructs a loader over the given filesystem and locale policy.
func NewLoader(fsys fs.FS, cfg Config, opts ...LoaderOption) *Loader {
	loader := &Loader{
		fsys:   fsys,
		config: cfg,
		cache:  NewCache(),
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(loader)
	}
	return loader
}

// Config returns the locale policy the loader operates under.
func (l *Loader) Config() Config {
	return l.config
}

// Cache exposes the loader's cache for administrative invalidation.
func (l *Loader) Cache() *Cache {
	return l.cache
}

// Load resolves the overlay for a (calculator, locale) pair, applying the
// fallback policy: a missing file for a non-mandatory locale degrades to the
// default locale with IsFallback set, a missing file for a mandatory locale
// is a MissingFileError, and a file that exists but fails to parse is an
// InvalidFormatError regardless of locale. Successful loads are memoized.
func (l *Loader) Load(ctx context.Context, calculatorID, locale string) (*LoadResult, error) {
	if l == nil || l.fsys == nil {
		return nil, ErrLoaderRequired
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if cached, ok := l.cache.Get(calculatorID, locale); ok {
		return cached, nil
	}

	data, err := l.readFile(calculatorID, locale)
	if err == nil {
		result := &LoadResult{Locale: locale, Data: data}
		l.cache.Put(calculatorID, locale, result)
		return result, nil
	}

	var missing *MissingFileError
	if !errors.As(err, &missing) {
		return nil, err
	}
	if l.config.IsMandatory(locale) {
		return nil, err
	}

	logging.WithResolutionContext(l.logger, calculatorID, locale, true).
		Warn("translation.load.fallback", "fallback_locale", l.config.DefaultLocale)

	data, err = l.readFile(calculatorID, l.config.DefaultLocale)
	if err != nil {
		// No further fallback beyond the default locale.
		return nil, err
	}

	result := &LoadResult{Locale: l.config.DefaultLocale, Data: data, IsFallback: true}
	l.cache.Put(calculatorID, locale, result)
	return result, nil
}

// LoadExact reads the overlay for the exact locale with no fallback; the
// validator uses it to tell "file absent" apart from "file incomplete".
func (l *Loader) LoadExact(ctx context.Context, calculatorID, locale string) (*LoadResult, error) {
	if l == nil || l.fsys == nil {
		return nil, ErrLoaderRequired
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	data, err := l.readFile(calculatorID, locale)
	if err != nil {
		return nil, err
	}
	return &LoadResult{Locale: locale, Data: data}, nil
}

func (l *Loader) readFile(calculatorID, locale string) (RawTranslation, error) {
	filePath := path.Join(calculatorID, locale+".json")

	raw, err := fs.ReadFile(l.fsys, filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &MissingFileError{CalculatorID: calculatorID, Locale: locale, Path: filePath}
		}
		return nil, &InvalidFormatError{CalculatorID: calculatorID, Locale: locale, Path: filePath, Cause: err}
	}

	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, &InvalidFormatError{CalculatorID: calculatorID, Locale: locale, Path: filePath, Cause: err}
	}
	if err := validateFileShape(decoded); err != nil {
		return nil, &InvalidFormatError{CalculatorID: calculatorID, Locale: locale, Path: filePath, Cause: err}
	}
	return RawTranslation(decoded), nil
}
