package translation

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingFile      = errors.New("translation: overlay file missing")
	ErrInvalidFormat    = errors.New("translation: overlay file invalid")
	ErrMissingKeys      = errors.New("translation: required keys missing")
	ErrEmptyValue       = errors.New("translation: value present but empty")
	ErrLocaleUnknown    = errors.New("translation: locale not configured")
	ErrLoaderRequired   = errors.New("translation: loader is required")
	ErrRegistryRequired = errors.New("translation: definition registry is required")
)

// MissingFileError reports an absent overlay file. For optional locales the
// loader recovers by falling back to the default locale; for mandatory
// locales (including the default itself) the error is fatal.
type MissingFileError struct {
	CalculatorID string
	Locale       string
	Path         string
}

func (e *MissingFileError) Error() string {
	if e == nil {
		return ErrMissingFile.Error()
	}
	return fmt.Sprintf("%s: %s/%s (%s)", ErrMissingFile.Error(), e.CalculatorID, e.Locale, e.Path)
}

func (e *MissingFileError) Unwrap() error { return ErrMissingFile }

// Suggestion returns a human-actionable hint for operators.
func (e *MissingFileError) Suggestion() string {
	return fmt.Sprintf("create %s, for example by running the template generator for calculator %q locale %q", e.Path, e.CalculatorID, e.Locale)
}

// InvalidFormatError reports an overlay file that exists but cannot be
// parsed as a nested string tree. Always fatal: a malformed file masks real
// content an author believed was saved, so it is never downgraded to
// "treat as missing".
type InvalidFormatError struct {
	CalculatorID string
	Locale       string
	Path         string
	Cause        error
}

func (e *InvalidFormatError) Error() string {
	if e == nil {
		return ErrInvalidFormat.Error()
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s/%s (%s): %v", ErrInvalidFormat.Error(), e.CalculatorID, e.Locale, e.Path, e.Cause)
	}
	return fmt.Sprintf("%s: %s/%s (%s)", ErrInvalidFormat.Error(), e.CalculatorID, e.Locale, e.Path)
}

func (e *InvalidFormatError) Unwrap() error { return ErrInvalidFormat }

// Suggestion returns a human-actionable hint for operators.
func (e *InvalidFormatError) Suggestion() string {
	return fmt.Sprintf("fix the JSON in %s; translation files must contain only nested objects with string leaves", e.Path)
}

// MissingKeysError reports structurally required paths absent from an
// otherwise-loaded overlay. Reported, not fatal, unless the locale is
// mandatory; end users never see it because the merger substitutes the
// default string.
type MissingKeysError struct {
	CalculatorID string
	Locale       string
	Keys         []string
}

func (e *MissingKeysError) Error() string {
	if e == nil {
		return ErrMissingKeys.Error()
	}
	return fmt.Sprintf("%s: %s/%s: %s", ErrMissingKeys.Error(), e.CalculatorID, e.Locale, strings.Join(e.Keys, ", "))
}

func (e *MissingKeysError) Unwrap() error { return ErrMissingKeys }

// Suggestion returns a human-actionable hint for operators.
func (e *MissingKeysError) Suggestion() string {
	return fmt.Sprintf("add the %d listed keys to the %q overlay of calculator %q, or regenerate its template", len(e.Keys), e.Locale, e.CalculatorID)
}

// EmptyValueError is a warning: a path exists but its value is blank, which
// usually means an author started but did not finish.
type EmptyValueError struct {
	CalculatorID string
	Locale       string
	Keys         []string
}

func (e *EmptyValueError) Error() string {
	if e == nil {
		return ErrEmptyValue.Error()
	}
	return fmt.Sprintf("%s: %s/%s: %s", ErrEmptyValue.Error(), e.CalculatorID, e.Locale, strings.Join(e.Keys, ", "))
}

func (e *EmptyValueError) Unwrap() error { return ErrEmptyValue }

// Suggestion returns a human-actionable hint for operators.
func (e *EmptyValueError) Suggestion() string {
	return fmt.Sprintf("fill in the blank values in the %q overlay of calculator %q", e.Locale, e.CalculatorID)
}
