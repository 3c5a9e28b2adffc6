package slugs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/payjnv/kalcufy-sub010/internal/definition"
	"github.com/payjnv/kalcufy-sub010/internal/util"
)

var (
	ErrEntryRequired      = errors.New("slugs: entry is required")
	ErrCalculatorRequired = errors.New("slugs: calculator id is required")
	ErrSlugRequired       = errors.New("slugs: slug is required for the default locale")
	ErrSlugInvalid        = errors.New("slugs: slug contains invalid characters")
	ErrEntryExists        = errors.New("slugs: calculator already has a slug entry")
	ErrEntryNotFound      = errors.New("slugs: entry not found")
	ErrSlugConflict       = errors.New("slugs: slug conflict")
)

// Entry maps one calculator to its localized URL slugs. Within a single
// locale no two entries may share a slug string.
type Entry struct {
	ID           uuid.UUID           `json:"id"`
	CalculatorID string              `json:"calculator_id"`
	Category     definition.Category `json:"category"`
	Slugs        map[string]string   `json:"slugs"`
}

// Clone returns a deep copy so registry snapshots stay immutable.
func (e *Entry) Clone() *Entry {
	if e == nil {
		return nil
	}
	return &Entry{
		ID:           e.ID,
		CalculatorID: e.CalculatorID,
		Category:     e.Category,
		Slugs:        util.CloneStringMap(e.Slugs),
	}
}

// SlugConflictError reports two calculators claiming the same localized slug.
type SlugConflictError struct {
	Locale        string
	Slug          string
	CalculatorIDs []string
}

func (e *SlugConflictError) Error() string {
	if e == nil {
		return ErrSlugConflict.Error()
	}
	return fmt.Sprintf("%s: locale=%s slug=%q claimed by %s",
		ErrSlugConflict.Error(), e.Locale, e.Slug, strings.Join(e.CalculatorIDs, ", "))
}

func (e *SlugConflictError) Unwrap() error { return ErrSlugConflict }

// Suggestion returns a human-actionable hint for operators.
func (e *SlugConflictError) Suggestion() string {
	return fmt.Sprintf("rename the %q slug of one of the listed calculators so every %s URL stays unique", e.Slug, e.Locale)
}

// UniquenessReport lists every duplicate found across all locales, so an
// operator can fix all collisions in one pass instead of one at a time.
type UniquenessReport struct {
	Conflicts []*SlugConflictError
	IsValid   bool
}

// AlternateURL is one cross-locale URL for SEO link generation.
type AlternateURL struct {
	Locale string
	URL    string
}

// RedirectRule instructs the external routing layer to permanently redirect
// a default-locale slug (under a locale's path prefix) to the canonical
// localized slug.
type RedirectRule struct {
	Locale    string
	From      string
	To        string
	Permanent bool
}
