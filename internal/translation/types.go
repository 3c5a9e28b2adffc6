package translation

// RawTranslation is one locale's sparse overlay for a calculator: a nested
// string tree keyed by the same dotted paths the schema walker enumerates.
// The engine treats overlays as read-only; only the template generator
// proposes new ones, and persisting those is the authoring tool's job.
type RawTranslation map[string]any

// ReservedNamespaces are top-level keys a translation file may carry beyond
// the definition-derived paths (shared site chrome). They are preserved by
// the template generator and ignored by completeness checks.
var ReservedNamespaces = []string{"common", "buttons", "disclaimers", "sources"}

// Config carries the locale policy the loader and validator operate under.
type Config struct {
	// DefaultLocale is the locale definitions are authored in. Its overlay
	// is the final fallback and must always be loadable.
	DefaultLocale string
	// Locales is the full set of target locales, default first.
	Locales []string
	// MandatoryLocales must have an overlay on disk; a missing file is a
	// hard error instead of a fallback.
	MandatoryLocales []string
}

// IsMandatory reports whether a locale may not fall back to the default.
func (c Config) IsMandatory(locale string) bool {
	if locale == c.DefaultLocale {
		return true
	}
	for _, mandatory := range c.MandatoryLocales {
		if mandatory == locale {
			return true
		}
	}
	return false
}

// Knows reports whether the locale is configured at all.
func (c Config) Knows(locale string) bool {
	for _, known := range c.Locales {
		if known == locale {
			return true
		}
	}
	return false
}

// LoadResult is the outcome of resolving an overlay for one
// (calculator, locale) pair. When the requested locale had no file and was
// not mandatory, Locale names the default locale and IsFallback is true; the
// caller decides whether to surface a "not fully translated" notice.
type LoadResult struct {
	Locale     string
	Data       RawTranslation
	IsFallback bool
}

// Entry is one resolved string of a merged bundle. Translated records
// whether the value came from the overlay or fell back to the definition
// default.
type Entry struct {
	Key        string
	Value      string
	Translated bool
}

// Meta describes how a bundle's locale was resolved, mirroring what the
// rendering layer needs for hreflang tags and translation notices.
type Meta struct {
	RequestedLocale string
	ResolvedLocale  string
	FallbackUsed    bool
}

// Bundle is the fully resolved content for one (calculator, locale) pair.
// It is recomputed per request and never mutated after creation.
type Bundle struct {
	CalculatorID string
	Meta         Meta

	entries []Entry
	index   map[string]int
}

// String returns the resolved string for a required key path, or "" when the
// key is not part of the calculator's shape.
func (b *Bundle) String(key string) string {
	entry, ok := b.Entry(key)
	if !ok {
		return ""
	}
	return entry.Value
}

// Entry returns the full entry for a key path.
func (b *Bundle) Entry(key string) (Entry, bool) {
	if b == nil {
		return Entry{}, false
	}
	idx, ok := b.index[key]
	if !ok {
		return Entry{}, false
	}
	return b.entries[idx], true
}

// Entries returns all entries in walker order. The slice is a copy; the
// bundle itself stays immutable.
func (b *Bundle) Entries() []Entry {
	if b == nil {
		return nil
	}
	out := make([]Entry, len(b.entries))
	copy(out, b.entries)
	return out
}

// Keys returns the required key paths in walker order.
func (b *Bundle) Keys() []string {
	if b == nil {
		return nil
	}
	keys := make([]string, 0, len(b.entries))
	for _, entry := range b.entries {
		keys = append(keys, entry.Key)
	}
	return keys
}

// Len returns the number of resolved entries.
func (b *Bundle) Len() int {
	if b == nil {
		return 0
	}
	return len(b.entries)
}

// TranslatedCount returns how many entries came from the overlay rather than
// the definition defaults.
func (b *Bundle) TranslatedCount() int {
	if b == nil {
		return 0
	}
	count := 0
	for _, entry := range b.entries {
		if entry.Translated {
			count++
		}
	}
	return count
}

// Report classifies one locale's overlay against the required key set.
// The three sets (present, missing, empty) are disjoint; IsValid means the
// overlay is complete (no missing and no empty keys).
type Report struct {
	Locale      string
	MissingKeys []string
	EmptyKeys   []string
	IsValid     bool
}

// Progress summarises translation completeness for one locale, suitable for
// an authoring dashboard.
type Progress struct {
	Locale        string
	CompletedKeys int
	TotalKeys     int
}

// Summary aggregates validation across every configured locale for one
// calculator. IsValid applies the mandatory-locale policy: a summary is
// invalid only when a mandatory locale has missing keys (or no overlay at
// all); empty values and optional-locale gaps are warnings.
type Summary struct {
	CalculatorID string
	Reports      []Report
	Progress     []Progress
	IsValid      bool
}

// ReportFor returns the per-locale report from a summary.
func (s Summary) ReportFor(locale string) (Report, bool) {
	for _, report := range s.Reports {
		if report.Locale == locale {
			return report, true
		}
	}
	return Report{}, false
}
