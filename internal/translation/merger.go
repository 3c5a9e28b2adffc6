package translation

import (
	"fmt"

	"github.com/payjnv/kalcufy-sub010/internal/definition"
	"github.com/payjnv/kalcufy-sub010/internal/keypath"
	"github.com/payjnv/kalcufy-sub010/internal/schemawalk"
)

// Merge combines a definition with a loaded overlay. Every required key path
// resolves to the overlay value when present and non-empty, else to the
// definition's own default string, so a merged bundle never has an
// unresolved path. Each leaf resolves independently: partially translated
// option maps and FAQ pairs mix translated and default strings. A nil or
// empty overlay yields the definition defaults verbatim.
func Merge(calc *definition.Calculator, raw RawTranslation) *Bundle {
	paths := schemawalk.Required(calc)

	bundle := &Bundle{
		entries: make([]Entry, 0, len(paths)),
		index:   make(map[string]int, len(paths)),
	}
	if calc != nil {
		bundle.CalculatorID = calc.ID
	}

	for _, p := range paths {
		value := p.Default
		translated := false
		if raw != nil {
			if resolved, ok := keypath.Get(map[string]any(raw), p.Key); ok && keypath.HasValue(resolved) {
				value = stringValue(resolved)
				translated = true
			}
		}
		bundle.index[p.Key] = len(bundle.entries)
		bundle.entries = append(bundle.entries, Entry{Key: p.Key, Value: value, Translated: translated})
	}

	return bundle
}

func stringValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
