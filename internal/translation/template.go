package translation

import (
	"strings"

	"github.com/payjnv/kalcufy-sub010/internal/definition"
	"github.com/payjnv/kalcufy-sub010/internal/keypath"
	"github.com/payjnv/kalcufy-sub010/internal/schemawalk"
)

// TodoPrefix marks a template value an author still has to translate. The
// default text rides along as a hint.
const TodoPrefix = "TODO: "

// GenerateTemplate proposes a translation-file skeleton for one locale.
// Values already filled in the existing overlay are carried forward
// unchanged, so re-generation never clobbers real work; everything else is
// marked with the TODO sentinel embedding the default string. Reserved
// namespaces (common, buttons, ...) in the existing overlay are preserved
// as-is. The engine never writes the result anywhere; saving it is the
// authoring tool's responsibility.
func GenerateTemplate(calc *definition.Calculator, existing RawTranslation) RawTranslation {
	out := make(RawTranslation)

	for _, p := range schemawalk.Required(calc) {
		value := TodoPrefix + p.Default
		if existing != nil {
			if resolved, ok := keypath.Get(map[string]any(existing), p.Key); ok && keypath.HasValue(resolved) {
				if s := stringValue(resolved); !IsTodo(s) {
					value = s
				}
			}
		}
		keypath.Set(map[string]any(out), p.Key, value)
	}

	for _, namespace := range ReservedNamespaces {
		if existing == nil {
			break
		}
		if kept, ok := existing[namespace]; ok {
			out[namespace] = kept
		}
	}

	return out
}

// IsTodo reports whether a value is still the generator's sentinel.
func IsTodo(value string) bool {
	return strings.HasPrefix(strings.TrimSpace(value), strings.TrimSpace(TodoPrefix))
}

// CountTodoItems recursively counts remaining sentinel values, used to
// report "N strings left to translate".
func CountTodoItems(raw RawTranslation) int {
	return countTodo(map[string]any(raw))
}

func countTodo(node any) int {
	switch typed := node.(type) {
	case string:
		if IsTodo(typed) {
			return 1
		}
		return 0
	case map[string]any:
		count := 0
		for _, child := range typed {
			count += countTodo(child)
		}
		return count
	case []any:
		count := 0
		for _, child := range typed {
			count += countTodo(child)
		}
		return count
	default:
		return 0
	}
}
