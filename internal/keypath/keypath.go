// Package keypath implements dotted-path lookups over nested translation
// trees. Paths use plain dot separation (`inputs.age.label`, `faq.0.answer`);
// numeric segments index into JSON arrays as well as object keys, because
// authors write FAQ blocks both ways.
package keypath

import (
	"strconv"
	"strings"
)

// Get walks root along a dotted path. The second return is false as soon as
// an intermediate node is not a container or a segment is missing; Get never
// panics on malformed trees.
func Get(root any, path string) (any, bool) {
	segments := Segments(path)
	if len(segments) == 0 {
		return nil, false
	}

	current := root
	for _, segment := range segments {
		switch node := current.(type) {
		case map[string]any:
			next, ok := node[segment]
			if !ok {
				return nil, false
			}
			current = next
		case []any:
			idx, err := strconv.Atoi(segment)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil, false
			}
			current = node[idx]
		default:
			return nil, false
		}
	}
	return current, true
}

// Set writes value at the dotted path, creating intermediate objects as
// needed. Existing non-object intermediates are replaced; arrays are not
// created (indices become object keys, matching the template wire format).
func Set(root map[string]any, path string, value any) {
	segments := Segments(path)
	if root == nil || len(segments) == 0 {
		return
	}

	current := root
	for _, segment := range segments[:len(segments)-1] {
		next, ok := current[segment].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[segment] = next
		}
		current = next
	}
	current[segments[len(segments)-1]] = value
}

// HasValue reports whether a resolved node counts as present. Nil and
// strings that are empty after trimming are absent; every other value,
// including 0 and false, is present. Translated strings are the only values
// ever checked, so only strings need the blank special case.
func HasValue(v any) bool {
	switch typed := v.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(typed) != ""
	default:
		return true
	}
}

// Segments splits a dotted path, dropping empty segments.
func Segments(path string) []string {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}
	parts := strings.Split(path, ".")
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}
