package redact

import (
	"encoding/json"
	"strings"
)

// Marker replaces every value whose key matches a redaction pattern.
const Marker = "[REDACTED]"

// builtin patterns are matched case-sensitively as substrings of key names.
var builtin = []string{"SECRET", "PASSWORD"}

// Serialize renders v as 2-space-indented JSON with sensitive fields masked.
//
// At every nesting level, any object key containing "SECRET", "PASSWORD" or
// one of the supplied extra patterns (literal, case-sensitive substring match)
// has its value replaced by Marker, whatever the value's type or depth.
// Matching inspects key names only, never value content. Keys that do not
// match are serialized with their values recursively processed under the same
// rule.
//
// Extra patterns must be non-empty after trimming; a blank pattern returns
// ErrInvalidPattern before any serialization happens. Self-referential values
// are unsupported: the encoder's cycle error is returned as-is.
func Serialize(v any, extraPattern ...string) (string, error) {
	patterns := make([]string, 0, len(builtin)+len(extraPattern))
	patterns = append(patterns, builtin...)
	for _, p := range extraPattern {
		if strings.TrimSpace(p) == "" {
			return "", ErrInvalidPattern
		}
		patterns = append(patterns, p)
	}

	// Round-trip through the encoder first so structs, maps and slices all
	// collapse to the generic graph and keys carry their JSON-visible names.
	// Fields the encoder drops (omitted zero values, unexported) disappear
	// here; explicit nulls survive as nil.
	raw, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	var graph any
	if err := json.Unmarshal(raw, &graph); err != nil {
		return "", err
	}

	out, err := json.MarshalIndent(mask(graph, patterns), "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func mask(v any, patterns []string) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for key, inner := range val {
			if matches(key, patterns) {
				out[key] = Marker
				continue
			}
			out[key] = mask(inner, patterns)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, inner := range val {
			out[i] = mask(inner, patterns)
		}
		return out
	default:
		return v
	}
}

func matches(key string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(key, p) {
			return true
		}
	}
	return false
}
