package envvar

import (
	"fmt"
	"log/slog"
	"reflect"
	"strings"
)

// ToSlice normalizes an arbitrary value into a slice. It is a total function:
//
//   - nil yields an empty slice
//   - a slice or array is returned element for element
//   - a string is trimmed and, when it contains commas, split on them with
//     each segment trimmed and empty segments dropped; a trimmed empty string
//     yields an empty slice, anything else a single-element slice
//   - every other value is wrapped in a single-element slice
//
// Comma splitting lives here and only here: Coerce never splits strings, so
// callers opt into list semantics explicitly.
func ToSlice(v any) []any {
	if v == nil {
		return []any{}
	}

	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out
	case reflect.String:
		return splitList(rv.String())
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		// Unreachable for configuration data; kept so the function stays total.
		slog.Default().Warn("unprocessable value in slice normalization",
			slog.String("type", rv.Kind().String()),
		)
		return []any{fmt.Sprintf("[Unprocessable object: %s]", rv.Kind())}
	default:
		return []any{v}
	}
}

func splitList(s string) []any {
	s = strings.TrimSpace(s)
	if s == "" {
		return []any{}
	}
	if !strings.Contains(s, ",") {
		return []any{s}
	}
	parts := strings.Split(s, ",")
	out := make([]any, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ToStrings is ToSlice for the common all-string case, rendering non-string
// elements with fmt.Sprint.
func ToStrings(v any) []string {
	elems := ToSlice(v)
	out := make([]string, len(elems))
	for i, e := range elems {
		if s, ok := e.(string); ok {
			out[i] = s
			continue
		}
		out[i] = fmt.Sprint(e)
	}
	return out
}
