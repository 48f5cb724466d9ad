package envvar

import (
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"
)

// Env coerces raw environment values into typed ones. The zero value is not
// usable; construct instances with New.
type Env struct {
	src Source
	log *slog.Logger
}

// Option configures an Env instance.
type Option func(*Env)

// WithSource replaces the process-environment source, enabling deterministic
// lookups in tests without touching process globals.
func WithSource(src Source) Option {
	return func(e *Env) {
		if src != nil {
			e.src = src
		}
	}
}

// WithLogger sets the sink for decode-failure diagnostics.
// Nil loggers are ignored to keep the no-throw contract intact.
func WithLogger(log *slog.Logger) Option {
	return func(e *Env) {
		if log != nil {
			e.log = log
		}
	}
}

// New creates an Env backed by the process environment unless overridden.
func New(opts ...Option) *Env {
	e := &Env{src: OSSource{}}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// logger resolves the diagnostic sink lazily so instances without an explicit
// logger follow the process default, including later SetAsDefault calls.
func (e *Env) logger() *slog.Logger {
	if e.log != nil {
		return e.log
	}
	return slog.Default()
}

// Coerce looks up key and converts its raw string value into a typed one,
// trying the branches in fixed order: JSON structure for bracket-delimited
// input, boolean for case-insensitive "true"/"false", float64 when the whole
// string parses as a number, otherwise the raw string unchanged.
//
// A missing key, an empty key, an empty value, or a failed JSON decode all
// yield def verbatim. Coerce never panics and never returns an error; decode
// failures are logged and degrade to the default.
//
// The numeric branch is strconv.ParseFloat over the full string: it accepts
// "Inf", "Infinity" and "NaN" spellings with an optional sign and rejects
// whitespace-only or partially numeric input.
func (e *Env) Coerce(key string, def any) any {
	if key == "" {
		return def
	}

	raw, ok := e.src.Lookup(key)
	if !ok || raw == "" {
		return def
	}

	if looksLikeJSON(raw) {
		var decoded any
		if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
			e.logger().Warn("failed to decode environment value",
				slog.String("key", key),
				slog.Any("error", err),
			)
			return def
		}
		return decoded
	}

	if strings.EqualFold(raw, "true") {
		return true
	}
	if strings.EqualFold(raw, "false") {
		return false
	}

	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return n
	}

	return raw
}

// looksLikeJSON reports whether raw is bracket-delimited the way a JSON object
// or array is. No trimming: leading or trailing whitespace disqualifies it.
func looksLikeJSON(raw string) bool {
	if len(raw) < 2 {
		return false
	}
	first, last := raw[0], raw[len(raw)-1]
	return (first == '{' && last == '}') || (first == '[' && last == ']')
}

// All returns a shallow copy of the whole configuration source, unfiltered.
func (e *Env) All() map[string]string {
	return e.src.All()
}

// Check reports the outcome of a RequireAll validation.
type Check struct {
	Valid   bool
	Missing []string
}

// RequireAll reports every key that is absent or empty in the source,
// preserving the input order in Missing. Valid is true iff nothing is missing.
func (e *Env) RequireAll(keys ...string) Check {
	missing := make([]string, 0)
	for _, key := range keys {
		if v, ok := e.src.Lookup(key); !ok || v == "" {
			missing = append(missing, key)
		}
	}
	return Check{Valid: len(missing) == 0, Missing: missing}
}

// IsSet reports whether key has a non-empty value in the source.
func (e *Env) IsSet(key string) bool {
	v, ok := e.src.Lookup(key)
	return ok && v != ""
}
