// Package envvar converts raw environment-variable text into typed values
// with a fixed, predictable branch order and a strict no-throw contract.
//
// Configuration arrives as strings; call sites want native types without
// per-site parsing and without startup crashes on malformed input. Coerce
// answers both: it tries JSON structures, booleans and numbers in that order
// and falls back to the raw string, while any missing, empty or undecodable
// value degrades to a caller-supplied default.
//
// # Usage
//
//	env := envvar.New() // process environment
//
//	port := env.Coerce("PORT", 3000.0)        // float64(8080) for PORT=8080
//	debug := env.Coerce("DEBUG", false)       // true for DEBUG=true
//	opts := env.Coerce("OPTS", nil)           // map[string]any for OPTS={"x":1}
//	tags := envvar.ToSlice(env.Coerce("TAGS", "")) // explicit list semantics
//
// Package-level Coerce, All, RequireAll and IsSet operate on a shared
// process-environment instance for convenience.
//
// Lookups go through the Source interface; inject MapSource (or any custom
// implementation) for deterministic tests:
//
//	env := envvar.New(envvar.WithSource(envvar.MapSource{"PORT": "8080"}))
//
// # Coercion order
//
//  1. empty key, absent key or empty value: return the default unchanged
//  2. value delimited by {} or []: JSON decode; on failure log and return the
//     default (no other branch is tried)
//  3. case-insensitive "true" / "false": boolean
//  4. whole string parses as a number: float64
//  5. otherwise: the raw string
//
// Note that "0" coerces to the number 0, not to the default, and that the
// numeric check is strconv.ParseFloat, which accepts "Inf"-style spellings
// but rejects whitespace-only input.
//
// # Error Handling
//
// No function in this package returns an error or panics on bad input. JSON
// decode failures are reported to the configured slog sink and converted into
// the default value.
package envvar
