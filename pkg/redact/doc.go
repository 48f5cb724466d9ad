// Package redact serializes arbitrary values to indented JSON while masking
// sensitive fields by key-name pattern.
//
// Logs and diagnostics routinely dump configuration or request objects that
// may carry credentials. Masking at serialization time is cheaper and harder
// to forget than masking at every call site, so Serialize walks the whole
// value graph and replaces any field whose key contains "SECRET" or
// "PASSWORD" (plus an optional caller pattern) with the "[REDACTED]" marker.
//
// # Usage
//
//	out, err := redact.Serialize(map[string]any{
//	    "API_SECRET": "sk_live_...",
//	    "normal":     "visible",
//	})
//	// API_SECRET: "[REDACTED]", normal: "visible"
//
//	out, err = redact.Serialize(cfg, "TOKEN") // additionally mask *TOKEN* keys
//
// Matching is a literal, case-sensitive substring test on key names only and
// is evaluated independently at every nesting depth. Value content is never
// inspected.
//
// # Error Handling
//
// A supplied pattern that is blank after trimming fails fast with
// ErrInvalidPattern. Cyclic values are not supported; the encoder's own error
// is returned unwrapped. This is display redaction, not encryption: the
// output is for human eyes, not a reversible or secure storage format.
package redact
