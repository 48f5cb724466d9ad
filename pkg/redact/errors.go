package redact

import "errors"

var (
	// ErrInvalidPattern is returned when an extra redaction pattern is supplied
	// but is empty after trimming whitespace.
	ErrInvalidPattern = errors.New("redaction pattern must be a non-empty string")
)
