package environment

import (
	"context"
	"log/slog"
)

// LoggerExtractor returns a context extractor that surfaces the environment
// as an "env" attribute on every log record whose context carries one.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if env := FromContext(ctx); env != "" {
			return slog.String("env", env.String()), true
		}
		return slog.Attr{}, false
	}
}
