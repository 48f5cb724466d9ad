// Package logger builds configured slog.Logger instances for the library's
// diagnostic output.
//
// It is the sink the coercion engine and the memory advisory write their
// warnings to: JSON at info level by default, switchable to human-readable
// text for development through WithEnvironment.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Current(), "my-service"),
//	)
//	logger.SetAsDefault(log)
//
// Context extractors inject request-scoped attributes at log time:
//
//	log := logger.New(
//	    logger.WithContextExtractors(environment.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "ready") // carries env=... when the context does
package logger
