// Package environment identifies the logical deployment environment of the
// process and propagates it through context.Context, HTTP requests and
// structured logs.
//
// The typed string Environment comes with the canonical constants
// Development, Staging and Production. Parse maps the common short aliases
// ("dev", "stage", "prod") onto them, and Current resolves the running
// environment from the APP_ENV variable with a development default.
//
// # Usage
//
//	env := environment.Current()
//	if env.IsProduction() {
//	    // production-specific behaviour
//	}
//
// Attach the environment to an HTTP server:
//
//	handler := environment.Middleware(env)(mux)
//
// Query it from any downstream context:
//
//	if environment.IsDevelopment(ctx) {
//	    // verbose diagnostics
//	}
//
// LoggerExtractor plugs into the logger package's context extractors so every
// log record carries an "env" attribute.
//
// # Error Handling
//
// All helpers are allocation-free and never return errors; missing values
// resolve to the zero value ("") or the development default.
package environment
