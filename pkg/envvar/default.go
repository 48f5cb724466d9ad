package envvar

// defaultEnv backs the package-level helpers with the process environment.
var defaultEnv = New()

// Coerce runs Env.Coerce against the process environment.
func Coerce(key string, def any) any {
	return defaultEnv.Coerce(key, def)
}

// All runs Env.All against the process environment.
func All() map[string]string {
	return defaultEnv.All()
}

// RequireAll runs Env.RequireAll against the process environment.
func RequireAll(keys ...string) Check {
	return defaultEnv.RequireAll(keys...)
}

// IsSet runs Env.IsSet against the process environment.
func IsSet(key string) bool {
	return defaultEnv.IsSet(key)
}
