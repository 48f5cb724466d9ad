package envvar

import "os"

// Source is a read-only key/value provider backing environment lookups.
// Implementations report a value and whether the key is present at all;
// they must never mutate the underlying store.
type Source interface {
	Lookup(key string) (string, bool)
	All() map[string]string
}

// OSSource reads from the process environment table.
type OSSource struct{}

// Lookup returns the environment variable named by key.
func (OSSource) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// All returns a snapshot of the whole process environment.
func (OSSource) All() map[string]string {
	environ := os.Environ()
	m := make(map[string]string, len(environ))
	for _, kv := range environ {
		for i := 0; i < len(kv); i++ {
			if kv[i] == '=' {
				m[kv[:i]] = kv[i+1:]
				break
			}
		}
	}
	return m
}

// MapSource is a map-backed Source for tests and embedded harnesses.
type MapSource map[string]string

// Lookup implements Source.
func (s MapSource) Lookup(key string) (string, bool) {
	v, ok := s[key]
	return v, ok
}

// All implements Source.
func (s MapSource) All() map[string]string {
	m := make(map[string]string, len(s))
	for k, v := range s {
		m[k] = v
	}
	return m
}
