package environment

import (
	"strings"

	"github.com/caarlos0/env/v11"
)

// Environment represents the logical deployment environment of the process.
type Environment string

const (
	// Development for development environment.
	Development Environment = "development"
	// Staging for staging environment.
	Staging Environment = "staging"
	// Production for production environment.
	Production Environment = "production"
)

// Parse normalizes a raw environment name, mapping the common short aliases
// onto the canonical constants. Unknown names pass through lowercased so
// custom environments keep working.
func Parse(s string) Environment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "development", "dev":
		return Development
	case "staging", "stage":
		return Staging
	case "production", "prod":
		return Production
	case "":
		return Development
	default:
		return Environment(strings.ToLower(strings.TrimSpace(s)))
	}
}

// IsDevelopment reports whether e is the development environment.
func (e Environment) IsDevelopment() bool {
	return e == Development || e == "dev"
}

// IsStaging reports whether e is the staging environment.
func (e Environment) IsStaging() bool {
	return e == Staging || e == "stage"
}

// IsProduction reports whether e is the production environment.
func (e Environment) IsProduction() bool {
	return e == Production || e == "prod"
}

// String implements fmt.Stringer.
func (e Environment) String() string {
	return string(e)
}

type envConfig struct {
	AppEnv string `env:"APP_ENV" envDefault:"development"`
}

// Current resolves the process environment from the APP_ENV variable,
// defaulting to Development when unset or unparseable.
func Current() Environment {
	var cfg envConfig
	if err := env.Parse(&cfg); err != nil {
		return Development
	}
	return Parse(cfg.AppEnv)
}
