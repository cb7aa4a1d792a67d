package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads a config from environ, given as "KEY=value" pairs in the
// form returned by os.Environ. Keys come from the `env` and `envPrefix`
// tags of [StructuredConfig]; absent keys leave their fields zero so a
// later merge can fill them from flags, the JSON file or the defaults.
func parseEnv(environ []string) (*StructuredConfig, error) {
	cfg, err := env.ParseAsWithOptions[StructuredConfig](env.Options{
		Environment: env.ToMap(environ),
	})
	if err != nil {
		return nil, fmt.Errorf("error reading environment: %w", err)
	}
	return &cfg, nil
}
