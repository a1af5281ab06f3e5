// Package config loads service configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces every environment variable read by the site.
const EnvPrefix = "GREATBEANS_"

// ParseEnv loads configuration from prefixed environment variables.
func ParseEnv(target any) error {
	return parse(target, env.Options{Prefix: EnvPrefix})
}

func parse(target any, opts env.Options) error {
	if target == nil {
		return fmt.Errorf("parse env: target is required")
	}
	if err := env.ParseWithOptions(target, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
