package config

import (
	"fmt"

	env "github.com/Netflix/go-env"
)

// parseEnv overlays PEERLINK_* environment variables. Variables that are not
// set leave the current value untouched.
func parseEnv(cfg *Config) error {
	if _, err := env.UnmarshalFromEnviron(cfg); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}
	return nil
}
