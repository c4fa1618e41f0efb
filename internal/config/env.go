package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// parseEnv overlays cfg with values from BLOG_* environment variables.
// Unset variables leave the current values in place.
func parseEnv(ctx context.Context, cfg *Config) error {
	if err := envconfig.Process(ctx, cfg); err != nil {
		return fmt.Errorf("process environment: %w", err)
	}
	return nil
}
