package config

import (
	"fmt"
	"strings"
)

// Validate checks a loaded configuration for values that would break the
// on-disk layout or database lookup. It returns the first problem found.
func Validate(cfg *Config) error {
	if cfg.Collection == "" {
		return fmt.Errorf("collection must not be empty")
	}
	if strings.ContainsAny(cfg.Collection, `/\`) {
		return fmt.Errorf("collection %q must not contain path separators", cfg.Collection)
	}
	if cfg.CompilerURL == "" {
		return fmt.Errorf("compilerUrl must not be empty")
	}
	return nil
}
