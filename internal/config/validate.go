package config

import (
	"fmt"
	"strings"
)

// Validate checks the configuration for values the CLI cannot work with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Catalog.Path) == "" {
		return fmt.Errorf("config: catalog path must not be empty")
	}
	if c.Catalog.InitialCapacity < 1 {
		return fmt.Errorf("config: initial_capacity must be at least 1, got %d", c.Catalog.InitialCapacity)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("config: logging format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: logging level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
