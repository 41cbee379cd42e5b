package config

import (
	"errors"
	"fmt"

	"sortd/internal/extmap"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateOrganize(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateOrganize() error {
	if c.Organize.RenameAttempts < 1 {
		return errors.New("organize.rename_attempts must be positive")
	}
	if c.Organize.HashChunkBytes < 1 {
		return errors.New("organize.hash_chunk_bytes must be positive")
	}
	if c.Organize.DefaultCategory != "" {
		if err := extmap.ValidateCategory(c.Organize.DefaultCategory); err != nil {
			return fmt.Errorf("organize.default_category: %w", err)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
