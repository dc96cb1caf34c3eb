package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if c.Paths.CatalogPath == "" {
		return errors.New("paths.catalog_path must be set")
	}
	return nil
}

func (c *Config) validateOutput() error {
	switch c.Output.BOM {
	case "preserve", "always", "never":
		return nil
	}
	return fmt.Errorf("output.bom must be preserve, always, or never, got %q", c.Output.BOM)
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	}
	return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
}
