package config

import (
	"fmt"
	"strings"

	"filesorter/internal/classify"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}
	return c.validateOrganize()
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (use console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q (use debug, info, warn, or error)", c.Logging.Level)
	}
	return nil
}

func (c *Config) validateOrganize() error {
	table := classify.DefaultTable(c.Organize.IncludeExecutables)
	for _, name := range c.Organize.Categories {
		if !table.Has(name) {
			if name == classify.Executables {
				return fmt.Errorf("organize.categories: %q requires organize.include_executables = true", name)
			}
			return fmt.Errorf("organize.categories: unknown category %q (valid: %s)", name, strings.Join(table.Names(), ", "))
		}
	}
	return nil
}
