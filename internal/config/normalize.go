package config

import (
	"fmt"
	"os"
	"strings"
)

const (
	envLogLevel  = "FILESORTER_LOG_LEVEL"
	envLogFormat = "FILESORTER_LOG_FORMAT"
	envStateDir  = "FILESORTER_STATE_DIR"
)

func (c *Config) normalize() error {
	c.applyEnv()
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeOrganize()
	c.normalizeLogging()
	return nil
}

func (c *Config) applyEnv() {
	if value, ok := os.LookupEnv(envLogLevel); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	if value, ok := os.LookupEnv(envLogFormat); ok && strings.TrimSpace(value) != "" {
		c.Logging.Format = value
	}
	if value, ok := os.LookupEnv(envStateDir); ok && strings.TrimSpace(value) != "" {
		c.Paths.StateDir = value
	}
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		c.Paths.StateDir = defaultStateDir
	}
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if c.Paths.StateDir, err = expandPath(strings.TrimSpace(c.Paths.StateDir)); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeOrganize() {
	seen := make(map[string]struct{}, len(c.Organize.Categories))
	cleaned := make([]string, 0, len(c.Organize.Categories))
	for _, name := range c.Organize.Categories {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		cleaned = append(cleaned, name)
	}
	c.Organize.Categories = cleaned
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
