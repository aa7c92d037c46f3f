package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"filesorter/internal/config"
	"filesorter/internal/dirlock"
	"filesorter/internal/logging"
	"filesorter/internal/services"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = services.Wrap(services.ErrConfiguration, "config", "load", "Invalid configuration", err)
			return
		}
		if c.logLevelFlag != nil && strings.TrimSpace(*c.logLevelFlag) != "" {
			cfg.Logging.Level = strings.ToLower(strings.TrimSpace(*c.logLevelFlag))
			if err := cfg.Validate(); err != nil {
				c.configErr = services.Wrap(services.ErrConfiguration, "config", "log level flag", "Invalid --log-level", err)
				return
			}
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = services.Wrap(services.ErrConfiguration, "config", "ensure directories", "Cannot create filesorter directories", err)
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.loggerErr = services.Wrap(services.ErrConfiguration, "logging", "init", "Cannot open log output", err)
			return
		}
		c.logger = logger
	})
	return c.logger, c.loggerErr
}

// withDirLock runs fn while holding the run lock for dir.
func (c *commandContext) withDirLock(dir string, fn func() error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return err
	}
	lock, err := dirlock.Acquire(cfg.LockDir(), dir)
	if err != nil {
		return err
	}
	defer releaseDirLock(logger, lock)
	return fn()
}

type heldLock interface {
	Release() error
	Dir() string
	Path() string
}

func releaseDirLock(logger *slog.Logger, lock heldLock) {
	if err := lock.Release(); err != nil {
		logging.WarnWithContext(logger, "failed to release directory lock", "lock_release_failed",
			logging.String("directory", lock.Dir()),
			logging.String("lock", lock.Path()),
			logging.Error(err),
			logging.String(logging.FieldImpact, "the lock file stays until the process exits"),
			logging.String(logging.FieldErrorHint, "remove the lock file if later runs report the directory as locked"),
		)
	}
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
