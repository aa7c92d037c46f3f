package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"filesorter/internal/config"
	"filesorter/internal/services"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigValidateCommand(ctx))
	configCmd.AddCommand(newConfigInitCommand())

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create a sample configuration file",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return fmt.Errorf("determine default config path: %w", err)
				}
				target = defaultPath
			} else {
				expanded, err := config.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve config path: %w", err)
				}
				target = expanded
			}

			dir := filepath.Dir(target)
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create config directory %q: %w", dir, err)
			}

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return services.Wrap(services.ErrValidation, "config", "init",
						fmt.Sprintf("config file already exists at %s (use --overwrite to replace it)", target), nil)
				} else if !os.IsNotExist(err) {
					return fmt.Errorf("check config path: %w", err)
				}
			}

			if err := config.CreateSample(target); err != nil {
				return fmt.Errorf("create sample config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample configuration to %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing configuration if present")
	return cmd
}

func newConfigValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:         "validate",
		Short:       "Validate configuration file",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if ctx.configFlag != nil {
				path = strings.TrimSpace(*ctx.configFlag)
			}
			cfg, resolved, exists, err := config.Load(path)
			if err != nil {
				return services.Wrap(services.ErrConfiguration, "config", "validate", "Invalid configuration", err)
			}
			if err := cfg.EnsureDirectories(); err != nil {
				return fmt.Errorf("ensure directories: %w", err)
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			fmt.Fprintln(out, renderStatusLine("Config path", statusInfo, resolved, colorize))
			if !exists {
				fmt.Fprintln(out, renderStatusLine("Config file", statusWarn, "not found; defaults were used", colorize))
			}
			fmt.Fprintln(out, renderStatusLine("Log directory", statusInfo, cfg.Paths.LogDir, colorize))
			fmt.Fprintln(out, renderStatusLine("State directory", statusInfo, cfg.Paths.StateDir, colorize))
			fmt.Fprintln(out, renderStatusLine("Executables", statusInfo, yesNo(cfg.Organize.IncludeExecutables), colorize))
			fmt.Fprintln(out, renderStatusLine("Configuration", statusOK, "valid", colorize))
			return nil
		},
	}
}
