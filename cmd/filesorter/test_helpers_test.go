package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"filesorter/internal/config"
	"filesorter/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	target     string
}

func setupCLITestEnv(t *testing.T, opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv("NO_COLOR", "1")

	cfg := testsupport.NewConfig(t, opts...)
	configPath := filepath.Join(base, "filesorter.toml")
	writeTestConfig(t, configPath, cfg)

	target := filepath.Join(base, "target")
	if err := os.MkdirAll(target, 0o755); err != nil {
		t.Fatalf("mkdir target: %v", err)
	}
	return &cliTestEnv{cfg: cfg, configPath: configPath, target: target}
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	var categories []string
	for _, name := range cfg.Organize.Categories {
		categories = append(categories, fmt.Sprintf("%q", name))
	}
	content := fmt.Sprintf(`[paths]
log_dir = %q
state_dir = %q

[organize]
include_executables = %t
categories = [%s]

[logging]
format = "console"
level = %q
`, cfg.Paths.LogDir, cfg.Paths.StateDir, cfg.Organize.IncludeExecutables, strings.Join(categories, ", "), cfg.Logging.Level)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output string, substrings ...string) {
	t.Helper()
	for _, s := range substrings {
		if !strings.Contains(output, s) {
			t.Fatalf("expected output to contain %q\noutput:\n%s", s, output)
		}
	}
}

func (e *cliTestEnv) write(t *testing.T, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(e.target, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}
