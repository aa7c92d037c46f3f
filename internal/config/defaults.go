package config

const (
	defaultConfigPath = "~/.config/filesorter/config.toml"
	defaultProjectCfg = "filesorter.toml"
	defaultLogDir     = "~/.local/share/filesorter/logs"
	defaultStateDir   = "~/.local/state/filesorter"
	defaultLogFormat  = "console"
	defaultLogLevel   = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir:   defaultLogDir,
			StateDir: defaultStateDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
