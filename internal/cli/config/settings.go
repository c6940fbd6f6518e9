package config

import "time"

// Settings is the configuration for the propkit CLI.
type Settings struct {
	Log     LogSection     `koanf:"log"`
	Output  string         `koanf:"output"` // table, json, yaml
	Schema  string         `koanf:"schema"` // default schema file for commands
	Env     EnvSection     `koanf:"env"`
	Metrics MetricsSection `koanf:"metrics"`
	Watch   WatchSection   `koanf:"watch"`
}

// LogSection configures diagnostics written to stderr.
type LogSection struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// EnvSection controls how unresolved references are treated.
type EnvSection struct {
	// Fallback lets references to undeclared names read the process environment.
	Fallback bool `koanf:"fallback"`
}

// MetricsSection configures metric export.
type MetricsSection struct {
	// Textfile is written after each command when set.
	Textfile string `koanf:"textfile"`
}

// WatchSection configures the watch command.
type WatchSection struct {
	// Interval is the minimum gap between two reloads.
	Interval time.Duration `koanf:"interval"`
}

// Default returns the default settings.
func Default() *Settings {
	return &Settings{
		Log: LogSection{
			Level:  "warn",
			Format: "text",
		},
		Output: "table",
		Watch: WatchSection{
			Interval: 500 * time.Millisecond,
		},
	}
}
