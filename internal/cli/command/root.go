package command

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/propkit/internal/cli/config"
	"github.com/yndnr/propkit/internal/cli/output"
	"github.com/yndnr/propkit/internal/infra/buildinfo"
	"github.com/yndnr/propkit/internal/telemetry/logger"
	"github.com/yndnr/propkit/internal/telemetry/metric"
)

const runtimeKey = "runtime"

// Runtime is the state shared by all commands once settings are loaded.
type Runtime struct {
	Settings *config.Settings
	Logger   logger.Logger
	Metrics  *metric.Registry
}

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:                 "propkit",
		Usage:                "Validate, query and watch schema-checked properties files",
		Version:              buildinfo.String(),
		Flags:                globalFlags(),
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			CheckCommand(),
			GetCommand(),
			ShowCommand(),
			WatchCommand(),
			ShellCommand(),
			VersionCommand(),
		},
		Before: before,
		After:  after,
	}
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "settings file (default ~/.propkit/config.yaml)",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "log level: debug, info, warn, error",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "log format: text, json",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format: table, json, yaml",
		},
		&cli.BoolFlag{
			Name:  "env-fallback",
			Usage: "resolve references to undeclared names from the environment",
		},
		&cli.StringFlag{
			Name:  "metrics-textfile",
			Usage: "write Prometheus metrics to this .prom file on exit",
		},
	}
}

// flagOverrides maps the global flags the user set to settings keys.
func flagOverrides(c *cli.Context) map[string]any {
	names := map[string]string{
		"log-level":        "log.level",
		"log-format":       "log.format",
		"output":           "output",
		"env-fallback":     "env.fallback",
		"metrics-textfile": "metrics.textfile",
	}

	overrides := make(map[string]any)
	for flag, key := range names {
		if c.IsSet(flag) {
			overrides[key] = c.Value(flag)
		}
	}
	return overrides
}

func before(c *cli.Context) error {
	settings, err := config.Load(c.String("config"), flagOverrides(c))
	if err != nil {
		return err
	}

	l, err := logger.New(logger.Config{
		Level:  settings.Log.Level,
		Format: settings.Log.Format,
		Output: c.App.ErrWriter,
	})
	if err != nil {
		return err
	}
	logger.SetDefault(l)

	if c.App.Metadata == nil {
		c.App.Metadata = make(map[string]any)
	}
	c.App.Metadata[runtimeKey] = &Runtime{
		Settings: settings,
		Logger:   l,
		Metrics:  metric.NewRegistry(),
	}
	return nil
}

func after(c *cli.Context) error {
	rt, ok := c.App.Metadata[runtimeKey].(*Runtime)
	if !ok || rt.Settings.Metrics.Textfile == "" {
		return nil
	}
	if err := rt.Metrics.WriteTextfile(rt.Settings.Metrics.Textfile); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	rt.Logger.Debug("metrics written", "path", rt.Settings.Metrics.Textfile)
	return nil
}

// runtimeFrom returns the Runtime installed by the Before hook.
func runtimeFrom(c *cli.Context) (*Runtime, error) {
	if rt, ok := c.App.Metadata[runtimeKey].(*Runtime); ok {
		return rt, nil
	}
	return nil, errors.New("settings not loaded")
}

// formatter returns the formatter selected by --output or the settings.
func (rt *Runtime) formatter() (output.Formatter, error) {
	format, err := output.ParseFormat(rt.Settings.Output)
	if err != nil {
		return nil, err
	}
	return output.NewFormatter(format), nil
}
