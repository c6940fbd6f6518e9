package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/propkit/internal/schema"
	"github.com/yndnr/propkit/internal/telemetry/logger"
	"github.com/yndnr/propkit/pkg/props"
)

// target is the properties file and schema a command operates on.
type target struct {
	file   string
	schema string
}

func schemaFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "schema",
		Aliases: []string{"s"},
		Usage:   "schema file (.yaml, .yml, .hcl, .json, .jsonc)",
	}
}

// targetFrom reads FILE from the first argument and the schema from
// --schema or the settings.
func targetFrom(c *cli.Context, rt *Runtime) (target, error) {
	t := target{
		file:   c.Args().First(),
		schema: c.String("schema"),
	}
	if t.file == "" {
		return t, errors.New("missing properties FILE argument")
	}
	if t.schema == "" {
		t.schema = rt.Settings.Schema
	}
	if t.schema == "" {
		return t, errors.New("no schema: pass --schema or set schema in the settings file")
	}
	return t, nil
}

// commandContext tags the context with the command name and file for logging.
func commandContext(c *cli.Context, rt *Runtime, t target) context.Context {
	ctx := logger.WithLogger(c.Context, rt.Logger)
	ctx = logger.WithCommand(ctx, c.Command.Name)
	return logger.WithFile(ctx, t.file)
}

// loadStore reads the schema and loads the properties file against it.
func loadStore(ctx context.Context, rt *Runtime, t target) (*props.Store, error) {
	keys, err := schema.Load(ctx, t.schema)
	if err != nil {
		return nil, err
	}

	opts := []props.Option{
		props.WithLogger(logger.L(ctx).Slog()),
		props.WithRedactor(logger.RedactProperty),
		props.WithObserver(rt.Metrics),
	}
	if rt.Settings.Env.Fallback {
		opts = append(opts, props.WithEnvFallback())
	}

	loader, err := props.NewLoader(keys, opts...)
	if err != nil {
		return nil, err
	}
	store, err := loader.Load(ctx, t.file)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", t.file, err)
	}
	return store, nil
}
