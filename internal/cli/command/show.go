package command

import (
	"github.com/urfave/cli/v2"

	"github.com/yndnr/propkit/internal/telemetry/logger"
	"github.com/yndnr/propkit/pkg/props"
)

// Value sources reported by show.
const (
	sourceFile    = "file"
	sourceDefault = "default"
	sourceUnset   = "unset"
)

// Entry is one declared key as reported by show.
type Entry struct {
	Key       string `json:"key" yaml:"key"`
	Value     string `json:"value" yaml:"value"`
	Source    string `json:"source" yaml:"source"`
	Mandatory bool   `json:"mandatory" yaml:"mandatory"`
}

// ShowCommand lists every declared key with its resolved value.
func ShowCommand() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "List all declared keys with resolved values",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			schemaFlag(),
			&cli.BoolFlag{
				Name:  "reveal",
				Usage: "print sensitive values instead of redacting them",
			},
		},
		Action: showAction,
	}
}

func showAction(c *cli.Context) error {
	rt, err := runtimeFrom(c)
	if err != nil {
		return err
	}
	t, err := targetFrom(c, rt)
	if err != nil {
		return err
	}
	f, err := rt.formatter()
	if err != nil {
		return err
	}

	store, err := loadStore(commandContext(c, rt, t), rt, t)
	if err != nil {
		return err
	}

	list, err := listEntries(store, c.Bool("reveal"))
	if err != nil {
		return err
	}
	return f.Format(c.App.Writer, list)
}

// listEntries lists the declared keys in schema order.
func listEntries(store *props.Store, reveal bool) ([]Entry, error) {
	keys := store.Registry().Keys()
	out := make([]Entry, 0, len(keys))
	for _, key := range keys {
		value, err := store.Value(key)
		if err != nil {
			return nil, err
		}

		// An empty stored value falls back to the default.
		stored, has := store.Lookup(key)
		source := sourceUnset
		switch {
		case has && (stored != "" || key.DefaultValue() == ""):
			source = sourceFile
		case key.DefaultValue() != "":
			source = sourceDefault
		}

		if !reveal {
			value = logger.RedactProperty(key.Name(), value)
		}
		out = append(out, Entry{
			Key:       key.Name(),
			Value:     value,
			Source:    source,
			Mandatory: key.Mandatory(),
		})
	}
	return out, nil
}
