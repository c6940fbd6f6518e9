package command

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/propkit/pkg/props"
)

var valueTypes = []string{"string", "int", "int64", "float", "bool", "char", "chars", "list"}

// GetCommand prints one resolved value, optionally converted.
func GetCommand() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "Print the resolved value of one key",
		ArgsUsage: "FILE KEY",
		Flags: []cli.Flag{
			schemaFlag(),
			&cli.StringFlag{
				Name:    "type",
				Aliases: []string{"t"},
				Usage:   "convert the value: string, int, int64, float, bool, char, chars, list",
				Value:   "string",
			},
			&cli.StringFlag{
				Name:    "delimiter",
				Aliases: []string{"d"},
				Usage:   "list delimiter for --type list and chars",
				Value:   props.DefaultDelimiter,
			},
		},
		Action: getAction,
	}
}

func getAction(c *cli.Context) error {
	rt, err := runtimeFrom(c)
	if err != nil {
		return err
	}
	t, err := targetFrom(c, rt)
	if err != nil {
		return err
	}
	name := c.Args().Get(1)
	if name == "" {
		return errors.New("missing KEY argument")
	}

	store, err := loadStore(commandContext(c, rt, t), rt, t)
	if err != nil {
		return err
	}

	key, ok := store.Registry().Lookup(name)
	if !ok {
		return fmt.Errorf("key %q is not declared in %s", name, t.schema)
	}

	return printValue(c.App.Writer, store, key, c.String("type"), c.String("delimiter"))
}

// printValue writes the value of key converted to kind. Lists print one
// element per line.
func printValue(w io.Writer, store *props.Store, key props.Key, kind, delimiter string) error {
	var (
		text string
		err  error
	)

	switch kind {
	case "string":
		text, err = store.Value(key)
	case "int":
		var v int
		v, err = store.Int(key)
		text = strconv.Itoa(v)
	case "int64":
		var v int64
		v, err = store.Int64(key)
		text = strconv.FormatInt(v, 10)
	case "float":
		var v float64
		v, err = store.Float64(key)
		text = strconv.FormatFloat(v, 'g', -1, 64)
	case "bool":
		var v bool
		v, err = store.Bool(key)
		text = strconv.FormatBool(v)
	case "char":
		var v rune
		v, err = store.Char(key)
		text = string(v)
	case "chars":
		var chars []rune
		if chars, err = store.Chars(key, delimiter); err != nil {
			return err
		}
		for _, r := range chars {
			if _, err := fmt.Fprintln(w, string(r)); err != nil {
				return err
			}
		}
		return nil
	case "list":
		var items []string
		if items, err = props.List[string](store, key, delimiter); err != nil {
			return err
		}
		for _, item := range items {
			if _, err := fmt.Fprintln(w, item); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown --type %q (want one of %v)", kind, valueTypes)
	}

	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, text)
	return err
}
