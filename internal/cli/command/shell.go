package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/propkit/internal/cli/output"
	"github.com/yndnr/propkit/internal/cli/repl"
	"github.com/yndnr/propkit/pkg/props"
)

// ShellCommand starts an interactive session over one loaded file.
func ShellCommand() *cli.Command {
	return &cli.Command{
		Name:      "shell",
		Usage:     "Query a properties file interactively",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			schemaFlag(),
			&cli.StringFlag{
				Name:  "history",
				Usage: "history file (default ~/.propkit/history)",
			},
		},
		Action: shellAction,
	}
}

func shellAction(c *cli.Context) error {
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

	ctx := commandContext(c, rt, t)
	store, err := loadStore(ctx, rt, t)
	if err != nil {
		return err
	}

	history := repl.NewHistory(c.String("history"))
	if err := history.Load(); err != nil {
		rt.Logger.Warn("cannot read history", "error", err)
	}

	r := repl.New(repl.WithIO(c.App.Reader, c.App.Writer), repl.WithHistory(history))
	s := &shell{rt: rt, target: t, store: store, repl: r}
	s.register(f)

	fmt.Fprintf(c.App.Writer, "loaded %s: %d keys (type help for commands)\n", t.file, store.Len())
	err = r.Run(ctx)

	if saveErr := history.Save(); saveErr != nil {
		rt.Logger.Warn("cannot write history", "error", saveErr)
	}
	return err
}

// shell holds the store the interactive commands query. reload swaps in a
// freshly loaded store.
type shell struct {
	rt     *Runtime
	target target
	store  *props.Store
	repl   *repl.REPL
}

func (s *shell) register(f output.Formatter) {
	s.repl.Register(repl.Command{
		Name:  "get",
		Usage: "get KEY [string|int|int64|float|bool|char|list] [DELIMITER]",
		Run:   s.get,
	})
	s.repl.Register(repl.Command{
		Name:  "show",
		Usage: "list declared keys, values and sources",
		Run: func(_ context.Context, w io.Writer, args []string) error {
			list, err := listEntries(s.store, len(args) > 0 && args[0] == "--reveal")
			if err != nil {
				return err
			}
			return f.Format(w, list)
		},
	})
	s.repl.Register(repl.Command{
		Name:  "keys",
		Usage: "list keys with a value in the file",
		Run: func(_ context.Context, w io.Writer, _ []string) error {
			_, err := fmt.Fprintln(w, strings.Join(s.store.Keys(), "\n"))
			return err
		},
	})
	s.repl.Register(repl.Command{
		Name:  "reload",
		Usage: "load the file again",
		Run:   s.reload,
	})
	s.addKeyWords()
}

func (s *shell) addKeyWords() {
	for _, key := range s.store.Registry().Keys() {
		s.repl.Completer().Add(key.Name())
	}
}

func (s *shell) get(_ context.Context, w io.Writer, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: get KEY [TYPE] [DELIMITER]")
	}
	key, ok := s.store.Registry().Lookup(args[0])
	if !ok {
		return fmt.Errorf("key %q is not declared", args[0])
	}

	kind, delimiter := "string", props.DefaultDelimiter
	if len(args) > 1 {
		kind = args[1]
	}
	if len(args) > 2 {
		delimiter = args[2]
	}
	return printValue(w, s.store, key, kind, delimiter)
}

// reload keeps the current store when the new load fails.
func (s *shell) reload(ctx context.Context, w io.Writer, _ []string) error {
	store, err := loadStore(ctx, s.rt, s.target)
	if err != nil {
		return err
	}

	changed := store.Fingerprint() != s.store.Fingerprint()
	s.rt.Metrics.ObserveReload(changed)
	s.store = store
	s.addKeyWords()

	if !changed {
		_, err = fmt.Fprintln(w, "unchanged")
		return err
	}
	_, err = fmt.Fprintf(w, "reloaded: %d keys, fingerprint %016x\n", store.Len(), store.Fingerprint())
	return err
}
