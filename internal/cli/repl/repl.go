package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

// DefaultPrompt is printed before each line is read.
const DefaultPrompt = "propkit> "

// ErrUnknownCommand is returned by Execute for a name with no handler.
var ErrUnknownCommand = errors.New("unknown command")

// Command is one REPL command. Run receives the words after the name.
type Command struct {
	Name  string
	Usage string
	Run   func(ctx context.Context, w io.Writer, args []string) error
}

// REPL represents the Read-Eval-Print Loop.
type REPL struct {
	input     io.Reader
	output    io.Writer
	prompt    string
	commands  map[string]Command
	completer *Completer
	history   *History
}

// Option configures a REPL.
type Option func(*REPL)

// WithIO sets the input and output streams.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(r *REPL) {
		r.input = in
		r.output = out
	}
}

// WithPrompt replaces DefaultPrompt.
func WithPrompt(prompt string) Option {
	return func(r *REPL) { r.prompt = prompt }
}

// WithHistory records every line into h.
func WithHistory(h *History) Option {
	return func(r *REPL) { r.history = h }
}

// New creates a REPL reading stdin and writing stdout. The built-in
// commands help, complete, exit and quit are always present.
func New(opts ...Option) *REPL {
	r := &REPL{
		input:     os.Stdin,
		output:    os.Stdout,
		prompt:    DefaultPrompt,
		commands:  make(map[string]Command),
		completer: NewCompleter("help", "complete", "exit", "quit"),
		history:   NewHistory(""),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds cmd, replacing any command with the same name.
func (r *REPL) Register(cmd Command) {
	r.commands[cmd.Name] = cmd
	r.completer.Add(cmd.Name)
}

// Completer returns the completer so callers can add domain words.
func (r *REPL) Completer() *Completer {
	return r.completer
}

// Run reads lines until exit, quit, EOF or ctx is done. Command errors are
// printed and the loop continues.
func (r *REPL) Run(ctx context.Context) error {
	reader := bufio.NewReader(r.input)

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		fmt.Fprint(r.output, r.prompt)

		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		eof := errors.Is(err, io.EOF)

		line = strings.TrimSpace(line)
		if line == "" {
			if eof {
				fmt.Fprintln(r.output)
				return nil
			}
			continue
		}

		r.history.Add(line)

		if line == "exit" || line == "quit" {
			return nil
		}

		if err := r.Execute(ctx, line); err != nil {
			fmt.Fprintf(r.output, "Error: %v\n", err)
		}
		if eof {
			return nil
		}
	}
}

// Execute runs a single line.
func (r *REPL) Execute(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	name, args := fields[0], fields[1:]

	switch name {
	case "help":
		r.help()
		return nil
	case "complete":
		prefix := strings.TrimSpace(strings.TrimPrefix(line, "complete"))
		for _, s := range r.completer.Complete(prefix) {
			fmt.Fprintln(r.output, s)
		}
		return nil
	}

	cmd, ok := r.commands[name]
	if !ok {
		if suggestions := r.completer.Complete(name[:1]); len(suggestions) > 0 {
			return fmt.Errorf("%w %q (try: %s)", ErrUnknownCommand, name, strings.Join(suggestions, ", "))
		}
		return fmt.Errorf("%w %q", ErrUnknownCommand, name)
	}
	return cmd.Run(ctx, r.output, args)
}

func (r *REPL) help() {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		fmt.Fprintf(r.output, "  %-10s %s\n", name, r.commands[name].Usage)
	}
	fmt.Fprintf(r.output, "  %-10s %s\n", "complete", "list completions for a prefix")
	fmt.Fprintf(r.output, "  %-10s %s\n", "exit", "leave the shell")
}
