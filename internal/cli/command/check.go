package command

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/propkit/internal/cli/output"
)

// CheckResult summarizes a successful load.
type CheckResult struct {
	File        string `json:"file" yaml:"file"`
	Schema      string `json:"schema" yaml:"schema"`
	Declared    int    `json:"declared" yaml:"declared"`
	Stored      int    `json:"stored" yaml:"stored"`
	Fingerprint string `json:"fingerprint" yaml:"fingerprint"`
}

// Table implements output.Tabler.
func (r CheckResult) Table() *output.Table {
	t := &output.Table{Headers: []string{"FIELD", "VALUE"}}
	t.AddRow("file", r.File)
	t.AddRow("schema", r.Schema)
	t.AddRow("declared", strconv.Itoa(r.Declared))
	t.AddRow("stored", strconv.Itoa(r.Stored))
	t.AddRow("fingerprint", r.Fingerprint)
	return t
}

// CheckCommand validates a properties file against a schema.
func CheckCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Parse, validate and resolve a properties file",
		ArgsUsage: "FILE",
		Flags:     []cli.Flag{schemaFlag()},
		Action:    checkAction,
	}
}

func checkAction(c *cli.Context) error {
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

	return f.Format(c.App.Writer, CheckResult{
		File:        t.file,
		Schema:      t.schema,
		Declared:    store.Registry().Len(),
		Stored:      store.Len(),
		Fingerprint: fmt.Sprintf("%016x", store.Fingerprint()),
	})
}
