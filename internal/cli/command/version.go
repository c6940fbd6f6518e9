package command

import (
	"github.com/urfave/cli/v2"

	"github.com/yndnr/propkit/internal/cli/output"
	"github.com/yndnr/propkit/internal/infra/buildinfo"
)

type versionInfo buildinfo.Info

// Table implements output.Tabler.
func (v versionInfo) Table() *output.Table {
	t := &output.Table{Headers: []string{"FIELD", "VALUE"}}
	t.AddRow("version", v.Version)
	t.AddRow("commit", v.Commit)
	t.AddRow("built", v.BuildTime)
	t.AddRow("go", v.GoVersion)
	return t
}

// VersionCommand prints build information.
func VersionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Show build information",
		Action: func(c *cli.Context) error {
			rt, err := runtimeFrom(c)
			if err != nil {
				return err
			}
			f, err := rt.formatter()
			if err != nil {
				return err
			}
			return f.Format(c.App.Writer, versionInfo(buildinfo.Get()))
		},
	}
}
