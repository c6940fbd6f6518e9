// Package command defines the propkit CLI using urfave/cli/v2.
//
//   - root.go: the App, global flags and the Before/After hooks
//   - load.go: schema and properties loading shared by the commands
//   - check.go, get.go, show.go: one-shot commands over a properties file
//   - watch.go: reload on change until interrupted
//   - shell.go: interactive get/show/keys/reload over one loaded file
//   - version.go: build information
//
// Commands write results to App.Writer and diagnostics through the logger,
// which writes to App.ErrWriter.
package command
