// Package props loads key/value property files into a typed store.
//
// A property file holds one "key = value" entry per line. Blank lines and
// lines starting with "#" are ignored, and a line without "=" continues the
// value of the entry above it:
//
//	HOME = /home/util
//	DESCRIPTION = This utility is for providing fast and easy
//	APIs to the end user
//	BIN = ${HOME}/bin
//	CONSOLE_FILE = $BIN/console.out
//
// Values may reference other keys as ${NAME} or $NAME. References resolve
// recursively, so CONSOLE_FILE above becomes /home/util/bin/console.out.
// A reference to a name with no value becomes "", and a reference cycle
// fails the load.
//
// Every key in the file must be declared in a Schema:
//
//	var (
//		Home = props.NewKey("HOME", props.Mandatory())
//		Logs = props.NewKey("LOGS", props.Default("${HOME}/logs"))
//	)
//
//	store, err := props.Load("app.properties", props.Schema{Home, Logs})
//	if err != nil {
//		return err
//	}
//	logs := store.Get(Logs)
//	ports, err := props.List[int](store, Ports)
//
// Loading is all-or-nothing: any failure returns an *Error whose code
// matches one of the Err* sentinels under errors.Is. A returned Store is
// read-only and safe for concurrent use.
package props
