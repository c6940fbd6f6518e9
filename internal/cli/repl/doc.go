// Package repl provides the interactive loop behind `propkit shell`.
//
//   - repl.go: read loop and dispatch to registered commands
//   - completer.go: prefix completion over command names and words such as
//     declared keys
//   - history.go: bounded line history persisted to ~/.propkit/history
//
// The loop itself knows nothing about properties; the shell command
// registers get, show, keys and reload against a loaded store.
package repl
