// Package main provides the entry point for propkit.
//
// The CLI reads a properties file against a key schema and can:
//
//   - check that it parses, validates and resolves
//   - get one value, converted to int, float, bool, char or list
//   - show every declared key with its source
//   - watch the file and schema and report when resolved values change
//
// Usage:
//
//	propkit check --schema keys.yaml app.properties
//	propkit -o json show --schema keys.hcl app.properties
//	propkit get --schema keys.yaml --type list -d '|' app.properties PORTS
//	propkit watch --schema keys.yaml --interval 1s app.properties
//
// Settings are read from ~/.propkit/config.yaml, then PROPKIT_* environment
// variables, then global flags.
package main
