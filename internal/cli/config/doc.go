// Package config defines propkit's own settings.
//
//   - settings.go: the Settings struct and its defaults
//   - verify.go: validation of user supplied values
//   - loader.go: loading from ~/.propkit/config.yaml, PROPKIT_* and flags
package config
