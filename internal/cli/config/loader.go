package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/yndnr/propkit/internal/infra/confloader"
)

// DefaultConfigPath returns the default settings file path.
func DefaultConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".propkit", "config.yaml")
}

// Load builds the settings from defaults, the settings file, PROPKIT_*
// variables and flags, in increasing priority, then verifies them.
//
// An empty path means DefaultConfigPath, which may be absent. A path the
// user named explicitly must exist.
func Load(path string, flags map[string]any) (*Settings, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
	}

	if _, err := os.Stat(path); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("settings file: %w", err)
		}
		path = ""
	}

	s := Default()
	loader := confloader.NewLoader(
		confloader.WithConfigFile(path),
		confloader.WithOverrides(flags),
	)
	if err := loader.Load(s); err != nil {
		return nil, err
	}

	if err := Verify(s); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return s, nil
}
