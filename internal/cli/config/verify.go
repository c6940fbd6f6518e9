package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

var (
	validOutputs    = []string{"table", "json", "yaml"}
	validLogLevels  = []string{"debug", "info", "warn", "warning", "error"}
	validLogFormats = []string{"text", "console", "json"}
)

// Verify validates the settings.
func Verify(s *Settings) error {
	if err := verifyLog(&s.Log); err != nil {
		return err
	}
	if !slices.Contains(validOutputs, strings.ToLower(s.Output)) {
		return fmt.Errorf("output must be one of %s, got %q", strings.Join(validOutputs, ", "), s.Output)
	}
	if s.Metrics.Textfile != "" && filepath.Ext(s.Metrics.Textfile) != ".prom" {
		return errors.New("metrics.textfile must end in .prom")
	}
	if s.Watch.Interval < 0 {
		return errors.New("watch.interval must not be negative")
	}
	return nil
}

func verifyLog(s *LogSection) error {
	if !slices.Contains(validLogLevels, strings.ToLower(s.Level)) {
		return fmt.Errorf("log.level must be one of %s, got %q", strings.Join(validLogLevels, ", "), s.Level)
	}
	if !slices.Contains(validLogFormats, strings.ToLower(s.Format)) {
		return fmt.Errorf("log.format must be one of %s, got %q", strings.Join(validLogFormats, ", "), s.Format)
	}
	return nil
}
