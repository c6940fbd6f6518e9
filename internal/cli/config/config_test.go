package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestDefault(t *testing.T) {
	s := Default()

	if s.Output != "table" {
		t.Errorf("Output = %q, want %q", s.Output, "table")
	}
	if s.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want %q", s.Log.Level, "warn")
	}
	if s.Env.Fallback {
		t.Error("Env.Fallback should default to false")
	}
	if err := Verify(s); err != nil {
		t.Errorf("Verify(Default()) error = %v", err)
	}
}

func TestDefaultConfigPath(t *testing.T) {
	path := DefaultConfigPath()

	if !strings.HasSuffix(path, filepath.Join(".propkit", "config.yaml")) {
		t.Errorf("DefaultConfigPath() = %q, should end with .propkit/config.yaml", path)
	}
}

func TestVerify(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr string
	}{
		{"defaults", func(*Settings) {}, ""},
		{"json output", func(s *Settings) { s.Output = "JSON" }, ""},
		{"bad output", func(s *Settings) { s.Output = "xml" }, "output must be one of"},
		{"bad level", func(s *Settings) { s.Log.Level = "trace" }, "log.level"},
		{"bad format", func(s *Settings) { s.Log.Format = "logfmt" }, "log.format"},
		{"textfile extension", func(s *Settings) { s.Metrics.Textfile = "/tmp/m.txt" }, "metrics.textfile"},
		{"textfile ok", func(s *Settings) { s.Metrics.Textfile = "/tmp/m.prom" }, ""},
		{"negative interval", func(s *Settings) { s.Watch.Interval = -time.Second }, "watch.interval"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.mutate(s)
			err := Verify(s)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Verify() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Verify() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_MissingDefaultFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	s, err := Load("", nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(Default(), s); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil); err == nil {
		t.Error("Load() should fail for a missing explicit file")
	}
}

func TestLoad_Sources(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
log:
  level: info
output: yaml
schema: /etc/app/schema.hcl
watch:
  interval: 2s
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	t.Setenv("PROPKIT_ENV_FALLBACK", "true")
	t.Setenv("PROPKIT_LOG_LEVEL", "debug")

	s, err := Load(path, map[string]any{"output": "json"})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := Default()
	want.Log.Level = "debug"
	want.Output = "json"
	want.Schema = "/etc/app/schema.hcl"
	want.Env.Fallback = true
	want.Watch.Interval = 2 * time.Second

	if diff := cmp.Diff(want, s); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := Load("", map[string]any{"output": "xml"})
	if err == nil || !strings.Contains(err.Error(), "invalid settings") {
		t.Errorf("Load() error = %v, want invalid settings", err)
	}
}
