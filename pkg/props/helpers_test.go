package props

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeProps writes content to a property file in a temp dir.
func writeProps(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.properties")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write property file: %v", err)
	}
	return path
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// loadString loads content against schema with a silent logger.
func loadString(t *testing.T, content string, schema Schema, opts ...Option) (*Store, error) {
	t.Helper()
	opts = append([]Option{WithLogger(quietLogger())}, opts...)
	l, err := NewLoader(schema, opts...)
	if err != nil {
		t.Fatalf("NewLoader() error = %v", err)
	}
	return l.LoadReader(context.Background(), "test.properties", strings.NewReader(content))
}

// mustLoad is loadString that fails the test on error.
func mustLoad(t *testing.T, content string, schema Schema, opts ...Option) *Store {
	t.Helper()
	s, err := loadString(t, content, schema, opts...)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return s
}

func wantErr(t *testing.T, err, target error) {
	t.Helper()
	if err == nil {
		t.Fatalf("error = nil, want %v", target)
	}
	if !errors.Is(err, target) {
		t.Fatalf("error = %v, want %v", err, target)
	}
}

var (
	keyHome        = NewKey("HOME", Mandatory())
	keyBin         = NewKey("BIN_DIR")
	keyConf        = NewKey("CONF")
	keyDumpFile    = NewKey("DUMP_FILE")
	keyDescription = NewKey("DESCRIPTION")
	keyLogs        = NewKey("LOGS", Default("/tmp"))

	simpleSchema = Schema{keyHome, keyBin, keyConf, keyDumpFile, keyDescription, keyLogs}
)
