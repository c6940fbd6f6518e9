package props

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_File(t *testing.T) {
	path := writeProps(t, "HOME = /home/test\nBIN_DIR = ${HOME}/bin\n")

	s, err := Load(path, simpleSchema, WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := s.Get(keyBin); got != "/home/test/bin" {
		t.Errorf("Get(BIN_DIR) = %q, want %q", got, "/home/test/bin")
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.properties")

	_, err := Load(path, simpleSchema, WithLogger(quietLogger()))
	wantErr(t, err, ErrConfigFileUnavailable)
	if !strings.Contains(err.Error(), "missing.properties") {
		t.Errorf("error %q should name the file", err)
	}
}

func TestLoad_Directory(t *testing.T) {
	_, err := Load(t.TempDir(), simpleSchema, WithLogger(quietLogger()))
	wantErr(t, err, ErrConfigFileUnavailable)
}

func TestLoad_EmptySchema(t *testing.T) {
	path := writeProps(t, "HOME = /h\n")

	_, err := Load(path, Schema{})
	wantErr(t, err, ErrEmptySchema)
}

func TestLoader_Reuse(t *testing.T) {
	l, err := NewLoader(simpleSchema, WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("NewLoader() error = %v", err)
	}

	first, err := l.Load(context.Background(), writeProps(t, "HOME = /one\nCONF = c\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	second, err := l.Load(context.Background(), writeProps(t, "HOME = /two\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if first.Get(keyHome) != "/one" || second.Get(keyHome) != "/two" {
		t.Errorf("Get(HOME) = %q, %q, want /one, /two", first.Get(keyHome), second.Get(keyHome))
	}
	if second.Has(keyConf) {
		t.Error("second store should not see values from the first load")
	}
}

func TestLoader_Observer(t *testing.T) {
	var events []LoadEvent
	obs := ObserverFunc(func(e LoadEvent) { events = append(events, e) })

	l, err := NewLoader(simpleSchema, WithLogger(quietLogger()), WithObserver(obs))
	if err != nil {
		t.Fatalf("NewLoader() error = %v", err)
	}

	ctx := context.Background()
	if _, err := l.LoadReader(ctx, "ok", strings.NewReader("HOME = /h\nCONF = c\n")); err != nil {
		t.Fatalf("LoadReader() error = %v", err)
	}
	_, _ = l.LoadReader(ctx, "bad", strings.NewReader("CONF = c\n"))

	if len(events) != 2 {
		t.Fatalf("observed %d events, want 2", len(events))
	}
	if events[0].Err != nil || events[0].Keys != 2 || events[0].Path != "ok" {
		t.Errorf("success event = %+v", events[0])
	}
	if len(events[0].LoadID) != 26 {
		t.Errorf("LoadID = %q, want a 26 character ULID", events[0].LoadID)
	}
	if Code(events[1].Err) != ErrMissingMandatoryKey.Code || events[1].Keys != 0 {
		t.Errorf("failure event = %+v", events[1])
	}
	if events[0].LoadID == events[1].LoadID {
		t.Error("each load should get its own LoadID")
	}
}

func TestLoader_NilObserver(t *testing.T) {
	_, err := loadString(t, "HOME = /h\n", simpleSchema, WithObserver(nil))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
}

func TestLoader_ContextCanceled(t *testing.T) {
	l, err := NewLoader(simpleSchema, WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("NewLoader() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = l.LoadReader(ctx, "test", strings.NewReader("HOME = /h\n"))
	if err != context.Canceled {
		t.Errorf("LoadReader() error = %v, want context.Canceled", err)
	}
}

func TestLoader_Redactor(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	secret := NewKey("DB_PASSWORD")
	redact := func(key, value string) string {
		if key == "DB_PASSWORD" {
			return "***"
		}
		return value
	}

	l, err := NewLoader(Schema{secret, keyConf}, WithLogger(logger), WithRedactor(redact))
	if err != nil {
		t.Fatalf("NewLoader() error = %v", err)
	}
	s, err := l.LoadReader(context.Background(), "test", strings.NewReader("DB_PASSWORD = hunter22\nCONF = visible\n"))
	if err != nil {
		t.Fatalf("LoadReader() error = %v", err)
	}

	out := buf.String()
	if strings.Contains(out, "hunter22") {
		t.Errorf("log output leaks secret: %s", out)
	}
	if !strings.Contains(out, "visible") {
		t.Errorf("log output should contain non-sensitive values: %s", out)
	}
	if !strings.Contains(out, "load_id") {
		t.Errorf("log output should carry load_id: %s", out)
	}
	if s.Get(secret) != "hunter22" {
		t.Errorf("Get(DB_PASSWORD) = %q, redaction must not touch stored values", s.Get(secret))
	}
}

func TestLoad_AllOrNothing(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{"malformed", "HOME = /h\nBAD LINE = a = b\n", ErrMalformedLine},
		{"unknown", "HOME = /h\nWHO = x\n", ErrUnknownKey},
		{"missing mandatory", "CONF = /c\n", ErrMissingMandatoryKey},
		{"cycle", "HOME = $CONF\nCONF = $HOME\n", ErrCyclicReference},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := loadString(t, tt.content, simpleSchema)
			wantErr(t, err, tt.want)
			if s != nil {
				t.Error("failed load must not return a store")
			}
		})
	}
}
