package logger

import (
	"log/slog"
	"testing"
)

func TestRedactSensitive_ValuePrefix(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"bearer", "Bearer abcdefghijklm", "Bearer abc...klm"},
		{"basic short", "Basic dXNl", "Basic ***"},
		{"github token", "ghp_0123456789abcdef", "ghp_012...def"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := redactSensitive(slog.String("header", tt.value))
			if got.Value.String() != tt.want {
				t.Errorf("redactSensitive() = %q, want %q", got.Value.String(), tt.want)
			}
		})
	}
}

func TestRedactSensitive_SensitiveKeyName(t *testing.T) {
	tests := []struct {
		key   string
		value string
		want  string
	}{
		{"password", "hunter22", redactedValue},
		{"DB_PASSWORD", "hunter22", redactedValue},
		{"client_secret", "s3cr3t", redactedValue},
		{"api_key", "abc", redactedValue},
		{"password", "", ""},
		{"property", "HOME", "HOME"},
		{"value", "/home/user", "/home/user"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			got := redactSensitive(slog.String(tt.key, tt.value))
			if got.Value.String() != tt.want {
				t.Errorf("redactSensitive(%q) = %q, want %q", tt.key, got.Value.String(), tt.want)
			}
		})
	}
}

func TestRedactSensitive_NonString(t *testing.T) {
	a := slog.Int("token_count", 3)
	if got := redactSensitive(a); got.Value.Int64() != 3 {
		t.Errorf("non-string attributes should pass through, got %v", got.Value)
	}
}

func TestRedactSensitive_Group(t *testing.T) {
	a := slog.Group("db", slog.String("user", "app"), slog.String("password", "hunter22"))

	got := redactSensitive(a).Value.Group()
	if got[0].Value.String() != "app" {
		t.Errorf("user = %q, want %q", got[0].Value.String(), "app")
	}
	if got[1].Value.String() != redactedValue {
		t.Errorf("password = %q, want redacted", got[1].Value.String())
	}
}

func TestRedactProperty(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"HOME", "/home/user", "/home/user"},
		{"SMTP_PASSWORD", "hunter22", redactedValue},
		{"UPSTREAM_AUTH_HEADER", "Bearer abcdefghijklm", "Bearer abc...klm"},
		{"MONKEY_COUNT", "12", "12"},
		{"GITHUB_TOKEN", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RedactProperty(tt.name, tt.value); got != tt.want {
				t.Errorf("RedactProperty(%q, %q) = %q, want %q", tt.name, tt.value, got, tt.want)
			}
		})
	}
}

func TestRedactString(t *testing.T) {
	if got := RedactString("Bearer abcdefghijklm"); got != "Bearer abc...klm" {
		t.Errorf("RedactString() = %q", got)
	}
	if got := RedactString("plain"); got != "plain" {
		t.Errorf("RedactString(plain) = %q, want unchanged", got)
	}
}

func TestIsSensitiveKey(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"password", true},
		{"AUTH_URL", true},
		{"refreshToken", true},
		{"KEY_0001", false},
		{"HOME", false},
	}

	for _, tt := range tests {
		if got := IsSensitiveKey(tt.key); got != tt.want {
			t.Errorf("IsSensitiveKey(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestIsSensitiveValue(t *testing.T) {
	if !IsSensitiveValue("Basic dXNlcjpwYXNz") {
		t.Error("IsSensitiveValue(Basic ...) = false, want true")
	}
	if IsSensitiveValue("/usr/local/bin") {
		t.Error("IsSensitiveValue(path) = true, want false")
	}
}

func TestMaskValue(t *testing.T) {
	tests := []struct {
		value, prefix, want string
	}{
		{"Bearer 1234567", "Bearer ", "Bearer 123...567"},
		{"Bearer 123456", "Bearer ", "Bearer ***"},
		{"ghp_", "ghp_", "ghp_***"},
	}

	for _, tt := range tests {
		if got := maskValue(tt.value, tt.prefix); got != tt.want {
			t.Errorf("maskValue(%q) = %q, want %q", tt.value, got, tt.want)
		}
	}
}
