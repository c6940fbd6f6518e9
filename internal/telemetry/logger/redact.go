package logger

import (
	"log/slog"
	"strings"
)

// Credential schemes that are partially masked wherever they appear.
var sensitiveValuePrefixes = []string{
	"Bearer ",
	"Basic ",
	"ghp_",
	"xoxb-",
}

// Name fragments that mark an attribute or property as sensitive.
// A bare "key" is not listed: property schemas use it in ordinary names.
var sensitiveKeyPatterns = []string{
	"password",
	"passwd",
	"secret",
	"token",
	"apikey",
	"api_key",
	"private_key",
	"credential",
	"auth",
	"bearer",
}

const redactedValue = "***REDACTED***"

// redactSensitive masks string attributes whose value carries a credential
// prefix or whose name matches a sensitive pattern.
func redactSensitive(a slog.Attr) slog.Attr {
	switch a.Value.Kind() {
	case slog.KindString:
		if v := redact(a.Key, a.Value.String()); v != a.Value.String() {
			return slog.String(a.Key, v)
		}
	case slog.KindGroup:
		attrs := a.Value.Group()
		newAttrs := make([]slog.Attr, len(attrs))
		for i, attr := range attrs {
			newAttrs[i] = redactSensitive(attr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(newAttrs...)}
	}
	return a
}

// redact applies value-prefix masking first, then name-based redaction.
func redact(name, value string) string {
	for _, prefix := range sensitiveValuePrefixes {
		if strings.HasPrefix(value, prefix) {
			return maskValue(value, prefix)
		}
	}
	if value != "" && IsSensitiveKey(name) {
		return redactedValue
	}
	return value
}

// maskValue keeps the prefix and three characters at each end of the body.
func maskValue(value, prefix string) string {
	body := value[len(prefix):]
	if len(body) <= 6 {
		return prefix + "***"
	}
	return prefix + body[:3] + "..." + body[len(body)-3:]
}

// RedactString masks a value that carries a known credential prefix.
func RedactString(value string) string {
	for _, prefix := range sensitiveValuePrefixes {
		if strings.HasPrefix(value, prefix) {
			return maskValue(value, prefix)
		}
	}
	return value
}

// RedactProperty returns the form of a property value that is safe to log
// or print. Its signature matches props.Redactor.
func RedactProperty(name, value string) string {
	return redact(name, value)
}

// IsSensitiveKey checks if a name suggests sensitive content.
func IsSensitiveKey(key string) bool {
	keyLower := strings.ToLower(key)
	for _, pattern := range sensitiveKeyPatterns {
		if strings.Contains(keyLower, pattern) {
			return true
		}
	}
	return false
}

// IsSensitiveValue checks if a value carries a credential prefix.
func IsSensitiveValue(value string) bool {
	for _, prefix := range sensitiveValuePrefixes {
		if strings.HasPrefix(value, prefix) {
			return true
		}
	}
	return false
}
