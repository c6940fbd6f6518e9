// Package logger provides structured logging for propkit.
//
// It wraps log/slog and installs a ReplaceAttr hook that masks credentials
// before they reach the output:
//
//   - logger.go: construction, level control and the process-wide default
//   - context.go: carrying the logger and the current command through a context
//   - redact.go: attribute and property value redaction
//
// The underlying *slog.Logger is available through Logger.Slog so libraries
// that accept a plain slog logger (pkg/props, the config watcher) share the
// same handler and redaction rules.
package logger
