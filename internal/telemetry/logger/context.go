package logger

import "context"

type contextKey string

const (
	loggerKey  contextKey = "propkit.logger"
	commandKey contextKey = "propkit.command"
	fileKey    contextKey = "propkit.file"
)

// WithLogger adds a logger to the context.
func WithLogger(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext extracts the logger from context.
// Returns the default logger if none is set.
func FromContext(ctx context.Context) Logger {
	if l, ok := ctx.Value(loggerKey).(Logger); ok {
		return l
	}
	return Default()
}

// WithCommand records the running CLI command name.
func WithCommand(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, commandKey, name)
}

// CommandFromContext returns the command name, or "".
func CommandFromContext(ctx context.Context) string {
	if name, ok := ctx.Value(commandKey).(string); ok {
		return name
	}
	return ""
}

// WithFile records the properties file being processed.
func WithFile(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, fileKey, path)
}

// FileFromContext returns the properties file path, or "".
func FileFromContext(ctx context.Context) string {
	if path, ok := ctx.Value(fileKey).(string); ok {
		return path
	}
	return ""
}

// L is a shorthand for FromContext that also enriches the logger
// with the command and file carried by the context.
func L(ctx context.Context) Logger {
	l := FromContext(ctx)

	if cmd := CommandFromContext(ctx); cmd != "" {
		l = l.With("command", cmd)
	}
	if path := FileFromContext(ctx); path != "" {
		l = l.With("file", path)
	}

	return l
}
