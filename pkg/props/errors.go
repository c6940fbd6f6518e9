package props

import (
	"errors"
	"fmt"
	"strings"
)

// Error is a load or conversion failure with a structured error code.
//
// Sentinels below carry only Code and Message; errors returned by the
// package are copies enriched with the offending key, line or value.
// errors.Is matches by Code, so callers compare against the sentinels.
type Error struct {
	Code    string // e.g. "PK-PARS-4001"
	Message string
	Key     string // property name, if any
	Path    string // source file, if any
	Line    int    // 1-based line number, 0 if not applicable
	Value   string // offending text, if any
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("[")
	b.WriteString(e.Code)
	b.WriteString("] ")
	b.WriteString(e.Message)

	if e.Key != "" {
		fmt.Fprintf(&b, " (key %s)", e.Key)
	}
	if e.Path != "" {
		if e.Line > 0 {
			fmt.Fprintf(&b, " at %s:%d", e.Path, e.Line)
		} else {
			fmt.Fprintf(&b, " in %s", e.Path)
		}
	} else if e.Line > 0 {
		fmt.Fprintf(&b, " at line %d", e.Line)
	}
	if e.Value != "" {
		fmt.Fprintf(&b, ": %q", e.Value)
	}
	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

func newError(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func (e *Error) clone() *Error {
	c := *e
	return &c
}

// WithKey returns a copy of the error naming the property key.
func (e *Error) WithKey(key string) *Error {
	c := e.clone()
	c.Key = key
	return c
}

// WithValue returns a copy of the error carrying the offending text.
func (e *Error) WithValue(value string) *Error {
	c := e.clone()
	c.Value = value
	return c
}

// AtLine returns a copy of the error located at path:line.
func (e *Error) AtLine(path string, line int) *Error {
	c := e.clone()
	c.Path = path
	c.Line = line
	return c
}

// InFile returns a copy of the error located in path.
func (e *Error) InFile(path string) *Error {
	c := e.clone()
	c.Path = path
	return c
}

// Wrap returns a copy of the error wrapping cause.
func (e *Error) Wrap(cause error) *Error {
	c := e.clone()
	c.Cause = cause
	return c
}

// Code extracts the error code from err, or "" if err is not an *Error.
func Code(err error) string {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Code
	}
	return ""
}

// Schema errors (SCHM).
var (
	// ErrEmptySchema indicates the schema declares no keys.
	ErrEmptySchema = newError("PK-SCHM-4000", "schema declares no keys")

	// ErrInvalidSchema indicates an empty or duplicated key name.
	ErrInvalidSchema = newError("PK-SCHM-4001", "invalid schema")
)

// File errors (FILE).
var (
	// ErrConfigFileUnavailable indicates the file is missing or unreadable.
	ErrConfigFileUnavailable = newError("PK-FILE-4040", "config file unavailable")
)

// Parse errors (PARS).
var (
	// ErrMalformedLine indicates a line is not a single key=value pair.
	ErrMalformedLine = newError("PK-PARS-4000", "malformed line")

	// ErrUnknownKey indicates the file names a key the schema does not declare.
	ErrUnknownKey = newError("PK-PARS-4001", "unknown key")
)

// Validation errors (VALD).
var (
	// ErrMissingMandatoryKey indicates a mandatory key has no value.
	ErrMissingMandatoryKey = newError("PK-VALD-4000", "missing mandatory key")
)

// Substitution errors (SUBS).
var (
	// ErrCyclicReference indicates values reference each other in a loop.
	ErrCyclicReference = newError("PK-SUBS-4000", "cyclic reference")
)

// Conversion errors (CONV).
var (
	// ErrInvalidConfigValue indicates a value cannot be converted to the requested type.
	ErrInvalidConfigValue = newError("PK-CONV-4000", "invalid config value")
)
