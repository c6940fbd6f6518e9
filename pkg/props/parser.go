package props

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

const (
	separator     = "="
	commentPrefix = "#"

	// maxLineSize bounds a single physical line.
	maxLineSize = 1 << 20
)

// parser rebuilds logical key/value pairs from physical lines.
//
// A key=value line opens a pending pair; following lines without a
// separator are appended to its value. The pending pair is written to the
// store when the next key=value line arrives or the input ends.
type parser struct {
	registry *Registry
	store    *Store
	path     string
	logger   *slog.Logger
	redact   Redactor

	pendingKey  string
	pendingLine int
	pending     strings.Builder
}

func (p *parser) parse(ctx context.Context, r io.Reader) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineSize)

	lineNo := 0
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		lineNo++
		if err := p.parseLine(lineNo, sc.Text()); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return ErrMalformedLine.AtLine(p.path, lineNo+1).
				Wrap(fmt.Errorf("line longer than %d bytes", maxLineSize))
		}
		return ErrConfigFileUnavailable.InFile(p.path).Wrap(err)
	}

	// The last pair has no following key=value line to flush it.
	return p.flush()
}

func (p *parser) parseLine(lineNo int, raw string) error {
	line := strings.TrimSpace(raw)

	switch {
	case line == "" || strings.HasPrefix(line, commentPrefix):
		return nil

	case !strings.Contains(line, separator):
		if p.pendingKey == "" {
			p.logger.Debug("dropping continuation line without a key", "line", lineNo)
			return nil
		}
		p.pending.WriteString("\n")
		p.pending.WriteString(line)
		return nil
	}

	fields := strings.Split(line, separator)
	if len(fields) != 2 || strings.TrimSpace(fields[0]) == "" {
		return ErrMalformedLine.AtLine(p.path, lineNo).WithValue(line)
	}

	if err := p.flush(); err != nil {
		return err
	}

	p.pendingKey = strings.TrimSpace(fields[0])
	p.pendingLine = lineNo
	p.pending.Reset()
	p.pending.WriteString(strings.TrimSpace(fields[1]))
	return nil
}

// flush stores the pending pair, if any.
func (p *parser) flush() error {
	if p.pendingKey == "" {
		return nil
	}

	key, ok := p.registry.Lookup(p.pendingKey)
	if !ok {
		return ErrUnknownKey.WithKey(p.pendingKey).AtLine(p.path, p.pendingLine)
	}

	value := p.pending.String()
	p.logger.Debug("storing raw value",
		"property", key.name,
		"value", p.redact(key.name, value),
		"line", p.pendingLine,
	)
	p.store.put(key.name, value)

	p.pendingKey = ""
	p.pending.Reset()
	return nil
}
