package repl

import (
	"slices"
	"strings"
)

// Completer provides prefix completion for the REPL.
type Completer struct {
	words []string
}

// NewCompleter creates a Completer over words.
func NewCompleter(words ...string) *Completer {
	c := &Completer{}
	c.Add(words...)
	return c
}

// Add registers more words. Duplicates are ignored.
func (c *Completer) Add(words ...string) {
	for _, w := range words {
		if !slices.Contains(c.words, w) {
			c.words = append(c.words, w)
		}
	}
	slices.Sort(c.words)
}

// Complete returns the words starting with prefix, sorted. A prefix of the
// form "cmd partial" completes only the last word and keeps the rest.
func (c *Completer) Complete(prefix string) []string {
	head, last := "", prefix
	if i := strings.LastIndexByte(prefix, ' '); i >= 0 {
		head, last = prefix[:i+1], prefix[i+1:]
	}

	var suggestions []string
	for _, w := range c.words {
		if strings.HasPrefix(w, last) {
			suggestions = append(suggestions, head+w)
		}
	}
	return suggestions
}
