package props

import (
	"regexp"
	"slices"
	"strings"
)

// referencePattern matches ${name} (blanks inside the braces allowed) and $name.
// Names are at least two characters long.
var referencePattern = regexp.MustCompile(`\$\{\s*([a-zA-Z_.][a-zA-Z_.0-9]+)\s*\}|\$([a-zA-Z_.][a-zA-Z_.0-9]+)`)

// EnvLookup returns the value of an environment variable.
// os.LookupEnv satisfies it.
type EnvLookup func(name string) (string, bool)

// resolver substitutes references against a set of raw values. Each key
// is resolved once from its raw value; substituted text is never scanned
// again.
type resolver struct {
	values    map[string]string
	lookupEnv EnvLookup

	// done holds the resolved value of every key finished so far.
	done map[string]string
	// stack holds the names being resolved, outermost first.
	stack []string
}

func newResolver(values map[string]string, lookupEnv EnvLookup) *resolver {
	return &resolver{values: values, lookupEnv: lookupEnv, done: make(map[string]string)}
}

// resolvedView substitutes references against values that are already
// resolved, such as a loaded store's.
func resolvedView(values map[string]string, lookupEnv EnvLookup) *resolver {
	return &resolver{values: values, lookupEnv: lookupEnv, done: values}
}

// resolveKey resolves the stored value of name.
func (r *resolver) resolveKey(name string) (string, error) {
	if v, ok := r.done[name]; ok {
		return v, nil
	}
	if slices.Contains(r.stack, name) {
		chain := append(slices.Clone(r.stack), name)
		return "", ErrCyclicReference.WithKey(chain[0]).WithValue(strings.Join(chain, " -> "))
	}

	r.stack = append(r.stack, name)
	defer func() { r.stack = r.stack[:len(r.stack)-1] }()

	v, err := r.resolve(r.values[name])
	if err != nil {
		return "", err
	}
	r.done[name] = v
	return v, nil
}

// resolve replaces every reference in value with the resolved value of
// the named key. Each distinct name is resolved once per call, and every
// spelling of it (${name}, ${ name }, $name) receives the same text.
func (r *resolver) resolve(value string) (string, error) {
	if !strings.Contains(value, "$") {
		return value, nil
	}

	resolved := make(map[string]string)
	var firstErr error

	out := referencePattern.ReplaceAllStringFunc(value, func(ref string) string {
		if firstErr != nil {
			return ref
		}
		name := referenceName(ref)
		if v, ok := resolved[name]; ok {
			return v
		}
		v, err := r.lookup(name)
		if err != nil {
			firstErr = err
			return ref
		}
		resolved[name] = v
		return v
	})
	if firstErr != nil {
		return "", firstErr
	}
	return out, nil
}

// lookup returns the substitution text for name. Names without a stored
// value fall back to the environment when enabled, else to "".
func (r *resolver) lookup(name string) (string, error) {
	if _, ok := r.values[name]; ok {
		return r.resolveKey(name)
	}
	if r.lookupEnv != nil {
		if v, ok := r.lookupEnv(name); ok {
			return v, nil
		}
	}
	return "", nil
}

// referenceName extracts the name from a matched reference.
func referenceName(ref string) string {
	name := strings.TrimPrefix(ref, "$")
	if strings.HasPrefix(name, "{") {
		name = strings.TrimSuffix(strings.TrimPrefix(name, "{"), "}")
		name = strings.TrimSpace(name)
	}
	return name
}

// Resolve substitutes references in value against values, the way a
// loaded store resolves its own entries. It is exposed for callers that
// keep raw values outside a Store.
func Resolve(value string, values map[string]string) (string, error) {
	return newResolver(values, nil).resolve(value)
}
