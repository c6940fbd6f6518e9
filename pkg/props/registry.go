package props

import (
	"errors"
	"fmt"
)

// Registry indexes the keys of one schema by name.
// It is immutable once built.
type Registry struct {
	byName map[string]Key
	order  []Key
}

// NewRegistry builds a registry from a schema.
// It fails with ErrEmptySchema when the schema has no keys and with
// ErrInvalidSchema on an empty or repeated name.
func NewRegistry(schema Schema) (*Registry, error) {
	if len(schema) == 0 {
		return nil, ErrEmptySchema.clone()
	}

	r := &Registry{
		byName: make(map[string]Key, len(schema)),
		order:  make([]Key, 0, len(schema)),
	}
	for i, k := range schema {
		if k.name == "" {
			return nil, ErrInvalidSchema.Wrap(fmt.Errorf("key #%d has no name", i+1))
		}
		if _, dup := r.byName[k.name]; dup {
			return nil, ErrInvalidSchema.WithKey(k.name).Wrap(errors.New("key declared more than once"))
		}
		r.byName[k.name] = k
		r.order = append(r.order, k)
	}
	return r, nil
}

// Lookup returns the key with the given name.
func (r *Registry) Lookup(name string) (Key, bool) {
	k, ok := r.byName[name]
	return k, ok
}

// Keys returns the keys in declaration order.
func (r *Registry) Keys() []Key {
	out := make([]Key, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of declared keys.
func (r *Registry) Len() int {
	return len(r.order)
}

// Mandatory returns the mandatory keys in declaration order.
func (r *Registry) Mandatory() []Key {
	var out []Key
	for _, k := range r.order {
		if k.mandatory {
			out = append(out, k)
		}
	}
	return out
}
