package props

import (
	"encoding/binary"
	"log/slog"
	"maps"
	"slices"

	"github.com/spaolacci/murmur3"
)

// Store holds the values loaded for one schema.
//
// A Store is populated and resolved by the Loader and never written again,
// so it may be shared by any number of goroutines once Load returns.
type Store struct {
	registry  *Registry
	values    map[string]string
	lookupEnv EnvLookup
	logger    *slog.Logger
}

func newStore(registry *Registry, lookupEnv EnvLookup, logger *slog.Logger) *Store {
	return &Store{
		registry:  registry,
		values:    make(map[string]string),
		lookupEnv: lookupEnv,
		logger:    logger,
	}
}

func (s *Store) put(name, value string) {
	s.values[name] = value
}

// validateMandatory fails on the first mandatory key, in declaration order,
// that has no stored value.
func (s *Store) validateMandatory() error {
	for _, k := range s.registry.Mandatory() {
		if _, ok := s.values[k.name]; !ok {
			return ErrMissingMandatoryKey.WithKey(k.name)
		}
	}
	return nil
}

// resolveAll replaces every stored value with its resolved form. Every key
// resolves against the raw values, so the order of the pass does not
// matter; the sorted order only makes the reported cycle deterministic.
func (s *Store) resolveAll() error {
	r := newResolver(s.values, s.lookupEnv)
	resolved := make(map[string]string, len(s.values))
	for _, name := range slices.Sorted(maps.Keys(s.values)) {
		v, err := r.resolveKey(name)
		if err != nil {
			return err
		}
		resolved[name] = v
	}
	s.values = resolved
	return nil
}

// Value returns the value of key. A key without a stored value, or with an
// empty one, yields its default with references resolved.
func (s *Store) Value(key Key) (string, error) {
	if v, ok := s.values[key.name]; ok && v != "" {
		return v, nil
	}
	if key.defaultValue == "" {
		return "", nil
	}
	return resolvedView(s.values, s.lookupEnv).resolve(key.defaultValue)
}

// Get is Value without the error. A default that cannot be resolved is
// logged and yields "".
func (s *Store) Get(key Key) string {
	v, err := s.Value(key)
	if err != nil {
		s.logger.Warn("cannot resolve default value", "property", key.name, "error", err)
		return ""
	}
	return v
}

// Lookup returns the stored value of key without falling back to its default.
func (s *Store) Lookup(key Key) (string, bool) {
	v, ok := s.values[key.name]
	return v, ok
}

// Has reports whether the file provided a value for key.
func (s *Store) Has(key Key) bool {
	_, ok := s.values[key.name]
	return ok
}

// Len returns the number of stored values.
func (s *Store) Len() int {
	return len(s.values)
}

// Keys returns the names with stored values, sorted.
func (s *Store) Keys() []string {
	return slices.Sorted(maps.Keys(s.values))
}

// Snapshot returns a copy of the stored values.
func (s *Store) Snapshot() map[string]string {
	return maps.Clone(s.values)
}

// Registry returns the registry the store was loaded against.
func (s *Store) Registry() *Registry {
	return s.registry
}

// Fingerprint hashes the stored values. Two stores with equal contents
// have equal fingerprints regardless of file layout or comments.
func (s *Store) Fingerprint() uint64 {
	h := murmur3.New64()
	var n [8]byte
	for _, name := range s.Keys() {
		value := s.values[name]
		binary.LittleEndian.PutUint64(n[:], uint64(len(name)))
		h.Write(n[:])
		h.Write([]byte(name))
		binary.LittleEndian.PutUint64(n[:], uint64(len(value)))
		h.Write(n[:])
		h.Write([]byte(value))
	}
	return h.Sum64()
}
