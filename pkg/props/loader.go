package props

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/oklog/ulid/v2"
)

// Redactor masks a value before it is logged.
type Redactor func(key, value string) string

func noRedact(_, value string) string { return value }

// LoadEvent describes one completed load attempt.
type LoadEvent struct {
	LoadID   string
	Path     string
	Keys     int // stored values; 0 on failure
	Duration time.Duration
	Err      error
}

// Observer is notified after every load attempt.
type Observer interface {
	ObserveLoad(LoadEvent)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(LoadEvent)

// ObserveLoad implements Observer.
func (f ObserverFunc) ObserveLoad(e LoadEvent) {
	if f != nil {
		f(e)
	}
}

type noopObserver struct{}

func (noopObserver) ObserveLoad(LoadEvent) {}

// Loader reads property files for one schema.
// A Loader holds no per-load state and may be reused.
type Loader struct {
	registry  *Registry
	logger    *slog.Logger
	redact    Redactor
	observer  Observer
	lookupEnv EnvLookup
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithRedactor masks values before they reach the logger.
func WithRedactor(redact Redactor) Option {
	return func(l *Loader) {
		if redact != nil {
			l.redact = redact
		}
	}
}

// WithObserver registers an observer for load events.
func WithObserver(o Observer) Option {
	return func(l *Loader) {
		if o == nil {
			l.observer = noopObserver{}
			return
		}
		l.observer = o
	}
}

// WithEnvFallback resolves references to names that have no stored value
// from the process environment instead of "".
func WithEnvFallback() Option {
	return WithEnvLookup(os.LookupEnv)
}

// WithEnvLookup is WithEnvFallback with a custom lookup function.
func WithEnvLookup(lookup EnvLookup) Option {
	return func(l *Loader) {
		l.lookupEnv = lookup
	}
}

// NewLoader creates a loader for schema.
func NewLoader(schema Schema, opts ...Option) (*Loader, error) {
	registry, err := NewRegistry(schema)
	if err != nil {
		return nil, err
	}

	l := &Loader{
		registry: registry,
		logger:   slog.Default(),
		redact:   noRedact,
		observer: noopObserver{},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Registry returns the loader's registry.
func (l *Loader) Registry() *Registry {
	return l.registry
}

// Load reads path against schema and returns the resolved store.
func Load(path string, schema Schema, opts ...Option) (*Store, error) {
	l, err := NewLoader(schema, opts...)
	if err != nil {
		return nil, err
	}
	return l.Load(context.Background(), path)
}

// Load reads the property file at path.
// Either a fully validated and resolved store is returned, or an error.
func (l *Loader) Load(ctx context.Context, path string) (*Store, error) {
	return l.run(ctx, path, func(log *slog.Logger) (*Store, error) {
		f, err := os.Open(path)
		if err != nil {
			return nil, ErrConfigFileUnavailable.InFile(path).Wrap(err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil {
				log.Warn("cannot close property file", "error", cerr)
			}
		}()
		return l.read(ctx, path, f, log)
	})
}

// LoadReader reads properties from r. name identifies the source in
// errors and logs.
func (l *Loader) LoadReader(ctx context.Context, name string, r io.Reader) (*Store, error) {
	return l.run(ctx, name, func(log *slog.Logger) (*Store, error) {
		return l.read(ctx, name, r, log)
	})
}

func (l *Loader) run(ctx context.Context, path string, load func(*slog.Logger) (*Store, error)) (*Store, error) {
	start := time.Now()
	loadID := ulid.Make().String()
	log := l.logger.With("load_id", loadID, "path", path)

	store, err := load(log)

	event := LoadEvent{
		LoadID:   loadID,
		Path:     path,
		Duration: time.Since(start),
		Err:      err,
	}
	if err != nil {
		log.Debug("property load failed", "error", err)
		l.observer.ObserveLoad(event)
		return nil, err
	}

	event.Keys = store.Len()
	log.Info("properties loaded",
		"keys", store.Len(),
		"duration", event.Duration,
	)
	l.observer.ObserveLoad(event)
	return store, nil
}

func (l *Loader) read(ctx context.Context, path string, r io.Reader, log *slog.Logger) (*Store, error) {
	store := newStore(l.registry, l.lookupEnv, l.logger)

	p := &parser{
		registry: l.registry,
		store:    store,
		path:     path,
		logger:   log,
		redact:   l.redact,
	}
	if err := p.parse(ctx, r); err != nil {
		return nil, err
	}

	if err := store.validateMandatory(); err != nil {
		return nil, err
	}

	if err := store.resolveAll(); err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	for _, name := range store.Keys() {
		log.Debug("resolved value", "property", name, "value", l.redact(name, store.values[name]))
	}
	return store, nil
}
