package props

// Key describes one recognized configuration key.
//
// Keys are values; two keys are the same key when their names match,
// regardless of the other attributes.
type Key struct {
	name         string
	mandatory    bool
	defaultValue string
}

// KeyOption configures a Key.
type KeyOption func(*Key)

// Mandatory marks the key as required in the property file.
func Mandatory() KeyOption {
	return func(k *Key) {
		k.mandatory = true
	}
}

// Default sets the value returned when the file provides none.
// References inside the default are resolved when it is read.
func Default(value string) KeyOption {
	return func(k *Key) {
		k.defaultValue = value
	}
}

// NewKey creates a key with the given name.
func NewKey(name string, opts ...KeyOption) Key {
	k := Key{name: name}
	for _, opt := range opts {
		opt(&k)
	}
	return k
}

// Name returns the key name used in the property file.
func (k Key) Name() string {
	return k.name
}

// Mandatory reports whether the key must be present in the file.
func (k Key) Mandatory() bool {
	return k.mandatory
}

// DefaultValue returns the unresolved default, "" if none.
func (k Key) DefaultValue() string {
	return k.defaultValue
}

// Equal reports whether k and other name the same key.
func (k Key) Equal(other Key) bool {
	return k.name == other.name
}

// String returns the key name.
func (k Key) String() string {
	return k.name
}

// Schema is the caller-declared set of keys, usually written as a literal:
//
//	var schema = props.Schema{
//		props.NewKey("HOME", props.Mandatory()),
//		props.NewKey("LOGS", props.Default("/tmp")),
//	}
type Schema []Key
