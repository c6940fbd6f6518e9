package schema

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yndnr/propkit/internal/telemetry/logger"
	"github.com/yndnr/propkit/pkg/props"
)

// ErrUnsupportedFormat is returned for a schema file with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported schema format")

// KeyDef is one key as written in a schema file.
type KeyDef struct {
	Name      string `koanf:"name" json:"name"`
	Mandatory bool   `koanf:"mandatory" json:"mandatory"`
	Default   string `koanf:"default" json:"default"`
}

// Key converts the definition to a props.Key.
func (d KeyDef) Key() props.Key {
	var opts []props.KeyOption
	if d.Mandatory {
		opts = append(opts, props.Mandatory())
	}
	if d.Default != "" {
		opts = append(opts, props.Default(d.Default))
	}
	return props.NewKey(d.Name, opts...)
}

type decodeFunc func(path string) ([]KeyDef, error)

var decoders = map[string]decodeFunc{
	".yaml":  decodeYAML,
	".yml":   decodeYAML,
	".hcl":   decodeHCL,
	".json":  decodeJSON,
	".jsonc": decodeJSON,
}

// Extensions lists the accepted schema file extensions.
func Extensions() []string {
	return []string{".yaml", ".yml", ".hcl", ".json", ".jsonc"}
}

// Load reads a schema file and checks it the way props.NewRegistry does,
// so a returned schema is always usable by a props.Loader.
func Load(ctx context.Context, path string) (props.Schema, error) {
	log := logger.L(ctx)

	ext := strings.ToLower(filepath.Ext(path))
	decode, ok := decoders[ext]
	if !ok {
		return nil, fmt.Errorf("%s: %w %q", path, ErrUnsupportedFormat, ext)
	}

	log.Debug("decoding schema file", "path", path, "format", strings.TrimPrefix(ext, "."))
	defs, err := decode(path)
	if err != nil {
		return nil, err
	}

	schema := make(props.Schema, 0, len(defs))
	for _, d := range defs {
		schema = append(schema, d.Key())
	}
	if _, err := props.NewRegistry(schema); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log.Debug("schema decoded", "path", path, "keys", len(schema))
	return schema, nil
}
