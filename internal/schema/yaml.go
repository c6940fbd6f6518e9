package schema

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type yamlDocument struct {
	Keys []KeyDef `koanf:"keys"`
}

func decodeYAML(path string) ([]KeyDef, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to parse YAML schema %s: %w", path, err)
	}

	var doc yamlDocument
	if err := k.UnmarshalWithConf("", &doc, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("failed to decode YAML schema %s: %w", path, err)
	}
	return doc.Keys, nil
}
