package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"
)

type jsonDocument struct {
	Keys []KeyDef `json:"keys"`
}

// decodeJSON accepts JSONC: comments and trailing commas are stripped first.
// Unknown fields are rejected so typos such as "mandtory" surface.
func decodeJSON(path string) ([]KeyDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
	dec.DisallowUnknownFields()

	var doc jsonDocument
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing JSON schema %s: %w", path, err)
	}
	return doc.Keys, nil
}
