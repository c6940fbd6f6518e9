package schema

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

type hclDocument struct {
	Keys []hclKey `hcl:"key,block"`
}

type hclKey struct {
	Name      string `hcl:"name,label"`
	Mandatory bool   `hcl:"mandatory,optional"`
	Default   string `hcl:"default,optional"`
}

func decodeHCL(path string) ([]KeyDef, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL schema %s: %s", path, diags.Error())
	}

	var doc hclDocument
	diags = gohcl.DecodeBody(file.Body, nil, &doc)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL schema %s: %s", path, diags.Error())
	}

	defs := make([]KeyDef, 0, len(doc.Keys))
	for _, k := range doc.Keys {
		defs = append(defs, KeyDef{Name: k.Name, Mandatory: k.Mandatory, Default: k.Default})
	}
	return defs, nil
}
