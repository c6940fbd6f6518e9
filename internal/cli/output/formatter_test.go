package output

import (
	"bytes"
	"strings"
	"testing"
)

type entry struct {
	Name   string   `json:"name" yaml:"name"`
	Value  string   `json:"value" yaml:"value"`
	Source string   `json:"source" yaml:"source" table:"FROM"`
	Tags   []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	secret string
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"table", FormatTable, false},
		{"JSON", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"", FormatTable, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewFormatter(t *testing.T) {
	if _, ok := NewFormatter(FormatJSON).(*JSONFormatter); !ok {
		t.Error("expected JSONFormatter")
	}
	if _, ok := NewFormatter(FormatYAML).(*YAMLFormatter); !ok {
		t.Error("expected YAMLFormatter")
	}
	if _, ok := NewFormatter("unknown").(*TableFormatter); !ok {
		t.Error("expected TableFormatter as the default")
	}
}

func TestJSONFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	data := []entry{{Name: "HOME", Value: "/home/u", Source: "file"}}

	if err := (&JSONFormatter{}).Format(&buf, data); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{`"name": "HOME"`, `"value": "/home/u"`, `"source": "file"`} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() output %q missing %q", out, want)
		}
	}
	if strings.Contains(out, "tags") {
		t.Errorf("Format() should omit empty tags: %q", out)
	}
}

func TestJSONFormatter_Nil(t *testing.T) {
	var buf bytes.Buffer
	if err := (&JSONFormatter{}).Format(&buf, nil); err != nil {
		t.Fatalf("Format(nil) error = %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "null" {
		t.Errorf("Format(nil) = %q, want 'null'", got)
	}
}

func TestYAMLFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	data := []entry{{Name: "HOME", Value: "line1\nline2", Source: "file", Tags: []string{"a"}}}

	if err := (&YAMLFormatter{}).Format(&buf, data); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"- name: HOME", "source: file", "tags:", "- a"} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() output missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "value: |") {
		t.Errorf("multi-line value should use a block scalar:\n%s", out)
	}
}

func TestYAMLFormatter_Map(t *testing.T) {
	var buf bytes.Buffer
	if err := (&YAMLFormatter{}).Format(&buf, map[string]string{"b": "2", "a": "1"}); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if got := buf.String(); got != "a: \"1\"\nb: \"2\"\n" {
		t.Errorf("Format() = %q", got)
	}
}
