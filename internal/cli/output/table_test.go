package output

import (
	"bytes"
	"strings"
	"testing"
)

type tabled struct{}

func (tabled) Table() *Table {
	return &Table{Headers: []string{"A"}, Rows: [][]string{{"from tabler"}}}
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestTableFormatter_Structs(t *testing.T) {
	var buf bytes.Buffer
	data := []entry{
		{Name: "HOME", Value: "/home/u", Source: "file", secret: "x"},
		{Name: "LOGS", Value: "", Source: "default", Tags: []string{"a", "b"}},
	}

	if err := (&TableFormatter{}).Format(&buf, data); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	got := lines(buf.String())
	if len(got) != 3 {
		t.Fatalf("Format() produced %d lines, want 3:\n%s", len(got), buf.String())
	}
	if fields := strings.Fields(got[0]); strings.Join(fields, " ") != "NAME VALUE FROM TAGS" {
		t.Errorf("headers = %q", got[0])
	}
	if fields := strings.Fields(got[2]); strings.Join(fields, " ") != "LOGS - default a,b" {
		t.Errorf("row = %q", got[2])
	}
}

func TestTableFormatter_PointerSlice(t *testing.T) {
	var buf bytes.Buffer
	if err := (&TableFormatter{}).Format(&buf, []*entry{{Name: "HOME"}}); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.Contains(buf.String(), "HOME") {
		t.Errorf("Format() output %q missing HOME", buf.String())
	}
}

func TestTableFormatter_MapSorted(t *testing.T) {
	var buf bytes.Buffer
	data := map[string]string{"ZED": "z", "ALPHA": "a", "MID": "m"}

	if err := (&TableFormatter{}).Format(&buf, data); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	got := lines(buf.String())
	want := []string{"KEY", "ALPHA", "MID", "ZED"}
	for i, w := range want {
		if !strings.HasPrefix(got[i], w) {
			t.Errorf("line %d = %q, want prefix %q", i, got[i], w)
		}
	}
}

func TestTableFormatter_NoHeaders(t *testing.T) {
	var buf bytes.Buffer
	if err := (&TableFormatter{NoHeaders: true}).Format(&buf, []string{"one", "two"}); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if got := buf.String(); got != "one\ntwo\n" {
		t.Errorf("Format() = %q, want %q", got, "one\ntwo\n")
	}
}

func TestTableFormatter_Tabler(t *testing.T) {
	var buf bytes.Buffer
	if err := (&TableFormatter{}).Format(&buf, tabled{}); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.Contains(buf.String(), "from tabler") {
		t.Errorf("Format() = %q, want Tabler output", buf.String())
	}
}

func TestTableFormatter_Nil(t *testing.T) {
	var buf bytes.Buffer
	if err := (&TableFormatter{}).Format(&buf, nil); err != nil {
		t.Fatalf("Format(nil) error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Format(nil) = %q, want empty", buf.String())
	}
}

func TestTableFormatter_Unsupported(t *testing.T) {
	var buf bytes.Buffer
	if err := (&TableFormatter{}).Format(&buf, 42); err == nil {
		t.Error("Format(int) should fail")
	}
}

func TestTable_RenderMultiline(t *testing.T) {
	var buf bytes.Buffer
	table := &Table{}
	table.SetHeaders("KEY", "VALUE")
	table.AddRow("DESC", "first\nsecond")

	if err := table.Render(&buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	got := lines(buf.String())
	if len(got) != 2 || !strings.Contains(got[1], `first\nsecond`) {
		t.Errorf("Render() = %q, want escaped newline on one row", buf.String())
	}
}

func TestTable_RenderNoRows(t *testing.T) {
	var buf bytes.Buffer
	table := &Table{Headers: []string{"A", "B"}}
	if err := table.Render(&buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got := strings.Fields(buf.String()); len(got) != 2 {
		t.Errorf("Render() = %q, want only headers", buf.String())
	}
}
