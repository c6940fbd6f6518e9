package output

import (
	"fmt"
	"io"
	"reflect"
	"slices"
	"strings"
	"text/tabwriter"
)

// Tabler is implemented by values that render themselves as a table.
type Tabler interface {
	Table() *Table
}

// TableFormatter formats data as an aligned text table.
type TableFormatter struct {
	NoHeaders bool
}

// Format formats data as a table.
// Supports Tabler, *Table, slices of structs and maps.
func (f *TableFormatter) Format(w io.Writer, data any) error {
	if data == nil {
		return nil
	}

	var table *Table
	switch d := data.(type) {
	case Tabler:
		table = d.Table()
	case *Table:
		table = d
	default:
		var err error
		if table, err = toTable(reflect.ValueOf(data)); err != nil {
			return err
		}
	}

	return table.RenderWithOptions(w, f.NoHeaders)
}

func toTable(v reflect.Value) (*Table, error) {
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		return sliceToTable(v)
	case reflect.Map:
		return mapToTable(v), nil
	default:
		return nil, fmt.Errorf("cannot render %s as a table", v.Kind())
	}
}

func sliceToTable(v reflect.Value) (*Table, error) {
	elemType := v.Type().Elem()
	if elemType.Kind() == reflect.Pointer {
		elemType = elemType.Elem()
	}
	if elemType.Kind() != reflect.Struct {
		table := &Table{Headers: []string{"VALUE"}}
		for i := 0; i < v.Len(); i++ {
			table.AddRow(formatValue(v.Index(i)))
		}
		return table, nil
	}

	var fields []int
	table := &Table{}
	for i := 0; i < elemType.NumField(); i++ {
		field := elemType.Field(i)
		if !field.IsExported() {
			continue
		}
		name := headerName(field)
		if name == "" {
			continue
		}
		table.Headers = append(table.Headers, name)
		fields = append(fields, i)
	}

	for i := 0; i < v.Len(); i++ {
		elem := v.Index(i)
		if elem.Kind() == reflect.Pointer {
			elem = elem.Elem()
		}
		row := make([]string, 0, len(fields))
		for _, idx := range fields {
			row = append(row, formatValue(elem.Field(idx)))
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

// headerName picks the column header: the table tag, then the json tag,
// then the field name. "-" in the table tag hides the column.
func headerName(field reflect.StructField) string {
	if tag := field.Tag.Get("table"); tag != "" {
		if tag == "-" {
			return ""
		}
		return tag
	}
	name := field.Name
	if jsonTag, _, _ := strings.Cut(field.Tag.Get("json"), ","); jsonTag != "" && jsonTag != "-" {
		name = jsonTag
	}
	return strings.ToUpper(name)
}

func mapToTable(v reflect.Value) *Table {
	rows := make([][]string, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		rows = append(rows, []string{formatValue(iter.Key()), formatValue(iter.Value())})
	}
	slices.SortFunc(rows, func(a, b []string) int { return strings.Compare(a[0], b[0]) })
	return &Table{Headers: []string{"KEY", "VALUE"}, Rows: rows}
}

func formatValue(v reflect.Value) string {
	if !v.IsValid() {
		return ""
	}
	if v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return ""
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.String:
		if v.String() == "" {
			return "-"
		}
		return v.String()
	case reflect.Slice, reflect.Array:
		parts := make([]string, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			parts = append(parts, formatValue(v.Index(i)))
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprint(v.Interface())
	}
}

// Table represents tabular data.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Render renders the table to the writer.
func (t *Table) Render(w io.Writer) error {
	return t.RenderWithOptions(w, false)
}

// RenderWithOptions renders the table with options.
// Embedded newlines are shown as \n so multi-line values keep one row.
func (t *Table) RenderWithOptions(w io.Writer, noHeaders bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if !noHeaders && len(t.Headers) > 0 {
		fmt.Fprintln(tw, strings.Join(t.Headers, "\t"))
	}
	for _, row := range t.Rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = strings.ReplaceAll(cell, "\n", `\n`)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}

	return tw.Flush()
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// SetHeaders sets the table headers.
func (t *Table) SetHeaders(headers ...string) {
	t.Headers = headers
}
