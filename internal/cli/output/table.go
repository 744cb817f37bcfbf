package output

import (
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"
	"unicode/utf8"
)

// Table represents tabular data.
type Table struct {
	Headers []string
	Rows    [][]string
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// Render renders the table with borders:
//
//	+----+------+
//	| ID | Name |
//	+----+------+
//	| 1  | web  |
//	+----+------+
func (t *Table) Render(w io.Writer) error {
	widths := t.widths()
	sep := separator(widths)

	var b strings.Builder
	b.WriteString(sep)
	if len(t.Headers) > 0 {
		writeLine(&b, t.Headers, widths)
		b.WriteString(sep)
	}
	for _, row := range t.Rows {
		writeLine(&b, row, widths)
	}
	if len(t.Rows) > 0 {
		b.WriteString(sep)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func (t *Table) widths() []int {
	n := len(t.Headers)
	for _, row := range t.Rows {
		if len(row) > n {
			n = len(row)
		}
	}

	widths := make([]int, n)
	measure := func(cells []string) {
		for i, c := range cells {
			if l := utf8.RuneCountInString(c); l > widths[i] {
				widths[i] = l
			}
		}
	}
	measure(t.Headers)
	for _, row := range t.Rows {
		measure(row)
	}
	return widths
}

func separator(widths []int) string {
	var b strings.Builder
	b.WriteByte('+')
	for _, w := range widths {
		b.WriteString(strings.Repeat("-", w+2))
		b.WriteByte('+')
	}
	b.WriteByte('\n')
	return b.String()
}

func writeLine(b *strings.Builder, cells []string, widths []int) {
	b.WriteByte('|')
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		b.WriteByte(' ')
		b.WriteString(cell)
		b.WriteString(strings.Repeat(" ", w-utf8.RuneCountInString(cell)+1))
		b.WriteByte('|')
	}
	b.WriteByte('\n')
}

// TableFormatter formats data as a bordered table.
type TableFormatter struct {
	NoHeaders bool
}

// Format formats data as a table.
// Supports: *Table, Table, struct (field/value rows), map (key/value rows).
func (f *TableFormatter) Format(w io.Writer, data any) error {
	if data == nil {
		return nil
	}

	var table *Table
	switch v := data.(type) {
	case *Table:
		table = v
	case Table:
		table = &v
	default:
		var err error
		if table, err = toTable(data); err != nil {
			return err
		}
	}

	if f.NoHeaders {
		headless := *table
		headless.Headers = nil
		return headless.Render(w)
	}
	return table.Render(w)
}

// toTable converts a struct or map into a two-column table.
func toTable(data any) (*Table, error) {
	v := reflect.ValueOf(data)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return &Table{}, nil
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Map:
		table := &Table{Headers: []string{"Key", "Value"}}
		iter := v.MapRange()
		for iter.Next() {
			table.AddRow(formatValue(iter.Key()), formatValue(iter.Value()))
		}
		sort.Slice(table.Rows, func(i, j int) bool { return table.Rows[i][0] < table.Rows[j][0] })
		return table, nil
	case reflect.Struct:
		table := &Table{Headers: []string{"Field", "Value"}}
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() || field.Tag.Get("table") == "-" {
				continue
			}
			table.AddRow(fieldName(field), formatValue(v.Field(i)))
		}
		return table, nil
	default:
		return nil, fmt.Errorf("unsupported type for table output: %s", v.Kind())
	}
}

// fieldName prefers the yaml, then json tag name.
func fieldName(field reflect.StructField) string {
	for _, key := range []string{"yaml", "json"} {
		if tag := field.Tag.Get(key); tag != "" {
			if name, _, _ := strings.Cut(tag, ","); name != "" && name != "-" {
				return name
			}
		}
	}
	return field.Name
}

// formatValue formats a reflect.Value for display.
func formatValue(v reflect.Value) string {
	if !v.IsValid() {
		return ""
	}

	if v.Kind() == reflect.Interface || v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return ""
		}
		v = v.Elem()
	}

	if s, ok := v.Interface().(fmt.Stringer); ok {
		return s.String()
	}

	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Float32, reflect.Float64:
		return fmt.Sprintf("%g", v.Float())
	case reflect.Slice, reflect.Array:
		parts := make([]string, v.Len())
		for i := range parts {
			parts[i] = formatValue(v.Index(i))
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprintf("%v", v.Interface())
	}
}
