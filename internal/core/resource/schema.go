package resource

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Transport is the service client a Pipeline talks through. Each call
// returns the body of a 200 response; any other outcome is an error.
type Transport interface {
	Get(ctx context.Context, path string) ([]byte, error)
	Post(ctx context.Context, path string, body any) ([]byte, error)
	Put(ctx context.Context, path string, body any) ([]byte, error)
}

// Column is one known field of a kind and its table heading.
type Column struct {
	Name  string
	Title string
}

// Schema describes one resource kind.
type Schema struct {
	// Kind is the user-facing plural name ("servers").
	Kind string
	// Path is the endpoint-relative resource path ("server").
	Path string
	// Key is the response field holding the collection ("servers").
	Key string
	// UniqueKey names the field an exact lookup matches on.
	UniqueKey string
	// Columns lists the known fields in display order. Empty means the
	// columns are taken from the records themselves.
	Columns []Column
	// AllowObject accepts a single object under Key and treats it as a
	// one-element collection.
	AllowObject bool
}

// Column finds a known column by case-insensitive name.
func (s Schema) Column(name string) (Column, bool) {
	for _, c := range s.Columns {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return Column{}, false
}

// columnsFor returns the schema columns, or the union of record fields in
// first-seen order when the schema declares none.
func (s Schema) columnsFor(records []Record) []Column {
	if len(s.Columns) > 0 {
		return s.Columns
	}

	var cols []Column
	seen := make(map[string]bool)
	for _, r := range records {
		for _, f := range r.Fields() {
			if seen[f.Name] {
				continue
			}
			seen[f.Name] = true
			cols = append(cols, Column{Name: f.Name, Title: titleCase(f.Name)})
		}
	}
	return cols
}

// titleCase turns "uptime_percent" into "Uptime Percent".
func titleCase(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool { return r == '_' || r == '-' })
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
