package resource

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/sleuren/sleurencli/internal/cli/output"
)

// View is the processed result of one pipeline run.
type View struct {
	Schema   Schema
	Criteria Criteria
	// Records is the filtered, ordered and limited selection.
	Records []Record
	// Raw is the full collection as received.
	Raw json.RawMessage
}

// RenderOptions controls how a View is printed.
type RenderOptions struct {
	Format    output.Format
	Delimiter rune
	// Columns holds selectors: "name" shows a column, "0name" hides it.
	Columns []string
	// HideIDs hides the id column unless a selector asks for it.
	HideIDs bool
	// NoHeaders drops the header row of csv and table output.
	NoHeaders bool
}

// Render prints v to w. It never modifies the View.
func Render(w io.Writer, v View, opts RenderOptions) error {
	switch opts.Format {
	case output.FormatJSON:
		return renderJSON(w, v)
	default:
		return output.NewFormatter(opts.Format, opts.Delimiter, opts.NoHeaders).Format(w, buildTable(v, opts))
	}
}

// renderJSON prints the raw collection when nothing was selected. With
// criteria it prints the selection, or the single object for a matched
// unique-key lookup.
func renderJSON(w io.Writer, v View) error {
	if v.Criteria.Empty() {
		raw := v.Raw
		if len(raw) == 0 {
			raw = json.RawMessage("[]")
		}
		return output.WriteRawJSON(w, raw)
	}

	f := &output.JSONFormatter{}
	if v.Criteria.ID != "" && len(v.Records) == 1 {
		return f.Format(w, v.Records[0])
	}
	records := v.Records
	if records == nil {
		records = []Record{}
	}
	return f.Format(w, records)
}

func buildTable(v View, opts RenderOptions) *output.Table {
	cols := VisibleColumns(v.Schema.columnsFor(v.Records), opts.Columns, opts.HideIDs)

	t := &output.Table{}
	for _, c := range cols {
		t.Headers = append(t.Headers, c.Title)
	}
	for _, r := range v.Records {
		row := make([]string, len(cols))
		for i, c := range cols {
			row[i] = r.Text(c.Name)
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// VisibleColumns applies column selectors to cols. Selectors are matched
// case-insensitively and applied in order, so a later one wins.
func VisibleColumns(cols []Column, selectors []string, hideIDs bool) []Column {
	hidden := make(map[string]bool)
	if hideIDs {
		hidden["id"] = true
	}

	for _, sel := range selectors {
		sel = strings.ToLower(strings.TrimSpace(sel))
		if sel == "" {
			continue
		}
		if name, ok := strings.CutPrefix(sel, "0"); ok && name != "" {
			hidden[name] = true
			continue
		}
		delete(hidden, sel)
	}

	out := make([]Column, 0, len(cols))
	for _, c := range cols {
		if !hidden[strings.ToLower(c.Name)] {
			out = append(out, c)
		}
	}
	return out
}
