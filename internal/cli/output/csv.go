package output

import (
	"encoding/csv"
	"fmt"
	"io"
)

// CSVFormatter writes a Table as delimited text, header row first.
type CSVFormatter struct {
	Delimiter rune
	NoHeaders bool
}

// Format formats a *Table (or Table) as CSV.
func (f *CSVFormatter) Format(w io.Writer, data any) error {
	var table *Table
	switch v := data.(type) {
	case nil:
		return nil
	case *Table:
		table = v
	case Table:
		table = &v
	default:
		t, err := toTable(data)
		if err != nil {
			return fmt.Errorf("csv output: %w", err)
		}
		table = t
	}

	cw := csv.NewWriter(w)
	if f.Delimiter != 0 {
		cw.Comma = f.Delimiter
	} else {
		cw.Comma = DefaultDelimiter
	}

	if !f.NoHeaders && len(table.Headers) > 0 {
		if err := cw.Write(table.Headers); err != nil {
			return err
		}
	}
	if err := cw.WriteAll(table.Rows); err != nil {
		return err
	}
	return cw.Error()
}
