package output

import (
	"fmt"
	"io"
	"strings"
)

// Format represents the output format.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatCSV   Format = "csv"
	FormatYAML  Format = "yaml"
)

// DefaultDelimiter is the CSV field separator.
const DefaultDelimiter = ';'

// Formatter formats data for output.
type Formatter interface {
	Format(w io.Writer, data any) error
}

// ParseFormat validates a format name. An empty name means table.
func ParseFormat(s string, allowed ...Format) (Format, error) {
	if s == "" {
		return FormatTable, nil
	}
	f := Format(strings.ToLower(s))
	if len(allowed) == 0 {
		allowed = []Format{FormatTable, FormatJSON, FormatCSV, FormatYAML}
	}
	for _, a := range allowed {
		if f == a {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported output format %q", s)
}

// NewFormatter creates a formatter for the given format. noHeaders applies
// to csv and table output.
func NewFormatter(format Format, delimiter rune, noHeaders bool) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{}
	case FormatYAML:
		return &YAMLFormatter{}
	case FormatCSV:
		if delimiter == 0 {
			delimiter = DefaultDelimiter
		}
		return &CSVFormatter{Delimiter: delimiter, NoHeaders: noHeaders}
	default:
		return &TableFormatter{NoHeaders: noHeaders}
	}
}
