// Package output provides output formatting for sleurencli.
//
// This package handles all CLI output formatting:
//
//   - formatter.go: Formatter interface and factory
//   - table.go: bordered and plain table rendering
//   - csv.go: delimited output with a header row
//   - json.go: JSON output, including re-indenting raw service payloads
//   - yaml.go: YAML output formatting
//   - progress.go: item progress for bulk operations
//
// Machine-readable formats (json, csv) go to stdout only; progress and
// diagnostics go to stderr.
package output
