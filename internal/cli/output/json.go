package output

import (
	"bytes"
	"encoding/json"
	"io"
)

// jsonIndent is used for every JSON document sleurencli prints.
const jsonIndent = "    "

// JSONFormatter formats data as JSON.
type JSONFormatter struct{}

// Format formats data as indented JSON.
func (f *JSONFormatter) Format(w io.Writer, data any) error {
	if raw, ok := data.(json.RawMessage); ok {
		return WriteRawJSON(w, raw)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", jsonIndent)
	encoder.SetEscapeHTML(false)
	return encoder.Encode(data)
}

// WriteRawJSON re-indents a JSON payload without decoding it, so key
// order and number formatting survive as received.
func WriteRawJSON(w io.Writer, raw []byte) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", jsonIndent); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err := w.Write(buf.Bytes())
	return err
}
