package report

import (
	"errors"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
)

// JSONWriter emits one JSON document per diagnostic.
type JSONWriter struct {
	enc        *json.Encoder
	onlyErrors bool
}

// NewJSONWriter writes NDJSON to w.
func NewJSONWriter(w io.Writer, onlyErrors bool) *JSONWriter {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &JSONWriter{enc: enc, onlyErrors: onlyErrors}
}

func (j *JSONWriter) Write(d Diagnostic) error {
	if d.OK && j.onlyErrors {
		return nil
	}
	return j.enc.Encode(d)
}

// Flush is a no-op: every Write reaches the underlying writer.
func (j *JSONWriter) Flush() error { return nil }

// ReadJSON decodes an NDJSON stream written by JSONWriter and calls fn for
// each diagnostic.
func ReadJSON(r io.Reader, fn func(Diagnostic) error) error {
	dec := json.NewDecoder(r)
	for n := 1; ; n++ {
		var d Diagnostic
		if err := dec.Decode(&d); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("report: record %d: %w", n, err)
		}
		if err := fn(d); err != nil {
			return err
		}
	}
}
