// Package report renders validation results for people and machines.
//
//   - TextWriter prints each line with a caret under the offending byte.
//   - JSONWriter emits one JSON object per line (NDJSON).
//   - Summary aggregates results by error code.
package report

import (
	"bytes"
	"errors"

	gonmea "github.com/reoring/gonmea"
)

// Diagnostic is the outcome of validating one line.
type Diagnostic struct {
	Line     int    `json:"line"`
	Input    string `json:"input"`
	OK       bool   `json:"ok"`
	Code     string `json:"code"`
	Category string `json:"category,omitempty"`
	Offset   *int   `json:"offset,omitempty"`
	Message  string `json:"message,omitempty"`
	Source   string `json:"source,omitempty"`
}

// New builds the diagnostic for line lineNo. err is the result of
// gonmea.Validate; errors outside the NMEA error taxonomy are kept as the
// message with an empty code.
func New(lineNo int, line []byte, err error) Diagnostic {
	d := Diagnostic{
		Line:  lineNo,
		Input: string(bytes.TrimRight(line, "\r\n")),
		Code:  gonmea.E000.String(),
	}
	if err == nil {
		d.OK = true
		return d
	}
	if errors.Is(err, gonmea.ErrEmptyLine) {
		d.Code = gonmea.E033.String()
		d.Category = gonmea.E033.Category().String()
		d.Message = gonmea.E033.Description()
		return d
	}
	e, ok := gonmea.AsError(err)
	if !ok {
		d.Code = ""
		d.Message = err.Error()
		return d
	}
	d.Code = e.Code.String()
	d.Category = e.Code.Category().String()
	d.Message = e.Code.Description()
	if e.HasOffset() {
		off := e.Offset
		d.Offset = &off
	}
	return d
}

// WithSource tags d with the name of its input (file, device).
func (d Diagnostic) WithSource(name string) Diagnostic {
	d.Source = name
	return d
}

// Writer consumes diagnostics in input order.
type Writer interface {
	Write(d Diagnostic) error
	Flush() error
}
