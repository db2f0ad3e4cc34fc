package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// textPrefix is the width of "NNN : " in front of every echoed line.
const textPrefix = 6

// TextWriter echoes every line and, for failures, a caret marking the
// indicated byte followed by the error code and message:
//
//	  4 : $GPGGA,...*00
//	--------------------------------------------------------------------^
//	 ErrorCode: E004 Checksum error
type TextWriter struct {
	w          *bufio.Writer
	onlyErrors bool
}

// NewTextWriter writes to w. With onlyErrors set, passing lines are skipped.
func NewTextWriter(w io.Writer, onlyErrors bool) *TextWriter {
	return &TextWriter{w: bufio.NewWriter(w), onlyErrors: onlyErrors}
}

func (t *TextWriter) Write(d Diagnostic) error {
	if d.OK && t.onlyErrors {
		return nil
	}
	if d.Source != "" {
		fmt.Fprintf(t.w, "%s:", d.Source)
	}
	fmt.Fprintf(t.w, "%3d : %s\n", d.Line, d.Input)
	if d.OK {
		return nil
	}
	if d.Offset != nil {
		fmt.Fprintf(t.w, "%s^\n", strings.Repeat("-", caretColumn(d)))
	}
	if d.Code == "" {
		_, err := fmt.Fprintf(t.w, " Error: %s\n", d.Message)
		return err
	}
	_, err := fmt.Fprintf(t.w, " ErrorCode: %s %s\n", d.Code, d.Message)
	return err
}

func caretColumn(d Diagnostic) int {
	col := *d.Offset + textPrefix
	if d.Source != "" {
		col += len(d.Source) + 1
	}
	return col
}

func (t *TextWriter) Flush() error { return t.w.Flush() }
