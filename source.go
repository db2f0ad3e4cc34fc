package gonmea

import (
	"bufio"
	"bytes"
	"context"
	"io"
)

// maxLineBytes bounds a single physical line read from a stream. NMEA lines
// are at most 82 bytes; tag blocks and noise can make them longer.
const maxLineBytes = 64 * 1024

// LineReader yields LF-terminated lines from an io.Reader. Terminators are
// kept so that CR/LF framing can be validated; a final line without LF is
// returned as-is.
type LineReader struct {
	sc   *bufio.Scanner
	line int
}

// NewLineReader wraps r.
func NewLineReader(r io.Reader) *LineReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 256), maxLineBytes)
	sc.Split(scanRawLines)
	return &LineReader{sc: sc}
}

// Next returns the next line and its 1-based number. The returned slice is
// only valid until the following call. It returns io.EOF at the end.
func (r *LineReader) Next() ([]byte, int, error) {
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return nil, r.line, err
		}
		return nil, r.line, io.EOF
	}
	r.line++
	return r.sc.Bytes(), r.line, nil
}

func scanRawLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return i + 1, data[:i+1], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// LineFunc receives every line read by ValidateStream together with its
// validation result. Returning a non-nil error stops the stream.
type LineFunc func(lineNo int, line []byte, err error) error

// ValidateStream validates every line of r against cat. The context is
// checked between lines; blocking reads are not interrupted.
func ValidateStream(ctx context.Context, r io.Reader, cat Catalog, fn LineFunc, opts ...Options) error {
	opt := pickOptions(opts)
	lr := NewLineReader(r)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, n, err := lr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		_, verr := parse(line, cat, opt)
		if err := fn(n, line, verr); err != nil {
			return err
		}
	}
}
