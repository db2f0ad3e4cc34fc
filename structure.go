package gonmea

import (
	"github.com/reoring/gonmea/internal/charclass"
)

// maxEnvelope is the largest allowed distance between the first header byte
// and the last checksum byte (NMEA 0183 v4.00 5.2.4).
const maxEnvelope = 79

// Scan runs the structural stage only: it splits line into tag blocks and
// at most one sentence, verifies framing and checksums and returns the
// elements. The returned slices borrow from line.
func Scan(line []byte, opts ...Options) ([]LineElement, error) {
	if len(line) == 0 {
		return nil, ErrEmptyLine
	}
	s := scanner{line: line, opt: pickOptions(opts)}
	return s.scanLine()
}

// scanner holds the cursor of one structural pass. sum is the running XOR
// checksum of the element being scanned.
type scanner struct {
	line []byte
	pos  int
	sum  byte
	opt  Options
}

func isMarker(ch byte) bool { return ch == '$' || ch == '!' || ch == '\\' }

func (s *scanner) scanLine() ([]LineElement, error) {
	// Noise before the first marker is skipped without inspection.
	for ; ; s.pos++ {
		if s.pos >= len(s.line) {
			return nil, ErrorNoPos(E033)
		}
		if isMarker(s.line[s.pos]) {
			break
		}
	}

	var elems []LineElement
	for s.pos < len(s.line) && s.line[s.pos] == '\\' {
		el, err := s.scanElement()
		if err != nil {
			return nil, err
		}
		elems = append(elems, el)
		if s.pos >= len(s.line) || s.line[s.pos] != '\\' {
			return nil, ErrorAt(E026, s.pos)
		}
		s.pos++
	}

	if s.pos < len(s.line) && (s.line[s.pos] == '$' || s.line[s.pos] == '!') {
		el, err := s.scanElement()
		if err != nil {
			return nil, err
		}
		elems = append(elems, el)
	}

	if s.pos >= len(s.line) || s.line[s.pos] != '\r' {
		return nil, ErrorAt(E024, s.pos)
	}
	s.pos++
	if s.pos >= len(s.line) || s.line[s.pos] != '\n' {
		return nil, ErrorAt(E025, s.pos)
	}
	return elems, nil
}

// incr moves one byte forward and folds it into the checksum.
func (s *scanner) incr(count int) error {
	for i := 0; i < count; i++ {
		s.pos++
		if s.pos >= len(s.line) {
			return ErrorNoPos(E033)
		}
		ch := s.line[s.pos]
		if !charclass.IsDefined(ch) {
			return ErrorAt(E007, s.pos)
		}
		s.sum ^= ch
	}
	return nil
}

// scanElement parses one tag block or sentence starting at the marker under
// the cursor and leaves the cursor one past the checksum field.
func (s *scanner) scanElement() (LineElement, error) {
	var el LineElement
	start := s.pos
	s.sum = 0

	switch s.line[s.pos] {
	case '\\':
		el.Kind = TagBlock
	case '!':
		el.Kind = Sentence
		el.SentenceKind = Encapsulated
		if err := s.incr(5); err != nil {
			return el, err
		}
	case '$':
		el.Kind = Sentence
		if err := s.incr(1); err != nil {
			return el, err
		}
		if s.line[s.pos] == 'P' {
			el.SentenceKind = Proprietary
			if err := s.incr(3); err != nil {
				return el, err
			}
		} else {
			if err := s.incr(5); err != nil {
				return el, err
			}
			if s.line[s.pos-1] == 'Q' {
				el.SentenceKind = Query
			} else {
				el.SentenceKind = Parametric
			}
		}
	default:
		return el, ErrorAt(E001, s.pos)
	}

	// Data fields run up to the '*' that opens the checksum field.
	for {
		ch := s.line[s.pos]
		if ch == ',' {
			el.Fields = s.appendSpan(el.Fields, start, s.pos)
			start = s.pos
		} else if ch == '*' {
			s.sum ^= '*'
			el.Fields = s.appendSpan(el.Fields, start, s.pos)
			start = s.pos
			break
		}
		s.pos++
		if s.pos >= len(s.line) {
			return el, ErrorNoPos(E003)
		}
		next := s.line[s.pos]
		if !charclass.IsDefined(next) {
			return el, ErrorAt(E007, s.pos)
		}
		s.sum ^= next
	}

	star := s.pos
	s.pos += 3
	if s.pos > len(s.line) {
		return el, ErrorAt(E003, star)
	}
	el.Fields = s.appendSpan(el.Fields, start, s.pos)

	header := el.Fields[0]
	if (star+2)-header.Offset > maxEnvelope {
		return el, ErrorAt(E023, header.Offset)
	}

	hi := s.line[star+1] != charclass.HexDigit(s.sum>>4)
	lo := s.line[star+2] != charclass.HexDigit(s.sum&0x0F)
	mismatch := hi && lo
	if s.opt.StrictChecksum {
		mismatch = hi || lo
	}
	if mismatch {
		return el, ErrorAt(E004, star)
	}
	return el, nil
}

// appendSpan records the field between begin and end. A span that starts at
// a separator (',' or '\') excludes the separator; a lone separator becomes
// an empty field positioned at the next boundary.
func (s *scanner) appendSpan(fields []FieldSlice, begin, end int) []FieldSlice {
	if ch := s.line[begin]; ch == ',' || ch == '\\' {
		if end-begin < 2 {
			return append(fields, FieldSlice{Offset: begin + 1})
		}
		return append(fields, FieldSlice{Offset: begin + 1, Len: end - begin - 1})
	}
	return append(fields, FieldSlice{Offset: begin, Len: end - begin})
}
