package gonmea

import (
	"github.com/reoring/gonmea/internal/charclass"
)

// maxIdentification is the longest value allowed for the d: and s: tag
// block parameters.
const maxIdentification = 15

// byteAt returns line[i] when i lies inside f and 0 otherwise, so that a
// short header fails the character checks at the missing position.
func byteAt(line []byte, f FieldSlice, i int) byte {
	if i < 0 || i >= f.Len {
		return 0
	}
	return line[f.Offset+i]
}

func isIdentChar(ch byte) bool { return charclass.IsDigit(ch) || charclass.IsUpper(ch) }

// checkContents validates the character classes of every element.
func checkContents(line []byte, elems []LineElement) error {
	for _, el := range elems {
		var err error
		if el.Kind == TagBlock {
			err = checkTagBlock(line, el)
		} else {
			err = checkSentence(line, el)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func checkTagBlock(line []byte, el LineElement) error {
	for _, f := range el.Fields[:len(el.Fields)-1] {
		if f.Len < 2 || line[f.Offset+1] != ':' {
			return ErrorAt(E028, f.Offset+1)
		}
		value := FieldSlice{Offset: f.Offset + 2, Len: f.Len - 2}
		var err error
		switch line[f.Offset] {
		case 'c', 'n', 'r':
			err = checkPositiveInteger(line, value)
		case 'd', 's':
			err = checkIdentification(line, value)
		case 'g':
			err = checkSentenceGrouping(line, value)
		case 't':
			// free text, already restricted to defined characters
		default:
			err = ErrorAt(E027, f.Offset)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func checkSentence(line []byte, el LineElement) error {
	header := el.Header()
	switch el.SentenceKind {
	case Parametric, Encapsulated:
		if err := checkTalkerID(line, header, 1); err != nil {
			return err
		}
		if err := checkFormatter(line, header, 3); err != nil {
			return err
		}
		for _, f := range el.Data() {
			if err := checkDataField(line, f, false); err != nil {
				return err
			}
		}
	case Query:
		if err := checkTalkerID(line, header, 1); err != nil {
			return err
		}
		if err := checkTalkerID(line, header, 3); err != nil {
			return err
		}
		if len(el.Fields) != 3 {
			return ErrorAt(E015, el.Checksum().Offset)
		}
		if err := checkFormatter(line, el.Fields[1], 0); err != nil {
			return err
		}
	case Proprietary:
		for i := 2; i < 5; i++ {
			if !charclass.IsUpper(byteAt(line, header, i)) {
				return ErrorAt(E011, header.Offset+2)
			}
		}
		for _, f := range el.Data() {
			if err := checkDataField(line, f, true); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkTalkerID(line []byte, f FieldSlice, at int) error {
	if isIdentChar(byteAt(line, f, at)) && isIdentChar(byteAt(line, f, at+1)) {
		return nil
	}
	return ErrorAt(E010, f.Offset+at)
}

func checkFormatter(line []byte, f FieldSlice, at int) error {
	for i := at; i < at+3; i++ {
		if !isIdentChar(byteAt(line, f, i)) {
			return ErrorAt(E012, f.Offset+at)
		}
	}
	return nil
}

// checkDataField rejects reserved characters. Proprietary sentences may
// additionally carry '^'.
func checkDataField(line []byte, f FieldSlice, proprietary bool) error {
	for i, ch := range f.Bytes(line) {
		if !charclass.IsReserved(ch) {
			continue
		}
		if proprietary && ch == '^' {
			continue
		}
		return ErrorAt(E008, f.Offset+i)
	}
	return nil
}

func checkPositiveInteger(line []byte, f FieldSlice) error {
	for i, ch := range f.Bytes(line) {
		if !charclass.IsDigit(ch) {
			return ErrorAt(E031, f.Offset+i)
		}
	}
	return nil
}

func checkIdentification(line []byte, f FieldSlice) error {
	if f.Len > maxIdentification {
		return ErrorAt(E029, f.Offset)
	}
	for i, ch := range f.Bytes(line) {
		if !charclass.IsAlnum(ch) {
			return ErrorAt(E030, f.Offset+i)
		}
	}
	return nil
}

// checkSentenceGrouping accepts "N-N-N" where every N has at least one
// digit: sentence number, total sentences and group id.
func checkSentenceGrouping(line []byte, f FieldSlice) error {
	v := f.Bytes(line)
	n := len(v)
	if n == 0 {
		return ErrorAt(E032, f.Offset)
	}
	i := 0
	for part := 0; part < 2; part++ {
		first := i
		for i < n && charclass.IsDigit(v[i]) {
			i++
		}
		if i == n {
			return ErrorAt(E032, f.Offset+i)
		}
		if i == first {
			return ErrorAt(E031, f.Offset+i)
		}
		if v[i] != '-' {
			return ErrorAt(E032, f.Offset+i)
		}
		i++
		if i == n {
			return ErrorAt(E032, f.Offset+i)
		}
	}
	first := i
	for i < n && charclass.IsDigit(v[i]) {
		i++
	}
	if i == first || i < n {
		return ErrorAt(E031, f.Offset+i)
	}
	return nil
}
