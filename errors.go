package gonmea

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/reoring/gonmea/i18n"
)

// ErrorCode identifies the first violation found in a line. The numeric
// values are stable; E000 means no error.
type ErrorCode int

const (
	E000 ErrorCode = iota // No error
	E001                  // Illegal start of sentence
	E002                  // Illegal address field
	E003                  // Illegal end of sentence, expected checksum field
	E004                  // Checksum error
	E005                  // Unknown talker ID
	E006                  // Illegal character in address field
	E007                  // Undefined character
	E008                  // Illegal character in data field
	E009                  // Unknown sentence formatter
	E010                  // Illegal character in talker id
	E011                  // Illegal character in proprietary talker
	E012                  // Illegal character in sentence formatter
	E013                  // Illegal length of field
	E014                  // Illegal character in alpha field
	E015                  // Illegal number of fields for sentence
	E016                  // Mandatory field can't be empty
	E017                  // Illegal character literal
	E018                  // Illegal character in numeric field
	E019                  // Illegal character in time field
	E020                  // Illegal character in time field, expected period
	E021                  // Illegal character in hex field
	E022                  // Illegal character in six-bit field
	E023                  // Illegal length of sentence
	E024                  // Expected CR
	E025                  // Expected LF
	E026                  // Expected tag block end
	E027                  // Unknown parameter code
	E028                  // Expected colon
	E029                  // Identification field too long
	E030                  // Illegal character in identification field
	E031                  // Expected digit
	E032                  // Expected hyphen in sentence group field
	E033                  // Unexpected end of line
)

// NumErrorCodes is the size of the closed ErrorCode set.
const NumErrorCodes = int(E033) + 1

// String renders the code as "E004".
func (c ErrorCode) String() string { return fmt.Sprintf("E%03d", int(c)) }

// Description returns the human-readable message of the current translator.
func (c ErrorCode) Description() string { return i18n.T(c.String(), nil) }

// Describe is the error-message lookup used by diagnostics renderers.
func Describe(c ErrorCode) string { return c.Description() }

// ParseErrorCode accepts "E004", "e4" or "4".
func ParseErrorCode(s string) (ErrorCode, bool) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "E"), "e")
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n >= NumErrorCodes {
		return E000, false
	}
	return ErrorCode(n), true
}

// Category groups error codes by the stage of the grammar they violate.
type Category int

const (
	CategoryNone Category = iota
	CategoryFraming
	CategoryLexical
	CategoryIdentifier
	CategoryFieldShape
	CategoryCount
)

func (c Category) String() string {
	switch c {
	case CategoryFraming:
		return "framing"
	case CategoryLexical:
		return "lexical"
	case CategoryIdentifier:
		return "identifier"
	case CategoryFieldShape:
		return "field_shape"
	case CategoryCount:
		return "field_count"
	default:
		return "none"
	}
}

// Category classifies the code. Unknown codes map to CategoryNone.
func (c ErrorCode) Category() Category {
	switch c {
	case E001, E003, E004, E023, E024, E025, E026, E033:
		return CategoryFraming
	case E007, E008:
		return CategoryLexical
	case E002, E005, E006, E009, E010, E011, E012, E027:
		return CategoryIdentifier
	case E013, E014, E017, E018, E019, E020, E021, E022, E029, E030, E031, E032:
		return CategoryFieldShape
	case E015, E016:
		return CategoryCount
	default:
		return CategoryNone
	}
}

// Error is the single failure reported for a line.
type Error struct {
	Code ErrorCode
	// Offset is the byte offset into the line of the offending byte
	// (-1 when unknown). It may equal len(line) when a terminator is missing.
	Offset int
}

func (e *Error) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("%s: %s", e.Code, e.Code.Description())
	}
	return fmt.Sprintf("%s at offset %d: %s", e.Code, e.Offset, e.Code.Description())
}

// HasOffset reports whether the error carries a position.
func (e *Error) HasOffset() bool { return e.Offset >= 0 }

// ErrEmptyLine is returned when parsing is requested on a zero-length
// buffer. It is a caller contract violation, not a line error.
var ErrEmptyLine = errors.New("gonmea: empty line")

// AsError extracts an *Error from err using errors.As internally.
func AsError(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// CodeOf returns E000 for nil and the code of an *Error otherwise. Errors
// outside the taxonomy report ok=false.
func CodeOf(err error) (code ErrorCode, ok bool) {
	if err == nil {
		return E000, true
	}
	if e, found := AsError(err); found {
		return e.Code, true
	}
	return E000, false
}
