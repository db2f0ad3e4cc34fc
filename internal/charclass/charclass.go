// Package charclass classifies the bytes of an NMEA 0183 line.
//
// All predicates are pure and read only package-level tables that are never
// written after initialization.
package charclass

// reserved marks <LF> <CR> ! $ * , \ ^ ~ <DEL>.
var reserved = [128]bool{
	'\n': true,
	'\r': true,
	'!':  true,
	'$':  true,
	'*':  true,
	',':  true,
	'\\': true,
	'^':  true,
	'~':  true,
	0x7F: true,
}

// IsReserved reports whether ch is one of the reserved characters.
func IsReserved(ch byte) bool {
	return ch < 128 && reserved[ch]
}

// IsValid reports whether ch is printable (32..127) and not reserved.
func IsValid(ch byte) bool {
	return 32 <= ch && ch <= 127 && !reserved[ch]
}

// IsDefined reports whether ch is a valid or a reserved character.
func IsDefined(ch byte) bool {
	return ch <= 127 && (ch >= 32 || ch == '\n' || ch == '\r')
}

// IsSixBit reports whether ch belongs to the six-bit binary representation
// used by encapsulated sentences.
func IsSixBit(ch byte) bool {
	return (48 <= ch && ch <= 87) || (96 <= ch && ch <= 119)
}

func IsDigit(ch byte) bool { return '0' <= ch && ch <= '9' }
func IsUpper(ch byte) bool { return 'A' <= ch && ch <= 'Z' }
func IsLower(ch byte) bool { return 'a' <= ch && ch <= 'z' }
func IsAlpha(ch byte) bool { return IsUpper(ch) || IsLower(ch) }
func IsAlnum(ch byte) bool { return IsDigit(ch) || IsAlpha(ch) }

// IsHex accepts both upper and lower case hex digits.
func IsHex(ch byte) bool {
	return IsDigit(ch) || ('a' <= ch && ch <= 'f') || ('A' <= ch && ch <= 'F')
}

// HexDigit renders a nibble as '0'..'9' or 'A'..'F'. It panics for values
// above 15.
func HexDigit(v byte) byte {
	switch {
	case v < 10:
		return '0' + v
	case v < 16:
		return 'A' + (v - 10)
	}
	panic("charclass: nibble out of range")
}
