package dsl

import (
	"bytes"
	"strings"

	gonmea "github.com/reoring/gonmea"
	"github.com/reoring/gonmea/internal/charclass"
)

// validate checks the field at index (a run of fields for groups) and
// returns the index of the next unconsumed field.
func (f Field) validate(line []byte, fields []gonmea.FieldSlice, index int) (int, error) {
	if f.kind == KindGroup {
		return f.validateGroup(line, fields, index)
	}

	checksum := len(fields) - 1
	if index >= checksum {
		return index, gonmea.ErrorAt(gonmea.E015, fields[checksum].Offset)
	}
	fs := fields[index]
	v, off := fs.Bytes(line), fs.Offset

	var err error
	switch f.kind {
	case KindStatus:
		err = validateStatus(v, off)
	case KindLatitude, KindLongitude:
		err = validateLatLong(v, off, f.length)
	case KindTime:
		err = validateTime(v, off)
	case KindLiteral:
		err = validateLiteral(v, off, f.literals, f.optional)
	case KindVariableNumber:
		err = validateVariableNumber(v, off)
	case KindFixedNumber:
		err = validateFixed(v, off, f.length, charclass.IsDigit, gonmea.E018)
	case KindFixedHex:
		err = validateFixed(v, off, f.length, charclass.IsHex, gonmea.E021)
	case KindVariableHex:
		err = validateVariableHex(v, off)
	case KindFixedAlpha:
		err = validateFixedAlpha(v, off, f.length)
	case KindVariableText:
		if len(v) > f.length {
			err = gonmea.ErrorAt(gonmea.E013, off+f.length)
		}
	case KindFixedText:
		if len(v) != f.length {
			err = gonmea.ErrorAt(gonmea.E013, off)
		}
	case KindFixedSixBit:
		if len(v) != f.length {
			err = gonmea.ErrorAt(gonmea.E013, off)
		} else {
			err = validateSixBit(v, off)
		}
	case KindVariableSixBit:
		err = validateSixBit(v, off)
	default:
		panic("dsl: uninitialized field")
	}
	if err != nil {
		return index, err
	}
	return index + 1, nil
}

// validateGroup consumes whole repetitions of the child fields against the
// remaining data fields.
func (f Field) validateGroup(line []byte, fields []gonmea.FieldSlice, index int) (int, error) {
	checksum := len(fields) - 1
	switch f.iteration {
	case ZeroOrOneTimes:
		if index < checksum && !fields[index].Empty() {
			return f.validateOnce(line, fields, index)
		}
		return index, nil
	case OneOrMoreTimes:
		if index >= checksum {
			return index, gonmea.ErrorAt(gonmea.E015, fields[checksum].Offset)
		}
		fallthrough
	case ZeroOrMoreTimes:
		for index < checksum {
			next, err := f.validateOnce(line, fields, index)
			if err != nil {
				return next, err
			}
			if next == index {
				// a repetition that consumes nothing would never end
				break
			}
			index = next
		}
		return index, nil
	default:
		for i := 0; i < f.count; i++ {
			var err error
			if index, err = f.validateOnce(line, fields, index); err != nil {
				return index, err
			}
		}
		return index, nil
	}
}

func (f Field) validateOnce(line []byte, fields []gonmea.FieldSlice, index int) (int, error) {
	for _, c := range f.fields {
		var err error
		if index, err = c.validate(line, fields, index); err != nil {
			return index, err
		}
	}
	return index, nil
}

func validateStatus(v []byte, off int) error {
	switch {
	case len(v) == 0:
		return gonmea.ErrorAt(gonmea.E016, off)
	case len(v) != 1:
		return gonmea.ErrorAt(gonmea.E013, off)
	case v[0] != 'A' && v[0] != 'V':
		return gonmea.ErrorAt(gonmea.E017, off)
	}
	return nil
}

// validateLatLong accepts n digits, optionally followed by '.' and at least
// one more digit.
func validateLatLong(v []byte, off, n int) error {
	if len(v) < n {
		return gonmea.ErrorAt(gonmea.E013, off)
	}
	for i := 0; i < n; i++ {
		if !charclass.IsDigit(v[i]) {
			return gonmea.ErrorAt(gonmea.E018, off+i)
		}
	}
	if len(v) == n {
		return nil
	}
	if v[n] != '.' {
		return gonmea.ErrorAt(gonmea.E018, off+n)
	}
	if len(v) == n+1 {
		return gonmea.ErrorAt(gonmea.E018, off+n+1)
	}
	for i := n + 1; i < len(v); i++ {
		if !charclass.IsDigit(v[i]) {
			return gonmea.ErrorAt(gonmea.E018, off+i)
		}
	}
	return nil
}

// validateTime accepts an empty field or hhmmss with an optional fraction.
func validateTime(v []byte, off int) error {
	if len(v) == 0 {
		return nil
	}
	for i := 0; i < 6; i++ {
		if i >= len(v) || !charclass.IsDigit(v[i]) {
			return gonmea.ErrorAt(gonmea.E019, off+i)
		}
	}
	if len(v) > 6 && v[6] != '.' {
		return gonmea.ErrorAt(gonmea.E020, off+6)
	}
	for i := 7; i < len(v); i++ {
		if !charclass.IsDigit(v[i]) {
			return gonmea.ErrorAt(gonmea.E019, off+i)
		}
	}
	return nil
}

func validateLiteral(v []byte, off int, set string, optional bool) error {
	if len(v) == 0 {
		if optional {
			return nil
		}
		return gonmea.ErrorAt(gonmea.E016, off)
	}
	if strings.IndexByte(set, v[0]) < 0 {
		return gonmea.ErrorAt(gonmea.E017, off)
	}
	return nil
}

func validateVariableNumber(v []byte, off int) error {
	i := 0
	if len(v) > 0 && v[0] == '-' {
		i++
	}
	for i < len(v) && charclass.IsDigit(v[i]) {
		i++
	}
	if i == len(v) {
		return nil
	}
	if v[i] != '.' {
		return gonmea.ErrorAt(gonmea.E018, off+i)
	}
	for i++; i < len(v); i++ {
		if !charclass.IsDigit(v[i]) {
			return gonmea.ErrorAt(gonmea.E018, off+i)
		}
	}
	return nil
}

// validateFixed checks an optionally signed field of exactly n characters
// of the given class. Empty fields pass (non-strict mode).
func validateFixed(v []byte, off, n int, class func(byte) bool, code gonmea.ErrorCode) error {
	if len(v) == 0 {
		return nil
	}
	body, base := v, off
	if v[0] == '-' {
		if len(v) != n+1 {
			return gonmea.ErrorAt(gonmea.E013, off)
		}
		body, base = v[1:], off+1
	} else if len(v) != n {
		return gonmea.ErrorAt(gonmea.E013, off)
	}
	for i, ch := range body {
		if !class(ch) {
			return gonmea.ErrorAt(code, base+i)
		}
	}
	return nil
}

func validateVariableHex(v []byte, off int) error {
	i := 0
	if bytes.HasPrefix(v, []byte{'-'}) {
		i++
	}
	for ; i < len(v); i++ {
		if !charclass.IsHex(v[i]) {
			return gonmea.ErrorAt(gonmea.E021, off+i)
		}
	}
	return nil
}

func validateFixedAlpha(v []byte, off, n int) error {
	if len(v) != n {
		return gonmea.ErrorAt(gonmea.E013, off)
	}
	for i, ch := range v {
		if !charclass.IsAlpha(ch) {
			return gonmea.ErrorAt(gonmea.E014, off+i)
		}
	}
	return nil
}

func validateSixBit(v []byte, off int) error {
	for i, ch := range v {
		if !charclass.IsSixBit(ch) {
			return gonmea.ErrorAt(gonmea.E022, off+i)
		}
	}
	return nil
}
