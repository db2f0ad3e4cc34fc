package dsl

import (
	"strconv"
	"strings"
)

// Kind enumerates the closed set of field validators.
type Kind int

const (
	KindStatus Kind = iota + 1
	KindLatitude
	KindLongitude
	KindTime
	KindLiteral
	KindVariableNumber
	KindFixedNumber
	KindFixedHex
	KindVariableHex
	KindFixedAlpha
	KindVariableText
	KindFixedText
	KindFixedSixBit
	KindVariableSixBit
	KindGroup
)

// Iteration controls how often a repeatable group runs its child fields.
type Iteration int

const (
	ZeroOrOneTimes Iteration = iota
	ZeroOrMoreTimes
	OneOrMoreTimes
	FixedTimes
)

// DefaultTextLength is the maximum length of a variable text field when no
// explicit limit is given.
const DefaultTextLength = 82

// Field is one node of a sentence grammar. The zero value is not a valid
// field; use the constructors below. Fields are immutable once built and a
// group exclusively owns its children.
type Field struct {
	kind      Kind
	length    int    // fixed length, digit count or maximum length
	literals  string // allowed first bytes of a literal field
	optional  bool   // literal may be empty
	iteration Iteration
	count     int // repetitions of a FixedTimes group
	fields    []Field
}

// Kind reports the variant of f.
func (f Field) Kind() Kind { return f.kind }

// Status is a one-byte 'A' or 'V' field that must not be empty.
func Status() Field { return Field{kind: KindStatus} }

// Latitude is llll.ll: four integer digits and an optional fraction.
func Latitude() Field { return Field{kind: KindLatitude, length: 4} }

// Longitude is yyyyy.yy: five integer digits and an optional fraction.
func Longitude() Field { return Field{kind: KindLongitude, length: 5} }

// Time is hhmmss.ss.
func Time() Field { return Field{kind: KindTime} }

// Literal requires the first byte of the field to be one of set.
func Literal(set string) Field {
	mustNonEmpty("Literal", set)
	return Field{kind: KindLiteral, literals: set}
}

// OptionalLiteral is Literal that also accepts an empty field.
func OptionalLiteral(set string) Field {
	mustNonEmpty("OptionalLiteral", set)
	return Field{kind: KindLiteral, literals: set, optional: true}
}

// VariableNumber is x.x with an optional leading '-'.
func VariableNumber() Field { return Field{kind: KindVariableNumber} }

// FixedNumber is exactly n digits, optionally signed. Empty is accepted.
func FixedNumber(n int) Field { return Field{kind: KindFixedNumber, length: mustPositive("FixedNumber", n)} }

// FixedHex is exactly n hex digits, optionally signed. Empty is accepted.
func FixedHex(n int) Field { return Field{kind: KindFixedHex, length: mustPositive("FixedHex", n)} }

// VariableHex is h--h with an optional leading '-'.
func VariableHex() Field { return Field{kind: KindVariableHex} }

// FixedAlpha is exactly n ASCII letters.
func FixedAlpha(n int) Field { return Field{kind: KindFixedAlpha, length: mustPositive("FixedAlpha", n)} }

// VariableText accepts any content up to DefaultTextLength bytes.
func VariableText() Field { return VariableTextMax(DefaultTextLength) }

// VariableTextMax accepts any content up to max bytes.
func VariableTextMax(max int) Field {
	return Field{kind: KindVariableText, length: mustPositive("VariableTextMax", max)}
}

// FixedText accepts any content of exactly n bytes.
func FixedText(n int) Field { return Field{kind: KindFixedText, length: mustPositive("FixedText", n)} }

// FixedSixBit is exactly n six-bit characters.
func FixedSixBit(n int) Field {
	return Field{kind: KindFixedSixBit, length: mustPositive("FixedSixBit", n)}
}

// VariableSixBit is any number of six-bit characters.
func VariableSixBit() Field { return Field{kind: KindVariableSixBit} }

// ZeroOrOne runs fields once when a non-empty data field remains.
func ZeroOrOne(fields ...Field) Field { return group(ZeroOrOneTimes, 0, fields) }

// ZeroOrMore repeats fields until the data fields are exhausted.
func ZeroOrMore(fields ...Field) Field { return group(ZeroOrMoreTimes, 0, fields) }

// OneOrMore is ZeroOrMore that requires at least one remaining data field.
func OneOrMore(fields ...Field) Field { return group(OneOrMoreTimes, 0, fields) }

// Repeat runs fields exactly n times.
func Repeat(n int, fields ...Field) Field {
	return group(FixedTimes, mustPositive("Repeat", n), fields)
}

func group(it Iteration, count int, fields []Field) Field {
	if len(fields) == 0 {
		panic("dsl: repeatable group needs at least one field")
	}
	owned := make([]Field, len(fields))
	copy(owned, fields)
	return Field{kind: KindGroup, iteration: it, count: count, fields: owned}
}

func mustPositive(name string, n int) int {
	if n <= 0 {
		panic("dsl: " + name + " length must be positive")
	}
	return n
}

func mustNonEmpty(name, set string) {
	if set == "" {
		panic("dsl: " + name + " needs at least one allowed byte")
	}
}

// String renders the field in the notation of the NMEA 0183 field tables.
func (f Field) String() string {
	switch f.kind {
	case KindStatus:
		return "A"
	case KindLatitude:
		return "llll.ll"
	case KindLongitude:
		return "yyyyy.yy"
	case KindTime:
		return "hhmmss.ss"
	case KindLiteral:
		s := strings.Join(strings.Split(f.literals, ""), "|")
		if f.optional {
			return "[" + s + "]"
		}
		return s
	case KindVariableNumber:
		return "x.x"
	case KindFixedNumber:
		return strings.Repeat("x", f.length)
	case KindFixedHex:
		return strings.Repeat("h", f.length)
	case KindVariableHex:
		return "h--h"
	case KindFixedAlpha:
		return strings.Repeat("a", f.length)
	case KindVariableText:
		if f.length != DefaultTextLength {
			return "c--c(" + strconv.Itoa(f.length) + ")"
		}
		return "c--c"
	case KindFixedText:
		return strings.Repeat("c", f.length)
	case KindFixedSixBit:
		return strings.Repeat("s", f.length)
	case KindVariableSixBit:
		return "s--s"
	case KindGroup:
		parts := make([]string, len(f.fields))
		for i, c := range f.fields {
			parts[i] = c.String()
		}
		body := "(" + strings.Join(parts, ",") + ")"
		switch f.iteration {
		case ZeroOrOneTimes:
			return body + "?"
		case ZeroOrMoreTimes:
			return body + "*"
		case OneOrMoreTimes:
			return body + "+"
		default:
			return body + "{" + strconv.Itoa(f.count) + "}"
		}
	}
	return "?"
}
