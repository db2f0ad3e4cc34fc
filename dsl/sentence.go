package dsl

import (
	"strings"

	gonmea "github.com/reoring/gonmea"
)

// SentenceGrammar is the field grammar of one sentence formatter.
type SentenceGrammar struct {
	formatter string
	fields    []Field
}

var _ gonmea.Grammar = (*SentenceGrammar)(nil)

// Sentence builds the grammar of formatter from an ordered field list.
func Sentence(formatter string, fields ...Field) *SentenceGrammar {
	if len(formatter) != 3 {
		panic("dsl: formatter must be three characters: " + formatter)
	}
	owned := make([]Field, len(fields))
	copy(owned, fields)
	return &SentenceGrammar{formatter: formatter, fields: owned}
}

// Formatter returns the three-character formatter this grammar describes.
func (s *SentenceGrammar) Formatter() string { return s.formatter }

// Fields returns a copy of the top-level field list.
func (s *SentenceGrammar) Fields() []Field { return append([]Field(nil), s.fields...) }

// Validate runs the grammar over the fields of a sentence element. fields[0]
// is the header and the last entry is the checksum.
func (s *SentenceGrammar) Validate(line []byte, fields []gonmea.FieldSlice) error {
	_, err := s.Consume(line, fields)
	return err
}

// Consume is Validate that also reports the index of the first data field
// the grammar did not consume.
func (s *SentenceGrammar) Consume(line []byte, fields []gonmea.FieldSlice) (int, error) {
	if len(fields) < 2 {
		if len(fields) == 1 {
			return 0, gonmea.ErrorAt(gonmea.E015, fields[0].Offset)
		}
		return 0, gonmea.ErrorNoPos(gonmea.E015)
	}
	index := 1
	for _, f := range s.fields {
		var err error
		if index, err = f.validate(line, fields, index); err != nil {
			return index, err
		}
	}
	return index, nil
}

// String renders the grammar as "FMT: f1,f2,...".
func (s *SentenceGrammar) String() string {
	parts := make([]string, len(s.fields))
	for i, f := range s.fields {
		parts[i] = f.String()
	}
	return s.formatter + ": " + strings.Join(parts, ",")
}
