package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/reoring/gonmea/dsl"
	"github.com/reoring/gonmea/internal/charclass"
	"gopkg.in/yaml.v3"
)

// DefinitionError reports an invalid sentence definition with the position
// of the offending YAML node.
type DefinitionError struct {
	Line int
	Col  int
	Msg  string
}

func (e *DefinitionError) Error() string {
	return fmt.Sprintf("catalog: %d:%d: %s", e.Line, e.Col, e.Msg)
}

func errAt(n *yaml.Node, format string, args ...any) error {
	return &DefinitionError{Line: n.Line, Col: n.Column, Msg: fmt.Sprintf(format, args...)}
}

// LoadFile reads sentence definitions from a YAML file.
func LoadFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	defer f.Close()
	entries, err := LoadYAML(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return entries, nil
}

// LoadYAML decodes a (possibly multi-document) YAML stream of sentence
// definitions:
//
//	sentences:
//	  - formatter: GLL
//	    description: Geographic position, latitude/longitude
//	    fields:
//	      - latitude
//	      - literal: NS
//	      - longitude
//	      - literal: EW
//	      - time
//	      - status
//	      - zero_or_one: [literal: ADEMSN]
//
// Scalar field kinds: status, latitude, longitude, time, variable_number,
// variable_hex, variable_text, variable_six_bit. Mapping field kinds take
// one key: literal, optional_literal, fixed_number, fixed_hex, fixed_alpha,
// fixed_text, fixed_six_bit, variable_text (maximum length), zero_or_one,
// zero_or_more, one_or_more (field lists) and repeat ({count, fields}).
//
// A formatter defined twice in the stream is an error.
func LoadYAML(r io.Reader) ([]Entry, error) {
	dec := yaml.NewDecoder(r)
	seen := make(map[string]*yaml.Node)
	var out []Entry
	for {
		var root yaml.Node
		if err := dec.Decode(&root); err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return nil, fmt.Errorf("catalog: %w", err)
		}
		if len(root.Content) == 0 {
			continue
		}
		entries, err := decodeDocument(root.Content[0], seen)
		if err != nil {
			return nil, err
		}
		out = append(out, entries...)
	}
}

func decodeDocument(n *yaml.Node, seen map[string]*yaml.Node) ([]Entry, error) {
	if n.Kind != yaml.MappingNode {
		return nil, errAt(n, "document must be a mapping")
	}
	var out []Entry
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if k.Value != "sentences" {
			return nil, errAt(k, "unknown key %q", k.Value)
		}
		if v.Kind != yaml.SequenceNode {
			return nil, errAt(v, "sentences must be a list")
		}
		for _, item := range v.Content {
			e, at, err := decodeSentence(item)
			if err != nil {
				return nil, err
			}
			f := e.Grammar.Formatter()
			if first, dup := seen[f]; dup {
				return nil, errAt(at, "duplicate formatter %q (first at %d:%d)", f, first.Line, first.Column)
			}
			seen[f] = at
			out = append(out, e)
		}
	}
	return out, nil
}

// decodeSentence also returns the formatter node for error positions.
func decodeSentence(n *yaml.Node) (Entry, *yaml.Node, error) {
	if n.Kind != yaml.MappingNode {
		return Entry{}, nil, errAt(n, "sentence must be a mapping")
	}
	var (
		formatter, fieldsNode *yaml.Node
		description           string
	)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		switch k.Value {
		case "formatter":
			formatter = v
		case "description":
			if v.Kind != yaml.ScalarNode {
				return Entry{}, nil, errAt(v, "description must be a string")
			}
			description = v.Value
		case "fields":
			fieldsNode = v
		default:
			return Entry{}, nil, errAt(k, "unknown sentence key %q", k.Value)
		}
	}
	if formatter == nil {
		return Entry{}, nil, errAt(n, "sentence without formatter")
	}
	if !validFormatter(formatter) {
		return Entry{}, nil, errAt(formatter, "formatter must be three upper case letters or digits, got %q", formatter.Value)
	}
	if fieldsNode == nil {
		return Entry{}, nil, errAt(n, "sentence %s without fields", formatter.Value)
	}
	fields, err := decodeFields(fieldsNode)
	if err != nil {
		return Entry{}, nil, err
	}
	return Entry{Grammar: dsl.Sentence(formatter.Value, fields...), Description: description}, formatter, nil
}

func validFormatter(n *yaml.Node) bool {
	if n.Kind != yaml.ScalarNode || len(n.Value) != 3 {
		return false
	}
	for i := 0; i < 3; i++ {
		if ch := n.Value[i]; !charclass.IsUpper(ch) && !charclass.IsDigit(ch) {
			return false
		}
	}
	return true
}

func decodeFields(n *yaml.Node) ([]dsl.Field, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, errAt(n, "fields must be a list")
	}
	out := make([]dsl.Field, 0, len(n.Content))
	for _, item := range n.Content {
		f, err := decodeField(item)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

var scalarFields = map[string]func() dsl.Field{
	"status":           dsl.Status,
	"latitude":         dsl.Latitude,
	"longitude":        dsl.Longitude,
	"time":             dsl.Time,
	"variable_number":  dsl.VariableNumber,
	"variable_hex":     dsl.VariableHex,
	"variable_text":    dsl.VariableText,
	"variable_six_bit": dsl.VariableSixBit,
}

var sizedFields = map[string]func(int) dsl.Field{
	"fixed_number":  dsl.FixedNumber,
	"fixed_hex":     dsl.FixedHex,
	"fixed_alpha":   dsl.FixedAlpha,
	"fixed_text":    dsl.FixedText,
	"fixed_six_bit": dsl.FixedSixBit,
	"variable_text": dsl.VariableTextMax,
}

var groupFields = map[string]func(...dsl.Field) dsl.Field{
	"zero_or_one":  dsl.ZeroOrOne,
	"zero_or_more": dsl.ZeroOrMore,
	"one_or_more":  dsl.OneOrMore,
}

func decodeField(n *yaml.Node) (dsl.Field, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		if ctor, ok := scalarFields[n.Value]; ok {
			return ctor(), nil
		}
		return dsl.Field{}, errAt(n, "unknown field kind %q", n.Value)
	case yaml.MappingNode:
		if len(n.Content) != 2 {
			return dsl.Field{}, errAt(n, "field mapping must have exactly one key")
		}
		k, v := n.Content[0], n.Content[1]
		switch k.Value {
		case "literal", "optional_literal":
			if v.Kind != yaml.ScalarNode || v.Value == "" {
				return dsl.Field{}, errAt(v, "%s needs a non-empty set of bytes", k.Value)
			}
			if k.Value == "literal" {
				return dsl.Literal(v.Value), nil
			}
			return dsl.OptionalLiteral(v.Value), nil
		case "repeat":
			return decodeRepeat(v)
		}
		if ctor, ok := sizedFields[k.Value]; ok {
			size, err := positiveInt(v)
			if err != nil {
				return dsl.Field{}, err
			}
			return ctor(size), nil
		}
		if ctor, ok := groupFields[k.Value]; ok {
			children, err := decodeFields(v)
			if err != nil {
				return dsl.Field{}, err
			}
			if len(children) == 0 {
				return dsl.Field{}, errAt(v, "%s needs at least one field", k.Value)
			}
			return ctor(children...), nil
		}
		return dsl.Field{}, errAt(k, "unknown field kind %q", k.Value)
	default:
		return dsl.Field{}, errAt(n, "field must be a name or a single-key mapping")
	}
}

func decodeRepeat(n *yaml.Node) (dsl.Field, error) {
	if n.Kind != yaml.MappingNode {
		return dsl.Field{}, errAt(n, "repeat must be a mapping with count and fields")
	}
	var count int
	var children []dsl.Field
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		var err error
		switch k.Value {
		case "count":
			count, err = positiveInt(v)
		case "fields":
			children, err = decodeFields(v)
		default:
			err = errAt(k, "unknown repeat key %q", k.Value)
		}
		if err != nil {
			return dsl.Field{}, err
		}
	}
	if count == 0 {
		return dsl.Field{}, errAt(n, "repeat without count")
	}
	if len(children) == 0 {
		return dsl.Field{}, errAt(n, "repeat needs at least one field")
	}
	return dsl.Repeat(count, children...), nil
}

func positiveInt(n *yaml.Node) (int, error) {
	if n.Kind != yaml.ScalarNode {
		return 0, errAt(n, "expected a positive integer")
	}
	v, err := strconv.Atoi(n.Value)
	if err != nil || v <= 0 {
		return 0, errAt(n, "expected a positive integer, got %q", n.Value)
	}
	return v, nil
}
