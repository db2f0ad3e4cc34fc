package gonmea

// ElementKind distinguishes tag blocks from sentences.
type ElementKind int

const (
	TagBlock ElementKind = iota // \...\ metadata prefix
	Sentence                    // $... or !... message
)

func (k ElementKind) String() string {
	if k == TagBlock {
		return "tag_block"
	}
	return "sentence"
}

// SentenceKind is meaningful only for elements of kind Sentence.
type SentenceKind int

const (
	Parametric   SentenceKind = iota // $ttsss
	Query                            // $ttllQ
	Proprietary                      // $Pmmm
	Encapsulated                     // !ttsss
)

func (k SentenceKind) String() string {
	switch k {
	case Query:
		return "query"
	case Proprietary:
		return "proprietary"
	case Encapsulated:
		return "encapsulated"
	default:
		return "parametric"
	}
}

// FieldSlice is a borrowed view into the parsed line. It never owns bytes:
// Bytes must be called with the same buffer that was parsed.
type FieldSlice struct {
	Offset int
	Len    int
}

// Bytes returns the slice of line covered by the field.
func (f FieldSlice) Bytes(line []byte) []byte { return line[f.Offset : f.Offset+f.Len] }

// Empty reports whether the field has no content. An empty field still has
// an Offset: the position of the separator that follows it.
func (f FieldSlice) Empty() bool { return f.Len == 0 }

// End is the offset one past the last byte.
func (f FieldSlice) End() int { return f.Offset + f.Len }

// LineElement is one tag block or sentence of a line.
//
// Fields holds at least two entries: Fields[0] is the header field,
// Fields[len-1] the checksum field ("*HH") and everything in between the
// data fields in textual order. For tag blocks the header field is the
// first tag field.
type LineElement struct {
	Kind         ElementKind
	SentenceKind SentenceKind
	Fields       []FieldSlice
}

// Header returns the header field.
func (e LineElement) Header() FieldSlice { return e.Fields[0] }

// Checksum returns the checksum field.
func (e LineElement) Checksum() FieldSlice { return e.Fields[len(e.Fields)-1] }

// Data returns the data fields (possibly none).
func (e LineElement) Data() []FieldSlice { return e.Fields[1 : len(e.Fields)-1] }

// Options adjusts validation.
type Options struct {
	// StrictChecksum rejects a checksum field when either hex digit differs.
	// By default a mismatch is reported only when both digits differ.
	StrictChecksum bool
}

func pickOptions(opts []Options) Options {
	var opt Options
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	return opt
}
