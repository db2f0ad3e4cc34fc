package gonmea

// Grammar validates the data fields of one sentence. fields is the full
// field list of the element: header, data fields and checksum field.
type Grammar interface {
	Validate(line []byte, fields []FieldSlice) error
}

// Catalog maps a three-character sentence formatter to its Grammar.
// Implementations must be safe for concurrent reads.
type Catalog interface {
	Lookup(formatter string) (Grammar, bool)
}

// Nmea parses lines and keeps the outcome of the last call.
//
// An Nmea value is not safe for concurrent use; independent values may parse
// concurrently against the same Catalog.
type Nmea struct {
	catalog    Catalog
	opt        Options
	code       ErrorCode
	indication int
	elements   []LineElement
}

// New returns an Nmea that resolves sentence formatters through cat.
func New(cat Catalog, opts ...Options) *Nmea {
	return &Nmea{catalog: cat, opt: pickOptions(opts), indication: -1}
}

// Parse validates line. The outcome is available through ErrorCode and
// Indication. The returned error is the same *Error (nil on success), or
// ErrEmptyLine for a zero-length buffer, in which case ErrorCode reports
// E033 without an indication.
func (n *Nmea) Parse(line []byte) error {
	n.code, n.indication, n.elements = E000, -1, nil
	if len(line) == 0 {
		n.code = E033
		return ErrEmptyLine
	}
	elems, err := parse(line, n.catalog, n.opt)
	if err != nil {
		if e, ok := AsError(err); ok {
			n.code, n.indication = e.Code, e.Offset
		}
		return err
	}
	n.elements = elems
	return nil
}

// ErrorCode returns the code of the last Parse call (E000 on success).
func (n *Nmea) ErrorCode() ErrorCode { return n.code }

// Indication returns the byte offset of the offending byte of the last
// Parse call, if one is known.
func (n *Nmea) Indication() (int, bool) {
	if n.indication < 0 {
		return 0, false
	}
	return n.indication, true
}

// Elements returns the tag blocks and sentence of the last successful Parse.
// The slices borrow from the line passed to Parse.
func (n *Nmea) Elements() []LineElement { return n.elements }
