package gonmea

// Validate runs the structural, character-class and grammar stages on line
// and returns the first violation as an *Error, or nil.
func Validate(line []byte, cat Catalog, opts ...Options) error {
	if len(line) == 0 {
		return ErrEmptyLine
	}
	_, err := parse(line, cat, pickOptions(opts))
	return err
}

// Parse is Validate that also returns the line elements on success.
func Parse(line []byte, cat Catalog, opts ...Options) ([]LineElement, error) {
	if len(line) == 0 {
		return nil, ErrEmptyLine
	}
	return parse(line, cat, pickOptions(opts))
}

func parse(line []byte, cat Catalog, opt Options) ([]LineElement, error) {
	s := scanner{line: line, opt: opt}
	elems, err := s.scanLine()
	if err != nil {
		return nil, err
	}
	if err := checkContents(line, elems); err != nil {
		return nil, err
	}
	if err := dispatch(line, elems, cat); err != nil {
		return nil, err
	}
	return elems, nil
}
