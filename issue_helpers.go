package gonmea

// ErrorAt creates an *Error pointing at the given byte offset.
func ErrorAt(code ErrorCode, offset int) *Error {
	return &Error{Code: code, Offset: offset}
}

// ErrorNoPos creates an *Error without a position.
func ErrorNoPos(code ErrorCode) *Error {
	return &Error{Code: code, Offset: -1}
}
