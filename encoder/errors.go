package encoder

import (
	"fmt"

	"github.com/jsnhynh/riscv-oom/parser"
)

// EncodingError carries source position and the offending line
// alongside an ErrorKind from the fatal taxonomy, mirroring parser.Error
// so a caller can format S2 and S3 failures identically.
type EncodingError struct {
	Pos     parser.Position
	Kind    parser.ErrorKind
	Message string
	RawLine string
	Wrapped error
}

func (e *EncodingError) Error() string {
	msg := fmt.Sprintf("%s: error: %s: %s", e.Pos, e.Kind, e.Message)
	if e.Wrapped != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Wrapped)
	}
	if e.RawLine != "" {
		msg = fmt.Sprintf("%s\n    %s", msg, e.RawLine)
	}
	return msg
}

// Unwrap supports errors.Is/As against the wrapped cause.
func (e *EncodingError) Unwrap() error {
	return e.Wrapped
}

// newEncodingError builds a fatal encoding error anchored to stmt.
func newEncodingError(stmt *parser.Statement, kind parser.ErrorKind, message string) *EncodingError {
	return &EncodingError{Pos: stmt.Pos, Kind: kind, Message: message, RawLine: stmt.Raw}
}

// wrapEncodingError wraps a lower-level error (typically from immediate
// or register parsing) with statement context. If err is already an
// EncodingError it is returned unchanged to avoid double-wrapping.
func wrapEncodingError(stmt *parser.Statement, kind parser.ErrorKind, err error) error {
	if err == nil {
		return nil
	}
	if ee, ok := err.(*EncodingError); ok {
		return ee
	}
	return &EncodingError{Pos: stmt.Pos, Kind: kind, Message: "failed to encode instruction", RawLine: stmt.Raw, Wrapped: err}
}
