package types

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per failure kind. Every typed error below unwraps to
// exactly one of them, so callers can branch with errors.Is.
var (
	ErrEmptyLine          = errors.New("empty line")
	ErrWrongFieldCount    = errors.New("wrong field count")
	ErrInvalidInteger     = errors.New("invalid integer")
	ErrInvalidFloat       = errors.New("invalid float")
	ErrInvalidStrand      = errors.New("invalid strand")
	ErrTagWithoutValue    = errors.New("tag without value")
	ErrUnsupportedVersion = errors.New("unsupported version")
)

// FieldCountError is returned when a data line does not split into exactly
// nine tab-separated columns.
type FieldCountError struct {
	Got int
}

func (e *FieldCountError) Error() string {
	return fmt.Sprintf("wrong field count: expected 9 tab-separated fields, got %d", e.Got)
}

func (e *FieldCountError) Unwrap() error { return ErrWrongFieldCount }

// InvalidIntegerError is returned when start, stop or phase is not a base-10
// integer.
type InvalidIntegerError struct {
	Field string // "start", "stop" or "phase"
	Text  string
}

func (e *InvalidIntegerError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid integer in %s: %q", e.Field, e.Text)
	}
	return fmt.Sprintf("invalid integer: %q", e.Text)
}

func (e *InvalidIntegerError) Unwrap() error { return ErrInvalidInteger }

// InvalidFloatError is returned when the score column is not a float literal.
type InvalidFloatError struct {
	Text string
}

func (e *InvalidFloatError) Error() string {
	return fmt.Sprintf("invalid float in score: %q", e.Text)
}

func (e *InvalidFloatError) Unwrap() error { return ErrInvalidFloat }

// InvalidStrandError is returned when the strand column is not one of
// "+", "-", "." or "?".
type InvalidStrandError struct {
	Text string
}

func (e *InvalidStrandError) Error() string {
	return fmt.Sprintf("invalid strand: %q", e.Text)
}

func (e *InvalidStrandError) Unwrap() error { return ErrInvalidStrand }

// TagWithoutValueError is returned when the attribute tokenizer finds no '='
// for the tag starting at Offset.
type TagWithoutValueError struct {
	Text   string // the full attribute column
	Offset int    // byte offset where the unterminated tag starts
}

func (e *TagWithoutValueError) Error() string {
	return fmt.Sprintf("tag without value at offset %d: %q", e.Offset, e.Text[e.Offset:])
}

func (e *TagWithoutValueError) Unwrap() error { return ErrTagWithoutValue }

// UnsupportedVersionError is returned when a dialect name cannot be decoded.
type UnsupportedVersionError struct {
	Text string
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("unsupported GFF version %q (want 2 or 3)", e.Text)
}

func (e *UnsupportedVersionError) Unwrap() error { return ErrUnsupportedVersion }

// LineError attaches a 1-based line number to a parse failure in a batch.
type LineError struct {
	Err  error
	Text string
	Line int
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// Warning represents a line that was skipped during a lenient batch parse.
//
// Warnings are collected in Document.Warnings when skip-invalid mode is on.
type Warning struct {
	// Err is the parse failure for the line.
	Err error

	// Text is the raw line that was rejected.
	Text string

	// Line is the 1-based position of the line in the batch.
	Line int
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	return fmt.Sprintf("line %d: %v", w.Line, w.Err)
}
