package gff

import (
	"github.com/simonhull/gff/internal/types"
)

// Sentinel errors re-exported from internal/types. Use errors.Is to test
// which kind of failure a parse returned.
var (
	ErrEmptyLine          = types.ErrEmptyLine
	ErrWrongFieldCount    = types.ErrWrongFieldCount
	ErrInvalidInteger     = types.ErrInvalidInteger
	ErrInvalidFloat       = types.ErrInvalidFloat
	ErrInvalidStrand      = types.ErrInvalidStrand
	ErrTagWithoutValue    = types.ErrTagWithoutValue
	ErrUnsupportedVersion = types.ErrUnsupportedVersion
)

// FieldCountError is an alias to types.FieldCountError.
type FieldCountError = types.FieldCountError

// InvalidIntegerError is an alias to types.InvalidIntegerError.
type InvalidIntegerError = types.InvalidIntegerError

// InvalidFloatError is an alias to types.InvalidFloatError.
type InvalidFloatError = types.InvalidFloatError

// InvalidStrandError is an alias to types.InvalidStrandError.
type InvalidStrandError = types.InvalidStrandError

// TagWithoutValueError is an alias to types.TagWithoutValueError.
type TagWithoutValueError = types.TagWithoutValueError

// UnsupportedVersionError is an alias to types.UnsupportedVersionError.
type UnsupportedVersionError = types.UnsupportedVersionError

// LineError is an alias to types.LineError.
type LineError = types.LineError

// Warning is an alias to types.Warning.
type Warning = types.Warning
