package gff

import (
	"github.com/simonhull/gff/internal/types"
)

// Item is an alias to types.Item. An Item is either a Comment or a Record.
type Item = types.Item

// Comment is an alias to types.Comment.
type Comment = types.Comment

// Record is an alias to types.Record.
type Record = types.Record

// Attribute is an alias to types.Attribute.
type Attribute = types.Attribute

// Attributes is an alias to types.Attributes.
type Attributes = types.Attributes

// Strand is an alias to types.Strand.
type Strand = types.Strand

// Re-export all strand constants.
const (
	StrandNotStranded = types.StrandNotStranded
	StrandPlus        = types.StrandPlus
	StrandMinus       = types.StrandMinus
	StrandUnknown     = types.StrandUnknown
)

// ParseStrand is a wrapper around types.ParseStrand.
func ParseStrand(s string) (Strand, error) {
	return types.ParseStrand(s)
}

// String returns a pointer to s, for building records with a source or
// feature:
//
//	rec := gff.Record{Seqname: "chr1", Source: gff.String("ensembl")}
func String(s string) *string { return &s }

// Float returns a pointer to f, for building records with a score.
func Float(f float64) *float64 { return &f }

// Int returns a pointer to n, for building records with a phase.
func Int(n int64) *int64 { return &n }
