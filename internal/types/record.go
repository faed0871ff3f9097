// Package types provides the core data structures for GFF annotation lines.
//
// This package defines the Record, Comment, Item, Strand, Attribute and
// Version types shared by the parser, the attribute tokenizer and the
// per-version encoders.
package types

// Item is one parsed annotation line: either a Comment or a Record.
//
// The set of implementations is closed. Consumers switch on the concrete
// type:
//
//	switch it := item.(type) {
//	case types.Comment:
//		fmt.Println("comment:", it.Text)
//	case types.Record:
//		fmt.Println("feature on", it.Seqname)
//	}
type Item interface {
	isItem()
}

// Comment is a line that started with '#'.
//
// Text is the line with exactly one leading '#' removed. Any further '#'
// characters (as in "##gff-version 3") are kept.
type Comment struct {
	Text string
}

func (Comment) isItem() {}

// Record is one feature line.
//
// Optional positional fields are nil when the raw column was exactly ".".
// Start and Stop are not range checked and not ordered against each other.
type Record struct {
	Source     *string
	Feature    *string
	Score      *float64
	Phase      *int64
	Seqname    string
	Attributes Attributes
	Start      int64
	Stop       int64
	Strand     Strand
}

func (Record) isItem() {}

// Len returns the inclusive length of the feature span (Stop - Start + 1).
// The result may be zero or negative for records with inverted coordinates.
func (r Record) Len() int64 {
	return r.Stop - r.Start + 1
}

// Equal reports whether two records carry the same field values.
func (r Record) Equal(other Record) bool {
	return r.Seqname == other.Seqname &&
		equalPtr(r.Source, other.Source) &&
		equalPtr(r.Feature, other.Feature) &&
		r.Start == other.Start &&
		r.Stop == other.Stop &&
		equalPtr(r.Score, other.Score) &&
		r.Strand == other.Strand &&
		equalPtr(r.Phase, other.Phase) &&
		r.Attributes.Equal(other.Attributes)
}

func equalPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
