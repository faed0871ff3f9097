package gff

import (
	"github.com/simonhull/gff/internal/attributes"
	"github.com/simonhull/gff/internal/parser"
)

// Parse decodes one annotation line.
//
// The line must not include its terminator. The result is a Comment for
// lines starting with '#' and a Record for feature lines.
//
// Errors are typed and unwrap to one of the Err* sentinels:
//
//	item, err := gff.Parse(line)
//	switch {
//	case errors.Is(err, gff.ErrEmptyLine):
//		// skip blank lines
//	case err != nil:
//		return err
//	}
//
// Parse is safe for concurrent use.
func Parse(line string) (Item, error) {
	return parser.ParseLine(line)
}

// ParseAttributes tokenizes a ninth-column attribute string.
//
// Example:
//
//	attrs, err := gff.ParseAttributes("ID=gene1;Name=foo,bar")
//	// attrs[1] == gff.Attribute{Tag: "Name", Values: []string{"foo", "bar"}}
func ParseAttributes(s string) (Attributes, error) {
	return attributes.Parse(s)
}
