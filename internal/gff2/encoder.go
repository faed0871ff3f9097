// Package gff2 implements the GFF2 dialect encoder.
//
// GFF2 writes attributes as "tag value,value" pairs joined by ';' with
// every value (and the source column) in double quotes. Tags are written
// as-is. The library does not parse this layout back, so GFF2 output is
// best-effort.
package gff2

import (
	"strings"

	"github.com/simonhull/gff/internal/escape"
	"github.com/simonhull/gff/internal/registry"
	"github.com/simonhull/gff/internal/types"
)

func init() {
	registry.Register(types.V2, Encoder{})
}

// Encoder implements registry.Encoder for GFF2.
type Encoder struct{}

// EncodeSource quotes the source column.
func (Encoder) EncodeSource(source string) string {
	return escape.Quote(source)
}

// EncodeAttributes renders the ninth column.
func (Encoder) EncodeAttributes(attrs types.Attributes) string {
	var b strings.Builder
	for i, attr := range attrs {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(attr.Tag)
		b.WriteByte(' ')
		for j, v := range attr.Values {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteString(escape.Quote(v))
		}
	}
	return b.String()
}
