// Package gff3 implements the GFF3 dialect encoder.
//
// GFF3 writes attributes as "tag=value,value" pairs joined by ';' and
// percent-encodes the source column, every tag and every value. Output from
// this encoder parses back to the same attributes.
package gff3

import (
	"strings"

	"github.com/simonhull/gff/internal/escape"
	"github.com/simonhull/gff/internal/registry"
	"github.com/simonhull/gff/internal/types"
)

func init() {
	registry.Register(types.V3, Encoder{})
}

// Encoder implements registry.Encoder for GFF3.
type Encoder struct{}

// EncodeSource percent-encodes the source column.
func (Encoder) EncodeSource(source string) string {
	return escape.PercentEncode(source)
}

// EncodeAttributes renders the ninth column.
func (Encoder) EncodeAttributes(attrs types.Attributes) string {
	var b strings.Builder
	for i, attr := range attrs {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(escape.PercentEncode(attr.Tag))
		b.WriteByte('=')
		for j, v := range attr.Values {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteString(escape.PercentEncode(v))
		}
	}
	return b.String()
}
