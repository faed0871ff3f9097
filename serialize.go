package gff

import (
	"strconv"
	"strings"

	"github.com/simonhull/gff/internal/parser"
	"github.com/simonhull/gff/internal/registry"
	"github.com/simonhull/gff/internal/types"

	// Register dialect encoders.
	_ "github.com/simonhull/gff/internal/gff2"
	_ "github.com/simonhull/gff/internal/gff3"
)

// absent is written for every missing optional column.
const absent = "."

// Serialize renders an item as one line in the given dialect.
//
// The line has no terminator. Serialize never fails; an unregistered
// Version falls back to GFF3.
//
// The source column and the attributes are escaped for the dialect. The
// seqname, feature and comment text are written verbatim, so a tab or
// newline in them produces a line that will not parse back.
func Serialize(item Item, v Version) string {
	switch it := item.(type) {
	case Comment:
		return "#" + it.Text
	case Record:
		return serializeRecord(it, encoderFor(v))
	case *Comment:
		if it != nil {
			return "#" + it.Text
		}
	case *Record:
		if it != nil {
			return serializeRecord(*it, encoderFor(v))
		}
	}
	return ""
}

func encoderFor(v Version) registry.Encoder {
	if enc := registry.Get(v); enc != nil {
		return enc
	}
	return registry.Get(types.V3)
}

func serializeRecord(r Record, enc registry.Encoder) string {
	var cols [parser.FieldCount]string

	cols[parser.FieldSeqname] = r.Seqname
	cols[parser.FieldSource] = absent
	if r.Source != nil {
		cols[parser.FieldSource] = enc.EncodeSource(*r.Source)
	}
	// Feature is written verbatim in every dialect.
	cols[parser.FieldFeature] = absent
	if r.Feature != nil {
		cols[parser.FieldFeature] = *r.Feature
	}
	cols[parser.FieldStart] = strconv.FormatInt(r.Start, 10)
	cols[parser.FieldStop] = strconv.FormatInt(r.Stop, 10)
	cols[parser.FieldScore] = absent
	if r.Score != nil {
		cols[parser.FieldScore] = strconv.FormatFloat(*r.Score, 'g', -1, 64)
	}
	cols[parser.FieldStrand] = r.Strand.Symbol()
	cols[parser.FieldPhase] = absent
	if r.Phase != nil {
		cols[parser.FieldPhase] = strconv.FormatInt(*r.Phase, 10)
	}
	cols[parser.FieldAttributes] = enc.EncodeAttributes(r.Attributes)

	return strings.Join(cols[:], "\t")
}
