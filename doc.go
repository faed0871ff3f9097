// Package gff parses and serializes GFF2 and GFF3 genomic annotation lines.
//
// Each line of a GFF file is either a comment (starting with '#') or a
// tab-separated feature record with nine columns: seqname, source, feature,
// start, stop, score, strand, phase and attributes. gff turns one line into
// a typed Item and back, validating every column and reporting exactly
// which one was wrong.
//
// # Quick Start
//
// Parsing a line:
//
//	item, err := gff.Parse("chr1\tensembl\tgene\t11869\t14409\t.\t+\t.\tID=gene1;Name=DDX11L1")
//	if err != nil {
//		log.Fatal(err)
//	}
//	if rec, ok := item.(gff.Record); ok {
//		fmt.Println(rec.Seqname, rec.Start, rec.Attributes.GetFirst("Name"))
//	}
//
// Writing it back:
//
//	line := gff.Serialize(item, gff.V3)
//
// # Data Model
//
//	[Item]             - Comment or Record
//	  ├─ [Comment]     - Text after the leading '#'
//	  └─ [Record]      - One feature line
//	       ├─ [Strand]     - Plus, Minus, NotStranded, Unknown
//	       └─ [Attributes] - Ordered tag → values list
//
// Optional columns (source, feature, score, phase) are pointers that are nil
// when the column held a single ".". Build records with the String, Float
// and Int helpers:
//
//	rec := gff.Record{
//		Seqname: "chr1",
//		Source:  gff.String("havana"),
//		Start:   100,
//		Stop:    200,
//		Score:   gff.Float(0.9),
//		Strand:  gff.StrandMinus,
//	}
//
// # Dialects
//
// Serialize takes an explicit Version; nothing is detected from content.
//
//   - V3: source, tags and values are percent-encoded; attributes are
//     "tag=v1,v2" joined by ';'. Output parses back to the same Record.
//   - V2: source and values are double-quoted with backslash escapes;
//     attributes are "tag \"v1\",\"v2\"" joined by ';'. Best-effort only.
//
// The feature column and comment text are never escaped.
//
// # Error Handling
//
// Every failure is a typed error that unwraps to a sentinel:
//
//   - ErrEmptyLine, ErrWrongFieldCount: line-level problems
//   - ErrInvalidInteger, ErrInvalidFloat, ErrInvalidStrand: a bad column
//   - ErrTagWithoutValue: an attribute tag with no '='
//
// Columns are checked in a fixed order (start, stop, phase, score, strand,
// attributes) and the first failure wins. There are no partial records.
//
// # Batches
//
// ParseLines and SerializeItems process many lines in parallel and keep
// input order:
//
//	doc, err := gff.ParseLines(ctx, lines, gff.WithSkipInvalid())
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, w := range doc.Warnings {
//		log.Printf("Warning: %s", w)
//	}
//
// Reading files and splitting them into lines is left to the caller; see
// cmd/gffconv for a complete reader.
package gff
