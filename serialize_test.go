package gff_test

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/simonhull/gff"
)

func geneRecord() gff.Record {
	return gff.Record{
		Seqname: "chr1",
		Source:  gff.String("ensembl"),
		Feature: gff.String("gene"),
		Start:   11869,
		Stop:    14409,
		Score:   gff.Float(0.5),
		Strand:  gff.StrandPlus,
		Phase:   gff.Int(0),
		Attributes: gff.Attributes{
			{Tag: "ID", Values: []string{"gene1"}},
			{Tag: "Name", Values: []string{"foo", "bar"}},
		},
	}
}

func TestSerialize_V3(t *testing.T) {
	tests := []struct {
		name string
		rec  gff.Record
		want string
	}{
		{
			name: "full record",
			rec:  geneRecord(),
			want: "chr1\tensembl\tgene\t11869\t14409\t0.5\t+\t0\tID=gene1;Name=foo,bar",
		},
		{
			name: "all absent",
			rec:  gff.Record{Seqname: "chr1", Start: 1, Stop: 10, Strand: gff.StrandNotStranded},
			want: "chr1\t.\t.\t1\t10\t.\t.\t.\t",
		},
		{
			name: "escaped source and attributes",
			rec: gff.Record{
				Seqname:    "ctg1",
				Source:     gff.String("a;b"),
				Start:      -5,
				Stop:       4294967296,
				Strand:     gff.StrandUnknown,
				Attributes: gff.Attributes{{Tag: "Note", Values: []string{"x=1,y=2"}}},
			},
			want: "ctg1\ta%3Bb\t.\t-5\t4294967296\t.\t?\t.\tNote=x%3D1%2Cy%3D2",
		},
		{
			name: "feature never escaped",
			rec:  gff.Record{Seqname: "c", Feature: gff.String("a;b=c"), Start: 1, Stop: 2, Strand: gff.StrandMinus},
			want: "c\t.\ta;b=c\t1\t2\t.\t-\t.\t",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := gff.Serialize(tt.rec, gff.V3); got != tt.want {
				t.Errorf("Serialize(V3) =\n  %q\nwant\n  %q", got, tt.want)
			}
		})
	}
}

func TestSerialize_V2(t *testing.T) {
	rec := geneRecord()
	rec.Source = gff.String(`my "src"`)

	want := "chr1\t\"my \\\"src\\\"\"\tgene\t11869\t14409\t0.5\t+\t0\tID \"gene1\";Name \"foo\",\"bar\""
	if got := gff.Serialize(rec, gff.V2); got != want {
		t.Errorf("Serialize(V2) =\n  %q\nwant\n  %q", got, want)
	}
}

func TestSerialize_ScoreFormatting(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0, "0"},
		{1, "1"},
		{0.1, "0.1"},
		{-2.5, "-2.5"},
		{1e21, "1e+21"},
		{1.0 / 3.0, "0.3333333333333333"},
	}
	for _, tt := range tests {
		rec := gff.Record{Seqname: "c", Start: 1, Stop: 1, Score: gff.Float(tt.score)}
		cols := strings.Split(gff.Serialize(rec, gff.V3), "\t")
		if cols[5] != tt.want {
			t.Errorf("score %v serialized as %q, want %q", tt.score, cols[5], tt.want)
		}
	}
}

func TestSerialize_UnknownVersionFallsBackToV3(t *testing.T) {
	rec := geneRecord()
	if got, want := gff.Serialize(rec, gff.Version(42)), gff.Serialize(rec, gff.V3); got != want {
		t.Errorf("Serialize(Version(42)) = %q, want GFF3 output %q", got, want)
	}
}

func TestSerialize_Pointers(t *testing.T) {
	rec := geneRecord()
	if got, want := gff.Serialize(&rec, gff.V3), gff.Serialize(rec, gff.V3); got != want {
		t.Errorf("Serialize(*Record) = %q, want %q", got, want)
	}
	if got := gff.Serialize(&gff.Comment{Text: "x"}, gff.V3); got != "#x" {
		t.Errorf("Serialize(*Comment) = %q", got)
	}
	var nilRec *gff.Record
	if got := gff.Serialize(nilRec, gff.V3); got != "" {
		t.Errorf("Serialize(nil *Record) = %q, want empty", got)
	}
	if got := gff.Serialize(nil, gff.V3); got != "" {
		t.Errorf("Serialize(nil) = %q, want empty", got)
	}
}

func roundTrip(t *testing.T, rec gff.Record) {
	t.Helper()
	line := gff.Serialize(rec, gff.V3)
	item, err := gff.Parse(line)
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", line, err)
	}
	got, ok := item.(gff.Record)
	if !ok {
		t.Fatalf("Parse(%q) = %T, want Record", line, item)
	}
	if !got.Equal(rec) {
		t.Errorf("round trip through %q\n got %+v\nwant %+v", line, got, rec)
	}
}

func TestRoundTrip_V3(t *testing.T) {
	records := []gff.Record{
		geneRecord(),
		{Seqname: "chr1", Start: 1, Stop: 10},
		{
			Seqname: "scaffold_7",
			Source:  gff.String("my source"),
			Start:   -100,
			Stop:    9223372036854775807,
			Score:   gff.Float(-1.25e-7),
			Strand:  gff.StrandUnknown,
			Phase:   gff.Int(2),
			Attributes: gff.Attributes{
				{Tag: "Note", Values: []string{"a;b=c,d&e", "100%", "tab\there", "new\nline"}},
				{Tag: "we;ird=tag", Values: []string{"."}},
				{Tag: "Parent", Values: []string{"p1"}},
				{Tag: "Parent", Values: []string{"p2"}},
				{Tag: "Empty", Values: []string{}},
				{Tag: "Trailing", Values: []string{"x", ""}},
			},
		},
	}

	for _, rec := range records {
		roundTrip(t, rec)
	}
}

func TestRoundTrip_V3_SourceKeptEncoded(t *testing.T) {
	rec := gff.Record{Seqname: "chr1", Source: gff.String("lab;v=2,a&b%"), Start: 1, Stop: 2}

	line := gff.Serialize(rec, gff.V3)
	if want := "chr1\tlab%3Bv%3D2%2Ca%26b%25\t.\t1\t2\t.\t.\t.\t"; line != want {
		t.Fatalf("Serialize() = %q, want %q", line, want)
	}

	item, err := gff.Parse(line)
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", line, err)
	}
	got := item.(gff.Record)
	if got.Source == nil || *got.Source != "lab%3Bv%3D2%2Ca%26b%25" {
		t.Errorf("Source = %v, want the encoded text kept verbatim", got.Source)
	}
	if got.Equal(rec) {
		t.Error("record with reserved characters in source should not round-trip exactly")
	}
}

func TestRoundTrip_V3_SingleEmptyValueCollapses(t *testing.T) {
	rec := gff.Record{
		Seqname:    "chr1",
		Start:      1,
		Stop:       2,
		Attributes: gff.Attributes{{Tag: "Note", Values: []string{""}}},
	}

	line := gff.Serialize(rec, gff.V3)
	if !strings.HasSuffix(line, "\tNote=") {
		t.Fatalf("Serialize() = %q, want trailing Note=", line)
	}
	item, err := gff.Parse(line)
	if err != nil {
		t.Fatal(err)
	}
	values := item.(gff.Record).Attributes.Get("Note")
	if values == nil || len(values) != 0 {
		t.Errorf("Note values = %#v, want empty non-nil list", values)
	}
}

// randText builds text from an alphabet heavy in characters the GFF3
// encoder has to escape.
func randText(r *rand.Rand, alphabet string, maxLen int) string {
	n := r.IntN(maxLen + 1)
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteByte(alphabet[r.IntN(len(alphabet))])
	}
	return b.String()
}

func TestRoundTrip_V3_Generated(t *testing.T) {
	const (
		plain    = "abcXYZ019_-. :|"
		reserved = "abc;=,&%\t\n\x01\x7f.xyz"
	)
	r := rand.New(rand.NewPCG(1, 2))
	strands := []gff.Strand{gff.StrandPlus, gff.StrandMinus, gff.StrandNotStranded, gff.StrandUnknown}

	for i := 0; i < 500; i++ {
		rec := gff.Record{
			Seqname: "chr" + randText(r, "0123456789XY", 3),
			Start:   r.Int64N(1<<40) - 1<<20,
			Stop:    r.Int64N(1 << 40),
			Strand:  strands[r.IntN(len(strands))],
		}
		if r.IntN(2) == 0 {
			rec.Source = gff.String("src" + randText(r, plain, 8))
		}
		if r.IntN(2) == 0 {
			rec.Feature = gff.String("feat" + randText(r, plain, 8))
		}
		if r.IntN(2) == 0 {
			rec.Score = gff.Float(r.NormFloat64() * 1e3)
		}
		if r.IntN(2) == 0 {
			rec.Phase = gff.Int(r.Int64N(3))
		}
		for n := r.IntN(4); n > 0; n-- {
			attr := gff.Attribute{Tag: randText(r, reserved, 6)}
			for m := 1 + r.IntN(3); m > 0; m-- {
				attr.Values = append(attr.Values, "v"+randText(r, reserved, 6))
			}
			rec.Attributes = append(rec.Attributes, attr)
		}
		roundTrip(t, rec)
	}
}

func BenchmarkSerialize_V3(b *testing.B) {
	rec := geneRecord()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = gff.Serialize(rec, gff.V3)
	}
}
