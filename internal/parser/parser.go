// Package parser turns one GFF text line into a types.Item.
//
// Parsing is pure: no state is kept between lines and every call may run
// concurrently with any other.
package parser

import (
	"strconv"
	"strings"

	"github.com/simonhull/gff/internal/attributes"
	"github.com/simonhull/gff/internal/types"
)

// Column indexes of a feature line.
const (
	FieldSeqname = iota
	FieldSource
	FieldFeature
	FieldStart
	FieldStop
	FieldScore
	FieldStrand
	FieldPhase
	FieldAttributes

	// FieldCount is the number of tab-separated columns in a feature line.
	FieldCount
)

// absent is the column text meaning "no value" for optional fields.
const absent = "."

// ParseLine classifies a line and decodes it.
//
// The line must not carry its terminator. "" fails with ErrEmptyLine; a
// leading '#' yields a Comment; anything else must split into exactly nine
// tab-separated fields.
func ParseLine(line string) (types.Item, error) {
	if line == "" {
		return nil, types.ErrEmptyLine
	}
	if line[0] == '#' {
		return types.Comment{Text: line[1:]}, nil
	}

	fields := strings.Split(line, "\t")
	if len(fields) != FieldCount {
		return nil, &types.FieldCountError{Got: len(fields)}
	}
	rec, err := ParseFields(fields)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// ParseFields decodes the nine raw columns of a feature line.
//
// Fields are validated in a fixed order (start, stop, phase, score, strand,
// attributes) and the first failure is returned. An attribute column of
// exactly "." is an empty list.
func ParseFields(fields []string) (types.Record, error) {
	if len(fields) != FieldCount {
		return types.Record{}, &types.FieldCountError{Got: len(fields)}
	}

	start, err := parseInt("start", fields[FieldStart])
	if err != nil {
		return types.Record{}, err
	}
	stop, err := parseInt("stop", fields[FieldStop])
	if err != nil {
		return types.Record{}, err
	}
	phase, err := parseOptInt("phase", fields[FieldPhase])
	if err != nil {
		return types.Record{}, err
	}
	score, err := parseOptFloat(fields[FieldScore])
	if err != nil {
		return types.Record{}, err
	}
	strand, err := types.ParseStrand(fields[FieldStrand])
	if err != nil {
		return types.Record{}, err
	}
	var attrs types.Attributes
	if col := fields[FieldAttributes]; col != absent {
		attrs, err = attributes.Parse(col)
		if err != nil {
			return types.Record{}, err
		}
	}

	return types.Record{
		Seqname:    fields[FieldSeqname],
		Source:     optString(fields[FieldSource]),
		Feature:    optString(fields[FieldFeature]),
		Start:      start,
		Stop:       stop,
		Score:      score,
		Strand:     strand,
		Phase:      phase,
		Attributes: attrs,
	}, nil
}

func parseInt(field, s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, &types.InvalidIntegerError{Field: field, Text: s}
	}
	return n, nil
}

func parseOptInt(field, s string) (*int64, error) {
	if s == absent {
		return nil, nil
	}
	n, err := parseInt(field, s)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func parseOptFloat(s string) (*float64, error) {
	if s == absent {
		return nil, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, &types.InvalidFloatError{Text: s}
	}
	return &f, nil
}

// optString keeps source and feature text verbatim; only "." is special.
func optString(s string) *string {
	if s == absent {
		return nil
	}
	return &s
}
