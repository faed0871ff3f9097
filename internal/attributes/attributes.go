// Package attributes tokenizes the ninth GFF column.
//
// The column is a sequence of "tag=value[,value...]" groups separated by
// ';'. Tokenizing is a single forward scan over byte offsets with no
// backtracking.
package attributes

import (
	"strings"

	"github.com/simonhull/gff/internal/escape"
	"github.com/simonhull/gff/internal/types"
)

// Parse tokenizes an attribute column.
//
// An empty column yields an empty list. A tag whose '=' cannot be found
// before the end of the column yields *types.TagWithoutValueError. Tags and
// values are percent-decoded after splitting, so "%3B" inside a value never
// acts as a delimiter.
//
// A tag whose value content is empty ("ID=" or "ID=;") gets an empty value
// list. Empty values after a ',' are kept ("a=x," yields ["x", ""]).
//
// Because "ID=" always means no values, an attribute holding exactly one
// empty string serializes as "ID=" and parses back with no values. Any other
// mix of empty values survives the trip.
func Parse(s string) (types.Attributes, error) {
	var attrs types.Attributes
	pos := 0
	for pos < len(s) {
		eq := strings.IndexByte(s[pos:], '=')
		if eq < 0 {
			return nil, &types.TagWithoutValueError{Text: s, Offset: pos}
		}
		tag := s[pos : pos+eq]
		pos += eq + 1

		var values []string
		start := pos
		for {
			if pos >= len(s) {
				values = appendValue(values, s[start:])
				break
			}
			c := s[pos]
			if c == ',' {
				values = append(values, escape.PercentDecode(s[start:pos]))
				pos++
				start = pos
				continue
			}
			if c == ';' {
				values = appendValue(values, s[start:pos])
				pos++
				break
			}
			pos++
		}

		attrs = append(attrs, types.Attribute{
			Tag:    escape.PercentDecode(tag),
			Values: values,
		})
	}
	return attrs, nil
}

// appendValue closes the value list of a tag. A tag with no value content
// at all keeps an empty list.
func appendValue(values []string, raw string) []string {
	if raw == "" && len(values) == 0 {
		return []string{}
	}
	return append(values, escape.PercentDecode(raw))
}
