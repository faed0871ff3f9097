package escape

import "strings"

// QuoteEscapes is the complete backslash table for GFF2 quoted strings.
// Bytes not listed here that fall outside printable ASCII (0x20..0x7E) are
// written as a backslash and three decimal digits, e.g. "\007".
var QuoteEscapes = map[byte]string{
	'"':  `\"`,
	'\\': `\\`,
	'\n': `\n`,
	'\t': `\t`,
	'\r': `\r`,
	'\b': `\b`,
}

// Quote renders s as a GFF2 quoted string, surrounding double quotes
// included. The output is pure printable ASCII.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		if esc, ok := QuoteEscapes[c]; ok {
			b.WriteString(esc)
			continue
		}
		if c < 0x20 || c > 0x7E {
			b.WriteByte('\\')
			b.WriteByte('0' + c/100)
			b.WriteByte('0' + c/10%10)
			b.WriteByte('0' + c%10)
			continue
		}
		b.WriteByte(c)
	}
	b.WriteByte('"')
	return b.String()
}
