// Package escape implements the text escaping conventions of the two GFF
// dialects.
//
// GFF3 uses percent-encoding (RFC 3986 style "%XX") for characters that
// would break column or attribute structure. GFF2 wraps attribute values in
// double quotes with backslash escapes.
package escape

import "strings"

// PercentReserved lists the printable bytes GFF3 requires to be escaped in
// free text. Control bytes (< 0x20) and DEL are escaped in addition.
const PercentReserved = "%;=&,"

const upperHex = "0123456789ABCDEF"

// needsPercent reports whether b must be written as %XX.
func needsPercent(b byte) bool {
	return b < 0x20 || b == 0x7F || strings.IndexByte(PercentReserved, b) >= 0
}

// PercentEncode escapes s for a GFF3 column.
//
// Escaped bytes use uppercase hex. Bytes >= 0x80 are left alone so UTF-8
// text passes through unchanged. PercentDecode(PercentEncode(s)) == s for
// every s.
func PercentEncode(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if needsPercent(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if needsPercent(c) {
			b.WriteByte('%')
			b.WriteByte(upperHex[c>>4])
			b.WriteByte(upperHex[c&0x0F])
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// PercentDecode reverses PercentEncode.
//
// Decoding is lenient: a '%' that is not followed by two hex digits is
// copied through unchanged. Both upper- and lowercase hex are accepted.
func PercentDecode(s string) string {
	i := strings.IndexByte(s, '%')
	if i < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(s[:i])
	for ; i < len(s); i++ {
		c := s[i]
		if c == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]) {
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
