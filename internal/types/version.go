package types

import (
	"fmt"
	"strings"
)

// Version selects the GFF dialect used for serialization.
//
// There is no detection from content; every serialization call names its
// target explicitly.
type Version int

const (
	// V3 is GFF3: percent-encoded text, "tag=value" attributes.
	V3 Version = iota
	// V2 is GFF2: quoted-string attribute values, "tag value" attributes.
	V2
)

// String returns the conventional dialect name.
func (v Version) String() string {
	switch v {
	case V2:
		return "GFF2"
	case V3:
		return "GFF3"
	default:
		return fmt.Sprintf("Version(%d)", int(v))
	}
}

// Extensions returns common file extensions for this dialect.
func (v Version) Extensions() []string {
	switch v {
	case V2:
		return []string{".gff2", ".gtf", ".gff"}
	case V3:
		return []string{".gff3", ".gff"}
	default:
		return nil
	}
}

// ParseVersion decodes a dialect name from configuration text.
//
// Accepted spellings are case-insensitive: "2", "v2", "gff2", "3", "v3",
// "gff3".
func ParseVersion(s string) (Version, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "2", "v2", "gff2":
		return V2, nil
	case "3", "v3", "gff3":
		return V3, nil
	default:
		return V3, &UnsupportedVersionError{Text: s}
	}
}
