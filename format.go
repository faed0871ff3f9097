package gff

import (
	"github.com/simonhull/gff/internal/types"
)

// Version is an alias to types.Version. It selects the dialect used by
// Serialize and SerializeItems.
type Version = types.Version

// Re-export all dialect constants.
const (
	V2 = types.V2
	V3 = types.V3
)

// ParseVersion is a wrapper around types.ParseVersion.
// It accepts "2", "3", "v2", "v3", "gff2" and "gff3" in any case.
func ParseVersion(s string) (Version, error) {
	return types.ParseVersion(s)
}
