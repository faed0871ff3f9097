// Package registry manages the per-dialect encoders used for serialization.
package registry

import (
	"github.com/simonhull/gff/internal/types"
)

// Encoder is the interface every dialect encoder implements.
//
// Only the two version-dependent pieces of a line go through an Encoder.
// Every other column is written the same way by both dialects.
type Encoder interface {
	// EncodeSource escapes a present source column.
	EncodeSource(source string) string

	// EncodeAttributes renders the ninth column.
	EncodeAttributes(attrs types.Attributes) string
}

// encoders maps dialects to their encoders.
var encoders = make(map[types.Version]Encoder)

// Register registers an encoder for a dialect.
// This is called by dialect packages during initialization (init functions).
func Register(version types.Version, enc Encoder) {
	encoders[version] = enc
}

// Get returns the encoder for a given dialect.
// Returns nil if no encoder is registered for the dialect.
func Get(version types.Version) Encoder {
	return encoders[version]
}
