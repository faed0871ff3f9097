package types

// Strand is the orientation of a feature relative to the reference sequence.
type Strand int

const (
	// StrandNotStranded is a feature with no orientation ('.').
	StrandNotStranded Strand = iota
	// StrandPlus is the forward strand ('+').
	StrandPlus
	// StrandMinus is the reverse strand ('-').
	StrandMinus
	// StrandUnknown is a stranded feature whose orientation is unknown ('?').
	StrandUnknown
)

// String returns the strand name.
func (s Strand) String() string {
	switch s {
	case StrandPlus:
		return "Plus"
	case StrandMinus:
		return "Minus"
	case StrandNotStranded:
		return "NotStranded"
	case StrandUnknown:
		return "Unknown"
	default:
		return "Strand(?)"
	}
}

// Symbol returns the single-character column text for the strand.
func (s Strand) Symbol() string {
	switch s {
	case StrandPlus:
		return "+"
	case StrandMinus:
		return "-"
	case StrandNotStranded:
		return "."
	case StrandUnknown:
		return "?"
	default:
		return "."
	}
}

// ParseStrand decodes a strand column. Anything other than exactly one of
// "+", "-", "." or "?" yields an *InvalidStrandError.
func ParseStrand(s string) (Strand, error) {
	switch s {
	case ".":
		return StrandNotStranded, nil
	case "?":
		return StrandUnknown, nil
	case "+":
		return StrandPlus, nil
	case "-":
		return StrandMinus, nil
	default:
		return StrandNotStranded, &InvalidStrandError{Text: s}
	}
}
