package text

import "strings"

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Direction specifies text direction.
type Direction int

const (
	// DirectionLTR is left-to-right text (English, French, etc.)
	DirectionLTR Direction = iota
	// DirectionRTL is right-to-left text (Arabic, Hebrew)
	DirectionRTL
	// DirectionAuto takes the paragraph direction from its first strong
	// character. It is only meaningful as a base direction; resolved items
	// are always LTR or RTL.
	DirectionAuto
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionLTR:
		return "LTR"
	case DirectionRTL:
		return "RTL"
	case DirectionAuto:
		return "Auto"
	default:
		return unknownStr
	}
}

// ParseDirection converts "ltr", "rtl" or "auto" (any case) to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "ltr", "":
		return DirectionLTR, nil
	case "rtl":
		return DirectionRTL, nil
	case "auto":
		return DirectionAuto, nil
	default:
		return DirectionLTR, &ParseError{Kind: "direction", Value: s}
	}
}
