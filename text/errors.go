package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrInvalidValue is returned when a configuration value cannot be parsed.
	ErrInvalidValue = errors.New("text: invalid value")

	// ErrBadAttribute is returned when an attribute span is malformed.
	ErrBadAttribute = errors.New("text: bad attribute")
)

// ParseError is returned when a direction or language value is invalid.
type ParseError struct {
	Kind  string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	msg := "text: invalid " + e.Kind + " " + `"` + e.Value + `"`
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is reports ErrInvalidValue so callers can match any parse failure.
func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidValue
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
