package itemize

import (
	"fmt"
	"strings"

	"github.com/gogpu/itemize/text"
)

// Defaults for the streaming buffer.
const (
	DefaultBufferSize    = 1024
	DefaultMaxBufferSize = 1 << 20
)

// InvalidPolicy selects how ill-formed UTF-8 input is handled.
type InvalidPolicy int

const (
	// InvalidFail stops the pipeline with an *InvalidTextError.
	InvalidFail InvalidPolicy = iota

	// InvalidReplace substitutes U+FFFD for every ill-formed sequence
	// before the text is buffered. Reported offsets then refer to the
	// repaired stream.
	InvalidReplace
)

// String returns the policy name.
func (p InvalidPolicy) String() string {
	switch p {
	case InvalidFail:
		return "fail"
	case InvalidReplace:
		return "replace"
	default:
		return fmt.Sprintf("InvalidPolicy(%d)", int(p))
	}
}

// ParseInvalidPolicy parses "fail" or "replace".
func ParseInvalidPolicy(s string) (InvalidPolicy, error) {
	switch strings.ToLower(s) {
	case "", "fail":
		return InvalidFail, nil
	case "replace":
		return InvalidReplace, nil
	}
	return InvalidFail, fmt.Errorf("%w: invalid policy %q", ErrInvalidOption, s)
}

// Option configures a Pipeline.
//
// Example:
//
//	p := itemize.NewPipeline(itemize.NewTextEmitter(os.Stdout),
//	    itemize.WithBufferSize(4096),
//	    itemize.WithBaseDirection(text.DirectionAuto))
type Option func(*config)

type config struct {
	bufferSize    int
	maxBufferSize int
	direction     text.Direction
	language      string
	invalid       InvalidPolicy
	resolver      text.FontResolver
	attrs         text.AttributeSet
}

func defaultConfig() config {
	return config{
		bufferSize:    DefaultBufferSize,
		maxBufferSize: DefaultMaxBufferSize,
		direction:     text.DirectionLTR,
		invalid:       InvalidFail,
	}
}

// WithBufferSize sets the chunk size read per refill.
// Values below MinBufferSize are raised to it.
func WithBufferSize(n int) Option {
	return func(c *config) {
		c.bufferSize = max(n, MinBufferSize)
	}
}

// WithMaxBufferSize sets the ceiling for buffer growth. A paragraph longer
// than this is itemized in several passes, each ending at an item
// boundary. Only a single item longer than this fails with
// ErrRunExceedsBuffer. Setting it equal to the buffer size disables growth.
func WithMaxBufferSize(n int) Option {
	return func(c *config) {
		c.maxBufferSize = n
	}
}

// WithBaseDirection sets the paragraph base direction.
func WithBaseDirection(d text.Direction) Option {
	return func(c *config) {
		c.direction = d
	}
}

// WithLanguage sets the default language hint (a BCP 47 tag).
func WithLanguage(tag string) Option {
	return func(c *config) {
		c.language = tag
	}
}

// WithInvalidPolicy sets the handling of ill-formed UTF-8.
func WithInvalidPolicy(p InvalidPolicy) Option {
	return func(c *config) {
		c.invalid = p
	}
}

// WithResolver attaches a font resolver. Without one, reports carry no font.
func WithResolver(r text.FontResolver) Option {
	return func(c *config) {
		c.resolver = r
	}
}

// WithAttributes sets attributes over the whole stream. Offsets are
// absolute byte offsets in the input.
func WithAttributes(attrs text.AttributeSet) Option {
	return func(c *config) {
		c.attrs = attrs
	}
}
