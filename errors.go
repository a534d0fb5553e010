package itemize

import (
	"errors"
	"fmt"
)

// Sentinel errors. Use errors.Is to match the typed errors below against them.
var (
	// ErrIO reports a failure of the input source.
	ErrIO = errors.New("itemize: read failure")

	// ErrInvalidText reports input that is not well-formed UTF-8.
	ErrInvalidText = errors.New("itemize: empty or invalid text")

	// ErrRunExceedsBuffer reports text that cannot be itemized within the
	// maximum buffer size.
	ErrRunExceedsBuffer = errors.New("itemize: run exceeds buffer")

	// ErrInvalidOption reports an out-of-range option value.
	ErrInvalidOption = errors.New("itemize: invalid option")
)

// IOError wraps an error returned by the input source.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("itemize: %s: %v", e.Op, e.Err)
}

// Is reports whether target is ErrIO.
func (e *IOError) Is(target error) bool { return target == ErrIO }

func (e *IOError) Unwrap() error { return e.Err }

// InvalidTextError reports an ill-formed UTF-8 sequence.
type InvalidTextError struct {
	// Offset is the absolute stream offset of the first bad byte.
	Offset int64
}

func (e *InvalidTextError) Error() string {
	return fmt.Sprintf("itemize: invalid UTF-8 at offset %d", e.Offset)
}

// Is reports whether target is ErrInvalidText.
func (e *InvalidTextError) Is(target error) bool { return target == ErrInvalidText }

// RunExceedsBufferError reports that no itemization boundary was found in a
// full buffer that may not grow any further.
type RunExceedsBufferError struct {
	// Pending is the number of buffered bytes without a boundary.
	Pending int
	// Capacity is the buffer capacity at the time of failure.
	Capacity int
}

func (e *RunExceedsBufferError) Error() string {
	return fmt.Sprintf("itemize: no boundary in %d pending bytes (buffer capacity %d)",
		e.Pending, e.Capacity)
}

// Is reports whether target is ErrRunExceedsBuffer.
func (e *RunExceedsBufferError) Is(target error) bool { return target == ErrRunExceedsBuffer }
