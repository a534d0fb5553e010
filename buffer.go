package itemize

import (
	"errors"
	"io"
	"unicode/utf8"

	"github.com/gogpu/itemize/text"
)

// MinBufferSize is the smallest usable buffer: one codepoint of the
// longest UTF-8 encoding.
const MinBufferSize = utf8.UTFMax

// TextBuffer is the rolling window over an input stream.
//
// Bytes [0, Len()) are valid input not yet itemized. The buffer never
// splits a codepoint across itemization passes: a trailing incomplete
// sequence is kept and completed by the next Refill.
//
// TextBuffer is not safe for concurrent use. Pipeline owns one per Run.
type TextBuffer struct {
	data   []byte // len(data) is the current capacity
	n      int    // valid length
	maxCap int
	eof    bool
	base   int64 // stream offset of data[0]
}

// NewTextBuffer allocates a buffer of size bytes that may grow up to
// maxSize bytes. Sizes below MinBufferSize are raised to it, and maxSize
// is raised to size.
func NewTextBuffer(size, maxSize int) *TextBuffer {
	size = max(size, MinBufferSize)
	return &TextBuffer{
		data:   make([]byte, size),
		maxCap: max(maxSize, size),
	}
}

// Refill reads from r until the buffer is full or r is exhausted, and
// returns the number of bytes read. End of input sets EOF; any other read
// error is returned as an *IOError.
func (b *TextBuffer) Refill(r io.Reader) (int, error) {
	if b.eof || b.n == len(b.data) {
		return 0, nil
	}
	m, err := io.ReadFull(r, b.data[b.n:])
	b.n += m
	switch {
	case err == nil:
		return m, nil
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		b.eof = true
		return m, nil
	default:
		return m, &IOError{Op: "read", Err: err}
	}
}

// CodepointBoundary returns the length of the longest prefix made of
// complete, well-formed codepoints.
//
// A trailing incomplete sequence is excluded while the stream is open. An
// ill-formed sequence, or an incomplete one at end of stream, is reported
// as an *InvalidTextError carrying its stream offset.
func (b *TextBuffer) CodepointBoundary() (int, error) {
	buf := b.data[:b.n]
	for i := 0; i < len(buf); {
		if buf[i] < utf8.RuneSelf {
			i++
			continue
		}
		r, size := utf8.DecodeRune(buf[i:])
		if r == utf8.RuneError && size == 1 {
			if !utf8.FullRune(buf[i:]) && !b.eof {
				return i, nil
			}
			return 0, &InvalidTextError{Offset: b.base + int64(i)}
		}
		i += size
	}
	return len(buf), nil
}

// ItemizeBoundary returns the length of the prefix to itemize in the next
// pass. At end of stream that is everything buffered. Otherwise it is the
// end of the last complete paragraph, since script and direction of a
// paragraph can depend on text further ahead. Zero while the stream is
// open means more input is needed.
func (b *TextBuffer) ItemizeBoundary() (int, error) {
	cp, err := b.CodepointBoundary()
	if err != nil {
		return 0, err
	}
	if b.eof {
		return cp, nil
	}
	return text.LastParagraphEnd(b.data[:cp]), nil
}

// CanGrow reports whether the buffer is below its maximum size.
func (b *TextBuffer) CanGrow() bool {
	return len(b.data) < b.maxCap
}

// Grow doubles the capacity, up to the maximum size. It returns a
// *RunExceedsBufferError when the buffer is already at the maximum.
func (b *TextBuffer) Grow() error {
	if !b.CanGrow() {
		return &RunExceedsBufferError{Pending: b.n, Capacity: len(b.data)}
	}
	grown := make([]byte, min(2*len(b.data), b.maxCap))
	copy(grown, b.data[:b.n])
	b.data = grown
	return nil
}

// Compact discards the first n bytes and moves the remainder to the start
// of the buffer. n is clamped to [0, Len()].
func (b *TextBuffer) Compact(n int) {
	n = min(max(n, 0), b.n)
	if n == 0 {
		return
	}
	copy(b.data, b.data[n:b.n])
	b.n -= n
	b.base += int64(n)
}

// Release drops the backing array. The buffer must not be used afterwards.
func (b *TextBuffer) Release() {
	b.data = nil
	b.n = 0
}

// Bytes returns the valid bytes. The slice is only valid until the next
// Refill, Grow or Compact.
func (b *TextBuffer) Bytes() []byte { return b.data[:b.n] }

// Len returns the number of valid bytes.
func (b *TextBuffer) Len() int { return b.n }

// Cap returns the current capacity.
func (b *TextBuffer) Cap() int { return len(b.data) }

// EOF reports whether the input has been exhausted.
func (b *TextBuffer) EOF() bool { return b.eof }

// Offset returns the stream offset of the first valid byte.
func (b *TextBuffer) Offset() int64 { return b.base }
