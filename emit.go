package itemize

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Emitter consumes reports in ascending offset order.
type Emitter interface {
	Emit(Report) error
}

// Flusher is implemented by emitters that buffer output. Pipeline.Run
// flushes on clean termination.
type Flusher interface {
	Flush() error
}

// EmitterFunc adapts an ordinary function to Emitter.
type EmitterFunc func(Report) error

// Emit calls f(r).
func (f EmitterFunc) Emit(r Report) error { return f(r) }

// TextEmitter writes reports as human-readable blocks:
//
//	Offset: 0
//	Length: 5
//	#chars: 5
//	Text: Hello
//	Analysis:
//		Font: go
//		Script ID: 1281455214
//		Script is Latin script!
//
// Script ID is the ISO 15924 tag packed big-endian into a uint32, so
// 1281455214 (0x4C61746E) is "Latn". A Language line is added under
// Analysis when the item carries one.
type TextEmitter struct {
	w *bufio.Writer
}

// NewTextEmitter returns a TextEmitter writing to w.
func NewTextEmitter(w io.Writer) *TextEmitter {
	return &TextEmitter{w: bufio.NewWriter(w)}
}

// Emit implements Emitter.
func (e *TextEmitter) Emit(r Report) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Offset: %d\n", r.Offset)
	fmt.Fprintf(&sb, "Length: %d\n", r.Length)
	fmt.Fprintf(&sb, "#chars: %d\n", r.NumChars)
	fmt.Fprintf(&sb, "Text: %s\n", r.Text)
	sb.WriteString("Analysis:\n")
	fmt.Fprintf(&sb, "\tFont: %s\n", r.Font)
	if r.Language != "" {
		fmt.Fprintf(&sb, "\tLanguage: %s\n", r.Language)
	}
	fmt.Fprintf(&sb, "\tScript ID: %d\n", r.ScriptID)
	fmt.Fprintf(&sb, "\tScript is %s script!\n", r.ScriptName)
	sb.WriteString("\n")

	if _, err := e.w.WriteString(sb.String()); err != nil {
		return fmt.Errorf("itemize: write report: %w", err)
	}
	return nil
}

// Flush writes buffered output.
func (e *TextEmitter) Flush() error {
	if err := e.w.Flush(); err != nil {
		return fmt.Errorf("itemize: flush: %w", err)
	}
	return nil
}

// JSONEmitter writes one JSON object per report, newline separated.
type JSONEmitter struct {
	w   *bufio.Writer
	enc *json.Encoder
}

// NewJSONEmitter returns a JSONEmitter writing to w.
func NewJSONEmitter(w io.Writer) *JSONEmitter {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	enc.SetEscapeHTML(false)
	return &JSONEmitter{w: bw, enc: enc}
}

// Emit implements Emitter.
func (e *JSONEmitter) Emit(r Report) error {
	if err := e.enc.Encode(r); err != nil {
		return fmt.Errorf("itemize: encode report: %w", err)
	}
	return nil
}

// Flush writes buffered output.
func (e *JSONEmitter) Flush() error {
	if err := e.w.Flush(); err != nil {
		return fmt.Errorf("itemize: flush: %w", err)
	}
	return nil
}

// NewEmitter returns the emitter for a format name: "text" or "json".
func NewEmitter(format string, w io.Writer) (Emitter, error) {
	switch strings.ToLower(format) {
	case "", "text":
		return NewTextEmitter(w), nil
	case "json":
		return NewJSONEmitter(w), nil
	}
	return nil, fmt.Errorf("%w: output format %q", ErrInvalidOption, format)
}
