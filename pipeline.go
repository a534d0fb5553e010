package itemize

import (
	"context"
	"io"
	"sync"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	"github.com/gogpu/itemize/text"
)

// Pipeline drives the read, itemize, emit, compact cycle over a stream.
//
// A Pipeline may be reused for several streams. Concurrent calls to Run
// are serialized, so at most one pass is in progress at any time and the
// emitter never sees interleaved output.
type Pipeline struct {
	mu      sync.Mutex
	cfg     config
	emitter Emitter
}

// NewPipeline creates a Pipeline that sends every report to e.
func NewPipeline(e Emitter, opts ...Option) *Pipeline {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.maxBufferSize = max(cfg.maxBufferSize, cfg.bufferSize)
	return &Pipeline{cfg: cfg, emitter: e}
}

// Run itemizes r until end of input and emits a report per item, in
// ascending offset order. Reports are identical however r splits its
// data across reads.
//
// A pass normally ends at a paragraph end. When the buffer reaches its
// maximum size without one, the pass ends at the start of the last item
// instead, and that item is carried into the next pass.
//
// Errors are fatal: *IOError, *InvalidTextError, *RunExceedsBufferError,
// an error from the emitter, or ctx.Err(). The context is checked between
// passes; a pass in progress always completes. Emitters implementing
// Flusher are flushed when Run returns nil.
func (p *Pipeline) Run(ctx context.Context, r io.Reader) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cfg.invalid == InvalidReplace {
		r = transform.NewReader(r, runes.ReplaceIllFormed())
	}

	buf := NewTextBuffer(p.cfg.bufferSize, p.cfg.maxBufferSize)
	defer buf.Release()

	iz := &text.Itemizer{
		BaseDirection: p.cfg.direction,
		Language:      p.cfg.language,
		Resolver:      p.cfg.resolver,
	}
	log := Logger()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := buf.Refill(r); err != nil {
			return err
		}

		boundary, err := buf.ItemizeBoundary()
		if err != nil {
			return err
		}
		if boundary == 0 {
			if buf.EOF() {
				break
			}
			if buf.CanGrow() {
				if err := buf.Grow(); err != nil {
					return err
				}
				log.Warn("itemize: buffer grown",
					"pending", buf.Len(),
					"capacity", buf.Cap())
				continue
			}
			if err := p.splitPass(iz, buf); err != nil {
				return err
			}
			continue
		}

		if _, err := p.pass(iz, buf, boundary, false); err != nil {
			return err
		}
		buf.Compact(boundary)

		if buf.EOF() && buf.Len() == 0 {
			break
		}
	}

	if f, ok := p.emitter.(Flusher); ok {
		return f.Flush()
	}
	return nil
}

// pass itemizes the first n buffered bytes and emits their reports. With
// holdLast set, the last item is not emitted since more input may extend
// it. pass returns the number of bytes covered by the emitted reports.
func (p *Pipeline) pass(iz *text.Itemizer, buf *TextBuffer, n int, holdLast bool) (int, error) {
	base := buf.Offset()
	window := buf.Bytes()[:n]
	attrs := p.cfg.attrs.Slice(int(base), int(base)+n)
	items := iz.Itemize(window, attrs)

	emit := items
	if holdLast && len(items) > 0 {
		emit = items[:len(items)-1]
	}

	Logger().Debug("itemize: pass",
		"offset", base,
		"pending", buf.Len(),
		"boundary", n,
		"items", len(emit),
		"split", holdLast)

	consumed := 0
	for _, it := range emit {
		if err := p.emitter.Emit(NewReport(it, window, base)); err != nil {
			return consumed, err
		}
		consumed = it.End()
	}
	return consumed, nil
}

// splitPass handles a full buffer at its maximum size that holds no
// paragraph end. Every item but the last is emitted and the buffer is
// compacted to the start of the last one. A single item filling the whole
// buffer is a *RunExceedsBufferError.
func (p *Pipeline) splitPass(iz *text.Itemizer, buf *TextBuffer) error {
	cp, err := buf.CodepointBoundary()
	if err != nil {
		return err
	}
	consumed, err := p.pass(iz, buf, cp, true)
	if err != nil {
		return err
	}
	if consumed == 0 {
		return &RunExceedsBufferError{Pending: buf.Len(), Capacity: buf.Cap()}
	}
	buf.Compact(consumed)
	return nil
}
