package render

import (
	"context"
	"io"
	"net/http"
)

// StreamingRenderer wraps Renderer with chunked output support.
// Literal runs are written as soon as they are known and the
// connection is flushed before each asynchronous gap, for faster
// time-to-first-byte on documents with slow asynchronous subtrees.
//
// Output order is still document order: the stream blocks at each
// pending segment until its value settles. Because bytes may already
// be on the wire when a later pending fails, streaming cannot uphold
// the no-partial-output rule of Result.Await; the error is returned
// and the response is left truncated.
type StreamingRenderer struct {
	*Renderer
	flusher http.Flusher
	w       io.Writer
}

// NewStreamingRenderer creates a streaming renderer that writes to w.
// If w implements http.Flusher, content is flushed before each
// asynchronous wait.
func NewStreamingRenderer(w io.Writer, config RendererConfig) *StreamingRenderer {
	flusher, _ := w.(http.Flusher)
	return &StreamingRenderer{
		Renderer: NewRenderer(config),
		flusher:  flusher,
		w:        w,
	}
}

// RenderStream renders root and writes the document incrementally.
func (s *StreamingRenderer) RenderStream(ctx context.Context, root any) error {
	res, err := s.RenderWithContext(ctx, root)
	if err != nil {
		return err
	}
	if err := s.streamBuffer(ctx, res.buf); err != nil {
		return err
	}
	s.flush()
	return nil
}

func (s *StreamingRenderer) streamBuffer(ctx context.Context, b *buffer) error {
	for _, seg := range b.segs {
		if seg.pending == nil {
			if _, err := io.WriteString(s.w, seg.text.String()); err != nil {
				return err
			}
			continue
		}

		s.flush()
		value, err := seg.pending.Wait(ctx)
		if err != nil {
			return err
		}
		if logger := s.config.Logger; logger != nil {
			logger.Debug("streamed past asynchronous segment")
		}

		sub := newBuffer()
		if err := s.renderChild(sub, value); err != nil {
			return err
		}
		if err := s.streamBuffer(ctx, sub); err != nil {
			return err
		}
	}
	return nil
}

// flush flushes the writer if it supports flushing.
func (s *StreamingRenderer) flush() {
	if s.flusher != nil {
		s.flusher.Flush()
	}
}

// FlushableWriter wraps an io.Writer with flush counting. This is
// useful for testing streaming behavior without an http.ResponseWriter.
type FlushableWriter struct {
	io.Writer
	FlushCount int
}

// Flush implements http.Flusher.
func (w *FlushableWriter) Flush() {
	w.FlushCount++
}
