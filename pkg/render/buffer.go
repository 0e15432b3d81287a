package render

import (
	"context"
	"strings"
	"sync"

	"github.com/verso-dev/verso/pkg/node"
)

// segment is one run of the output target: either accumulated literal
// text or a placeholder for a pending value occupying that position.
type segment struct {
	text    strings.Builder
	pending *node.Pending
}

// buffer is the ordered output target the serializer writes into. The
// last segment is always the open literal run; encountering a pending
// child seals it, records the pending at that position, and opens a
// fresh run. Concatenating the segments in order, with each pending
// replaced by its rendered resolution, restores document order.
type buffer struct {
	segs []*segment

	// pass statistics, reported to metrics and tracing.
	nodes  int
	asyncs int
}

func newBuffer() *buffer {
	return &buffer{segs: []*segment{{}}}
}

func (b *buffer) cur() *segment {
	return b.segs[len(b.segs)-1]
}

func (b *buffer) WriteString(s string) {
	b.cur().text.WriteString(s)
}

// Append implements node.Appender for hook listeners. Text is emitted
// verbatim at the listener's position.
func (b *buffer) Append(s string) {
	b.WriteString(s)
}

func (b *buffer) pushPending(p *node.Pending) {
	b.asyncs++
	b.segs = append(b.segs, &segment{pending: p}, &segment{})
}

// sync reports whether no pending segment was recorded.
func (b *buffer) sync() bool {
	return b.asyncs == 0
}

// syncString concatenates the literal runs. Only meaningful when sync.
func (b *buffer) syncString() string {
	if len(b.segs) == 1 {
		return b.segs[0].text.String()
	}
	var sb strings.Builder
	for _, seg := range b.segs {
		if seg.pending == nil {
			sb.WriteString(seg.text.String())
		}
	}
	return sb.String()
}

// Result is the outcome of a render pass: a completed string when the
// tree was fully synchronous, otherwise a pending computation that
// resolves to the complete string once every asynchronous subtree has
// settled.
type Result struct {
	r   *Renderer
	buf *buffer

	once sync.Once
	html string
	err  error
}

// Ready reports whether the render completed without encountering any
// asynchronous content. When true, HTML returns the document directly.
func (res *Result) Ready() bool {
	return res.buf.sync()
}

// HTML returns the rendered document for a synchronous result. For a
// result with asynchronous content it returns the empty string; use
// Await instead.
func (res *Result) HTML() string {
	if !res.Ready() {
		return ""
	}
	return res.buf.syncString()
}

// Await resolves every pending segment in document order and returns
// the complete document. Pending values resolve concurrently in their
// own goroutines; awaiting them in order does not serialize their
// work. A failed pending fails the whole result: no partial HTML is
// returned. Await is idempotent; the outcome is computed once.
func (res *Result) Await(ctx context.Context) (string, error) {
	res.once.Do(func() {
		if res.buf.sync() {
			res.html = res.buf.syncString()
			return
		}
		res.html, res.err = res.r.awaitBuffer(ctx, res.buf)
	})
	return res.html, res.err
}

func (r *Renderer) awaitBuffer(ctx context.Context, b *buffer) (string, error) {
	ctx, span := r.startSpan(ctx, "verso.await")
	var sb strings.Builder
	err := r.resolveBuffer(ctx, b, &sb)
	r.endSpan(span, err)
	if err != nil {
		return "", err
	}
	return sb.String(), nil
}

// resolveBuffer linearizes the segments into sb. Each resolved value
// is spliced back through the ordinary child rules, so a pending may
// resolve to a node tree containing further pendings; those are
// resolved recursively at their own positions.
func (r *Renderer) resolveBuffer(ctx context.Context, b *buffer, sb *strings.Builder) error {
	for _, seg := range b.segs {
		if seg.pending == nil {
			sb.WriteString(seg.text.String())
			continue
		}
		value, err := seg.pending.Wait(ctx)
		if err != nil {
			return err
		}
		sub := newBuffer()
		if err := r.renderChild(sub, value); err != nil {
			return err
		}
		if err := r.resolveBuffer(ctx, sub, sb); err != nil {
			return err
		}
	}
	return nil
}
