package render

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/verso-dev/verso/pkg/node"
)

func TestStreamingMatchesBuffered(t *testing.T) {
	build := func() *node.Node {
		return node.New("div", nil,
			"head ",
			node.Go(func(ctx context.Context) (any, error) {
				time.Sleep(5 * time.Millisecond)
				return node.New("p", nil, "slow"), nil
			}),
			" tail",
		)
	}

	want, err := NewRenderer(RendererConfig{}).RenderToString(context.Background(), build())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var sb strings.Builder
	sr := NewStreamingRenderer(&sb, RendererConfig{})
	if err := sr.RenderStream(context.Background(), build()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sb.String() != want {
		t.Errorf("streamed %q, buffered %q", sb.String(), want)
	}
}

func TestStreamingFlushesBeforeAsyncWait(t *testing.T) {
	var sb strings.Builder
	fw := &FlushableWriter{Writer: &sb}

	n := node.New("div", nil,
		"a",
		node.Resolved("b"),
		"c",
		node.Resolved("d"),
	)

	sr := NewStreamingRenderer(fw, RendererConfig{})
	if err := sr.RenderStream(context.Background(), n); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sb.String() != "<div>abcd</div>" {
		t.Errorf("got %q, want %q", sb.String(), "<div>abcd</div>")
	}
	// One flush per async gap plus the final flush.
	if fw.FlushCount != 3 {
		t.Errorf("FlushCount = %d, want 3", fw.FlushCount)
	}
}

func TestStreamingSyncTree(t *testing.T) {
	var sb strings.Builder
	sr := NewStreamingRenderer(&sb, RendererConfig{})
	if err := sr.RenderStream(context.Background(), node.New("p", nil, "x")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sb.String() != "<p>x</p>" {
		t.Errorf("got %q, want %q", sb.String(), "<p>x</p>")
	}
}
