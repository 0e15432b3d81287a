// Package render converts node trees into HTML strings or streams,
// handling all aspects of producing valid, secure HTML output:
//
//   - HTML5 compliant element rendering in document order
//   - Proper text and attribute escaping (XSS prevention)
//   - Void element handling (input, br, img, etc.)
//   - Boolean attribute handling (disabled, checked, etc.)
//   - Asynchronous subtrees via segmented output buffering
//   - Per-node instrumentation hooks
//   - Full page rendering with DOCTYPE, head, body
//
// # Basic Usage
//
// To render a node tree to a string:
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(ctx, n)
//
// # Asynchronous Content
//
// Render returns a Result that is ready immediately when the tree is
// fully synchronous. A tree containing node.Pending children yields a
// pending Result; Await resolves every pending value and concatenates
// the runs back into document order:
//
//	res, err := renderer.Render(n)
//	if err != nil {
//	    return err
//	}
//	if res.Ready() {
//	    return res.HTML(), nil
//	}
//	return res.Await(ctx)
//
// The resolved string is byte-identical to the synchronous rendering
// obtained by substituting each asynchronous value in place:
// asynchrony never changes output, only when it becomes available.
//
// # Streaming
//
// For large documents, StreamingRenderer writes literal runs as soon
// as they are known and flushes before each asynchronous wait:
//
//	sr := render.NewStreamingRenderer(w, config)
//	err := sr.RenderStream(ctx, n)
//
// # Observability
//
// RendererConfig optionally carries a *slog.Logger, a *Metrics
// (Prometheus) instance, and a Tracing switch for OpenTelemetry spans.
//
// # Security
//
// All text content is escaped by default. Raw HTML can be inserted
// with node.Raw or the dangerouslySetInnerHTML prop, but should only
// be used with trusted content.
package render
