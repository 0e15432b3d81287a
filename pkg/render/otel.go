package render

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tracerName identifies verso spans in the global tracer provider.
const tracerName = "verso"

// startSpan opens a span when tracing is enabled. It returns a nil
// span otherwise, which the other helpers treat as a no-op.
func (r *Renderer) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if !r.config.Tracing {
		return ctx, nil
	}
	return otel.Tracer(tracerName).Start(ctx, name)
}

// spanStats attaches pass statistics to the render span.
func (r *Renderer) spanStats(span trace.Span, buf *buffer) {
	if span == nil {
		return
	}
	span.SetAttributes(
		attribute.Int("verso.nodes", buf.nodes),
		attribute.Int("verso.async_segments", buf.asyncs),
	)
}

// endSpan records the outcome and closes the span.
func (r *Renderer) endSpan(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
