// Package verso provides the public API for the verso rendering
// engine: declaratively constructed node trees serialized to HTML,
// synchronously or asynchronously, in document order.
//
// This is the recommended import for most applications:
//
//	import "github.com/verso-dev/verso"
//
// Usage:
//
//	n := verso.H("div", verso.Props{"class": "greeting"},
//	    "Hello, ", verso.H("b", nil, "world"), "!",
//	)
//	html, err := verso.RenderToString(ctx, n)
//
// The full node model lives in pkg/node, the serializer in pkg/render,
// and scoped context values in pkg/scope.
package verso

import (
	"context"

	"github.com/verso-dev/verso/pkg/node"
	"github.com/verso-dev/verso/pkg/render"
)

// Version is the verso release version.
const Version = "0.1.0"

// =============================================================================
// Node model (re-export from pkg/node)
// =============================================================================

// Node is one renderable unit: element, component invocation, or
// fragment.
type Node = node.Node

// Props holds attributes for elements and input values for components.
type Props = node.Props

// Component is a function component.
type Component = node.Component

// Raw marks a string as already escaped; it is emitted verbatim.
type Raw = node.Raw

// Pending is an asynchronous child value.
type Pending = node.Pending

// Listener observes one node's serialization.
type Listener = node.Listener

// RenderEvent is the record passed to hook listeners.
type RenderEvent = node.RenderEvent

// H builds a Node from a tag (element name, "" for a fragment, or a
// Component), a props map, and ordered children.
func H(tag any, props Props, children ...any) *Node {
	return node.New(tag, props, children...)
}

// Fragment groups children without a wrapper element.
var Fragment = node.Fragment

// Memo wraps a component with a single-slot props/output cache.
var Memo = node.Memo

// Go starts fn in its own goroutine and returns a Pending settled with
// its result.
var Go = node.Go

// Lazy returns a Pending whose work runs on the awaiting goroutine.
var Lazy = node.Lazy

// NewPending returns an unsettled Pending and its settle function.
var NewPending = node.NewPending

// =============================================================================
// Rendering (re-export from pkg/render)
// =============================================================================

// Renderer serializes node trees to HTML.
type Renderer = render.Renderer

// RendererConfig configures a Renderer.
type RendererConfig = render.RendererConfig

// Result is the outcome of a render pass.
type Result = render.Result

// NewRenderer creates a Renderer with the given configuration.
var NewRenderer = render.NewRenderer

// Render serializes root with the default renderer. The Result is
// ready immediately if and only if the tree was fully synchronous.
func Render(root any) (*Result, error) {
	return render.Render(root)
}

// RenderToString serializes root with the default renderer and awaits
// the complete document.
func RenderToString(ctx context.Context, root any) (string, error) {
	return render.RenderToString(ctx, root)
}
