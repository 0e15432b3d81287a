// Package node provides the renderable node model for verso.
//
// A Node is one renderable unit: an HTML element, a function component
// invocation, or a fragment. Nodes are built with the New factory (or
// the Fragment helper) from a tag, a props map, and ordered children:
//
//	n := node.New("div", node.Props{"class": "card"},
//	    "Hello, ",
//	    node.New("b", nil, "world"),
//	)
//
// Children may be strings, numbers, booleans, nil, nested *Nodes,
// pre-escaped Raw values, *Pending asynchronous values, or arbitrarily
// nested slices of any of these. Nothing is escaped or flattened at
// construction; the serializer in pkg/render does all encoding.
//
// Nodes also carry the per-node instrumentation hooks (On,
// RenderEvent), the Pending asynchronous value type, and the Memo
// single-slot component cache.
package node
