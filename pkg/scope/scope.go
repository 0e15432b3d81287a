// Package scope provides scoped context values for render trees.
//
// A Context carries a value down the tree without threading it through
// props: an ancestor Provider makes a value visible, and any component
// serialized inside the Provider's children reads it with Use:
//
//	var Theme = scope.New("light")
//
//	func Button(props node.Props) (any, error) {
//	    return node.New("button", node.Props{"class": "btn-" + Theme.Use()}), nil
//	}
//
//	page := Theme.Provider("dark", node.New(node.Component(Button), nil))
//
// The value lives on an explicit stack shared by every render that
// touches the Context. A Provider pushes before serializing its
// children and pops after. When the children contain asynchronous
// content, the pop still happens before the Provider returns, and the
// continuation that finishes the render re-pushes the value, awaits
// the children, and pops again. This two-phase discipline keeps the
// value invisible to unrelated renders between the synchronous pass
// and the continuation, while restoring it for nested reads that run
// while the continuation resolves.
package scope

import (
	"context"
	"sync"

	"github.com/verso-dev/verso/pkg/node"
	"github.com/verso-dev/verso/pkg/render"
)

// Context is a named stack of scoped values. It is created with a
// default value and is never empty: Use outside any Provider returns
// the default.
type Context[T any] struct {
	mu     sync.Mutex
	values []T
}

// New creates a Context seeded with defaultValue.
func New[T any](defaultValue T) *Context[T] {
	return &Context[T]{values: []T{defaultValue}}
}

// Use returns the value of the innermost active Provider, or the
// default value when no Provider is active.
func (c *Context[T]) Use() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.values[len(c.values)-1]
}

func (c *Context[T]) push(value T) {
	c.mu.Lock()
	c.values = append(c.values, value)
	c.mu.Unlock()
}

func (c *Context[T]) pop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.values) == 1 {
		// The default is never popped; an unmatched pop is a bug in
		// the Provider protocol, not a recoverable state.
		panic("scope: unbalanced context pop")
	}
	c.values = c.values[:len(c.values)-1]
}

// Provider returns a component node that makes value visible to Use
// calls within children for the duration of their serialization.
func (c *Context[T]) Provider(value T, children ...any) *node.Node {
	fn := node.Component(func(node.Props) (any, error) {
		c.push(value)
		res, err := render.Render(node.Fragment(children...))
		if err != nil {
			c.pop()
			return nil, err
		}
		if res.Ready() {
			c.pop()
			return node.Raw(res.HTML()), nil
		}

		// Release the synchronous critical section before suspending.
		// The continuation runs on the awaiting goroutine, strictly
		// after the pass that reached this Provider has completed; it
		// restores the value around the remaining asynchronous work.
		c.pop()
		return node.Lazy(func(ctx context.Context) (any, error) {
			c.push(value)
			defer c.pop()
			html, err := res.Await(ctx)
			if err != nil {
				return nil, err
			}
			return node.Raw(html), nil
		}), nil
	})

	return &node.Node{Kind: node.KindComponent, Fn: fn, Name: "Provider"}
}
