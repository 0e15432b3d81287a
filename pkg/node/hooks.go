package node

// Render hook events. Each may be scoped to a tag or component name by
// appending ":" and the name, e.g. "beforeRender:div" fires only for
// <div> nodes and "afterRender:Card" only for the Card component.
const (
	EventBeforeRender = "beforeRender"
	EventAfterRender  = "afterRender"
)

// Listener observes one node's serialization. Returning an error aborts
// the render; this layer performs no recovery or isolation between
// listeners, and panics propagate to the caller.
type Listener func(e *RenderEvent) error

// hookSet stores listeners keyed by event name in registration order.
type hookSet struct {
	listeners map[string][]Listener
}

// On registers a render listener on this node. The registry is created
// on first use and is owned exclusively by this node. On returns the
// node so registrations can be chained onto construction.
func (n *Node) On(event string, fn Listener) *Node {
	if n.hooks == nil {
		n.hooks = &hookSet{listeners: make(map[string][]Listener)}
	}
	n.hooks.listeners[event] = append(n.hooks.listeners[event], fn)
	return n
}

// HasHooks reports whether any listener has been registered.
func (n *Node) HasHooks() bool {
	return n.hooks != nil
}

// Fire runs this node's listeners for the given event key in
// registration order, stopping at the first error.
func (n *Node) Fire(event string, e *RenderEvent) error {
	if n.hooks == nil {
		return nil
	}
	for _, fn := range n.hooks.listeners[event] {
		if err := fn(e); err != nil {
			return err
		}
	}
	return nil
}

// Appender is the live output target a listener may write to directly.
// Text passed to Append is emitted verbatim, without escaping.
type Appender interface {
	Append(text string)
}

// RenderEvent is the ephemeral record passed to listeners. One event is
// created per node per serialization pass and shared by the before and
// after phases of that pass.
type RenderEvent struct {
	// Node is the node being serialized.
	Node *Node

	// Out is the live output target at the node's position.
	Out Appender

	canceled    bool
	override    any
	hasOverride bool
}

// NewRenderEvent builds the per-pass event record for a node.
func NewRenderEvent(n *Node, out Appender) *RenderEvent {
	return &RenderEvent{Node: n, Out: out}
}

// Cancel suppresses the node's ordinary serialization. AfterRender
// listeners still fire.
func (e *RenderEvent) Cancel() {
	e.canceled = true
}

// Canceled reports whether ordinary serialization is suppressed.
func (e *RenderEvent) Canceled() bool {
	return e.canceled
}

// SetContent cancels ordinary serialization and substitutes v as the
// node's entire rendered output. v may be any child value the
// serializer accepts, including a *Pending.
func (e *RenderEvent) SetContent(v any) {
	e.canceled = true
	e.override = v
	e.hasOverride = true
}

// Content returns the override value, if one was set.
func (e *RenderEvent) Content() (any, bool) {
	return e.override, e.hasOverride
}
