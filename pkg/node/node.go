package node

import (
	"reflect"
	"runtime"
	"strings"
)

// Kind is the node type discriminator.
type Kind uint8

const (
	KindElement   Kind = iota // <div>, <button>, etc.
	KindFragment              // Grouping without wrapper
	KindComponent             // Function component invocation
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindFragment:
		return "Fragment"
	case KindComponent:
		return "Component"
	default:
		return "Unknown"
	}
}

// Props holds attributes for elements and input values for components.
type Props map[string]any

// Component is a function component. It receives its props with the
// reserved "children" key holding the child value (the single child if
// exactly one was supplied, otherwise the full ordered slice), and
// returns anything the serializer accepts as a child: a *Node, a string,
// a Raw, a number, a *Pending, or a nested slice.
type Component func(props Props) (any, error)

// Raw marks a string as already escaped. It is emitted verbatim when
// used as a child or attribute value.
type Raw string

// Node is one renderable unit: an element, a component invocation, or a
// fragment. A Node never escapes or flattens anything at construction;
// all encoding happens when it is serialized. Rendered Node output is
// treated as pre-escaped, so nesting a Node inside another Node never
// double-escapes.
type Node struct {
	Kind     Kind
	Tag      string    // Element tag name (e.g. "div")
	Fn       Component // For KindComponent
	Name     string    // Component name, used for scoped hooks
	Props    Props
	Children []any

	// hooks is lazily created on the first On call and is owned
	// exclusively by this node.
	hooks *hookSet
}

// New builds a Node from a tag, a props map, and ordered children.
//
// The tag selects the variant: a non-empty string builds an element, the
// empty string builds a fragment, and a Component (or any func with the
// Component signature) builds a component invocation. Children are kept
// exactly as given; nested slices are flattened only at render time.
func New(tag any, props Props, children ...any) *Node {
	switch t := tag.(type) {
	case string:
		if t == "" {
			return &Node{Kind: KindFragment, Props: props, Children: children}
		}
		return &Node{Kind: KindElement, Tag: t, Props: props, Children: children}
	case Component:
		return &Node{Kind: KindComponent, Fn: t, Name: funcName(t), Props: props, Children: children}
	case func(Props) (any, error):
		fn := Component(t)
		return &Node{Kind: KindComponent, Fn: fn, Name: funcName(fn), Props: props, Children: children}
	default:
		panic("node: unsupported tag type " + reflect.TypeOf(tag).String())
	}
}

// Fragment groups children without a wrapper element.
func Fragment(children ...any) *Node {
	return &Node{Kind: KindFragment, Children: children}
}

// ComponentProps returns the props a component function receives: the
// node's own props plus the reserved "children" key. The node's props
// map is never mutated.
func (n *Node) ComponentProps() Props {
	props := make(Props, len(n.Props)+1)
	for k, v := range n.Props {
		props[k] = v
	}
	switch len(n.Children) {
	case 0:
		props["children"] = nil
	case 1:
		props["children"] = n.Children[0]
	default:
		props["children"] = n.Children
	}
	return props
}

// HookName returns the name used for name-scoped hook events: the tag
// for elements, the component name for components.
func (n *Node) HookName() string {
	if n.Kind == KindComponent {
		return n.Name
	}
	return n.Tag
}

// funcName derives a short component name from the function symbol,
// e.g. "github.com/acme/app/ui.Card" -> "Card".
func funcName(fn Component) string {
	pc := reflect.ValueOf(fn).Pointer()
	f := runtime.FuncForPC(pc)
	if f == nil {
		return ""
	}
	name := f.Name()
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	// Method values and closures carry -fm / .funcN suffixes.
	name = strings.TrimSuffix(name, "-fm")
	return name
}
