package render

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/verso-dev/verso/pkg/node"
)

// ErrInnerHTMLChildren is returned when a node carries the
// dangerouslySetInnerHTML prop and explicit children at the same time.
// This signals a caller bug and is never recovered from.
var ErrInnerHTMLChildren = errors.New("render: dangerouslySetInnerHTML requires zero children")

// ErrUnknownKind is returned for a node with an unrecognized kind.
var ErrUnknownKind = errors.New("render: unknown node kind")

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Logger receives debug-level notes about async resolution and
	// streaming. Nil disables logging.
	Logger *slog.Logger

	// Metrics, if set, observes render passes. See NewMetrics.
	Metrics *Metrics

	// Tracing enables OpenTelemetry spans around the render and await
	// phases, using the global tracer provider.
	Tracing bool
}

// Renderer serializes node trees to HTML. A Renderer is stateless
// across passes and safe for concurrent use.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	return &Renderer{config: config}
}

var defaultRenderer = NewRenderer(RendererConfig{})

// Render serializes root with the default renderer. See Renderer.Render.
func Render(root any) (*Result, error) {
	return defaultRenderer.Render(root)
}

// RenderToString serializes root with the default renderer and awaits
// the complete document.
func RenderToString(ctx context.Context, root any) (string, error) {
	return defaultRenderer.RenderToString(ctx, root)
}

// Render walks the tree depth-first in document order and returns a
// Result. The Result is ready immediately if and only if no
// asynchronous child was encountered anywhere in the tree.
//
// root may be anything the serializer accepts as a child: a *node.Node,
// a string, a node.Raw, a number, a *node.Pending, or a nested slice.
func (r *Renderer) Render(root any) (*Result, error) {
	return r.RenderWithContext(context.Background(), root)
}

// RenderWithContext is Render with an explicit context for trace
// propagation. The synchronous walk itself never blocks on ctx.
func (r *Renderer) RenderWithContext(ctx context.Context, root any) (*Result, error) {
	_, span := r.startSpan(ctx, "verso.render")
	start := time.Now()

	buf := newBuffer()
	err := r.renderChild(buf, root)

	r.spanStats(span, buf)
	r.endSpan(span, err)
	if m := r.config.Metrics; m != nil {
		m.observeRender(time.Since(start), buf, err)
	}
	if err != nil {
		return nil, err
	}
	if !buf.sync() && r.config.Logger != nil {
		r.config.Logger.Debug("render suspended on asynchronous content",
			"segments", buf.asyncs)
	}
	return &Result{r: r, buf: buf}, nil
}

// RenderToString renders root and awaits the complete document.
func (r *Renderer) RenderToString(ctx context.Context, root any) (string, error) {
	res, err := r.RenderWithContext(ctx, root)
	if err != nil {
		return "", err
	}
	return res.Await(ctx)
}

// RenderToWriter renders root, awaits the complete document, and
// writes it to w. For incremental output use StreamingRenderer.
func (r *Renderer) RenderToWriter(ctx context.Context, w io.Writer, root any) error {
	html, err := r.RenderToString(ctx, root)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, html)
	return err
}

// renderChild serializes one child value into buf. This is the single
// splice point for everything that can appear in a children list, in a
// component return value, in a hook override, or in a resolved
// pending.
func (r *Renderer) renderChild(buf *buffer, child any) error {
	switch v := child.(type) {
	case nil:
		return nil
	case string:
		buf.WriteString(escapeHTML(v))
		return nil
	case node.Raw:
		buf.WriteString(string(v))
		return nil
	case bool:
		// Booleans render nothing so conditionals can be inlined.
		return nil
	case *node.Node:
		return r.renderNode(buf, v)
	case *node.Pending:
		buf.pushPending(v)
		return nil
	case []any:
		for _, c := range v {
			if err := r.renderChild(buf, c); err != nil {
				return err
			}
		}
		return nil
	case []*node.Node:
		for _, c := range v {
			if err := r.renderNode(buf, c); err != nil {
				return err
			}
		}
		return nil
	case []string:
		for _, c := range v {
			buf.WriteString(escapeHTML(c))
		}
		return nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		buf.WriteString(numberString(v))
		return nil
	default:
		buf.WriteString(escapeHTML(fmt.Sprintf("%v", v)))
		return nil
	}
}

// renderNode serializes one node, firing its hooks around the
// variant-specific serialization.
func (r *Renderer) renderNode(buf *buffer, n *node.Node) error {
	if n == nil {
		return nil
	}
	buf.nodes++

	var ev *node.RenderEvent
	if n.HasHooks() {
		ev = node.NewRenderEvent(n, buf)
		if err := r.fireHooks(n, node.EventBeforeRender, ev); err != nil {
			return err
		}
	}

	if ev != nil && ev.Canceled() {
		if override, ok := ev.Content(); ok {
			if err := r.renderChild(buf, override); err != nil {
				return err
			}
		}
	} else {
		var err error
		switch n.Kind {
		case node.KindElement:
			err = r.renderElement(buf, n)
		case node.KindFragment:
			err = r.renderChild(buf, n.Children)
		case node.KindComponent:
			err = r.renderComponent(buf, n)
		default:
			err = fmt.Errorf("%w: %d", ErrUnknownKind, n.Kind)
		}
		if err != nil {
			return err
		}
	}

	if ev != nil {
		if err := r.fireHooks(n, node.EventAfterRender, ev); err != nil {
			return err
		}
	}
	return nil
}

// fireHooks fires the global event, then the name-scoped event.
func (r *Renderer) fireHooks(n *node.Node, event string, ev *node.RenderEvent) error {
	if err := n.Fire(event, ev); err != nil {
		return err
	}
	if name := n.HookName(); name != "" {
		return n.Fire(event+":"+name, ev)
	}
	return nil
}

// renderElement emits the open tag with encoded attributes, the
// children, and the close tag. Void tags self-terminate after the
// attributes even when children were supplied.
func (r *Renderer) renderElement(buf *buffer, n *node.Node) error {
	tag := n.Tag
	buf.WriteString("<")
	buf.WriteString(tag)
	r.renderAttributes(buf, n)
	buf.WriteString(">")

	if isVoidElement(tag) {
		return nil
	}

	if raw, ok := n.Props["dangerouslySetInnerHTML"]; ok {
		if len(n.Children) > 0 {
			return fmt.Errorf("%w: <%s>", ErrInnerHTMLChildren, tag)
		}
		buf.WriteString(rawString(raw))
	} else if err := r.renderChild(buf, n.Children); err != nil {
		return err
	}

	buf.WriteString("</")
	buf.WriteString(tag)
	buf.WriteString(">")
	return nil
}

// renderComponent invokes the component function and splices its
// return value through the child rules: a *Node recurses, a Pending
// opens an async segment, a Raw or number is appended verbatim, and
// plain text is escaped.
func (r *Renderer) renderComponent(buf *buffer, n *node.Node) error {
	out, err := n.Fn(n.ComponentProps())
	if err != nil {
		return fmt.Errorf("render: component %s: %w", n.Name, err)
	}
	return r.renderChild(buf, out)
}

// renderAttributes encodes the props as attribute syntax. Keys are
// walked in sorted order for deterministic output.
func (r *Renderer) renderAttributes(buf *buffer, n *node.Node) {
	if len(n.Props) == 0 {
		return
	}

	keys := make([]string, 0, len(n.Props))
	for key := range n.Props {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := n.Props[key]

		switch key {
		case "className":
			key = "class"
		case "htmlFor":
			key = "for"
		case "dangerouslySetInnerHTML":
			// Substituted as the sole child in renderElement.
			continue
		case "key":
			continue
		}

		if value == nil {
			continue
		}

		if key == "style" {
			if style, ok := styleMap(value); ok {
				buf.WriteString(` style="`)
				buf.WriteString(escapeAttr(styleString(style)))
				buf.WriteString(`"`)
				continue
			}
		}

		if boolValue, ok := value.(bool); ok && isBooleanAttr(key) {
			if boolValue {
				buf.WriteString(" ")
				buf.WriteString(key)
			}
			continue
		}

		buf.WriteString(" ")
		buf.WriteString(key)
		buf.WriteString(`="`)
		switch v := value.(type) {
		case node.Raw:
			buf.WriteString(string(v))
		case string:
			buf.WriteString(escapeAttr(v))
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
			buf.WriteString(numberString(v))
		default:
			buf.WriteString(escapeAttr(attrText(v)))
		}
		buf.WriteString(`"`)
	}
}

// styleMap normalizes the accepted style object forms.
func styleMap(value any) (map[string]any, bool) {
	switch v := value.(type) {
	case map[string]any:
		return v, true
	case map[string]string:
		m := make(map[string]any, len(v))
		for k, s := range v {
			m[k] = s
		}
		return m, true
	default:
		return nil, false
	}
}

// styleString flattens a style object to "property:value" pairs joined
// by ";". CamelCase property names become kebab-case.
func styleString(style map[string]any) string {
	keys := make([]string, 0, len(style))
	for key := range style {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, camelToKebab(key)+":"+attrText(style[key]))
	}
	return strings.Join(parts, ";")
}

// camelToKebab converts e.g. "backgroundColor" to "background-color".
func camelToKebab(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			sb.WriteByte('-')
			sb.WriteRune(r + ('a' - 'A'))
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// attrText converts an attribute or style value to text.
func attrText(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case node.Raw:
		return string(v)
	case bool:
		if v {
			return "true"
		}
		return "false"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return numberString(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// numberString formats numeric child and attribute values.
func numberString(value any) string {
	switch v := value.(type) {
	case int:
		return strconv.Itoa(v)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// rawString extracts the dangerouslySetInnerHTML payload.
func rawString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case node.Raw:
		return string(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
