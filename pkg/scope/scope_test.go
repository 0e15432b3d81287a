package scope

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/verso-dev/verso/pkg/node"
	"github.com/verso-dev/verso/pkg/render"
)

var theme = New("light")

func swatch(node.Props) (any, error) {
	return node.New("span", nil, theme.Use()), nil
}

func renderHTML(t *testing.T, v any) string {
	t.Helper()
	html, err := render.RenderToString(context.Background(), v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return html
}

func TestUseReturnsDefault(t *testing.T) {
	c := New(42)
	if got := c.Use(); got != 42 {
		t.Errorf("Use() = %v, want 42", got)
	}
}

func TestProviderValueVisibleToChildren(t *testing.T) {
	html := renderHTML(t, theme.Provider("dark",
		node.New(node.Component(swatch), nil)))
	if html != "<span>dark</span>" {
		t.Errorf("got %q, want %q", html, "<span>dark</span>")
	}
}

func TestAmbientValueRestoredAfterProvider(t *testing.T) {
	html := renderHTML(t, node.Fragment(
		theme.Provider("dark", node.New(node.Component(swatch), nil)),
		node.New(node.Component(swatch), nil),
	))
	want := "<span>dark</span><span>light</span>"
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestNestedProviders(t *testing.T) {
	html := renderHTML(t, theme.Provider("outer",
		node.New(node.Component(swatch), nil),
		theme.Provider("inner", node.New(node.Component(swatch), nil)),
		node.New(node.Component(swatch), nil),
	))
	want := "<span>outer</span><span>inner</span><span>outer</span>"
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestProviderWithAsyncChildren(t *testing.T) {
	deferred := node.Lazy(func(ctx context.Context) (any, error) {
		return node.New(node.Component(swatch), nil), nil
	})

	html := renderHTML(t, node.Fragment(
		theme.Provider("dark", "before ", deferred),
		node.New(node.Component(swatch), nil),
	))
	want := "before <span>dark</span><span>light</span>"
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
	if got := theme.Use(); got != "light" {
		t.Errorf("ambient value after render = %v, want light", got)
	}
}

func TestInterleavedPassesSeeOwnValue(t *testing.T) {
	build := func(value string) any {
		return theme.Provider(value, node.Lazy(func(ctx context.Context) (any, error) {
			return node.New(node.Component(swatch), nil), nil
		}))
	}

	// Two passes suspend on the same Context; awaiting them out of
	// creation order must still give each its own value.
	resA, err := render.Render(build("alpha"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	resB, err := render.Render(build("beta"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	htmlB, err := resB.Await(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	htmlA, err := resA.Await(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if htmlA != "<span>alpha</span>" {
		t.Errorf("first pass got %q", htmlA)
	}
	if htmlB != "<span>beta</span>" {
		t.Errorf("second pass got %q", htmlB)
	}
}

func TestProviderChildError(t *testing.T) {
	boom := errors.New("boom")
	failing := node.Component(func(node.Props) (any, error) { return nil, boom })

	_, err := render.RenderToString(context.Background(),
		theme.Provider("dark", node.New(failing, nil)))
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("err = %v, want wrapped boom", err)
	}
	if got := theme.Use(); got != "light" {
		t.Errorf("ambient value after failed render = %v, want light", got)
	}
}

func TestAsyncProviderChildError(t *testing.T) {
	boom := errors.New("late boom")
	failing := node.Lazy(func(ctx context.Context) (any, error) { return nil, boom })

	_, err := render.RenderToString(context.Background(),
		theme.Provider("dark", failing))
	if err == nil || !strings.Contains(err.Error(), "late boom") {
		t.Fatalf("err = %v, want wrapped late boom", err)
	}
	if got := theme.Use(); got != "light" {
		t.Errorf("ambient value after failed render = %v, want light", got)
	}
}
