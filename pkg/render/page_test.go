package render

import (
	"context"
	"strings"
	"testing"

	"github.com/verso-dev/verso/pkg/node"
)

func TestRenderPage(t *testing.T) {
	var sb strings.Builder
	page := Page{
		Title:       "Hello <World>",
		Meta:        []MetaTag{{Name: "description", Content: "a & b"}},
		StyleSheets: []string{"/app.css"},
		Styles:      []string{"body{margin:0}"},
		Body:        node.New("main", nil, "content"),
	}

	err := NewRenderer(RendererConfig{}).RenderPage(context.Background(), &sb, page)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	html := sb.String()

	checks := []string{
		"<!DOCTYPE html>",
		`<html lang="en">`,
		`<meta charset="utf-8">`,
		"<title>Hello &lt;World&gt;</title>",
		`<meta name="description" content="a &amp; b">`,
		`<link rel="stylesheet" href="/app.css">`,
		"<style>body{margin:0}</style>",
		"<body><main>content</main></body>",
	}
	for _, want := range checks {
		if !strings.Contains(html, want) {
			t.Errorf("page should contain %q, got:\n%s", want, html)
		}
	}
}

func TestRenderPageLang(t *testing.T) {
	var sb strings.Builder
	err := NewRenderer(RendererConfig{}).RenderPage(context.Background(), &sb,
		Page{Lang: "de", Body: "x"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(sb.String(), `<html lang="de">`) {
		t.Errorf("lang not applied: %s", sb.String())
	}
}

func TestRenderPageAsyncBody(t *testing.T) {
	var sb strings.Builder
	body := node.New("div", nil, node.Resolved("async content"))
	err := NewRenderer(RendererConfig{}).RenderPage(context.Background(), &sb, Page{Body: body})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(sb.String(), "<div>async content</div>") {
		t.Errorf("async body not rendered: %s", sb.String())
	}
}
