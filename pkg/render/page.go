package render

import (
	"context"
	"fmt"
	"io"
)

// Page contains the data needed to render a complete HTML document
// around a body tree.
type Page struct {
	// Body is the root child value for the page content.
	Body any

	// Title is the page title.
	Title string

	// Lang is the language attribute for the html element.
	// Defaults to "en" if not specified.
	Lang string

	// Meta contains meta tags for the page head.
	Meta []MetaTag

	// StyleSheets contains paths to external stylesheets.
	StyleSheets []string

	// Styles contains inline CSS blocks.
	Styles []string
}

// MetaTag represents a meta element in the document head.
type MetaTag struct {
	Name      string // name attribute
	Content   string // content attribute
	Property  string // property attribute (for OpenGraph)
	HTTPEquiv string // http-equiv attribute
	Charset   string // charset attribute
}

// RenderPage renders a complete HTML document with DOCTYPE, head, and
// body to w, awaiting any asynchronous content in the body.
func (r *Renderer) RenderPage(ctx context.Context, w io.Writer, page Page) error {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	if _, err := io.WriteString(w, "<!DOCTYPE html>\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, `<html lang="%s">`+"\n", escapeAttr(lang)); err != nil {
		return err
	}

	if err := r.renderHead(w, page); err != nil {
		return err
	}

	if _, err := io.WriteString(w, "<body>"); err != nil {
		return err
	}
	if err := r.RenderToWriter(ctx, w, page.Body); err != nil {
		return err
	}
	_, err := io.WriteString(w, "</body>\n</html>\n")
	return err
}

func (r *Renderer) renderHead(w io.Writer, page Page) error {
	if _, err := io.WriteString(w, "<head>\n"); err != nil {
		return err
	}
	if _, err := io.WriteString(w, `<meta charset="utf-8">`+"\n"); err != nil {
		return err
	}
	if page.Title != "" {
		if _, err := fmt.Fprintf(w, "<title>%s</title>\n", escapeHTML(page.Title)); err != nil {
			return err
		}
	}
	for _, meta := range page.Meta {
		if err := writeMetaTag(w, meta); err != nil {
			return err
		}
	}
	for _, href := range page.StyleSheets {
		if _, err := fmt.Fprintf(w, `<link rel="stylesheet" href="%s">`+"\n", escapeAttr(href)); err != nil {
			return err
		}
	}
	for _, css := range page.Styles {
		if _, err := fmt.Fprintf(w, "<style>%s</style>\n", css); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</head>\n")
	return err
}

func writeMetaTag(w io.Writer, meta MetaTag) error {
	if meta.Charset != "" {
		_, err := fmt.Fprintf(w, `<meta charset="%s">`+"\n", escapeAttr(meta.Charset))
		return err
	}
	if meta.Name != "" {
		_, err := fmt.Fprintf(w, `<meta name="%s" content="%s">`+"\n",
			escapeAttr(meta.Name), escapeAttr(meta.Content))
		return err
	}
	if meta.Property != "" {
		_, err := fmt.Fprintf(w, `<meta property="%s" content="%s">`+"\n",
			escapeAttr(meta.Property), escapeAttr(meta.Content))
		return err
	}
	if meta.HTTPEquiv != "" {
		_, err := fmt.Fprintf(w, `<meta http-equiv="%s" content="%s">`+"\n",
			escapeAttr(meta.HTTPEquiv), escapeAttr(meta.Content))
		return err
	}
	return nil
}
