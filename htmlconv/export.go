package htmlconv

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/editkit/richdoc/document"
)

// Export writes the document as HTML. Blocks whose dominant script is
// right-to-left get a dir="rtl" attribute.
func Export(w io.Writer, doc *document.Document) error {
	for _, n := range doc.Children {
		if err := exportNode(w, n); err != nil {
			return err
		}
	}
	return nil
}

func exportNode(w io.Writer, n document.Node) error {
	switch n := n.(type) {
	case *document.Element:
		return exportElement(w, n)
	case *document.Text:
		return exportText(w, n)
	default:
		return fmt.Errorf("unknown node %T", n)
	}
}

func exportElement(w io.Writer, e *document.Element) error {
	switch e.Type {
	case "paragraph":
		return wrapBlock(w, "p", e)
	case "quote":
		return wrapBlock(w, "blockquote", e)
	case "heading":
		level := 1
		if v, ok := e.Attrs["level"].(int); ok && v >= 1 && v <= 6 {
			level = v
		} else if v, ok := e.Attrs["level"].(float64); ok && v >= 1 && v <= 6 {
			level = int(v)
		}
		return wrapBlock(w, fmt.Sprintf("h%d", level), e)
	case "list":
		tag := "ul"
		if ordered, ok := e.Attrs["ordered"].(bool); ok && ordered {
			tag = "ol"
		}
		return wrapBlock(w, tag, e)
	case "list-item":
		return wrapBlock(w, "li", e)
	case "code":
		if _, err := io.WriteString(w, "<pre><code>"); err != nil {
			return err
		}
		for _, c := range e.Children {
			if t, ok := c.(*document.Text); ok {
				if _, err := io.WriteString(w, html.EscapeString(t.Content)); err != nil {
					return err
				}
			}
		}
		_, err := io.WriteString(w, "</code></pre>\n")
		return err
	case "divider":
		_, err := io.WriteString(w, "<hr/>\n")
		return err
	case "link":
		href := html.EscapeString(attrString(e, "href"))
		if _, err := fmt.Fprintf(w, `<a href=%q>`, href); err != nil {
			return err
		}
		for _, c := range e.Children {
			if err := exportNode(w, c); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</a>")
		return err
	case "image":
		src := html.EscapeString(attrString(e, "src"))
		var size string
		if wv, hv, ok := imageSize(e); ok {
			size = fmt.Sprintf(` width="%d" height="%d"`, wv, hv)
		}
		_, err := fmt.Fprintf(w, `<img src=%q%s/>`+"\n", src, size)
		return err
	default:
		return wrapBlock(w, "div", e)
	}
}

func wrapBlock(w io.Writer, tag string, e *document.Element) error {
	dir := ""
	if isRTL(plainText(e)) {
		dir = ` dir="rtl"`
	}
	if _, err := fmt.Fprintf(w, "<%s%s>", tag, dir); err != nil {
		return err
	}
	for _, c := range e.Children {
		if err := exportNode(w, c); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "</%s>\n", tag)
	return err
}

// Mark tags nest in a fixed order so equal texts always serialize the same.
var markTags = []struct{ mark, tag string }{
	{"bold", "strong"},
	{"italic", "em"},
	{"underline", "u"},
	{"code", "code"},
}

func exportText(w io.Writer, t *document.Text) error {
	var sb strings.Builder
	for _, mt := range markTags {
		if t.HasMark(mt.mark) {
			sb.WriteString("<" + mt.tag + ">")
		}
	}
	sb.WriteString(html.EscapeString(t.Content))
	for i := len(markTags) - 1; i >= 0; i-- {
		if t.HasMark(markTags[i].mark) {
			sb.WriteString("</" + markTags[i].tag + ">")
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func attrString(e *document.Element, key string) string {
	if v, ok := e.Attrs[key].(string); ok {
		return v
	}
	return ""
}

func imageSize(e *document.Element) (int, int, bool) {
	wv, wok := intAttr(e, "width")
	hv, hok := intAttr(e, "height")
	return wv, hv, wok && hok
}

func intAttr(e *document.Element, key string) (int, bool) {
	switch v := e.Attrs[key].(type) {
	case int:
		return v, true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

func plainText(e *document.Element) string {
	var sb strings.Builder
	var walk func(n document.Node)
	walk = func(n document.Node) {
		switch n := n.(type) {
		case *document.Text:
			sb.WriteString(n.Content)
		case *document.Element:
			for _, c := range n.Children {
				walk(c)
			}
		}
	}
	walk(e)
	return sb.String()
}
