// Package htmlconv converts between HTML and document trees.
package htmlconv

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/editkit/richdoc/document"
	"github.com/editkit/richdoc/editor"
	"github.com/editkit/richdoc/media"
)

// Importer converts HTML into document trees.
type Importer struct {
	// Images, when set, probes local image files referenced by <img src>
	// to fill width/height attrs. Probe failures are ignored.
	Images *media.Prober
}

// Import parses HTML and converts the body into a document tree.
func (im *Importer) Import(r io.Reader) (*document.Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	body := findBody(root)
	if body == nil {
		body = root
	}
	doc := &document.Document{}
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		doc.Children = append(doc.Children, im.convertBlock(c)...)
	}
	editor.Normalize(doc)
	return doc, nil
}

// Import converts HTML with the default importer.
func Import(r io.Reader) (*document.Document, error) {
	im := &Importer{}
	return im.Import(r)
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == atom.Body {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if body := findBody(c); body != nil {
			return body
		}
	}
	return nil
}

func (im *Importer) convertBlock(n *html.Node) []document.Node {
	if n.Type == html.TextNode {
		if strings.TrimSpace(n.Data) == "" {
			return nil
		}
		return []document.Node{&document.Element{
			Type:     "paragraph",
			Children: []document.Node{document.NewText(collapseSpace(n.Data))},
		}}
	}
	if n.Type != html.ElementNode {
		return nil
	}

	switch n.DataAtom {
	case atom.P:
		return []document.Node{&document.Element{Type: "paragraph", Children: im.convertInlines(n, nil)}}
	case atom.Blockquote:
		return []document.Node{&document.Element{Type: "quote", Children: im.convertChildren(n)}}
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		return []document.Node{&document.Element{
			Type:     "heading",
			Attrs:    map[string]any{"level": headingLevel(n.DataAtom)},
			Children: im.convertInlines(n, nil),
		}}
	case atom.Ul, atom.Ol:
		return []document.Node{&document.Element{
			Type:     "list",
			Attrs:    map[string]any{"ordered": n.DataAtom == atom.Ol},
			Children: im.convertChildren(n),
		}}
	case atom.Li:
		return []document.Node{&document.Element{Type: "list-item", Children: im.convertChildren(n)}}
	case atom.Pre:
		return []document.Node{&document.Element{
			Type:     "code",
			Children: []document.Node{document.NewText(strings.TrimSuffix(extractText(n), "\n"))},
		}}
	case atom.Hr:
		return []document.Node{&document.Element{Type: "divider"}}
	case atom.Img:
		return []document.Node{im.convertImage(n)}
	case atom.Div, atom.Section, atom.Article, atom.Main:
		return im.convertChildren(n)
	default:
		// Unknown block-ish tags contribute their children.
		return im.convertChildren(n)
	}
}

func headingLevel(a atom.Atom) int {
	switch a {
	case atom.H1:
		return 1
	case atom.H2:
		return 2
	case atom.H3:
		return 3
	case atom.H4:
		return 4
	case atom.H5:
		return 5
	default:
		return 6
	}
}

func (im *Importer) convertChildren(n *html.Node) []document.Node {
	var out []document.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, im.convertBlock(c)...)
	}
	return out
}

func (im *Importer) convertInlines(n *html.Node, marks []string) []document.Node {
	var out []document.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch {
		case c.Type == html.TextNode:
			out = append(out, document.NewText(collapseSpace(c.Data), marks...))
		case c.Type != html.ElementNode:
			continue
		default:
			switch c.DataAtom {
			case atom.B, atom.Strong:
				out = append(out, im.convertInlines(c, append(marks, "bold"))...)
			case atom.I, atom.Em:
				out = append(out, im.convertInlines(c, append(marks, "italic"))...)
			case atom.U:
				out = append(out, im.convertInlines(c, append(marks, "underline"))...)
			case atom.Code:
				out = append(out, im.convertInlines(c, append(marks, "code"))...)
			case atom.A:
				link := &document.Element{
					Type:     "link",
					Attrs:    map[string]any{"href": attrValue(c, "href")},
					Children: im.convertInlines(c, marks),
				}
				out = append(out, link)
			case atom.Br:
				out = append(out, document.NewText("\n", marks...))
			case atom.Img:
				out = append(out, im.convertImage(c))
			default:
				out = append(out, im.convertInlines(c, marks)...)
			}
		}
	}
	return out
}

func (im *Importer) convertImage(n *html.Node) document.Node {
	src := attrValue(n, "src")
	attrs := map[string]any{"src": src}
	if alt := attrValue(n, "alt"); alt != "" {
		attrs["alt"] = alt
	}
	if im.Images != nil && src != "" && !strings.Contains(src, "://") {
		if info, err := im.Images.ProbeFile(src); err == nil {
			attrs["width"] = info.Width
			attrs["height"] = info.Height
		}
	}
	return &document.Element{Type: "image", Attrs: attrs}
}

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func extractText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

func collapseSpace(s string) string {
	return strings.Join(strings.FieldsFunc(s, func(r rune) bool {
		return r == '\n' || r == '\t' || r == '\r'
	}), " ")
}
