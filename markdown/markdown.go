// Package markdown imports Markdown sources into document trees using
// goldmark.
package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/editkit/richdoc/document"
	"github.com/editkit/richdoc/editor"
)

// Import parses a Markdown source and converts it into a document tree.
func Import(source []byte) (*document.Document, error) {
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(source))

	doc := &document.Document{}
	for c := root.FirstChild(); c != nil; c = c.NextSibling() {
		if n := convertBlock(c, source); n != nil {
			doc.Children = append(doc.Children, n)
		}
	}
	editor.Normalize(doc)
	return doc, nil
}

func convertBlock(n ast.Node, source []byte) document.Node {
	switch n := n.(type) {
	case *ast.Heading:
		return &document.Element{
			Type:     "heading",
			Attrs:    map[string]any{"level": n.Level},
			Children: convertInlines(n, source, nil),
		}
	case *ast.Paragraph:
		return &document.Element{Type: "paragraph", Children: convertInlines(n, source, nil)}
	case *ast.TextBlock:
		return &document.Element{Type: "paragraph", Children: convertInlines(n, source, nil)}
	case *ast.Blockquote:
		return &document.Element{Type: "quote", Children: convertBlocks(n, source)}
	case *ast.List:
		attrs := map[string]any{"ordered": n.IsOrdered()}
		return &document.Element{Type: "list", Attrs: attrs, Children: convertBlocks(n, source)}
	case *ast.ListItem:
		return &document.Element{Type: "list-item", Children: convertBlocks(n, source)}
	case *ast.FencedCodeBlock:
		attrs := map[string]any{}
		if lang := n.Language(source); len(lang) > 0 {
			attrs["language"] = string(lang)
		}
		return &document.Element{
			Type:     "code",
			Attrs:    attrs,
			Children: []document.Node{document.NewText(blockLines(n, source))},
		}
	case *ast.CodeBlock:
		return &document.Element{
			Type:     "code",
			Children: []document.Node{document.NewText(blockLines(n, source))},
		}
	case *ast.ThematicBreak:
		return &document.Element{Type: "divider"}
	default:
		return nil
	}
}

func convertBlocks(n ast.Node, source []byte) []document.Node {
	var out []document.Node
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if b := convertBlock(c, source); b != nil {
			out = append(out, b)
		}
	}
	return out
}

func convertInlines(n ast.Node, source []byte, marks []string) []document.Node {
	var out []document.Node
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch c := c.(type) {
		case *ast.Text:
			content := string(c.Segment.Value(source))
			if c.SoftLineBreak() || c.HardLineBreak() {
				content += " "
			}
			out = append(out, document.NewText(content, marks...))
		case *ast.Emphasis:
			mark := "italic"
			if c.Level >= 2 {
				mark = "bold"
			}
			out = append(out, convertInlines(c, source, append(marks, mark))...)
		case *ast.CodeSpan:
			out = append(out, document.NewText(spanText(c, source), append(marks, "code")...))
		case *ast.Link:
			out = append(out, &document.Element{
				Type:     "link",
				Attrs:    map[string]any{"href": string(c.Destination)},
				Children: convertInlines(c, source, marks),
			})
		case *ast.AutoLink:
			url := string(c.URL(source))
			out = append(out, &document.Element{
				Type:     "link",
				Attrs:    map[string]any{"href": url},
				Children: []document.Node{document.NewText(url, marks...)},
			})
		case *ast.Image:
			out = append(out, &document.Element{
				Type:  "image",
				Attrs: map[string]any{"src": string(c.Destination)},
			})
		default:
			out = append(out, convertInlines(c, source, marks)...)
		}
	}
	return out
}

func spanText(n ast.Node, source []byte) string {
	var sb strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			sb.Write(t.Segment.Value(source))
		}
	}
	return sb.String()
}

func blockLines(n ast.Node, source []byte) string {
	var sb strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(source))
	}
	return strings.TrimSuffix(sb.String(), "\n")
}
