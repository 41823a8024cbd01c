package editor

import "github.com/editkit/richdoc/document"

// Normalize repairs the tree in place: adjacent text nodes with identical
// marks are merged, and empty text nodes are dropped unless they are an
// element's only child.
func Normalize(doc *document.Document) {
	doc.Children = normalizeChildren(doc.Children)
}

func normalizeChildren(children []document.Node) []document.Node {
	for _, n := range children {
		if e, ok := n.(*document.Element); ok {
			e.Children = normalizeChildren(e.Children)
		}
	}

	out := children[:0]
	for _, n := range children {
		t, isText := n.(*document.Text)
		if isText && len(out) > 0 {
			if prev, ok := out[len(out)-1].(*document.Text); ok && sameMarks(prev, t) {
				prev.Content += t.Content
				continue
			}
		}
		out = append(out, n)
	}

	kept := out[:0]
	for _, n := range out {
		if t, isText := n.(*document.Text); isText && t.Content == "" && len(out) > 1 {
			continue
		}
		kept = append(kept, n)
	}
	return kept
}

func sameMarks(a, b *document.Text) bool {
	if len(a.Marks) != len(b.Marks) {
		return false
	}
	for i := range a.Marks {
		if a.Marks[i] != b.Marks[i] {
			return false
		}
	}
	return true
}
