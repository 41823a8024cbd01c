package document

import (
	"reflect"
	"sort"
	"strings"
)

// Node is a member of a document tree: either an *Element or a *Text.
type Node interface {
	node()
}

// Ancestor is a node that carries children: the document root or an element.
type Ancestor interface {
	ChildNodes() []Node
}

// Document is the root container of a rich-text tree. It is an ancestor but
// never a descendant: paths address its children, not the root itself.
type Document struct {
	Children []Node
}

// Element is a structural node ("quote", "paragraph", ...) wrapping children.
type Element struct {
	Type     string
	Attrs    map[string]any
	Children []Node
}

// Text is a leaf node holding literal content and optional formatting marks.
// Marks are kept sorted and deduplicated.
type Text struct {
	Content string
	Marks   []string
}

func (*Element) node() {}
func (*Text) node()    {}

func (d *Document) ChildNodes() []Node { return d.Children }
func (e *Element) ChildNodes() []Node  { return e.Children }

// NodeEntry pairs a node with its path relative to the document root.
type NodeEntry struct {
	Node Node
	Path Path
}

// AncestorEntry pairs an ancestor with its path. The root has the empty path.
type AncestorEntry struct {
	Ancestor Ancestor
	Path     Path
}

// Get returns the descendant at path. The empty path addresses no descendant.
func (d *Document) Get(p Path) (Node, bool) {
	if len(p) == 0 {
		return nil, false
	}
	var cur Ancestor = d
	for i := 0; i < len(p)-1; i++ {
		children := cur.ChildNodes()
		if p[i] < 0 || p[i] >= len(children) {
			return nil, false
		}
		next, ok := children[p[i]].(*Element)
		if !ok {
			return nil, false
		}
		cur = next
	}
	children := cur.ChildNodes()
	last := p[len(p)-1]
	if last < 0 || last >= len(children) {
		return nil, false
	}
	return children[last], true
}

// GetAncestor returns the ancestor at path; the empty path yields the root.
func (d *Document) GetAncestor(p Path) (Ancestor, bool) {
	if len(p) == 0 {
		return d, true
	}
	n, ok := d.Get(p)
	if !ok {
		return nil, false
	}
	e, ok := n.(*Element)
	if !ok {
		return nil, false
	}
	return e, true
}

// GetText returns the text node at path.
func (d *Document) GetText(p Path) (*Text, bool) {
	n, ok := d.Get(p)
	if !ok {
		return nil, false
	}
	t, ok := n.(*Text)
	return t, ok
}

// Has reports whether a descendant exists at path.
func (d *Document) Has(p Path) bool {
	if len(p) == 0 {
		return false
	}
	_, ok := d.Get(p)
	return ok
}

// ChildEntries lists the children of the ancestor at path, with their paths.
func (d *Document) ChildEntries(p Path, reverse bool) []NodeEntry {
	anc, ok := d.GetAncestor(p)
	if !ok {
		return nil
	}
	children := anc.ChildNodes()
	out := make([]NodeEntry, 0, len(children))
	for i, c := range children {
		out = append(out, NodeEntry{Node: c, Path: p.Concat(i)})
	}
	if reverse {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

// AncestorEntries lists the ancestors above path, root first (or last when
// reversed). The node at path itself is not included.
func (d *Document) AncestorEntries(p Path, reverse bool) []AncestorEntry {
	var out []AncestorEntry
	for _, ap := range p.Ancestors(reverse) {
		anc, ok := d.GetAncestor(ap)
		if !ok {
			return nil
		}
		out = append(out, AncestorEntry{Ancestor: anc, Path: ap})
	}
	return out
}

// Walk visits every descendant in document order (parents before children).
// Returning false from fn stops the walk.
func (d *Document) Walk(fn func(NodeEntry) bool) {
	walkNodes(d.Children, nil, fn)
}

func walkNodes(nodes []Node, prefix Path, fn func(NodeEntry) bool) bool {
	for i, n := range nodes {
		p := prefix.Concat(i)
		if !fn(NodeEntry{Node: n, Path: p}) {
			return false
		}
		if e, ok := n.(*Element); ok {
			if !walkNodes(e.Children, p, fn) {
				return false
			}
		}
	}
	return true
}

// Texts collects every text node in document order.
// WalkSpan visits the entries whose paths fall inside the span, in document
// order. Return false from fn to stop early.
func (d *Document) WalkSpan(s Span, fn func(NodeEntry) bool) {
	d.Walk(func(entry NodeEntry) bool {
		if entry.Path.IsAfter(s.To) {
			return false
		}
		if !s.Includes(entry.Path) {
			return true
		}
		return fn(entry)
	})
}

func (d *Document) Texts() []NodeEntry {
	var out []NodeEntry
	d.Walk(func(entry NodeEntry) bool {
		if _, ok := entry.Node.(*Text); ok {
			out = append(out, entry)
		}
		return true
	})
	return out
}

// PlainText concatenates the content of every text node in document order.
func (d *Document) PlainText() string {
	var sb strings.Builder
	d.Walk(func(entry NodeEntry) bool {
		if t, ok := entry.Node.(*Text); ok {
			sb.WriteString(t.Content)
		}
		return true
	})
	return sb.String()
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	return &Document{Children: cloneNodes(d.Children)}
}

// CloneNode returns a deep copy of a single node.
func CloneNode(n Node) Node {
	switch n := n.(type) {
	case *Element:
		var attrs map[string]any
		if n.Attrs != nil {
			attrs = make(map[string]any, len(n.Attrs))
			for k, v := range n.Attrs {
				attrs[k] = v
			}
		}
		return &Element{Type: n.Type, Attrs: attrs, Children: cloneNodes(n.Children)}
	case *Text:
		return &Text{Content: n.Content, Marks: append([]string(nil), n.Marks...)}
	default:
		return nil
	}
}

func cloneNodes(nodes []Node) []Node {
	if nodes == nil {
		return nil
	}
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		out[i] = CloneNode(n)
	}
	return out
}

// Equal reports deep structural equality of two documents.
func (d *Document) Equal(other *Document) bool {
	return nodesEqual(d.Children, other.Children)
}

// NodesEqual reports deep structural equality of two nodes.
func NodesEqual(a, b Node) bool {
	switch a := a.(type) {
	case *Element:
		eb, ok := b.(*Element)
		if !ok || a.Type != eb.Type || !attrsEqual(a.Attrs, eb.Attrs) {
			return false
		}
		return nodesEqual(a.Children, eb.Children)
	case *Text:
		tb, ok := b.(*Text)
		if !ok || a.Content != tb.Content || len(a.Marks) != len(tb.Marks) {
			return false
		}
		for i := range a.Marks {
			if a.Marks[i] != tb.Marks[i] {
				return false
			}
		}
		return true
	default:
		return a == nil && b == nil
	}
}

func nodesEqual(a, b []Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !NodesEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

func attrsEqual(a, b map[string]any) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		// Attr values may hold nested JSON data, so deep comparison it is.
		if !ok || !reflect.DeepEqual(av, bv) {
			return false
		}
	}
	return true
}

// HasMark reports whether the text carries the given mark.
func (t *Text) HasMark(mark string) bool {
	for _, m := range t.Marks {
		if m == mark {
			return true
		}
	}
	return false
}

// MatchesMarks reports whether a carries every mark of b.
func MatchesMarks(a, b *Text) bool {
	for _, m := range b.Marks {
		if !a.HasMark(m) {
			return false
		}
	}
	return true
}

// NewText builds a text node, normalizing the mark set.
func NewText(content string, marks ...string) *Text {
	return &Text{Content: content, Marks: normalizeMarks(marks)}
}

// NewElement builds an element node.
func NewElement(typ string, children ...Node) *Element {
	return &Element{Type: typ, Children: children}
}

func normalizeMarks(marks []string) []string {
	if len(marks) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(marks))
	out := make([]string, 0, len(marks))
	for _, m := range marks {
		if _, dup := seen[m]; dup {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}
