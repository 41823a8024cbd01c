package document

import "testing"

func sampleDoc() *Document {
	return &Document{Children: []Node{
		NewElement("quote",
			NewElement("paragraph",
				NewText("a"),
				NewText("b", "bold"),
			),
		),
		NewElement("paragraph",
			NewText("c"),
		),
	}}
}

func TestGet(t *testing.T) {
	doc := sampleDoc()

	n, ok := doc.Get(Path{0})
	if !ok {
		t.Fatalf("expected node at [0]")
	}
	if e, ok := n.(*Element); !ok || e.Type != "quote" {
		t.Fatalf("expected quote element, got %#v", n)
	}

	n, ok = doc.Get(Path{0, 0, 1})
	if !ok {
		t.Fatalf("expected node at [0 0 1]")
	}
	if txt, ok := n.(*Text); !ok || txt.Content != "b" || !txt.HasMark("bold") {
		t.Fatalf("expected bold text b, got %#v", n)
	}

	if _, ok := doc.Get(Path{}); ok {
		t.Fatalf("empty path addresses no descendant")
	}
	if _, ok := doc.Get(Path{0, 0, 0, 0}); ok {
		t.Fatalf("text nodes have no children")
	}
	if _, ok := doc.Get(Path{5}); ok {
		t.Fatalf("out of range index should fail")
	}
}

func TestGetAncestor(t *testing.T) {
	doc := sampleDoc()

	anc, ok := doc.GetAncestor(Path{})
	if !ok || anc != Ancestor(doc) {
		t.Fatalf("empty path should yield the root")
	}

	anc, ok = doc.GetAncestor(Path{0})
	if !ok {
		t.Fatalf("expected ancestor at [0]")
	}
	if e, ok := anc.(*Element); !ok || e.Type != "quote" {
		t.Fatalf("expected quote, got %#v", anc)
	}

	if _, ok := doc.GetAncestor(Path{0, 0, 0}); ok {
		t.Fatalf("a text node is not an ancestor")
	}
}

func TestChildEntries(t *testing.T) {
	doc := sampleDoc()

	entries := doc.ChildEntries(Path{0, 0}, false)
	if len(entries) != 2 {
		t.Fatalf("expected 2 children, got %d", len(entries))
	}
	if !entries[0].Path.Equal(Path{0, 0, 0}) || !entries[1].Path.Equal(Path{0, 0, 1}) {
		t.Fatalf("unexpected paths: %v %v", entries[0].Path, entries[1].Path)
	}

	rev := doc.ChildEntries(Path{0, 0}, true)
	if !rev[0].Path.Equal(Path{0, 0, 1}) {
		t.Fatalf("expected reversed order, got %v first", rev[0].Path)
	}
}

func TestAncestorEntries(t *testing.T) {
	doc := sampleDoc()

	entries := doc.AncestorEntries(Path{0, 0}, false)
	if len(entries) != 2 {
		t.Fatalf("expected root and quote, got %d entries", len(entries))
	}
	if len(entries[0].Path) != 0 {
		t.Fatalf("first ancestor should be the root, got %v", entries[0].Path)
	}
	if e, ok := entries[1].Ancestor.(*Element); !ok || e.Type != "quote" {
		t.Fatalf("expected quote ancestor, got %#v", entries[1].Ancestor)
	}

	rev := doc.AncestorEntries(Path{0, 0}, true)
	if len(rev[0].Path) != 1 {
		t.Fatalf("reversed should start nearest, got %v", rev[0].Path)
	}
}

func TestWalkOrder(t *testing.T) {
	doc := sampleDoc()

	var paths []Path
	doc.Walk(func(entry NodeEntry) bool {
		paths = append(paths, entry.Path)
		return true
	})

	want := []Path{{0}, {0, 0}, {0, 0, 0}, {0, 0, 1}, {1}, {1, 0}}
	if len(paths) != len(want) {
		t.Fatalf("expected %d entries, got %d (%v)", len(want), len(paths), paths)
	}
	for i := range want {
		if !paths[i].Equal(want[i]) {
			t.Fatalf("entry %d: expected %v, got %v", i, want[i], paths[i])
		}
	}
}

func TestWalkStops(t *testing.T) {
	doc := sampleDoc()
	count := 0
	doc.Walk(func(NodeEntry) bool {
		count++
		return count < 3
	})
	if count != 3 {
		t.Fatalf("expected walk to stop after 3 nodes, visited %d", count)
	}
}

func TestWalkSpan(t *testing.T) {
	doc := sampleDoc()

	var got []Path
	doc.WalkSpan(Span{From: Path{0, 0, 1}, To: Path{1}}, func(entry NodeEntry) bool {
		got = append(got, entry.Path)
		return true
	})
	// Ancestors of a bound compare equal to it, so the quote and paragraph
	// wrapping the From path are inside.
	want := []Path{{0}, {0, 0}, {0, 0, 1}, {1}, {1, 0}}
	if len(got) != len(want) {
		t.Fatalf("expected paths %v, got %v", want, got)
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Fatalf("expected paths %v, got %v", want, got)
		}
	}
}

func TestWalkSpanStops(t *testing.T) {
	doc := sampleDoc()
	count := 0
	doc.WalkSpan(Span{From: Path{0}, To: Path{0}}, func(NodeEntry) bool {
		count++
		return true
	})
	// The whole first subtree, and nothing past it.
	if count != 4 {
		t.Fatalf("expected 4 nodes inside the span, visited %d", count)
	}
}

func TestTextsAndPlainText(t *testing.T) {
	doc := sampleDoc()

	texts := doc.Texts()
	if len(texts) != 3 {
		t.Fatalf("expected 3 text nodes, got %d", len(texts))
	}
	if got := doc.PlainText(); got != "abc" {
		t.Fatalf("expected abc, got %q", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	doc := sampleDoc()
	clone := doc.Clone()

	if !doc.Equal(clone) {
		t.Fatalf("clone should equal original")
	}

	txt, _ := clone.GetText(Path{0, 0, 0})
	txt.Content = "mutated"
	if doc.Equal(clone) {
		t.Fatalf("mutating the clone should not affect the original")
	}
	if orig, _ := doc.GetText(Path{0, 0, 0}); orig.Content != "a" {
		t.Fatalf("original was mutated: %q", orig.Content)
	}
}

func TestMatchesMarks(t *testing.T) {
	bold := NewText("", "bold")
	boldItalic := NewText("", "bold", "italic")
	italic := NewText("", "italic")
	plain := NewText("")

	if !MatchesMarks(bold, plain) {
		t.Fatalf("anything matches the empty mark set")
	}
	if !MatchesMarks(boldItalic, bold) {
		t.Fatalf("superset should match subset")
	}
	if MatchesMarks(bold, italic) {
		t.Fatalf("disjoint marks should not match")
	}
}

func TestNewTextNormalizesMarks(t *testing.T) {
	txt := NewText("x", "italic", "bold", "italic")
	if len(txt.Marks) != 2 || txt.Marks[0] != "bold" || txt.Marks[1] != "italic" {
		t.Fatalf("expected sorted deduplicated marks, got %v", txt.Marks)
	}
}
