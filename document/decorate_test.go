package document

import "testing"

func decoration(start, end int, marks ...string) Decoration {
	return Decoration{
		Range: NewRange(pt(Path{0}, start), pt(Path{0}, end)),
		Marks: marks,
	}
}

func leavesEqual(t *testing.T, got []*Text, want []*Text) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d leaves, got %d", len(want), len(got))
	}
	for i := range want {
		if !NodesEqual(got[i], want[i]) {
			t.Fatalf("leaf %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestDecorationsStart(t *testing.T) {
	input := NewText("abc", "bold")
	got := input.Decorations([]Decoration{decoration(0, 1, "decoration")})
	leavesEqual(t, got, []*Text{
		NewText("a", "bold", "decoration"),
		NewText("bc", "bold"),
	})
}

func TestDecorationsMiddle(t *testing.T) {
	input := NewText("abc", "note")
	got := input.Decorations([]Decoration{decoration(1, 2, "decoration")})
	leavesEqual(t, got, []*Text{
		NewText("a", "note"),
		NewText("b", "decoration", "note"),
		NewText("c", "note"),
	})
}

func TestDecorationsEnd(t *testing.T) {
	input := NewText("abc", "bold")
	got := input.Decorations([]Decoration{decoration(2, 3, "decoration")})
	leavesEqual(t, got, []*Text{
		NewText("ab", "bold"),
		NewText("c", "bold", "decoration"),
	})
}

func TestDecorationsOverlapping(t *testing.T) {
	input := NewText("abc", "bold")
	got := input.Decorations([]Decoration{
		decoration(1, 2, "one"),
		decoration(0, 3, "two"),
	})
	leavesEqual(t, got, []*Text{
		NewText("a", "bold", "two"),
		NewText("b", "bold", "one", "two"),
		NewText("c", "bold", "two"),
	})
}

func TestDecorationsWholeLeaf(t *testing.T) {
	input := NewText("abc")
	got := input.Decorations([]Decoration{decoration(0, 3, "decoration")})
	leavesEqual(t, got, []*Text{NewText("abc", "decoration")})
}

func TestDecorationsNonASCII(t *testing.T) {
	input := NewText("héllo")
	got := input.Decorations([]Decoration{decoration(1, 2, "accent")})
	leavesEqual(t, got, []*Text{
		NewText("h"),
		NewText("é", "accent"),
		NewText("llo"),
	})
}
