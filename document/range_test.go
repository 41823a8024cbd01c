package document

import "testing"

func pt(path Path, offset int) Point {
	return Point{Path: path, Offset: offset}
}

func TestRangeEdges(t *testing.T) {
	collapsed := NewRange(pt(Path{0}, 0), pt(Path{0}, 0))
	start, end := collapsed.Edges(false)
	if !start.Equal(pt(Path{0}, 0)) || !end.Equal(pt(Path{0}, 0)) {
		t.Fatalf("collapsed edges wrong: %+v %+v", start, end)
	}

	backward := NewRange(pt(Path{3}, 0), pt(Path{0}, 0))
	if !backward.IsBackward() {
		t.Fatalf("expected backward range")
	}
	start, end = backward.Edges(false)
	if !start.Equal(pt(Path{0}, 0)) || !end.Equal(pt(Path{3}, 0)) {
		t.Fatalf("backward edges not normalized: %+v %+v", start, end)
	}
	start, end = backward.Edges(true)
	if !start.Equal(pt(Path{3}, 0)) || !end.Equal(pt(Path{0}, 0)) {
		t.Fatalf("reversed edges wrong: %+v %+v", start, end)
	}
}

func TestRangeCollapsed(t *testing.T) {
	r := NewRange(pt(Path{0}, 1), pt(Path{0}, 1))
	if !r.IsCollapsed() || r.IsExpanded() {
		t.Fatalf("expected collapsed range")
	}
	r = NewRange(pt(Path{0}, 1), pt(Path{0}, 3))
	if r.IsCollapsed() || !r.IsExpanded() {
		t.Fatalf("expected expanded range")
	}
}

func TestRangeIncludes(t *testing.T) {
	r := NewRange(pt(Path{0, 1}, 0), pt(Path{0, 3}, 2))

	if !r.IncludesPath(Path{0, 2}) {
		t.Fatalf("expected path inside range")
	}
	if r.IncludesPath(Path{0, 4}) {
		t.Fatalf("path after range should be excluded")
	}
	if !r.IncludesPoint(pt(Path{0, 3}, 1)) {
		t.Fatalf("expected point inside range")
	}
	if r.IncludesPoint(pt(Path{0, 3}, 3)) {
		t.Fatalf("point past the end should be excluded")
	}
	if !r.IncludesRange(NewRange(pt(Path{0, 2}, 0), pt(Path{0, 2}, 5))) {
		t.Fatalf("expected contained range to be included")
	}
}

func TestRangeIntersection(t *testing.T) {
	a := NewRange(pt(Path{0}, 0), pt(Path{0}, 5))
	b := NewRange(pt(Path{0}, 3), pt(Path{0}, 9))
	got, ok := a.Intersection(b)
	if !ok {
		t.Fatalf("expected intersection")
	}
	if !got.Anchor.Equal(pt(Path{0}, 3)) || !got.Focus.Equal(pt(Path{0}, 5)) {
		t.Fatalf("unexpected intersection: %+v", got)
	}

	c := NewRange(pt(Path{0}, 7), pt(Path{0}, 9))
	if _, ok := a.Intersection(c); ok {
		t.Fatalf("disjoint ranges should not intersect")
	}
}

func TestRangeTransform(t *testing.T) {
	r := NewRange(pt(Path{0, 0}, 1), pt(Path{0, 0}, 4))

	got, ok := r.Transform(InsertText(Path{0, 0}, 0, "ab"), RangeInward)
	if !ok {
		t.Fatalf("unexpected removal")
	}
	if got.Anchor.Offset != 3 || got.Focus.Offset != 6 {
		t.Fatalf("expected offsets to shift by 2, got %+v", got)
	}

	if _, ok := r.Transform(RemoveNode(Path{0, 0}, NewText("")), RangeInward); ok {
		t.Fatalf("removing the node should remove the range")
	}
}

func TestSpanIncludes(t *testing.T) {
	s := Span{From: Path{0, 1}, To: Path{2}}

	tests := []struct {
		name string
		path Path
		want bool
	}{
		{"before", Path{0, 0}, false},
		{"lower bound", Path{0, 1}, true},
		{"inside", Path{1}, true},
		{"upper bound", Path{2}, true},
		{"descendant of bound", Path{2, 3}, true},
		{"ancestor of bound", Path{0}, true},
		{"after", Path{3}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Includes(tt.path); got != tt.want {
				t.Fatalf("Includes(%v) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
