package document

import "testing"

func TestPointCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want int
	}{
		{"path after offset after", Point{Path{0, 4}, 7}, Point{Path{0, 1}, 3}, 1},
		{"path after offset before", Point{Path{0, 4}, 0}, Point{Path{0, 1}, 3}, 1},
		{"path after offset equal", Point{Path{0, 4}, 3}, Point{Path{0, 1}, 3}, 1},
		{"path before offset after", Point{Path{0, 0}, 4}, Point{Path{0, 1}, 0}, -1},
		{"path before offset before", Point{Path{0, 0}, 0}, Point{Path{0, 1}, 3}, -1},
		{"path before offset equal", Point{Path{0, 0}, 0}, Point{Path{0, 1}, 0}, -1},
		{"path equal offset after", Point{Path{0, 1}, 7}, Point{Path{0, 1}, 3}, 1},
		{"path equal offset before", Point{Path{0, 1}, 0}, Point{Path{0, 1}, 3}, -1},
		{"path equal offset equal", Point{Path{0, 1}, 7}, Point{Path{0, 1}, 7}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Compare(tt.b); got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestPointTransform(t *testing.T) {
	tests := []struct {
		name     string
		point    Point
		op       *Operation
		affinity Affinity
		want     Point
		gone     bool
	}{
		{
			name:  "insert text before offset",
			point: Point{Path{0, 0}, 5},
			op:    InsertText(Path{0, 0}, 2, "abc"),
			want:  Point{Path{0, 0}, 8},
		},
		{
			name:  "insert text after offset",
			point: Point{Path{0, 0}, 1},
			op:    InsertText(Path{0, 0}, 2, "abc"),
			want:  Point{Path{0, 0}, 1},
		},
		{
			name:     "insert text at offset forward",
			point:    Point{Path{0, 0}, 2},
			op:       InsertText(Path{0, 0}, 2, "abc"),
			affinity: AffinityForward,
			want:     Point{Path{0, 0}, 5},
		},
		{
			name:     "insert text at offset backward",
			point:    Point{Path{0, 0}, 2},
			op:       InsertText(Path{0, 0}, 2, "abc"),
			affinity: AffinityBackward,
			want:     Point{Path{0, 0}, 2},
		},
		{
			name:  "insert text elsewhere",
			point: Point{Path{0, 1}, 5},
			op:    InsertText(Path{0, 0}, 2, "abc"),
			want:  Point{Path{0, 1}, 5},
		},
		{
			name:  "remove text before offset",
			point: Point{Path{0, 0}, 5},
			op:    RemoveText(Path{0, 0}, 1, "ab"),
			want:  Point{Path{0, 0}, 3},
		},
		{
			name:  "remove text straddling offset clamps to start",
			point: Point{Path{0, 0}, 3},
			op:    RemoveText(Path{0, 0}, 2, "abcd"),
			want:  Point{Path{0, 0}, 2},
		},
		{
			name:  "remove node at point",
			point: Point{Path{0, 0}, 3},
			op:    RemoveNode(Path{0, 0}, NewText("")),
			gone:  true,
		},
		{
			name:  "remove ancestor of point",
			point: Point{Path{0, 1, 0}, 3},
			op:    RemoveNode(Path{0, 1}, NewText("")),
			gone:  true,
		},
		{
			name:  "remove sibling before point",
			point: Point{Path{0, 2}, 3},
			op:    RemoveNode(Path{0, 0}, NewText("")),
			want:  Point{Path{0, 1}, 3},
		},
		{
			name:  "insert node before point",
			point: Point{Path{0, 1}, 3},
			op:    InsertNode(Path{0, 0}, NewText("")),
			want:  Point{Path{0, 2}, 3},
		},
		{
			name:  "merge shifts offset by position",
			point: Point{Path{0, 1}, 2},
			op:    MergeNode(Path{0, 1}, 4, nil),
			want:  Point{Path{0, 0}, 6},
		},
		{
			name:     "split before offset moves to new node",
			point:    Point{Path{0, 0}, 5},
			op:       SplitNode(Path{0, 0}, 2, nil),
			affinity: AffinityForward,
			want:     Point{Path{0, 1}, 3},
		},
		{
			name:     "split after offset stays",
			point:    Point{Path{0, 0}, 1},
			op:       SplitNode(Path{0, 0}, 2, nil),
			affinity: AffinityForward,
			want:     Point{Path{0, 0}, 1},
		},
		{
			name:     "split exactly at offset without affinity",
			point:    Point{Path{0, 0}, 2},
			op:       SplitNode(Path{0, 0}, 2, nil),
			affinity: AffinityNone,
			gone:     true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.point.Transform(tt.op, tt.affinity)
			if tt.gone {
				if ok {
					t.Fatalf("expected point to be removed, got %v", got)
				}
				return
			}
			if !ok {
				t.Fatalf("unexpected removal of %v", tt.point)
			}
			if !got.Equal(tt.want) {
				t.Fatalf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}
