package document

// Point addresses a location inside a text node: the node's path plus a rune
// offset into its content.
type Point struct {
	Path   Path
	Offset int
}

// Equal reports exact equality.
func (p Point) Equal(other Point) bool {
	return p.Offset == other.Offset && p.Path.Equal(other.Path)
}

// Compare orders two points by document position.
func (p Point) Compare(other Point) int {
	if c := p.Path.Compare(other.Path); c != 0 {
		return c
	}
	if p.Offset < other.Offset {
		return -1
	}
	if p.Offset > other.Offset {
		return 1
	}
	return 0
}

// IsBefore reports whether the point strictly precedes other.
func (p Point) IsBefore(other Point) bool {
	return p.Compare(other) < 0
}

// IsAfter reports whether the point strictly follows other.
func (p Point) IsAfter(other Point) bool {
	return p.Compare(other) > 0
}

// Clone returns a copy with an independent path.
func (p Point) Clone() Point {
	return Point{Path: p.Path.Clone(), Offset: p.Offset}
}

// Transform adjusts the point for an operation applied to the tree. The
// second return is false when the operation removes the point's location.
func (p Point) Transform(op *Operation, affinity Affinity) (Point, bool) {
	point := p.Clone()

	switch op.Kind {
	case OpInsertNode, OpMoveNode:
		np, ok := point.Path.Transform(op, affinity)
		if !ok {
			return Point{}, false
		}
		point.Path = np

	case OpInsertText:
		if op.Path.Equal(point.Path) &&
			(op.Offset < point.Offset ||
				(op.Offset == point.Offset && affinity == AffinityForward)) {
			point.Offset += len([]rune(op.Text))
		}

	case OpMergeNode:
		if op.Path.Equal(point.Path) {
			point.Offset += op.Position
		}
		np, ok := point.Path.Transform(op, affinity)
		if !ok {
			return Point{}, false
		}
		point.Path = np

	case OpRemoveText:
		if op.Path.Equal(point.Path) && op.Offset <= point.Offset {
			d := point.Offset - op.Offset
			if n := len([]rune(op.Text)); d > n {
				d = n
			}
			point.Offset -= d
		}

	case OpRemoveNode:
		if op.Path.Equal(point.Path) || op.Path.IsAncestor(point.Path) {
			return Point{}, false
		}
		np, ok := point.Path.Transform(op, affinity)
		if !ok {
			return Point{}, false
		}
		point.Path = np

	case OpSplitNode:
		if op.Path.Equal(point.Path) {
			if op.Position == point.Offset && affinity == AffinityNone {
				return Point{}, false
			}
			if op.Position < point.Offset ||
				(op.Position == point.Offset && affinity == AffinityForward) {
				point.Offset -= op.Position
				np, ok := point.Path.Transform(op, AffinityForward)
				if !ok {
					return Point{}, false
				}
				point.Path = np
			}
		} else {
			np, ok := point.Path.Transform(op, affinity)
			if !ok {
				return Point{}, false
			}
			point.Path = np
		}
	}

	return point, true
}
