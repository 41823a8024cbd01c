package document

// Path addresses a descendant node as the list of child indexes to follow
// from the document root. Paths are value types: every method returns a copy
// and never mutates the receiver.
type Path []int

// Affinity controls how a path or point that sits exactly on an operation
// boundary is transformed.
type Affinity int

const (
	AffinityForward Affinity = iota
	AffinityBackward
	AffinityNone
)

// Concat returns the path extended with one more index.
func (p Path) Concat(i int) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = i
	return out
}

// Clone returns a copy of the path.
func (p Path) Clone() Path {
	return append(Path(nil), p...)
}

// Equal reports exact equality.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// Compare orders two paths by document position. Ancestors and descendants
// compare as equal, since one contains the other.
func (p Path) Compare(other Path) int {
	n := len(p)
	if len(other) < n {
		n = len(other)
	}
	for i := 0; i < n; i++ {
		if p[i] < other[i] {
			return -1
		}
		if p[i] > other[i] {
			return 1
		}
	}
	return 0
}

// IsBefore reports whether the path strictly precedes other.
func (p Path) IsBefore(other Path) bool {
	return p.Compare(other) < 0
}

// IsAfter reports whether the path strictly follows other.
func (p Path) IsAfter(other Path) bool {
	return p.Compare(other) > 0
}

// IsAncestor reports whether the path is a proper ancestor of other.
func (p Path) IsAncestor(other Path) bool {
	return len(p) < len(other) && p.Compare(other) == 0
}

// IsDescendant reports whether the path is a proper descendant of other.
func (p Path) IsDescendant(other Path) bool {
	return len(p) > len(other) && p.Compare(other) == 0
}

// IsChild reports whether the path is a direct child of other.
func (p Path) IsChild(other Path) bool {
	return len(p) == len(other)+1 && p.Compare(other) == 0
}

// IsParent reports whether the path is the direct parent of other.
func (p Path) IsParent(other Path) bool {
	return len(p)+1 == len(other) && p.Compare(other) == 0
}

// IsSibling reports whether two distinct paths share a parent.
func (p Path) IsSibling(other Path) bool {
	if len(p) == 0 || len(p) != len(other) {
		return false
	}
	if p[len(p)-1] == other[len(other)-1] {
		return false
	}
	return Path(p[:len(p)-1]).Equal(other[:len(other)-1])
}

// Levels returns every prefix of the path from the root down to the path
// itself (or the reverse).
func (p Path) Levels(reverse bool) []Path {
	out := make([]Path, 0, len(p)+1)
	for i := 0; i <= len(p); i++ {
		out = append(out, p[:i].Clone())
	}
	if reverse {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

// Ancestors returns the paths of every ancestor, root first (or the reverse).
// The path itself is excluded.
func (p Path) Ancestors(reverse bool) []Path {
	levels := p.Levels(reverse)
	if reverse {
		return levels[1:]
	}
	return levels[:len(levels)-1]
}

// Common returns the deepest shared ancestor path of two paths.
func (p Path) Common(other Path) Path {
	var common Path
	for i := 0; i < len(p) && i < len(other); i++ {
		if p[i] != other[i] {
			break
		}
		common = append(common, p[i])
	}
	return common
}

// Parent returns the parent path; false at the root.
func (p Path) Parent() (Path, bool) {
	if len(p) == 0 {
		return nil, false
	}
	return p[:len(p)-1].Clone(), true
}

// Next returns the path of the following sibling; false at the root.
func (p Path) Next() (Path, bool) {
	if len(p) == 0 {
		return nil, false
	}
	out := p.Clone()
	out[len(out)-1]++
	return out, true
}

// Previous returns the path of the preceding sibling; false at the root or
// for a first child.
func (p Path) Previous() (Path, bool) {
	if len(p) == 0 || p[len(p)-1] == 0 {
		return nil, false
	}
	out := p.Clone()
	out[len(out)-1]--
	return out, true
}

// HasPrevious reports whether a preceding sibling path exists.
func (p Path) HasPrevious() bool {
	return len(p) > 0 && p[len(p)-1] > 0
}

// Relative strips an ancestor prefix from the path.
func (p Path) Relative(ancestor Path) (Path, bool) {
	if !ancestor.IsAncestor(p) && !ancestor.Equal(p) {
		return nil, false
	}
	return p[len(ancestor):].Clone(), true
}

// EndsBefore reports whether the path ends at an index before other at the
// level where the path terminates.
func (p Path) EndsBefore(other Path) bool {
	if len(p) == 0 {
		return false
	}
	i := len(p) - 1
	if i >= len(other) {
		return false
	}
	return Path(p[:i]).Equal(other[:i]) && p[i] < other[i]
}

// EndsAt reports whether the path ends at the same index other passes
// through at that level.
func (p Path) EndsAt(other Path) bool {
	if len(p) > len(other) {
		return false
	}
	return p.Equal(other[:len(p)])
}

// EndsAfter reports whether the path ends at an index after other at the
// level where the path terminates.
func (p Path) EndsAfter(other Path) bool {
	if len(p) == 0 {
		return false
	}
	i := len(p) - 1
	if i > len(other)-1 {
		return false
	}
	return Path(p[:i]).Equal(other[:i]) && p[i] > other[i]
}

// Transform adjusts the path for an operation applied elsewhere in the tree.
// The second return is false when the operation removes the location the
// path referred to.
func (p Path) Transform(op *Operation, affinity Affinity) (Path, bool) {
	// Operations cannot displace the root.
	if len(p) == 0 {
		return p.Clone(), true
	}

	path := p.Clone()

	switch op.Kind {
	case OpInsertNode:
		if op.Path.Equal(path) || op.Path.EndsBefore(path) || op.Path.IsAncestor(path) {
			path[len(op.Path)-1]++
		}

	case OpRemoveNode:
		if op.Path.Equal(path) || op.Path.IsAncestor(path) {
			return nil, false
		}
		if op.Path.EndsBefore(path) {
			path[len(op.Path)-1]--
		}

	case OpMergeNode:
		if op.Path.Equal(path) || op.Path.EndsBefore(path) {
			path[len(op.Path)-1]--
		} else if op.Path.IsAncestor(path) {
			path[len(op.Path)-1]--
			path[len(op.Path)] += op.Position
		}

	case OpSplitNode:
		if op.Path.Equal(path) {
			switch affinity {
			case AffinityForward:
				path[len(path)-1]++
			case AffinityBackward:
				// Still refers to the left half.
			default:
				return nil, false
			}
		} else if op.Path.EndsBefore(path) {
			path[len(op.Path)-1]++
		} else if op.Path.IsAncestor(path) && path[len(op.Path)] >= op.Position {
			path[len(op.Path)-1]++
			path[len(op.Path)] -= op.Position
		}

	case OpMoveNode:
		if op.Path.Equal(op.NewPath) {
			return path, true
		}
		onp := op.NewPath.Clone()
		switch {
		case op.Path.IsAncestor(path) || op.Path.Equal(path):
			if op.Path.EndsBefore(onp) && len(op.Path) < len(onp) {
				onp[len(op.Path)-1]--
			}
			return append(onp, path[len(op.Path):]...), true
		case op.Path.IsSibling(onp) && (onp.IsAncestor(path) || onp.Equal(path)):
			if op.Path.EndsBefore(path) {
				path[len(op.Path)-1]--
			} else {
				path[len(op.Path)-1]++
			}
		case onp.EndsBefore(path) || onp.Equal(path) || onp.IsAncestor(path):
			if op.Path.EndsBefore(path) {
				path[len(op.Path)-1]--
			}
			path[len(onp)-1]++
		case op.Path.EndsBefore(path):
			if onp.Equal(path) {
				path[len(onp)-1]++
			}
			path[len(op.Path)-1]--
		}
	}

	return path, true
}
