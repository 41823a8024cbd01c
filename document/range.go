package document

// Range is a span between two points. The anchor is where a selection began
// and the focus where it ended; a backward range has its focus before its
// anchor.
type Range struct {
	Anchor Point
	Focus  Point
}

// RangeAffinity controls how both edges of a range react to an operation at
// their boundary.
type RangeAffinity int

const (
	RangeInward RangeAffinity = iota
	RangeOutward
	RangeForward
	RangeBackward
	RangeNone
)

// Span is a pair of paths bounding a run of nodes.
type Span struct {
	From Path
	To   Path
}

// Includes reports whether p lies between the span's bounds, inclusive.
// Ancestors and descendants of a bound compare equal to it, so they count
// as inside.
func (s Span) Includes(p Path) bool {
	return p.Compare(s.From) >= 0 && p.Compare(s.To) <= 0
}

// NewRange builds a range between two points.
func NewRange(anchor, focus Point) *Range {
	return &Range{Anchor: anchor, Focus: focus}
}

// Clone returns a deep copy.
func (r *Range) Clone() *Range {
	if r == nil {
		return nil
	}
	return &Range{Anchor: r.Anchor.Clone(), Focus: r.Focus.Clone()}
}

// Equal reports exact equality of both edges.
func (r *Range) Equal(other *Range) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.Anchor.Equal(other.Anchor) && r.Focus.Equal(other.Focus)
}

// IsBackward reports whether the focus precedes the anchor.
func (r *Range) IsBackward() bool {
	return r.Anchor.IsAfter(r.Focus)
}

// IsForward is the inverse of IsBackward.
func (r *Range) IsForward() bool {
	return !r.IsBackward()
}

// IsCollapsed reports whether both edges are the same point.
func (r *Range) IsCollapsed() bool {
	return r.Anchor.Equal(r.Focus)
}

// IsExpanded is the inverse of IsCollapsed.
func (r *Range) IsExpanded() bool {
	return !r.IsCollapsed()
}

// Edges returns the start and end points in document order, or in reverse
// order when reverse is true.
func (r *Range) Edges(reverse bool) (Point, Point) {
	if r.IsBackward() == reverse {
		return r.Anchor, r.Focus
	}
	return r.Focus, r.Anchor
}

// Start returns the edge that comes first in document order.
func (r *Range) Start() Point {
	start, _ := r.Edges(false)
	return start
}

// End returns the edge that comes last in document order.
func (r *Range) End() Point {
	_, end := r.Edges(false)
	return end
}

// IncludesPath reports whether the range touches the node at path.
func (r *Range) IncludesPath(target Path) bool {
	start, end := r.Edges(false)
	return target.Compare(start.Path) >= 0 && target.Compare(end.Path) <= 0
}

// IncludesPoint reports whether the point falls inside the range.
func (r *Range) IncludesPoint(target Point) bool {
	start, end := r.Edges(false)
	return target.Compare(start) >= 0 && target.Compare(end) <= 0
}

// IncludesRange reports whether any part of target falls inside the range.
func (r *Range) IncludesRange(target *Range) bool {
	if r.IncludesPoint(target.Anchor) || r.IncludesPoint(target.Focus) {
		return true
	}
	rs, re := r.Edges(false)
	ts, te := target.Edges(false)
	return rs.IsBefore(ts) && re.IsBefore(te)
}

// Intersection returns the overlapping part of two ranges, if any.
func (r *Range) Intersection(other *Range) (*Range, bool) {
	s1, e1 := r.Edges(false)
	s2, e2 := other.Edges(false)
	start := s1
	if s1.IsBefore(s2) {
		start = s2
	}
	end := e1
	if e2.IsBefore(e1) {
		end = e2
	}
	if end.IsBefore(start) {
		return nil, false
	}
	return &Range{Anchor: start.Clone(), Focus: end.Clone()}, true
}

// Transform adjusts the range for an operation applied to the tree. The
// second return is false when the operation removes either edge's location.
func (r *Range) Transform(op *Operation, affinity RangeAffinity) (*Range, bool) {
	var affAnchor, affFocus Affinity
	switch affinity {
	case RangeInward:
		if r.IsForward() {
			affAnchor, affFocus = AffinityForward, AffinityBackward
		} else {
			affAnchor, affFocus = AffinityBackward, AffinityForward
		}
	case RangeOutward:
		if r.IsForward() {
			affAnchor, affFocus = AffinityBackward, AffinityForward
		} else {
			affAnchor, affFocus = AffinityForward, AffinityBackward
		}
	case RangeForward:
		affAnchor, affFocus = AffinityForward, AffinityForward
	case RangeBackward:
		affAnchor, affFocus = AffinityBackward, AffinityBackward
	case RangeNone:
		affAnchor, affFocus = AffinityNone, AffinityNone
	}

	anchor, ok := r.Anchor.Transform(op, affAnchor)
	if !ok {
		return nil, false
	}
	focus, ok := r.Focus.Transform(op, affFocus)
	if !ok {
		return nil, false
	}
	return &Range{Anchor: anchor, Focus: focus}, true
}
