package document

// Decoration applies extra marks to the part of a text node covered by a
// range, without changing the underlying document.
type Decoration struct {
	Range *Range
	Marks []string
}

// Decorations splits the text into leaves according to the decorated ranges,
// adding each decoration's marks to the leaves it covers. Offsets are rune
// offsets into the node's content.
func (t *Text) Decorations(decs []Decoration) []*Text {
	leaves := []*Text{{Content: t.Content, Marks: append([]string(nil), t.Marks...)}}

	for _, dec := range decs {
		start, end := dec.Range.Edges(false)
		next := make([]*Text, 0, len(leaves))
		o := 0

		for _, leaf := range leaves {
			runes := []rune(leaf.Content)
			length := len(runes)
			offset := o
			o += length

			// The range covers the entire leaf.
			if start.Offset <= offset && end.Offset >= offset+length {
				next = append(next, &Text{
					Content: leaf.Content,
					Marks:   unionMarks(leaf.Marks, dec.Marks),
				})
				continue
			}

			// The range misses the leaf entirely.
			if start.Offset > offset+length || end.Offset < offset ||
				(end.Offset == offset && offset != 0) {
				next = append(next, leaf)
				continue
			}

			// Split at the end first so the start offset stays valid.
			middle := leaf
			var before, after *Text

			if end.Offset < offset+length {
				off := end.Offset - offset
				after = &Text{Content: string(runes[off:]), Marks: append([]string(nil), middle.Marks...)}
				middle = &Text{Content: string(runes[:off]), Marks: middle.Marks}
				runes = runes[:off]
			}

			if start.Offset > offset {
				off := start.Offset - offset
				before = &Text{Content: string(runes[:off]), Marks: append([]string(nil), middle.Marks...)}
				middle = &Text{Content: string(runes[off:]), Marks: middle.Marks}
			}

			middle = &Text{Content: middle.Content, Marks: unionMarks(middle.Marks, dec.Marks)}

			if before != nil {
				next = append(next, before)
			}
			next = append(next, middle)
			if after != nil {
				next = append(next, after)
			}
		}

		leaves = next
	}

	return leaves
}

func unionMarks(a, b []string) []string {
	return normalizeMarks(append(append([]string(nil), a...), b...))
}
