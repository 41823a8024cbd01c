package document

// OpKind identifies the nine low-level operations a document tree supports.
type OpKind string

const (
	OpInsertNode   OpKind = "insert_node"
	OpInsertText   OpKind = "insert_text"
	OpMergeNode    OpKind = "merge_node"
	OpMoveNode     OpKind = "move_node"
	OpRemoveNode   OpKind = "remove_node"
	OpRemoveText   OpKind = "remove_text"
	OpSetNode      OpKind = "set_node"
	OpSetSelection OpKind = "set_selection"
	OpSplitNode    OpKind = "split_node"
)

// Operation is a single atomic change to a document. Only the fields
// relevant to Kind are populated.
type Operation struct {
	Kind OpKind

	Path    Path
	NewPath Path // move_node

	Offset int    // insert_text, remove_text (rune offset)
	Text   string // insert_text, remove_text

	Position int  // merge_node, split_node
	Node     Node // insert_node, remove_node; properties for merge/split

	Props    map[string]any // set_node
	NewProps map[string]any // set_node

	Sel    *Range // set_selection
	NewSel *Range // set_selection
}

func InsertNode(path Path, node Node) *Operation {
	return &Operation{Kind: OpInsertNode, Path: path, Node: node}
}

func InsertText(path Path, offset int, text string) *Operation {
	return &Operation{Kind: OpInsertText, Path: path, Offset: offset, Text: text}
}

func MergeNode(path Path, position int, properties Node) *Operation {
	return &Operation{Kind: OpMergeNode, Path: path, Position: position, Node: properties}
}

func MoveNode(path, newPath Path) *Operation {
	return &Operation{Kind: OpMoveNode, Path: path, NewPath: newPath}
}

func RemoveNode(path Path, node Node) *Operation {
	return &Operation{Kind: OpRemoveNode, Path: path, Node: node}
}

func RemoveText(path Path, offset int, text string) *Operation {
	return &Operation{Kind: OpRemoveText, Path: path, Offset: offset, Text: text}
}

func SetNode(path Path, props, newProps map[string]any) *Operation {
	return &Operation{Kind: OpSetNode, Path: path, Props: props, NewProps: newProps}
}

func SetSelection(sel, newSel *Range) *Operation {
	return &Operation{Kind: OpSetSelection, Sel: sel, NewSel: newSel}
}

func SplitNode(path Path, position int, properties Node) *Operation {
	return &Operation{Kind: OpSplitNode, Path: path, Position: position, Node: properties}
}

// Inverse returns the operation that undoes this one.
func (op *Operation) Inverse() *Operation {
	switch op.Kind {
	case OpInsertNode:
		return RemoveNode(op.Path, op.Node)

	case OpInsertText:
		return RemoveText(op.Path, op.Offset, op.Text)

	case OpMergeNode:
		prev, _ := op.Path.Previous()
		return SplitNode(prev, op.Position, op.Node)

	case OpMoveNode:
		if op.Path.Equal(op.NewPath) {
			return MoveNode(op.Path, op.NewPath)
		}
		// Sibling moves leave both paths stable with respect to each other.
		if op.Path.IsSibling(op.NewPath) {
			return MoveNode(op.NewPath, op.Path)
		}
		// Otherwise the move shifts the true source and target locations, so
		// recover them by transforming through the move itself.
		inversePath, _ := op.Path.Transform(op, AffinityForward)
		next, _ := op.Path.Next()
		inverseNewPath, _ := next.Transform(op, AffinityForward)
		return MoveNode(inversePath, inverseNewPath)

	case OpRemoveNode:
		return InsertNode(op.Path, op.Node)

	case OpRemoveText:
		return InsertText(op.Path, op.Offset, op.Text)

	case OpSetNode:
		return SetNode(op.Path, op.NewProps, op.Props)

	case OpSetSelection:
		switch {
		case op.Sel == nil:
			return SetSelection(op.NewSel, nil)
		case op.NewSel == nil:
			return SetSelection(nil, op.Sel)
		default:
			return SetSelection(op.NewSel, op.Sel)
		}

	case OpSplitNode:
		next, _ := op.Path.Next()
		return MergeNode(next, op.Position, op.Node)
	}
	return nil
}
