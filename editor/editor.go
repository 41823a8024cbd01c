// Package editor applies low-level operations to a document tree and keeps
// the selection consistent across them.
package editor

import (
	"errors"
	"fmt"

	"github.com/editkit/richdoc/document"
	"github.com/editkit/richdoc/observability"
)

var (
	ErrPathNotFound     = errors.New("path not found")
	ErrOffsetOutOfRange = errors.New("offset out of range")
)

// Config carries optional collaborators for an editor.
type Config struct {
	Logger observability.Logger
}

// Editor owns a mutable document, its selection, and the log of operations
// applied to it.
type Editor struct {
	Doc        *document.Document
	Selection  *document.Range
	Operations []*document.Operation

	log observability.Logger
}

// New wraps a document in an editor. The document is owned by the editor
// afterwards and must not be mutated elsewhere.
func New(doc *document.Document, cfg Config) *Editor {
	log := cfg.Logger
	if log == nil {
		log = observability.NopLogger{}
	}
	return &Editor{Doc: doc, log: log}
}

// Apply performs one operation on the document, recording it and adjusting
// the selection.
func (e *Editor) Apply(op *document.Operation) error {
	if err := e.apply(op); err != nil {
		e.log.Error("apply failed", observability.String("kind", string(op.Kind)), observability.Error("err", err))
		return err
	}

	if op.Kind != document.OpSetSelection && e.Selection != nil {
		sel, ok := e.Selection.Transform(op, document.RangeInward)
		if !ok {
			sel = nil
		}
		e.Selection = sel
	}

	e.Operations = append(e.Operations, op)
	e.log.Debug("applied operation", observability.String("kind", string(op.Kind)))
	return nil
}

// ApplyAll applies a batch of operations, stopping at the first failure.
func (e *Editor) ApplyAll(ops []*document.Operation) error {
	for i, op := range ops {
		if err := e.Apply(op); err != nil {
			return fmt.Errorf("operation %d (%s): %w", i, op.Kind, err)
		}
	}
	return nil
}

// Undo applies the inverse of the most recent operation.
func (e *Editor) Undo() error {
	if len(e.Operations) == 0 {
		return errors.New("nothing to undo")
	}
	last := e.Operations[len(e.Operations)-1]
	e.Operations = e.Operations[:len(e.Operations)-1]
	return e.apply(last.Inverse())
}

func (e *Editor) apply(op *document.Operation) error {
	switch op.Kind {
	case document.OpInsertNode:
		return e.insertNode(op.Path, op.Node)
	case document.OpInsertText:
		return e.insertText(op.Path, op.Offset, op.Text)
	case document.OpMergeNode:
		return e.mergeNode(op.Path)
	case document.OpMoveNode:
		return e.moveNode(op)
	case document.OpRemoveNode:
		return e.removeNode(op.Path)
	case document.OpRemoveText:
		return e.removeText(op.Path, op.Offset, op.Text)
	case document.OpSetNode:
		return e.setNode(op.Path, op.Props, op.NewProps)
	case document.OpSetSelection:
		e.Selection = op.NewSel.Clone()
		return nil
	case document.OpSplitNode:
		return e.splitNode(op.Path, op.Position, op.Node)
	default:
		return fmt.Errorf("unknown operation kind %q", op.Kind)
	}
}

// siblings returns the child slice holding the node at path, plus its index.
func (e *Editor) siblings(p document.Path) (*[]document.Node, int, error) {
	parentPath, ok := p.Parent()
	if !ok {
		return nil, 0, fmt.Errorf("%w: empty path", ErrPathNotFound)
	}
	anc, ok := e.Doc.GetAncestor(parentPath)
	if !ok {
		return nil, 0, fmt.Errorf("%w: %v", ErrPathNotFound, parentPath)
	}
	idx := p[len(p)-1]
	switch a := anc.(type) {
	case *document.Document:
		return &a.Children, idx, nil
	case *document.Element:
		return &a.Children, idx, nil
	default:
		return nil, 0, fmt.Errorf("%w: %v", ErrPathNotFound, p)
	}
}

func (e *Editor) insertNode(p document.Path, n document.Node) error {
	children, idx, err := e.siblings(p)
	if err != nil {
		return err
	}
	if idx < 0 || idx > len(*children) {
		return fmt.Errorf("%w: index %d of %d", ErrPathNotFound, idx, len(*children))
	}
	node := document.CloneNode(n)
	*children = append(*children, nil)
	copy((*children)[idx+1:], (*children)[idx:])
	(*children)[idx] = node
	return nil
}

func (e *Editor) removeNode(p document.Path) error {
	children, idx, err := e.siblings(p)
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(*children) {
		return fmt.Errorf("%w: index %d of %d", ErrPathNotFound, idx, len(*children))
	}
	*children = append((*children)[:idx], (*children)[idx+1:]...)
	return nil
}

func (e *Editor) insertText(p document.Path, offset int, text string) error {
	t, ok := e.Doc.GetText(p)
	if !ok {
		return fmt.Errorf("%w: no text at %v", ErrPathNotFound, p)
	}
	runes := []rune(t.Content)
	if offset < 0 || offset > len(runes) {
		return fmt.Errorf("%w: offset %d of %d", ErrOffsetOutOfRange, offset, len(runes))
	}
	t.Content = string(runes[:offset]) + text + string(runes[offset:])
	return nil
}

func (e *Editor) removeText(p document.Path, offset int, text string) error {
	t, ok := e.Doc.GetText(p)
	if !ok {
		return fmt.Errorf("%w: no text at %v", ErrPathNotFound, p)
	}
	runes := []rune(t.Content)
	n := len([]rune(text))
	if offset < 0 || offset+n > len(runes) {
		return fmt.Errorf("%w: offset %d+%d of %d", ErrOffsetOutOfRange, offset, n, len(runes))
	}
	t.Content = string(runes[:offset]) + string(runes[offset+n:])
	return nil
}

func (e *Editor) mergeNode(p document.Path) error {
	children, idx, err := e.siblings(p)
	if err != nil {
		return err
	}
	if idx <= 0 || idx >= len(*children) {
		return fmt.Errorf("%w: nothing to merge into at %v", ErrPathNotFound, p)
	}
	cur := (*children)[idx]
	prev := (*children)[idx-1]

	switch prev := prev.(type) {
	case *document.Text:
		ct, ok := cur.(*document.Text)
		if !ok {
			return fmt.Errorf("cannot merge %T into text at %v", cur, p)
		}
		prev.Content += ct.Content
	case *document.Element:
		ce, ok := cur.(*document.Element)
		if !ok {
			return fmt.Errorf("cannot merge %T into element at %v", cur, p)
		}
		prev.Children = append(prev.Children, ce.Children...)
	}

	*children = append((*children)[:idx], (*children)[idx+1:]...)
	return nil
}

func (e *Editor) splitNode(p document.Path, position int, properties document.Node) error {
	children, idx, err := e.siblings(p)
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(*children) {
		return fmt.Errorf("%w: index %d of %d", ErrPathNotFound, idx, len(*children))
	}

	var right document.Node
	switch n := (*children)[idx].(type) {
	case *document.Text:
		runes := []rune(n.Content)
		if position < 0 || position > len(runes) {
			return fmt.Errorf("%w: split position %d of %d", ErrOffsetOutOfRange, position, len(runes))
		}
		marks := append([]string(nil), n.Marks...)
		if pt, ok := properties.(*document.Text); ok {
			marks = append([]string(nil), pt.Marks...)
		}
		right = &document.Text{Content: string(runes[position:]), Marks: marks}
		n.Content = string(runes[:position])
	case *document.Element:
		if position < 0 || position > len(n.Children) {
			return fmt.Errorf("%w: split position %d of %d children", ErrOffsetOutOfRange, position, len(n.Children))
		}
		typ, attrs := n.Type, n.Attrs
		if pe, ok := properties.(*document.Element); ok {
			typ, attrs = pe.Type, pe.Attrs
		}
		var attrCopy map[string]any
		if attrs != nil {
			attrCopy = make(map[string]any, len(attrs))
			for k, v := range attrs {
				attrCopy[k] = v
			}
		}
		rest := append([]document.Node(nil), n.Children[position:]...)
		n.Children = n.Children[:position]
		right = &document.Element{Type: typ, Attrs: attrCopy, Children: rest}
	}

	*children = append(*children, nil)
	copy((*children)[idx+2:], (*children)[idx+1:])
	(*children)[idx+1] = right
	return nil
}

func (e *Editor) moveNode(op *document.Operation) error {
	if op.Path.IsAncestor(op.NewPath) {
		return fmt.Errorf("cannot move %v inside itself at %v", op.Path, op.NewPath)
	}
	children, idx, err := e.siblings(op.Path)
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(*children) {
		return fmt.Errorf("%w: index %d of %d", ErrPathNotFound, idx, len(*children))
	}
	node := (*children)[idx]
	*children = append((*children)[:idx], (*children)[idx+1:]...)

	// The removal may have shifted the destination, so resolve the true
	// target by transforming the source path through the move itself.
	truePath, ok := op.Path.Transform(op, document.AffinityForward)
	if !ok {
		return fmt.Errorf("%w: move target %v", ErrPathNotFound, op.NewPath)
	}
	dest, destIdx, err := e.siblings(truePath)
	if err != nil {
		return err
	}
	if destIdx < 0 || destIdx > len(*dest) {
		return fmt.Errorf("%w: move index %d of %d", ErrPathNotFound, destIdx, len(*dest))
	}
	*dest = append(*dest, nil)
	copy((*dest)[destIdx+1:], (*dest)[destIdx:])
	(*dest)[destIdx] = node
	return nil
}

func (e *Editor) setNode(p document.Path, props, newProps map[string]any) error {
	n, ok := e.Doc.Get(p)
	if !ok {
		return fmt.Errorf("%w: %v", ErrPathNotFound, p)
	}

	switch n := n.(type) {
	case *document.Element:
		for k, v := range newProps {
			if k == "type" {
				if s, ok := v.(string); ok {
					n.Type = s
				}
				continue
			}
			if v == nil {
				delete(n.Attrs, k)
				continue
			}
			if n.Attrs == nil {
				n.Attrs = make(map[string]any)
			}
			n.Attrs[k] = v
		}
		for k := range props {
			if _, kept := newProps[k]; !kept && k != "type" {
				delete(n.Attrs, k)
			}
		}
		return nil
	case *document.Text:
		v, ok := newProps["marks"]
		if !ok {
			return fmt.Errorf("only marks can be set on text at %v", p)
		}
		marks, err := marksProp(v)
		if err != nil {
			return fmt.Errorf("at %v: %w", p, err)
		}
		n.Marks = marks
		return nil
	default:
		return fmt.Errorf("%w: %v", ErrPathNotFound, p)
	}
}

func marksProp(v any) ([]string, error) {
	switch v := v.(type) {
	case []string:
		return document.NewText("", v...).Marks, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, m := range v {
			s, ok := m.(string)
			if !ok {
				return nil, fmt.Errorf("mark must be a string, got %T", m)
			}
			out = append(out, s)
		}
		return document.NewText("", out...).Marks, nil
	default:
		return nil, fmt.Errorf("marks must be a string list, got %T", v)
	}
}
