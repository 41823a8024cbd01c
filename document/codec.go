package document

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every deserialization failure.
var ErrInvalid = errors.New("invalid document")

// Decode builds a validated document from plain nested data (maps, slices
// and scalars, as produced by encoding/json). The top level must be an
// object of the form {"document": {"nodes": [...]}}. Block records carry
// {"object": "block", "type": ..., "nodes": [...], "attrs": {...}} and text
// records {"object": "text", "text": ..., "marks": [...]}. The input is
// never mutated.
func Decode(v any) (*Document, error) {
	root, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: top level must be an object, got %T", ErrInvalid, v)
	}
	dv, ok := root["document"]
	if !ok {
		return nil, fmt.Errorf("%w: missing document wrapper", ErrInvalid)
	}
	body, ok := dv.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: document must be an object, got %T", ErrInvalid, dv)
	}
	children, err := decodeNodeList(body["nodes"], "document")
	if err != nil {
		return nil, err
	}
	return &Document{Children: children}, nil
}

func decodeNodeList(v any, where string) ([]Node, error) {
	if v == nil {
		return nil, nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s nodes must be a list, got %T", ErrInvalid, where, v)
	}
	out := make([]Node, 0, len(list))
	for i, nv := range list {
		n, err := decodeNode(nv, fmt.Sprintf("%s[%d]", where, i))
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func decodeNode(v any, where string) (Node, error) {
	rec, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s must be an object, got %T", ErrInvalid, where, v)
	}
	objV, ok := rec["object"]
	if !ok {
		return nil, fmt.Errorf("%w: %s missing object tag", ErrInvalid, where)
	}
	obj, ok := objV.(string)
	if !ok {
		return nil, fmt.Errorf("%w: %s object tag must be a string", ErrInvalid, where)
	}

	switch obj {
	case "block", "inline":
		typV, ok := rec["type"]
		if !ok {
			return nil, fmt.Errorf("%w: %s missing type", ErrInvalid, where)
		}
		typ, ok := typV.(string)
		if !ok || typ == "" {
			return nil, fmt.Errorf("%w: %s type must be a non-empty string", ErrInvalid, where)
		}
		attrs, err := decodeAttrs(rec["attrs"], where)
		if err != nil {
			return nil, err
		}
		children, err := decodeNodeList(rec["nodes"], where)
		if err != nil {
			return nil, err
		}
		return &Element{Type: typ, Attrs: attrs, Children: children}, nil

	case "text":
		txtV, ok := rec["text"]
		if !ok {
			return nil, fmt.Errorf("%w: %s missing text", ErrInvalid, where)
		}
		txt, ok := txtV.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s text must be a string", ErrInvalid, where)
		}
		marks, err := decodeMarks(rec["marks"], where)
		if err != nil {
			return nil, err
		}
		return &Text{Content: txt, Marks: marks}, nil

	default:
		return nil, fmt.Errorf("%w: %s has unknown object tag %q", ErrInvalid, where, obj)
	}
}

func decodeAttrs(v any, where string) (map[string]any, error) {
	if v == nil {
		return nil, nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s attrs must be an object, got %T", ErrInvalid, where, v)
	}
	out := make(map[string]any, len(m))
	for k, av := range m {
		out[k] = av
	}
	return out, nil
}

func decodeMarks(v any, where string) ([]string, error) {
	if v == nil {
		return nil, nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s marks must be a list, got %T", ErrInvalid, where, v)
	}
	marks := make([]string, 0, len(list))
	for i, mv := range list {
		m, ok := mv.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s marks[%d] must be a string, got %T", ErrInvalid, where, i, mv)
		}
		marks = append(marks, m)
	}
	return normalizeMarks(marks), nil
}

// Encode is the inverse of Decode, producing plain nested data.
func Encode(d *Document) map[string]any {
	nodes := make([]any, len(d.Children))
	for i, n := range d.Children {
		nodes[i] = encodeNode(n)
	}
	return map[string]any{
		"document": map[string]any{"nodes": nodes},
	}
}

func encodeNode(n Node) map[string]any {
	switch n := n.(type) {
	case *Element:
		rec := map[string]any{"object": "block", "type": n.Type}
		if len(n.Attrs) > 0 {
			attrs := make(map[string]any, len(n.Attrs))
			for k, v := range n.Attrs {
				attrs[k] = v
			}
			rec["attrs"] = attrs
		}
		nodes := make([]any, len(n.Children))
		for i, c := range n.Children {
			nodes[i] = encodeNode(c)
		}
		rec["nodes"] = nodes
		return rec
	case *Text:
		rec := map[string]any{"object": "text", "text": n.Content}
		if len(n.Marks) > 0 {
			marks := make([]any, len(n.Marks))
			for i, m := range n.Marks {
				marks[i] = m
			}
			rec["marks"] = marks
		}
		return rec
	default:
		return nil
	}
}

// FromJSON decodes a JSON-encoded document.
func FromJSON(data []byte) (*Document, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return Decode(v)
}

// MarshalJSON encodes the document in the same schema Decode accepts.
func (d *Document) MarshalJSON() ([]byte, error) {
	return json.Marshal(Encode(d))
}

// UnmarshalJSON decodes a document in place.
func (d *Document) UnmarshalJSON(data []byte) error {
	doc, err := FromJSON(data)
	if err != nil {
		return err
	}
	*d = *doc
	return nil
}
